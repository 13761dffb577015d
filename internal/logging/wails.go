package logging

import (
	"log"

	"github.com/wailsapp/wails/v2/pkg/logger"
)

// WailsLogger forwards framework log output to the process logger so window
// runtime messages share the same format as the rest of the application.
// Trace and Debug messages are only written when debug logging is enabled.
type WailsLogger struct{}

var _ logger.Logger = WailsLogger{}

// Level reports the framework log level matching the current debug state.
func Level() logger.LogLevel {
	if DebugEnabled() {
		return logger.DEBUG
	}
	return logger.INFO
}

func (WailsLogger) Print(message string) { log.Print(message) }

func (WailsLogger) Trace(message string) { Debugf("wails trace: %s", message) }

func (WailsLogger) Debug(message string) { Debugf("wails: %s", message) }

func (WailsLogger) Info(message string) { log.Printf("wails: %s", message) }

func (WailsLogger) Warning(message string) { log.Printf("[WARN] wails: %s", message) }

func (WailsLogger) Error(message string) { log.Printf("[ERROR] wails: %s", message) }

func (WailsLogger) Fatal(message string) { log.Fatalf("[FATAL] wails: %s", message) }
