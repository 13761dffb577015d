package app

import (
	"context"
	"log"

	"github.com/example/protondrive/internal/config"
	"github.com/example/protondrive/internal/desktop"
	"github.com/example/protondrive/internal/logging"
)

// Lifecycle attaches the main window handle to the framework context and
// saves settings when the window closes.
type Lifecycle struct {
	window *desktop.Window
	store  *config.Store
}

// NewLifecycle returns hooks for the given window and settings store.
func NewLifecycle(window *desktop.Window, store *config.Store) *Lifecycle {
	return &Lifecycle{window: window, store: store}
}

// Startup is invoked by the framework once the window exists.
func (l *Lifecycle) Startup(ctx context.Context) {
	l.window.Attach(ctx)
	if l.store != nil {
		logging.Debugf("window started for instance %s", l.store.Snapshot().InstanceID)
	}
}

// BeforeClose records the window size while the window still exists. It never
// prevents the close.
func (l *Lifecycle) BeforeClose(_ context.Context) bool {
	l.rememberSize()
	return false
}

// Quit records the window size and asks the framework to quit. The framework
// quit skips BeforeClose, so the application menu goes through here.
func (l *Lifecycle) Quit() {
	l.rememberSize()
	l.window.Quit()
}

// ExecEdit forwards an application menu edit command to the window.
func (l *Lifecycle) ExecEdit(command string) {
	l.window.ExecEdit(command)
}

// Shutdown is invoked by the framework after the window closes.
func (l *Lifecycle) Shutdown(_ context.Context) {
	l.window.Detach()
	if l.store == nil {
		return
	}
	if err := l.store.Save(); err != nil {
		log.Printf("failed to save settings: %v", err)
	}
}

func (l *Lifecycle) rememberSize() {
	if l.store == nil {
		return
	}
	width, height, ok := l.window.Size()
	if !ok {
		return
	}
	l.store.RememberWindow(width, height)
	logging.Debugf("window size %dx%d recorded", width, height)
}
