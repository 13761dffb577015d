package tray

import (
	"log"
	"os"

	"github.com/example/protondrive/internal/logging"
)

// Window is the main window as seen by the tray.
type Window interface {
	// ShowAndFocus reveals and focuses the window, reporting false when no
	// window exists.
	ShowAndFocus() bool
}

// Dispatcher routes tray click identifiers to their actions. It keeps no
// state between events.
type Dispatcher struct {
	window Window
	exit   func(int)
}

// NewDispatcher returns a Dispatcher for window. A nil exit terminates the
// process with os.Exit.
func NewDispatcher(window Window, exit func(int)) *Dispatcher {
	if exit == nil {
		exit = os.Exit
	}
	return &Dispatcher{window: window, exit: exit}
}

// Dispatch performs the action for id. Quit terminates immediately with
// status 0; unknown identifiers are ignored.
func (d *Dispatcher) Dispatch(id string) {
	switch id {
	case ActionQuit:
		log.Println("Proton Drive quitting from tray")
		d.exit(0)
	case ActionShow:
		if d.window == nil || !d.window.ShowAndFocus() {
			logging.Debugf("tray show ignored; main window not available")
		}
	default:
		logging.Debugf("ignoring tray action %q", id)
	}
}
