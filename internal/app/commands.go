// Package app holds the command handlers bound to the web-view and the
// window lifecycle hooks.
package app

import (
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/example/protondrive/internal/logging"
	"github.com/example/protondrive/internal/version"
)

// NotificationEvent is the web-view event carrying a Notification.
const NotificationEvent = "notification"

const folderDialogTitle = "Select a folder"

// Window is the main window surface used by the command handlers.
type Window interface {
	PickFolder(title, defaultDir string) (string, error)
	Emit(event string, data ...interface{}) bool
}

// FolderMemory remembers the most recently picked folder.
type FolderMemory interface {
	LastFolder() string
	RememberFolder(path string) error
}

// Notification is emitted to the web-view by ShowNotification.
type Notification struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	Body       string `json:"body"`
	CreatedUTC string `json:"createdUtc"`
}

// Commands exposes the operations invoked from the web-view. Exported methods
// are bound by the window framework and become promises in JavaScript.
type Commands struct {
	window  Window
	folders FolderMemory
}

// NewCommands wires the handlers to the main window and folder memory. A nil
// folders value disables folder persistence.
func NewCommands(window Window, folders FolderMemory) *Commands {
	return &Commands{window: window, folders: folders}
}

// ShowNotification logs the notification and forwards it to the web-view.
func (c *Commands) ShowNotification(title, body string) {
	log.Printf("Notification: %s - %s", title, body)

	n := Notification{
		ID:         uuid.NewString(),
		Title:      title,
		Body:       body,
		CreatedUTC: time.Now().UTC().Format(time.RFC3339),
	}
	if c.window == nil || !c.window.Emit(NotificationEvent, n) {
		logging.Debugf("notification %s not forwarded; no window attached", n.ID)
	}
}

// OpenFileDialog opens the native folder picker. An empty path means the
// dialog was cancelled.
func (c *Commands) OpenFileDialog() (string, error) {
	if c.window == nil {
		return "", nil
	}

	defaultDir := ""
	if c.folders != nil {
		defaultDir = c.folders.LastFolder()
	}

	path, err := c.window.PickFolder(folderDialogTitle, defaultDir)
	if err != nil {
		log.Printf("folder picker failed: %v", err)
		return "", err
	}
	if path == "" {
		logging.Debugf("folder picker cancelled")
		return "", nil
	}

	if c.folders != nil {
		if err := c.folders.RememberFolder(path); err != nil {
			log.Printf("failed to remember folder: %v", err)
		}
	}
	return path, nil
}

// GetAppVersion returns the build version.
func (c *Commands) GetAppVersion() string {
	return version.Version
}

// CheckForUpdates always reports that no update is available.
// TODO: query the release feed once builds publish a version manifest.
func (c *Commands) CheckForUpdates() (bool, error) {
	return false, nil
}
