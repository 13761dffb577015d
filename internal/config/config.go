package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

const (
	configDirName  = "protondrive-desktop"
	configFileName = "settings.enc"

	// DefaultWidth and DefaultHeight size the main window on first launch.
	DefaultWidth  = 1200
	DefaultHeight = 800
)

// Window holds the persisted main window geometry.
type Window struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Settings represents the persisted settings file.
type Settings struct {
	InstanceID string `json:"instanceId"`
	LastFolder string `json:"lastFolder,omitempty"`
	Window     Window `json:"window"`
	UpdatedUTC string `json:"updatedUtc,omitempty"`
}

// Defaults returns fresh settings with a new instance identifier.
func Defaults() *Settings {
	return &Settings{
		InstanceID: uuid.NewString(),
		Window:     Window{Width: DefaultWidth, Height: DefaultHeight},
	}
}

func (s *Settings) normalize() {
	if s.InstanceID == "" {
		s.InstanceID = uuid.NewString()
	}
	if s.Window.Width <= 0 {
		s.Window.Width = DefaultWidth
	}
	if s.Window.Height <= 0 {
		s.Window.Height = DefaultHeight
	}
}

// Path returns the resolved settings file path.
func Path() (string, error) {
	if custom := os.Getenv("PROTONDRIVE_CONFIG_PATH"); custom != "" {
		if err := os.MkdirAll(filepath.Dir(custom), 0o700); err != nil {
			return "", fmt.Errorf("ensure custom config directory: %w", err)
		}
		return custom, nil
	}

	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("determine user config dir: %w", err)
	}

	dir := filepath.Join(base, configDirName)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return "", fmt.Errorf("ensure config directory: %w", err)
	}

	return filepath.Join(dir, configFileName), nil
}

// Load retrieves the encrypted settings using the provided passphrase. A
// missing file yields Defaults.
func Load(passphrase string) (*Settings, error) {
	if passphrase == "" {
		return nil, errors.New("missing passphrase for settings decryption")
	}

	path, err := Path()
	if err != nil {
		return nil, err
	}

	raw, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return Defaults(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("read settings: %w", err)
	}

	data, err := decrypt(raw, passphrase)
	if err != nil {
		return nil, fmt.Errorf("decrypt settings: %w", err)
	}

	var s Settings
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("unmarshal settings: %w", err)
	}
	s.normalize()

	return &s, nil
}

// Save persists the settings encrypted with the provided passphrase.
func Save(s *Settings, passphrase string) error {
	if passphrase == "" {
		return errors.New("missing passphrase for settings encryption")
	}
	if s == nil {
		return errors.New("nil settings")
	}

	s.UpdatedUTC = time.Now().UTC().Format(time.RFC3339)
	raw, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal settings: %w", err)
	}

	data, err := encrypt(raw, passphrase)
	if err != nil {
		return fmt.Errorf("encrypt settings: %w", err)
	}

	path, err := Path()
	if err != nil {
		return err
	}

	tempFile := path + ".tmp"
	if err := os.WriteFile(tempFile, data, 0o600); err != nil {
		return fmt.Errorf("write encrypted settings: %w", err)
	}

	return os.Rename(tempFile, path)
}

// Remove deletes the settings file. A missing file is not an error.
func Remove() error {
	path, err := Path()
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove settings: %w", err)
	}
	return nil
}
