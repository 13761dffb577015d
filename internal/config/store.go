package config

import (
	"encoding/json"
	"errors"
	"sync"
)

// Store guards a loaded Settings value shared between command handlers and
// persists changes as they happen.
type Store struct {
	mu         sync.Mutex
	settings   Settings
	passphrase string
}

// NewStore wraps already loaded settings.
func NewStore(s *Settings, passphrase string) *Store {
	if s == nil {
		s = Defaults()
	}
	s.normalize()
	return &Store{settings: *s, passphrase: passphrase}
}

// OpenStore loads settings from disk. When the file cannot be decrypted or
// parsed it is replaced with defaults and the load error is returned alongside
// a usable store.
func OpenStore(passphrase string) (*Store, error) {
	s, err := Load(passphrase)
	if err == nil {
		return NewStore(s, passphrase), nil
	}
	if errors.Is(err, ErrDecrypt) || isUnmarshalError(err) {
		return NewStore(Defaults(), passphrase), err
	}
	return nil, err
}

// Snapshot returns a copy of the current settings.
func (s *Store) Snapshot() Settings {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.settings
}

// LastFolder returns the most recently picked folder.
func (s *Store) LastFolder() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.settings.LastFolder
}

// RememberFolder records path as the most recently picked folder and saves.
func (s *Store) RememberFolder(path string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if path == "" || path == s.settings.LastFolder {
		return nil
	}
	s.settings.LastFolder = path
	return s.saveLocked()
}

// RememberWindow records the main window size. Non-positive dimensions are
// ignored. The value is persisted on the next Save.
func (s *Store) RememberWindow(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	s.mu.Lock()
	s.settings.Window = Window{Width: width, Height: height}
	s.mu.Unlock()
}

// Save persists the current settings.
func (s *Store) Save() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saveLocked()
}

func (s *Store) saveLocked() error {
	cp := s.settings
	if err := Save(&cp, s.passphrase); err != nil {
		return err
	}
	s.settings.UpdatedUTC = cp.UpdatedUTC
	return nil
}

func isUnmarshalError(err error) bool {
	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	return errors.As(err, &syntaxErr) || errors.As(err, &typeErr)
}
