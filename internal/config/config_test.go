package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func useTempPath(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "nested", "settings.enc")
	t.Setenv("PROTONDRIVE_CONFIG_PATH", path)
	return path
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	useTempPath(t)

	s, err := Load("passphrase")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if s.InstanceID == "" {
		t.Fatalf("expected instance id to be generated")
	}
	if s.Window.Width != DefaultWidth || s.Window.Height != DefaultHeight {
		t.Fatalf("unexpected default window %+v", s.Window)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := useTempPath(t)

	in := Defaults()
	in.LastFolder = "/home/user/Drive"
	in.Window = Window{Width: 1024, Height: 700}
	if err := Save(in, "passphrase"); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read settings file: %v", err)
	}
	if len(raw) < saltSize+nonceSize {
		t.Fatalf("settings file too short: %d bytes", len(raw))
	}

	out, err := Load("passphrase")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if out.InstanceID != in.InstanceID || out.LastFolder != in.LastFolder || out.Window != in.Window {
		t.Fatalf("round trip mismatch: in=%+v out=%+v", in, out)
	}
	if out.UpdatedUTC == "" {
		t.Fatalf("expected UpdatedUTC to be stamped")
	}
}

func TestLoadWrongPassphrase(t *testing.T) {
	useTempPath(t)

	if err := Save(Defaults(), "right"); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}
	_, err := Load("wrong")
	if !errors.Is(err, ErrDecrypt) {
		t.Fatalf("expected ErrDecrypt, got %v", err)
	}
}

func TestOpenStoreRecoversFromCorruptFile(t *testing.T) {
	path := useTempPath(t)
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte("garbage"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}

	store, err := OpenStore("passphrase")
	if err == nil {
		t.Fatalf("expected load error to be reported")
	}
	if store == nil {
		t.Fatalf("expected usable store after corrupt file")
	}
	if store.Snapshot().InstanceID == "" {
		t.Fatalf("expected defaults in recovered store")
	}
}

func TestStoreRememberFolderPersists(t *testing.T) {
	useTempPath(t)

	store := NewStore(nil, "passphrase")
	if err := store.RememberFolder("/data/photos"); err != nil {
		t.Fatalf("RememberFolder returned error: %v", err)
	}
	if store.LastFolder() != "/data/photos" {
		t.Fatalf("unexpected last folder %q", store.LastFolder())
	}

	loaded, err := Load("passphrase")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if loaded.LastFolder != "/data/photos" {
		t.Fatalf("expected persisted folder, got %q", loaded.LastFolder)
	}
}

func TestRemoveMissingFile(t *testing.T) {
	useTempPath(t)
	if err := Remove(); err != nil {
		t.Fatalf("Remove returned error: %v", err)
	}
}

func TestResolvePassphrasePrecedence(t *testing.T) {
	host := func() (string, error) { return "box", nil }
	dir := func() (string, error) { return "/cfg", nil }

	previous := CompiledSecret
	defer func() { CompiledSecret = previous }()

	CompiledSecret = ""
	if got := resolvePassphraseWith(func(string) string { return "" }, host, dir); got != machineSecretPrefix+"box|/cfg" {
		t.Fatalf("unexpected machine passphrase %q", got)
	}
	if got := resolvePassphraseWith(func(string) string { return " env " }, host, dir); got != "env" {
		t.Fatalf("expected env passphrase, got %q", got)
	}

	CompiledSecret = "compiled"
	if got := resolvePassphraseWith(func(string) string { return "env" }, host, dir); got != "compiled" {
		t.Fatalf("expected compiled passphrase to win, got %q", got)
	}
}

func TestStoreRememberWindowIgnoresInvalidSize(t *testing.T) {
	store := NewStore(nil, "passphrase")
	store.RememberWindow(0, 700)
	if got := store.Snapshot().Window; got.Width != DefaultWidth || got.Height != DefaultHeight {
		t.Fatalf("invalid size should be ignored, got %+v", got)
	}
	store.RememberWindow(900, 700)
	if got := store.Snapshot().Window; got.Width != 900 || got.Height != 700 {
		t.Fatalf("unexpected window %+v", got)
	}
}

func TestDecryptRejectsTamperedPayload(t *testing.T) {
	sealed, err := encrypt([]byte(`{"instanceId":"x"}`), "passphrase")
	if err != nil {
		t.Fatalf("encrypt returned error: %v", err)
	}
	plain, err := decrypt(sealed, "passphrase")
	if err != nil || string(plain) != `{"instanceId":"x"}` {
		t.Fatalf("unexpected decrypt result %q, %v", plain, err)
	}

	sealed[len(sealed)-1] ^= 0x01
	if _, err := decrypt(sealed, "passphrase"); !errors.Is(err, ErrDecrypt) {
		t.Fatalf("expected ErrDecrypt for tampered payload, got %v", err)
	}
}
