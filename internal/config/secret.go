package config

import (
	"os"
	"strings"
)

// CompiledSecret holds the settings passphrase provided at build time via
// -ldflags. When empty, PROTONDRIVE_SECRET is consulted and finally a
// machine-bound value is derived so local builds work without setup.
var CompiledSecret string

const machineSecretPrefix = "protondrive-desktop|"

// ResolvePassphrase returns the passphrase used to encrypt settings.
func ResolvePassphrase() string {
	return resolvePassphraseWith(os.Getenv, os.Hostname, os.UserConfigDir)
}

func resolvePassphraseWith(getenv func(string) string, hostname, configDir func() (string, error)) string {
	if compiled := strings.TrimSpace(CompiledSecret); compiled != "" {
		return compiled
	}
	if env := strings.TrimSpace(getenv("PROTONDRIVE_SECRET")); env != "" {
		return env
	}

	host, _ := hostname()
	dir, _ := configDir()
	return machineSecretPrefix + host + "|" + dir
}
