// Package paths provides path resolution utilities.
package paths

import (
	"os"
	"path/filepath"
)

// localConfig is the per-project config file, checked before the user config.
const localConfig = ".vimcore/config.yaml"

// ConfigFile resolves the config file to load.
//
// Lookup order:
//   - ".vimcore/config.yaml" in the current directory, if it exists
//   - "~/.config/vimcore/config.yaml"
//
// The returned path may not exist; callers treat a missing file as
// "use defaults".
func ConfigFile() string {
	if _, err := os.Stat(localConfig); err == nil {
		return localConfig
	}
	return filepath.Join(ConfigDir(), "config.yaml")
}

// ConfigDir returns the user configuration directory for vimcore.
func ConfigDir() string {
	if base, err := os.UserConfigDir(); err == nil {
		return filepath.Join(base, "vimcore")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "vimcore")
}

// LogFile resolves a log file path. Absolute paths are returned as is,
// relative paths are kept relative to the working directory so a
// `--debug` run drops its log next to the session.
func LogFile(name string) string {
	if name == "" {
		name = "vimcore.log"
	}
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Clean(name)
}
