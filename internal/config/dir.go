// Package config resolves quill's configuration from the environment and
// an optional quill.yaml file.
package config

import (
	"os"
	"path/filepath"
	"runtime"
)

// Dir returns the quill configuration directory.
//
// Resolution:
//   - $QUILL_CONFIG_HOME if set (explicit override)
//   - $XDG_CONFIG_HOME/quill if set (respects XDG on any platform)
//   - %AppData%/quill on Windows
//   - ~/.config/quill on macOS and Linux
func Dir() string {
	if dir := os.Getenv("QUILL_CONFIG_HOME"); dir != "" {
		return dir
	}

	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "quill")
	}

	if runtime.GOOS == "windows" {
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, "quill")
		}
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "quill")
}
