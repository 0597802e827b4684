// Package paths resolves the configuration directory and the projects root.
package paths

import (
	"os"
	"path/filepath"
	"runtime"
)

// DefaultRootDirName is the directory under the user's home that holds
// projects when nothing else is configured.
const DefaultRootDirName = "projects"

// Environment variable names for directory overrides.
const (
	EnvConfigDir = "WORKBENCH_CONFIG_DIR"
	EnvRoot      = "WORKBENCH_ROOT"
)

// platformDir holds platform-detection functions that can be overridden in tests.
var platformDir = struct {
	homeDir       func() (string, error)
	userConfigDir func() (string, error)
}{
	homeDir:       os.UserHomeDir,
	userConfigDir: os.UserConfigDir,
}

// DefaultConfigDir returns the platform-specific default configuration directory.
//
// Linux:   $XDG_CONFIG_HOME/workbench (fallback ~/.config/workbench)
// macOS:   ~/Library/Application Support/workbench
// Windows: %APPDATA%/workbench
func DefaultConfigDir() (string, error) {
	switch runtime.GOOS {
	case "linux":
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, "workbench"), nil
		}
		home, err := platformDir.homeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, ".config", "workbench"), nil
	default:
		// macOS and Windows use os.UserConfigDir which returns
		// ~/Library/Application Support on macOS and %APPDATA% on Windows.
		dir, err := platformDir.userConfigDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(dir, "workbench"), nil
	}
}

// DefaultRoot returns the default projects root, ~/projects.
func DefaultRoot() (string, error) {
	home, err := platformDir.homeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, DefaultRootDirName), nil
}

// ResolveConfigDir returns the configuration directory following the
// precedence chain: flag > WORKBENCH_CONFIG_DIR env > DefaultConfigDir().
func ResolveConfigDir(flag string) (string, error) {
	if flag != "" {
		return filepath.Abs(flag)
	}
	if env := os.Getenv(EnvConfigDir); env != "" {
		return filepath.Abs(env)
	}
	return DefaultConfigDir()
}

// ResolveRoot returns the projects root following the precedence chain:
// flag > config file value > WORKBENCH_ROOT env > DefaultRoot().
func ResolveRoot(flag, configValue string) (string, error) {
	if flag != "" {
		return filepath.Abs(flag)
	}
	if configValue != "" {
		return filepath.Abs(configValue)
	}
	if env := os.Getenv(EnvRoot); env != "" {
		return filepath.Abs(env)
	}
	return DefaultRoot()
}
