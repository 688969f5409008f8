// Package paths locates the gridstore configuration and data
// directories. Both follow the same precedence chain: an explicit flag
// beats a config.yaml value, which beats the environment variable,
// which beats the platform convention.
package paths

import (
	"os"
	"path/filepath"
	"runtime"
)

const appDirName = "gridstore"

// CWD-relative directory names used when no override is active.
const (
	DefaultConfigDirName = ".gridstore"
	DefaultDataDirName   = ".gridstore-db"
)

// Environment variable names for directory overrides.
const (
	EnvConfigDir = "GRIDSTORE_CONFIG_DIR"
	EnvDataDir   = "GRIDSTORE_DATA_DIR"
)

// userDir returns the platform base directory for gridstore files.
// On Linux the named XDG variable wins, falling back to the given
// home-relative path. macOS and Windows go through os.UserConfigDir
// (~/Library/Application Support and %APPDATA% respectively).
func userDir(xdgEnv string, homeFallback ...string) (string, error) {
	if runtime.GOOS != "linux" {
		dir, err := os.UserConfigDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(dir, appDirName), nil
	}
	if xdg := os.Getenv(xdgEnv); xdg != "" {
		return filepath.Join(xdg, appDirName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	parts := append([]string{home}, homeFallback...)
	return filepath.Join(append(parts, appDirName)...), nil
}

// DefaultConfigDir returns the platform default configuration directory,
// e.g. ~/.config/gridstore on Linux.
func DefaultConfigDir() (string, error) {
	return userDir("XDG_CONFIG_HOME", ".config")
}

// DefaultDataDir returns the platform default data directory,
// e.g. ~/.local/share/gridstore on Linux.
func DefaultDataDir() (string, error) {
	return userDir("XDG_DATA_HOME", ".local", "share")
}

// ResolveConfigDir resolves the configuration directory:
// flag > GRIDSTORE_CONFIG_DIR > DefaultConfigDir(). Relative overrides
// are made absolute.
func ResolveConfigDir(flag string) (string, error) {
	if flag != "" {
		return filepath.Abs(flag)
	}
	if env := os.Getenv(EnvConfigDir); env != "" {
		return filepath.Abs(env)
	}
	return DefaultConfigDir()
}

// ResolveDataDir resolves the data directory:
// flag > config.yaml data_dir > GRIDSTORE_DATA_DIR > $(CWD)/.gridstore-db.
// The CWD-relative default keeps a repository's records next to it.
func ResolveDataDir(flag, configValue string) (string, error) {
	if flag != "" {
		return filepath.Abs(flag)
	}
	if configValue != "" {
		return filepath.Abs(configValue)
	}
	if env := os.Getenv(EnvDataDir); env != "" {
		return filepath.Abs(env)
	}
	cwd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	return filepath.Join(cwd, DefaultDataDirName), nil
}
