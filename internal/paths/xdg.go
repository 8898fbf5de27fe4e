// Package paths resolves advent's global config location following XDG conventions.
package paths

import (
	"path/filepath"
	"runtime"
)

// Env is the interface for environment variable lookups.
// Implementations must return "" for unset variables.
type Env interface {
	Get(key string) string
}

// ConfigDir computes the global config directory based on environment
// variables and platform defaults.
//
// Resolution order:
//  1. ADVENT_CONFIG_DIR env var (if set)
//  2. macOS: ~/Library/Preferences/advent
//  3. XDG_CONFIG_HOME/advent (if set)
//  4. ~/.config/advent
//
// The homeDir parameter must be an absolute path to the user's home directory.
// This function does not touch the filesystem (no mkdir).
// ~ inside env vars is treated as literal (not expanded).
func ConfigDir(env Env, homeDir string) string {
	return ConfigDirWithOS(env, homeDir, IsDarwin())
}

// IsDarwin returns true if the current OS is macOS.
// Exported for testing purposes.
func IsDarwin() bool {
	return runtime.GOOS == "darwin"
}

// ConfigDirWithOS is like ConfigDir but accepts an explicit OS flag for testing.
func ConfigDirWithOS(env Env, homeDir string, isDarwin bool) string {
	// 1. ADVENT_CONFIG_DIR override
	if v := env.Get("ADVENT_CONFIG_DIR"); v != "" {
		return v
	}
	// 2. macOS default
	if isDarwin {
		return filepath.Join(homeDir, "Library", "Preferences", "advent")
	}
	// 3. XDG_CONFIG_HOME fallback
	if v := env.Get("XDG_CONFIG_HOME"); v != "" {
		return filepath.Join(v, "advent")
	}
	// 4. Default fallback
	return filepath.Join(homeDir, ".config", "advent")
}

// GlobalConfigFile returns the path of the optional global config file,
// config.yaml inside the resolved config directory.
func GlobalConfigFile(env Env, homeDir string) string {
	return filepath.Join(ConfigDir(env, homeDir), "config.yaml")
}
