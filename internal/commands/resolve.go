// Package commands implements advent CLI commands.
//
// Every command has the same dependency-injected shape: a context, the
// filesystem interface, the caller's working directory, an options
// struct, and stdout/stderr writers. Commands never call os.Exit; they
// return coded errors for the CLI layer to map to exit codes, and they
// write nothing to stdout except the command's stable output.
package commands

import (
	"os"

	"advent/internal/config"
	"advent/internal/errors"
	"advent/internal/fs"
	"advent/internal/paths"
	"advent/internal/workspace"
)

// osEnv implements paths.Env using os.Getenv.
type osEnv struct{}

func (osEnv) Get(key string) string {
	return os.Getenv(key)
}

// resolveWorkspace locates the workspace root above cwd and loads the
// layered configuration for it.
func resolveWorkspace(fsys fs.FS, cwd string) (string, config.Config, error) {
	root, err := workspace.FindRoot(fsys, cwd)
	if err != nil {
		return "", config.Config{}, err
	}
	cfg, err := loadConfig(fsys, root)
	if err != nil {
		return "", config.Config{}, err
	}
	return root, cfg, nil
}

// loadConfig loads the layered configuration for a known root.
func loadConfig(fsys fs.FS, root string) (config.Config, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return config.Config{}, errors.Wrap(errors.EInternal, "failed to get home directory", err)
	}
	return config.Load(fsys, root, paths.GlobalConfigFile(osEnv{}, homeDir))
}
