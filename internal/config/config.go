// Package config handles loading and validation of advent configuration.
//
// Every field has a working default matching the original workspace
// layout, so a bare repo needs no config file at all. Layers override in
// order: defaults, global config file, workspace advent.yaml, ADVENT_*
// environment variables.
package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"advent/internal/errors"
	"advent/internal/fs"
)

// FileName is the workspace config file name.
const FileName = "advent.yaml"

// Config is the resolved advent configuration.
type Config struct {
	InputDir  string `yaml:"input_dir" env:"ADVENT_INPUT_DIR"`
	SourceDir string `yaml:"source_dir" env:"ADVENT_SOURCE_DIR"`
	Dispatch  string `yaml:"dispatch" env:"ADVENT_DISPATCH"`
	Template  string `yaml:"template" env:"ADVENT_TEMPLATE"`
	Runner    Runner `yaml:"runner"`
	Watch     Watch  `yaml:"watch"`
}

// Runner configures the subprocess used by run and watch.
type Runner struct {
	// Command is the argv prefix; day/problem flags are appended.
	Command []string `yaml:"command" env:"ADVENT_RUNNER_COMMAND" envSeparator:" "`
}

// Watch configures the rerun-on-save loop.
type Watch struct {
	DebounceMS int `yaml:"debounce_ms" env:"ADVENT_DEBOUNCE_MS"`
}

// Default returns the configuration matching the original workspace
// layout: input/ and src/ beside Cargo.toml, dispatch in src/main.rs.
func Default() Config {
	return Config{
		InputDir:  "input",
		SourceDir: "src",
		Dispatch:  filepath.Join("src", "main.rs"),
		Template:  filepath.Join("src", "template.rs"),
		Runner: Runner{
			Command: []string{"cargo", "run", "--quiet", "--"},
		},
		Watch: Watch{
			DebounceMS: 500,
		},
	}
}

// Load resolves the configuration for a workspace.
//
// globalPath may be "" to skip the global layer. A missing file at
// either layer is not an error; an unreadable or invalid one is
// E_CONFIG. Environment variables are applied last.
func Load(fsys fs.FS, root, globalPath string) (Config, error) {
	cfg := Default()

	if globalPath != "" {
		if err := mergeFile(fsys, globalPath, &cfg); err != nil {
			return Config{}, err
		}
	}
	if err := mergeFile(fsys, filepath.Join(root, FileName), &cfg); err != nil {
		return Config{}, err
	}

	if err := env.Parse(&cfg); err != nil {
		return Config{}, errors.Wrap(errors.EConfig, "invalid ADVENT_* environment override", err)
	}

	if err := Validate(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// mergeFile overlays the YAML file at path onto cfg. Fields absent from
// the file keep their current values; a missing file is a no-op.
func mergeFile(fsys fs.FS, path string, cfg *Config) error {
	data, err := fsys.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return errors.Wrap(errors.EConfig, "cannot read "+path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return errors.Wrap(errors.EConfig, "invalid yaml in "+path, err)
	}
	return nil
}

// Debounce returns the watch debounce window as a duration.
func (c Config) Debounce() time.Duration {
	return time.Duration(c.Watch.DebounceMS) * time.Millisecond
}

// DispatchPath returns the dispatch file path under root.
func (c Config) DispatchPath(root string) string {
	return filepath.Join(root, c.Dispatch)
}

// TemplatePath returns the template file path under root.
func (c Config) TemplatePath(root string) string {
	return filepath.Join(root, c.Template)
}

// InputDirPath returns the input directory path under root.
func (c Config) InputDirPath(root string) string {
	return filepath.Join(root, c.InputDir)
}

// SourceDirPath returns the source directory path under root.
func (c Config) SourceDirPath(root string) string {
	return filepath.Join(root, c.SourceDir)
}
