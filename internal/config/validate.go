package config

import (
	"strings"

	"advent/internal/errors"
)

// Validate checks a resolved configuration for usable values.
// Returns E_CONFIG naming the first offending field.
func Validate(cfg Config) error {
	if cfg.InputDir == "" {
		return errors.New(errors.EConfig, "input_dir must not be empty")
	}
	if cfg.SourceDir == "" {
		return errors.New(errors.EConfig, "source_dir must not be empty")
	}
	if cfg.Dispatch == "" {
		return errors.New(errors.EConfig, "dispatch must not be empty")
	}
	if cfg.Template == "" {
		return errors.New(errors.EConfig, "template must not be empty")
	}
	if cfg.Dispatch == cfg.Template {
		return errors.New(errors.EConfig, "dispatch and template must be different files")
	}
	if len(cfg.Runner.Command) == 0 {
		return errors.New(errors.EConfig, "runner.command must not be empty")
	}
	if strings.TrimSpace(cfg.Runner.Command[0]) == "" {
		return errors.New(errors.EConfig, "runner.command[0] must name an executable")
	}
	if cfg.Watch.DebounceMS < 0 {
		return errors.New(errors.EConfig, "watch.debounce_ms must be >= 0")
	}
	return nil
}
