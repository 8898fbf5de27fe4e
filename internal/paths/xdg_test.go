package paths

import (
	"path/filepath"
	"testing"
)

// mapEnv is a simple map-backed Env implementation for testing.
type mapEnv map[string]string

func (m mapEnv) Get(key string) string {
	return m[key]
}

func TestConfigDir(t *testing.T) {
	home := filepath.FromSlash("/home/testuser")

	tests := []struct {
		name     string
		env      mapEnv
		isDarwin bool
		want     string
	}{
		{
			name:     "ADVENT_CONFIG_DIR override (darwin)",
			env:      mapEnv{"ADVENT_CONFIG_DIR": "/custom/config"},
			isDarwin: true,
			want:     "/custom/config",
		},
		{
			name:     "ADVENT_CONFIG_DIR override (linux)",
			env:      mapEnv{"ADVENT_CONFIG_DIR": "/custom/config"},
			isDarwin: false,
			want:     "/custom/config",
		},
		{
			name:     "darwin default",
			env:      mapEnv{},
			isDarwin: true,
			want:     filepath.FromSlash("/home/testuser/Library/Preferences/advent"),
		},
		{
			name:     "XDG_CONFIG_HOME fallback (linux)",
			env:      mapEnv{"XDG_CONFIG_HOME": "/xdg/config"},
			isDarwin: false,
			want:     filepath.FromSlash("/xdg/config/advent"),
		},
		{
			name:     "default fallback (linux)",
			env:      mapEnv{},
			isDarwin: false,
			want:     filepath.FromSlash("/home/testuser/.config/advent"),
		},
		{
			name:     "ADVENT_CONFIG_DIR takes precedence over XDG",
			env:      mapEnv{"ADVENT_CONFIG_DIR": "/override", "XDG_CONFIG_HOME": "/xdg/config"},
			isDarwin: false,
			want:     "/override",
		},
		{
			name:     "darwin ignores XDG_CONFIG_HOME",
			env:      mapEnv{"XDG_CONFIG_HOME": "/xdg/config"},
			isDarwin: true,
			want:     filepath.FromSlash("/home/testuser/Library/Preferences/advent"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ConfigDirWithOS(tt.env, home, tt.isDarwin)
			if got != tt.want {
				t.Errorf("ConfigDir = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestConfigDir_TildeNotExpanded(t *testing.T) {
	// ~ inside env vars is treated as literal (not expanded)
	home := filepath.FromSlash("/home/testuser")
	env := mapEnv{"ADVENT_CONFIG_DIR": "~/config"}

	got := ConfigDirWithOS(env, home, false)

	if got != "~/config" {
		t.Errorf("ConfigDir = %q, want %q (tilde should not be expanded)", got, "~/config")
	}
}

func TestConfigDir_EmptyEnvVarIgnored(t *testing.T) {
	home := filepath.FromSlash("/home/testuser")
	// Empty string should be treated as unset
	env := mapEnv{"ADVENT_CONFIG_DIR": ""}

	got := ConfigDirWithOS(env, home, false)

	want := filepath.FromSlash("/home/testuser/.config/advent")
	if got != want {
		t.Errorf("ConfigDir = %q, want %q (empty env var should be ignored)", got, want)
	}
}

func TestGlobalConfigFile(t *testing.T) {
	home := filepath.FromSlash("/home/testuser")
	env := mapEnv{"ADVENT_CONFIG_DIR": "/custom"}

	got := GlobalConfigFile(env, home)
	want := filepath.FromSlash("/custom/config.yaml")
	if got != want {
		t.Errorf("GlobalConfigFile = %q, want %q", got, want)
	}
}
