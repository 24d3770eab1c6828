//nolint:goconst // test cases intentionally repeat strings for readability
package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skipf("Could not get home dir: %v", err)
	}

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "tilde expands to home",
			input:    "~/kemureco.db",
			expected: filepath.Join(home, "kemureco.db"),
		},
		{
			name:     "tilde with nested path",
			input:    "~/.local/share/kemureco/kemureco.db",
			expected: filepath.Join(home, ".local", "share", "kemureco", "kemureco.db"),
		},
		{
			name:     "absolute path unchanged",
			input:    "/var/lib/kemureco.db",
			expected: "/var/lib/kemureco.db",
		},
		{
			name:     "relative path unchanged",
			input:    "data/kemureco.db",
			expected: "data/kemureco.db",
		},
		{
			name:     "empty string unchanged",
			input:    "",
			expected: "",
		},
		{
			name:     "tilde only",
			input:    "~",
			expected: home,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := expandPath(tt.input)
			if result != tt.expected {
				t.Errorf("expandPath(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestGetConfigPaths(t *testing.T) {
	paths := getConfigPaths()

	if len(paths) == 0 {
		t.Fatal("getConfigPaths() returned empty slice")
	}

	lastPath := paths[len(paths)-1]
	if lastPath != "config.toml" {
		t.Errorf("last config path = %q, want %q", lastPath, "config.toml")
	}

	if home, err := os.UserHomeDir(); err == nil {
		expectedFirst := filepath.Join(home, ".config", "kemureco", "config.toml")
		if paths[0] != expectedFirst {
			t.Errorf("first config path = %q, want %q", paths[0], expectedFirst)
		}
	}
}

func TestLoadFrom(t *testing.T) {
	dir := t.TempDir()
	base := filepath.Join(dir, "base.toml")
	local := filepath.Join(dir, "local.toml")

	writeFile(t, base, `
db_path = "/tmp/base.db"
log_path = "/tmp/kemureco.log"

[mix]
max_components = 4

[toast]
limit = 2
`)
	writeFile(t, local, `
db_path = "/tmp/local.db"

[mix]
initial_components = 3
`)

	cfg, err := LoadFrom(base, local, filepath.Join(dir, "missing.toml"))
	if err != nil {
		t.Fatalf("LoadFrom() error = %v", err)
	}

	if cfg.DBPath != "/tmp/local.db" {
		t.Errorf("DBPath = %q, want %q", cfg.DBPath, "/tmp/local.db")
	}
	if !cfg.HasLogging() {
		t.Error("HasLogging() = false, want true")
	}
	mix := cfg.GetMixConfig()
	if mix.MaxComponents != 4 {
		t.Errorf("MaxComponents = %d, want 4", mix.MaxComponents)
	}
	if mix.InitialComponents != 3 {
		t.Errorf("InitialComponents = %d, want 3", mix.InitialComponents)
	}
	if got := cfg.GetToastConfig().Limit; got != 2 {
		t.Errorf("Toast.Limit = %d, want 2", got)
	}
}

func TestLoadFrom_InvalidTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.toml")
	writeFile(t, path, "db_path = [")

	if _, err := LoadFrom(path); err == nil {
		t.Error("LoadFrom() error = nil, want parse error")
	}
}

func TestGetMixConfig_Defaults(t *testing.T) {
	cfg := Config{}
	mix := cfg.GetMixConfig()

	if mix.MaxComponents != 3 {
		t.Errorf("MaxComponents = %d, want 3", mix.MaxComponents)
	}
	if mix.InitialComponents != 2 {
		t.Errorf("InitialComponents = %d, want 2", mix.InitialComponents)
	}
}

func TestGetMixConfig_InitialCappedAtMax(t *testing.T) {
	cfg := Config{Mix: MixConfig{MaxComponents: 1, InitialComponents: 2}}
	mix := cfg.GetMixConfig()

	if mix.InitialComponents != 1 {
		t.Errorf("InitialComponents = %d, want 1", mix.InitialComponents)
	}
}

func TestGetToastConfig(t *testing.T) {
	tests := []struct {
		name        string
		config      ToastConfig
		limit       int
		duration    time.Duration
		removeDelay time.Duration
	}{
		{
			name:        "defaults",
			config:      ToastConfig{},
			limit:       1,
			duration:    4 * time.Second,
			removeDelay: time.Second,
		},
		{
			name:        "sticky",
			config:      ToastConfig{DurationMS: -1},
			limit:       1,
			duration:    -1,
			removeDelay: time.Second,
		},
		{
			name:        "custom",
			config:      ToastConfig{Limit: 3, DurationMS: 1500, RemoveDelayMS: 200},
			limit:       3,
			duration:    1500 * time.Millisecond,
			removeDelay: 200 * time.Millisecond,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Config{Toast: tt.config}
			got := cfg.GetToastConfig()
			if got.Limit != tt.limit {
				t.Errorf("Limit = %d, want %d", got.Limit, tt.limit)
			}
			if got.Duration() != tt.duration {
				t.Errorf("Duration() = %v, want %v", got.Duration(), tt.duration)
			}
			if got.RemoveDelay() != tt.removeDelay {
				t.Errorf("RemoveDelay() = %v, want %v", got.RemoveDelay(), tt.removeDelay)
			}
		})
	}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}
