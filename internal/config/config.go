package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/llehouerou/kemureco/internal/ratio"
)

const appName = "kemureco"

type Config struct {
	DBPath  string `koanf:"db_path"`  // empty means $XDG_DATA_HOME/kemureco/kemureco.db
	LogPath string `koanf:"log_path"` // empty disables logging
	Debug   bool   `koanf:"debug"`

	// Catalog seed file loaded by `kemureco seed` when no path is given
	CatalogSeed string `koanf:"catalog_seed"`

	Mix   MixConfig   `koanf:"mix"`
	Toast ToastConfig `koanf:"toast"`
}

// MixConfig holds mix editor limits.
type MixConfig struct {
	MaxComponents     int `koanf:"max_components"`     // default: 3
	InitialComponents int `koanf:"initial_components"` // default: 2, capped at max_components
}

// ToastConfig holds transient notification settings.
type ToastConfig struct {
	Limit         int `koanf:"limit"`           // visible toasts (default: 1)
	DurationMS    int `koanf:"duration_ms"`     // auto-dismiss after (default: 4000, -1 = sticky)
	RemoveDelayMS int `koanf:"remove_delay_ms"` // removal delay after dismiss (default: 1000)
}

func Load() (*Config, error) {
	return LoadFrom(getConfigPaths()...)
}

// LoadFrom loads the given TOML files in order; later files win.
// Missing files are skipped.
func LoadFrom(paths ...string) (*Config, error) {
	k := koanf.New(".")

	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, err
			}
		}
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}

	cfg.DBPath = expandPath(cfg.DBPath)
	cfg.LogPath = expandPath(cfg.LogPath)
	cfg.CatalogSeed = expandPath(cfg.CatalogSeed)

	return cfg, nil
}

func getConfigPaths() []string {
	paths := []string{}

	// 1. ~/.config/kemureco/config.toml
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", appName, "config.toml"))
	}

	// 2. ./config.toml (pwd, highest priority)
	paths = append(paths, "config.toml")

	return paths
}

func expandPath(path string) string {
	if path != "" && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}

// HasLogging returns true if a log file is configured.
func (c *Config) HasLogging() bool {
	return c.LogPath != ""
}

// GetMixConfig returns the mix configuration with defaults applied.
func (c *Config) GetMixConfig() MixConfig {
	cfg := c.Mix

	if cfg.MaxComponents < ratio.MinComponents {
		cfg.MaxComponents = ratio.DefaultMaxComponents
	}
	if cfg.InitialComponents < ratio.MinComponents {
		cfg.InitialComponents = ratio.DefaultInitialComponents
	}
	if cfg.InitialComponents > cfg.MaxComponents {
		cfg.InitialComponents = cfg.MaxComponents
	}

	return cfg
}

// GetToastConfig returns the toast configuration with defaults applied.
func (c *Config) GetToastConfig() ToastConfig {
	cfg := c.Toast

	if cfg.Limit <= 0 {
		cfg.Limit = 1
	}
	if cfg.DurationMS == 0 {
		cfg.DurationMS = 4000
	}
	if cfg.RemoveDelayMS <= 0 {
		cfg.RemoveDelayMS = 1000
	}

	return cfg
}

// Duration returns how long a toast stays visible. Negative means sticky.
func (t ToastConfig) Duration() time.Duration {
	if t.DurationMS < 0 {
		return -1
	}
	return time.Duration(t.DurationMS) * time.Millisecond
}

// RemoveDelay returns how long a dismissed toast lingers before removal.
func (t ToastConfig) RemoveDelay() time.Duration {
	return time.Duration(t.RemoveDelayMS) * time.Millisecond
}
