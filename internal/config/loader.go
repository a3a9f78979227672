package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// localConfigPath is checked relative to the working directory.
const localConfigPath = "configs/gridsnake.yaml"

// Option overrides a loaded value before validation.
type Option func(*Config)

// WithSeed overrides game.seed.
func WithSeed(seed int64) Option {
	return func(c *Config) { c.Game.Seed = seed }
}

// WithTickInterval overrides game.tick_interval_ms.
func WithTickInterval(d time.Duration) Option {
	return func(c *Config) { c.Game.TickIntervalMS = int(d / time.Millisecond) }
}

// WithLogLevel overrides log.level.
func WithLogLevel(level string) Option {
	return func(c *Config) { c.Log.Level = level }
}

// Load loads the configuration, applies opts and validates the result.
// Search order: customPath -> ~/.gridsnake/config.yaml -> ./configs/gridsnake.yaml -> embedded default.
// Keys missing from a file keep their default value.
func Load(customPath string, opts ...Option) (Config, error) {
	cfg, err := load(customPath)
	if err != nil {
		return cfg, err
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func load(customPath string) (Config, error) {
	cfg := Default()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Unreadable or broken files further down the list are skipped.
	for _, path := range []string{userConfigPath(), localConfigPath} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		candidate := Default()
		if err := yaml.Unmarshal(data, &candidate); err == nil {
			return candidate, nil
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultYAML, &cfg); err != nil {
		return Default(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// userConfigPath returns the path to the user config file, or empty if home
// is unavailable.
func userConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".gridsnake", "config.yaml")
}
