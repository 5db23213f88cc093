// Package config loads machine-local configuration from
// ~/.config/saltlab/config.toml. User preferences (theme, goal,
// notifications) live in the database; this file only holds what the
// binary needs before the database is open.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config holds all file-backed configuration.
type Config struct {
	Database DatabaseConfig `toml:"database"`
	Analyzer AnalyzerConfig `toml:"analyzer"`
}

// DatabaseConfig controls where the sqlite file lives.
type DatabaseConfig struct {
	Path string `toml:"path"`
}

// AnalyzerConfig points at the food-image classification service.
type AnalyzerConfig struct {
	URL            string `toml:"url"`
	APIKey         string `toml:"api_key"`
	TimeoutSeconds int    `toml:"timeout_seconds"`
}

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		Analyzer: AnalyzerConfig{
			TimeoutSeconds: 30,
		},
	}
}

// Load reads config.toml from the saltlab config directory, falling
// back to defaults when the file is absent.
func Load() (Config, error) {
	cfg := Default()
	path := filepath.Join(configHome(), "config.toml")

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}

	if cfg.Analyzer.TimeoutSeconds <= 0 {
		cfg.Analyzer.TimeoutSeconds = 30
	}
	return cfg, nil
}

// Save writes the config file, creating the directory if needed.
func Save(cfg Config) error {
	path := filepath.Join(configHome(), "config.toml")
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return toml.NewEncoder(f).Encode(cfg)
}

func configHome() string {
	if env := os.Getenv("SALTLAB_HOME"); env != "" {
		return env
	}
	cfg, err := os.UserConfigDir()
	if err != nil {
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".saltlab")
	}
	return filepath.Join(cfg, "saltlab")
}
