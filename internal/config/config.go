// Package config loads runtime configuration: a YAML file layered under
// environment overrides. The platform fee percentage lives here so revenue
// accounting is configurable without code changes.
package config

import (
	"bytes"
	"fmt"
	"log/slog"
	"os"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// Config holds all runtime settings.
type Config struct {
	// StorePath is the SQLite entity store location.
	StorePath string `yaml:"store_path" env:"DXINDEX_STORE_PATH"`

	// FeePercent is the integer platform fee percentage applied to purchase
	// volume with truncating division (5 means 5%).
	FeePercent int `yaml:"fee_percent" env:"DXINDEX_FEE_PERCENT"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level" env:"DXINDEX_LOG_LEVEL"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		StorePath:  "dxindex.db",
		FeePercent: 5,
		LogLevel:   "info",
	}
}

// Load builds the effective configuration: defaults, then the YAML file at
// path (skipped when path is empty), then environment overrides. The YAML
// decode is strict - unknown keys are configuration mistakes, not noise.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&cfg); err != nil {
			return Config{}, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks field ranges.
func (c Config) Validate() error {
	if c.StorePath == "" {
		return fmt.Errorf("store_path must not be empty")
	}
	if c.FeePercent < 0 || c.FeePercent > 100 {
		return fmt.Errorf("fee_percent %d out of range 0-100", c.FeePercent)
	}
	if _, err := c.slogLevel(); err != nil {
		return err
	}
	return nil
}

// SlogLevel maps LogLevel onto a slog level. Call after Validate.
func (c Config) SlogLevel() slog.Level {
	level, err := c.slogLevel()
	if err != nil {
		return slog.LevelInfo
	}
	return level
}

func (c Config) slogLevel() (slog.Level, error) {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("log_level %q: must be one of debug, info, warn, error", c.LogLevel)
	}
}
