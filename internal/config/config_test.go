package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "dxindex.db", cfg.StorePath)
	assert.Equal(t, 5, cfg.FeePercent)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoad_FromFile(t *testing.T) {
	path := writeConfig(t, `
store_path: /tmp/test.db
fee_percent: 10
log_level: debug
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "/tmp/test.db", cfg.StorePath)
	assert.Equal(t, 10, cfg.FeePercent)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	path := writeConfig(t, "fee_percent: 2\n")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 2, cfg.FeePercent)
	assert.Equal(t, "dxindex.db", cfg.StorePath)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeConfig(t, "fee_percent: 10\nlog_level: warn\n")
	t.Setenv("DXINDEX_FEE_PERCENT", "25")
	t.Setenv("DXINDEX_STORE_PATH", "/tmp/env.db")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 25, cfg.FeePercent)
	assert.Equal(t, "/tmp/env.db", cfg.StorePath)
	assert.Equal(t, "warn", cfg.LogLevel, "file value survives when no env override exists")
}

func TestLoad_UnknownKeyRejected(t *testing.T) {
	path := writeConfig(t, "fee_precent: 10\n")

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults valid", func(c *Config) {}, false},
		{"fee zero", func(c *Config) { c.FeePercent = 0 }, false},
		{"fee hundred", func(c *Config) { c.FeePercent = 100 }, false},
		{"fee negative", func(c *Config) { c.FeePercent = -1 }, true},
		{"fee over hundred", func(c *Config) { c.FeePercent = 101 }, true},
		{"empty store path", func(c *Config) { c.StorePath = "" }, true},
		{"bad log level", func(c *Config) { c.LogLevel = "verbose" }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestSlogLevel(t *testing.T) {
	cfg := Default()
	cfg.LogLevel = "error"
	assert.Equal(t, slog.LevelError, cfg.SlogLevel())

	cfg.LogLevel = "nonsense"
	assert.Equal(t, slog.LevelInfo, cfg.SlogLevel(), "unvalidated nonsense falls back to info")
}
