package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-2048/internal/games/t2048"
)

// isolate points HOME at an empty directory so a real user config is never read.
func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	return home
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	assert.NoError(t, cfg.Validate())
	assert.Equal(t, t2048.DefaultSize, cfg.Board.Size)
}

func TestEmbeddedDefaultMatchesDefault(t *testing.T) {
	var cfg Config
	require.NoError(t, yaml.Unmarshal(defaultYAML, &cfg))
	assert.Equal(t, Default(), cfg)
}

func TestLoadFallsBackToEmbedded(t *testing.T) {
	isolate(t)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadUserConfig(t *testing.T) {
	home := isolate(t)
	writeFile(t, filepath.Join(home, ".t2048", "config.yaml"), "board:\n  size: 5\n")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 5, cfg.Board.Size)
	assert.Equal(t, Default().Storage, cfg.Storage, "missing keys keep defaults")
}

func TestLoadCustomPath(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "custom.yaml")
	writeFile(t, path, "board:\n  size: 3\nlog:\n  level: debug\nstorage:\n  disabled: true\n  db_path: \"\"\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.Board.Size)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.True(t, cfg.Storage.Disabled)
}

func TestLoadCustomPathErrors(t *testing.T) {
	isolate(t)

	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	writeFile(t, bad, "board: [1, 2\n")
	_, err = Load(bad)
	assert.Error(t, err)
}

func TestLoadEnvOverrides(t *testing.T) {
	isolate(t)
	t.Setenv("T2048_SIZE", "6")
	t.Setenv("T2048_DB", "/tmp/scores.db")
	t.Setenv("T2048_LOG_LEVEL", "warn")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 6, cfg.Board.Size)
	assert.Equal(t, "/tmp/scores.db", cfg.Storage.DBPath)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, Default().Log.File, cfg.Log.File, "unset variables leave values alone")
}

func TestLoadRejectsInvalidSize(t *testing.T) {
	isolate(t)
	t.Setenv("T2048_SIZE", "1")

	_, err := Load("")
	require.Error(t, err)
	assert.ErrorIs(t, err, t2048.ErrInvalidSize)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"default", func(*Config) {}, false},
		{"size two", func(c *Config) { c.Board.Size = 2 }, false},
		{"size zero", func(c *Config) { c.Board.Size = 0 }, true},
		{"empty db", func(c *Config) { c.Storage.DBPath = "" }, true},
		{"empty db disabled", func(c *Config) { c.Storage.DBPath = ""; c.Storage.Disabled = true }, false},
		{"upper case level", func(c *Config) { c.Log.Level = "DEBUG" }, false},
		{"unknown level", func(c *Config) { c.Log.Level = "loud" }, true},
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

func TestExpandHome(t *testing.T) {
	home := isolate(t)

	got, err := ExpandHome("~/.t2048/scores.db")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".t2048", "scores.db"), got)

	got, err = ExpandHome("/var/lib/t2048.db")
	require.NoError(t, err)
	assert.Equal(t, "/var/lib/t2048.db", got)
}
