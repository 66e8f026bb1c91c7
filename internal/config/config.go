// Package config provides YAML-based configuration loading for the 2048
// game, with environment variable overrides.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/vovakirdan/tui-2048/internal/games/t2048"
)

// Config contains all configuration for the game.
type Config struct {
	Board   BoardConfig   `yaml:"board"`
	Storage StorageConfig `yaml:"storage"`
	Log     LogConfig     `yaml:"log"`
	UI      UIConfig      `yaml:"ui"`
}

// BoardConfig defines the board shape.
type BoardConfig struct {
	Size int `yaml:"size" env:"T2048_SIZE" env-upd:""`
}

// StorageConfig defines where scores are kept.
type StorageConfig struct {
	DBPath   string `yaml:"db_path" env:"T2048_DB" env-upd:""`
	Disabled bool   `yaml:"disabled" env:"T2048_NO_DB" env-upd:""`
}

// LogConfig defines logging output.
type LogConfig struct {
	File  string `yaml:"file" env:"T2048_LOG_FILE" env-upd:""`
	Level string `yaml:"level" env:"T2048_LOG_LEVEL" env-upd:""`
}

// UIConfig defines terminal UI preferences.
type UIConfig struct {
	ShowHelp bool `yaml:"show_help" env:"T2048_SHOW_HELP" env-upd:""`
}

// logLevels are the accepted values for LogConfig.Level.
var logLevels = []string{"debug", "info", "warn", "error"}

// Validate checks that the configuration can start a game.
func (c Config) Validate() error {
	if c.Board.Size < 2 {
		return fmt.Errorf("config: %w: got %d", t2048.ErrInvalidSize, c.Board.Size)
	}
	if !c.Storage.Disabled && c.Storage.DBPath == "" {
		return errors.New("config: storage.db_path is required unless storage is disabled")
	}

	level := strings.ToLower(c.Log.Level)
	for _, l := range logLevels {
		if level == l {
			return nil
		}
	}
	return fmt.Errorf("config: unknown log level %q (want one of %s)", c.Log.Level, strings.Join(logLevels, ", "))
}

// ExpandHome replaces a leading ~ with the user's home directory.
func ExpandHome(path string) (string, error) {
	if path == "" || path[0] != '~' {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("config: cannot expand home directory: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}
