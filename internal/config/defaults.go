package config

import (
	_ "embed"

	"github.com/vovakirdan/tui-2048/internal/games/t2048"
)

//go:embed defaults/t2048.yaml
var defaultYAML []byte

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Board: BoardConfig{
			Size: t2048.DefaultSize,
		},
		Storage: StorageConfig{
			DBPath: "~/.t2048/scores.db",
		},
		Log: LogConfig{
			File:  "~/.t2048/t2048.log",
			Level: "info",
		},
		UI: UIConfig{
			ShowHelp: false,
		},
	}
}
