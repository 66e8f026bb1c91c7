package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-2048/internal/config"
)

// newLogger builds the application logger. While the TUI owns the terminal
// the log goes to cfg.File; otherwise it goes to stderr.
// The returned close function is always safe to call.
func newLogger(cfg config.LogConfig, toFile bool) (*log.Logger, func() error, error) {
	level, err := log.ParseLevel(cfg.Level)
	if err != nil {
		return nil, nil, fmt.Errorf("config: %w", err)
	}

	var w io.Writer = os.Stderr
	closeFn := func() error { return nil }

	if toFile {
		if cfg.File == "" {
			w = io.Discard
		} else {
			f, err := openLogFile(cfg.File)
			if err != nil {
				return nil, nil, err
			}
			w = f
			closeFn = f.Close
		}
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "t2048",
		Level:           level,
	})
	return logger, closeFn, nil
}

// openLogFile opens path for appending, creating parent directories.
func openLogFile(path string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("cannot create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return nil, fmt.Errorf("cannot open log file: %w", err)
	}
	return f, nil
}
