package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/games/t2048"
	"github.com/vovakirdan/tui-2048/internal/platform/tui"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game",
	Long: `Start a game of 2048.

Controls:
  Arrows/WASD/HJKL - Slide tiles
  R                - New game
  ?                - Toggle help
  Q/Esc/Ctrl+C     - Quit

Examples:
  t2048 play
  t2048 play --size 6
  t2048 play --seed 42
  t2048 play --config ./my-2048.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, args []string) error {
	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW: width,
		ScreenH: height,
		Size:    appConfig.Board.Size,
		Seed:    flagSeed,
	}

	logger, closeLog, err := newLogger(appConfig.Log, true)
	if err != nil {
		return err
	}
	defer closeLog()

	engine, err := t2048.New(cfg.Size, t2048.NewRandomSource(cfg.Seed))
	if err != nil {
		return err
	}

	opts := tui.Options{
		Logger:   logger,
		ShowHelp: appConfig.UI.ShowHelp,
	}

	// Open score storage
	if !appConfig.Storage.Disabled {
		store, err := storage.Open(appConfig.Storage.DBPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
			logger.Warn("playing without scores", "err", err)
			// Continue without storage - game still works
		} else {
			defer store.Close()
			opts.Store = store
		}
	}

	logger.Info("starting game", "size", cfg.Size, "seed", cfg.Seed)
	if err := tui.Run(engine, cfg, opts); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
