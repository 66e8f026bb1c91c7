// t2048 plays the 2048 sliding-tile puzzle in the terminal.
//
// Usage:
//
//	t2048 play                - Play a game
//	t2048 scores              - Show high scores
//	t2048 replay <dir>...     - Apply moves headlessly and print the board
//	t2048 version             - Print the version
//
// Global flags:
//
//	--config <path> - Config file (default search: ~/.t2048/config.yaml, ./configs/t2048.yaml)
//	--size <n>      - Board dimension (default: 4)
//	--seed <value>  - Set RNG seed for reproducible games
//	--db <path>     - Set database path (default: ~/.t2048/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/config"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

var (
	// Global flags
	flagConfig string
	flagSize   int
	flagSeed   int64
	flagDBPath string

	// appConfig is loaded before any subcommand runs.
	appConfig config.Config
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "t2048",
	Short: "2048 - Slide and merge tiles in your terminal",
	Long: `t2048 is a terminal version of the 2048 sliding-tile puzzle.

Slide the board in one of four directions. Equal tiles that meet merge
into their sum. Reach a 2048 tile to win; the game is over when no move
is left.

Available commands:
  play     - Play a game
  scores   - View high scores
  replay   - Apply moves without a UI
  version  - Print the version

Examples:
  t2048 play
  t2048 play --size 5
  t2048 scores --plain
  t2048 replay --seed 42 left up up right`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: loadConfig,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "t2048 %s\n", version)
	},
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().IntVar(&flagSize, "size", 4, "Board dimension (at least 2)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.t2048/scores.db", "Path to scores database")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(replayCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadConfig reads the config file and environment, then applies the
// flags the user set explicitly.
func loadConfig(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("size") {
		cfg.Board.Size = flagSize
	}
	if flags.Changed("db") {
		cfg.Storage.DBPath = flagDBPath
		cfg.Storage.Disabled = false
	}

	if err := cfg.Validate(); err != nil {
		return err
	}
	if err := expandPaths(&cfg); err != nil {
		return err
	}

	appConfig = cfg
	return nil
}

// expandPaths resolves a leading ~ in the file paths of cfg.
func expandPaths(cfg *config.Config) error {
	for _, p := range []*string{&cfg.Storage.DBPath, &cfg.Log.File} {
		expanded, err := config.ExpandHome(*p)
		if err != nil {
			return err
		}
		*p = expanded
	}
	return nil
}
