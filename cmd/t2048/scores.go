package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-2048/internal/platform/tui"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

// browseSizes are the board sizes offered by the interactive scoreboard.
var browseSizes = []int{3, 4, 5, 6, 7, 8}

var (
	flagPlain bool
	flagLimit int
	flagClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores",
	Long: `Display high scores for a board size.

On a terminal this opens an interactive table; use left/right to switch
board sizes. When output is redirected, or with --plain, the top scores
are printed as text.

Examples:
  t2048 scores
  t2048 scores --size 5 --plain
  t2048 scores --clear --size 3`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagPlain, "plain", false, "Print scores as text")
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of scores to print")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all scores for the board size")
}

func runScores(cmd *cobra.Command, args []string) error {
	if appConfig.Storage.Disabled {
		return errors.New("score storage is disabled in the config")
	}

	store, err := storage.Open(appConfig.Storage.DBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	size := appConfig.Board.Size
	out := cmd.OutOrStdout()

	if flagClear {
		if err := store.ClearScores(size); err != nil {
			return err
		}
		fmt.Fprintf(out, "Cleared %dx%d scores.\n", size, size)
		return nil
	}

	if !flagPlain && term.IsTerminal(int(os.Stdout.Fd())) {
		width, height, err := term.GetSize(int(os.Stdout.Fd()))
		if err != nil {
			width, height = 80, 24
		}
		sizes := browseSizes
		if !slices.Contains(sizes, size) {
			sizes = append(slices.Clone(sizes), size)
			slices.Sort(sizes)
		}
		return tui.RunScoreboard(store, sizes, size, width, height)
	}

	return printScores(out, store, size, flagLimit)
}

// printScores writes the top scores for size as plain text.
func printScores(w io.Writer, store *storage.Store, size, limit int) error {
	scores, err := store.TopScores(size, limit)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "High Scores - %dx%d\n\n", size, size)

	if len(scores) == 0 {
		fmt.Fprintln(w, "No scores recorded yet.")
		fmt.Fprintln(w)
		fmt.Fprintf(w, "Play 't2048 play --size %d' to set the first high score!\n", size)
		return nil
	}

	// Print header
	fmt.Fprintf(w, "  %-4s  %-8s  %-6s  %-6s  %-3s  %s\n", "Rank", "Score", "Max", "Moves", "Won", "Date")
	fmt.Fprintf(w, "  %-4s  %-8s  %-6s  %-6s  %-3s  %s\n", "----", "-----", "---", "-----", "---", "----")

	for i, r := range scores {
		won := "-"
		if r.Won {
			won = "yes"
		}
		fmt.Fprintf(w, "  %-4d  %-8d  %-6d  %-6d  %-3s  %s\n",
			i+1, r.Score, r.MaxTile, r.Moves, won, r.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.Stats(size)
	if err != nil {
		return err
	}
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Best: %d  Games: %d  Wins: %d  Best tile: %d\n",
		stats.HighScore, stats.GamesCount, stats.Wins, stats.BestTile)
	return nil
}
