package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-2048/internal/games/t2048"
)

// replaySeed is used when --seed is not given, so replays are repeatable.
const replaySeed = 1

var (
	flagFinal bool
	flagFrom  string
)

var replayCmd = &cobra.Command{
	Use:   "replay <dir>...",
	Short: "Apply moves without a UI and print the board",
	Long: `Start a game, apply the given moves in order and print the board.

Directions are up, down, left, right (or u, d, l, r). The same seed and
moves always produce the same boards. Without --seed a fixed seed is used.

--from starts from a saved position instead of a fresh board. The file is
YAML (or JSON) with board, score, won and over keys.

Examples:
  t2048 replay left left up
  t2048 replay --from position.yaml right
  t2048 replay --seed 42 --final l u r d l u r d`,
	Args: cobra.MinimumNArgs(1),
	RunE: runReplay,
}

func init() {
	replayCmd.Flags().BoolVar(&flagFinal, "final", false, "Print only the final board")
	replayCmd.Flags().StringVar(&flagFrom, "from", "", "Start from a position file")
}

func runReplay(cmd *cobra.Command, args []string) error {
	seed := flagSeed
	if !cmd.Flags().Changed("seed") {
		seed = replaySeed
	}

	engine, err := t2048.New(appConfig.Board.Size, t2048.NewRandomSource(seed))
	if err != nil {
		return err
	}

	if flagFrom != "" {
		state, err := readPosition(flagFrom)
		if err != nil {
			return err
		}
		if err := engine.LoadState(state); err != nil {
			return fmt.Errorf("%s: %w", flagFrom, err)
		}
	}

	return replay(cmd.OutOrStdout(), engine, args, flagFinal)
}

// readPosition decodes a game state from a YAML or JSON file.
func readPosition(path string) (*t2048.GameState, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read position: %w", err)
	}

	var state t2048.GameState
	if err := yaml.Unmarshal(data, &state); err != nil {
		return nil, fmt.Errorf("cannot parse position %s: %w", path, err)
	}
	return &state, nil
}

// replay parses every move before applying any, then plays them on engine.
// Moves after the game is over are ignored.
func replay(w io.Writer, engine *t2048.Engine, moves []string, final bool) error {
	dirs := make([]t2048.Direction, 0, len(moves))
	for _, m := range moves {
		dir, err := t2048.ParseDirection(m)
		if err != nil {
			return err
		}
		dirs = append(dirs, dir)
	}

	if !final {
		fmt.Fprintf(w, "start\n%s", engine)
	}

	for i, dir := range dirs {
		if engine.GameState().Over {
			break
		}

		changed, err := engine.Move(dir)
		if err != nil {
			return err
		}
		if final {
			continue
		}

		note := ""
		if !changed {
			note = " (no change)"
		}
		fmt.Fprintf(w, "\nmove %d: %s%s\n%s", i+1, dir, note, engine)
	}

	if final {
		fmt.Fprint(w, engine)
	}
	return nil
}
