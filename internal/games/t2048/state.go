package t2048

import "fmt"

// Status summarizes where a game stands.
type Status string

const (
	StatusPlaying Status = "playing"
	StatusWon     Status = "won"
	StatusOver    Status = "over"
)

// GameState is the complete state of one game.
type GameState struct {
	Grid  Grid `json:"board" yaml:"board"`
	Score int  `json:"score" yaml:"score"`
	Won   bool `json:"won" yaml:"won"`
	Over  bool `json:"over" yaml:"over"`
}

// Status returns the current game status. Over takes precedence over Won.
func (s *GameState) Status() Status {
	switch {
	case s.Over:
		return StatusOver
	case s.Won:
		return StatusWon
	default:
		return StatusPlaying
	}
}

// Clone returns a deep copy of the state.
func (s *GameState) Clone() *GameState {
	c := *s
	c.Grid = s.Grid.Clone()
	return &c
}

// Validate checks the structural shape of the state for a size x size board.
func (s *GameState) Validate(size int) error {
	if s == nil {
		return fmt.Errorf("%w: nil state", ErrInvalidState)
	}
	if len(s.Grid) != size*size {
		return fmt.Errorf("%w: grid has %d cells, want %d", ErrInvalidState, len(s.Grid), size*size)
	}
	if s.Score < 0 {
		return fmt.Errorf("%w: negative score %d", ErrInvalidState, s.Score)
	}
	for i, v := range s.Grid {
		if v != 0 && !isTileValue(v) {
			return fmt.Errorf("%w: cell %d holds %d", ErrInvalidState, i, v)
		}
	}
	return nil
}

// isTileValue reports whether v is a power of two no smaller than 2.
func isTileValue(v int) bool {
	return v >= 2 && v&(v-1) == 0
}
