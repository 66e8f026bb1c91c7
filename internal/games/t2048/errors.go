package t2048

import "errors"

var (
	// ErrInvalidSize is returned when a board is smaller than 2x2.
	ErrInvalidSize = errors.New("t2048: board size must be at least 2")

	// ErrInvalidState is returned by LoadState for a malformed game state.
	ErrInvalidState = errors.New("t2048: invalid game state")

	// ErrInvalidDirection is returned for a direction outside up/down/left/right.
	ErrInvalidDirection = errors.New("t2048: invalid direction")
)
