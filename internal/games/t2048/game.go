// Package t2048 implements the 2048 sliding-tile puzzle engine.
//
// An Engine owns one GameState. It is not safe for concurrent use; callers
// sharing an Engine across goroutines must serialize Move, Reset and
// LoadState themselves.
package t2048

import "fmt"

// Engine runs a single 2048 game on a square board.
type Engine struct {
	size  int
	rng   RandomSource
	state *GameState
	moves int

	moveListeners listeners
	winListeners  listeners
	loseListeners listeners
}

// New creates an engine for a size x size board with two tiles spawned.
// A nil rng uses a time-seeded source.
func New(size int, rng RandomSource) (*Engine, error) {
	if size < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidSize, size)
	}
	if rng == nil {
		rng = NewRandomSource(0)
	}

	e := &Engine{
		size: size,
		rng:  rng,
	}
	e.Reset()
	return e, nil
}

// Reset starts a new game on the same board size.
// Registered listeners are kept.
func (e *Engine) Reset() {
	grid := NewGrid(e.size)

	// Spawn initial tiles (2 tiles)
	SpawnTile(grid, e.rng)
	SpawnTile(grid, e.rng)

	e.state = &GameState{Grid: grid}
	e.moves = 0
}

// LoadState replaces the game state wholesale. The engine keeps the given
// pointer; later moves mutate it.
func (e *Engine) LoadState(state *GameState) error {
	if err := state.Validate(e.size); err != nil {
		return err
	}
	e.state = state
	e.moves = 0
	return nil
}

// GameState returns the live state, not a copy. Callers must not modify it
// outside of listeners; use Clone for a snapshot.
func (e *Engine) GameState() *GameState {
	return e.state
}

// Size returns the board dimension.
func (e *Engine) Size() int {
	return e.size
}

// Moves returns the number of state-changing moves since the last reset.
func (e *Engine) Moves() int {
	return e.moves
}

// Move slides the board in dir. It reports whether the board changed.
//
// A move that changes nothing, or any move once the game is over, leaves
// the state untouched and fires no listeners. A move that leaves a Target
// tile on the board sets Won and skips the spawn. Otherwise one tile is
// spawned and the board is checked for a terminal position.
func (e *Engine) Move(dir Direction) (bool, error) {
	if !dir.Valid() {
		return false, fmt.Errorf("%w: %d", ErrInvalidDirection, int(dir))
	}

	s := e.state
	if s.Over {
		return false, nil
	}

	newGrid, scoreGained, changed := Slide(s.Grid, e.size, dir)
	if !changed {
		// Board didn't change - don't spawn new tile
		return false, nil
	}

	s.Score += scoreGained
	e.moves++

	if Contains(newGrid, Target) {
		copy(s.Grid, newGrid)
		s.Won = true
		e.moveListeners.fire(s)
		e.winListeners.fire(s)
		return true, nil
	}

	SpawnTile(newGrid, e.rng)
	copy(s.Grid, newGrid)

	if IsTerminal(s.Grid, e.size) {
		s.Over = true
		e.moveListeners.fire(s)
		e.loseListeners.fire(s)
		return true, nil
	}

	e.moveListeners.fire(s)
	return true, nil
}

// String returns the bracketed text rendering of the current state.
func (e *Engine) String() string {
	return FormatState(e.state, e.size)
}
