package t2048

// Listener is notified with the live game state. Mutations made by a
// listener are visible to later listeners and to the engine.
type Listener func(state *GameState)

// listeners fire in registration order. Duplicates are allowed.
type listeners []Listener

func (l listeners) fire(state *GameState) {
	for _, fn := range l {
		fn(state)
	}
}

// OnMove registers a listener called after every state-changing move.
func (e *Engine) OnMove(fn Listener) {
	e.moveListeners = append(e.moveListeners, fn)
}

// OnWin registers a listener called after a move that leaves a Target tile
// on the board. Move listeners run first.
func (e *Engine) OnWin(fn Listener) {
	e.winListeners = append(e.winListeners, fn)
}

// OnLose registers a listener called after the move that leaves the board
// with no legal move. Move listeners run first.
func (e *Engine) OnLose(fn Listener) {
	e.loseListeners = append(e.loseListeners, fn)
}
