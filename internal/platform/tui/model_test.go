package tui

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/games/t2048"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

// constSource always returns the same index.
type constSource int

func (c constSource) Intn(n int) int {
	return int(c) % n
}

// fakeSaver keeps results in memory, keyed by game id like the real store.
type fakeSaver struct {
	results map[string]storage.GameResult
	saves   int
	high    int
	err     error
}

func newFakeSaver(high int) *fakeSaver {
	return &fakeSaver{results: map[string]storage.GameResult{}, high: high}
}

func (f *fakeSaver) SaveResult(r storage.GameResult) (int64, error) {
	f.saves++
	if f.err != nil {
		return 0, f.err
	}
	f.results[r.GameID] = r
	return int64(len(f.results)), nil
}

func (f *fakeSaver) HighScore(int) (int, error) {
	return f.high, nil
}

// newTestModel builds a model on a size x size engine loaded with grid.
func newTestModel(t *testing.T, size int, grid t2048.Grid, saver ScoreSaver) Model {
	t.Helper()

	engine, err := t2048.New(size, constSource(0))
	require.NoError(t, err)
	require.NoError(t, engine.LoadState(&t2048.GameState{Grid: grid}))

	cfg := core.DefaultConfig()
	cfg.Size = size
	return NewModel(engine, cfg, Options{Store: saver})
}

func press(t *testing.T, m Model, msg tea.KeyMsg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	updated, ok := next.(Model)
	require.True(t, ok, "Update should return a Model")
	return updated, cmd
}

func TestModelMoveUpdatesEngine(t *testing.T) {
	m := newTestModel(t, 4, t2048.Grid{
		2, 2, 0, 0,
		0, 0, 0, 0,
		0, 0, 0, 0,
		0, 0, 0, 0,
	}, nil)

	m, cmd := press(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	assert.Nil(t, cmd)

	state := m.Engine().GameState()
	assert.Equal(t, 4, state.Score)
	assert.Equal(t, 4, state.Grid[0])
	assert.Equal(t, 1, m.Engine().Moves())
	assert.Equal(t, 4, m.Best(), "best follows the running score")
}

func TestModelRecordsWin(t *testing.T) {
	saver := newFakeSaver(0)
	m := newTestModel(t, 4, t2048.Grid{
		1024, 1024, 0, 0,
		0, 0, 0, 0,
		0, 0, 0, 0,
		0, 0, 0, 0,
	}, saver)

	m, _ = press(t, m, runeKey('a'))
	require.Len(t, saver.results, 1)

	got := saver.results[m.GameID()]
	assert.True(t, got.Won)
	assert.Equal(t, 2048, got.Score)
	assert.Equal(t, 2048, got.MaxTile)
	assert.Equal(t, 4, got.Size)
	assert.Equal(t, 1, got.Moves)

	// Playing on after the win updates the same row
	m, _ = press(t, m, runeKey('d'))
	assert.Len(t, saver.results, 1)
	assert.Equal(t, 2, saver.results[m.GameID()].Moves)
}

func TestModelRecordsLoss(t *testing.T) {
	saver := newFakeSaver(0)
	m := newTestModel(t, 2, t2048.Grid{
		2, 4,
		8, 0,
	}, saver)

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyRight})

	state := m.Engine().GameState()
	require.True(t, state.Over)
	assert.Equal(t, t2048.Grid{2, 4, 4, 8}, state.Grid)

	got, ok := saver.results[m.GameID()]
	require.True(t, ok)
	assert.False(t, got.Won)
	assert.Equal(t, 8, got.MaxTile)
}

func TestModelRestartStartsNewGame(t *testing.T) {
	saver := newFakeSaver(0)
	m := newTestModel(t, 2, t2048.Grid{
		2, 4,
		8, 0,
	}, saver)
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyRight})
	firstID := m.GameID()

	m, _ = press(t, m, runeKey('r'))

	state := m.Engine().GameState()
	assert.False(t, state.Over)
	assert.Equal(t, 0, state.Score)
	assert.Len(t, t2048.EmptyCells(state.Grid), 2)
	assert.NotEqual(t, firstID, m.GameID())
}

func TestModelQuit(t *testing.T) {
	saver := newFakeSaver(0)
	m := newTestModel(t, 4, t2048.Grid{
		2048, 0, 0, 0,
		0, 0, 0, 0,
		0, 0, 0, 0,
		0, 0, 0, 0,
	}, saver)
	m.Engine().GameState().Won = true

	m, cmd := press(t, m, runeKey('q'))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
	assert.Empty(t, m.View())
	assert.Equal(t, 1, saver.saves, "a won game is saved on quit")
}

func TestModelQuitWithoutResultSavesNothing(t *testing.T) {
	saver := newFakeSaver(0)
	m := newTestModel(t, 4, t2048.NewGrid(4), saver)

	_, cmd := press(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.Zero(t, saver.saves)
}

func TestModelSaveErrorKeepsPlaying(t *testing.T) {
	saver := newFakeSaver(0)
	saver.err = errors.New("disk full")
	m := newTestModel(t, 4, t2048.Grid{
		1024, 1024, 0, 0,
		0, 0, 0, 0,
		0, 0, 0, 0,
		0, 0, 0, 0,
	}, saver)

	m, _ = press(t, m, runeKey('a'))
	assert.Equal(t, 1, saver.saves)
	assert.True(t, m.Engine().GameState().Won)
}

func TestModelLoadsBestScore(t *testing.T) {
	m := newTestModel(t, 4, t2048.NewGrid(4), newFakeSaver(5000))
	assert.Equal(t, 5000, m.Best())
	assert.Contains(t, m.View(), "Best: 5000")
}

func TestModelHelpToggle(t *testing.T) {
	m := newTestModel(t, 4, t2048.NewGrid(4), nil)
	before := m.screen.Height()

	m, _ = press(t, m, runeKey('?'))
	assert.True(t, m.help.ShowAll)
	assert.Less(t, m.screen.Height(), before, "full help takes more lines")

	m, _ = press(t, m, runeKey('?'))
	assert.False(t, m.help.ShowAll)
	assert.Equal(t, before, m.screen.Height())
}

func TestModelResize(t *testing.T) {
	m := newTestModel(t, 4, t2048.NewGrid(4), nil)

	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	m = next.(Model)

	assert.Equal(t, 100, m.screen.Width())
	assert.Contains(t, m.View(), "Score: 0")
}
