package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-2048/internal/games/t2048"
)

// constSource always returns the same index.
type constSource int

func (c constSource) Intn(n int) int {
	return int(c) % n
}

// newReplayEngine starts a 2x2 game on [4 4 / 0 0].
func newReplayEngine(t *testing.T) *t2048.Engine {
	t.Helper()
	engine, err := t2048.New(2, constSource(0))
	require.NoError(t, err)
	require.Equal(t, t2048.Grid{4, 4, 0, 0}, engine.GameState().Grid)
	return engine
}

func TestReplayPrintsEachMove(t *testing.T) {
	engine := newReplayEngine(t)
	var out bytes.Buffer

	require.NoError(t, replay(&out, engine, []string{"left", "U"}, false))

	got := out.String()
	assert.True(t, strings.HasPrefix(got, "start\n"))
	assert.Contains(t, got, "move 1: left\n")
	assert.Contains(t, got, "move 2: up (no change)\n")
	assert.Equal(t, 3, strings.Count(got, "score: "))
	assert.Equal(t, t2048.Grid{8, 4, 0, 0}, engine.GameState().Grid)
}

func TestReplayFinalOnly(t *testing.T) {
	engine := newReplayEngine(t)
	var out bytes.Buffer

	require.NoError(t, replay(&out, engine, []string{"l"}, true))
	assert.Equal(t, engine.String(), out.String())
	assert.Contains(t, out.String(), "score: 8 ")
}

func TestReplayRejectsBadDirection(t *testing.T) {
	engine := newReplayEngine(t)
	var out bytes.Buffer

	err := replay(&out, engine, []string{"left", "sideways"}, false)
	require.ErrorIs(t, err, t2048.ErrInvalidDirection)
	assert.Empty(t, out.String(), "nothing is applied when any move is invalid")
	assert.Equal(t, 0, engine.Moves())
}

func TestReplayStopsWhenOver(t *testing.T) {
	engine, err := t2048.New(2, constSource(0))
	require.NoError(t, err)
	require.NoError(t, engine.LoadState(&t2048.GameState{Grid: t2048.Grid{2, 4, 8, 0}}))
	var out bytes.Buffer

	require.NoError(t, replay(&out, engine, []string{"right", "left", "up"}, false))
	assert.True(t, engine.GameState().Over)
	assert.Contains(t, out.String(), "move 1: right")
	assert.NotContains(t, out.String(), "move 2")
}

func TestReadPosition(t *testing.T) {
	dir := t.TempDir()

	yamlPath := filepath.Join(dir, "pos.yaml")
	require.NoError(t, os.WriteFile(yamlPath, []byte("board: [2, 2, 0, 4]\nscore: 12\n"), 0o644))

	state, err := readPosition(yamlPath)
	require.NoError(t, err)
	assert.Equal(t, t2048.Grid{2, 2, 0, 4}, state.Grid)
	assert.Equal(t, 12, state.Score)
	assert.False(t, state.Won)

	jsonPath := filepath.Join(dir, "pos.json")
	require.NoError(t, os.WriteFile(jsonPath, []byte(`{"board": [0, 0, 2048, 0], "score": 20000, "won": true}`), 0o644))

	state, err = readPosition(jsonPath)
	require.NoError(t, err)
	assert.True(t, state.Won)
	assert.Equal(t, 2048, state.Grid[2])

	_, err = readPosition(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}
