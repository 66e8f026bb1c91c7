package main

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-2048/internal/storage"
)

func TestPrintScores(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	var out bytes.Buffer
	require.NoError(t, printScores(&out, store, 4, 10))
	assert.Contains(t, out.String(), "No scores recorded yet.")

	_, err = store.SaveResult(storage.GameResult{GameID: "a", Size: 4, Score: 3000, MaxTile: 256, Moves: 300})
	require.NoError(t, err)
	_, err = store.SaveResult(storage.GameResult{GameID: "b", Size: 4, Score: 21000, MaxTile: 2048, Moves: 1000, Won: true})
	require.NoError(t, err)

	out.Reset()
	require.NoError(t, printScores(&out, store, 4, 10))

	got := out.String()
	assert.Contains(t, got, "High Scores - 4x4")
	assert.Contains(t, got, "Best: 21000  Games: 2  Wins: 1  Best tile: 2048")
	assert.Less(t, bytes.Index(out.Bytes(), []byte("21000")), bytes.Index(out.Bytes(), []byte("3000 ")))
}
