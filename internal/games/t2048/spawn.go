package t2048

import (
	"math/rand"
	"time"
)

// RandomSource supplies randomness for tile spawning.
// *rand.Rand satisfies it; tests inject scripted sources.
type RandomSource interface {
	// Intn returns a value in [0, n).
	Intn(n int) int
}

// SpawnTable holds the candidate values for a new tile.
// One slot in ten yields a 4, the rest a 2.
var SpawnTable = [10]int{4, 2, 2, 2, 2, 2, 2, 2, 2, 2}

// NewRandomSource returns a seeded source. A zero seed uses the current time.
func NewRandomSource(seed int64) RandomSource {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// SpawnTile places a 2 or 4 in a random empty cell of grid, in place.
// The value is drawn before the cell. Returns the index written, or -1 if
// the grid had no empty cell.
func SpawnTile(grid Grid, rng RandomSource) int {
	value := SpawnTable[rng.Intn(len(SpawnTable))]

	emptyCells := EmptyCells(grid)
	if len(emptyCells) == 0 {
		return -1
	}

	idx := emptyCells[rng.Intn(len(emptyCells))]
	grid[idx] = value
	return idx
}
