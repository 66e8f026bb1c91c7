package t2048

import (
	"fmt"
	"strings"
)

// Direction represents a move direction.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// Directions lists every valid move direction.
var Directions = []Direction{DirUp, DirDown, DirLeft, DirRight}

// String returns the lowercase name of the direction.
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// Valid reports whether d is one of the four move directions.
func (d Direction) Valid() bool {
	return d >= DirUp && d <= DirRight
}

// ParseDirection converts user input such as "left" or "L" to a Direction.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "up", "u":
		return DirUp, nil
	case "down", "d":
		return DirDown, nil
	case "left", "l":
		return DirLeft, nil
	case "right", "r":
		return DirRight, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidDirection, s)
}

const (
	// DefaultSize is the standard board dimension.
	DefaultSize = 4

	// Target is the tile value that wins the game.
	Target = 2048
)

// Grid is a size*size board in row-major order. Zero marks an empty cell.
type Grid []int

// NewGrid returns an empty grid for a size x size board.
func NewGrid(size int) Grid {
	return make(Grid, size*size)
}

// Clone returns a copy of the grid.
func (g Grid) Clone() Grid {
	out := make(Grid, len(g))
	copy(out, g)
	return out
}

// Equal reports whether both grids hold the same values.
func (g Grid) Equal(other Grid) bool {
	if len(g) != len(other) {
		return false
	}
	for i := range g {
		if g[i] != other[i] {
			return false
		}
	}
	return true
}

// lineIndices returns the grid indices of line i for dir, ordered from the
// compaction end toward the opposite end. Rows are lines for left/right,
// columns for up/down.
func lineIndices(size int, dir Direction, i int) []int {
	idx := make([]int, size)
	for k := 0; k < size; k++ {
		switch dir {
		case DirLeft:
			idx[k] = i*size + k
		case DirRight:
			idx[k] = i*size + (size - 1 - k)
		case DirUp:
			idx[k] = k*size + i
		case DirDown:
			idx[k] = (size-1-k)*size + i
		}
	}
	return idx
}

// slideLine packs a line toward index 0 and merges adjacent equal pairs.
// A tile produced by a merge is never merged again in the same move.
// Returns the new line and the score gained from merges.
func slideLine(line []int) (result []int, score int) {
	packed := make([]int, 0, len(line))
	for _, v := range line {
		if v != 0 {
			packed = append(packed, v)
		}
	}

	result = make([]int, len(line))
	writePos := 0
	for i := 0; i < len(packed); i++ {
		val := packed[i]
		if i+1 < len(packed) && packed[i+1] == val {
			val *= 2
			score += val
			i++ // partner consumed
		}
		result[writePos] = val
		writePos++
	}

	return result, score
}

// Slide performs a move in the given direction on a copy of grid.
// Returns the new grid, score gained, and whether the grid changed.
// An invalid direction leaves the grid unchanged.
func Slide(grid Grid, size int, dir Direction) (Grid, int, bool) {
	if !dir.Valid() || len(grid) != size*size {
		return grid.Clone(), 0, false
	}

	out := make(Grid, len(grid))
	line := make([]int, size)
	totalScore := 0

	for i := 0; i < size; i++ {
		idx := lineIndices(size, dir, i)
		for k, p := range idx {
			line[k] = grid[p]
		}

		slid, score := slideLine(line)
		for k, p := range idx {
			out[p] = slid[k]
		}
		totalScore += score
	}

	return out, totalScore, !out.Equal(grid)
}

// EmptyCells returns the indices of all empty cells in row-major order.
func EmptyCells(grid Grid) []int {
	var cells []int
	for i, v := range grid {
		if v == 0 {
			cells = append(cells, i)
		}
	}
	return cells
}

// HasEmptyCell returns true if there's at least one empty cell.
func HasEmptyCell(grid Grid) bool {
	for _, v := range grid {
		if v == 0 {
			return true
		}
	}
	return false
}

// HasPossibleMerge returns true if any horizontally or vertically adjacent
// tiles hold the same value.
func HasPossibleMerge(grid Grid, size int) bool {
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			val := grid[y*size+x]
			// Check right neighbor
			if x < size-1 && grid[y*size+x+1] == val {
				return true
			}
			// Check bottom neighbor
			if y < size-1 && grid[(y+1)*size+x] == val {
				return true
			}
		}
	}
	return false
}

// CanMove returns true if any move is possible.
func CanMove(grid Grid, size int) bool {
	return HasEmptyCell(grid) || HasPossibleMerge(grid, size)
}

// IsTerminal returns true if no moves are possible.
func IsTerminal(grid Grid, size int) bool {
	return !CanMove(grid, size)
}

// Contains reports whether any cell holds value.
func Contains(grid Grid, value int) bool {
	for _, v := range grid {
		if v == value {
			return true
		}
	}
	return false
}

// MaxTile returns the maximum tile value on the grid.
func MaxTile(grid Grid) int {
	maxVal := 0
	for _, v := range grid {
		if v > maxVal {
			maxVal = v
		}
	}
	return maxVal
}

// Sum returns the total of all cell values.
func Sum(grid Grid) int {
	total := 0
	for _, v := range grid {
		total += v
	}
	return total
}
