package t2048

import (
	"fmt"
	"strconv"

	"github.com/vovakirdan/tui-2048/internal/core"
)

const (
	cellWidth  = 7 // Width of each cell (including left border)
	cellHeight = 2 // Height of each cell (including top border)
	hudHeight  = 3
)

// tileColors maps each standard tile value to a fixed color.
var tileColors = map[int]core.Color{
	2:    core.ColorRed,
	4:    core.ColorBrightRed,
	8:    core.ColorYellow,
	16:   core.ColorOrange,
	32:   core.ColorGreen,
	64:   core.ColorBrightGreen,
	128:  core.ColorBlue,
	256:  core.ColorBrightBlue,
	512:  core.ColorCyan,
	1024: core.ColorMagenta,
	2048: core.ColorBrightWhite,
}

// TileColor returns the display color for a tile value.
// Empty cells are uncolored; values past the palette share a fallback.
func TileColor(value int) core.Color {
	if value == 0 {
		return core.ColorDefault
	}
	if c, ok := tileColors[value]; ok {
		return c
	}
	return core.ColorGradient
}

// DirectionFor maps a platform action to a move direction.
func DirectionFor(a core.Action) (Direction, bool) {
	switch a {
	case core.ActionUp:
		return DirUp, true
	case core.ActionDown:
		return DirDown, true
	case core.ActionLeft:
		return DirLeft, true
	case core.ActionRight:
		return DirRight, true
	default:
		return 0, false
	}
}

// boardExtent returns the drawn board width and height in characters.
func (e *Engine) boardExtent() (int, int) {
	return e.size*cellWidth + 1, e.size*cellHeight + 1
}

// TooSmall reports whether a screen of w x h cannot hold the board and HUD.
func (e *Engine) TooSmall(w, h int) bool {
	boardW, boardH := e.boardExtent()
	return w < boardW+2 || h < boardH+hudHeight+2
}

// Render draws the game state to the screen.
func (e *Engine) Render(dst *core.Screen) {
	dst.Clear()

	if e.TooSmall(dst.Width(), dst.Height()) {
		e.renderTooSmall(dst)
		return
	}

	boardW, boardH := e.boardExtent()
	boardX := (dst.Width() - boardW) / 2
	boardY := hudHeight + 1

	e.renderHUD(dst, boardX, boardW)
	e.renderBoard(dst, boardX, boardY)
	e.renderStatus(dst, core.NewRect(boardX, boardY, boardW, boardH))
}

// renderTooSmall shows a "window too small" message.
func (e *Engine) renderTooSmall(dst *core.Screen) {
	y := dst.Height() / 2
	dst.DrawTextCentered(y, "Window too small")
	dst.DrawTextCentered(y+1, "Please resize terminal")
}

// renderHUD draws the title, score and highest tile.
func (e *Engine) renderHUD(dst *core.Screen, boardX, boardW int) {
	title := "2048"
	dst.DrawText(boardX+(boardW-len(title))/2, 0, title)

	dst.DrawText(boardX, 1, fmt.Sprintf("Score: %d", e.state.Score))

	maxStr := fmt.Sprintf("Max: %d", MaxTile(e.state.Grid))
	dst.DrawText(core.Max(boardX, boardX+boardW-len(maxStr)), 1, maxStr)

	movesStr := fmt.Sprintf("Moves: %d", e.moves)
	dst.DrawText(boardX+(boardW-len(movesStr))/2, 2, movesStr)
}

// renderBoard draws the grid lines and tiles.
func (e *Engine) renderBoard(dst *core.Screen, boardX, boardY int) {
	n := e.size

	// Draw grid borders
	for y := 0; y < n+1; y++ {
		for x := 0; x < n+1; x++ {
			px := boardX + x*cellWidth
			py := boardY + y*cellHeight

			var corner rune
			switch {
			case y == 0 && x == 0:
				corner = '┌'
			case y == 0 && x == n:
				corner = '┐'
			case y == n && x == 0:
				corner = '└'
			case y == n && x == n:
				corner = '┘'
			case y == 0:
				corner = '┬'
			case y == n:
				corner = '┴'
			case x == 0:
				corner = '├'
			case x == n:
				corner = '┤'
			default:
				corner = '┼'
			}
			dst.Set(px, py, corner)

			if x < n {
				for i := 1; i < cellWidth; i++ {
					dst.Set(px+i, py, '─')
				}
			}
			if y < n {
				for i := 1; i < cellHeight; i++ {
					dst.Set(px, py+i, '│')
				}
			}
		}
	}

	// Draw tiles
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			val := e.state.Grid[y*n+x]
			if val == 0 {
				continue
			}

			cellX := boardX + x*cellWidth + 1
			cellY := boardY + y*cellHeight + 1
			color := TileColor(val)

			// Paint the interior so the tile reads as a block
			dst.DrawRect(core.NewRect(cellX, cellY, cellWidth-1, cellHeight-1), ' ', color)

			valStr := strconv.Itoa(val)
			padLeft := core.Max(0, (cellWidth-1-len(valStr))/2)
			dst.DrawTextColored(cellX+padLeft, cellY, valStr, color)
		}
	}
}

// renderStatus draws the win banner or the game over overlay.
func (e *Engine) renderStatus(dst *core.Screen, board core.Rect) {
	switch e.state.Status() {
	case StatusOver:
		cx, cy := board.Center()
		maxStr := fmt.Sprintf("Max tile: %d", MaxTile(e.state.Grid))
		drawOverlay(dst, cx, cy, "GAME OVER", maxStr, "Press R to restart")
	case StatusWon:
		msg := "You won! Keep going or press R"
		dst.DrawTextColored(board.X+(board.W-len(msg))/2, board.Bottom(), msg, TileColor(Target))
	}
}

// drawOverlay draws a centered text overlay.
func drawOverlay(dst *core.Screen, centerX, centerY int, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		maxLen = core.Max(maxLen, len(line))
	}

	boxW := maxLen + 4
	boxH := len(lines) + 2
	box := core.NewRect(centerX-boxW/2, centerY-boxH/2, boxW, boxH)

	// Clear area behind overlay
	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box)

	for i, line := range lines {
		dst.DrawText(centerX-len(line)/2, box.Y+1+i, line)
	}
}
