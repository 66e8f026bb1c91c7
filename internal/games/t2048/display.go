package t2048

import (
	"fmt"
	"strconv"
	"strings"
)

// FormatState renders state as rows of bracketed cells followed by score,
// won and over lines. Cells share one width, sized for the largest tile.
func FormatState(state *GameState, size int) string {
	width := len(strconv.Itoa(MaxTile(state.Grid)))
	blank := strings.Repeat(" ", width)

	var sb strings.Builder
	for i, v := range state.Grid {
		if i%size == 0 {
			sb.WriteByte('\n')
		}
		if v == 0 {
			fmt.Fprintf(&sb, " [ %s ] ", blank)
		} else {
			fmt.Fprintf(&sb, " [ %*d ] ", width, v)
		}
	}

	fmt.Fprintf(&sb, " \nscore: %d \nwon: %t \nover: %t\n", state.Score, state.Won, state.Over)
	return sb.String()
}
