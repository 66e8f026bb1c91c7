package t2048

import (
	"strings"
	"testing"
)

func TestFormatState(t *testing.T) {
	state := &GameState{Grid: Grid{2, 0, 0, 4}, Score: 12}

	got := FormatState(state, 2)
	want := "\n [ 2 ]  [   ] \n [   ]  [ 4 ]  \nscore: 12 \nwon: false \nover: false\n"

	if got != want {
		t.Errorf("FormatState() = %q, want %q", got, want)
	}
}

func TestFormatStateFixedWidth(t *testing.T) {
	state := &GameState{Grid: Grid{2048, 0, 2, 16}, Won: true}

	got := FormatState(state, 2)
	lines := strings.Split(got, "\n")

	if lines[1] != " [ 2048 ]  [      ] " {
		t.Errorf("row 0 = %q", lines[1])
	}
	// The last row carries the separator space before the score line
	if lines[2] != " [    2 ]  [   16 ]  " {
		t.Errorf("row 1 = %q", lines[2])
	}
	if len(lines[1]) != len(strings.TrimSuffix(lines[2], " ")) {
		t.Errorf("rows should share a width: %d vs %d", len(lines[1]), len(lines[2]))
	}
	if !strings.Contains(got, "\nwon: true \n") {
		t.Errorf("won line missing in %q", got)
	}
}

func TestEngineString(t *testing.T) {
	e, err := New(2, constSource(1))
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	if err := e.LoadState(&GameState{Grid: Grid{0, 0, 8, 0}, Over: true}); err != nil {
		t.Fatalf("LoadState() failed: %v", err)
	}

	if got, want := e.String(), FormatState(e.GameState(), 2); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
	if !strings.HasSuffix(e.String(), "over: true\n") {
		t.Errorf("String() should end with the over line, got %q", e.String())
	}
}
