package diag

import (
	"strings"
	"testing"

	"github.com/corvidlang/peg/driver"
)

func TestTextLineMapLineCol(t *testing.T) {
	src := "aa\nbbb\nc"
	lm := NewTextLineMap(src)
	cases := []struct {
		pos       int
		line, col int
	}{
		{0, 1, 1},
		{1, 1, 2},
		{3, 2, 1},
		{6, 2, 4},
		{7, 3, 1},
	}
	for _, c := range cases {
		line, col := lm.LineCol(c.pos)
		if line != c.line || col != c.col {
			t.Errorf("LineCol(%d) = (%d,%d), want (%d,%d)", c.pos, line, col, c.line, c.col)
		}
	}
}

func TestRenderJoinsCauses(t *testing.T) {
	failure := driver.Failure{Pos: 3, Causes: []string{"\"a\"", "\"b\""}}
	got := Render(failure, NewTextLineMap("xx\nyyyy"))
	if !strings.Contains(got, "line 2") || !strings.Contains(got, "\"a\" or \"b\"") {
		t.Errorf("unexpected rendering: %q", got)
	}
}

func TestRenderNoCauses(t *testing.T) {
	got := Render(driver.Failure{Pos: 0}, NoLineMap{})
	if got == "" {
		t.Error("expected a non-empty message even with no recorded cause")
	}
}
