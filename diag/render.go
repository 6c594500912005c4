package diag

import (
	"fmt"
	"strings"

	"github.com/pterm/pterm"

	"github.com/corvidlang/peg/driver"
)

// Render formats failure as a single plain-text line: the furthest
// position reached (translated through lm) and the rule names that
// failed there, joined by " or ".
func Render(failure driver.Failure, lm LineMap) string {
	if len(failure.Causes) == 0 {
		return "parse failed (no cause recorded)"
	}
	line, col := lm.LineCol(failure.Pos)
	return fmt.Sprintf("parse failed at line %d, column %d: expected %s",
		line, col, strings.Join(failure.Causes, " or "))
}

// Pretty renders failure as a styled pterm.Error line, plus (when src
// is non-empty) the offending source line with a caret under the
// failure column.
func Pretty(failure driver.Failure, lm LineMap, src string) string {
	var b strings.Builder
	b.WriteString(pterm.Error.Sprint(Render(failure, lm)))
	if src != "" {
		line, col := lm.LineCol(failure.Pos)
		_ = line
		snippet := sourceSnippet(src, failure.Pos)
		if snippet != "" {
			b.WriteString("\n")
			b.WriteString(snippet)
			b.WriteString("\n")
			if col > 0 {
				b.WriteString(strings.Repeat(" ", col-1))
			}
			b.WriteString(pterm.FgRed.Sprint("^"))
		}
	}
	return b.String()
}
