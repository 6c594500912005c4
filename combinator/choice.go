package combinator

import (
	"strings"

	"github.com/corvidlang/peg/state"
)

// Choice tries its children in order through Run and returns on the
// first success — vertical backtracking. It never revisits a child
// after one has succeeded (ordered PEG choice, not CFG alternation), so
// it is a direct source of prefix capture.
type Choice struct {
	children []Parser
	name     string
}

var _ Parser = (*Choice)(nil)

// Alt builds an ordered Choice over ps.
func Alt(ps ...Parser) *Choice {
	return &Choice{children: ps}
}

// Named attaches a display name to c and returns c.
func (c *Choice) Named(name string) *Choice {
	c.name = name
	return c
}

func (c *Choice) doparse(st *state.State) bool {
	for _, child := range c.children {
		if Run(child, st) {
			return true
		}
	}
	return false
}

func (c *Choice) Children() []Parser { return c.children }

// NullableGiven reports whether any alternative is nullable.
func (c *Choice) NullableGiven(nullable func(Parser) bool) bool {
	for _, ch := range c.children {
		if nullable(ch) {
			return true
		}
	}
	return false
}

// LeftEdges returns every alternative — each is tried at the same
// starting position.
func (c *Choice) LeftEdges(func(Parser) bool) []Parser { return c.children }

func (c *Choice) RuleName() string {
	if c.name != "" {
		return c.name
	}
	names := make([]string, len(c.children))
	for i, ch := range c.children {
		names[i] = ch.RuleName()
	}
	return "choice(" + strings.Join(names, " / ") + ")"
}
