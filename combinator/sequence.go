package combinator

import (
	"strings"

	"github.com/corvidlang/peg/state"
)

// Sequence runs its children in order through Run. It succeeds iff all
// of them succeed; the outer Run's own rollback restores state if any
// child fails. Sequence is not a furthest-error leaf itself — each
// child already recorded its own failure if it was a leaf.
type Sequence struct {
	children []Parser
	name     string
}

var _ Parser = (*Sequence)(nil)

// Seq builds a Sequence of ps, run in order.
func Seq(ps ...Parser) *Sequence {
	return &Sequence{children: ps}
}

// Named attaches a display name to s and returns s.
func (s *Sequence) Named(name string) *Sequence {
	s.name = name
	return s
}

func (s *Sequence) doparse(st *state.State) bool {
	for _, c := range s.children {
		if !Run(c, st) {
			return false
		}
	}
	return true
}

func (s *Sequence) Children() []Parser { return s.children }

// NullableGiven reports whether every child in the sequence is nullable.
func (s *Sequence) NullableGiven(nullable func(Parser) bool) bool {
	for _, c := range s.children {
		if !nullable(c) {
			return false
		}
	}
	return true
}

// LeftEdges returns the children a sequence may invoke before consuming
// input: the first child, plus each subsequent child as long as every
// child before it is nullable.
func (s *Sequence) LeftEdges(nullable func(Parser) bool) []Parser {
	var edges []Parser
	for _, c := range s.children {
		edges = append(edges, c)
		if !nullable(c) {
			break
		}
	}
	return edges
}

func (s *Sequence) RuleName() string {
	if s.name != "" {
		return s.name
	}
	names := make([]string, len(s.children))
	for i, c := range s.children {
		names[i] = c.RuleName()
	}
	return "seq(" + strings.Join(names, " ") + ")"
}
