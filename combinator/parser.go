package combinator

import (
	"github.com/corvidlang/peg"
	"github.com/corvidlang/peg/state"
)

// Parser is the contract every combinator implements.
// doparse is unexported: it can only be implemented by types in this
// package, which is exactly the closed set of variants listed in the
// package doc. Host code never calls doparse directly — it calls Run.
type Parser interface {
	doparse(st *state.State) bool
	// Children returns every sub-parser this parser directly invokes,
	// for graph walks (analysis, diagnostics). Leaves return nil.
	Children() []Parser
	// RuleName is an optional display name; combinators without one
	// return a synthesized description (e.g. "seq(\"a\" \"b\")").
	RuleName() string
	// NullableGiven reports whether this parser may succeed consuming
	// zero input, given an estimate of the current nullability of any
	// other parser in the graph — used to drive the fixed-point
	// iteration of the well-formedness visitor's nullability check
	// over a (possibly cyclic, via Lazy) graph.
	NullableGiven(childNullable func(Parser) bool) bool
	// LeftEdges returns the sub-parsers this parser may invoke before
	// consuming any input itself, given the same nullability estimate —
	// the edges of the "left-edge graph" the well-formedness visitor
	// walks to detect unprotected left-recursion.
	LeftEdges(nullable func(Parser) bool) []Parser
}

var _ peg.Named = Parser(nil) // Parser satisfies peg.Named structurally

// isLeaf reports whether p invokes no sub-parsers through Run — i.e.
// whether a failure of p should itself be recorded as a furthest error,
// as opposed to a failure already recorded by one of its children.
type isLeaf interface {
	leaf() bool
}

// Run is the non-overridable executor wrapper: it snapshots state,
// calls p's doparse, and on failure rolls back and (for leaf parsers)
// records the furthest error. It guarantees
// the single-parse rule: after Run, state is either at or beyond its
// starting position with effects retained, or completely restored.
func Run(p Parser, st *state.State) bool {
	snap := st.Snapshot()
	startPos := st.Pos()
	ok := p.doparse(st)
	if ok {
		if st.Pos() < startPos {
			panic(&peg.InternalInvariantError{
				Parser: p.RuleName(),
				Detail: "doparse returned true with the position moved backwards",
			})
		}
		st.Commit(snap)
		return true
	}
	st.Rollback(snap)
	if leaf, isL := p.(isLeaf); isL && leaf.leaf() {
		st.RecordError(p, startPos)
	}
	return false
}
