package combinator

import (
	"github.com/corvidlang/peg"
	"github.com/corvidlang/peg/state"
)

// FoldBuilder computes the value to splice onto the AST stack once a
// fold branch has matched. captured holds every value pushed onto the
// AST stack since the fold began (for left folds: the running left
// value plus this iteration's right-hand values; for right folds: the
// left operand's value and the recursively-built right-hand value).
type FoldBuilder func(st *state.State, span peg.Span, captured []interface{}) interface{}

// Branch pairs a suffix/infix sub-parser with the builder invoked when
// it matches.
type Branch struct {
	Match   Parser
	Build   FoldBuilder
	display string
}

// B constructs a Branch, with an optional display name (used only in
// RuleName rendering; empty is fine).
func B(match Parser, build FoldBuilder, display string) Branch {
	return Branch{Match: match, Build: build, display: display}
}

// LeftFold implements a left-associative operator fold:
// parse operand, then repeatedly try each branch in order; on a match,
// splice the frame captured since the fold began into the branch's
// built value, which becomes the new running left value. Loop until no
// branch matches.
type LeftFold struct {
	operand  Parser
	branches []Branch
	name     string
}

var _ Parser = (*LeftFold)(nil)

// LAssoc builds a LeftFold over operand with the given branches, tried
// in order at each step.
func LAssoc(operand Parser, branches ...Branch) *LeftFold {
	return &LeftFold{operand: operand, branches: branches}
}

func (f *LeftFold) doparse(st *state.State) bool {
	frameStart := st.StackSize()
	foldStart := st.Pos()
	if !Run(f.operand, st) {
		return false
	}
	for {
		matched := false
		for _, br := range f.branches {
			if Run(br.Match, st) {
				span := peg.Span{From: foldStart, To: st.Pos()}
				captured := st.StackFrom(frameStart)
				value := br.Build(st, span, captured)
				st.Splice(frameStart, 0, value, true)
				matched = true
				break
			}
		}
		if !matched {
			break
		}
	}
	return true
}

func (f *LeftFold) Children() []Parser {
	children := make([]Parser, 0, len(f.branches)+1)
	children = append(children, f.operand)
	for _, br := range f.branches {
		children = append(children, br.Match)
	}
	return children
}

func (f *LeftFold) RuleName() string {
	if f.name != "" {
		return f.name
	}
	return "leftfold(" + f.operand.RuleName() + ", ...)"
}

// NullableGiven: a fold always requires the operand, so it is nullable
// iff the operand is — the branches only ever extend an already-matched
// operand.
func (f *LeftFold) NullableGiven(nullable func(Parser) bool) bool {
	return nullable(f.operand)
}

// LeftEdges returns the operand, plus (only when the operand is itself
// nullable) every branch matcher — since a nullable operand lets a
// branch be tried at the fold's starting position too.
func (f *LeftFold) LeftEdges(nullable func(Parser) bool) []Parser {
	edges := []Parser{f.operand}
	if nullable(f.operand) {
		for _, br := range f.branches {
			edges = append(edges, br.Match)
		}
	}
	return edges
}

// RightFold implements a right-associative operator fold: parse
// operand, then try each branch in order; on a match, recurse into a
// fresh RightFold parse for the right-hand side before applying the
// build callback, yielding right-leaning trees.
type RightFold struct {
	operand  Parser
	branches []Branch
	name     string
}

var _ Parser = (*RightFold)(nil)

// RAssoc builds a RightFold over operand with the given branches.
func RAssoc(operand Parser, branches ...Branch) *RightFold {
	return &RightFold{operand: operand, branches: branches}
}

func (f *RightFold) doparse(st *state.State) bool {
	frameStart := st.StackSize()
	foldStart := st.Pos()
	if !Run(f.operand, st) {
		return false
	}
	for _, br := range f.branches {
		if Run(br.Match, st) {
			if !Run(f, st) {
				return false
			}
			span := peg.Span{From: foldStart, To: st.Pos()}
			captured := st.StackFrom(frameStart)
			value := br.Build(st, span, captured)
			st.Splice(frameStart, 0, value, true)
			return true
		}
	}
	return true
}

func (f *RightFold) Children() []Parser {
	children := make([]Parser, 0, len(f.branches)+1)
	children = append(children, f.operand)
	for _, br := range f.branches {
		children = append(children, br.Match)
	}
	return children
}

func (f *RightFold) RuleName() string {
	if f.name != "" {
		return f.name
	}
	return "rightfold(" + f.operand.RuleName() + ", ...)"
}

func (f *RightFold) NullableGiven(nullable func(Parser) bool) bool {
	return nullable(f.operand)
}

func (f *RightFold) LeftEdges(nullable func(Parser) bool) []Parser {
	edges := []Parser{f.operand}
	if nullable(f.operand) {
		for _, br := range f.branches {
			edges = append(edges, br.Match)
		}
	}
	return edges
}
