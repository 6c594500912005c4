package combinator

import (
	"github.com/corvidlang/peg/state"
)

// PositiveLookahead succeeds iff its body succeeds, but never advances
// position nor retains the body's side effects — it snapshots, runs the
// body, and always rolls back, regardless of outcome. Nullable.
type PositiveLookahead struct {
	body Parser
}

var _ Parser = (*PositiveLookahead)(nil)

// And builds a positive (predicate) lookahead over body.
func And(body Parser) *PositiveLookahead {
	return &PositiveLookahead{body: body}
}

func (l *PositiveLookahead) doparse(st *state.State) bool {
	snap := st.Snapshot()
	ok := Run(l.body, st)
	st.Rollback(snap)
	return ok
}

func (l *PositiveLookahead) Children() []Parser { return []Parser{l.body} }
func (l *PositiveLookahead) RuleName() string   { return "&(" + l.body.RuleName() + ")" }

func (l *PositiveLookahead) NullableGiven(func(Parser) bool) bool { return true }
func (l *PositiveLookahead) LeftEdges(func(Parser) bool) []Parser { return []Parser{l.body} }

// NegativeLookahead succeeds iff its body fails; like PositiveLookahead
// it never advances position or retains effects. It records no furthest
// error of its own when it rejects a successful body; failing leaves
// inside the body are recorded by Run as usual. Nullable.
type NegativeLookahead struct {
	body Parser
}

var _ Parser = (*NegativeLookahead)(nil)

// Not builds a negative lookahead over body.
func Not(body Parser) *NegativeLookahead {
	return &NegativeLookahead{body: body}
}

func (l *NegativeLookahead) doparse(st *state.State) bool {
	snap := st.Snapshot()
	ok := Run(l.body, st)
	st.Rollback(snap)
	return !ok
}

func (l *NegativeLookahead) Children() []Parser { return []Parser{l.body} }
func (l *NegativeLookahead) RuleName() string   { return "!(" + l.body.RuleName() + ")" }

func (l *NegativeLookahead) NullableGiven(func(Parser) bool) bool { return true }
func (l *NegativeLookahead) LeftEdges(func(Parser) bool) []Parser { return []Parser{l.body} }
