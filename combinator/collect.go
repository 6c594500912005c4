package combinator

import (
	"github.com/corvidlang/peg"
	"github.com/corvidlang/peg/state"
)

// Action wraps body: on success, the frame of values pushed onto the
// AST stack since body began is replaced by a single value computed by
// build. The splice goes through the journal like any other mutation,
// so it undoes cleanly if an enclosing combinator later backtracks past
// this point.
type Action struct {
	body  Parser
	build FoldBuilder
	name  string
}

var _ Parser = (*Action)(nil)

// Do builds an Action wrapping body with the given build callback.
func Do(body Parser, build FoldBuilder) *Action {
	return &Action{body: body, build: build}
}

func (a *Action) doparse(st *state.State) bool {
	frameStart := st.StackSize()
	start := st.Pos()
	if !Run(a.body, st) {
		return false
	}
	span := peg.Span{From: start, To: st.Pos()}
	captured := st.StackFrom(frameStart)
	value := a.build(st, span, captured)
	st.Splice(frameStart, 0, value, true)
	return true
}

func (a *Action) Children() []Parser { return []Parser{a.body} }

func (a *Action) RuleName() string {
	if a.name != "" {
		return a.name
	}
	return "action(" + a.body.RuleName() + ")"
}

func (a *Action) NullableGiven(nullable func(Parser) bool) bool { return nullable(a.body) }
func (a *Action) LeftEdges(func(Parser) bool) []Parser          { return []Parser{a.body} }

// LookbackAction is like Action, but also consumes the k values
// immediately below the frame captured since body began, used e.g. to
// fold a just-pushed operator symbol together with its still-to-come
// operand.
type LookbackAction struct {
	body     Parser
	lookback int
	build    FoldBuilder
	name     string
}

var _ Parser = (*LookbackAction)(nil)

// DoLookback builds a LookbackAction wrapping body, additionally
// consuming the k values below the frame.
func DoLookback(body Parser, k int, build FoldBuilder) *LookbackAction {
	return &LookbackAction{body: body, lookback: k, build: build}
}

func (a *LookbackAction) doparse(st *state.State) bool {
	frameStart := st.StackSize()
	start := st.Pos()
	if !Run(a.body, st) {
		return false
	}
	span := peg.Span{From: start, To: st.Pos()}
	captured := st.StackFrom(frameStart - a.lookback)
	value := a.build(st, span, captured)
	st.Splice(frameStart, a.lookback, value, true)
	return true
}

func (a *LookbackAction) Children() []Parser { return []Parser{a.body} }

func (a *LookbackAction) RuleName() string {
	if a.name != "" {
		return a.name
	}
	return "lookback(" + a.body.RuleName() + ")"
}

func (a *LookbackAction) NullableGiven(nullable func(Parser) bool) bool { return nullable(a.body) }
func (a *LookbackAction) LeftEdges(func(Parser) bool) []Parser          { return []Parser{a.body} }
