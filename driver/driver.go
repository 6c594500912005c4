package driver

import (
	"github.com/corvidlang/peg"
	"github.com/corvidlang/peg/analysis"
	"github.com/corvidlang/peg/combinator"
	"github.com/corvidlang/peg/state"
)

// CompiledGrammar wraps a parser graph that has passed (or explicitly
// skipped) the well-formedness visitor, ready to be handed to Parse as
// many times as needed — Compile's cost is paid once regardless of how
// many inputs are subsequently parsed against it.
type CompiledGrammar struct {
	root        combinator.Parser
	diagnostics []analysis.Diagnostic
}

// Root returns the grammar's entry-point parser.
func (g *CompiledGrammar) Root() combinator.Parser { return g.root }

// Diagnostics returns the well-formedness diagnostics observed at
// compile time. A grammar returned by Compile always has none (Compile
// fails instead, and with SkipWellFormedCheck no check runs); only
// CompileLenient can return a grammar with diagnostics.
func (g *CompiledGrammar) Diagnostics() []analysis.Diagnostic { return g.diagnostics }

// Compile runs the well-formedness visitor over root and, if it finds
// no violation, returns a CompiledGrammar ready for Parse. A non-nil
// error is always a *peg.GrammarIllFormedError.
func Compile(root combinator.Parser, opts ...Option) (*CompiledGrammar, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	g := &CompiledGrammar{root: root}
	if o.skipWellFormed {
		return g, nil
	}
	diags := analysis.Check(root)
	g.diagnostics = diags
	if err := analysis.AsError(diags); err != nil {
		tracer().Errorf("grammar rejected: %v", err)
		return nil, err
	}
	return g, nil
}

// CompileLenient runs the well-formedness visitor but never fails:
// callers inspect Diagnostics() themselves and decide whether to
// proceed (e.g. a REPL that wants to show warnings but still let the
// user try the grammar).
func CompileLenient(root combinator.Parser) *CompiledGrammar {
	return &CompiledGrammar{root: root, diagnostics: analysis.Check(root)}
}

// Parse drives a single parse of in against g, starting a fresh
// state.State each call (a State is never reused or shared across
// parses). On success, the outermost combinator.Run has already
// committed every side effect logged during the parse — there is
// nothing further to flush; the journal simply stays applied.
func Parse(g *CompiledGrammar, in peg.Input, opts ...Option) Result {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	st := state.New(in, o.initialCtx)
	ok := combinator.Run(g.root, st)
	if ok && o.requireFullMatch && !peg.AtEOF(in, st.Pos()) {
		ok = false
		st.RecordError(partialMatch{endPos: st.Pos()}, st.Pos())
	}
	if ok {
		return Result{Ok: true, Success: Success{EndPos: st.Pos(), Stack: st.Stack()}}
	}
	pos, causes := st.FurthestError()
	return Result{Ok: false, Failure: Failure{Pos: pos, Causes: causes}}
}

// partialMatch is a peg.Named stand-in used to record a furthest-error
// cause when RequireFullMatch rejects an otherwise-successful parse
// that stopped short of EOF.
type partialMatch struct{ endPos int }

func (p partialMatch) RuleName() string { return "<full match required>" }
