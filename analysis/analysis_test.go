package analysis

import (
	"testing"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"

	"github.com/corvidlang/peg/combinator"
)

func teardown(t *testing.T) func() {
	tr := gotestingadapter.QuickConfig(t, "peg.analysis")
	tracer().SetTraceLevel(tracing.LevelInfo)
	return tr
}

func TestCheckWellFormedGrammar(t *testing.T) {
	teardown(t)()
	digit := combinator.CharIf("digit", func(r rune) bool { return r >= '0' && r <= '9' })
	number := combinator.Plus(digit)
	if diags := Check(number); len(diags) != 0 {
		t.Errorf("expected no diagnostics, got %v", diags)
	}
}

func TestCheckDetectsLeftRecursion(t *testing.T) {
	teardown(t)()
	var l combinator.Parser
	lazy := combinator.Ref("L", func() combinator.Parser { return l })
	l = combinator.Alt(
		combinator.Seq(lazy, combinator.Lit("a")),
		combinator.Lit("a"),
	)
	diags := Check(l)
	if len(diags) != 1 {
		t.Fatalf("expected exactly one diagnostic, got %d: %v", len(diags), diags)
	}
	if diags[0].Kind != LeftRecursion {
		t.Errorf("expected LeftRecursion, got %v", diags[0].Kind)
	}
}

func TestHandledLeftRecursionSuppressed(t *testing.T) {
	teardown(t)()
	var l combinator.Parser
	lazy := combinator.Ref("L", func() combinator.Parser { return l })
	l = combinator.Handled(combinator.Alt(
		combinator.Seq(lazy, combinator.Lit("a")),
		combinator.Lit("a"),
	))
	diags := Check(l)
	if len(diags) != 0 {
		t.Errorf("expected the handled cycle to be suppressed, got %v", diags)
	}
}

func TestCheckDetectsNullableUnboundedRepeat(t *testing.T) {
	teardown(t)()
	optionalA := combinator.Opt(combinator.Lit("a"))
	rep := combinator.Star(optionalA)
	diags := Check(rep)
	if len(diags) != 1 {
		t.Fatalf("expected exactly one diagnostic, got %d: %v", len(diags), diags)
	}
	if diags[0].Kind != NullableUnboundedRepeat {
		t.Errorf("expected NullableUnboundedRepeat, got %v", diags[0].Kind)
	}
}

func TestCheckAllowsBoundedNullableRepeat(t *testing.T) {
	teardown(t)()
	optionalA := combinator.Opt(combinator.Lit("a"))
	rep := combinator.Rep(optionalA, 0, 5)
	if diags := Check(rep); len(diags) != 0 {
		t.Errorf("expected no diagnostics for a bounded repeat, got %v", diags)
	}
}
