package combinator

import (
	"testing"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"

	"github.com/corvidlang/peg"
	"github.com/corvidlang/peg/state"
)

func teardown(t *testing.T) func() {
	tr := gotestingadapter.QuickConfig(t, "peg.combinator")
	tracer().SetTraceLevel(tracing.LevelInfo)
	return tr
}

// TestGreedyRepeatNeverLeavesATrailingMatchForItsSequel checks that
// seq(repeat(lit('a'), 0, inf), lit('a')) can never succeed, since Repeat
// is greedy and consumes every 'a' available to it.
func TestGreedyRepeatNeverLeavesATrailingMatchForItsSequel(t *testing.T) {
	teardown(t)()
	grammar := Seq(Star(Lit("a")), Lit("a"))
	for _, n := range []int{0, 1, 3, 8} {
		input := peg.NewStringInput(repeatA(n))
		st := state.New(input, nil)
		if Run(grammar, st) {
			t.Fatalf("n=%d: expected failure, greedy repeat should starve the trailing lit('a')", n)
		}
	}
}

func repeatA(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = 'a'
	}
	return string(b)
}

// TestTransactionalityOnFailureRestoresStateFully checks that after a
// failing Run, pos/journal length/AST stack/ctx are all exactly what they
// were before the call.
func TestTransactionalityOnFailureRestoresStateFully(t *testing.T) {
	teardown(t)()
	pushThenFail := Seq(
		Do(Lit("a"), func(st *state.State, _ peg.Span, _ []interface{}) interface{} { return "pushed" }),
		Lit("never matches this"),
	)
	st := state.New(peg.NewStringInput("a-not-b"), "initial-ctx")
	beforePos := st.Pos()
	beforeJournalLen := st.JournalLen()
	beforeStackLen := st.StackSize()
	beforeCtx := st.Ctx()

	if Run(pushThenFail, st) {
		t.Fatal("expected the sequence to fail")
	}
	if st.Pos() != beforePos {
		t.Errorf("pos not restored: got %d, want %d", st.Pos(), beforePos)
	}
	if st.JournalLen() != beforeJournalLen {
		t.Errorf("journal not restored: got %d, want %d", st.JournalLen(), beforeJournalLen)
	}
	if st.StackSize() != beforeStackLen {
		t.Errorf("AST stack not restored: got %d, want %d", st.StackSize(), beforeStackLen)
	}
	if st.Ctx() != beforeCtx {
		t.Errorf("ctx not restored: got %v, want %v", st.Ctx(), beforeCtx)
	}
}

// TestDeterminismSameParserSamePositionSameOutcome checks that running
// the same parser twice at the same (position, ctx) yields the same
// (success, end position, journal delta length).
func TestDeterminismSameParserSamePositionSameOutcome(t *testing.T) {
	teardown(t)()
	p := Do(Plus(CharIf("digit", func(r rune) bool { return r >= '0' && r <= '9' })),
		func(st *state.State, span peg.Span, _ []interface{}) interface{} { return span.To - span.From })

	input := peg.NewStringInput("123abc")
	st1 := state.New(input, nil)
	ok1 := Run(p, st1)
	end1, journal1 := st1.Pos(), st1.JournalLen()

	st2 := state.New(input, nil)
	ok2 := Run(p, st2)
	end2, journal2 := st2.Pos(), st2.JournalLen()

	if ok1 != ok2 || end1 != end2 || journal1 != journal2 {
		t.Fatalf("nondeterministic: run1=(%v,%d,%d) run2=(%v,%d,%d)", ok1, end1, journal1, ok2, end2, journal2)
	}
}

// TestPositiveLookaheadNeverAdvancesOrRetainsEffects checks that And(p)
// never advances position and never retains p's effects, whether p
// matched or not.
func TestPositiveLookaheadNeverAdvancesOrRetainsEffects(t *testing.T) {
	teardown(t)()
	pushing := Do(Lit("a"), func(st *state.State, _ peg.Span, _ []interface{}) interface{} { return "x" })
	look := And(pushing)

	st := state.New(peg.NewStringInput("a"), nil)
	beforeStack := st.StackSize()
	if !Run(look, st) {
		t.Fatal("expected positive lookahead over a matching body to succeed")
	}
	if st.Pos() != 0 {
		t.Errorf("expected position to stay at 0, got %d", st.Pos())
	}
	if st.StackSize() != beforeStack {
		t.Errorf("expected no retained side effects, stack size now %d (was %d)", st.StackSize(), beforeStack)
	}
}

// TestNegativeLookaheadSucceedsOnlyWhenBodyFails checks that !p succeeds
// exactly when p itself would fail, and never advances position either way.
func TestNegativeLookaheadSucceedsOnlyWhenBodyFails(t *testing.T) {
	teardown(t)()
	notA := Not(Lit("a"))

	st := state.New(peg.NewStringInput("b"), nil)
	if !Run(notA, st) {
		t.Fatal("expected !lit('a') to succeed over \"b\"")
	}
	if st.Pos() != 0 {
		t.Errorf("expected negative lookahead not to advance, got pos=%d", st.Pos())
	}

	st2 := state.New(peg.NewStringInput("a"), nil)
	if Run(notA, st2) {
		t.Fatal("expected !lit('a') to fail over \"a\"")
	}
}

// TestOptionalAlwaysSucceeds checks that Optional succeeds whether or
// not its body does, restoring state when the body fails.
func TestOptionalAlwaysSucceeds(t *testing.T) {
	teardown(t)()
	opt := Opt(Lit("a"))

	match := state.New(peg.NewStringInput("a"), nil)
	if !Run(opt, match) || match.Pos() != 1 {
		t.Fatalf("expected optional to consume a matching body, pos=%d", match.Pos())
	}

	noMatch := state.New(peg.NewStringInput("b"), nil)
	if !Run(opt, noMatch) || noMatch.Pos() != 0 {
		t.Fatalf("expected optional to succeed without consuming on a non-match, pos=%d", noMatch.Pos())
	}
}
