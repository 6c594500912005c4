package combinator

import (
	"testing"

	"github.com/corvidlang/peg"
	"github.com/corvidlang/peg/memo"
	"github.com/corvidlang/peg/state"
)

// TestMemoizerEquivalentToRunningDirectly checks that wrapping a parser
// in a Memo node and running it twice at the same position yields the
// same result as running the bare parser, both on the first (cold) call
// and the second (cache-hit) call.
func TestMemoizerEquivalentToRunningDirectly(t *testing.T) {
	teardown(t)()
	digit := CharIf("digit", func(r rune) bool { return r >= '0' && r <= '9' })
	bare := Plus(digit)
	memoized := Memoize(Plus(digit), memo.NewRing(8, true), false)

	input := peg.NewStringInput("123x")

	bareState := state.New(input, nil)
	bareOK := Run(bare, bareState)

	firstState := state.New(input, nil)
	firstOK := Run(memoized, firstState)
	if firstOK != bareOK || firstState.Pos() != bareState.Pos() {
		t.Fatalf("cold memoized run diverged: got (%v,%d), want (%v,%d)",
			firstOK, firstState.Pos(), bareOK, bareState.Pos())
	}

	// Re-running the SAME MemoNode instance at the same (pos, ctx) must
	// hit the cache and still agree with a bare run.
	secondState := state.New(input, nil)
	secondOK := Run(memoized, secondState)
	if secondOK != bareOK || secondState.Pos() != bareState.Pos() {
		t.Fatalf("cache-hit memoized run diverged: got (%v,%d), want (%v,%d)",
			secondOK, secondState.Pos(), bareOK, bareState.Pos())
	}
}

// TestMemoizerCachesFailureImmediately checks the "hit with EndPos=-1
// fails immediately" branch of the cache lookup.
func TestMemoizerCachesFailureImmediately(t *testing.T) {
	teardown(t)()
	never := Memoize(Lit("nonexistent"), memo.NewRing(4, true), false)
	input := peg.NewStringInput("abc")

	st1 := state.New(input, nil)
	if Run(never, st1) {
		t.Fatal("expected first run to fail")
	}
	st2 := state.New(input, nil)
	if Run(never, st2) {
		t.Fatal("expected cached-failure run to fail")
	}
}

// TestMemoizerReplaysSideEffectsOnHit verifies that a cache hit replays
// the AST-stack mutations the delegate performed on its first (cold)
// run, so a hit is indistinguishable from a fresh run by its own stack
// effects.
func TestMemoizerReplaysSideEffectsOnHit(t *testing.T) {
	teardown(t)()
	pushingDigit := Do(CharIf("digit", func(r rune) bool { return r >= '0' && r <= '9' }),
		func(st *state.State, span peg.Span, _ []interface{}) interface{} { return "digit" })
	memoized := Memoize(pushingDigit, memo.NewRing(4, true), false)
	input := peg.NewStringInput("7")

	cold := state.New(input, nil)
	if !Run(memoized, cold) || cold.StackSize() != 1 {
		t.Fatalf("expected cold run to push one value, stack size %d", cold.StackSize())
	}

	hit := state.New(input, nil)
	if !Run(memoized, hit) || hit.StackSize() != 1 {
		t.Fatalf("expected cache-hit run to replay the push, stack size %d", hit.StackSize())
	}
}
