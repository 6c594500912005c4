package driver

import (
	"fmt"
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"

	"github.com/corvidlang/peg"
	"github.com/corvidlang/peg/combinator"
	"github.com/corvidlang/peg/state"
)

func teardown(t *testing.T) func() {
	tr := gotestingadapter.QuickConfig(t, "peg.driver")
	tracer().SetTraceLevel(tracing.LevelInfo)
	return tr
}

func isDigit(r rune) bool { return r >= '0' && r <= '9' }

func TestSumGrammarLeftFold(t *testing.T) {
	teardown(t)()
	digit := combinator.CharIf("digit", isDigit)
	term := combinator.Do(combinator.Plus(digit), func(st *state.State, span peg.Span, _ []interface{}) interface{} {
		n := 0
		for i := span.From; i < span.To; i++ {
			n = n*10 + int(st.Input().CharAt(i)-'0')
		}
		return n
	})
	plus := combinator.Lit("+")
	expr := combinator.LAssoc(term, combinator.B(
		combinator.Seq(plus, term),
		func(_ *state.State, _ peg.Span, captured []interface{}) interface{} {
			total := 0
			for _, v := range captured {
				total += v.(int)
			}
			return total
		},
		"+T",
	))

	g, err := Compile(expr)
	if err != nil {
		t.Fatalf("unexpected compile error: %v", err)
	}

	result := Parse(g, peg.NewStringInput("12+345+6"), RequireFullMatch())
	if !result.Ok {
		t.Fatalf("expected success, got failure at %v: %v", result.Failure.Pos, result.Failure.Causes)
	}
	snaps.MatchSnapshot(t, "sum_grammar_stack", fmt.Sprintf("%v", result.Success.Stack))
}

func TestPrefixCaptureChoiceNeverBacktracksIntoAlternative(t *testing.T) {
	teardown(t)()
	// C := A 'b', A := "a" / "aa" — A commits to "a" on the first
	// alternative that matches, so C over "aab" fails even though
	// "aa" "b" would have succeeded.
	a := combinator.Alt(combinator.Lit("a"), combinator.Lit("aa")).Named("A")
	c := combinator.Seq(a, combinator.Lit("b")).Named("C")

	g, err := Compile(c)
	if err != nil {
		t.Fatalf("unexpected compile error: %v", err)
	}

	result := Parse(g, peg.NewStringInput("aab"), RequireFullMatch())
	if result.Ok {
		t.Fatalf("expected prefix capture to reject \"aab\", got success: %+v", result.Success)
	}
}

func TestRightRecursiveGrammarParses(t *testing.T) {
	teardown(t)()
	// R := "ab" R / "ab"
	var r combinator.Parser
	lazy := combinator.Ref("R", func() combinator.Parser { return r })
	r = combinator.Alt(
		combinator.Seq(combinator.Lit("ab"), lazy),
		combinator.Lit("ab"),
	).Named("R")

	g, err := Compile(r)
	if err != nil {
		t.Fatalf("unexpected compile error: %v", err)
	}

	result := Parse(g, peg.NewStringInput("ababab"), RequireFullMatch())
	if !result.Ok {
		t.Fatalf("expected success, got failure at %v: %v", result.Failure.Pos, result.Failure.Causes)
	}
}

func TestLeftRecursiveGrammarRejectedAtCompile(t *testing.T) {
	teardown(t)()
	// L := L "a" / "a" — classic unprotected left recursion.
	var l combinator.Parser
	lazy := combinator.Ref("L", func() combinator.Parser { return l })
	l = combinator.Alt(
		combinator.Seq(lazy, combinator.Lit("a")),
		combinator.Lit("a"),
	).Named("L")

	_, err := Compile(l)
	if err == nil {
		t.Fatal("expected a *peg.GrammarIllFormedError, got nil")
	}
	if _, ok := err.(*peg.GrammarIllFormedError); !ok {
		t.Fatalf("expected *peg.GrammarIllFormedError, got %T: %v", err, err)
	}
}

func TestRequireFullMatchRejectsPartialMatch(t *testing.T) {
	teardown(t)()
	lit := combinator.Lit("ab")
	g, err := Compile(lit)
	if err != nil {
		t.Fatalf("unexpected compile error: %v", err)
	}
	result := Parse(g, peg.NewStringInput("abc"), RequireFullMatch())
	if result.Ok {
		t.Fatal("expected RequireFullMatch to reject a partial match")
	}
}

func TestAllowPartialMatchAcceptsPartialMatch(t *testing.T) {
	teardown(t)()
	lit := combinator.Lit("ab")
	g, err := Compile(lit)
	if err != nil {
		t.Fatalf("unexpected compile error: %v", err)
	}
	result := Parse(g, peg.NewStringInput("abc"), AllowPartialMatch())
	if !result.Ok || result.Success.EndPos != 2 {
		t.Fatalf("expected a partial match ending at 2, got %+v", result)
	}
}
