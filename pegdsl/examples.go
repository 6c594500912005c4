package pegdsl

import (
	"github.com/corvidlang/peg"
	"github.com/corvidlang/peg/combinator"
	"github.com/corvidlang/peg/state"
)

// ArithmeticGrammar builds a small left-associative sum-of-products
// grammar over decimal integers:
//
//	Expr   := Term (('+' | '-') Term)*
//	Term   := Factor (('*' | '/') Factor)*
//	Factor := digit+ | '(' Expr ')'
//
// The AST stack left by a successful parse holds a single int — the
// grammar's own evaluated value — making it a convenient end-to-end
// demo grammar for the cmd/pegfmt CLI.
func ArithmeticGrammar() combinator.Parser {
	g := NewGrammar()

	digit := combinator.CharIf("digit", func(r rune) bool { return r >= '0' && r <= '9' })
	number := combinator.Do(combinator.Plus(digit), func(st *state.State, span peg.Span, _ []interface{}) interface{} {
		n := 0
		for i := span.From; i < span.To; i++ {
			n = n*10 + int(st.Input().CharAt(i)-'0')
		}
		return n
	})

	var expr combinator.Parser
	exprRef := g.Rule("Expr", func() combinator.Parser { return expr })

	factor := combinator.Alt(
		combinator.Seq(combinator.Lit("("), exprRef, combinator.Lit(")")),
		number,
	).Named("Factor")

	term := combinator.LAssoc(factor,
		combinator.B(combinator.Seq(combinator.Lit("*"), factor), arith(func(a, b int) int { return a * b }), "*"),
		combinator.B(combinator.Seq(combinator.Lit("/"), factor), arith(func(a, b int) int { return a / b }), "/"),
	)

	expr = combinator.LAssoc(term,
		combinator.B(combinator.Seq(combinator.Lit("+"), term), arith(func(a, b int) int { return a + b }), "+"),
		combinator.B(combinator.Seq(combinator.Lit("-"), term), arith(func(a, b int) int { return a - b }), "-"),
	)

	return g.Start(expr)
}

// arith builds a FoldBuilder collapsing a two-element captured frame
// ([left, right]) with op.
func arith(op func(a, b int) int) combinator.FoldBuilder {
	return func(_ *state.State, _ peg.Span, captured []interface{}) interface{} {
		left := captured[0].(int)
		right := captured[len(captured)-1].(int)
		return op(left, right)
	}
}
