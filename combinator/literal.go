package combinator

import (
	"fmt"
	"unicode"

	"github.com/corvidlang/peg"
	"github.com/corvidlang/peg/state"
)

// Literal matches a fixed string of characters, one rune through
// CharAt per position, optionally ignoring case. It is a leaf for
// furthest-error purposes.
type Literal struct {
	value      []rune
	ignoreCase bool
	name       string
}

var _ Parser = (*Literal)(nil)

// Lit creates a case-sensitive literal-string matcher.
func Lit(value string) *Literal {
	return &Literal{value: []rune(value), name: fmt.Sprintf("%q", value)}
}

// LitFold creates a case-insensitive literal-string matcher.
func LitFold(value string) *Literal {
	return &Literal{value: []rune(value), ignoreCase: true, name: fmt.Sprintf("%q (fold)", value)}
}

func (l *Literal) doparse(st *state.State) bool {
	if st.Input().Mode() != peg.CharMode {
		panic(&peg.WrongInputModeError{Parser: l.RuleName(), Wanted: peg.CharMode, Got: st.Input().Mode()})
	}
	start := st.Pos()
	for i, want := range l.value {
		got := st.Input().CharAt(start + i)
		if l.ignoreCase {
			got = unicode.ToLower(got)
			want = unicode.ToLower(want)
		}
		if got != want {
			return false
		}
	}
	st.Advance(len(l.value))
	return true
}

func (l *Literal) Children() []Parser { return nil }
func (l *Literal) RuleName() string   { return l.name }
func (l *Literal) leaf() bool         { return true }

// NullableGiven reports true only for the degenerate empty-string literal.
func (l *Literal) NullableGiven(func(Parser) bool) bool { return len(l.value) == 0 }
func (l *Literal) LeftEdges(func(Parser) bool) []Parser { return nil }

// CharPredicate matches a single character satisfying pred. It is a
// leaf for furthest-error purposes.
type CharPredicate struct {
	pred func(rune) bool
	name string
}

var _ Parser = (*CharPredicate)(nil)

// CharIf creates a single-character matcher governed by pred.
func CharIf(name string, pred func(rune) bool) *CharPredicate {
	return &CharPredicate{pred: pred, name: name}
}

func (c *CharPredicate) doparse(st *state.State) bool {
	if st.Input().Mode() != peg.CharMode {
		panic(&peg.WrongInputModeError{Parser: c.RuleName(), Wanted: peg.CharMode, Got: st.Input().Mode()})
	}
	if peg.AtEOF(st.Input(), st.Pos()) {
		return false
	}
	r := st.Input().CharAt(st.Pos())
	if !c.pred(r) {
		return false
	}
	st.Advance(1)
	return true
}

func (c *CharPredicate) Children() []Parser { return nil }
func (c *CharPredicate) RuleName() string   { return c.name }
func (c *CharPredicate) leaf() bool         { return true }

func (c *CharPredicate) NullableGiven(func(Parser) bool) bool { return false }
func (c *CharPredicate) LeftEdges(func(Parser) bool) []Parser { return nil }

// Any matches any single character but EOF.
func Any() *CharPredicate {
	return CharIf("any", func(r rune) bool { return true })
}

// TokenPredicate matches a single token satisfying pred. It is a leaf
// for furthest-error purposes.
type TokenPredicate struct {
	pred func(peg.Token) bool
	name string
}

var _ Parser = (*TokenPredicate)(nil)

// TokIf creates a single-token matcher governed by pred.
func TokIf(name string, pred func(peg.Token) bool) *TokenPredicate {
	return &TokenPredicate{pred: pred, name: name}
}

func (t *TokenPredicate) doparse(st *state.State) bool {
	if st.Input().Mode() != peg.TokenMode {
		panic(&peg.WrongInputModeError{Parser: t.RuleName(), Wanted: peg.TokenMode, Got: st.Input().Mode()})
	}
	tok := st.Input().ObjectAt(st.Pos())
	if tok == nil || !t.pred(tok) {
		return false
	}
	st.Advance(1)
	return true
}

func (t *TokenPredicate) Children() []Parser { return nil }
func (t *TokenPredicate) RuleName() string   { return t.name }
func (t *TokenPredicate) leaf() bool         { return true }

func (t *TokenPredicate) NullableGiven(func(Parser) bool) bool { return false }
func (t *TokenPredicate) LeftEdges(func(Parser) bool) []Parser { return nil }

// TokKind creates a matcher accepting any token of the given kind.
func TokKind(name string, kind int32) *TokenPredicate {
	return TokIf(name, func(t peg.Token) bool { return t.Kind() == kind })
}
