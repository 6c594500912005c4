package combinator

import "github.com/corvidlang/peg/state"

// Custom wraps a hand-written doparse function as a Parser, for grammar
// fragments that don't fit the built-in combinator shapes (e.g. a
// lookup against an external symbol table, a parser generated from a
// DSL). Since nullability cannot be derived from a plain function, the
// caller declares it up front.
type Custom struct {
	name     string
	nullable bool
	fn       func(st *state.State) bool
	children []Parser
	isLeaf   bool
}

var _ Parser = (*Custom)(nil)

// CustomOption configures a Custom parser built by NewCustom.
type CustomOption func(*Custom)

// WithChildren declares the sub-parsers fn may invoke, for graph walks.
func WithChildren(children ...Parser) CustomOption {
	return func(c *Custom) { c.children = children }
}

// AsLeaf marks the custom parser as a furthest-error leaf — appropriate
// when fn does not itself call Run on any child Parser.
func AsLeaf() CustomOption {
	return func(c *Custom) { c.isLeaf = true }
}

// NewCustom builds a Custom parser named name, wrapping fn, declared
// nullable as given (since the well-formedness visitor cannot infer it
// from an opaque function).
func NewCustom(name string, nullable bool, fn func(st *state.State) bool, opts ...CustomOption) *Custom {
	c := &Custom{name: name, nullable: nullable, fn: fn}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Custom) doparse(st *state.State) bool { return c.fn(st) }
func (c *Custom) Children() []Parser           { return c.children }
func (c *Custom) RuleName() string             { return c.name }
func (c *Custom) leaf() bool                   { return c.isLeaf }

func (c *Custom) NullableGiven(func(Parser) bool) bool { return c.nullable }

// LeftEdges conservatively treats every declared child as a left edge,
// since a Custom parser's internal control flow is opaque to analysis.
func (c *Custom) LeftEdges(func(Parser) bool) []Parser { return c.children }
