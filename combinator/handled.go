package combinator

import "github.com/corvidlang/peg/state"

// LeftRecursiveHandler is implemented by wrappers that assert their
// delegate has already been given a left-recursion-safe growing
// strategy outside the built-in combinator set (e.g. a Custom parser
// implementing seeded left recursion against an external memo table).
// The well-formedness visitor's cycle check does not flag a cycle in
// which at least one member implements this interface and returns true;
// the other members of the cycle are not checked for it.
type LeftRecursiveHandler interface {
	HandlesLeftRecursion() bool
}

// handled transparently wraps a delegate and asserts it safely handles
// any left-recursive cycle it participates in.
type handled struct {
	delegate Parser
}

var _ Parser = (*handled)(nil)
var _ LeftRecursiveHandler = (*handled)(nil)

// Handled marks delegate as left-recursion-safe, suppressing the
// well-formedness visitor's cycle diagnostic for any cycle it lies on,
// whether or not the cycle's other participants carry this marker. It
// is a transparent pass
// through to delegate in every other respect; wrapping a parser that
// in fact has no recursion-handling strategy of its own will surface
// as non-termination or a stack overflow at parse time, not as a
// caught error.
func Handled(delegate Parser) Parser {
	return &handled{delegate: delegate}
}

func (h *handled) doparse(st *state.State) bool { return Run(h.delegate, st) }
func (h *handled) Children() []Parser           { return []Parser{h.delegate} }
func (h *handled) RuleName() string             { return h.delegate.RuleName() }
func (h *handled) HandlesLeftRecursion() bool   { return true }

func (h *handled) NullableGiven(nullable func(Parser) bool) bool { return nullable(h.delegate) }
func (h *handled) LeftEdges(func(Parser) bool) []Parser          { return []Parser{h.delegate} }
