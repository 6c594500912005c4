package combinator

import (
	"sync"

	"github.com/corvidlang/peg/state"
)

// Lazy delegates to a child parser resolved on first use from factory,
// then memoized. It is the sole mechanism by which a parser graph may
// contain a cycle: non-bridge edges must form a DAG, but Lazy holds a
// non-owning, one-shot-initialized reference to its target, safely
// publishable across goroutines that share the (immutable, once built)
// parser graph.
type Lazy struct {
	name    string
	factory func() Parser
	once    sync.Once
	target  Parser
}

var _ Parser = (*Lazy)(nil)

// Ref builds a Lazy/Recursive bridge. factory is called exactly once,
// on first use, and should return the parser this reference stands in
// for — typically a closure capturing a forward-declared variable that
// has been assigned to by the time parsing actually begins.
func Ref(name string, factory func() Parser) *Lazy {
	return &Lazy{name: name, factory: factory}
}

func (l *Lazy) resolve() Parser {
	l.once.Do(func() {
		l.target = l.factory()
	})
	return l.target
}

// Resolve forces resolution and returns the target, without parsing.
// Graph walks that must see through a not-yet-parsed cycle (the
// well-formedness visitor, grammar pretty-printers) use this instead of
// Children, which only reports a resolved target.
func (l *Lazy) Resolve() Parser { return l.resolve() }

func (l *Lazy) doparse(st *state.State) bool {
	return Run(l.resolve(), st)
}

// Children returns the resolved target once resolution has happened at
// least once, and nil before that.
func (l *Lazy) Children() []Parser {
	if l.target == nil {
		return nil
	}
	return []Parser{l.target}
}

func (l *Lazy) RuleName() string {
	if l.name != "" {
		return l.name
	}
	return "lazy(...)"
}

// NullableGiven defers to the resolved target's current nullability
// estimate — correct even mid fixed-point, since the caller supplies
// the target itself as one of the nodes under iteration.
func (l *Lazy) NullableGiven(nullable func(Parser) bool) bool {
	return nullable(l.resolve())
}

// LeftEdges returns the resolved target: invoking a Lazy reference
// before consuming input is exactly invoking what it stands for.
func (l *Lazy) LeftEdges(func(Parser) bool) []Parser {
	return []Parser{l.resolve()}
}
