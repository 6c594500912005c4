package pegdsl

import "github.com/corvidlang/peg/combinator"

// Grammar collects named rules as they're declared, mainly so tooling
// (pretty-printers, the cmd/pegfmt "check" subcommand) can enumerate
// them without the caller keeping a separate registry.
type Grammar struct {
	names []string
	rules map[string]combinator.Parser
	start combinator.Parser
}

// NewGrammar creates an empty Grammar.
func NewGrammar() *Grammar {
	return &Grammar{rules: map[string]combinator.Parser{}}
}

// Rule declares a named, possibly self- or mutually-recursive
// production: factory is called lazily (via combinator.Ref), so it may
// freely reference rules not yet defined, as long as they are defined
// by the time parsing begins.
func (g *Grammar) Rule(name string, factory func() combinator.Parser) combinator.Parser {
	ref := combinator.Ref(name, factory)
	g.names = append(g.names, name)
	g.rules[name] = ref
	return ref
}

// Start marks p as the grammar's entry point and returns it, for a
// one-line "last rule is the start rule" declaration style.
func (g *Grammar) Start(p combinator.Parser) combinator.Parser {
	g.start = p
	return p
}

// StartRule returns the parser previously marked via Start, or nil.
func (g *Grammar) StartRule() combinator.Parser { return g.start }

// Names returns every rule name declared so far, in declaration order.
func (g *Grammar) Names() []string {
	out := make([]string, len(g.names))
	copy(out, g.names)
	return out
}

// Rules returns the declared rule parsers by name.
func (g *Grammar) Rules() map[string]combinator.Parser {
	out := make(map[string]combinator.Parser, len(g.rules))
	for k, v := range g.rules {
		out[k] = v
	}
	return out
}
