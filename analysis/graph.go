package analysis

import "github.com/corvidlang/peg/combinator"

// discover walks the parser graph reachable from root, forcing
// resolution of any combinator.Lazy bridge it meets (so that cycles
// introduced purely by a not-yet-parsed recursive reference are visible
// to analysis, not just to a live parse). It returns the set of every
// parser reached, as a slice in discovery order for deterministic
// iteration elsewhere.
func discover(root combinator.Parser) []combinator.Parser {
	visited := map[combinator.Parser]bool{}
	var order []combinator.Parser
	var walk func(p combinator.Parser)
	walk = func(p combinator.Parser) {
		if visited[p] {
			return
		}
		visited[p] = true
		order = append(order, p)
		for _, c := range children(p) {
			walk(c)
		}
	}
	walk(root)
	return order
}

// children returns p's sub-parsers, resolving a Lazy bridge eagerly so
// graph walks see the same edges a live parse eventually would.
func children(p combinator.Parser) []combinator.Parser {
	if l, ok := p.(*combinator.Lazy); ok {
		return []combinator.Parser{l.Resolve()}
	}
	return p.Children()
}
