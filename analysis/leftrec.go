package analysis

import "github.com/corvidlang/peg/combinator"

const (
	white = iota
	gray
	black
)

// findLeftRecursiveCycles runs a DFS over the left-edge graph (the
// edges combinator.Parser.LeftEdges reports, given nullable) and
// returns every cycle discovered, as the slice of parsers on it in
// traversal order. A classic gray/black coloring is enough here: the
// left-edge graph, unlike the full Children graph, only has to be
// walked once since every node's edge set is already resolved against
// the nullability fixed point.
func findLeftRecursiveCycles(root combinator.Parser, nullable map[combinator.Parser]bool) [][]combinator.Parser {
	color := map[combinator.Parser]int{}
	var stack []combinator.Parser
	var cycles [][]combinator.Parser

	lookup := func(q combinator.Parser) bool { return nullable[q] }

	var visit func(p combinator.Parser)
	visit = func(p combinator.Parser) {
		color[p] = gray
		stack = append(stack, p)
		for _, q := range p.LeftEdges(lookup) {
			switch color[q] {
			case white:
				visit(q)
			case gray:
				idx := -1
				for i, s := range stack {
					if s == q {
						idx = i
						break
					}
				}
				if idx >= 0 {
					cycle := make([]combinator.Parser, len(stack)-idx)
					copy(cycle, stack[idx:])
					cycles = append(cycles, cycle)
				}
			case black:
				// already fully explored elsewhere; no new cycle through it
			}
		}
		stack = stack[:len(stack)-1]
		color[p] = black
	}
	visit(root)
	return cycles
}

// anyHandled reports whether some parser on cycle implements
// combinator.LeftRecursiveHandler and asserts it handles recursion —
// the escape hatch for a grammar using an external seeded-growth
// strategy (see combinator.Handled). A single marked node is enough:
// in practice a grammar author wraps the recursive rule itself once,
// not every combinator along the path to its own back-reference.
func anyHandled(cycle []combinator.Parser) bool {
	for _, p := range cycle {
		if h, ok := p.(combinator.LeftRecursiveHandler); ok && h.HandlesLeftRecursion() {
			return true
		}
	}
	return false
}

func cycleNames(cycle []combinator.Parser) []string {
	names := make([]string, len(cycle))
	for i, p := range cycle {
		names[i] = p.RuleName()
	}
	return names
}
