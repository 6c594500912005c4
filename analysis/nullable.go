package analysis

import "github.com/corvidlang/peg/combinator"

// nullableSet computes, for every parser reachable from root, whether it
// may succeed consuming zero input. The computation is a monotone
// fixed-point: every parser starts false, and repeatedly asking each
// node to re-derive its own nullability (via NullableGiven, which only
// ever asks "is some child nullable" or "are all children nullable") can
// only flip a false to a true, never the reverse — so the loop is
// guaranteed to terminate, and terminates as soon as a full pass over
// the node set produces no change.
func nullableSet(root combinator.Parser) map[combinator.Parser]bool {
	nodes := discover(root)
	nullable := make(map[combinator.Parser]bool, len(nodes))
	for _, p := range nodes {
		nullable[p] = false
	}
	lookup := func(q combinator.Parser) bool { return nullable[q] }
	for changed := true; changed; {
		changed = false
		for _, p := range nodes {
			next := p.NullableGiven(lookup)
			if next != nullable[p] {
				nullable[p] = next
				changed = true
			}
		}
	}
	return nullable
}
