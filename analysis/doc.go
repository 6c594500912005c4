/*
Package analysis implements the well-formedness visitor:
a static check run once over a parser graph before it is ever used to
parse, catching structural problems no amount of testing guarantees
catching.

It runs, in order:

  - a nullability fixed-point computation over the graph (handling
    cycles introduced by combinator.Lazy), driven entirely by each
    Parser's own NullableGiven method — analysis never inspects a
    combinator's private fields;
  - a left-recursion check: a DFS over the "left-edge" graph that
    reports a cycle unless some parser on it is marked
    combinator.LeftRecursiveHandler;
  - a check for an unbounded repeat whose body is nullable, which would
    otherwise loop forever making zero-width progress.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2019–2024 The corvidlang/peg Authors

*/
package analysis

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'peg.analysis'.
func tracer() tracing.Trace {
	return tracing.Select("peg.analysis")
}
