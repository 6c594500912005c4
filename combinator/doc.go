/*
Package combinator provides the parser contract and its executor
discipline, together with the concrete combinator library: literal and
predicate matchers, sequence, ordered choice, greedy repetition,
optional, positive/negative lookahead, lazy/recursive references and
left-/right-associative operator folds.

Every combinator kind is a distinct concrete type implementing the
closed Parser interface — there is no subclassing, just a shared
doparse/Children/RuleName contract. The executor, Run, is the
non-overridable wrapper enforcing the single-parse rule: on success a
parser's position is at or beyond where it started and its effects
retained; on
failure state is completely restored and, for leaf parsers, the
furthest-error tracker is updated.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2019–2024 The corvidlang/peg Authors

*/
package combinator

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'peg.combinator'.
func tracer() tracing.Trace {
	return tracing.Select("peg.combinator")
}
