/*
Package memo implements a bounded memoizer for sub-parse results: a cache from (producing component, position, context)
to either a recorded success (an end position plus a delta of side
effects to replay on a hit) or a recorded failure.

The package is agnostic of the concrete Parser type — keys are any
comparable identity — so that the wrapping Memo Parser node (which must
implement combinator.Parser, and therefore must live in package
combinator) can depend on memo without creating an import cycle.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2019–2024 The corvidlang/peg Authors

*/
package memo

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'peg.memo'.
func tracer() tracing.Trace {
	return tracing.Select("peg.memo")
}
