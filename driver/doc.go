/*
Package driver is the top-level entry point: Compile runs the
well-formedness visitor once over a parser graph and caches the
result, and Parse drives a single parse of
an Input against a compiled grammar, producing a Result that is either
a Success (end position plus the final AST stack) or a Failure (the
furthest position reached and the set of leaf parsers responsible).

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2019–2024 The corvidlang/peg Authors

*/
package driver

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'peg.driver'.
func tracer() tracing.Trace {
	return tracing.Select("peg.driver")
}
