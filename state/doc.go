/*
Package state implements the parse state threaded through every parser
invocation: current input position, the AST stack, the user context slot,
furthest-error tracking, and the side-effect journal that makes state
mutation transactional.

A snapshot/rollback pair brackets every parser invocation (see package
combinator's executor). Rollback unwinds the journal strictly LIFO,
restoring pos and ctx, while furthest-error fields are intentionally
exempt — they persist across rollback to feed diagnostics.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2019–2024 The corvidlang/peg Authors

*/
package state

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'peg.state'.
func tracer() tracing.Trace {
	return tracing.Select("peg.state")
}
