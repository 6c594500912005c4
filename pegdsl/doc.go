/*
Package pegdsl is a thin convenience layer over package combinator for
hand-written grammars, plus a lexmachine-backed tokenizer that feeds a
peg.TokenInput — the token-mode counterpart to the character-mode
StringInput every other example in this module uses.

The tokenizer wraps lexmachine directly, trimmed to the minimum this
module's Input contract needs: a scan-everything-up-front Tokenize call
rather than a streaming scanner interface, since nothing downstream
needs incremental token pulls.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2019–2024 The corvidlang/peg Authors

*/
package pegdsl

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'peg.pegdsl'.
func tracer() tracing.Trace {
	return tracing.Select("peg.pegdsl")
}
