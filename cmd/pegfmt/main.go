/*
Command pegfmt is a small demonstration CLI over this module's built-in
arithmetic grammar (package pegdsl): parse an expression, check a
grammar's well-formedness, or explore interactively in a REPL.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2019–2024 The corvidlang/peg Authors

*/
package main

import (
	"os"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'peg.pegfmt'.
func tracer() tracing.Trace {
	return tracing.Select("peg.pegfmt")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		tracer().Errorf("%v", err)
		os.Exit(1)
	}
}
