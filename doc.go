/*
Package peg implements the core of a context-sensitive parser combinator
framework in the PEG (parsing expression grammar) tradition.

It recognizes a prefix of an input sequence — characters or opaque
tokens — by running a graph of composable parsers. Parsers support
vertical backtracking under a single-parse rule (a parser at a given
input position and context yields a deterministic result), transactional
side effects on a user-visible AST stack that automatically undo on
backtrack, memoization of sub-parse results, and furthest-error tracking
for diagnostics.

Package structure is as follows:

■ state: the parse state and its side-effect journal — transactional
mutation with automatic undo on backtrack.

■ combinator: the parser contract, the executor discipline around it,
and the combinator library (sequence, choice, repeat, optional,
lookahead, lazy/recursive references, operator folds).

■ memo: a bounded memoizer for sub-parse results and the memo-parser
wrapper around a delegate.

■ analysis: a well-formedness visitor detecting unprotected
left-recursion and nullable unbounded repetition in a parser graph.

■ driver: the top-level entry point, `driver.Parse(root, input, opts...)`.

■ diag: rendering of furthest-error diagnostics.

■ pegdsl: a small grammar-construction surface used by the tests and by
cmd/pegfmt; the core itself is agnostic to any concrete grammar.

This base package contains the types shared by all of the above:
Position, Input and the error taxonomy raised by the core.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2019–2024 The corvidlang/peg Authors

*/
package peg
