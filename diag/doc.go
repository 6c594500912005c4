/*
Package diag renders a driver.Failure — a furthest-reached position
plus the leaf parsers that failed there — into human-readable output,
using styled console reporting (github.com/pterm/pterm).

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2019–2024 The corvidlang/peg Authors

*/
package diag
