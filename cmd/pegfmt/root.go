package main

import (
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/npillmayer/schuko/tracing"
)

var traceLevel string

var rootCmd = &cobra.Command{
	Use:   "pegfmt",
	Short: "A demonstration CLI over a PEG parser-combinator grammar",
	Long: `pegfmt drives the built-in arithmetic demonstration grammar
(package pegdsl) through this module's well-formedness visitor and
driver: parse an expression, check a grammar, or explore one
interactively in a REPL.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		switch traceLevel {
		case "Debug":
			tracer().SetTraceLevel(tracing.LevelDebug)
		case "Info":
			tracer().SetTraceLevel(tracing.LevelInfo)
		default:
			tracer().SetTraceLevel(tracing.LevelError)
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&traceLevel, "trace", "Error", "trace level [Debug|Info|Error]")
}

func printSuccess(stack []interface{}) {
	pterm.Success.Printfln("parsed ok, AST stack: %v", stack)
}
