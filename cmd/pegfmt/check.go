package main

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/corvidlang/peg/analysis"
	"github.com/corvidlang/peg/pegdsl"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Run the well-formedness visitor over the built-in demo grammar",
	RunE:  runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	diags := analysis.Check(pegdsl.ArithmeticGrammar())
	if len(diags) == 0 {
		pterm.Success.Println("grammar is well-formed")
		return nil
	}
	for _, d := range diags {
		pterm.Warning.Println(d.String())
	}
	return fmt.Errorf("%d well-formedness violation(s) found", len(diags))
}
