package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/corvidlang/peg"
	"github.com/corvidlang/peg/diag"
	"github.com/corvidlang/peg/driver"
	"github.com/corvidlang/peg/pegdsl"
)

var parseFull bool

var parseCmd = &cobra.Command{
	Use:   "parse [expression]",
	Short: "Parse an arithmetic expression against the built-in demo grammar",
	Long: `parse runs the built-in arithmetic demonstration grammar
(package pegdsl) over an expression given on the command line, or read
from stdin if no argument is given.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)
	parseCmd.Flags().BoolVar(&parseFull, "full", true, "require the whole input to be consumed")
}

func runParse(cmd *cobra.Command, args []string) error {
	src, err := readSource(args)
	if err != nil {
		return err
	}
	g, err := driver.Compile(pegdsl.ArithmeticGrammar())
	if err != nil {
		return err
	}
	var opts []driver.Option
	if !parseFull {
		opts = append(opts, driver.AllowPartialMatch())
	}
	result := driver.Parse(g, peg.NewStringInput(src), opts...)
	if !result.Ok {
		fmt.Fprintln(os.Stderr, diag.Pretty(result.Failure, diag.NewTextLineMap(src), src))
		return fmt.Errorf("parse failed")
	}
	printSuccess(result.Success.Stack)
	return nil
}

func readSource(args []string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("reading stdin: %w", err)
	}
	return strings.TrimSpace(string(data)), nil
}
