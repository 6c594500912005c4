package main

import (
	"strings"

	"github.com/chzyer/readline"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/corvidlang/peg"
	"github.com/corvidlang/peg/diag"
	"github.com/corvidlang/peg/driver"
	"github.com/corvidlang/peg/pegdsl"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Interactively parse expressions against the built-in demo grammar",
	RunE:  runREPL,
}

func init() {
	rootCmd.AddCommand(replCmd)
}

func runREPL(cmd *cobra.Command, args []string) error {
	rl, err := readline.New("pegfmt> ")
	if err != nil {
		return err
	}
	defer rl.Close()

	g, err := driver.Compile(pegdsl.ArithmeticGrammar())
	if err != nil {
		return err
	}
	pterm.Info.Println("Welcome to pegfmt's REPL. Quit with <ctrl>D")
	for {
		line, err := rl.Readline()
		if err != nil { // io.EOF on <ctrl>D
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		result := driver.Parse(g, peg.NewStringInput(line), driver.RequireFullMatch())
		if !result.Ok {
			pterm.Error.Println(diag.Render(result.Failure, diag.NewTextLineMap(line)))
			continue
		}
		printSuccess(result.Success.Stack)
	}
	pterm.Info.Println("Good bye!")
	return nil
}
