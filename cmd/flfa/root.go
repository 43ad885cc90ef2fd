package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "flfa",
	Short: "Inspect and transform formal grammars and finite automata",
	Long: `flfa works on two kinds of files:
- Grammar definitions (any extension other than the ones below).
- Automaton definitions in YAML or JSON (.yaml, .yml, .json).
An automaton is projected onto a regular grammar wherever a command needs a grammar.`,
	SilenceErrors: true,
	SilenceUsage:  true,
}

func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		return err
	}
	return nil
}
