package main

import (
	"os"

	"github.com/spf13/cobra"
)

var dotFlags = struct {
	deterministic *bool
	name          *string
}{}

func init() {
	cmd := &cobra.Command{
		Use:     "dot",
		Short:   "Print an automaton in the DOT language",
		Example: `  flfa dot nfa.yaml --deterministic | dot -Tsvg > dfa.svg`,
		Args:    cobra.ExactArgs(1),
		RunE:    runDOT,
	}
	dotFlags.deterministic = cmd.Flags().BoolP("deterministic", "d", false, "convert the automaton into a deterministic one first")
	dotFlags.name = cmd.Flags().String("name", "", "name of the graph (default the automaton name)")
	rootCmd.AddCommand(cmd)
}

func runDOT(cmd *cobra.Command, args []string) error {
	a, name, err := requireAutomaton(args[0])
	if err != nil {
		return err
	}
	if *dotFlags.deterministic {
		a = a.ToDeterministic()
	}
	if *dotFlags.name != "" {
		name = *dotFlags.name
	}
	return a.WriteDOT(os.Stdout, name)
}
