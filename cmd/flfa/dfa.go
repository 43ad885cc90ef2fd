package main

import (
	"os"

	"github.com/spf13/cobra"
)

var dfaFlags = struct {
	name *string
}{}

func init() {
	cmd := &cobra.Command{
		Use:     "dfa",
		Short:   "Convert an automaton into a deterministic one and print its definition",
		Example: `  flfa dfa nfa.yaml > dfa.yaml`,
		Args:    cobra.ExactArgs(1),
		RunE:    runDFA,
	}
	dfaFlags.name = cmd.Flags().String("name", "", "name of the resulting automaton (default <input name>-dfa)")
	rootCmd.AddCommand(cmd)
}

func runDFA(cmd *cobra.Command, args []string) error {
	a, name, err := requireAutomaton(args[0])
	if err != nil {
		return err
	}
	if *dfaFlags.name != "" {
		name = *dfaFlags.name
	} else {
		name = name + "-dfa"
	}
	return a.ToDeterministic().Definition(name).Write(os.Stdout)
}
