package main

import (
	"fmt"
	"os"

	"github.com/prenaissance/FLFA-labs/grammar"
	"github.com/spf13/cobra"
)

var cnfFlags = struct {
	steps *bool
}{}

func init() {
	cmd := &cobra.Command{
		Use:     "cnf",
		Short:   "Convert a context-free grammar into Chomsky normal form",
		Example: `  flfa cnf grammar.flfa --steps`,
		Args:    cobra.ExactArgs(1),
		RunE:    runCNF,
	}
	cnfFlags.steps = cmd.Flags().Bool("steps", false, "print the grammar after every pass")
	rootCmd.AddCommand(cmd)
}

func runCNF(cmd *cobra.Command, args []string) error {
	src, err := readSource(args[0])
	if err != nil {
		return err
	}

	var opts []grammar.NormalizeOption
	if *cnfFlags.steps {
		opts = append(opts, grammar.ReportPasses(func(pass grammar.Pass, g *grammar.Grammar) {
			fmt.Fprintf(os.Stdout, "# %v\n\n%v\n", pass, g)
		}))
	}
	g, err := src.gram.ToChomskyNormalForm(opts...)
	if err != nil {
		return err
	}
	if *cnfFlags.steps {
		fmt.Fprintf(os.Stdout, "# result\n\n")
	}
	fmt.Fprint(os.Stdout, g)
	return nil
}
