package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:     "classify",
		Short:   "Print the class of a grammar in the Chomsky hierarchy",
		Example: `  flfa classify grammar.flfa`,
		Args:    cobra.ExactArgs(1),
		RunE:    runClassify,
	}
	rootCmd.AddCommand(cmd)
}

func runClassify(cmd *cobra.Command, args []string) error {
	src, err := readSource(args[0])
	if err != nil {
		return err
	}
	fmt.Fprintf(os.Stdout, "%v: %v\n", src.name, src.gram.Classify())
	return nil
}
