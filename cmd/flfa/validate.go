package main

import (
	"fmt"
	"os"

	"github.com/prenaissance/FLFA-labs/grammar"
	"github.com/prenaissance/FLFA-labs/recognizer"
	"github.com/spf13/cobra"
)

var validateFlags = struct {
	separator *string
	start     *string
}{}

func init() {
	cmd := &cobra.Command{
		Use:   "validate <file> <word>...",
		Short: "Check whether words belong to the language of a grammar or an automaton",
		Example: `  flfa validate lab1.flfa abce cdd
  flfa validate nfa.yaml -s ' ' 'a b b'`,
		Args: cobra.MinimumNArgs(2),
		RunE: runValidate,
	}
	validateFlags.separator = cmd.Flags().StringP("separator", "s", "", "separator of the symbols of a word (default every character is a symbol)")
	validateFlags.start = cmd.Flags().String("start", "", "symbol to start from instead of the start symbol of a grammar")
	rootCmd.AddCommand(cmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	src, err := readSource(args[0])
	if err != nil {
		return err
	}
	accepts, err := newAcceptor(src, *validateFlags.start)
	if err != nil {
		return err
	}

	rejected := 0
	for _, word := range args[1:] {
		result := "accepted"
		if !accepts(splitWord(word, *validateFlags.separator)) {
			result = "rejected"
			rejected++
		}
		fmt.Fprintf(os.Stdout, "%v: %v\n", word, result)
	}
	if rejected > 0 {
		return fmt.Errorf("%v of %v words rejected", rejected, len(args)-1)
	}
	return nil
}

// newAcceptor simulates an automaton directly and walks the productions of a grammar.
func newAcceptor(src *source, start string) (func(word []grammar.Symbol) bool, error) {
	if src.auto != nil && start == "" {
		return src.auto.Accepts, nil
	}

	r, err := recognizer.New(src.gram)
	if err != nil {
		return nil, err
	}
	if start == "" {
		return r.IsValid, nil
	}
	if !src.gram.IsNonTerminal(grammar.Symbol(start)) {
		return nil, fmt.Errorf("%v is not a non-terminal", start)
	}
	return func(word []grammar.Symbol) bool {
		return r.IsValidFrom(word, grammar.Symbol(start))
	}, nil
}
