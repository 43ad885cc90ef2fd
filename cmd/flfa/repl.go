package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/manifoldco/promptui"
	"github.com/prenaissance/FLFA-labs/recognizer"
	"github.com/spf13/cobra"
)

var replFlags = struct {
	separator *string
}{}

func init() {
	cmd := &cobra.Command{
		Use:   "repl",
		Short: "Validate words interactively",
		Long: `repl reads words and reports whether they belong to the language.
Commands:
  :generate  print a random word
  :exit      quit`,
		Example: `  flfa repl lab1.flfa`,
		Args:    cobra.ExactArgs(1),
		RunE:    runREPL,
	}
	replFlags.separator = cmd.Flags().StringP("separator", "s", "", "separator of the symbols of a word (default every character is a symbol)")
	rootCmd.AddCommand(cmd)
}

func runREPL(cmd *cobra.Command, args []string) error {
	src, err := readSource(args[0])
	if err != nil {
		return err
	}
	accepts, err := newAcceptor(src, "")
	if err != nil {
		return err
	}
	r, err := recognizer.New(src.gram)
	if err != nil {
		return err
	}

	accepted := promptui.Styler(promptui.FGGreen)
	rejected := promptui.Styler(promptui.FGRed)
	info := promptui.Styler(promptui.FGCyan)
	for {
		prompt := promptui.Prompt{
			Label: src.name,
		}
		input, err := prompt.Run()
		if err != nil {
			if errors.Is(err, promptui.ErrInterrupt) || errors.Is(err, promptui.ErrEOF) {
				return nil
			}
			return err
		}

		input = strings.TrimSpace(input)
		switch input {
		case ":exit":
			return nil
		case ":generate":
			word, err := r.Generate()
			if err != nil {
				fmt.Fprintln(os.Stdout, rejected(err.Error()))
				continue
			}
			fmt.Fprintln(os.Stdout, info(joinWord(word, *replFlags.separator)))
			continue
		}

		if accepts(splitWord(input, *replFlags.separator)) {
			fmt.Fprintln(os.Stdout, accepted("accepted"))
		} else {
			fmt.Fprintln(os.Stdout, rejected("rejected"))
		}
	}
}
