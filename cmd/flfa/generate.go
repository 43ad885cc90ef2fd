package main

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/prenaissance/FLFA-labs/recognizer"
	"github.com/spf13/cobra"
)

var generateFlags = struct {
	count     *int
	seed      *int64
	maxLength *int
	separator *string
}{}

func init() {
	cmd := &cobra.Command{
		Use:     "generate",
		Short:   "Generate random words of the language of a regular grammar",
		Example: `  flfa generate lab1.flfa -n 5 --seed 42`,
		Args:    cobra.ExactArgs(1),
		RunE:    runGenerate,
	}
	generateFlags.count = cmd.Flags().IntP("count", "n", 1, "number of words")
	generateFlags.seed = cmd.Flags().Int64("seed", 0, "seed of the random choices (default the current time)")
	generateFlags.maxLength = cmd.Flags().Int("max-length", 4096, "maximum length of a word in progress")
	generateFlags.separator = cmd.Flags().StringP("separator", "s", "", "separator printed between symbols")
	rootCmd.AddCommand(cmd)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	src, err := readSource(args[0])
	if err != nil {
		return err
	}

	seed := *generateFlags.seed
	if !cmd.Flags().Changed("seed") {
		seed = time.Now().UnixNano()
	}
	r, err := recognizer.New(src.gram,
		recognizer.WithChooser(rand.New(rand.NewSource(seed))),
		recognizer.WithMaxLength(*generateFlags.maxLength),
	)
	if err != nil {
		return err
	}

	for i := 0; i < *generateFlags.count; i++ {
		word, err := r.Generate()
		if err != nil {
			return err
		}
		fmt.Fprintln(os.Stdout, joinWord(word, *generateFlags.separator))
	}
	return nil
}
