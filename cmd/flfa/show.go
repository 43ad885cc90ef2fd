package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/prenaissance/FLFA-labs/automaton"
	"github.com/prenaissance/FLFA-labs/grammar"
	"github.com/spf13/cobra"
)

var showFlags = struct {
	deterministic *bool
}{}

func init() {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print a grammar or an automaton in a readable format",
		Example: `  flfa show grammar.flfa
  flfa show nfa.yaml --deterministic`,
		Args: cobra.ExactArgs(1),
		RunE: runShow,
	}
	showFlags.deterministic = cmd.Flags().BoolP("deterministic", "d", false, "convert an automaton into a deterministic one first")
	rootCmd.AddCommand(cmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	src, err := readSource(args[0])
	if err != nil {
		return err
	}

	if src.auto != nil {
		a := src.auto
		if *showFlags.deterministic {
			a = a.ToDeterministic()
		}
		return writeAutomaton(os.Stdout, src.name, a)
	}
	return writeGrammar(os.Stdout, src.name, src.gram)
}

func writeGrammar(w io.Writer, name string, g *grammar.Grammar) error {
	fmt.Fprintf(w, "# %v\n\n", name)
	fmt.Fprintf(w, "class: %v\n", g.Classify())
	fmt.Fprintf(w, "start: %v\n", g.Start())
	fmt.Fprintf(w, "non-terminals: %v\n", joinSymbols(g.NonTerminals()))
	fmt.Fprintf(w, "terminals: %v\n\n", joinSymbols(g.Terminals()))

	table := tablewriter.NewWriter(w)
	table.Header([]string{"#", "LHS", "RHS"})
	for i, p := range g.Productions() {
		rhs := "ε"
		if !p.IsEmpty() {
			rhs = joinSymbols(p.RHS)
		}
		err := table.Append([]string{fmt.Sprintf("%v", i+1), joinSymbols(p.LHS), rhs})
		if err != nil {
			return err
		}
	}
	return table.Render()
}

// writeAutomaton prints the transition table. The initial state is marked with → and the
// final states with *.
func writeAutomaton(w io.Writer, name string, a *automaton.Automaton) error {
	fmt.Fprintf(w, "# %v\n\n", name)
	fmt.Fprintf(w, "deterministic: %v\n\n", a.IsDeterministic())

	effects := a.Effects()
	header := []string{"State"}
	for _, e := range effects {
		header = append(header, string(e))
	}

	type cell = map[grammar.Symbol][]string
	rows := map[grammar.Symbol]cell{}
	for _, t := range a.Transitions() {
		if rows[t.From] == nil {
			rows[t.From] = cell{}
		}
		rows[t.From][t.Effect] = append(rows[t.From][t.Effect], string(t.To))
	}

	table := tablewriter.NewWriter(w)
	table.Header(header)
	for _, s := range a.States() {
		label := string(s)
		if a.IsFinal(s) {
			label = "*" + label
		}
		if s == a.InitialState() {
			label = "→" + label
		}
		row := []string{label}
		for _, e := range effects {
			to := rows[s][e]
			if len(to) == 0 {
				row = append(row, "-")
				continue
			}
			row = append(row, strings.Join(to, ", "))
		}
		err := table.Append(row)
		if err != nil {
			return err
		}
	}
	return table.Render()
}

func joinSymbols(syms []grammar.Symbol) string {
	return joinWord(syms, " ")
}
