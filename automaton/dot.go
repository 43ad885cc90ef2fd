package automaton

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// WriteDOT writes the automaton as a Graphviz digraph named name. Every transition becomes
// a labeled edge and every final state a double circle.
func (a *Automaton) WriteDOT(w io.Writer, name string) error {
	var b strings.Builder
	fmt.Fprintf(&b, "digraph %v {\n", strconv.Quote(name))
	for _, t := range a.transitions {
		fmt.Fprintf(&b, "  %v -> %v [label = %v];\n", strconv.Quote(string(t.From)), strconv.Quote(string(t.To)), strconv.Quote(string(t.Effect)))
	}
	for _, f := range a.finals {
		fmt.Fprintf(&b, "  %v [shape = doublecircle];\n", strconv.Quote(string(f)))
	}
	fmt.Fprintf(&b, "}\n")

	_, err := io.WriteString(w, b.String())
	return err
}

// DOT returns the text WriteDOT writes.
func (a *Automaton) DOT(name string) string {
	var b strings.Builder
	a.WriteDOT(&b, name)
	return b.String()
}
