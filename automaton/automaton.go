// Package automaton implements finite automata over grammar symbols: the subset construction
// of a deterministic automaton, the projection of an automaton onto a regular grammar, and
// the rendering of automata as DOT graphs.
package automaton

import (
	"github.com/prenaissance/FLFA-labs/grammar"
)

// Transition moves the automaton from From to To while reading Effect.
type Transition struct {
	From   grammar.Symbol `yaml:"from" json:"from"`
	To     grammar.Symbol `yaml:"to" json:"to"`
	Effect grammar.Symbol `yaml:"effect" json:"effect"`
}

// Automaton is an immutable finite automaton. Its effect alphabet isn't stored; it is the
// set of distinct effects of the transitions in order of first appearance.
type Automaton struct {
	initial     grammar.Symbol
	states      []grammar.Symbol
	transitions []Transition
	finals      []grammar.Symbol
	finalSet    map[grammar.Symbol]struct{}
	effects     []grammar.Symbol
}

// NewAutomaton returns an automaton owning copies of the passed slices.
func NewAutomaton(initial grammar.Symbol, states []grammar.Symbol, transitions []Transition, finals []grammar.Symbol) *Automaton {
	a := &Automaton{
		initial:     initial,
		states:      append([]grammar.Symbol{}, states...),
		transitions: append([]Transition{}, transitions...),
		finals:      append([]grammar.Symbol{}, finals...),
		finalSet:    map[grammar.Symbol]struct{}{},
	}
	for _, f := range finals {
		a.finalSet[f] = struct{}{}
	}
	seen := map[grammar.Symbol]struct{}{}
	for _, t := range transitions {
		if _, ok := seen[t.Effect]; ok {
			continue
		}
		seen[t.Effect] = struct{}{}
		a.effects = append(a.effects, t.Effect)
	}
	return a
}

func (a *Automaton) InitialState() grammar.Symbol {
	return a.initial
}

func (a *Automaton) States() []grammar.Symbol {
	return append([]grammar.Symbol{}, a.states...)
}

func (a *Automaton) Transitions() []Transition {
	return append([]Transition{}, a.transitions...)
}

func (a *Automaton) FinalStates() []grammar.Symbol {
	return append([]grammar.Symbol{}, a.finals...)
}

// Effects returns the effect alphabet.
func (a *Automaton) Effects() []grammar.Symbol {
	return append([]grammar.Symbol{}, a.effects...)
}

func (a *Automaton) IsFinal(state grammar.Symbol) bool {
	_, ok := a.finalSet[state]
	return ok
}

// IsDeterministic reports whether no two transitions share both their source state and
// their effect.
func (a *Automaton) IsDeterministic() bool {
	seen := map[[2]grammar.Symbol]struct{}{}
	for _, t := range a.transitions {
		sig := [2]grammar.Symbol{t.From, t.Effect}
		if _, ok := seen[sig]; ok {
			return false
		}
		seen[sig] = struct{}{}
	}
	return true
}

// ToGrammar projects the automaton onto a right-linear grammar whose nonterminals are the
// states and whose terminals are the effects. A transition p -a-> q becomes p → a q, or
// p → a when q is final. When a final q has outgoing transitions, p → a q is kept as well
// so that the words running through q are not lost.
func (a *Automaton) ToGrammar() *grammar.Grammar {
	outgoing := map[grammar.Symbol]struct{}{}
	for _, t := range a.transitions {
		outgoing[t.From] = struct{}{}
	}

	var prods []grammar.Production
	for _, t := range a.transitions {
		lhs := []grammar.Symbol{t.From}
		if !a.IsFinal(t.To) {
			prods = append(prods, grammar.NewProduction(lhs, []grammar.Symbol{t.Effect, t.To}))
			continue
		}
		prods = append(prods, grammar.NewProduction(lhs, []grammar.Symbol{t.Effect}))
		if _, ok := outgoing[t.To]; ok {
			prods = append(prods, grammar.NewProduction(lhs, []grammar.Symbol{t.Effect, t.To}))
		}
	}

	return grammar.NewGrammar(a.initial, prods, a.states, a.effects)
}

// Equal reports whether a and b have the same initial state, states, transitions, and
// final states, all in the same order.
func (a *Automaton) Equal(b *Automaton) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.initial != b.initial {
		return false
	}
	if !grammar.EqualSymbols(a.states, b.states) || !grammar.EqualSymbols(a.finals, b.finals) {
		return false
	}
	if len(a.transitions) != len(b.transitions) {
		return false
	}
	for i, t := range a.transitions {
		if t != b.transitions[i] {
			return false
		}
	}
	return true
}
