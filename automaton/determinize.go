package automaton

import (
	"strings"

	"github.com/bits-and-blooms/bitset"
	"github.com/prenaissance/FLFA-labs/grammar"
)

// stateIndex numbers the states of an automaton so that a set of states fits in a bitset.
// The numbering follows the declaration order; an undeclared initial state and states that
// only occur in transitions are numbered after the declared ones.
type stateIndex struct {
	states []grammar.Symbol
	num    map[grammar.Symbol]uint
}

func newStateIndex(a *Automaton) *stateIndex {
	ix := &stateIndex{
		num: map[grammar.Symbol]uint{},
	}
	for _, s := range a.states {
		ix.add(s)
	}
	ix.add(a.initial)
	for _, t := range a.transitions {
		ix.add(t.From)
		ix.add(t.To)
	}
	return ix
}

func (ix *stateIndex) add(state grammar.Symbol) {
	if _, ok := ix.num[state]; ok {
		return
	}
	ix.num[state] = uint(len(ix.states))
	ix.states = append(ix.states, state)
}

func (ix *stateIndex) len() uint {
	return uint(len(ix.states))
}

func (ix *stateIndex) setOf(states ...grammar.Symbol) *bitset.BitSet {
	s := bitset.New(ix.len())
	for _, state := range states {
		if n, ok := ix.num[state]; ok {
			s.Set(n)
		}
	}
	return s
}

// name returns the name of a composite state: the bare state for a singleton, otherwise
// the states in index order wrapped in braces, such as {q2,q3}.
func (ix *stateIndex) name(s *bitset.BitSet) grammar.Symbol {
	var names []string
	for n, ok := s.NextSet(0); ok; n, ok = s.NextSet(n + 1) {
		names = append(names, string(ix.states[n]))
	}
	if len(names) == 1 {
		return grammar.Symbol(names[0])
	}
	return grammar.Symbol("{" + strings.Join(names, ",") + "}")
}

// moveTable maps a state number and an effect to the set of target states.
type moveTable []map[grammar.Symbol]*bitset.BitSet

func genMoveTable(a *Automaton, ix *stateIndex) moveTable {
	tab := make(moveTable, ix.len())
	for i := range tab {
		tab[i] = map[grammar.Symbol]*bitset.BitSet{}
	}
	for _, t := range a.transitions {
		from := ix.num[t.From]
		to, ok := tab[from][t.Effect]
		if !ok {
			to = bitset.New(ix.len())
			tab[from][t.Effect] = to
		}
		to.Set(ix.num[t.To])
	}
	return tab
}

func (tab moveTable) move(s *bitset.BitSet, effect grammar.Symbol, size uint) *bitset.BitSet {
	next := bitset.New(size)
	for n, ok := s.NextSet(0); ok; n, ok = s.NextSet(n + 1) {
		if to, ok := tab[n][effect]; ok {
			next.InPlaceUnion(to)
		}
	}
	return next
}

// ToDeterministic returns an equivalent deterministic automaton built by the subset
// construction. Only the composite states reachable from the initial state are generated,
// in breadth-first order, and their outgoing transitions follow the order of the effect
// alphabet. An empty target set produces no transition instead of a dead state.
func (a *Automaton) ToDeterministic() *Automaton {
	ix := newStateIndex(a)
	tab := genMoveTable(a, ix)
	finals := ix.setOf(a.finals...)

	initial := ix.setOf(a.initial)
	discovered := map[string]struct{}{
		initial.String(): {},
	}
	queue := []*bitset.BitSet{initial}

	var states []grammar.Symbol
	var transitions []Transition
	var finalStates []grammar.Symbol
	for len(queue) > 0 {
		s := queue[0]
		queue = queue[1:]

		from := ix.name(s)
		states = append(states, from)
		if s.IntersectionCardinality(finals) > 0 {
			finalStates = append(finalStates, from)
		}

		for _, effect := range a.effects {
			next := tab.move(s, effect, ix.len())
			if next.None() {
				continue
			}
			transitions = append(transitions, Transition{
				From:   from,
				To:     ix.name(next),
				Effect: effect,
			})
			key := next.String()
			if _, ok := discovered[key]; ok {
				continue
			}
			discovered[key] = struct{}{}
			queue = append(queue, next)
		}
	}

	return NewAutomaton(ix.name(initial), states, transitions, finalStates)
}

// Accepts reports whether the automaton accepts input, following every transition at once
// so that nondeterministic automata are handled as well.
func (a *Automaton) Accepts(input []grammar.Symbol) bool {
	ix := newStateIndex(a)
	tab := genMoveTable(a, ix)

	current := ix.setOf(a.initial)
	for _, sym := range input {
		current = tab.move(current, sym, ix.len())
		if current.None() {
			return false
		}
	}
	return current.IntersectionCardinality(ix.setOf(a.finals...)) > 0
}
