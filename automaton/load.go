package automaton

import (
	"io"

	"github.com/pkg/errors"
	"github.com/prenaissance/FLFA-labs/grammar"
	"gopkg.in/yaml.v3"
)

// Definition is the file representation of an automaton. JSON documents are accepted too
// since they are valid YAML.
//
//	name: lab2
//	initial: q0
//	states: [q0, q1, q2, q3, q4]
//	final: [q4]
//	transitions:
//	  - {from: q0, to: q1, effect: a}
type Definition struct {
	Name        string           `yaml:"name,omitempty" json:"name,omitempty"`
	Initial     grammar.Symbol   `yaml:"initial" json:"initial"`
	States      []grammar.Symbol `yaml:"states,omitempty" json:"states,omitempty"`
	Final       []grammar.Symbol `yaml:"final" json:"final"`
	Transitions []Transition     `yaml:"transitions" json:"transitions"`
}

// Load decodes a definition from r.
func Load(r io.Reader) (*Definition, error) {
	def := &Definition{}
	err := yaml.NewDecoder(r).Decode(def)
	if err != nil {
		return nil, errors.Wrap(err, "failed to decode an automaton definition")
	}
	return def, nil
}

// Build validates the definition and returns its automaton. When States is omitted, the
// states are the initial state followed by the states of the transitions in order of
// first appearance.
func (d *Definition) Build() (*Automaton, error) {
	if d.Initial == "" {
		return nil, errors.New("an automaton needs an initial state")
	}

	states := d.States
	if len(states) == 0 {
		seen := map[grammar.Symbol]struct{}{}
		add := func(s grammar.Symbol) {
			if _, ok := seen[s]; ok {
				return
			}
			seen[s] = struct{}{}
			states = append(states, s)
		}
		add(d.Initial)
		for _, t := range d.Transitions {
			add(t.From)
			add(t.To)
		}
	}

	known := map[grammar.Symbol]struct{}{}
	for _, s := range states {
		known[s] = struct{}{}
	}
	if _, ok := known[d.Initial]; !ok {
		return nil, errors.Errorf("the initial state %v is not a state", d.Initial)
	}
	for _, f := range d.Final {
		if _, ok := known[f]; !ok {
			return nil, errors.Errorf("the final state %v is not a state", f)
		}
	}
	for i, t := range d.Transitions {
		if t.From == "" || t.To == "" || t.Effect == "" {
			return nil, errors.Errorf("transition #%v needs from, to, and effect", i+1)
		}
		if _, ok := known[t.From]; !ok {
			return nil, errors.Errorf("transition #%v: %v is not a state", i+1, t.From)
		}
		if _, ok := known[t.To]; !ok {
			return nil, errors.Errorf("transition #%v: %v is not a state", i+1, t.To)
		}
	}

	return NewAutomaton(d.Initial, states, d.Transitions, d.Final), nil
}

// Definition returns the file representation of the automaton.
func (a *Automaton) Definition(name string) *Definition {
	return &Definition{
		Name:        name,
		Initial:     a.initial,
		States:      a.States(),
		Final:       a.FinalStates(),
		Transitions: a.Transitions(),
	}
}

// Write encodes the definition as YAML.
func (d *Definition) Write(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	err := enc.Encode(d)
	if err != nil {
		return errors.Wrap(err, "failed to encode an automaton definition")
	}
	return enc.Close()
}
