// Package recognizer walks the productions of a regular grammar to validate and generate
// sentences.
package recognizer

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/prenaissance/FLFA-labs/grammar"
)

// Chooser picks an index in [0, n). *rand.Rand satisfies it.
type Chooser interface {
	Intn(n int) int
}

const defaultMaxLength = 4096

var (
	ErrNotRegular       = errors.New("a recognizer needs a regular grammar")
	ErrNotRightLinear   = errors.New("a recognizer needs a right-linear grammar")
	ErrSentenceTooLong  = errors.New("a sentence exceeds the maximum length")
	errInvalidMaxLength = errors.New("the maximum length must be greater than 0")
)

// UnreachableEndStateError means that generation reached a nonterminal without productions.
type UnreachableEndStateError struct {
	Position int
	Symbol   grammar.Symbol
}

func (e *UnreachableEndStateError) Error() string {
	return fmt.Sprintf("cannot reach an end state: %v at position %v has no production", e.Symbol, e.Position)
}

// UnknownSymbolError means that a sentence contains a symbol outside the vocabulary.
type UnknownSymbolError struct {
	Position int
	Symbol   grammar.Symbol
}

func (e *UnknownSymbolError) Error() string {
	return fmt.Sprintf("%v at position %v is neither a terminal nor a non-terminal", e.Symbol, e.Position)
}

type Option func(r *Recognizer) error

// WithChooser sets the source of the choices among productions during generation.
func WithChooser(c Chooser) Option {
	return func(r *Recognizer) error {
		r.chooser = c
		return nil
	}
}

// WithMaxLength bounds the length of a sentence in progress during generation.
func WithMaxLength(n int) Option {
	return func(r *Recognizer) error {
		if n <= 0 {
			return errInvalidMaxLength
		}
		r.maxLen = n
		return nil
	}
}

type Recognizer struct {
	g       *grammar.Grammar
	chooser Chooser
	maxLen  int
}

// New returns a recognizer of a right-linear grammar. Left-linear grammars are regular too,
// but their productions are walked in the opposite direction and are rejected.
func New(g *grammar.Grammar, opts ...Option) (*Recognizer, error) {
	if g.Classify() != grammar.ClassRegular {
		return nil, ErrNotRegular
	}
	if !isRightLinear(g) {
		return nil, ErrNotRightLinear
	}

	r := &Recognizer{
		g:      g,
		maxLen: defaultMaxLength,
	}
	for _, opt := range opts {
		err := opt(r)
		if err != nil {
			return nil, err
		}
	}
	if r.chooser == nil {
		r.chooser = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	return r, nil
}

// isRightLinear reports whether only the last symbol of a right side may be a nonterminal.
func isRightLinear(g *grammar.Grammar) bool {
	for _, p := range g.Productions() {
		if len(p.RHS) == 0 {
			continue
		}
		for _, sym := range p.RHS[:len(p.RHS)-1] {
			if !g.IsTerminal(sym) {
				return false
			}
		}
	}
	return true
}

// IsValid reports whether the grammar derives input from its start symbol.
func (r *Recognizer) IsValid(input []grammar.Symbol) bool {
	return r.IsValidFrom(input, r.g.Start())
}

// IsValidFrom reports whether input is accepted starting from state.
//
// Every input symbol is matched against the first symbol of the right sides of the current
// nonterminals, and the last symbols of the matching right sides become the current symbols.
// All the matching productions are followed at once, so a grammar with several productions
// sharing a first symbol is handled without backtracking. The input is accepted when a
// terminal is among the current symbols after the last input symbol.
func (r *Recognizer) IsValidFrom(input []grammar.Symbol, state grammar.Symbol) bool {
	current := []grammar.Symbol{state}
	for _, sym := range input {
		var next []grammar.Symbol
		seen := map[grammar.Symbol]struct{}{}
		for _, cur := range current {
			if !r.g.IsNonTerminal(cur) {
				continue
			}
			for _, p := range r.g.ProductionsOf(cur) {
				if len(p.RHS) == 0 || p.RHS[0] != sym {
					continue
				}
				last := p.RHS[len(p.RHS)-1]
				if _, ok := seen[last]; ok {
					continue
				}
				seen[last] = struct{}{}
				next = append(next, last)
			}
		}
		if len(next) == 0 {
			return false
		}
		current = next
	}

	for _, cur := range current {
		if r.g.IsTerminal(cur) {
			return true
		}
	}
	return false
}

// Generate derives a random sentence from the start symbol.
func (r *Recognizer) Generate() ([]grammar.Symbol, error) {
	return r.Complete(nil)
}

// Complete derives a random sentence by rewriting the last symbol of prefix until it is a
// terminal. An empty prefix stands for the start symbol.
func (r *Recognizer) Complete(prefix []grammar.Symbol) ([]grammar.Symbol, error) {
	for i, sym := range prefix {
		if !r.g.IsTerminal(sym) && !r.g.IsNonTerminal(sym) {
			return nil, &UnknownSymbolError{
				Position: i,
				Symbol:   sym,
			}
		}
	}

	sentence := append([]grammar.Symbol{}, prefix...)
	if len(sentence) == 0 {
		sentence = append(sentence, r.g.Start())
	}
	for len(sentence) > 0 {
		pos := len(sentence) - 1
		last := sentence[pos]
		if r.g.IsTerminal(last) {
			break
		}

		prods := r.g.ProductionsOf(last)
		if len(prods) == 0 {
			return nil, &UnreachableEndStateError{
				Position: pos,
				Symbol:   last,
			}
		}
		p := prods[r.chooser.Intn(len(prods))]
		sentence = append(sentence[:pos], p.RHS...)
		if len(sentence) > r.maxLen {
			return nil, ErrSentenceTooLong
		}
	}

	return sentence, nil
}
