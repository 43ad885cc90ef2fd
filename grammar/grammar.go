package grammar

import (
	"fmt"
	"slices"
	"strings"
)

// Grammar is an immutable formal grammar. Every transformation returns a new Grammar
// and leaves the receiver untouched.
//
// A grammar is well-formed when its start symbol is a nonterminal and no symbol is both
// a terminal and a nonterminal. NewGrammar doesn't validate these conditions; the results
// of the operations on an ill-formed grammar are unspecified.
type Grammar struct {
	name     string
	start    Symbol
	prods    []Production
	nonTerms *symbolSet
	terms    *symbolSet
}

// NewGrammar returns a grammar owning copies of all the passed slices.
func NewGrammar(start Symbol, prods []Production, nonTerms []Symbol, terms []Symbol) *Grammar {
	return newGrammar("", start, cloneProductions(prods), nonTerms, terms)
}

func newGrammar(name string, start Symbol, prods []Production, nonTerms []Symbol, terms []Symbol) *Grammar {
	if prods == nil {
		prods = []Production{}
	}
	return &Grammar{
		name:     name,
		start:    start,
		prods:    prods,
		nonTerms: newSymbolSet(nonTerms...),
		terms:    newSymbolSet(terms...),
	}
}

func (g *Grammar) Name() string {
	return g.name
}

func (g *Grammar) Start() Symbol {
	return g.start
}

func (g *Grammar) Productions() []Production {
	return cloneProductions(g.prods)
}

// ProductionsOf returns the productions whose left side is exactly lhs.
func (g *Grammar) ProductionsOf(lhs Symbol) []Production {
	prods := []Production{}
	for _, p := range g.prods {
		if len(p.LHS) == 1 && p.LHS[0] == lhs {
			prods = append(prods, p.clone())
		}
	}
	return prods
}

func (g *Grammar) NonTerminals() []Symbol {
	return g.nonTerms.symbols()
}

func (g *Grammar) Terminals() []Symbol {
	return g.terms.symbols()
}

func (g *Grammar) IsNonTerminal(sym Symbol) bool {
	return g.nonTerms.contains(sym)
}

func (g *Grammar) IsTerminal(sym Symbol) bool {
	return g.terms.contains(sym)
}

func (g *Grammar) Clone() *Grammar {
	return newGrammar(g.name, g.start, cloneProductions(g.prods), g.nonTerms.symbols(), g.terms.symbols())
}

// Equal reports whether g and h have the same name, start symbol, productions, and
// vocabularies, all in the same order.
func (g *Grammar) Equal(h *Grammar) bool {
	if g == nil || h == nil {
		return g == h
	}
	if g.name != h.name || g.start != h.start {
		return false
	}
	if len(g.prods) != len(h.prods) {
		return false
	}
	for i, p := range g.prods {
		if !p.Equal(h.prods[i]) {
			return false
		}
	}
	return slices.Equal(g.nonTerms.syms, h.nonTerms.syms) && slices.Equal(g.terms.syms, h.terms.syms)
}

// String prints one line per left side in order of appearance, with its alternatives
// separated by `|`.
func (g *Grammar) String() string {
	var lhsList [][]Symbol
	alts := map[string][]Production{}
	for _, p := range g.prods {
		key := joinSymbols(p.LHS, " ")
		if _, ok := alts[key]; !ok {
			lhsList = append(lhsList, p.LHS)
		}
		alts[key] = append(alts[key], p)
	}

	var b strings.Builder
	for _, lhs := range lhsList {
		key := joinSymbols(lhs, " ")
		fmt.Fprintf(&b, "%v →", key)
		for i, p := range alts[key] {
			if i > 0 {
				fmt.Fprintf(&b, " |")
			}
			if p.IsEmpty() {
				fmt.Fprintf(&b, " %v", symbolEpsilon)
				continue
			}
			fmt.Fprintf(&b, " %v", joinSymbols(p.RHS, " "))
		}
		fmt.Fprintf(&b, "\n")
	}
	return b.String()
}

// isContextFree reports whether every left side is a single nonterminal.
func (g *Grammar) isContextFree() bool {
	for _, p := range g.prods {
		if len(p.LHS) != 1 || !g.IsNonTerminal(p.LHS[0]) {
			return false
		}
	}
	return true
}

// usedTerminals returns the terminals of g occurring in prods.
func (g *Grammar) usedTerminals(prods []Production) []Symbol {
	used := newSymbolSet()
	for _, p := range prods {
		for _, sym := range p.LHS {
			used.add(sym)
		}
		for _, sym := range p.RHS {
			used.add(sym)
		}
	}
	return used.filter(g.terms.syms)
}

// usedNonTerminals returns the nonterminals of g occurring in prods. The start symbol is always kept.
func (g *Grammar) usedNonTerminals(prods []Production) []Symbol {
	used := newSymbolSet(g.start)
	for _, p := range prods {
		for _, sym := range p.LHS {
			used.add(sym)
		}
		for _, sym := range p.RHS {
			used.add(sym)
		}
	}
	return used.filter(g.nonTerms.syms)
}
