package grammar

import (
	"slices"
)

// WithoutLongProductions splits every right side longer than two symbols. For the first
// such production A → X β it introduces a fresh nonterminal N → β and rewrites every
// production ending with the same β after a single symbol into _ → Y N. It repeats until
// no long production remains; each round shortens a longest right side by one.
func (g *Grammar) WithoutLongProductions() *Grammar {
	prods := cloneProductions(g.prods)
	nonTerms := g.nonTerms.symbols()
	for {
		idx := -1
		for i, p := range prods {
			if len(p.RHS) > 2 {
				idx = i
				break
			}
		}
		if idx < 0 {
			break
		}
		prods, nonTerms = g.splitLongProduction(prods, nonTerms, prods[idx].RHS[1:])
	}

	return newGrammar(g.name, g.start, prods, nonTerms, g.terms.symbols())
}

func (g *Grammar) splitLongProduction(prods []Production, nonTerms []Symbol, tail []Symbol) ([]Production, []Symbol) {
	tail = cloneSymbols(tail)
	fresh := AvailableLetter(append(cloneSymbols(nonTerms), g.terms.syms...))

	ps := newProductionSet()
	for _, p := range prods {
		if len(p.RHS) == len(tail)+1 && slices.Equal(p.RHS[1:], tail) {
			ps.append(NewProduction(p.LHS, []Symbol{p.RHS[0], fresh}))
			continue
		}
		ps.append(p)
	}
	ps.append(NewProduction([]Symbol{fresh}, tail))

	return ps.productions(), append(nonTerms, fresh)
}

// WithoutChainProductions removes terminals from two-symbol right sides. For the first
// terminal t found in such a right side it introduces a fresh nonterminal N → t and
// substitutes N for t in every two-symbol right side, until none contains a terminal.
func (g *Grammar) WithoutChainProductions() *Grammar {
	prods := cloneProductions(g.prods)
	nonTerms := g.nonTerms.symbols()
	for {
		term, ok := g.findChainTerminal(prods)
		if !ok {
			break
		}
		prods, nonTerms = g.substituteTerminal(prods, nonTerms, term)
	}

	return newGrammar(g.name, g.start, prods, nonTerms, g.terms.symbols())
}

func (g *Grammar) findChainTerminal(prods []Production) (Symbol, bool) {
	for _, p := range prods {
		if len(p.RHS) != 2 {
			continue
		}
		for _, sym := range p.RHS {
			if g.IsTerminal(sym) {
				return sym, true
			}
		}
	}
	return "", false
}

func (g *Grammar) substituteTerminal(prods []Production, nonTerms []Symbol, term Symbol) ([]Production, []Symbol) {
	fresh := AvailableLetter(append(cloneSymbols(nonTerms), g.terms.syms...))

	ps := newProductionSet()
	for _, p := range prods {
		if len(p.RHS) != 2 || !containsSymbol(p.RHS, term) {
			ps.append(p)
			continue
		}
		rhs := cloneSymbols(p.RHS)
		for i, sym := range rhs {
			if sym == term {
				rhs[i] = fresh
			}
		}
		ps.append(NewProduction(p.LHS, rhs))
	}
	ps.append(NewProduction([]Symbol{fresh}, []Symbol{term}))

	return ps.productions(), append(nonTerms, fresh)
}
