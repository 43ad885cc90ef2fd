package grammar

// WithoutUselessProductions removes non-generating productions and then unreachable ones.
func (g *Grammar) WithoutUselessProductions() *Grammar {
	return g.WithoutNonGeneratingProductions().WithoutUnreachableProductions()
}

// WithoutNonGeneratingProductions drops every production that mentions a nonterminal unable
// to derive a string of terminals. The vocabularies shrink to the symbols still in use.
func (g *Grammar) WithoutNonGeneratingProductions() *Grammar {
	generating := g.genGeneratingSet()

	var prods []Production
	for _, p := range g.prods {
		if !g.isGenerating(p.RHS, generating) {
			continue
		}
		prods = append(prods, p.clone())
	}

	return newGrammar(g.name, g.start, prods, g.usedNonTerminals(prods), g.usedTerminals(prods))
}

func (g *Grammar) genGeneratingSet() *symbolSet {
	generating := newSymbolSet()
	for {
		more := false
		for _, p := range g.prods {
			if generating.contains(p.head()) {
				continue
			}
			if !g.isGenerating(p.RHS, generating) {
				continue
			}
			generating.add(p.head())
			more = true
		}
		if !more {
			break
		}
	}
	return generating
}

func (g *Grammar) isGenerating(syms []Symbol, generating *symbolSet) bool {
	for _, sym := range syms {
		if g.IsTerminal(sym) || generating.contains(sym) {
			continue
		}
		return false
	}
	return true
}

// WithoutUnreachableProductions drops every production whose left side cannot be reached
// from the start symbol. The vocabularies shrink to the symbols still in use.
func (g *Grammar) WithoutUnreachableProductions() *Grammar {
	reachable := g.genReachableSet()

	var prods []Production
	for _, p := range g.prods {
		if !reachable.contains(p.head()) {
			continue
		}
		prods = append(prods, p.clone())
	}

	return newGrammar(g.name, g.start, prods, reachable.filter(g.nonTerms.syms), g.usedTerminals(prods))
}

func (g *Grammar) genReachableSet() *symbolSet {
	reachable := newSymbolSet(g.start)
	for {
		more := false
		for _, p := range g.prods {
			if !reachable.contains(p.head()) {
				continue
			}
			for _, sym := range p.RHS {
				if !g.IsNonTerminal(sym) {
					continue
				}
				if reachable.add(sym) {
					more = true
				}
			}
		}
		if !more {
			break
		}
	}
	return reachable
}
