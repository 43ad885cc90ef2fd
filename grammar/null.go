package grammar

// WithoutNullProductions removes every production A → ε one at a time.
//
// When A has no other production, A is erased from every right side and from the
// nonterminals. Otherwise each production mentioning A is replaced by the family of
// productions obtained by erasing any subset of the occurrences of A.
func (g *Grammar) WithoutNullProductions() *Grammar {
	prods := cloneProductions(g.prods)
	nonTerms := g.nonTerms.symbols()

	// A nonterminal whose null production is already eliminated must not get a new one;
	// its erasure has already been propagated to every right side.
	eliminated := newSymbolSet()
	for {
		idx := findNullProduction(prods)
		if idx < 0 {
			break
		}
		prods, nonTerms = eliminateNullProduction(prods, nonTerms, idx, g.start, eliminated)
	}

	return newGrammar(g.name, g.start, prods, nonTerms, g.terms.symbols())
}

func findNullProduction(prods []Production) int {
	for i, p := range prods {
		if p.IsEmpty() {
			return i
		}
	}
	return -1
}

func eliminateNullProduction(prods []Production, nonTerms []Symbol, idx int, start Symbol, eliminated *symbolSet) ([]Production, []Symbol) {
	target := prods[idx].head()
	eliminated.add(target)

	rest := make([]Production, 0, len(prods)-1)
	rest = append(rest, prods[:idx]...)
	rest = append(rest, prods[idx+1:]...)

	hasAlternative := false
	for _, p := range rest {
		if p.head() == target {
			hasAlternative = true
			break
		}
	}

	ps := newProductionSet()
	appendProd := func(lhs []Symbol, rhs []Symbol) {
		if len(rhs) == 0 && len(lhs) > 0 && eliminated.contains(lhs[0]) {
			return
		}
		ps.append(NewProduction(lhs, rhs))
	}

	if !hasAlternative {
		for _, p := range rest {
			appendProd(p.LHS, removeSymbol(p.RHS, target))
		}
		if target != start {
			nonTerms = removeSymbol(nonTerms, target)
		}
		return ps.productions(), nonTerms
	}

	for _, p := range rest {
		if !containsSymbol(p.RHS, target) {
			appendProd(p.LHS, p.RHS)
			continue
		}
		for _, rhs := range CombinationsWithout(target, p.RHS) {
			appendProd(p.LHS, rhs)
		}
	}
	return ps.productions(), nonTerms
}
