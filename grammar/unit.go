package grammar

// WithoutUnitProductions replaces every unit production A → B with A → α for each
// B → α that is not a unit production. The replacement repeats until no production is
// added, so chains of unit productions are followed to their end.
func (g *Grammar) WithoutUnitProductions() *Grammar {
	var units []Production
	base := newProductionSet()
	for _, p := range g.prods {
		if g.isUnitProduction(p) {
			units = append(units, p)
			continue
		}
		base.append(p)
	}
	if len(units) == 0 {
		return g.Clone()
	}

	for {
		more := false
		for _, u := range units {
			for _, p := range base.findByLHS(u.RHS[0]) {
				if base.append(NewProduction(u.LHS, p.RHS)) {
					more = true
				}
			}
		}
		if !more {
			break
		}
	}

	return newGrammar(g.name, g.start, base.productions(), g.nonTerms.symbols(), g.terms.symbols())
}

func (g *Grammar) isUnitProduction(p Production) bool {
	return len(p.RHS) == 1 && g.IsNonTerminal(p.RHS[0])
}
