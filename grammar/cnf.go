package grammar

// Pass is one rewrite step of the Chomsky normal form pipeline.
type Pass int

const (
	PassRighthandStart Pass = iota
	PassNullProductions
	PassUnitProductions
	PassUselessProductions
	PassLongProductions
	PassChainProductions
)

func (p Pass) String() string {
	switch p {
	case PassRighthandStart:
		return "eliminate right-hand start symbol"
	case PassNullProductions:
		return "eliminate null productions"
	case PassUnitProductions:
		return "eliminate unit productions"
	case PassUselessProductions:
		return "eliminate useless productions"
	case PassLongProductions:
		return "eliminate long productions"
	case PassChainProductions:
		return "eliminate mixed productions"
	}
	return "unknown pass"
}

type normalizeConfig struct {
	report func(pass Pass, g *Grammar)
}

type NormalizeOption func(config *normalizeConfig)

// ReportPasses makes ToChomskyNormalForm call fn with the result of every pass.
func ReportPasses(fn func(pass Pass, g *Grammar)) NormalizeOption {
	return func(config *normalizeConfig) {
		config.report = fn
	}
}

var cnfPasses = []struct {
	pass  Pass
	apply func(g *Grammar) *Grammar
}{
	{pass: PassRighthandStart, apply: (*Grammar).WithoutRighthandStart},
	{pass: PassNullProductions, apply: (*Grammar).WithoutNullProductions},
	{pass: PassUnitProductions, apply: (*Grammar).WithoutUnitProductions},
	{pass: PassUselessProductions, apply: (*Grammar).WithoutUselessProductions},
	{pass: PassLongProductions, apply: (*Grammar).WithoutLongProductions},
	{pass: PassChainProductions, apply: (*Grammar).WithoutChainProductions},
}

// ToChomskyNormalForm runs the normalization passes in order and returns an equivalent
// grammar whose right sides are either one terminal or two nonterminals. The empty string
// is not preserved: the result has no null productions.
func (g *Grammar) ToChomskyNormalForm(opts ...NormalizeOption) (*Grammar, error) {
	config := &normalizeConfig{}
	for _, opt := range opts {
		opt(config)
	}

	if !g.isContextFree() {
		return nil, semErrNotContextFree
	}

	h := g
	for _, p := range cnfPasses {
		h = p.apply(h)
		if config.report != nil {
			config.report(p.pass, h)
		}
	}

	if !h.IsChomskyNormalForm() {
		return nil, semErrNotNormalized
	}

	return h, nil
}

// IsChomskyNormalForm reports whether every production maps a single nonterminal either to
// one terminal or to two nonterminals.
func (g *Grammar) IsChomskyNormalForm() bool {
	for _, p := range g.prods {
		if len(p.LHS) != 1 || !g.IsNonTerminal(p.LHS[0]) {
			return false
		}
		switch len(p.RHS) {
		case 1:
			if !g.IsTerminal(p.RHS[0]) {
				return false
			}
		case 2:
			if !g.IsNonTerminal(p.RHS[0]) || !g.IsNonTerminal(p.RHS[1]) {
				return false
			}
		default:
			return false
		}
	}
	return true
}

// WithoutRighthandStart introduces a fresh start symbol S' → S when the start symbol S
// occurs on some right side. Otherwise it returns a copy of g.
func (g *Grammar) WithoutRighthandStart() *Grammar {
	onRHS := false
	for _, p := range g.prods {
		if containsSymbol(p.RHS, g.start) {
			onRHS = true
			break
		}
	}
	if !onRHS {
		return g.Clone()
	}

	start := primed(g.start, newSymbolSet(append(g.nonTerms.symbols(), g.terms.syms...)...))
	prods := append(cloneProductions(g.prods), NewProduction([]Symbol{start}, []Symbol{g.start}))
	nonTerms := append(g.nonTerms.symbols(), start)

	return newGrammar(g.name, start, prods, nonTerms, g.terms.symbols())
}
