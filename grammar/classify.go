package grammar

// Class is a position of a grammar in the Chomsky hierarchy.
type Class int

const (
	ClassRegular Class = iota
	ClassContextFree
	ClassContextSensitive
	ClassRecursive
)

func (c Class) String() string {
	switch c {
	case ClassRegular:
		return "regular"
	case ClassContextFree:
		return "context-free"
	case ClassContextSensitive:
		return "context-sensitive"
	case ClassRecursive:
		return "recursive"
	}
	return "unknown"
}

// Classify returns the most restrictive class whose constraints the productions satisfy.
// A regular grammar is reported as regular even though it is context-free as well.
func (g *Grammar) Classify() Class {
	switch {
	case g.isRegular():
		return ClassRegular
	case g.isContextFree():
		return ClassContextFree
	case g.isContextSensitive():
		return ClassContextSensitive
	}
	return ClassRecursive
}

// isRegular reports whether all productions are right-linear or all of them are left-linear.
// A grammar mixing both directions is not regular.
func (g *Grammar) isRegular() bool {
	if !g.isContextFree() {
		return false
	}

	rightLinear := true
	leftLinear := true
	for _, p := range g.prods {
		if len(p.RHS) == 0 {
			continue
		}
		if !g.allTerminals(p.RHS[:len(p.RHS)-1]) {
			rightLinear = false
		}
		if !g.allTerminals(p.RHS[1:]) {
			leftLinear = false
		}
	}
	return rightLinear || leftLinear
}

func (g *Grammar) isContextSensitive() bool {
	for _, p := range g.prods {
		for _, sym := range p.LHS {
			if !g.IsNonTerminal(sym) {
				return false
			}
		}
	}
	return true
}

func (g *Grammar) allTerminals(syms []Symbol) bool {
	for _, sym := range syms {
		if !g.IsTerminal(sym) {
			return false
		}
	}
	return true
}
