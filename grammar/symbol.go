package grammar

import (
	"strings"
)

// Symbol is a vocabulary symbol of a grammar or an automaton.
type Symbol string

func (s Symbol) String() string {
	return string(s)
}

const symbolEpsilon = "ε"

func joinSymbols(syms []Symbol, sep string) string {
	var b strings.Builder
	for i, sym := range syms {
		if i > 0 {
			b.WriteString(sep)
		}
		b.WriteString(string(sym))
	}
	return b.String()
}

func cloneSymbols(syms []Symbol) []Symbol {
	if syms == nil {
		return nil
	}
	c := make([]Symbol, len(syms))
	copy(c, syms)
	return c
}

func containsSymbol(syms []Symbol, sym Symbol) bool {
	for _, s := range syms {
		if s == sym {
			return true
		}
	}
	return false
}

// removeSymbol returns a copy of syms without any occurrence of sym.
func removeSymbol(syms []Symbol, sym Symbol) []Symbol {
	c := make([]Symbol, 0, len(syms))
	for _, s := range syms {
		if s == sym {
			continue
		}
		c = append(c, s)
	}
	return c
}

// symbolSet is a set of symbols that remembers the insertion order.
type symbolSet struct {
	syms []Symbol
	set  map[Symbol]struct{}
}

func newSymbolSet(syms ...Symbol) *symbolSet {
	s := &symbolSet{
		set: map[Symbol]struct{}{},
	}
	for _, sym := range syms {
		s.add(sym)
	}
	return s
}

func (s *symbolSet) add(sym Symbol) bool {
	if _, ok := s.set[sym]; ok {
		return false
	}
	s.set[sym] = struct{}{}
	s.syms = append(s.syms, sym)
	return true
}

func (s *symbolSet) contains(sym Symbol) bool {
	_, ok := s.set[sym]
	return ok
}

func (s *symbolSet) len() int {
	return len(s.syms)
}

func (s *symbolSet) symbols() []Symbol {
	return cloneSymbols(s.syms)
}

// filter returns the symbols of syms contained in s, keeping the order of syms.
func (s *symbolSet) filter(syms []Symbol) []Symbol {
	c := []Symbol{}
	for _, sym := range syms {
		if !s.contains(sym) {
			continue
		}
		c = append(c, sym)
	}
	return c
}
