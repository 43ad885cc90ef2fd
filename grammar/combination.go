package grammar

import (
	"slices"
	"strings"
)

// EqualSymbols reports whether a and b hold the same symbols in the same order.
func EqualSymbols(a, b []Symbol) bool {
	return slices.Equal(a, b)
}

// Combinations returns every distinct sequence obtained by removing any subset of the
// elements of s, the whole s first and the empty sequence included. Removing one element
// at a time, depth first, determines the order:
//
//	Combinations([]int{1, 2, 3}) == [[1 2 3] [2 3] [3] [] [2] [1 3] [1] [1 2]]
func Combinations[T comparable](s []T) [][]T {
	var combs [][]T
	var walk func(s []T)
	walk = func(s []T) {
		for _, c := range combs {
			if slices.Equal(c, s) {
				return
			}
		}
		combs = append(combs, s)
		for i := range s {
			rest := make([]T, 0, len(s)-1)
			rest = append(rest, s[:i]...)
			rest = append(rest, s[i+1:]...)
			walk(rest)
		}
	}
	walk(slices.Clone(s))
	return combs
}

// CombinationsWithout returns every distinct sequence obtained by removing zero or more
// occurrences of elem from s. A sequence containing k occurrences yields at most 2^k results.
func CombinationsWithout[T comparable](elem T, s []T) [][]T {
	var positions []int
	for i, e := range s {
		if e == elem {
			positions = append(positions, i)
		}
	}

	var combs [][]T
	for _, removed := range Combinations(positions) {
		c := make([]T, 0, len(s)-len(removed))
		for i, e := range s {
			if slices.Contains(removed, i) {
				continue
			}
			c = append(c, e)
		}

		dup := false
		for _, d := range combs {
			if slices.Equal(c, d) {
				dup = true
				break
			}
		}
		if dup {
			continue
		}
		combs = append(combs, c)
	}
	return combs
}

// AvailableLetter returns the first capital letter not in used. When all of them are taken,
// it tries the letters followed by one prime mark, then two, and so on.
func AvailableLetter(used []Symbol) Symbol {
	taken := newSymbolSet(used...)
	for primes := 0; ; primes++ {
		suffix := strings.Repeat("'", primes)
		for c := 'A'; c <= 'Z'; c++ {
			sym := Symbol(string(c) + suffix)
			if !taken.contains(sym) {
				return sym
			}
		}
	}
}

// primed returns sym followed by as many prime marks as needed to be absent from used.
func primed(sym Symbol, used *symbolSet) Symbol {
	p := sym + "'"
	for used.contains(p) {
		p += "'"
	}
	return p
}
