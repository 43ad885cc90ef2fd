package grammar

import (
	"encoding/binary"
	"fmt"
	"strings"

	"github.com/zeebo/xxh3"
)

type productionID xxh3.Uint128

func (id productionID) String() string {
	return fmt.Sprintf("%016x%016x", id.Hi, id.Lo)
}

func genProductionID(lhs, rhs []Symbol) productionID {
	var seq []byte
	seq = appendSymbolSeq(seq, lhs)
	seq = appendSymbolSeq(seq, rhs)
	return productionID(xxh3.Hash128(seq))
}

// appendSymbolSeq encodes a length-prefixed symbol sequence so that
// different sequences never share an encoding.
func appendSymbolSeq(b []byte, syms []Symbol) []byte {
	b = binary.AppendUvarint(b, uint64(len(syms)))
	for _, sym := range syms {
		b = binary.AppendUvarint(b, uint64(len(sym)))
		b = append(b, sym...)
	}
	return b
}

// Production is a rewrite rule LHS → RHS. An empty RHS is a null production.
type Production struct {
	LHS []Symbol
	RHS []Symbol
}

// NewProduction returns a production that owns copies of lhs and rhs.
func NewProduction(lhs []Symbol, rhs []Symbol) Production {
	r := cloneSymbols(rhs)
	if r == nil {
		r = []Symbol{}
	}
	return Production{
		LHS: cloneSymbols(lhs),
		RHS: r,
	}
}

func (p Production) id() productionID {
	return genProductionID(p.LHS, p.RHS)
}

func (p Production) Equal(q Production) bool {
	return EqualSymbols(p.LHS, q.LHS) && EqualSymbols(p.RHS, q.RHS)
}

func (p Production) IsEmpty() bool {
	return len(p.RHS) == 0
}

func (p Production) clone() Production {
	return NewProduction(p.LHS, p.RHS)
}

// head returns the first symbol of the left side.
func (p Production) head() Symbol {
	if len(p.LHS) == 0 {
		return ""
	}
	return p.LHS[0]
}

func (p Production) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%v →", joinSymbols(p.LHS, " "))
	if len(p.RHS) > 0 {
		for _, sym := range p.RHS {
			fmt.Fprintf(&b, " %v", sym)
		}
	} else {
		fmt.Fprintf(&b, " %v", symbolEpsilon)
	}
	return b.String()
}

func cloneProductions(prods []Production) []Production {
	c := make([]Production, len(prods))
	for i, p := range prods {
		c[i] = p.clone()
	}
	return c
}

// productionSet is an ordered collection of productions without duplicates.
type productionSet struct {
	prods   []Production
	id2Idx  map[productionID][]int
	lhs2Idx map[Symbol][]int
}

func newProductionSet() *productionSet {
	return &productionSet{
		id2Idx:  map[productionID][]int{},
		lhs2Idx: map[Symbol][]int{},
	}
}

func newProductionSetOf(prods []Production) *productionSet {
	ps := newProductionSet()
	for _, p := range prods {
		ps.append(p)
	}
	return ps
}

// append adds prod unless an equal production is already in the set.
func (ps *productionSet) append(prod Production) bool {
	id := prod.id()
	for _, i := range ps.id2Idx[id] {
		if ps.prods[i].Equal(prod) {
			return false
		}
	}

	idx := len(ps.prods)
	ps.prods = append(ps.prods, prod.clone())
	ps.id2Idx[id] = append(ps.id2Idx[id], idx)
	if len(prod.LHS) == 1 {
		ps.lhs2Idx[prod.LHS[0]] = append(ps.lhs2Idx[prod.LHS[0]], idx)
	}

	return true
}

func (ps *productionSet) contains(prod Production) bool {
	for _, i := range ps.id2Idx[prod.id()] {
		if ps.prods[i].Equal(prod) {
			return true
		}
	}
	return false
}

// findByLHS returns the productions whose left side is exactly lhs.
// The returned slice is a snapshot, so appending to the set while iterating over it is safe.
func (ps *productionSet) findByLHS(lhs Symbol) []Production {
	idxs := ps.lhs2Idx[lhs]
	prods := make([]Production, 0, len(idxs))
	for _, i := range idxs {
		prods = append(prods, ps.prods[i])
	}
	return prods
}

func (ps *productionSet) len() int {
	return len(ps.prods)
}

func (ps *productionSet) productions() []Production {
	return cloneProductions(ps.prods)
}
