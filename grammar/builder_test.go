package grammar

import (
	"strings"
	"testing"

	verr "github.com/prenaissance/FLFA-labs/error"
	"github.com/prenaissance/FLFA-labs/spec"
)

func TestBuilder_Build(t *testing.T) {
	tests := []struct {
		caption  string
		src      string
		name     string
		start    Symbol
		nonTerms []Symbol
		terms    []Symbol
		prods    []Production
	}{
		{
			caption:  "nonterminals are ordered by their first appearance on a left side, then on a right side",
			src:      lab1Src,
			name:     "lab1",
			start:    "S",
			nonTerms: genSyms("S", "R", "L"),
			terms:    genSyms("a", "b", "c", "d", "e", "f"),
			prods: []Production{
				genProd("S", "a", "S"),
				genProd("S", "b", "S"),
				genProd("S", "c", "R"),
				genProd("R", "d", "L"),
				genProd("R", "e"),
				genProd("L", "f", "L"),
				genProd("L", "e", "L"),
				genProd("L", "d"),
			},
		},
		{
			caption:  "undeclared nonterminals follow the declared ones",
			src:      "#terminals a; #nonterminals B; S : a B C ; B : a ;",
			start:    "S",
			nonTerms: genSyms("B", "S", "C"),
			terms:    genSyms("a"),
			prods: []Production{
				genProd("S", "a", "B", "C"),
				genProd("B", "a"),
			},
		},
		{
			caption:  "the start directive overrides the first left side",
			src:      "#start B; #terminals a; S : a B ; B : a ;",
			start:    "B",
			nonTerms: genSyms("S", "B"),
			terms:    genSyms("a"),
			prods: []Production{
				genProd("S", "a", "B"),
				genProd("B", "a"),
			},
		},
		{
			caption:  "a start symbol without productions is a nonterminal",
			src:      "#start X; #terminals a; S : a ;",
			start:    "X",
			nonTerms: genSyms("S", "X"),
			terms:    genSyms("a"),
			prods: []Production{
				genProd("S", "a"),
			},
		},
		{
			caption:  "the first left side of a context-sensitive grammar provides the start symbol",
			src:      "#terminals a b; A B : B A ; A : a ; B : b ;",
			start:    "A",
			nonTerms: genSyms("A", "B"),
			terms:    genSyms("a", "b"),
			prods: []Production{
				NewProduction(genSyms("A", "B"), genSyms("B", "A")),
				genProd("A", "a"),
				genProd("B", "b"),
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.caption, func(t *testing.T) {
			g := genGrammar(t, tt.src)
			if g.Name() != tt.name {
				t.Fatalf("unexpected name; want: %v, got: %v", tt.name, g.Name())
			}
			if g.Start() != tt.start {
				t.Fatalf("unexpected start symbol; want: %v, got: %v", tt.start, g.Start())
			}
			testSymbols(t, g.NonTerminals(), tt.nonTerms)
			testSymbols(t, g.Terminals(), tt.terms)
			testProductions(t, g.Productions(), tt.prods)
		})
	}
}

func TestBuilder_Build_SemanticError(t *testing.T) {
	tests := []struct {
		caption string
		src     string
		errs    []*SemanticError
	}{
		{
			caption: "the terminals directive is required",
			src:     "S : a ;",
			errs:    []*SemanticError{semErrNoTerminal},
		},
		{
			caption: "the terminals directive needs parameters",
			src:     "#terminals; S : a ;",
			errs:    []*SemanticError{semErrDirInvalidParam},
		},
		{
			caption: "the name directive takes one parameter",
			src:     "#name a b; #terminals a; S : a ;",
			errs:    []*SemanticError{semErrDirInvalidParam},
		},
		{
			caption: "the start directive takes one parameter",
			src:     "#start; #terminals a; S : a ;",
			errs:    []*SemanticError{semErrDirInvalidParam},
		},
		{
			caption: "a directive can appear only once",
			src:     "#terminals a; #terminals b; S : a ;",
			errs:    []*SemanticError{semErrDuplicateDir},
		},
		{
			caption: "an unknown directive is an error",
			src:     "#mode x; #terminals a; S : a ;",
			errs:    []*SemanticError{semErrDirInvalidName},
		},
		{
			caption: "a symbol cannot be both a terminal and a nonterminal",
			src:     "#terminals a; #nonterminals S a; S : a ;",
			errs:    []*SemanticError{semErrDuplicateName},
		},
		{
			caption: "the start symbol cannot be a terminal",
			src:     "#start a; #terminals a; S : a ;",
			errs:    []*SemanticError{semErrStartNotNonTerminal},
		},
		{
			caption: "the first left side cannot be a terminal when no start symbol is given",
			src:     "#terminals a; a : S ; S : a ;",
			errs:    []*SemanticError{semErrStartNotNonTerminal},
		},
		{
			caption: "every duplicate production is reported",
			src:     "#terminals a b; S : a | b | a ; S : b ;",
			errs:    []*SemanticError{semErrDuplicateProduction, semErrDuplicateProduction},
		},
	}
	for _, tt := range tests {
		t.Run(tt.caption, func(t *testing.T) {
			ast, err := spec.Parse(strings.NewReader(tt.src))
			if err != nil {
				t.Fatal(err)
			}
			b := Builder{
				AST: ast,
			}
			g, err := b.Build()
			if g != nil {
				t.Fatalf("grammar must be nil")
			}
			specErrs, ok := err.(verr.SpecErrors)
			if !ok {
				t.Fatalf("unexpected error type; want: %T, got: %T (%v)", verr.SpecErrors{}, err, err)
			}
			if len(specErrs) != len(tt.errs) {
				t.Fatalf("unexpected error count; want: %v, got: %v (%v)", len(tt.errs), len(specErrs), specErrs)
			}
			for i, e := range specErrs {
				if e.Cause != tt.errs[i] {
					t.Fatalf("unexpected error #%v; want: %v, got: %v", i, tt.errs[i], e.Cause)
				}
			}
		})
	}
}

func TestBuilder_Build_NoProduction(t *testing.T) {
	b := Builder{
		AST: &spec.RootNode{},
	}
	_, err := b.Build()
	specErrs, ok := err.(verr.SpecErrors)
	if !ok || len(specErrs) != 1 || specErrs[0].Cause != semErrNoProduction {
		t.Fatalf("unexpected error: %v", err)
	}
}
