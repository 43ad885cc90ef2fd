package grammar

import (
	"strings"
	"testing"

	"github.com/prenaissance/FLFA-labs/spec"
)

func genGrammar(t *testing.T, src string) *Grammar {
	t.Helper()

	ast, err := spec.Parse(strings.NewReader(src))
	if err != nil {
		t.Fatalf("failed to parse a grammar: %v", err)
	}
	b := Builder{
		AST: ast,
	}
	g, err := b.Build()
	if err != nil {
		t.Fatalf("failed to build a grammar: %v", err)
	}
	return g
}

func genProd(lhs string, rhs ...string) Production {
	return NewProduction([]Symbol{Symbol(lhs)}, genSyms(rhs...))
}

func genSyms(texts ...string) []Symbol {
	syms := make([]Symbol, len(texts))
	for i, text := range texts {
		syms[i] = Symbol(text)
	}
	return syms
}

func testProductions(t *testing.T, actual, expected []Production) {
	t.Helper()
	if len(actual) != len(expected) {
		t.Fatalf("unexpected production count; want: %v, got: %v\nwant: %v\ngot:  %v", len(expected), len(actual), expected, actual)
	}
	for i, p := range actual {
		if !p.Equal(expected[i]) {
			t.Fatalf("unexpected production #%v; want: %v, got: %v", i, expected[i], p)
		}
	}
}

func testSymbols(t *testing.T, actual, expected []Symbol) {
	t.Helper()
	if !EqualSymbols(actual, expected) {
		t.Fatalf("unexpected symbols; want: %v, got: %v", expected, actual)
	}
}

const lab1Src = `
#name lab1;
#terminals a b c d e f;
S : a S | b S | c R ;
R : d L | e ;
L : f L | e L | d ;
`

const v2Src = `
#name v2;
#start S;
#terminals a b;
#nonterminals S A B C D;
S : a B | b A ;
A : B | b | a D | A S | b A A B | ε ;
B : b | b S ;
C : A B ;
D : B B ;
`

const v13Src = `
#name v13;
#start S;
#terminals a b;
#nonterminals S A B C D;
S : a B | D A ;
A : a | B D | b D A B ;
B : b | B A ;
D : ε | B A ;
C : B A ;
`
