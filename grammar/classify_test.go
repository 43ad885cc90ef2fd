package grammar

import (
	"testing"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		caption string
		src     string
		class   Class
	}{
		{
			caption: "right-linear productions make a regular grammar",
			src:     lab1Src,
			class:   ClassRegular,
		},
		{
			caption: "left-linear productions make a regular grammar",
			src: `
#terminals a b;
S : S a | A b ;
A : a | ε ;
`,
			class: ClassRegular,
		},
		{
			caption: "right sides made of terminals only are both right- and left-linear",
			src: `
#terminals a b;
S : a b | b ;
`,
			class: ClassRegular,
		},
		{
			caption: "mixing right-linear and left-linear productions makes a context-free grammar",
			src: `
#terminals a b c;
S : a A ;
A : B b ;
B : c ;
`,
			class: ClassContextFree,
		},
		{
			caption: "a nonterminal between terminals makes a context-free grammar",
			src: `
#terminals a b;
S : a S b | ε ;
`,
			class: ClassContextFree,
		},
		{
			caption: "a terminal between nonterminals makes a context-free grammar",
			src: `
#terminals a b;
S : A a A | b ;
A : a ;
`,
			class: ClassContextFree,
		},
		{
			caption: "the lab4 grammar is context-free",
			src:     v2Src,
			class:   ClassContextFree,
		},
		{
			caption: "a left side of several nonterminals makes a context-sensitive grammar",
			src: `
#terminals a b;
S : A B ;
A B : B A ;
A : a ;
B : b ;
`,
			class: ClassContextSensitive,
		},
		{
			caption: "a terminal on a left side makes a recursive grammar",
			src: `
#start S;
#terminals a b c;
S : a S b | c ;
a S b : a a S b b ;
`,
			class: ClassRecursive,
		},
	}
	for _, tt := range tests {
		t.Run(tt.caption, func(t *testing.T) {
			g := genGrammar(t, tt.src)
			class := g.Classify()
			if class != tt.class {
				t.Fatalf("unexpected class; want: %v, got: %v", tt.class, class)
			}
		})
	}
}

func TestClass_String(t *testing.T) {
	tests := []struct {
		class Class
		text  string
	}{
		{class: ClassRegular, text: "regular"},
		{class: ClassContextFree, text: "context-free"},
		{class: ClassContextSensitive, text: "context-sensitive"},
		{class: ClassRecursive, text: "recursive"},
	}
	for _, tt := range tests {
		if tt.class.String() != tt.text {
			t.Fatalf("unexpected text; want: %v, got: %v", tt.text, tt.class.String())
		}
	}
}
