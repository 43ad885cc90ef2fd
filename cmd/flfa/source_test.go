package main

import (
	"os"
	"path/filepath"
	"testing"

	verr "github.com/prenaissance/FLFA-labs/error"
	"github.com/prenaissance/FLFA-labs/grammar"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	err := os.WriteFile(path, []byte(content), 0600)
	if err != nil {
		t.Fatal(err)
	}
	return path
}

func TestReadSource(t *testing.T) {
	t.Run("a grammar definition", func(t *testing.T) {
		path := writeFile(t, "lab1.flfa", `
#terminals a b c d e f;
S : a S | b S | c R ;
R : d L | e ;
L : f L | e L | d ;
`)
		src, err := readSource(path)
		if err != nil {
			t.Fatal(err)
		}
		if src.auto != nil {
			t.Fatalf("a grammar definition must not produce an automaton")
		}
		if src.name != "lab1" {
			t.Fatalf("unexpected name; want: lab1, got: %v", src.name)
		}
		if src.gram.Classify() != grammar.ClassRegular {
			t.Fatalf("unexpected class: %v", src.gram.Classify())
		}
	})

	t.Run("an automaton definition", func(t *testing.T) {
		path := writeFile(t, "nfa.yaml", `
name: lab2
initial: q0
final: [q2]
transitions:
  - {from: q0, to: q1, effect: a}
  - {from: q1, to: q2, effect: b}
`)
		src, err := readSource(path)
		if err != nil {
			t.Fatal(err)
		}
		if src.auto == nil {
			t.Fatalf("an automaton definition must produce an automaton")
		}
		if src.name != "lab2" {
			t.Fatalf("unexpected name; want: lab2, got: %v", src.name)
		}
		if src.gram.Start() != "q0" {
			t.Fatalf("unexpected start symbol; want: q0, got: %v", src.gram.Start())
		}
	})

	t.Run("errors in a grammar definition point to the file", func(t *testing.T) {
		path := writeFile(t, "broken.flfa", `
#terminals a;
S : a A
`)
		_, err := readSource(path)
		specErr, ok := err.(*verr.SpecError)
		if !ok {
			t.Fatalf("unexpected error; want: *SpecError, got: %T %v", err, err)
		}
		if specErr.FilePath != path || specErr.SourceName != path {
			t.Fatalf("unexpected file path; want: %v, got: %v, %v", path, specErr.FilePath, specErr.SourceName)
		}
	})

	t.Run("automaton commands need an automaton file", func(t *testing.T) {
		_, _, err := requireAutomaton("grammar.flfa")
		if err == nil {
			t.Fatalf("an error must occur")
		}
	})
}

func TestSplitWord(t *testing.T) {
	tests := []struct {
		caption string
		word    string
		sep     string
		expect  []grammar.Symbol
	}{
		{
			caption: "every character is a symbol without a separator",
			word:    "abb",
			expect:  []grammar.Symbol{"a", "b", "b"},
		},
		{
			caption: "symbols are split by a separator",
			word:    "id + id",
			sep:     " ",
			expect:  []grammar.Symbol{"id", "+", "id"},
		},
		{
			caption: "empty symbols are dropped",
			word:    "a  b",
			sep:     " ",
			expect:  []grammar.Symbol{"a", "b"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.caption, func(t *testing.T) {
			actual := splitWord(tt.word, tt.sep)
			if !grammar.EqualSymbols(actual, tt.expect) {
				t.Fatalf("unexpected symbols; want: %v, got: %v", tt.expect, actual)
			}
			if joined := joinWord(actual, tt.sep); tt.sep == "" && joined != tt.word {
				t.Fatalf("unexpected word; want: %v, got: %v", tt.word, joined)
			}
		})
	}
}
