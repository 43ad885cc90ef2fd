package main

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/prenaissance/FLFA-labs/automaton"
	verr "github.com/prenaissance/FLFA-labs/error"
	"github.com/prenaissance/FLFA-labs/grammar"
	"github.com/prenaissance/FLFA-labs/spec"
)

// source is the content of an input file. auto is nil for a grammar definition.
type source struct {
	name string
	gram *grammar.Grammar
	auto *automaton.Automaton
}

func isAutomatonFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml", ".json":
		return true
	}
	return false
}

func readSource(path string) (*source, error) {
	if isAutomatonFile(path) {
		a, name, err := readAutomaton(path)
		if err != nil {
			return nil, err
		}
		return &source{
			name: name,
			gram: a.ToGrammar(),
			auto: a,
		}, nil
	}

	g, err := readGrammar(path)
	if err != nil {
		return nil, err
	}
	name := g.Name()
	if name == "" {
		name = baseName(path)
	}
	return &source{
		name: name,
		gram: g,
	}, nil
}

func readGrammar(path string) (gram *grammar.Grammar, retErr error) {
	defer func() {
		if retErr == nil {
			return
		}
		switch err := retErr.(type) {
		case verr.SpecErrors:
			for _, e := range err {
				e.FilePath = path
				e.SourceName = path
			}
		case *verr.SpecError:
			err.FilePath = path
			err.SourceName = path
		}
	}()

	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "cannot open the grammar file %s", path)
	}
	defer f.Close()

	ast, err := spec.Parse(f)
	if err != nil {
		return nil, err
	}

	b := grammar.Builder{
		AST: ast,
	}
	return b.Build()
}

func readAutomaton(path string) (*automaton.Automaton, string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, "", errors.Wrapf(err, "cannot open the automaton file %s", path)
	}
	defer f.Close()

	def, err := automaton.Load(f)
	if err != nil {
		return nil, "", errors.Wrapf(err, "%s", path)
	}
	a, err := def.Build()
	if err != nil {
		return nil, "", errors.Wrapf(err, "%s", path)
	}
	name := def.Name
	if name == "" {
		name = baseName(path)
	}
	return a, name, nil
}

func requireAutomaton(path string) (*automaton.Automaton, string, error) {
	if !isAutomatonFile(path) {
		return nil, "", errors.Errorf("%s is not an automaton definition; use a .yaml, .yml, or .json file", path)
	}
	return readAutomaton(path)
}

func baseName(path string) string {
	return strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
}

// splitWord turns a word into symbols. An empty separator makes every character a symbol.
func splitWord(word, sep string) []grammar.Symbol {
	var texts []string
	if sep == "" {
		texts = strings.Split(word, "")
	} else {
		texts = strings.Split(word, sep)
	}
	syms := make([]grammar.Symbol, 0, len(texts))
	for _, text := range texts {
		if text == "" {
			continue
		}
		syms = append(syms, grammar.Symbol(text))
	}
	return syms
}

func joinWord(syms []grammar.Symbol, sep string) string {
	texts := make([]string, len(syms))
	for i, sym := range syms {
		texts[i] = string(sym)
	}
	return strings.Join(texts, sep)
}
