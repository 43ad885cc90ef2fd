package grammar

import (
	"fmt"

	verr "github.com/prenaissance/FLFA-labs/error"
	"github.com/prenaissance/FLFA-labs/spec"
)

// Builder turns a parsed grammar definition into a Grammar.
//
// Every symbol listed by the #terminals directive is a terminal and every other symbol is
// a nonterminal. #nonterminals fixes the order of the nonterminals; the undeclared ones follow
// in order of first appearance. Without #start, the first symbol of the first left side is
// the start symbol.
type Builder struct {
	AST *spec.RootNode

	errs verr.SpecErrors
}

type directives struct {
	name     string
	start    *spec.DirectiveNode
	terms    *spec.DirectiveNode
	nonTerms *spec.DirectiveNode
}

func (b *Builder) Build() (*Grammar, error) {
	dirs := b.readDirectives()
	if len(b.errs) > 0 {
		return nil, b.errs
	}
	if len(b.AST.Productions) == 0 {
		return nil, verr.SpecErrors{
			&verr.SpecError{
				Cause: semErrNoProduction,
			},
		}
	}
	if dirs.terms == nil {
		return nil, verr.SpecErrors{
			&verr.SpecError{
				Cause: semErrNoTerminal,
			},
		}
	}

	terms := newSymbolSet()
	for _, param := range dirs.terms.Parameters {
		terms.add(Symbol(param))
	}

	nonTerms := newSymbolSet()
	if dirs.nonTerms != nil {
		for _, param := range dirs.nonTerms.Parameters {
			sym := Symbol(param)
			if terms.contains(sym) {
				b.errs = append(b.errs, &verr.SpecError{
					Cause:  semErrDuplicateName,
					Detail: param,
					Row:    dirs.nonTerms.Pos.Row,
					Col:    dirs.nonTerms.Pos.Col,
				})
				continue
			}
			nonTerms.add(sym)
		}
	}
	for _, prod := range b.AST.Productions {
		for _, sym := range prod.LHS {
			if !terms.contains(Symbol(sym)) {
				nonTerms.add(Symbol(sym))
			}
		}
	}
	for _, prod := range b.AST.Productions {
		for _, alt := range prod.RHS {
			for _, sym := range alt.Elements {
				if !terms.contains(Symbol(sym)) {
					nonTerms.add(Symbol(sym))
				}
			}
		}
	}

	var start Symbol
	if dirs.start != nil {
		start = Symbol(dirs.start.Parameters[0])
		if terms.contains(start) {
			b.errs = append(b.errs, &verr.SpecError{
				Cause:  semErrStartNotNonTerminal,
				Detail: string(start),
				Row:    dirs.start.Pos.Row,
				Col:    dirs.start.Pos.Col,
			})
		} else {
			nonTerms.add(start)
		}
	} else {
		first := b.AST.Productions[0]
		start = Symbol(first.LHS[0])
		if terms.contains(start) {
			b.errs = append(b.errs, &verr.SpecError{
				Cause:  semErrStartNotNonTerminal,
				Detail: fmt.Sprintf("%v; specify the start symbol using the #start directive", start),
				Row:    first.Pos.Row,
				Col:    first.Pos.Col,
			})
		}
	}

	ps := newProductionSet()
	for _, prod := range b.AST.Productions {
		lhs := make([]Symbol, len(prod.LHS))
		for i, sym := range prod.LHS {
			lhs[i] = Symbol(sym)
		}
		for _, alt := range prod.RHS {
			rhs := make([]Symbol, len(alt.Elements))
			for i, sym := range alt.Elements {
				rhs[i] = Symbol(sym)
			}
			p := NewProduction(lhs, rhs)
			if !ps.append(p) {
				b.errs = append(b.errs, &verr.SpecError{
					Cause:  semErrDuplicateProduction,
					Detail: p.String(),
					Row:    alt.Pos.Row,
					Col:    alt.Pos.Col,
				})
			}
		}
	}

	if len(b.errs) > 0 {
		return nil, b.errs
	}

	return newGrammar(dirs.name, start, ps.productions(), nonTerms.symbols(), terms.symbols()), nil
}

func (b *Builder) readDirectives() *directives {
	dirs := &directives{}
	seen := map[string]struct{}{}
	for _, dir := range b.AST.Directives {
		if _, ok := seen[dir.Name]; ok {
			b.errs = append(b.errs, &verr.SpecError{
				Cause:  semErrDuplicateDir,
				Detail: dir.Name,
				Row:    dir.Pos.Row,
				Col:    dir.Pos.Col,
			})
			continue
		}
		seen[dir.Name] = struct{}{}

		switch dir.Name {
		case "name":
			if len(dir.Parameters) != 1 {
				b.errs = append(b.errs, &verr.SpecError{
					Cause:  semErrDirInvalidParam,
					Detail: "'name' takes just one parameter",
					Row:    dir.Pos.Row,
					Col:    dir.Pos.Col,
				})
				continue
			}
			dirs.name = dir.Parameters[0]
		case "start":
			if len(dir.Parameters) != 1 {
				b.errs = append(b.errs, &verr.SpecError{
					Cause:  semErrDirInvalidParam,
					Detail: "'start' takes just one parameter",
					Row:    dir.Pos.Row,
					Col:    dir.Pos.Col,
				})
				continue
			}
			dirs.start = dir
		case "terminals":
			if len(dir.Parameters) == 0 {
				b.errs = append(b.errs, &verr.SpecError{
					Cause:  semErrDirInvalidParam,
					Detail: "'terminals' needs at least one parameter",
					Row:    dir.Pos.Row,
					Col:    dir.Pos.Col,
				})
				continue
			}
			dirs.terms = dir
		case "nonterminals":
			if len(dir.Parameters) == 0 {
				b.errs = append(b.errs, &verr.SpecError{
					Cause:  semErrDirInvalidParam,
					Detail: "'nonterminals' needs at least one parameter",
					Row:    dir.Pos.Row,
					Col:    dir.Pos.Col,
				})
				continue
			}
			dirs.nonTerms = dir
		default:
			b.errs = append(b.errs, &verr.SpecError{
				Cause:  semErrDirInvalidName,
				Detail: dir.Name,
				Row:    dir.Pos.Row,
				Col:    dir.Pos.Col,
			})
		}
	}
	return dirs
}
