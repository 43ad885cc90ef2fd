package spec

import (
	"io"

	verr "github.com/prenaissance/FLFA-labs/error"
)

type RootNode struct {
	Directives  []*DirectiveNode
	Productions []*ProductionNode
}

type DirectiveNode struct {
	Name       string
	Parameters []string
	Pos        Position
}

// ProductionNode is a rule `X Y ... : alt | alt ;`. A left side of more than one symbol
// belongs to a context-sensitive or unrestricted grammar.
type ProductionNode struct {
	LHS []string
	RHS []*AlternativeNode
	Pos Position
}

// AlternativeNode is one right side. An empty alternative and a sole ε both have no elements.
type AlternativeNode struct {
	Elements []string
	Pos      Position
}

func raiseSyntaxError(pos Position, synErr *SyntaxError) {
	panic(&verr.SpecError{
		Cause: synErr,
		Row:   pos.Row,
		Col:   pos.Col,
	})
}

func raiseSyntaxErrorWithDetail(pos Position, synErr *SyntaxError, detail string) {
	panic(&verr.SpecError{
		Cause:  synErr,
		Detail: detail,
		Row:    pos.Row,
		Col:    pos.Col,
	})
}

// Parse reads a grammar definition. A syntax error is returned as a *error.SpecError
// whose Cause is a *SyntaxError.
func Parse(src io.Reader) (*RootNode, error) {
	p, err := newParser(src)
	if err != nil {
		return nil, err
	}
	root, err := p.parse()
	if err != nil {
		return nil, err
	}
	return root, nil
}

type parser struct {
	lex       *lexer
	peekedTok *token
	lastTok   *token
}

func newParser(src io.Reader) (*parser, error) {
	lex, err := newLexer(src)
	if err != nil {
		return nil, err
	}
	return &parser{
		lex: lex,
	}, nil
}

func (p *parser) parse() (root *RootNode, retErr error) {
	defer func() {
		err := recover()
		if err != nil {
			var ok bool
			retErr, ok = err.(error)
			if !ok {
				panic(err)
			}
			root = nil
		}
	}()
	return p.parseRoot(), nil
}

func (p *parser) parseRoot() *RootNode {
	root := &RootNode{}
	for {
		if p.consume(tokenKindEOF) {
			break
		}
		if dir := p.parseDirective(); dir != nil {
			root.Directives = append(root.Directives, dir)
			continue
		}
		root.Productions = append(root.Productions, p.parseProduction())
	}
	if len(root.Productions) == 0 {
		raiseSyntaxError(p.lastTok.pos, synErrNoProduction)
	}
	return root
}

func (p *parser) parseDirective() *DirectiveNode {
	if !p.consume(tokenKindDirectiveMarker) {
		return nil
	}
	pos := p.lastTok.pos
	if !p.consume(tokenKindID) {
		raiseSyntaxError(p.peekPos(), synErrNoDirectiveName)
	}
	dir := &DirectiveNode{
		Name:       p.lastTok.text,
		Parameters: []string{},
		Pos:        pos,
	}
	for p.consume(tokenKindID) {
		dir.Parameters = append(dir.Parameters, p.lastTok.text)
	}
	if !p.consume(tokenKindSemicolon) {
		raiseSyntaxError(p.peekPos(), synErrDirNoSemicolon)
	}
	return dir
}

func (p *parser) parseProduction() *ProductionNode {
	if !p.consume(tokenKindID) {
		raiseSyntaxError(p.peekPos(), synErrNoProductionName)
	}
	prod := &ProductionNode{
		LHS: []string{p.lastTok.text},
		Pos: p.lastTok.pos,
	}
	for p.consume(tokenKindID) {
		prod.LHS = append(prod.LHS, p.lastTok.text)
	}
	if !p.consume(tokenKindColon) {
		raiseSyntaxError(p.peekPos(), synErrNoColon)
	}
	prod.RHS = append(prod.RHS, p.parseAlternative())
	for p.consume(tokenKindOr) {
		prod.RHS = append(prod.RHS, p.parseAlternative())
	}
	if !p.consume(tokenKindSemicolon) {
		raiseSyntaxError(p.peekPos(), synErrNoSemicolon)
	}
	return prod
}

func (p *parser) parseAlternative() *AlternativeNode {
	alt := &AlternativeNode{
		Elements: []string{},
		Pos:      p.peekPos(),
	}
	epsilon := false
	for {
		switch {
		case p.consume(tokenKindID):
			if epsilon {
				raiseSyntaxErrorWithDetail(p.lastTok.pos, synErrEpsilonMixed, p.lastTok.text)
			}
			alt.Elements = append(alt.Elements, p.lastTok.text)
			continue
		case p.consume(tokenKindEpsilon):
			if epsilon || len(alt.Elements) > 0 {
				raiseSyntaxError(p.lastTok.pos, synErrEpsilonMixed)
			}
			epsilon = true
			continue
		}
		break
	}
	return alt
}

// peekPos returns the position of the next token without consuming it.
func (p *parser) peekPos() Position {
	if p.peekedTok == nil {
		tok, err := p.lex.next()
		if err != nil {
			panic(err)
		}
		p.peekedTok = tok
	}
	return p.peekedTok.pos
}

func (p *parser) consume(expected tokenKind) bool {
	var tok *token
	var err error
	if p.peekedTok != nil {
		tok = p.peekedTok
		p.peekedTok = nil
	} else {
		tok, err = p.lex.next()
		if err != nil {
			panic(err)
		}
	}
	p.lastTok = tok
	if tok.kind == tokenKindInvalid {
		raiseSyntaxErrorWithDetail(tok.pos, synErrInvalidToken, tok.text)
	}
	if tok.kind == expected {
		return true
	}
	p.peekedTok = tok
	p.lastTok = nil

	return false
}
