package spec

import (
	"fmt"
	"io"
	"strings"
	"sync"

	mlcompiler "github.com/nihei9/maleeni/compiler"
	mldriver "github.com/nihei9/maleeni/driver"
	mlspec "github.com/nihei9/maleeni/spec"
	verr "github.com/prenaissance/FLFA-labs/error"
)

type tokenKind string

const (
	tokenKindID              = tokenKind("id")
	tokenKindEpsilon         = tokenKind("ε")
	tokenKindColon           = tokenKind(":")
	tokenKindOr              = tokenKind("|")
	tokenKindSemicolon       = tokenKind(";")
	tokenKindDirectiveMarker = tokenKind("#")
	tokenKindEOF             = tokenKind("eof")
	tokenKindInvalid         = tokenKind("invalid")
)

type Position struct {
	Row int
	Col int
}

func newPosition(row, col int) Position {
	return Position{
		Row: row,
		Col: col,
	}
}

type token struct {
	kind tokenKind
	text string
	pos  Position
}

func newSymbolToken(kind tokenKind, pos Position) *token {
	return &token{
		kind: kind,
		pos:  pos,
	}
}

func newIDToken(text string, pos Position) *token {
	return &token{
		kind: tokenKindID,
		text: text,
		pos:  pos,
	}
}

func newEOFToken(pos Position) *token {
	return &token{
		kind: tokenKindEOF,
		pos:  pos,
	}
}

func newInvalidToken(text string, pos Position) *token {
	return &token{
		kind: tokenKindInvalid,
		text: text,
		pos:  pos,
	}
}

// The kinds are listed in priority order; an earlier kind wins when two kinds match
// lexemes of the same length.
var lexEntries = []*mlspec.LexEntry{
	{Kind: "white_space", Pattern: `[\u{0009}\u{000A}\u{000D}\u{0020}]+`},
	{Kind: "line_comment", Pattern: `//[^\u{000A}\u{000D}]*`},
	{Kind: "epsilon", Pattern: `\u{03B5}`},
	{Kind: "directive_marker", Pattern: `#`},
	{Kind: "colon", Pattern: `:`},
	{Kind: "or", Pattern: `\|`},
	{Kind: "semicolon", Pattern: `;`},
	{Kind: "identifier", Pattern: `[^\u{0009}\u{000A}\u{000D}\u{0020}#:|;]+`},
}

var (
	lexSpecOnce sync.Once
	lexSpec     *mlspec.CompiledLexSpec
	lexSpecErr  error
)

func compiledLexSpec() (*mlspec.CompiledLexSpec, error) {
	lexSpecOnce.Do(func() {
		lexSpec, lexSpecErr = compileLexSpec()
	})
	return lexSpec, lexSpecErr
}

func compileLexSpec() (*mlspec.CompiledLexSpec, error) {
	s, err, cErrs := mlcompiler.Compile(&mlspec.LexSpec{
		Name:    "flfa",
		Entries: lexEntries,
	}, mlcompiler.CompressionLevel(mlcompiler.CompressionLevelMax))
	if err != nil {
		if len(cErrs) > 0 {
			var b strings.Builder
			for i, cErr := range cErrs {
				if i > 0 {
					fmt.Fprintf(&b, "\n")
				}
				fmt.Fprintf(&b, "%v: %v", cErr.Kind, cErr.Cause)
				if cErr.Detail != "" {
					fmt.Fprintf(&b, ": %v", cErr.Detail)
				}
			}
			return nil, fmt.Errorf("failed to compile the lexical specification: %v", b.String())
		}
		return nil, err
	}
	return s, nil
}

type lexer struct {
	s *mlspec.CompiledLexSpec
	d *mldriver.Lexer
}

func newLexer(src io.Reader) (*lexer, error) {
	s, err := compiledLexSpec()
	if err != nil {
		return nil, err
	}
	d, err := mldriver.NewLexer(mldriver.NewLexSpec(s), src)
	if err != nil {
		return nil, err
	}
	return &lexer{
		s: s,
		d: d,
	}, nil
}

func (l *lexer) next() (*token, error) {
	var tok *mldriver.Token
	for {
		var err error
		tok, err = l.d.Next()
		if err != nil {
			return nil, err
		}
		pos := newPosition(tok.Row+1, tok.Col+1)
		if tok.Invalid {
			return newInvalidToken(string(tok.Lexeme), pos), nil
		}
		if tok.EOF {
			return newEOFToken(pos), nil
		}
		switch l.s.KindNames[tok.KindID] {
		case "white_space", "line_comment":
			continue
		}
		break
	}

	pos := newPosition(tok.Row+1, tok.Col+1)
	switch l.s.KindNames[tok.KindID] {
	case "epsilon":
		return newSymbolToken(tokenKindEpsilon, pos), nil
	case "directive_marker":
		return newSymbolToken(tokenKindDirectiveMarker, pos), nil
	case "colon":
		return newSymbolToken(tokenKindColon, pos), nil
	case "or":
		return newSymbolToken(tokenKindOr, pos), nil
	case "semicolon":
		return newSymbolToken(tokenKindSemicolon, pos), nil
	case "identifier":
		return newIDToken(string(tok.Lexeme), pos), nil
	}

	return nil, &verr.SpecError{
		Cause:  synErrInvalidToken,
		Detail: fmt.Sprintf("unknown token kind: %v", l.s.KindNames[tok.KindID]),
		Row:    pos.Row,
		Col:    pos.Col,
	}
}
