package spec

import "fmt"

type SyntaxError struct {
	message string
}

func newSyntaxError(message string) *SyntaxError {
	return &SyntaxError{
		message: message,
	}
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("syntax error: %s", e.message)
}

var (
	synErrInvalidToken     = newSyntaxError("invalid token")
	synErrNoProduction     = newSyntaxError("a grammar must have at least one production")
	synErrNoProductionName = newSyntaxError("a production needs a left side")
	synErrNoColon          = newSyntaxError("the colon must precede alternatives")
	synErrNoSemicolon      = newSyntaxError("the semicolon is missing at the last of an alternative")
	synErrNoDirectiveName  = newSyntaxError("a directive needs a name")
	synErrDirNoSemicolon   = newSyntaxError("the semicolon is missing at the last of a directive")
	synErrEpsilonMixed     = newSyntaxError("ε must be the only element of an alternative")
)
