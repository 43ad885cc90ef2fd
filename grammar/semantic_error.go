package grammar

type SemanticError struct {
	message string
}

func newSemanticError(message string) *SemanticError {
	return &SemanticError{
		message: message,
	}
}

func (e *SemanticError) Error() string {
	return e.message
}

var (
	semErrNotContextFree      = newSemanticError("a grammar must be context-free to be normalized")
	semErrNotNormalized       = newSemanticError("a grammar could not be brought into Chomsky normal form; check that every symbol is declared")
	semErrNoProduction        = newSemanticError("a grammar needs at least one production")
	semErrNoTerminal          = newSemanticError("a grammar needs the #terminals directive")
	semErrDuplicateProduction = newSemanticError("duplicate production")
	semErrDuplicateName       = newSemanticError("duplicate names are not allowed between terminals and non-terminals")
	semErrDuplicateDir        = newSemanticError("a directive must not be specified more than once")
	semErrStartNotNonTerminal = newSemanticError("the start symbol must be a non-terminal")
	semErrDirInvalidName      = newSemanticError("invalid directive name")
	semErrDirInvalidParam     = newSemanticError("invalid parameter")
)
