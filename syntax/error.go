package syntax

import "errors"

// ErrSyntax is matched by every error returned from Tokenize and ToPostfix.
//
//	if errors.Is(err, syntax.ErrSyntax) { ... }
var ErrSyntax = errors.New("regex syntax error")

// ErrorCode describes what is wrong with a pattern.
// The wording follows regexp/syntax so messages read the same as the
// standard library's.
type ErrorCode string

const (
	ErrMissingBracket        ErrorCode = "missing closing ]"
	ErrMissingBrace          ErrorCode = "missing closing }"
	ErrTrailingBackslash     ErrorCode = "trailing backslash at end of expression"
	ErrInvalidRepeatSize     ErrorCode = "invalid repeat count"
	ErrMissingParen          ErrorCode = "missing closing )"
	ErrUnexpectedParen       ErrorCode = "unexpected )"
	ErrMissingRepeatArgument ErrorCode = "missing argument to repetition operator"
	ErrMissingOperand        ErrorCode = "missing operand for alternation or concatenation"
	ErrMissingOperator       ErrorCode = "adjacent expressions without operator"
)

func (e ErrorCode) String() string {
	return string(e)
}

// Error describes a pattern that cannot be compiled.
type Error struct {
	Code ErrorCode
	// Expr is the offending part of the pattern (the whole pattern when no
	// smaller piece can be blamed).
	Expr string
	// Pos is the byte offset of Expr in the pattern, or -1 when unknown.
	Pos int
}

// Error implements the error interface
func (e *Error) Error() string {
	return "error parsing regexp: " + e.Code.String() + ": `" + e.Expr + "`"
}

// Unwrap makes errors.Is(err, ErrSyntax) succeed.
func (e *Error) Unwrap() error {
	return ErrSyntax
}
