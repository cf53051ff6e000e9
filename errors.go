package boolexpr

import (
	"github.com/vhaisman/boolexpr/internal/eval"
	"github.com/vhaisman/boolexpr/internal/perror"
)

// ParseError is the concrete error type every parsing failure returns as.
type ParseError = perror.ParseError

// ParseErrorCode re-exports the fault taxonomy from internal/perror so
// callers can switch on it without importing an internal package.
type ParseErrorCode = perror.Code

const (
	EmptyExpression              = perror.EmptyExpression
	InvalidTokenBeforeOpenParen  = perror.InvalidTokenBeforeOpenParen
	InvalidTokenAfterCloseParen  = perror.InvalidTokenAfterCloseParen
	UnaryOperatorMissingOperand  = perror.UnaryOperatorMissingOperand
	BinaryOperatorAtEnds         = perror.BinaryOperatorAtEnds
	InvalidBinaryOperatorContext = perror.InvalidBinaryOperatorContext
	UnmatchedClosingParenthesis  = perror.UnmatchedClosingParenthesis
	UnmatchedParentheses         = perror.UnmatchedParentheses
	UnknownToken                 = perror.UnknownToken
	InvalidTokenSequence         = perror.InvalidTokenSequence
)

// ErrLengthMismatch and ErrMissingVariable are the sentinel evaluation
// errors: use errors.Is to test for them regardless of the wrapping detail
// a particular Evaluate/EvaluateMap call adds.
var (
	ErrLengthMismatch  = eval.ErrLengthMismatch
	ErrMissingVariable = eval.ErrMissingVariable
)
