// Package perror defines the typed error taxonomy shared by the tokenizer and
// the parser strategies. Every fault raised while turning source text into an
// AST is one of these variants, carrying enough position information to
// reproduce the offending line with a caret.
package perror

import (
	"fmt"
	"strings"
)

// Code identifies a fault category. One variant per category named in the
// specification; there is no "miscellaneous" bucket beyond InvalidTokenSequence.
type Code int

const (
	EmptyExpression Code = iota
	InvalidTokenBeforeOpenParen
	InvalidTokenAfterCloseParen
	UnaryOperatorMissingOperand
	BinaryOperatorAtEnds
	InvalidBinaryOperatorContext
	UnmatchedClosingParenthesis
	UnmatchedParentheses
	UnknownToken
	InvalidTokenSequence
)

var codeNames = [...]string{
	EmptyExpression:              "EmptyExpression",
	InvalidTokenBeforeOpenParen:  "InvalidTokenBeforeOpenParen",
	InvalidTokenAfterCloseParen:  "InvalidTokenAfterCloseParen",
	UnaryOperatorMissingOperand:  "UnaryOperatorMissingOperand",
	BinaryOperatorAtEnds:         "BinaryOperatorAtEnds",
	InvalidBinaryOperatorContext: "InvalidBinaryOperatorContext",
	UnmatchedClosingParenthesis:  "UnmatchedClosingParenthesis",
	UnmatchedParentheses:         "UnmatchedParentheses",
	UnknownToken:                 "UnknownToken",
	InvalidTokenSequence:         "InvalidTokenSequence",
}

func (c Code) String() string {
	if int(c) < 0 || int(c) >= len(codeNames) {
		return "Unknown"
	}
	return codeNames[c]
}

// ParseError is the concrete error value returned by the tokenizer and both
// parser strategies. Every field beyond Code and a human message is optional
// and left at its zero value when not applicable to the fault.
type ParseError struct {
	Code        Code
	TokenIndex  int    // index of the offending token, or -1 if not applicable
	CharIndex   int    // 0-based source index where the fault starts
	CharStart   int    // start of the offending lexeme, usually == CharIndex
	CharEnd     int    // end of the offending lexeme (exclusive)
	CharCode    rune   // the offending rune, for single-character faults; 0 if not applicable
	Lexeme      string // the offending token text
	Category    string // a short token-category label ("operator", "identifier", ...)
	Suggestions []string
	Source      string // the full source line, used to render a caret
	Cause       error  // wrapped cause, set only for InvalidTokenSequence
}

func (e *ParseError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s at char %d", e.Code, e.CharIndex)
	if e.Lexeme != "" {
		fmt.Fprintf(&b, " (%q)", e.Lexeme)
	}
	if e.Cause != nil {
		fmt.Fprintf(&b, ": %s", e.Cause)
	}
	if len(e.Suggestions) > 0 {
		fmt.Fprintf(&b, "; did you mean: %s?", strings.Join(e.Suggestions, ", "))
	}
	return b.String()
}

func (e *ParseError) Unwrap() error {
	return e.Cause
}

// Format reproduces the offending source line with a caret under the fault
// column, in the style most compilers use for single-line diagnostics.
func (e *ParseError) Format() string {
	if e.Source == "" {
		return e.Error()
	}
	col := e.CharIndex
	if col < 0 {
		col = 0
	}
	if col > len(e.Source) {
		col = len(e.Source)
	}
	caret := strings.Repeat(" ", col) + "^"
	return fmt.Sprintf("%s\n%s\n%s", e.Error(), e.Source, caret)
}

// New builds a ParseError for a source-position fault (no cause).
func New(code Code, charIndex int, lexeme string) *ParseError {
	return &ParseError{
		Code:      code,
		TokenIndex: -1,
		CharIndex: charIndex,
		CharStart: charIndex,
		CharEnd:   charIndex + len(lexeme),
		Lexeme:    lexeme,
	}
}

// Wrap converts any error into an InvalidTokenSequence, as required of the
// public tryParse entry point: every fault, typed or not, becomes a single
// catch-all category with the original cause attached. This includes an
// already-typed *ParseError: it is rewrapped rather than returned as-is, so
// TryParse's Code is always InvalidTokenSequence and the original code and
// position are only reachable through errors.As on the wrapped Cause.
func Wrap(cause error) *ParseError {
	return &ParseError{
		Code:       InvalidTokenSequence,
		TokenIndex: -1,
		Cause:      cause,
	}
}
