package parser

import (
	"github.com/vhaisman/boolexpr/internal/perror"
	"github.com/vhaisman/boolexpr/internal/registry"
	"github.com/vhaisman/boolexpr/internal/token"
)

// expect tracks whether the validator is looking for the start of an
// operand (a constant, identifier, unary prefix or open paren) or for
// something that can follow a completed operand (a binary operator, a
// close paren, or end of input).
type expect int

const (
	expectOperand expect = iota
	expectOperatorOrClose
)

// validate enforces the structural context rules ahead of either parser
// strategy: parenthesis placement, unary/binary operand adjacency, and
// balance. It stops at the first violation, mirroring the specification's
// "single error, first observed" policy.
func validate(toks []token.Token, reg *registry.Registry, src string) error {
	if len(toks) == 0 {
		return withSource(&perror.ParseError{Code: perror.EmptyExpression, TokenIndex: -1, CharIndex: 0}, src)
	}

	state := expectOperand
	depth := 0

	for i, tok := range toks {
		switch tok.Kind {
		case token.LeftParen:
			if state == expectOperatorOrClose {
				return withSource(&perror.ParseError{
					Code: perror.InvalidTokenBeforeOpenParen, TokenIndex: i,
					CharIndex: tok.Pos, CharStart: tok.Pos, CharEnd: tok.Pos + 1, Lexeme: "(",
				}, src)
			}
			depth++
			state = expectOperand

		case token.RightParen:
			if state == expectOperand {
				return withSource(&perror.ParseError{
					Code: perror.UnmatchedClosingParenthesis, TokenIndex: i,
					CharIndex: tok.Pos, CharStart: tok.Pos, CharEnd: tok.Pos + 1, Lexeme: ")",
				}, src)
			}
			depth--
			if depth < 0 {
				return withSource(&perror.ParseError{
					Code: perror.UnmatchedClosingParenthesis, TokenIndex: i,
					CharIndex: tok.Pos, CharStart: tok.Pos, CharEnd: tok.Pos + 1, Lexeme: ")",
				}, src)
			}
			state = expectOperatorOrClose

		case token.Constant, token.Identifier:
			if state == expectOperatorOrClose {
				return withSource(&perror.ParseError{
					Code: perror.InvalidTokenSequence, TokenIndex: i,
					CharIndex: tok.Pos, CharStart: tok.Pos, CharEnd: tok.Pos + len([]rune(tok.Lexeme)),
					Lexeme: tok.Lexeme,
				}, src)
			}
			state = expectOperatorOrClose

		case token.Operator:
			arity, _ := reg.ArityOf(tok.Lexeme)
			if arity == registry.Unary {
				if state == expectOperatorOrClose {
					return withSource(&perror.ParseError{
						Code: perror.InvalidTokenSequence, TokenIndex: i,
						CharIndex: tok.Pos, CharStart: tok.Pos, CharEnd: tok.Pos + len([]rune(tok.Lexeme)),
						Lexeme: tok.Lexeme,
					}, src)
				}
				// State remains expectOperand: a unary prefix must be
				// followed by an operand, "(", or another unary.
				continue
			}
			// Binary operator.
			if state == expectOperand {
				code := perror.InvalidBinaryOperatorContext
				if i == 0 {
					code = perror.BinaryOperatorAtEnds
				}
				return withSource(&perror.ParseError{
					Code: code, TokenIndex: i,
					CharIndex: tok.Pos, CharStart: tok.Pos, CharEnd: tok.Pos + len([]rune(tok.Lexeme)),
					Lexeme: tok.Lexeme,
				}, src)
			}
			state = expectOperand
		}
	}

	if depth > 0 {
		last := toks[len(toks)-1]
		return withSource(&perror.ParseError{
			Code: perror.UnmatchedParentheses, TokenIndex: len(toks) - 1,
			CharIndex: last.Pos, CharStart: last.Pos, CharEnd: last.Pos + 1,
		}, src)
	}

	if state == expectOperand {
		last := toks[len(toks)-1]
		code := perror.BinaryOperatorAtEnds
		if arity, ok := reg.ArityOf(last.Lexeme); ok && arity == registry.Unary {
			code = perror.UnaryOperatorMissingOperand
		}
		return withSource(&perror.ParseError{
			Code: code, TokenIndex: len(toks) - 1,
			CharIndex: last.Pos, CharStart: last.Pos, CharEnd: last.Pos + len([]rune(last.Lexeme)),
			Lexeme: last.Lexeme,
		}, src)
	}

	return nil
}

func withSource(e *perror.ParseError, src string) *perror.ParseError {
	e.Source = src
	return e
}
