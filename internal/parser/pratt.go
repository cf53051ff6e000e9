package parser

import (
	"github.com/vhaisman/boolexpr/internal/ast"
	"github.com/vhaisman/boolexpr/internal/perror"
	"github.com/vhaisman/boolexpr/internal/registry"
	"github.com/vhaisman/boolexpr/internal/token"
)

// prattParser is a recursive top-down operator-precedence parser sharing
// the same token stream and registry as the shunting-yard strategy.
type prattParser struct {
	toks []token.Token
	pos  int
	reg  *registry.Registry
}

func parsePratt(toks []token.Token, reg *registry.Registry) (ast.Node, error) {
	p := &prattParser{toks: toks, reg: reg}
	n, err := p.expr(0)
	if err != nil {
		return nil, err
	}
	if p.pos != len(p.toks) {
		tok := p.toks[p.pos]
		return nil, perror.New(perror.InvalidTokenSequence, tok.Pos, tok.Lexeme)
	}
	return n, nil
}

func (p *prattParser) peek() (token.Token, bool) {
	if p.pos >= len(p.toks) {
		return token.Token{}, false
	}
	return p.toks[p.pos], true
}

func (p *prattParser) advance() token.Token {
	tok := p.toks[p.pos]
	p.pos++
	return tok
}

// expr parses an expression, consuming binary operators whose left binding
// power is at least minBp.
func (p *prattParser) expr(minBp int) (ast.Node, error) {
	left, err := p.nud()
	if err != nil {
		return nil, err
	}
	for {
		tok, ok := p.peek()
		if !ok || tok.Kind != token.Operator {
			break
		}
		arity, _ := p.reg.ArityOf(tok.Lexeme)
		if arity != registry.Binary {
			break
		}
		lbp, _ := p.reg.Precedence(tok.Lexeme)
		if lbp < minBp {
			break
		}
		p.advance()
		rbp := lbp
		if !p.reg.IsRightAssoc(tok.Lexeme) {
			rbp = lbp + 1
		}
		right, err := p.expr(rbp)
		if err != nil {
			return nil, err
		}
		node, _ := p.reg.MakeBinary(tok.Lexeme, left, right)
		left = node
	}
	return left, nil
}

// nud handles the null-denotation forms: a parenthesized subexpression, a
// prefix unary, a constant, or an identifier.
func (p *prattParser) nud() (ast.Node, error) {
	tok, ok := p.peek()
	if !ok {
		return nil, perror.New(perror.EmptyExpression, 0, "")
	}
	switch tok.Kind {
	case token.LeftParen:
		p.advance()
		inner, err := p.expr(0)
		if err != nil {
			return nil, err
		}
		close, ok := p.peek()
		if !ok || close.Kind != token.RightParen {
			return nil, perror.New(perror.UnmatchedParentheses, tok.Pos, "(")
		}
		p.advance()
		return inner, nil
	case token.Constant:
		p.advance()
		return ast.NewConstant(tok.Lexeme == "1"), nil
	case token.Identifier:
		p.advance()
		return ast.NewVariable(tok.Lexeme), nil
	case token.Operator:
		arity, _ := p.reg.ArityOf(tok.Lexeme)
		if arity != registry.Unary {
			return nil, perror.New(perror.InvalidBinaryOperatorContext, tok.Pos, tok.Lexeme)
		}
		p.advance()
		rbp, _ := p.reg.Precedence(tok.Lexeme)
		operand, err := p.expr(rbp)
		if err != nil {
			return nil, err
		}
		node, _ := p.reg.MakeUnary(tok.Lexeme, operand)
		return node, nil
	default:
		return nil, perror.New(perror.InvalidTokenSequence, tok.Pos, tok.Lexeme)
	}
}
