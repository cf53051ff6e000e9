package parser

import (
	"github.com/vhaisman/boolexpr/internal/ast"
	"github.com/vhaisman/boolexpr/internal/perror"
	"github.com/vhaisman/boolexpr/internal/registry"
	"github.com/vhaisman/boolexpr/internal/token"
)

type opFrame struct {
	sym     string
	isParen bool
}

// parseShuntingYard implements Dijkstra's algorithm directly against a value
// stack instead of building an intermediate postfix token stream: whenever
// an operator is popped off the operator stack it is immediately applied to
// the top of the value stack, using the registry's own node factories.
func parseShuntingYard(toks []token.Token, reg *registry.Registry) (ast.Node, error) {
	var values []ast.Node
	var ops []opFrame

	pop := func() ast.Node {
		n := values[len(values)-1]
		values = values[:len(values)-1]
		return n
	}

	apply := func() error {
		top := ops[len(ops)-1]
		ops = ops[:len(ops)-1]
		arity, ok := reg.ArityOf(top.sym)
		if !ok {
			return &perror.ParseError{Code: perror.InvalidTokenSequence, TokenIndex: -1, Lexeme: top.sym}
		}
		if arity == registry.Unary {
			operand := pop()
			node, _ := reg.MakeUnary(top.sym, operand)
			values = append(values, node)
			return nil
		}
		right := pop()
		left := pop()
		node, _ := reg.MakeBinary(top.sym, left, right)
		values = append(values, node)
		return nil
	}

	for _, tok := range toks {
		switch tok.Kind {
		case token.Constant:
			values = append(values, ast.NewConstant(tok.Lexeme == "1"))
		case token.Identifier:
			values = append(values, ast.NewVariable(tok.Lexeme))
		case token.LeftParen:
			ops = append(ops, opFrame{isParen: true})
		case token.RightParen:
			for len(ops) > 0 && !ops[len(ops)-1].isParen {
				if err := apply(); err != nil {
					return nil, err
				}
			}
			if len(ops) == 0 {
				return nil, perror.New(perror.UnmatchedClosingParenthesis, tok.Pos, ")")
			}
			ops = ops[:len(ops)-1]
		case token.Operator:
			o1 := tok.Lexeme
			p1, _ := reg.Precedence(o1)
			leftAssoc1 := !reg.IsRightAssoc(o1)
			for len(ops) > 0 && !ops[len(ops)-1].isParen {
				o2 := ops[len(ops)-1].sym
				p2, _ := reg.Precedence(o2)
				if p2 > p1 || (p2 == p1 && leftAssoc1) {
					if err := apply(); err != nil {
						return nil, err
					}
					continue
				}
				break
			}
			ops = append(ops, opFrame{sym: o1})
		}
	}

	for len(ops) > 0 {
		if ops[len(ops)-1].isParen {
			return nil, perror.New(perror.UnmatchedParentheses, 0, "(")
		}
		if err := apply(); err != nil {
			return nil, err
		}
	}

	if len(values) != 1 {
		return nil, perror.New(perror.InvalidTokenSequence, 0, "")
	}
	return values[0], nil
}
