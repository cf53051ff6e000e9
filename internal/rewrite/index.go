package rewrite

import (
	"fmt"

	"github.com/vhaisman/boolexpr/internal/ast"
)

// VariableIndex rewrites every Variable node to carry its zero-based offset
// into vars, the order an evaluator expects its input vector in. It returns
// an error naming the first variable encountered that has no entry in vars.
func VariableIndex(n ast.Node, vars []string) (ast.Node, error) {
	pos := make(map[string]int, len(vars))
	for i, v := range vars {
		pos[v] = i
	}
	return variableIndex(n, pos)
}

func variableIndex(n ast.Node, pos map[string]int) (ast.Node, error) {
	switch t := n.(type) {
	case ast.Constant:
		return t, nil
	case ast.Variable:
		idx, ok := pos[t.Name]
		if !ok {
			return nil, fmt.Errorf("rewrite: variable %q not found in variable order", t.Name)
		}
		return ast.Variable{Name: t.Name, Index: idx}, nil
	case ast.Unary:
		operand, err := variableIndex(t.Operand, pos)
		if err != nil {
			return nil, err
		}
		return ast.Unary{Op: t.Op, Operand: operand}, nil
	case ast.Binary:
		left, err := variableIndex(t.Left, pos)
		if err != nil {
			return nil, err
		}
		right, err := variableIndex(t.Right, pos)
		if err != nil {
			return nil, err
		}
		return ast.Binary{Op: t.Op, Left: left, Right: right}, nil
	default:
		return n, nil
	}
}
