package bdd

import (
	"fmt"

	"github.com/vhaisman/boolexpr/internal/ast"
)

// Build compiles an AST, whose variables must already carry an assigned
// Index (see internal/rewrite.VariableIndex), into a BDD node under m.
// Two ASTs built against the same manager and the same variable-index map
// are equivalent exactly when Build returns the identical Ref for both.
func Build(m *Manager, n ast.Node) (Ref, error) {
	switch t := n.(type) {
	case ast.Constant:
		return boolToRef(t.Value), nil
	case ast.Variable:
		if t.Index < 0 || t.Index >= m.varnum {
			return False, fmt.Errorf("bdd: variable %q has index %d out of range [0,%d)", t.Name, t.Index, m.varnum)
		}
		return m.Ithvar(t.Index), nil
	case ast.Unary:
		operand, err := Build(m, t.Operand)
		if err != nil {
			return False, err
		}
		if t.Op != "~" {
			return False, fmt.Errorf("bdd: unsupported unary operator %q", t.Op)
		}
		return m.Not(operand), nil
	case ast.Binary:
		left, err := Build(m, t.Left)
		if err != nil {
			return False, err
		}
		right, err := Build(m, t.Right)
		if err != nil {
			return False, err
		}
		switch t.Op {
		case "&":
			return m.And(left, right), nil
		case "|":
			return m.Or(left, right), nil
		case "^":
			return m.Xor(left, right), nil
		case "=>":
			return m.Imply(left, right), nil
		case "<=>":
			return m.Not(m.Xor(left, right)), nil
		case "!&":
			return m.Not(m.And(left, right)), nil
		case "!|":
			return m.Not(m.Or(left, right)), nil
		default:
			return False, fmt.Errorf("bdd: unsupported binary operator %q", t.Op)
		}
	default:
		return False, fmt.Errorf("bdd: unsupported node type %T", n)
	}
}
