// Package eval evaluates a boolean-expression AST against a concrete input
// assignment, either by directly walking the tree or by compiling it once
// into a closure tree that can be re-evaluated cheaply against many inputs.
package eval

import (
	"errors"
	"fmt"

	"github.com/vhaisman/boolexpr/internal/ast"
)

// ErrLengthMismatch is returned when an input vector's length does not
// match the number of variables the AST was indexed against.
var ErrLengthMismatch = errors.New("eval: input length does not match variable count")

// ErrMissingVariable is returned when a name-keyed input map is missing an
// entry for a variable the AST references.
var ErrMissingVariable = errors.New("eval: missing variable in input map")

// Evaluate walks n directly, reading each Variable's truth value from
// input[Index]. It is the fallback path and the only path usable for
// read-only, indexable-but-not-copyable inputs.
func Evaluate(n ast.Node, input []bool) (bool, error) {
	switch t := n.(type) {
	case ast.Constant:
		return t.Value, nil
	case ast.Variable:
		if t.Index < 0 || t.Index >= len(input) {
			return false, fmt.Errorf("%w: variable %q has index %d, input has length %d", ErrLengthMismatch, t.Name, t.Index, len(input))
		}
		return input[t.Index], nil
	case ast.Unary:
		if t.Op != "~" {
			return false, fmt.Errorf("eval: unsupported unary operator %q", t.Op)
		}
		v, err := Evaluate(t.Operand, input)
		if err != nil {
			return false, err
		}
		return !v, nil
	case ast.Binary:
		l, err := Evaluate(t.Left, input)
		if err != nil {
			return false, err
		}
		r, err := Evaluate(t.Right, input)
		if err != nil {
			return false, err
		}
		return combine(t.Op, l, r)
	default:
		return false, fmt.Errorf("eval: unsupported node type %T", n)
	}
}

// EvaluateMap walks n directly, reading each Variable's truth value by name
// from values.
func EvaluateMap(n ast.Node, values map[string]bool) (bool, error) {
	switch t := n.(type) {
	case ast.Constant:
		return t.Value, nil
	case ast.Variable:
		v, ok := values[t.Name]
		if !ok {
			return false, fmt.Errorf("%w: %q", ErrMissingVariable, t.Name)
		}
		return v, nil
	case ast.Unary:
		if t.Op != "~" {
			return false, fmt.Errorf("eval: unsupported unary operator %q", t.Op)
		}
		v, err := EvaluateMap(t.Operand, values)
		if err != nil {
			return false, err
		}
		return !v, nil
	case ast.Binary:
		l, err := EvaluateMap(t.Left, values)
		if err != nil {
			return false, err
		}
		r, err := EvaluateMap(t.Right, values)
		if err != nil {
			return false, err
		}
		return combine(t.Op, l, r)
	default:
		return false, fmt.Errorf("eval: unsupported node type %T", n)
	}
}

func combine(op string, a, b bool) (bool, error) {
	switch op {
	case "&":
		return a && b, nil
	case "|":
		return a || b, nil
	case "^":
		return a != b, nil
	case "=>":
		return !a || b, nil
	case "<=>":
		return a == b, nil
	case "!&":
		return !(a && b), nil
	case "!|":
		return !(a || b), nil
	default:
		return false, fmt.Errorf("eval: unsupported binary operator %q", op)
	}
}
