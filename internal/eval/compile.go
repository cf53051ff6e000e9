package eval

import "github.com/vhaisman/boolexpr/internal/ast"

// Compiled is a closure tree translated once from an AST; re-evaluating it
// against many input vectors skips the type-switch dispatch Evaluate pays
// on every call.
type Compiled func(input []bool) bool

// Compile translates n into a Compiled function. When shortCircuit is
// true, "&" and "|" use Go's native short-circuiting && and ||; when
// false, both operands are always evaluated first (useful when a caller
// wants side-effect-free operand evaluation to run uniformly, or wants
// worst-case timing independent of the input). Compile does not check
// operator symbols: every Unary compiles to negation, and a Binary whose
// symbol is not one of the seven canonical operators compiles to a
// function that returns false.
func Compile(n ast.Node, shortCircuit bool) Compiled {
	switch t := n.(type) {
	case ast.Constant:
		v := t.Value
		return func([]bool) bool { return v }
	case ast.Variable:
		idx := t.Index
		return func(input []bool) bool { return input[idx] }
	case ast.Unary:
		operand := Compile(t.Operand, shortCircuit)
		return func(input []bool) bool { return !operand(input) }
	case ast.Binary:
		return compileBinary(t, shortCircuit)
	default:
		return func([]bool) bool { return false }
	}
}

func compileBinary(b ast.Binary, shortCircuit bool) Compiled {
	left := Compile(b.Left, shortCircuit)
	right := Compile(b.Right, shortCircuit)
	switch b.Op {
	case "&":
		if shortCircuit {
			return func(input []bool) bool { return left(input) && right(input) }
		}
		return func(input []bool) bool {
			l, r := left(input), right(input)
			return l && r
		}
	case "|":
		if shortCircuit {
			return func(input []bool) bool { return left(input) || right(input) }
		}
		return func(input []bool) bool {
			l, r := left(input), right(input)
			return l || r
		}
	case "^":
		return func(input []bool) bool { return left(input) != right(input) }
	case "=>":
		if shortCircuit {
			return func(input []bool) bool { return !left(input) || right(input) }
		}
		return func(input []bool) bool {
			l, r := left(input), right(input)
			return !l || r
		}
	case "<=>":
		return func(input []bool) bool {
			l, r := left(input), right(input)
			return (!l && !r) || (l && r)
		}
	case "!&":
		if shortCircuit {
			return func(input []bool) bool { return !(left(input) && right(input)) }
		}
		return func(input []bool) bool {
			l, r := left(input), right(input)
			return !(l && r)
		}
	case "!|":
		if shortCircuit {
			return func(input []bool) bool { return !(left(input) || right(input)) }
		}
		return func(input []bool) bool {
			l, r := left(input), right(input)
			return !(l || r)
		}
	default:
		return func([]bool) bool { return false }
	}
}
