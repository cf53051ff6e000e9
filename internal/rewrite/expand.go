package rewrite

import "github.com/vhaisman/boolexpr/internal/ast"

// Expand applies De Morgan to negated binary children and distributes "&"
// over "|" (in either operand position), bottom-up. Expression.ToDNF and
// Expression.ToCNF apply it to the AST converted back from the BDD, so
// their expansion starts from the BDD-derived cover rather than from the
// caller's own tree.
func Expand(n ast.Node) ast.Node {
	switch t := n.(type) {
	case ast.Unary:
		operand := Expand(t.Operand)
		if t.Op != "~" {
			return ast.Unary{Op: t.Op, Operand: operand}
		}
		if bin, ok := operand.(ast.Binary); ok {
			switch bin.Op {
			case "&":
				return Expand(ast.Binary{Op: "|", Left: ast.Unary{Op: "~", Operand: bin.Left}, Right: ast.Unary{Op: "~", Operand: bin.Right}})
			case "|":
				return Expand(ast.Binary{Op: "&", Left: ast.Unary{Op: "~", Operand: bin.Left}, Right: ast.Unary{Op: "~", Operand: bin.Right}})
			}
		}
		return ast.Unary{Op: t.Op, Operand: operand}
	case ast.Binary:
		left := Expand(t.Left)
		right := Expand(t.Right)
		if t.Op == "&" {
			if rb, ok := right.(ast.Binary); ok && rb.Op == "|" {
				return Expand(ast.Binary{Op: "|",
					Left:  ast.Binary{Op: "&", Left: left, Right: rb.Left},
					Right: ast.Binary{Op: "&", Left: left, Right: rb.Right}})
			}
			if lb, ok := left.(ast.Binary); ok && lb.Op == "|" {
				return Expand(ast.Binary{Op: "|",
					Left:  ast.Binary{Op: "&", Left: lb.Left, Right: right},
					Right: ast.Binary{Op: "&", Left: lb.Right, Right: right}})
			}
		}
		return ast.Binary{Op: t.Op, Left: left, Right: right}
	default:
		return n
	}
}
