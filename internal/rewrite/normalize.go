// Package rewrite implements the four AST rewriters named in the
// specification: the normalizer, the canonicalizer, the expander and the
// variable indexer. Each is a pure function from one immutable tree to
// another, written as a bottom-up recursion with a type switch over the
// four ast variants rather than an open visitor registry.
package rewrite

import "github.com/vhaisman/boolexpr/internal/ast"

// Normalize applies constant folding, double-negation elimination, De
// Morgan push-down and the identity/annihilator laws, bottom-up. It is
// idempotent: Normalize(Normalize(n)) is structurally equal to Normalize(n).
func Normalize(n ast.Node) ast.Node {
	switch t := n.(type) {
	case ast.Constant:
		return t
	case ast.Variable:
		return t
	case ast.Unary:
		return normalizeUnary(ast.Unary{Op: t.Op, Operand: Normalize(t.Operand)})
	case ast.Binary:
		return normalizeBinary(ast.Binary{Op: t.Op, Left: Normalize(t.Left), Right: Normalize(t.Right)})
	default:
		return n
	}
}

func normalizeUnary(u ast.Unary) ast.Node {
	if u.Op != "~" {
		return u
	}
	// Constant folding.
	if c, ok := u.Operand.(ast.Constant); ok {
		return ast.Constant{Value: !c.Value}
	}
	// Double-negation elimination: ~~x -> x.
	if inner, ok := u.Operand.(ast.Unary); ok && inner.Op == "~" {
		return inner.Operand
	}
	// De Morgan push-down: ~(a & b) -> ~a | ~b, ~(a | b) -> ~a & ~b.
	if bin, ok := u.Operand.(ast.Binary); ok {
		switch bin.Op {
		case "&":
			return Normalize(ast.Binary{Op: "|", Left: ast.Unary{Op: "~", Operand: bin.Left}, Right: ast.Unary{Op: "~", Operand: bin.Right}})
		case "|":
			return Normalize(ast.Binary{Op: "&", Left: ast.Unary{Op: "~", Operand: bin.Left}, Right: ast.Unary{Op: "~", Operand: bin.Right}})
		}
	}
	return u
}

func normalizeBinary(b ast.Binary) ast.Node {
	lc, lok := b.Left.(ast.Constant)
	rc, rok := b.Right.(ast.Constant)
	switch b.Op {
	case "&":
		if lok && rok {
			return ast.Constant{Value: lc.Value && rc.Value}
		}
		if lok {
			if !lc.Value {
				return ast.Constant{Value: false}
			}
			return b.Right
		}
		if rok {
			if !rc.Value {
				return ast.Constant{Value: false}
			}
			return b.Left
		}
	case "|":
		if lok && rok {
			return ast.Constant{Value: lc.Value || rc.Value}
		}
		if lok {
			if lc.Value {
				return ast.Constant{Value: true}
			}
			return b.Right
		}
		if rok {
			if rc.Value {
				return ast.Constant{Value: true}
			}
			return b.Left
		}
	case "^":
		if lok && rok {
			return ast.Constant{Value: lc.Value != rc.Value}
		}
	case "=>":
		if lok && rok {
			return ast.Constant{Value: !lc.Value || rc.Value}
		}
		if lok && !lc.Value {
			return ast.Constant{Value: true}
		}
		if rok && rc.Value {
			return ast.Constant{Value: true}
		}
	case "<=>":
		if lok && rok {
			return ast.Constant{Value: lc.Value == rc.Value}
		}
	case "!&":
		if lok && rok {
			return ast.Constant{Value: !(lc.Value && rc.Value)}
		}
	case "!|":
		if lok && rok {
			return ast.Constant{Value: !(lc.Value || rc.Value)}
		}
	}
	return b
}
