package ast

import "strings"

// precedence mirrors the operator registry's default table just closely
// enough to decide when String needs parentheses. It is not the registry
// itself: ast has no dependency on registry, by design, so a tree built by
// hand (outside any parser) still prints sensibly.
var precedence = map[string]int{
	"~":   5,
	"&":   4,
	"!&":  4,
	"^":   3,
	"|":   2,
	"!|":  2,
	"=>":  1,
	"<=>": 0,
}

// String renders n using canonical operator symbols and the minimum
// parenthesization needed to round-trip through a precedence-aware parser.
func String(n Node) string {
	var b strings.Builder
	writeNode(&b, n, -1)
	return b.String()
}

func writeNode(b *strings.Builder, n Node, parentPrec int) {
	switch t := n.(type) {
	case Constant:
		if t.Value {
			b.WriteByte('1')
		} else {
			b.WriteByte('0')
		}
	case Variable:
		b.WriteString(t.Name)
	case Unary:
		b.WriteString(t.Op)
		writeNode(b, t.Operand, precedence[t.Op])
	case Binary:
		prec := precedence[t.Op]
		needParen := prec < parentPrec
		if needParen {
			b.WriteByte('(')
		}
		writeNode(b, t.Left, prec)
		b.WriteByte(' ')
		b.WriteString(t.Op)
		b.WriteByte(' ')
		writeNode(b, t.Right, prec+1)
		if needParen {
			b.WriteByte(')')
		}
	}
}

// CanonicalKey serializes n deterministically without reordering operands;
// it is the building block rewrite.Canonicalize hashes to sort and
// deduplicate commutative operand lists, and the building block the
// compiled-evaluator cache hashes together with the variable order.
func CanonicalKey(n Node) string {
	var b strings.Builder
	writeCanonical(&b, n)
	return b.String()
}

func writeCanonical(b *strings.Builder, n Node) {
	switch t := n.(type) {
	case Constant:
		if t.Value {
			b.WriteByte('1')
		} else {
			b.WriteByte('0')
		}
	case Variable:
		b.WriteByte('V')
		b.WriteString(t.Name)
	case Unary:
		b.WriteByte('(')
		b.WriteString(t.Op)
		writeCanonical(b, t.Operand)
		b.WriteByte(')')
	case Binary:
		b.WriteByte('(')
		b.WriteString(t.Op)
		writeCanonical(b, t.Left)
		b.WriteByte(',')
		writeCanonical(b, t.Right)
		b.WriteByte(')')
	}
}
