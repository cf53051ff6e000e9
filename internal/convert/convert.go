// Package convert turns a BDD node back into a boolean-expression AST by
// Shannon expansion: a non-terminal (v, low, high) becomes
// (v & C(high)) | (~v & C(low)), memoized so shared BDD structure is
// converted once no matter how many parents reach it.
package convert

import (
	"github.com/vhaisman/boolexpr/bdd"
	"github.com/vhaisman/boolexpr/internal/ast"
	"github.com/vhaisman/boolexpr/internal/rewrite"
)

// ToAST converts r, a node owned by m, into a normalized AST. names must be
// indexed the same way the variables were when r was built: names[i] is the
// name to give the variable at index i.
func ToAST(m *bdd.Manager, r bdd.Ref, names []string) ast.Node {
	memo := map[bdd.Ref]ast.Node{}
	result := walk(m, r, names, memo)
	return rewrite.Normalize(result)
}

func walk(m *bdd.Manager, r bdd.Ref, names []string, memo map[bdd.Ref]ast.Node) ast.Node {
	if r == bdd.False {
		return ast.NewConstant(false)
	}
	if r == bdd.True {
		return ast.NewConstant(true)
	}
	if n, ok := memo[r]; ok {
		return n
	}
	level := m.Level(r)
	v := m.VariableAt(level)
	varNode := ast.Variable{Name: names[v], Index: v}

	lowAST := walk(m, m.Low(r), names, memo)
	highAST := walk(m, m.High(r), names, memo)

	highTerm := andSimplify(varNode, highAST)
	lowTerm := andSimplify(ast.Unary{Op: "~", Operand: varNode}, lowAST)
	combined := orSimplify(highTerm, lowTerm)
	if combined == nil {
		combined = ast.NewConstant(false)
	}
	memo[r] = combined
	return combined
}

// andSimplify implements "v & 1 -> v" / "~v & 1 -> ~v" and "v & 0 -> drop
// term" / "~v & 0 -> drop term", returning nil for a dropped term.
func andSimplify(literal ast.Node, factor ast.Node) ast.Node {
	if c, ok := factor.(ast.Constant); ok {
		if c.Value {
			return literal
		}
		return nil
	}
	return ast.Binary{Op: "&", Left: literal, Right: factor}
}

// orSimplify implements "a | dropped-term -> a", treating a nil operand as
// the dropped false term.
func orSimplify(a, b ast.Node) ast.Node {
	if a == nil {
		return b
	}
	if b == nil {
		return a
	}
	return ast.Binary{Op: "|", Left: a, Right: b}
}
