package convert

import (
	"testing"

	"github.com/vhaisman/boolexpr/bdd"
	"github.com/vhaisman/boolexpr/internal/ast"
	"github.com/vhaisman/boolexpr/internal/rewrite"
)

func TestToASTRoundTrip(t *testing.T) {
	names := []string{"A", "B"}
	m := bdd.NewManager(len(names))

	in := ast.NewBinary("|", ast.Variable{Name: "A", Index: 0}, ast.Variable{Name: "B", Index: 1})
	root, err := bdd.Build(m, in)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	out := ToAST(m, root, names)

	// Re-build the converted AST and confirm it yields the identical BDD
	// node, which is the equivalence contract the specification defines.
	root2, err := bdd.Build(m, out)
	if err != nil {
		t.Fatalf("Build(converted): %v", err)
	}
	if root2 != root {
		t.Errorf("ToAST result is not equivalent to the original BDD: got %s", ast.String(out))
	}
}

func TestToASTConstants(t *testing.T) {
	m := bdd.NewManager(1)
	if got := ToAST(m, bdd.True, []string{"A"}); !ast.Equal(got, ast.NewConstant(true)) {
		t.Errorf("ToAST(True) = %s, want true", ast.String(got))
	}
	if got := ToAST(m, bdd.False, []string{"A"}); !ast.Equal(got, ast.NewConstant(false)) {
		t.Errorf("ToAST(False) = %s, want false", ast.String(got))
	}
}

func TestToASTIsNormalized(t *testing.T) {
	names := []string{"A"}
	m := bdd.NewManager(1)
	root, _ := bdd.Build(m, ast.Variable{Name: "A", Index: 0})
	out := ToAST(m, root, names)
	if !ast.Equal(out, rewrite.Normalize(out)) {
		t.Errorf("ToAST result was not already normalized: %s", ast.String(out))
	}
}
