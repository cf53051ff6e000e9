package rewrite

import (
	"math/rand"
	"testing"

	"github.com/vhaisman/boolexpr/internal/ast"
	"github.com/vhaisman/boolexpr/internal/astgen"
	"github.com/vhaisman/boolexpr/internal/eval"
)

func v(name string) ast.Node { return ast.NewVariable(name) }

// truthTable evaluates n against every assignment over astgen.Vars, for
// brute-force semantic comparison of randomly generated formulas.
func truthTable(t *testing.T, n ast.Node) []bool {
	t.Helper()
	rows := astgen.AllAssignments(len(astgen.Vars))
	out := make([]bool, len(rows))
	for i, row := range rows {
		values := make(map[string]bool, len(astgen.Vars))
		for j, name := range astgen.Vars {
			values[name] = row[j]
		}
		got, err := eval.EvaluateMap(n, values)
		if err != nil {
			t.Fatalf("EvaluateMap(%s): %v", ast.String(n), err)
		}
		out[i] = got
	}
	return out
}

func equivalent(t *testing.T, a, b ast.Node) bool {
	t.Helper()
	ta, tb := truthTable(t, a), truthTable(t, b)
	for i := range ta {
		if ta[i] != tb[i] {
			return false
		}
	}
	return true
}

// randomTrees runs fn against n independently generated random formula
// triples (p, q, r) of bounded depth, drawn from a fixed-seed source so
// failures are reproducible.
func randomTrees(t *testing.T, n int, fn func(t *testing.T, p, q, r ast.Node)) {
	t.Helper()
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < n; i++ {
		p := astgen.Node(rng, 3)
		q := astgen.Node(rng, 3)
		r := astgen.Node(rng, 3)
		fn(t, p, q, r)
	}
}

func TestPropertyCommutativity(t *testing.T) {
	randomTrees(t, 100, func(t *testing.T, p, q, _ ast.Node) {
		for _, op := range []string{"&", "|", "^"} {
			lhs := ast.NewBinary(op, p, q)
			rhs := ast.NewBinary(op, q, p)
			if !equivalent(t, lhs, rhs) {
				t.Errorf("commutativity fails for %s: %s vs %s", op, ast.String(p), ast.String(q))
			}
		}
	})
}

func TestPropertyAssociativity(t *testing.T) {
	randomTrees(t, 100, func(t *testing.T, p, q, r ast.Node) {
		for _, op := range []string{"&", "|", "^"} {
			lhs := ast.NewBinary(op, p, ast.NewBinary(op, q, r))
			rhs := ast.NewBinary(op, ast.NewBinary(op, p, q), r)
			if !equivalent(t, lhs, rhs) {
				t.Errorf("associativity fails for %s: p=%s q=%s r=%s", op, ast.String(p), ast.String(q), ast.String(r))
			}
		}
	})
}

func TestPropertyDistributivity(t *testing.T) {
	randomTrees(t, 100, func(t *testing.T, p, q, r ast.Node) {
		andOverOr := ast.NewBinary("&", p, ast.NewBinary("|", q, r))
		wantAndOverOr := ast.NewBinary("|", ast.NewBinary("&", p, q), ast.NewBinary("&", p, r))
		if !equivalent(t, andOverOr, wantAndOverOr) {
			t.Errorf("distributivity (& over |) fails: p=%s q=%s r=%s", ast.String(p), ast.String(q), ast.String(r))
		}
		orOverAnd := ast.NewBinary("|", p, ast.NewBinary("&", q, r))
		wantOrOverAnd := ast.NewBinary("&", ast.NewBinary("|", p, q), ast.NewBinary("|", p, r))
		if !equivalent(t, orOverAnd, wantOrOverAnd) {
			t.Errorf("distributivity (| over &) fails: p=%s q=%s r=%s", ast.String(p), ast.String(q), ast.String(r))
		}
	})
}

func TestPropertyDeMorgan(t *testing.T) {
	randomTrees(t, 100, func(t *testing.T, p, q, _ ast.Node) {
		lhsAnd := ast.NewUnary("~", ast.NewBinary("&", p, q))
		rhsAnd := ast.NewBinary("|", ast.NewUnary("~", p), ast.NewUnary("~", q))
		if !equivalent(t, lhsAnd, rhsAnd) {
			t.Errorf("De Morgan (&) fails: p=%s q=%s", ast.String(p), ast.String(q))
		}
		lhsOr := ast.NewUnary("~", ast.NewBinary("|", p, q))
		rhsOr := ast.NewBinary("&", ast.NewUnary("~", p), ast.NewUnary("~", q))
		if !equivalent(t, lhsOr, rhsOr) {
			t.Errorf("De Morgan (|) fails: p=%s q=%s", ast.String(p), ast.String(q))
		}
	})
}

func TestPropertyAbsorption(t *testing.T) {
	randomTrees(t, 100, func(t *testing.T, p, q, _ ast.Node) {
		orAbsorb := ast.NewBinary("|", p, ast.NewBinary("&", p, q))
		if !equivalent(t, orAbsorb, p) {
			t.Errorf("absorption (| over &) fails: p=%s q=%s", ast.String(p), ast.String(q))
		}
		andAbsorb := ast.NewBinary("&", p, ast.NewBinary("|", p, q))
		if !equivalent(t, andAbsorb, p) {
			t.Errorf("absorption (& over |) fails: p=%s q=%s", ast.String(p), ast.String(q))
		}
	})
}

func TestPropertyIdempotence(t *testing.T) {
	randomTrees(t, 100, func(t *testing.T, p, _, _ ast.Node) {
		if !equivalent(t, ast.NewBinary("&", p, p), p) {
			t.Errorf("idempotence (&) fails: p=%s", ast.String(p))
		}
		if !equivalent(t, ast.NewBinary("|", p, p), p) {
			t.Errorf("idempotence (|) fails: p=%s", ast.String(p))
		}
		if !equivalent(t, ast.NewBinary("^", p, p), ast.NewConstant(false)) {
			t.Errorf("idempotence (^ self-cancels) fails: p=%s", ast.String(p))
		}
	})
}

func TestPropertyNormalizeIdempotentRandom(t *testing.T) {
	randomTrees(t, 100, func(t *testing.T, p, _, _ ast.Node) {
		once := Canonicalize(Normalize(p))
		twice := Canonicalize(Normalize(Normalize(p)))
		if ast.CanonicalKey(once) != ast.CanonicalKey(twice) {
			t.Errorf("normalize not idempotent for p=%s: once=%s twice=%s", ast.String(p), ast.String(once), ast.String(twice))
		}
		if !equivalent(t, once, p) {
			t.Errorf("normalize changed semantics for p=%s: normalized=%s", ast.String(p), ast.String(once))
		}
	})
}

func TestNormalizeConstantFolding(t *testing.T) {
	tests := []struct {
		name string
		in   ast.Node
		want ast.Node
	}{
		{"not-true", ast.NewUnary("~", ast.NewConstant(true)), ast.NewConstant(false)},
		{"double-negation", ast.NewUnary("~", ast.NewUnary("~", v("A"))), v("A")},
		{"and-false-annihilates", ast.NewBinary("&", v("A"), ast.NewConstant(false)), ast.NewConstant(false)},
		{"and-true-identity", ast.NewBinary("&", v("A"), ast.NewConstant(true)), v("A")},
		{"or-true-annihilates", ast.NewBinary("|", v("A"), ast.NewConstant(true)), ast.NewConstant(true)},
		{"or-false-identity", ast.NewBinary("|", v("A"), ast.NewConstant(false)), v("A")},
		{"implies-false-antecedent", ast.NewBinary("=>", ast.NewConstant(false), v("A")), ast.NewConstant(true)},
		{"implies-true-consequent", ast.NewBinary("=>", v("A"), ast.NewConstant(true)), ast.NewConstant(true)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(tt.in)
			if !ast.Equal(got, tt.want) {
				t.Errorf("Normalize(%s) = %s, want %s", ast.String(tt.in), ast.String(got), ast.String(tt.want))
			}
		})
	}
}

func TestNormalizeDeMorgan(t *testing.T) {
	in := ast.NewUnary("~", ast.NewBinary("&", v("A"), v("B")))
	want := ast.NewBinary("|", ast.NewUnary("~", v("A")), ast.NewUnary("~", v("B")))
	got := Normalize(in)
	if !ast.Equal(got, want) {
		t.Errorf("Normalize(~(A&B)) = %s, want %s", ast.String(got), ast.String(want))
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	in := ast.NewBinary("<=>", ast.NewBinary("|", ast.NewBinary("&", v("A"), v("B")), ast.NewUnary("~", ast.NewBinary("=>", v("C"), ast.NewConstant(true)))), v("D"))
	once := Normalize(in)
	twice := Normalize(once)
	if !ast.Equal(once, twice) {
		t.Errorf("Normalize not idempotent: once=%s twice=%s", ast.String(once), ast.String(twice))
	}
}

func TestCanonicalizeCommutative(t *testing.T) {
	left := ast.NewBinary("&", v("B"), v("A"))
	right := ast.NewBinary("&", v("A"), v("B"))
	cl := Canonicalize(left)
	cr := Canonicalize(right)
	if ast.CanonicalKey(cl) != ast.CanonicalKey(cr) {
		t.Errorf("Canonicalize(B&A) != Canonicalize(A&B): %s vs %s", ast.CanonicalKey(cl), ast.CanonicalKey(cr))
	}
}

func TestCanonicalizeXorCancels(t *testing.T) {
	// A ^ A ^ B should canonicalize to just B.
	in := ast.NewBinary("^", ast.NewBinary("^", v("A"), v("A")), v("B"))
	got := Canonicalize(in)
	want := v("B")
	if !ast.Equal(got, want) {
		t.Errorf("Canonicalize(A^A^B) = %s, want %s", ast.String(got), ast.String(want))
	}
}

func TestCanonicalizeFlattenDedup(t *testing.T) {
	in := ast.NewBinary("|", ast.NewBinary("|", v("A"), v("A")), v("B"))
	got := Canonicalize(in)
	// Dedup keeps A once, so result has exactly two distinct leaves: A, B.
	if len(ast.Vars(got)) != 2 {
		t.Errorf("Canonicalize(A|A|B) leaves %d distinct vars, want 2", len(ast.Vars(got)))
	}
}

func TestExpandDeMorgan(t *testing.T) {
	in := ast.NewUnary("~", ast.NewBinary("|", v("A"), v("B")))
	want := ast.NewBinary("&", ast.NewUnary("~", v("A")), ast.NewUnary("~", v("B")))
	got := Expand(in)
	if !ast.Equal(got, want) {
		t.Errorf("Expand(~(A|B)) = %s, want %s", ast.String(got), ast.String(want))
	}
}

func TestExpandDistributes(t *testing.T) {
	in := ast.NewBinary("&", v("A"), ast.NewBinary("|", v("B"), v("C")))
	want := ast.NewBinary("|", ast.NewBinary("&", v("A"), v("B")), ast.NewBinary("&", v("A"), v("C")))
	got := Expand(in)
	if !ast.Equal(got, want) {
		t.Errorf("Expand(A&(B|C)) = %s, want %s", ast.String(got), ast.String(want))
	}
}

func TestVariableIndexAssignsPositions(t *testing.T) {
	in := ast.NewBinary("&", v("B"), v("A"))
	got, err := VariableIndex(in, []string{"A", "B"})
	if err != nil {
		t.Fatalf("VariableIndex: unexpected error: %v", err)
	}
	bin := got.(ast.Binary)
	if bin.Left.(ast.Variable).Index != 1 {
		t.Errorf("expected B to have index 1, got %d", bin.Left.(ast.Variable).Index)
	}
	if bin.Right.(ast.Variable).Index != 0 {
		t.Errorf("expected A to have index 0, got %d", bin.Right.(ast.Variable).Index)
	}
}

func TestVariableIndexMissingVariable(t *testing.T) {
	in := v("Z")
	if _, err := VariableIndex(in, []string{"A", "B"}); err == nil {
		t.Errorf("expected error for missing variable, got nil")
	}
}
