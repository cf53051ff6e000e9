package eval

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/vhaisman/boolexpr/internal/ast"
	"github.com/vhaisman/boolexpr/internal/astgen"
	"github.com/vhaisman/boolexpr/internal/rewrite"
)

func indexedAndOr() ast.Node {
	a := ast.Variable{Name: "A", Index: 0}
	b := ast.Variable{Name: "B", Index: 1}
	c := ast.Variable{Name: "C", Index: 2}
	// (A & B) | ~C
	return ast.NewBinary("|", ast.NewBinary("&", a, b), ast.NewUnary("~", c))
}

func TestEvaluateTruthTable(t *testing.T) {
	n := indexedAndOr()
	tests := []struct {
		input []bool
		want  bool
	}{
		{[]bool{true, true, true}, true},
		{[]bool{true, false, true}, false},
		{[]bool{false, false, false}, true},
		{[]bool{false, false, true}, false},
	}
	for _, tt := range tests {
		got, err := Evaluate(n, tt.input)
		if err != nil {
			t.Fatalf("Evaluate(%v): unexpected error: %v", tt.input, err)
		}
		if got != tt.want {
			t.Errorf("Evaluate(%v) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestEvaluateLengthMismatch(t *testing.T) {
	n := indexedAndOr()
	_, err := Evaluate(n, []bool{true})
	if !errors.Is(err, ErrLengthMismatch) {
		t.Errorf("expected ErrLengthMismatch, got %v", err)
	}
}

func TestEvaluateMapMissingVariable(t *testing.T) {
	n := ast.NewVariable("Z")
	_, err := EvaluateMap(n, map[string]bool{"A": true})
	if !errors.Is(err, ErrMissingVariable) {
		t.Errorf("expected ErrMissingVariable, got %v", err)
	}
}

func TestCompiledMatchesTreeWalk(t *testing.T) {
	n := indexedAndOr()
	for _, shortCircuit := range []bool{true, false} {
		fn := Compile(n, shortCircuit)
		for _, input := range [][]bool{
			{true, true, true},
			{true, false, true},
			{false, false, false},
			{false, false, true},
			{false, true, false},
		} {
			want, err := Evaluate(n, input)
			if err != nil {
				t.Fatalf("Evaluate: %v", err)
			}
			if got := fn(input); got != want {
				t.Errorf("shortCircuit=%v Compile(%v) = %v, want %v (tree-walk)", shortCircuit, input, got, want)
			}
		}
	}
}

// TestPropertyCompiledMatchesTreeWalkRandom drives spec property 10
// ("evaluate(tree-walk, x) = evaluate(compiled, x) for every input x")
// against a batch of depth-bounded random formulas rather than one fixed
// example, over every assignment of the fixed variable pool.
func TestPropertyCompiledMatchesTreeWalkRandom(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	assignments := astgen.AllAssignments(len(astgen.Vars))
	for i := 0; i < 100; i++ {
		raw := astgen.Node(rng, 4)
		indexed, err := rewrite.VariableIndex(raw, astgen.Vars)
		if err != nil {
			t.Fatalf("VariableIndex: %v", err)
		}
		for _, shortCircuit := range []bool{true, false} {
			fn := Compile(indexed, shortCircuit)
			for _, input := range assignments {
				want, err := Evaluate(indexed, input)
				if err != nil {
					t.Fatalf("Evaluate(%s, %v): %v", ast.String(indexed), input, err)
				}
				if got := fn(input); got != want {
					t.Errorf("shortCircuit=%v Compile(%s)(%v) = %v, want %v", shortCircuit, ast.String(indexed), input, got, want)
				}
			}
		}
	}
}

func TestDelegateCacheReusesCompilation(t *testing.T) {
	cache, err := NewDelegateCache(4)
	if err != nil {
		t.Fatalf("NewDelegateCache: %v", err)
	}
	n := indexedAndOr()
	order := []string{"A", "B", "C"}

	f1 := cache.GetOrCompile(true, n, order)
	f2 := cache.GetOrCompile(true, n, order)
	if cache.Len() != 1 {
		t.Errorf("expected one cached delegate, got %d", cache.Len())
	}
	input := []bool{true, false, true}
	if f1(input) != f2(input) {
		t.Errorf("cached delegates disagree on the same input")
	}

	other := cache.GetOrCompile(false, n, order)
	if cache.Len() != 2 {
		t.Errorf("expected a distinct entry for a different short-circuit flag, got len %d", cache.Len())
	}
	if other(input) != f1(input) {
		t.Errorf("short-circuit and eager compilations should differ only in evaluation strategy, not in results")
	}
}
