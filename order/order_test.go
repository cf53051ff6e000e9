package order

import (
	"reflect"
	"sort"
	"testing"

	"github.com/vhaisman/boolexpr/internal/ast"
)

func vars(names ...string) []string { return names }

func TestAlphabeticalSorts(t *testing.T) {
	got, err := Alphabetical{}.Order(ast.NewConstant(true), vars("C", "A", "B"))
	if err != nil {
		t.Fatalf("Order: %v", err)
	}
	if !reflect.DeepEqual(got, []string{"A", "B", "C"}) {
		t.Errorf("Alphabetical order = %v, want [A B C]", got)
	}
}

func TestFrequencyOrdersByOccurrence(t *testing.T) {
	// A appears three times, B once, C zero times.
	a := ast.NewVariable("A")
	root := ast.NewBinary("&", ast.NewBinary("&", a, a), ast.NewBinary("|", a, ast.NewVariable("B")))
	got, err := Frequency{}.Order(root, vars("C", "B", "A"))
	if err != nil {
		t.Fatalf("Order: %v", err)
	}
	if !reflect.DeepEqual(got, []string{"A", "B", "C"}) {
		t.Errorf("Frequency order = %v, want [A B C]", got)
	}
}

func TestRandomIsDeterministicForSeed(t *testing.T) {
	current := vars("A", "B", "C", "D", "E")
	r := Random{Seed: 42}
	first, err := r.Order(ast.NewConstant(true), current)
	if err != nil {
		t.Fatalf("Order: %v", err)
	}
	second, err := r.Order(ast.NewConstant(true), current)
	if err != nil {
		t.Fatalf("Order: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Errorf("Random with fixed seed produced different orders: %v vs %v", first, second)
	}
}

func TestRandomIsAPermutation(t *testing.T) {
	current := vars("A", "B", "C", "D")
	got, err := (Random{Seed: 7}).Order(ast.NewConstant(true), current)
	if err != nil {
		t.Fatalf("Order: %v", err)
	}
	sortedGot := append([]string(nil), got...)
	sort.Strings(sortedGot)
	sortedWant := append([]string(nil), current...)
	sort.Strings(sortedWant)
	if !reflect.DeepEqual(sortedGot, sortedWant) {
		t.Errorf("Random order is not a permutation of the input: %v", got)
	}
}

func TestSiftingReturnsPermutation(t *testing.T) {
	a, b, c, d := ast.NewVariable("A"), ast.NewVariable("B"), ast.NewVariable("C"), ast.NewVariable("D")
	root := ast.NewBinary("|", ast.NewBinary("&", a, b), ast.NewBinary("&", c, d))
	current := vars("A", "B", "C", "D")

	got, err := Sifting{}.Order(root, current)
	if err != nil {
		t.Fatalf("Order: %v", err)
	}
	sortedGot := append([]string(nil), got...)
	sort.Strings(sortedGot)
	if !reflect.DeepEqual(sortedGot, []string{"A", "B", "C", "D"}) {
		t.Errorf("Sifting order is not a permutation: %v", got)
	}
}

func TestAutoReturnsPermutation(t *testing.T) {
	a, b, c := ast.NewVariable("A"), ast.NewVariable("B"), ast.NewVariable("C")
	root := ast.NewBinary("|", ast.NewBinary("&", a, b), c)
	current := vars("A", "B", "C")

	got, err := (Auto{RandomSeed: 1}).Order(root, current)
	if err != nil {
		t.Fatalf("Order: %v", err)
	}
	sortedGot := append([]string(nil), got...)
	sort.Strings(sortedGot)
	if !reflect.DeepEqual(sortedGot, []string{"A", "B", "C"}) {
		t.Errorf("Auto order is not a permutation: %v", got)
	}
}

func TestCompositeChains(t *testing.T) {
	current := vars("C", "A", "B")
	composite := Composite{Strategies: []Strategy{Alphabetical{}}}
	got, err := composite.Order(ast.NewConstant(true), current)
	if err != nil {
		t.Fatalf("Order: %v", err)
	}
	if !reflect.DeepEqual(got, []string{"A", "B", "C"}) {
		t.Errorf("Composite order = %v, want [A B C]", got)
	}
}
