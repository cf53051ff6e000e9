package boolexpr

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/vhaisman/boolexpr/internal/astgen"
)

func TestParseAndEvaluate(t *testing.T) {
	e, err := Parse("(A & B) | !C")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	vars := e.Variables()
	if len(vars) != 3 {
		t.Fatalf("expected 3 variables, got %v", vars)
	}

	values := map[string]bool{"A": true, "B": true, "C": true}
	got, err := e.EvaluateMap(values)
	if err != nil {
		t.Fatalf("EvaluateMap: %v", err)
	}
	if !got {
		t.Errorf("(A&B)|!C with A=B=C=true should be true")
	}
}

func TestSeedScenario(t *testing.T) {
	e, err := Parse("((A & B) | !(C => true)) <=> D")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	// C => true is a tautology, so !(C=>true) is always false, and the
	// left side reduces to (A & B). Confirm via direct evaluation matching
	// (A&B) <=> D on a handful of assignments.
	tests := []struct {
		a, b, c, d bool
	}{
		{true, true, false, true},
		{true, true, true, false},
		{false, true, true, true},
		{false, false, false, false},
	}
	for _, tt := range tests {
		got, err := e.EvaluateMap(map[string]bool{"A": tt.a, "B": tt.b, "C": tt.c, "D": tt.d})
		if err != nil {
			t.Fatalf("EvaluateMap: %v", err)
		}
		want := (tt.a && tt.b) == tt.d
		if got != want {
			t.Errorf("assignment %+v: got %v want %v", tt, got, want)
		}
	}
}

func TestTautologyAndContradiction(t *testing.T) {
	taut, err := Parse("A | ~A")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	ok, err := taut.IsTautology()
	if err != nil {
		t.Fatalf("IsTautology: %v", err)
	}
	if !ok {
		t.Errorf("A | ~A should be a tautology")
	}

	contra, err := Parse("A & ~A")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	ok, err = contra.IsContradiction()
	if err != nil {
		t.Fatalf("IsContradiction: %v", err)
	}
	if !ok {
		t.Errorf("A & ~A should be a contradiction")
	}
}

func TestEquivalentTo(t *testing.T) {
	a, err := Parse("A & B")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	b, err := Parse("B & A")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	eq, err := a.EquivalentTo(b)
	if err != nil {
		t.Fatalf("EquivalentTo: %v", err)
	}
	if !eq {
		t.Errorf("A&B should be equivalent to B&A")
	}

	c, err := Parse("A | B")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	eq, err = a.EquivalentTo(c)
	if err != nil {
		t.Fatalf("EquivalentTo: %v", err)
	}
	if eq {
		t.Errorf("A&B should not be equivalent to A|B")
	}
}

func TestMinimizeIdempotent(t *testing.T) {
	e, err := Parse("(A & B) | (A & ~B)")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	once, err := e.Minimize()
	if err != nil {
		t.Fatalf("Minimize: %v", err)
	}
	twice, err := once.Minimize()
	if err != nil {
		t.Fatalf("Minimize (again): %v", err)
	}
	if !once.StructuralEquals(twice) {
		t.Errorf("Minimize is not idempotent: once=%s twice=%s", once, twice)
	}
	// (A&B)|(A&~B) simplifies to A.
	eqA, err := once.EquivalentTo(MustParse("A"))
	if err != nil {
		t.Fatalf("EquivalentTo: %v", err)
	}
	if !eqA {
		t.Errorf("Minimize((A&B)|(A&~B)) should be equivalent to A, got %s", once)
	}
}

func TestToDNFAndToCNFPreserveSemantics(t *testing.T) {
	e, err := Parse("(A | B) & (A | C)")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	dnf, err := e.ToDNF()
	if err != nil {
		t.Fatalf("ToDNF: %v", err)
	}
	if eq, err := e.EquivalentTo(dnf); err != nil || !eq {
		t.Errorf("ToDNF result not equivalent to original: eq=%v err=%v", eq, err)
	}
	cnf, err := e.ToCNF()
	if err != nil {
		t.Fatalf("ToCNF: %v", err)
	}
	if eq, err := e.EquivalentTo(cnf); err != nil || !eq {
		t.Errorf("ToCNF result not equivalent to original: eq=%v err=%v", eq, err)
	}
}

func TestParseErrorPositions(t *testing.T) {
	tests := []struct {
		src  string
		code ParseErrorCode
		pos  int
	}{
		{"A$", UnknownToken, 1},
		{")A", UnmatchedClosingParenthesis, 0},
		{"A &", BinaryOperatorAtEnds, 2},
	}
	for _, tt := range tests {
		_, err := Parse(tt.src)
		if err == nil {
			t.Fatalf("Parse(%q): expected error", tt.src)
		}
		var pe *ParseError
		if !errors.As(err, &pe) {
			t.Fatalf("Parse(%q): expected *ParseError, got %T", tt.src, err)
		}
		if pe.Code != tt.code {
			t.Errorf("Parse(%q): expected code %v, got %v", tt.src, tt.code, pe.Code)
		}
		if pe.CharIndex != tt.pos {
			t.Errorf("Parse(%q): expected error at char %d, got %d", tt.src, tt.pos, pe.CharIndex)
		}
	}
}

func TestTryParseAlwaysReturnsParseError(t *testing.T) {
	_, err := TryParse("A &")
	if err == nil {
		t.Fatalf("expected error")
	}
	var pe *ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("expected *ParseError, got %T", err)
	}
	if pe.Code != InvalidTokenSequence {
		t.Errorf("TryParse should always report InvalidTokenSequence, got %v", pe.Code)
	}
	var cause *ParseError
	if !errors.As(pe.Cause, &cause) {
		t.Fatalf("expected wrapped Cause to be a *ParseError, got %T", pe.Cause)
	}
	if cause.Code != BinaryOperatorAtEnds {
		t.Errorf("expected wrapped cause code BinaryOperatorAtEnds, got %v", cause.Code)
	}
}

func TestWithVariableOrderRejectsMismatch(t *testing.T) {
	e, err := Parse("A & B")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if _, err := e.WithVariableOrder([]string{"A", "A"}); err == nil {
		t.Errorf("expected error for duplicate variable")
	}
	if _, err := e.WithVariableOrder([]string{"A", "C"}); err == nil {
		t.Errorf("expected error for missing original variable")
	}
	reordered, err := e.WithVariableOrder([]string{"B", "A"})
	if err != nil {
		t.Fatalf("WithVariableOrder: %v", err)
	}
	eq, err := e.EquivalentTo(reordered)
	if err != nil {
		t.Fatalf("EquivalentTo: %v", err)
	}
	if !eq {
		t.Errorf("reordering variables should not change semantics")
	}
}

func TestEvaluateLengthMismatch(t *testing.T) {
	e := MustParse("A & B")
	_, err := e.Evaluate([]bool{true})
	if !errors.Is(err, ErrLengthMismatch) {
		t.Errorf("expected ErrLengthMismatch, got %v", err)
	}
}

func TestWithAstCacheSizeIsHonored(t *testing.T) {
	defer ensureASTCacheSize(1024)
	if _, err := Parse("A", WithAstCacheSize(2)); err != nil {
		t.Fatalf("Parse: %v", err)
	}
	astCacheMu.Lock()
	size := astCacheMaxSize
	astCacheMu.Unlock()
	if size != 2 {
		t.Fatalf("expected AST cache resized to 2, got %d", size)
	}

	sources := []string{"A", "B", "C", "D", "E"}
	for _, src := range sources {
		if _, err := Parse(src, WithAstCacheSize(2)); err != nil {
			t.Fatalf("Parse(%q): %v", src, err)
		}
	}
	astCacheMu.Lock()
	n := astCache.Len()
	astCacheMu.Unlock()
	if n > 2 {
		t.Errorf("expected AST cache to hold at most 2 entries, got %d", n)
	}
}

func TestWithDelegateCacheSizeIsHonored(t *testing.T) {
	defer ensureDelegateCacheSize(512)
	e := MustParse("A & B", WithDelegateCacheSize(1))
	if _, err := e.Evaluate([]bool{true, true}); err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	delegateCacheMu.Lock()
	size := delegateCacheMaxSize
	delegateCacheMu.Unlock()
	if size != 1 {
		t.Fatalf("expected delegate cache resized to 1, got %d", size)
	}
}

// TestPropertyRoundTripRandom drives spec property 7
// ("equivalentTo(parse(toString(p)), p)") against a batch of depth-bounded
// random formulas instead of one fixed example.
func TestPropertyRoundTripRandom(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 50; i++ {
		raw := astgen.Node(rng, 3)
		p, err := New(raw)
		if err != nil {
			t.Fatalf("New: %v", err)
		}
		roundTripped, err := Parse(p.String())
		if err != nil {
			t.Fatalf("Parse(%q): %v", p.String(), err)
		}
		eq, err := p.EquivalentTo(roundTripped)
		if err != nil {
			t.Fatalf("EquivalentTo: %v", err)
		}
		if !eq {
			t.Errorf("round-trip changed semantics: %s -> %q -> %s", p, p.String(), roundTripped)
		}
	}
}

// TestPropertyMinimizeRandom drives spec property 9
// ("minimize(p) ≡ p and is idempotent") against a batch of depth-bounded
// random formulas.
func TestPropertyMinimizeRandom(t *testing.T) {
	rng := rand.New(rand.NewSource(9))
	for i := 0; i < 50; i++ {
		raw := astgen.Node(rng, 3)
		p, err := New(raw)
		if err != nil {
			t.Fatalf("New: %v", err)
		}
		once, err := p.Minimize()
		if err != nil {
			t.Fatalf("Minimize: %v", err)
		}
		eq, err := p.EquivalentTo(once)
		if err != nil {
			t.Fatalf("EquivalentTo: %v", err)
		}
		if !eq {
			t.Errorf("Minimize changed semantics for p=%s: minimized=%s", p, once)
		}
		twice, err := once.Minimize()
		if err != nil {
			t.Fatalf("Minimize (again): %v", err)
		}
		if !once.StructuralEquals(twice) {
			t.Errorf("Minimize not idempotent for p=%s: once=%s twice=%s", p, once, twice)
		}
	}
}

func TestEvaluateMapMissingVariable(t *testing.T) {
	e := MustParse("A & B")
	_, err := e.EvaluateMap(map[string]bool{"A": true})
	if !errors.Is(err, ErrMissingVariable) {
		t.Errorf("expected ErrMissingVariable, got %v", err)
	}
}
