package parser

import (
	"testing"

	"github.com/vhaisman/boolexpr/internal/ast"
	"github.com/vhaisman/boolexpr/internal/perror"
	"github.com/vhaisman/boolexpr/internal/registry"
)

func mustParse(t *testing.T, src string, strategy Strategy) ast.Node {
	t.Helper()
	reg := registry.NewDefault()
	n, err := Parse(src, reg, strategy, false)
	if err != nil {
		t.Fatalf("Parse(%q, %s): unexpected error: %v", src, strategy, err)
	}
	return n
}

func TestBothStrategiesAgree(t *testing.T) {
	exprs := []string{
		"A & B",
		"A | B & C",
		"(A | B) & C",
		"A => B => C",
		"~A & ~B",
		"A <=> B <=> C",
		"NOT A AND B",
		"((A & B) | !(C => true)) <=> D",
	}
	for _, src := range exprs {
		sy := mustParse(t, src, ShuntingYard)
		pr := mustParse(t, src, Pratt)
		if !ast.Equal(sy, pr) {
			t.Errorf("strategies disagree on %q: shunting-yard=%s pratt=%s", src, ast.String(sy), ast.String(pr))
		}
	}
}

func TestOperatorPrecedenceAndAssociativity(t *testing.T) {
	// => is right-associative: A => B => C parses as A => (B => C).
	n := mustParse(t, "A => B => C", ShuntingYard)
	bin, ok := n.(ast.Binary)
	if !ok || bin.Op != "=>" {
		t.Fatalf("expected top-level =>, got %s", ast.String(n))
	}
	if _, ok := bin.Right.(ast.Binary); !ok {
		t.Errorf("expected right-associative grouping, got %s", ast.String(n))
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		code perror.Code
	}{
		{"empty", "", perror.EmptyExpression},
		{"trailing-binary", "A &", perror.BinaryOperatorAtEnds},
		{"leading-binary", "& A", perror.BinaryOperatorAtEnds},
		{"unmatched-open", "(A", perror.UnmatchedParentheses},
		{"unmatched-close", "A)", perror.UnmatchedClosingParenthesis},
		{"empty-parens", "()", perror.UnmatchedClosingParenthesis},
		{"paren-after-operand", "A(B)", perror.InvalidTokenBeforeOpenParen},
		{"trailing-unary", "A & ~", perror.UnaryOperatorMissingOperand},
		{"adjacent-operands", "A B", perror.InvalidTokenSequence},
	}
	reg := registry.NewDefault()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.src, reg, ShuntingYard, false)
			if err == nil {
				t.Fatalf("Parse(%q): expected error, got nil", tt.src)
			}
			pe, ok := err.(*perror.ParseError)
			if !ok {
				t.Fatalf("Parse(%q): expected *perror.ParseError, got %T", tt.src, err)
			}
			if pe.Code != tt.code {
				t.Errorf("Parse(%q): expected code %s, got %s", tt.src, tt.code, pe.Code)
			}
		})
	}
}

func TestParseNormalizesResult(t *testing.T) {
	n := mustParse(t, "A & true", ShuntingYard)
	if !ast.Equal(n, ast.NewVariable("A")) {
		t.Errorf("Parse(A & true) = %s, want A (normalized)", ast.String(n))
	}
}
