// Package parser turns a token stream into a normalized AST. Two strategies
// (shunting-yard and Pratt) share one operator registry and are guaranteed
// to produce trees with identical semantics; both run behind the same
// structural validator and both hand their result to the normalizer before
// returning it, per the specification's "same token input, same AST
// output" contract.
package parser

import (
	"github.com/vhaisman/boolexpr/internal/ast"
	"github.com/vhaisman/boolexpr/internal/registry"
	"github.com/vhaisman/boolexpr/internal/rewrite"
	"github.com/vhaisman/boolexpr/internal/token"
)

// Strategy selects which of the two interchangeable parsing algorithms
// builds the AST from the validated token stream.
type Strategy int

const (
	ShuntingYard Strategy = iota
	Pratt
)

func (s Strategy) String() string {
	if s == Pratt {
		return "pratt"
	}
	return "shunting-yard"
}

// Parse tokenizes src, validates the token stream's structure, builds an
// AST with the requested strategy, and returns it normalized. The returned
// error, when non-nil, is always a *perror.ParseError.
func Parse(src string, reg *registry.Registry, strategy Strategy, normalizeUnicode bool) (ast.Node, error) {
	toks, err := token.Tokenize(src, reg, normalizeUnicode)
	if err != nil {
		return nil, err
	}
	if err := validate(toks, reg, src); err != nil {
		return nil, err
	}
	var tree ast.Node
	switch strategy {
	case Pratt:
		tree, err = parsePratt(toks, reg)
	default:
		tree, err = parseShuntingYard(toks, reg)
	}
	if err != nil {
		return nil, err
	}
	return rewrite.Normalize(tree), nil
}
