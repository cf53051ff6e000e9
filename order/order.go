// Package order implements the variable-ordering strategies BDD
// construction quality depends on: a bad order can blow up node count by
// orders of magnitude for the same boolean function. Every strategy shares
// one signature, so callers can swap them, chain them with Composite, or
// let Auto pick among several candidates automatically.
package order

import (
	"sort"

	"github.com/vhaisman/boolexpr/internal/ast"
)

// Strategy computes a new variable order for root, given the caller's
// current order (the universe of variable names to order; not every name
// need occur in root). Implementations must return a permutation of
// current, never adding or dropping names.
type Strategy interface {
	Order(root ast.Node, current []string) ([]string, error)
}

// Alphabetical orders variables lexicographically by name. It is the
// package's zero-configuration default: deterministic and independent of
// the formula's shape.
type Alphabetical struct{}

func (Alphabetical) Order(_ ast.Node, current []string) ([]string, error) {
	out := append([]string(nil), current...)
	sort.Strings(out)
	return out, nil
}

// Frequency orders variables by descending occurrence count in root, ties
// broken alphabetically. Variables that co-occur often tend to belong near
// each other in a good BDD order, so putting the most-used variables first
// is a cheap heuristic that often helps.
type Frequency struct{}

func (Frequency) Order(root ast.Node, current []string) ([]string, error) {
	counts := map[string]int{}
	var walk func(ast.Node)
	walk = func(n ast.Node) {
		switch t := n.(type) {
		case ast.Variable:
			counts[t.Name]++
		case ast.Unary:
			walk(t.Operand)
		case ast.Binary:
			walk(t.Left)
			walk(t.Right)
		}
	}
	walk(root)

	out := append([]string(nil), current...)
	sort.Slice(out, func(i, j int) bool {
		if counts[out[i]] != counts[out[j]] {
			return counts[out[i]] > counts[out[j]]
		}
		return out[i] < out[j]
	})
	return out, nil
}
