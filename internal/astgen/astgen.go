// Package astgen generates small, depth-bounded random syntax trees over a
// fixed variable pool, for the randomized property tests the specification's
// testable-properties section calls for (commutativity, associativity,
// distributivity, De Morgan, absorption, idempotence, and the rest).
package astgen

import (
	"math/rand"

	"github.com/vhaisman/boolexpr/internal/ast"
)

// Vars is the fixed variable pool the randomized property tests draw from.
// Three names keep an exhaustive truth table (2^3 = 8 rows) cheap to check
// while still exercising every operator's binary structure.
var Vars = []string{"A", "B", "C"}

var binaryOps = []string{"&", "|", "^", "=>", "<=>", "!&", "!|"}

// Node returns a random syntax tree of height at most maxDepth, drawn from
// rng, using only names from Vars. maxDepth <= 0 always returns a leaf.
func Node(rng *rand.Rand, maxDepth int) ast.Node {
	if maxDepth <= 0 || rng.Intn(3) == 0 {
		if rng.Intn(5) == 0 {
			return ast.NewConstant(rng.Intn(2) == 1)
		}
		return ast.NewVariable(Vars[rng.Intn(len(Vars))])
	}
	if rng.Intn(4) == 0 {
		return ast.NewUnary("~", Node(rng, maxDepth-1))
	}
	op := binaryOps[rng.Intn(len(binaryOps))]
	return ast.NewBinary(op, Node(rng, maxDepth-1), Node(rng, maxDepth-1))
}

// AllAssignments returns every boolean vector of length n, in counting
// order, for brute-force truth-table comparisons over a small variable pool
// such as Vars.
func AllAssignments(n int) [][]bool {
	total := 1 << uint(n)
	out := make([][]bool, total)
	for i := 0; i < total; i++ {
		row := make([]bool, n)
		for b := 0; b < n; b++ {
			row[b] = (i>>uint(b))&1 == 1
		}
		out[i] = row
	}
	return out
}
