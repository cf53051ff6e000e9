package rewrite

import (
	"sort"

	"github.com/cespare/xxhash/v2"

	"github.com/vhaisman/boolexpr/internal/ast"
)

// Canonicalize flattens nested same-operator subtrees for the commutative
// operators {&,|,^,<=>}, deduplicates and orders operands by their
// canonical-string key, and rebuilds a left-leaning tree. For ^ and <=>,
// duplicate operands cancel pairwise (mod 2): an even-count operand is
// dropped entirely, an odd-count operand is kept once. An operand equal to
// the operator's identity constant (0 for ^, 1 for <=>), which is what a
// fully cancelled inner chain reduces to, is dropped as well.
func Canonicalize(n ast.Node) ast.Node {
	switch t := n.(type) {
	case ast.Unary:
		return ast.Unary{Op: t.Op, Operand: Canonicalize(t.Operand)}
	case ast.Binary:
		left := Canonicalize(t.Left)
		right := Canonicalize(t.Right)
		switch t.Op {
		case "&", "|", "^", "<=>":
			return canonicalizeCommutative(t.Op, left, right)
		default:
			return ast.Binary{Op: t.Op, Left: left, Right: right}
		}
	default:
		return n
	}
}

type operand struct {
	node ast.Node
	key  string
}

type bucket struct {
	key   string
	node  ast.Node
	count int
}

func flatten(op string, n ast.Node, out *[]operand) {
	if b, ok := n.(ast.Binary); ok && b.Op == op {
		flatten(op, b.Left, out)
		flatten(op, b.Right, out)
		return
	}
	*out = append(*out, operand{node: n, key: ast.CanonicalKey(n)})
}

// groupOperands buckets operands by structural equality. Buckets are looked
// up by an xxhash digest of the canonical key first, with an exact string
// comparison to resolve the rare hash collision, the same two-step scheme
// borzacchiello/gosmt uses to hash-cons its expression DAG.
func groupOperands(operands []operand) []bucket {
	idx := map[uint64][]int{}
	var buckets []bucket
	for _, o := range operands {
		h := xxhash.Sum64String(o.key)
		matched := -1
		for _, bi := range idx[h] {
			if buckets[bi].key == o.key {
				matched = bi
				break
			}
		}
		if matched >= 0 {
			buckets[matched].count++
			continue
		}
		idx[h] = append(idx[h], len(buckets))
		buckets = append(buckets, bucket{key: o.key, node: o.node, count: 1})
	}
	return buckets
}

func canonicalizeCommutative(op string, left, right ast.Node) ast.Node {
	var flat []operand
	flatten(op, left, &flat)
	flatten(op, right, &flat)
	buckets := groupOperands(flat)

	var kept []bucket
	switch op {
	case "&", "|":
		kept = buckets
	case "^", "<=>":
		// Children are canonicalized first, so (A^A)^B arrives here as 0^B;
		// dropping the identity constant lets the cancellation carry through.
		identity := op == "<=>"
		for _, b := range buckets {
			if c, ok := b.node.(ast.Constant); ok && c.Value == identity {
				continue
			}
			if b.count%2 == 1 {
				kept = append(kept, b)
			}
		}
	}
	sort.Slice(kept, func(i, j int) bool { return kept[i].key < kept[j].key })

	if len(kept) == 0 {
		switch op {
		case "&":
			return ast.Constant{Value: true}
		case "|":
			return ast.Constant{Value: false}
		case "^":
			return ast.Constant{Value: false}
		case "<=>":
			return ast.Constant{Value: true}
		}
	}
	result := kept[0].node
	for _, b := range kept[1:] {
		result = ast.Binary{Op: op, Left: result, Right: b.node}
	}
	return result
}
