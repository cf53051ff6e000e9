package bdd

import "github.com/sirupsen/logrus"

// operator identifies a cached Apply combinator. notSentinel stands in for
// the unused right operand of the unary Not specialization, so it shares
// the same cache key shape as the binary operators instead of needing a
// second cache.
type operator int32

const (
	opAnd operator = iota
	opOr
	opXor
	opImply
	opNot
)

const notSentinel Ref = -1

type applyKey struct {
	op    operator
	left  Ref
	right Ref
}

type combinator func(a, b bool) bool

func combinatorFor(op operator) combinator {
	switch op {
	case opAnd:
		return func(a, b bool) bool { return a && b }
	case opOr:
		return func(a, b bool) bool { return a || b }
	case opXor:
		return func(a, b bool) bool { return a != b }
	case opImply:
		return func(a, b bool) bool { return !a || b }
	default:
		panic("bdd: combinatorFor called with non-binary operator")
	}
}

func boolToRef(v bool) Ref {
	if v {
		return True
	}
	return False
}

// Apply computes the BDD for the boolean combinator op applied to u and v,
// implementing Bryant's algorithm generalized over any terminal combinator:
// terminal-terminal pairs are evaluated directly, non-terminal pairs are
// expanded on the topmost of the two variables and the results memoized in
// the apply cache.
func (m *Manager) Apply(u, v Ref, op operator) Ref {
	if m.isTerminal(u) && m.isTerminal(v) {
		return boolToRef(combinatorFor(op)(u == True, v == True))
	}
	key := applyKey{op: op, left: u, right: v}
	if r, ok := m.applyCache[key]; ok {
		return r
	}
	lu, lv := m.levelOf(u), m.levelOf(v)
	x := lu
	if lv < x {
		x = lv
	}
	ulow, uhigh := u, u
	if lu == x {
		ulow, uhigh = m.nodes[u].low, m.nodes[u].high
	}
	vlow, vhigh := v, v
	if lv == x {
		vlow, vhigh = m.nodes[v].low, m.nodes[v].high
	}
	low := m.Apply(ulow, vlow, op)
	high := m.Apply(uhigh, vhigh, op)
	res := m.makeNode(x, low, high)
	m.applyCache[key] = res
	if m.debug {
		m.log.WithFields(logrus.Fields{"op": op, "left": u, "right": v, "result": res}).Debug("bdd: apply")
	}
	return res
}

// Not returns the negation of u. It is the unary specialization of Apply:
// rather than combine two operands it walks a single tree, swapping the two
// terminals at the leaves.
func (m *Manager) Not(u Ref) Ref {
	if u == False {
		return True
	}
	if u == True {
		return False
	}
	key := applyKey{op: opNot, left: u, right: notSentinel}
	if r, ok := m.applyCache[key]; ok {
		return r
	}
	n := m.nodes[u]
	low := m.Not(n.low)
	high := m.Not(n.high)
	res := m.makeNode(n.level, low, high)
	m.applyCache[key] = res
	return res
}

// And, Or, Xor and Imply are the named binary operations exported over
// Apply.
func (m *Manager) And(u, v Ref) Ref   { return m.Apply(u, v, opAnd) }
func (m *Manager) Or(u, v Ref) Ref    { return m.Apply(u, v, opOr) }
func (m *Manager) Xor(u, v Ref) Ref   { return m.Apply(u, v, opXor) }
func (m *Manager) Imply(u, v Ref) Ref { return m.Apply(u, v, opImply) }
