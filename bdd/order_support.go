package bdd

import "github.com/sirupsen/logrus"

// cofactor returns the branch of f taken at the given level: f itself if f
// is not at that level (it can only be strictly deeper, since f is always a
// child reached from a node one level above), otherwise the requested
// child.
func (m *Manager) cofactor(f Ref, level int32, high bool) Ref {
	if m.isTerminal(f) {
		return f
	}
	n := m.nodes[f]
	if n.level != level {
		return f
	}
	if high {
		return n.high
	}
	return n.low
}

// swapAdjacent rebuilds root with the variables at levels i and i+1
// exchanged, memoizing per call so that sharing within (and across, via a
// shared memo map) the walked roots is preserved.
func (m *Manager) swapAdjacent(root Ref, i int32, memo map[Ref]Ref) Ref {
	if m.isTerminal(root) {
		return root
	}
	if r, ok := memo[root]; ok {
		return r
	}
	n := m.nodes[root]
	var res Ref
	switch {
	case n.level < i:
		lo := m.swapAdjacent(n.low, i, memo)
		hi := m.swapAdjacent(n.high, i, memo)
		res = m.makeNode(n.level, lo, hi)
	case n.level == i:
		f00 := m.cofactor(n.low, i+1, false)
		f01 := m.cofactor(n.low, i+1, true)
		f10 := m.cofactor(n.high, i+1, false)
		f11 := m.cofactor(n.high, i+1, true)
		newLow := m.makeNode(i+1, f00, f10)
		newHigh := m.makeNode(i+1, f01, f11)
		res = m.makeNode(i, newLow, newHigh)
	case n.level == i+1:
		res = m.makeNode(i, n.low, n.high)
	default:
		res = root
	}
	memo[root] = res
	return res
}

// SwapAdjacent exchanges the variables currently occupying levels i and
// i+1, rewriting every root in roots (a single memo map is shared across
// them so structure shared between roots stays shared afterward) and
// updating the manager's level/variable bookkeeping to match.
func (m *Manager) SwapAdjacent(roots []Ref, i int32) []Ref {
	memo := map[Ref]Ref{}
	out := make([]Ref, len(roots))
	for idx, r := range roots {
		out[idx] = m.swapAdjacent(r, i, memo)
	}
	vi, vj := m.level2var[i], m.level2var[i+1]
	m.level2var[i], m.level2var[i+1] = vj, vi
	m.var2level[vi], m.var2level[vj] = i+1, i
	if m.debug {
		m.log.WithFields(logrus.Fields{"level": i, "swapped_with": i + 1}).Debug("bdd: swap adjacent")
	}
	return out
}

// SiftVariable slides variable v across every level, first downward to the
// bottom then back upward to the top, recording the level at which the
// total node count across roots is smallest, and leaves it there.
func (m *Manager) SiftVariable(roots []Ref, v int) []Ref {
	best := append([]Ref(nil), roots...)
	bestCount := m.NodeCount(best...)
	bestLevel := m.var2level[v]

	current := best
	level := bestLevel
	for level < int32(m.varnum)-1 {
		current = m.SwapAdjacent(current, level)
		level++
		if c := m.NodeCount(current...); c < bestCount {
			bestCount = c
			bestLevel = level
			best = append([]Ref(nil), current...)
		}
	}
	for level > 0 {
		current = m.SwapAdjacent(current, level-1)
		level--
		if c := m.NodeCount(current...); c < bestCount {
			bestCount = c
			bestLevel = level
			best = append([]Ref(nil), current...)
		}
	}
	// current is now back at the top; walk back down to bestLevel.
	for level < bestLevel {
		current = m.SwapAdjacent(current, level)
		level++
	}
	return current
}

// SiftAll runs SiftVariable for every variable, repeating full passes until
// one leaves the total node count unchanged, per the specification's
// "repeat until a full pass yields no improvement" rule.
func (m *Manager) SiftAll(roots []Ref) []Ref {
	current := append([]Ref(nil), roots...)
	for {
		before := m.NodeCount(current...)
		for v := 0; v < m.varnum; v++ {
			current = m.SiftVariable(current, v)
		}
		after := m.NodeCount(current...)
		if m.debug {
			m.log.WithFields(logrus.Fields{"before": before, "after": after}).Debug("bdd: sift pass")
		}
		if after >= before {
			return current
		}
	}
}
