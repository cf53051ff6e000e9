// Package bdd implements a Reduced Ordered Binary Decision Diagram manager:
// a hash-consed node arena, Bryant's Apply algorithm generalized over an
// arbitrary two-argument boolean combinator, and the level-swap primitive
// dynamic variable reordering (sifting) builds on. A Manager owns its arena
// and caches outright; nodes live for the manager's lifetime and are never
// freed piecemeal, so there is no reference counting, no finalizer-driven
// reclamation and no incremental garbage collector here, unlike the
// buddy/BuDDy heritage this package descends from.
package bdd

import (
	"math"

	"github.com/sirupsen/logrus"
)

// Ref is an opaque handle to a BDD node. The zero value, False, and the
// value 1, True, are the two terminal nodes; every manager reserves them.
type Ref int32

const (
	False Ref = 0
	True  Ref = 1
)

const terminalLevel int32 = math.MaxInt32

type nodeData struct {
	level int32
	low   Ref
	high  Ref
}

type uniqueKey struct {
	level int32
	low   Ref
	high  Ref
}

// Manager is a non-shared resource: its unique table and apply cache are
// not safe for concurrent use. A manager belongs to a single goroutine; the
// order package's Auto strategy respects this by giving each candidate
// ordering its own Manager.
type Manager struct {
	nodes  []nodeData
	unique map[uniqueKey]Ref

	applyCache map[applyKey]Ref

	varnum    int
	var2level []int32
	level2var []int32

	log   *logrus.Logger
	debug bool
}

// Option configures a Manager at construction time, in the teacher's
// functional-options style.
type Option func(*Manager)

// WithDebugLogging turns on logrus diagnostics for Apply calls, makeNode
// insertions, and sifting passes. Off by default: a library should not make
// a caller pay logging overhead it never asked for.
func WithDebugLogging(enabled bool) Option {
	return func(m *Manager) { m.debug = enabled }
}

// WithLogger overrides the default logrus.Logger used when debug logging is
// enabled. Useful for routing diagnostics into an application's existing
// structured-logging pipeline.
func WithLogger(l *logrus.Logger) Option {
	return func(m *Manager) {
		if l != nil {
			m.log = l
		}
	}
}

// NewManager returns a Manager configured for varnum variables, indices
// [0, varnum). Variables start at level == index; sifting is the only
// operation that subsequently changes the level assignment.
func NewManager(varnum int, opts ...Option) *Manager {
	m := &Manager{
		nodes:      make([]nodeData, 2, 2*varnum+2),
		unique:     make(map[uniqueKey]Ref, 2*varnum+2),
		applyCache: make(map[applyKey]Ref),
		varnum:     varnum,
		var2level:  make([]int32, varnum),
		level2var:  make([]int32, varnum),
		log:        logrus.StandardLogger(),
	}
	m.nodes[False] = nodeData{level: terminalLevel}
	m.nodes[True] = nodeData{level: terminalLevel}
	for i := 0; i < varnum; i++ {
		m.var2level[i] = int32(i)
		m.level2var[i] = int32(i)
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Varnum returns the number of variables the manager was configured with.
func (m *Manager) Varnum() int { return m.varnum }

func (m *Manager) isTerminal(r Ref) bool { return r == False || r == True }

func (m *Manager) levelOf(r Ref) int32 {
	if m.isTerminal(r) {
		return terminalLevel
	}
	return m.nodes[r].level
}

// makeNode returns the canonical node for (level, low, high), applying the
// BDD reduction rule (a node whose branches agree is redundant) and
// hash-consing against the unique table otherwise.
func (m *Manager) makeNode(level int32, low, high Ref) Ref {
	if low == high {
		return low
	}
	key := uniqueKey{level: level, low: low, high: high}
	if r, ok := m.unique[key]; ok {
		return r
	}
	m.nodes = append(m.nodes, nodeData{level: level, low: low, high: high})
	r := Ref(len(m.nodes) - 1)
	m.unique[key] = r
	if m.debug {
		m.log.WithFields(logrus.Fields{"ref": r, "level": level, "low": low, "high": high}).Debug("bdd: new node")
	}
	return r
}

// Ithvar returns the BDD representing the i'th variable in its current
// position in the level ordering.
func (m *Manager) Ithvar(i int) Ref {
	return m.makeNode(m.var2level[i], False, True)
}

// NIthvar returns the BDD representing the negation of the i'th variable.
func (m *Manager) NIthvar(i int) Ref {
	return m.Not(m.Ithvar(i))
}

// Level returns the level of a node: the position, in the current variable
// ordering, of the variable it branches on. For the two terminal nodes it
// returns a sentinel greater than every variable level; use IsTerminal to
// test for a terminal.
func (m *Manager) Level(r Ref) int32 { return m.levelOf(r) }

// IsTerminal reports whether r is one of the two terminal nodes.
func (m *Manager) IsTerminal(r Ref) bool { return m.isTerminal(r) }

// VariableAt returns the variable index currently occupying the given
// level, the inverse of the level a variable's Ithvar node is built at.
func (m *Manager) VariableAt(level int32) int { return int(m.level2var[level]) }

// Low returns the false-branch child of a non-terminal node.
func (m *Manager) Low(r Ref) Ref {
	if m.isTerminal(r) {
		return r
	}
	return m.nodes[r].low
}

// High returns the true-branch child of a non-terminal node.
func (m *Manager) High(r Ref) Ref {
	if m.isTerminal(r) {
		return r
	}
	return m.nodes[r].high
}

// NodeCount performs a DFS from each root and counts the distinct
// non-terminal nodes reachable, by identity, sharing the visited set across
// all given roots so shared subgraphs are counted once.
func (m *Manager) NodeCount(roots ...Ref) int {
	seen := map[Ref]bool{}
	var walk func(Ref)
	walk = func(r Ref) {
		if m.isTerminal(r) || seen[r] {
			return
		}
		seen[r] = true
		n := m.nodes[r]
		walk(n.low)
		walk(n.high)
	}
	for _, r := range roots {
		walk(r)
	}
	return len(seen)
}

// Stats summarizes a manager's current size, for diagnostics.
type Stats struct {
	Varnum         int
	ArenaSize      int
	UniqueTableLen int
	ApplyCacheLen  int
}

func (m *Manager) Stats() Stats {
	return Stats{
		Varnum:         m.varnum,
		ArenaSize:      len(m.nodes),
		UniqueTableLen: len(m.unique),
		ApplyCacheLen:  len(m.applyCache),
	}
}
