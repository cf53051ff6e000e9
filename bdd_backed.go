package boolexpr

import (
	"sort"

	"github.com/vhaisman/boolexpr/bdd"
	"github.com/vhaisman/boolexpr/internal/ast"
	"github.com/vhaisman/boolexpr/internal/convert"
	"github.com/vhaisman/boolexpr/internal/rewrite"
)

// ensureBDD lazily builds and memoizes the BDD for e's root, so repeated
// BDD-backed questions against the same Expression build it once.
func (e *Expression) ensureBDD() (*bdd.Manager, bdd.Ref, error) {
	if e.mgr != nil {
		return e.mgr, e.mgrRoot, nil
	}
	var opts []bdd.Option
	if e.cfg.EnableDebugLogging {
		opts = append(opts, bdd.WithDebugLogging(true))
	}
	m := bdd.NewManager(len(e.vars), opts...)
	root, err := bdd.Build(m, e.root)
	if err != nil {
		return nil, bdd.False, err
	}
	e.mgr, e.mgrRoot = m, root
	return m, root, nil
}

// IsTautology reports whether e is true under every assignment.
func (e *Expression) IsTautology() (bool, error) {
	_, root, err := e.ensureBDD()
	if err != nil {
		return false, err
	}
	return root == bdd.True, nil
}

// IsContradiction reports whether e is false under every assignment.
func (e *Expression) IsContradiction() (bool, error) {
	_, root, err := e.ensureBDD()
	if err != nil {
		return false, err
	}
	return root == bdd.False, nil
}

// IsSatisfiable reports whether some assignment makes e true.
func (e *Expression) IsSatisfiable() (bool, error) {
	_, root, err := e.ensureBDD()
	if err != nil {
		return false, err
	}
	return root != bdd.False, nil
}

// Minimize returns a new Expression built by converting e's BDD back into
// an AST, giving the smallest formula the BDD's reduction rules can find
// for the current variable order.
func (e *Expression) Minimize() (*Expression, error) {
	m, root, err := e.ensureBDD()
	if err != nil {
		return nil, err
	}
	return e.clone(convert.ToAST(m, root, e.vars)), nil
}

// ToDNF returns a new Expression in disjunctive normal form: a flattened,
// deduplicated sum of conjunctions of literals, derived from e's BDD cover
// (its Shannon-expansion conversion, distributed with the expander and
// re-canonicalized) rather than by naive syntactic expansion of e's own
// tree.
func (e *Expression) ToDNF() (*Expression, error) {
	m, root, err := e.ensureBDD()
	if err != nil {
		return nil, err
	}
	converted := convert.ToAST(m, root, e.vars)
	expanded := rewrite.Expand(converted)
	return e.clone(rewrite.Canonicalize(rewrite.Normalize(expanded))), nil
}

// ToCNF returns a new Expression in conjunctive normal form. It derives CNF
// from the dual construction: the DNF of e's negation, distributed and then
// negated and pushed back down through De Morgan's laws by the normalizer,
// which yields an AND of ORs of literals — a CNF for e, not for its
// negation.
func (e *Expression) ToCNF() (*Expression, error) {
	m, root, err := e.ensureBDD()
	if err != nil {
		return nil, err
	}
	negatedConverted := convert.ToAST(m, m.Not(root), e.vars)
	negatedDNF := rewrite.Expand(negatedConverted)
	cnf := rewrite.Normalize(ast.Unary{Op: "~", Operand: negatedDNF})
	return e.clone(rewrite.Canonicalize(cnf)), nil
}

// EquivalentTo reports whether e and other denote the same boolean
// function, by building both against the union of their variable sets in
// one shared manager and comparing the resulting BDD refs for identity.
func (e *Expression) EquivalentTo(other *Expression) (bool, error) {
	union := unionSorted(e.vars, other.vars)
	aIndexed, err := rewrite.VariableIndex(e.root, union)
	if err != nil {
		return false, err
	}
	bIndexed, err := rewrite.VariableIndex(other.root, union)
	if err != nil {
		return false, err
	}
	m := bdd.NewManager(len(union))
	aRef, err := bdd.Build(m, aIndexed)
	if err != nil {
		return false, err
	}
	bRef, err := bdd.Build(m, bIndexed)
	if err != nil {
		return false, err
	}
	return aRef == bRef, nil
}

func unionSorted(a, b []string) []string {
	seen := make(map[string]bool, len(a)+len(b))
	var out []string
	for _, name := range a {
		if !seen[name] {
			seen[name] = true
			out = append(out, name)
		}
	}
	for _, name := range b {
		if !seen[name] {
			seen[name] = true
			out = append(out, name)
		}
	}
	sort.Strings(out)
	return out
}
