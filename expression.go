// Package boolexpr is a public facade over the internal reasoning engine:
// parse a boolean expression from text (or build one directly from an
// internal AST), evaluate it, normalize or minimize it, and ask BDD-backed
// questions like satisfiability and equivalence. It plays the same role
// rudd.Set plays over the teacher's BDD interface: a thin, opinionated
// wrapper that owns configuration, caching and lazy BDD construction so
// callers rarely need to touch internal/* directly.
package boolexpr

import (
	"fmt"
	"sort"

	"github.com/vhaisman/boolexpr/bdd"
	"github.com/vhaisman/boolexpr/internal/ast"
	"github.com/vhaisman/boolexpr/internal/eval"
	"github.com/vhaisman/boolexpr/internal/parser"
	"github.com/vhaisman/boolexpr/internal/perror"
	"github.com/vhaisman/boolexpr/internal/registry"
	"github.com/vhaisman/boolexpr/internal/rewrite"
)

// Expression is a normalized, variable-indexed boolean formula plus enough
// context (a registry, a config, a variable order) to evaluate, rewrite or
// reason about it. It is immutable: every transformation returns a new
// Expression.
type Expression struct {
	root ast.Node
	vars []string
	reg  *registry.Registry
	cfg  *Config

	mgr     *bdd.Manager
	mgrRoot bdd.Ref
}

// New builds an Expression from a raw AST node (as produced directly, not
// through Parse), assigning variables their default alphabetical order.
func New(root ast.Node, opts ...Option) (*Expression, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	vars := ast.Vars(root)
	sort.Strings(vars)
	indexed, err := rewrite.VariableIndex(root, vars)
	if err != nil {
		return nil, err
	}
	return &Expression{
		root: rewrite.Normalize(indexed),
		vars: vars,
		reg:  registry.NewDefault(),
		cfg:  cfg,
	}, nil
}

// Parse tokenizes, validates and parses src into a normalized Expression,
// consulting and populating the process-wide AST cache along the way. The
// returned error, on failure, is a *ParseError.
func Parse(src string, opts ...Option) (*Expression, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	reg := registry.NewDefault()
	if !cfg.EnableAliasSuggestions {
		reg.SetSuggestionParams(0, 0)
	} else {
		reg.SetSuggestionParams(cfg.SuggestionMaxDistance, cfg.SuggestionMaxItems)
	}

	ensureASTCacheSize(cfg.AstMaxCacheSize)

	key := astKey(cfg.Strategy, cfg.EnableUnicodeNormalization, src)
	var parsed ast.Node
	if cached, ok := lookupAST(key, cfg.EnableAstTtlEviction, cfg.AstTtl); ok {
		parsed = cached
	} else {
		n, err := parser.Parse(src, reg, cfg.Strategy, cfg.EnableUnicodeNormalization)
		if err != nil {
			return nil, err
		}
		parsed = n
		storeAST(key, parsed)
	}

	vars := ast.Vars(parsed)
	sort.Strings(vars)
	indexed, err := rewrite.VariableIndex(parsed, vars)
	if err != nil {
		return nil, err
	}
	return &Expression{
		root: rewrite.Normalize(indexed),
		vars: vars,
		reg:  reg,
		cfg:  cfg,
	}, nil
}

// MustParse is Parse but panics on error, for tests and initialization code
// that treats a parse failure as a programming error.
func MustParse(src string, opts ...Option) *Expression {
	e, err := Parse(src, opts...)
	if err != nil {
		panic(err)
	}
	return e
}

// TryParse is Parse but guarantees the returned error, if any, is a
// *ParseError with Code InvalidTokenSequence: every fault Parse could
// return, typed or not, is wrapped as the Cause of a single catch-all
// category. Use errors.As on the Cause to recover Parse's original code.
func TryParse(src string, opts ...Option) (*Expression, error) {
	e, err := Parse(src, opts...)
	if err != nil {
		return nil, perror.Wrap(err)
	}
	return e, nil
}

// WithVariableOrder returns a new Expression whose variables carry indices
// matching vars. vars must be a permutation of the Expression's current
// variable set; duplicates or missing names are an error.
func (e *Expression) WithVariableOrder(vars []string) (*Expression, error) {
	if len(vars) != len(e.vars) {
		return nil, fmt.Errorf("boolexpr: variable order has %d names, expression has %d variables", len(vars), len(e.vars))
	}
	seen := make(map[string]bool, len(vars))
	for _, v := range vars {
		if seen[v] {
			return nil, fmt.Errorf("boolexpr: duplicate variable %q in requested order", v)
		}
		seen[v] = true
	}
	for _, v := range e.vars {
		if !seen[v] {
			return nil, fmt.Errorf("boolexpr: requested order is missing variable %q", v)
		}
	}
	reindexed, err := rewrite.VariableIndex(e.root, vars)
	if err != nil {
		return nil, err
	}
	return &Expression{
		root: reindexed,
		vars: append([]string(nil), vars...),
		reg:  e.reg,
		cfg:  e.cfg,
	}, nil
}

// Variables returns the Expression's ordered variable names.
func (e *Expression) Variables() []string { return append([]string(nil), e.vars...) }

// Evaluate runs the compiled evaluator against a positional input vector,
// one entry per Variables() position. The delegate is fetched from the
// process-wide compiled-evaluator cache, so repeated calls against the
// same formula, order and short-circuit setting cost one compilation.
func (e *Expression) Evaluate(input []bool) (bool, error) {
	if len(input) != len(e.vars) {
		return false, fmt.Errorf("%w: expression has %d variables, got %d inputs", eval.ErrLengthMismatch, len(e.vars), len(input))
	}
	ensureDelegateCacheSize(e.cfg.DelegateMaxCacheSize)
	fn := compiledDelegate(e.cfg.UseShortCircuiting, e.root, e.vars)
	return fn(input), nil
}

// EvaluateMap runs the evaluator against a name-keyed assignment, failing
// if any of the Expression's variables is missing from values.
func (e *Expression) EvaluateMap(values map[string]bool) (bool, error) {
	input := make([]bool, len(e.vars))
	for i, name := range e.vars {
		v, ok := values[name]
		if !ok {
			return false, fmt.Errorf("%w: %q", eval.ErrMissingVariable, name)
		}
		input[i] = v
	}
	return e.Evaluate(input)
}

// String renders the Expression using minimal infix parenthesization.
func (e *Expression) String() string { return ast.String(e.root) }

// StructuralEquals reports whether e and other have syntactically identical
// normalized ASTs, including matching variable indices. Two semantically
// equivalent formulas built with different variable orders are not
// StructuralEquals; use EquivalentTo for that.
func (e *Expression) StructuralEquals(other *Expression) bool {
	return ast.Equal(e.root, other.root)
}

func (e *Expression) clone(root ast.Node) *Expression {
	return &Expression{root: root, vars: append([]string(nil), e.vars...), reg: e.reg, cfg: e.cfg}
}

// Normalize returns a new Expression with the normalizer's rewrites
// (constant folding, double-negation elimination, De Morgan push-down,
// identity/annihilator laws) applied. New and Parse both normalize the
// root they build, so for an Expression returned by either this yields a
// structurally equal copy.
func (e *Expression) Normalize() *Expression {
	return e.clone(rewrite.Normalize(e.root))
}
