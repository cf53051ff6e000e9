// Package registry holds the operator symbol table shared by the tokenizer
// and both parser strategies: precedences, associativity, node factories,
// and the alias tables that let "AND", "∧", "&&" and "&" all resolve to the
// same canonical operator. All lookups are case-insensitive, mirroring the
// small closed enum + name table style of the teacher's own Operator type.
package registry

import (
	"sort"
	"strings"
	"sync"

	"github.com/vhaisman/boolexpr/internal/ast"
)

// Arity distinguishes unary from binary operator definitions.
type Arity int

const (
	Unary Arity = iota
	Binary
)

// UnaryFactory and BinaryFactory build an AST node for a resolved operator
// symbol. The default factories just wrap the operands in ast.Unary /
// ast.Binary; RegisterOperator accepts custom factories for extensions.
type UnaryFactory func(operand ast.Node) ast.Node
type BinaryFactory func(left, right ast.Node) ast.Node

// Def describes one operator's syntax: its canonical symbol, precedence,
// associativity and arity.
type Def struct {
	Symbol     string
	Precedence int
	RightAssoc bool
	Arity      Arity
}

// Registry is the mutable symbol table. It is expected to be configured at
// startup (see §5 of the specification); the mutex below is a defensive
// measure, not a promise of safe concurrent registration during parsing.
type Registry struct {
	mu sync.RWMutex

	ops             map[string]Def
	unaryFactories  map[string]UnaryFactory
	binaryFactories map[string]BinaryFactory

	aliases      map[string]string // lowercased alias -> canonical symbol
	constAliases map[string]bool   // lowercased alias -> constant value
	prefixWords  map[string]bool   // lowercased word-form aliases of "~"

	suggestionMaxDistance int
	suggestionMaxItems    int

	candidates []string // symbolic (non-word) tokens, longest first; rebuilt lazily
	dirty      bool
}

// NewDefault returns a Registry preloaded with the operator table, aliases
// and constant aliases described in the specification.
func NewDefault() *Registry {
	r := &Registry{
		ops:                   map[string]Def{},
		unaryFactories:        map[string]UnaryFactory{},
		binaryFactories:       map[string]BinaryFactory{},
		aliases:               map[string]string{},
		constAliases:          map[string]bool{},
		prefixWords:           map[string]bool{},
		suggestionMaxDistance: 2,
		suggestionMaxItems:    3,
	}

	r.registerLocked(Def{Symbol: "~", Precedence: 5, RightAssoc: true, Arity: Unary}, defaultUnary("~"), nil)
	r.registerLocked(Def{Symbol: "&", Precedence: 4, Arity: Binary}, nil, defaultBinary("&"))
	r.registerLocked(Def{Symbol: "!&", Precedence: 4, Arity: Binary}, nil, defaultBinary("!&"))
	r.registerLocked(Def{Symbol: "^", Precedence: 3, Arity: Binary}, nil, defaultBinary("^"))
	r.registerLocked(Def{Symbol: "|", Precedence: 2, Arity: Binary}, nil, defaultBinary("|"))
	r.registerLocked(Def{Symbol: "!|", Precedence: 2, Arity: Binary}, nil, defaultBinary("!|"))
	r.registerLocked(Def{Symbol: "=>", Precedence: 1, RightAssoc: true, Arity: Binary}, nil, defaultBinary("=>"))
	r.registerLocked(Def{Symbol: "<=>", Precedence: 0, Arity: Binary}, nil, defaultBinary("<=>"))

	// Operator aliases: textual and Unicode synonyms mapping onto the eight
	// canonical symbols above.
	for alias, canon := range map[string]string{
		"and": "&", "∧": "&", "&&": "&",
		"or": "|", "∨": "|", "||": "|",
		"not": "~", "¬": "~", "!": "~",
		"xor": "^", "⊕": "^",
		"implies": "=>", "->": "=>", "→": "=>",
		"iff": "<=>", "≡": "<=>", "⇔": "<=>", "↔": "<=>",
		"nand": "!&",
		"nor":  "!|",
	} {
		r.aliases[strings.ToLower(alias)] = canon
	}

	// Word-form aliases of negation recognized during identifier scanning,
	// before the generic operator-alias table is consulted (see
	// internal/token). "не" is Russian for "not", kept from the original
	// design note as an example of a non-Latin word alias.
	for _, word := range []string{"not", "не"} {
		r.prefixWords[strings.ToLower(word)] = true
	}

	r.constAliases["true"] = true
	r.constAliases["⊤"] = true
	r.constAliases["false"] = false
	r.constAliases["⊥"] = false

	r.dirty = true
	return r
}

func defaultUnary(symbol string) UnaryFactory {
	return func(operand ast.Node) ast.Node { return ast.NewUnary(symbol, operand) }
}

func defaultBinary(symbol string) BinaryFactory {
	return func(left, right ast.Node) ast.Node { return ast.NewBinary(symbol, left, right) }
}

// RegisterOperator adds or replaces an operator definition and its
// factories. Nil factories fall back to the default ast.Unary / ast.Binary
// constructors. Registration invalidates the cached candidate list.
func (r *Registry) RegisterOperator(def Def, unary UnaryFactory, binary BinaryFactory) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.registerLocked(def, unary, binary)
}

func (r *Registry) registerLocked(def Def, unary UnaryFactory, binary BinaryFactory) {
	r.ops[def.Symbol] = def
	switch def.Arity {
	case Unary:
		if unary == nil {
			unary = defaultUnary(def.Symbol)
		}
		r.unaryFactories[def.Symbol] = unary
	case Binary:
		if binary == nil {
			binary = defaultBinary(def.Symbol)
		}
		r.binaryFactories[def.Symbol] = binary
	}
	r.dirty = true
}

// RegisterAlias maps alias (case-insensitively) onto an already-registered
// canonical symbol.
func (r *Registry) RegisterAlias(alias, canonical string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.aliases[strings.ToLower(alias)] = canonical
	r.dirty = true
}

// RegisterConstantAlias maps alias (case-insensitively) onto a boolean
// constant.
func (r *Registry) RegisterConstantAlias(alias string, value bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.constAliases[strings.ToLower(alias)] = value
	r.dirty = true
}

// Precedence returns the precedence of a canonical operator symbol.
func (r *Registry) Precedence(symbol string) (int, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	def, ok := r.ops[symbol]
	return def.Precedence, ok
}

// IsRightAssoc reports whether symbol associates to the right.
func (r *Registry) IsRightAssoc(symbol string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.ops[symbol].RightAssoc
}

// ArityOf returns the arity of a canonical operator symbol.
func (r *Registry) ArityOf(symbol string) (Arity, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	def, ok := r.ops[symbol]
	return def.Arity, ok
}

// Resolve looks up text (case-insensitively) as an operator alias, returning
// its canonical symbol. Purely symbolic operators (e.g. "&") resolve to
// themselves.
func (r *Registry) Resolve(text string) (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	lower := strings.ToLower(text)
	if canon, ok := r.aliases[lower]; ok {
		return canon, true
	}
	if _, ok := r.ops[text]; ok {
		return text, true
	}
	return "", false
}

// ResolveConstant looks up text (case-insensitively) as a constant alias.
func (r *Registry) ResolveConstant(text string) (bool, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	v, ok := r.constAliases[strings.ToLower(text)]
	return v, ok
}

// IsPrefixUnaryWord reports whether text is a registered word-form alias of
// the unary negation operator (checked before the general alias table
// during identifier-run classification, per the tokenizer's dispatch order).
func (r *Registry) IsPrefixUnaryWord(text string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.prefixWords[strings.ToLower(text)]
}

// Candidates returns every purely symbolic (non-word) operator token —
// canonical symbols and their symbolic aliases — sorted by descending
// length, so the tokenizer's longest-match scan tries "<=>" before "<=".
// The result is cached and rebuilt lazily after registration.
func (r *Registry) Candidates() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.dirty {
		return r.candidates
	}
	seen := map[string]bool{}
	var out []string
	add := func(s string) {
		if s == "" || seen[s] {
			return
		}
		if isWordForm(s) {
			return
		}
		seen[s] = true
		out = append(out, s)
	}
	for sym := range r.ops {
		add(sym)
	}
	for alias := range r.aliases {
		add(alias)
	}
	sort.Slice(out, func(i, j int) bool {
		if len(out[i]) != len(out[j]) {
			return len(out[i]) > len(out[j])
		}
		return out[i] < out[j]
	})
	r.candidates = out
	r.dirty = false
	return out
}

// AllAliasWords returns every alias, canonical symbol, prefix word and
// constant alias known to the registry, used as the vocabulary for
// Levenshtein-based suggestions on an unknown token.
func (r *Registry) AllAliasWords() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []string
	for sym := range r.ops {
		out = append(out, sym)
	}
	for alias := range r.aliases {
		out = append(out, alias)
	}
	for word := range r.prefixWords {
		out = append(out, word)
	}
	for alias := range r.constAliases {
		out = append(out, alias)
	}
	sort.Strings(out)
	return out
}

// SuggestionParams returns the configured Levenshtein threshold and maximum
// suggestion count.
func (r *Registry) SuggestionParams() (maxDistance, maxItems int) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.suggestionMaxDistance, r.suggestionMaxItems
}

// SetSuggestionParams overrides the default Levenshtein threshold (2) and
// item count (3).
func (r *Registry) SetSuggestionParams(maxDistance, maxItems int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.suggestionMaxDistance = maxDistance
	r.suggestionMaxItems = maxItems
}

// MakeUnary builds an AST node for a registered unary operator.
func (r *Registry) MakeUnary(op string, operand ast.Node) (ast.Node, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	f, ok := r.unaryFactories[op]
	if !ok {
		return nil, false
	}
	return f(operand), true
}

// MakeBinary builds an AST node for a registered binary operator.
func (r *Registry) MakeBinary(op string, left, right ast.Node) (ast.Node, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	f, ok := r.binaryFactories[op]
	if !ok {
		return nil, false
	}
	return f(left, right), true
}

func isWordForm(s string) bool {
	for _, r := range s {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') {
			continue
		}
		return false
	}
	return len(s) > 0
}
