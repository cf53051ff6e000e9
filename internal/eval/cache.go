package eval

import (
	"strconv"
	"strings"

	"github.com/cespare/xxhash/v2"
	lru "github.com/hashicorp/golang-lru"

	"github.com/vhaisman/boolexpr/internal/ast"
)

// DelegateCache memoizes Compile results, keyed on the triple that fully
// determines a compilation's behavior: the short-circuit flag, the AST's
// canonical string, and the variable order the caller compiled against.
// Backed by a fixed-capacity golang-lru cache, so a long-running process
// evaluating many distinct formulas evicts its least-recently-used
// compilations instead of growing without bound.
type DelegateCache struct {
	cache *lru.Cache
}

// NewDelegateCache returns a cache holding at most size compiled
// delegates.
func NewDelegateCache(size int) (*DelegateCache, error) {
	c, err := lru.New(size)
	if err != nil {
		return nil, err
	}
	return &DelegateCache{cache: c}, nil
}

func delegateKey(shortCircuit bool, n ast.Node, order []string) uint64 {
	var b strings.Builder
	if shortCircuit {
		b.WriteByte('1')
	} else {
		b.WriteByte('0')
	}
	b.WriteByte('|')
	b.WriteString(ast.CanonicalKey(n))
	b.WriteByte('|')
	b.WriteString(strconv.Itoa(len(order)))
	for _, name := range order {
		b.WriteByte(',')
		b.WriteString(name)
	}
	return xxhash.Sum64String(b.String())
}

// GetOrCompile returns a cached Compiled delegate for (shortCircuit, n,
// order), compiling and storing a new one on a miss.
func (c *DelegateCache) GetOrCompile(shortCircuit bool, n ast.Node, order []string) Compiled {
	key := delegateKey(shortCircuit, n, order)
	if v, ok := c.cache.Get(key); ok {
		return v.(Compiled)
	}
	fn := Compile(n, shortCircuit)
	c.cache.Add(key, fn)
	return fn
}

// Len reports the number of delegates currently cached.
func (c *DelegateCache) Len() int { return c.cache.Len() }

// Purge clears the cache entirely.
func (c *DelegateCache) Purge() { c.cache.Purge() }
