package boolexpr

import (
	"strings"
	"sync"
	"time"

	"github.com/cespare/xxhash/v2"
	lru "github.com/hashicorp/golang-lru"

	"github.com/vhaisman/boolexpr/internal/ast"
	"github.com/vhaisman/boolexpr/internal/eval"
	"github.com/vhaisman/boolexpr/internal/parser"
)

// astCacheEntry pairs a cached parse result with the time it was stored, so
// TTL eviction can be layered on top of golang-lru's capacity-based
// eviction when a caller opts into it.
type astCacheEntry struct {
	node     ast.Node
	storedAt time.Time
}

var (
	astCacheMu      sync.Mutex
	astCache        *lru.Cache
	astCacheMaxSize int

	delegateCacheMu      sync.Mutex
	delegateCache        *eval.DelegateCache
	delegateCacheMaxSize int
)

func init() {
	astCacheMaxSize = 1024
	astCache, _ = lru.New(astCacheMaxSize)
	delegateCacheMaxSize = 512
	delegateCache, _ = eval.NewDelegateCache(delegateCacheMaxSize)
}

// ensureASTCacheSize resizes the process-wide AST cache to maxSize if it
// isn't already sized that way, dropping whatever was cached before. Parse
// calls this with its Config's AstMaxCacheSize on every call, so the cache
// tracks whichever Config a caller most recently used; non-positive sizes
// are ignored since the underlying LRU requires a positive capacity.
func ensureASTCacheSize(maxSize int) {
	if maxSize <= 0 {
		return
	}
	astCacheMu.Lock()
	defer astCacheMu.Unlock()
	if maxSize == astCacheMaxSize {
		return
	}
	c, err := lru.New(maxSize)
	if err != nil {
		return
	}
	astCache = c
	astCacheMaxSize = maxSize
}

// ensureDelegateCacheSize is ensureASTCacheSize's counterpart for the
// compiled-evaluator cache.
func ensureDelegateCacheSize(maxSize int) {
	if maxSize <= 0 {
		return
	}
	delegateCacheMu.Lock()
	defer delegateCacheMu.Unlock()
	if maxSize == delegateCacheMaxSize {
		return
	}
	c, err := eval.NewDelegateCache(maxSize)
	if err != nil {
		return
	}
	delegateCache = c
	delegateCacheMaxSize = maxSize
}

// ConfigureASTCache replaces the process-wide parser AST cache with one of
// the given capacity, discarding whatever was cached before. Safe to call
// concurrently with parsing; any parse in flight simply misses.
func ConfigureASTCache(maxSize int) error {
	astCacheMu.Lock()
	defer astCacheMu.Unlock()
	c, err := lru.New(maxSize)
	if err != nil {
		return err
	}
	astCache = c
	astCacheMaxSize = maxSize
	return nil
}

// ClearASTCache empties the process-wide parser AST cache.
func ClearASTCache() {
	astCacheMu.Lock()
	defer astCacheMu.Unlock()
	astCache.Purge()
}

// ConfigureDelegateCache replaces the process-wide compiled-evaluator
// cache with one of the given capacity.
func ConfigureDelegateCache(maxSize int) error {
	delegateCacheMu.Lock()
	defer delegateCacheMu.Unlock()
	c, err := eval.NewDelegateCache(maxSize)
	if err != nil {
		return err
	}
	delegateCache = c
	delegateCacheMaxSize = maxSize
	return nil
}

// ClearDelegateCache empties the process-wide compiled-evaluator cache.
func ClearDelegateCache() {
	delegateCacheMu.Lock()
	defer delegateCacheMu.Unlock()
	delegateCache.Purge()
}

func astKey(strategy parser.Strategy, unicodeNorm bool, src string) uint64 {
	var b strings.Builder
	b.WriteString(strategy.String())
	if unicodeNorm {
		b.WriteByte('1')
	} else {
		b.WriteByte('0')
	}
	b.WriteString(src)
	return xxhash.Sum64String(b.String())
}

func lookupAST(key uint64, ttlEnabled bool, ttl time.Duration) (ast.Node, bool) {
	astCacheMu.Lock()
	v, ok := astCache.Get(key)
	astCacheMu.Unlock()
	if !ok {
		return nil, false
	}
	entry := v.(astCacheEntry)
	if ttlEnabled && time.Since(entry.storedAt) > ttl {
		return nil, false
	}
	return entry.node, true
}

func storeAST(key uint64, node ast.Node) {
	astCacheMu.Lock()
	astCache.Add(key, astCacheEntry{node: node, storedAt: time.Now()})
	astCacheMu.Unlock()
}

func compiledDelegate(shortCircuit bool, n ast.Node, order []string) eval.Compiled {
	delegateCacheMu.Lock()
	c := delegateCache
	delegateCacheMu.Unlock()
	return c.GetOrCompile(shortCircuit, n, order)
}
