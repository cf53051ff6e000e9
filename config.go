package boolexpr

import (
	"time"

	"github.com/vhaisman/boolexpr/internal/parser"
)

// Config holds every tunable named in the specification's external
// interface. Values are set through Option functions passed to New, Parse,
// MustParse or TryParse, in the same functional-options style the teacher
// uses for its own BDD manager configuration (rudd.Nodesize,
// rudd.Maxnodesize, ...).
type Config struct {
	Strategy parser.Strategy

	EnableAliasSuggestions bool
	SuggestionMaxDistance  int
	SuggestionMaxItems     int

	EnableUnicodeNormalization bool
	UseShortCircuiting         bool
	EnableDebugLogging         bool

	AstMaxCacheSize      int
	AstEvictPercent      int
	EnableAstTtlEviction bool
	AstTtl               time.Duration

	DelegateMaxCacheSize      int
	DelegateEvictPercent      int
	EnableDelegateTtlEviction bool
	DelegateTtl               time.Duration
}

// Option configures a Config. Each Option mutates in place; With* functions
// return one, matching the pattern of every func(*configs) helper in the
// teacher's config.go.
type Option func(*Config)

func defaultConfig() *Config {
	return &Config{
		Strategy:                   parser.ShuntingYard,
		EnableAliasSuggestions:     true,
		SuggestionMaxDistance:      2,
		SuggestionMaxItems:         3,
		EnableUnicodeNormalization: true,
		UseShortCircuiting:         true,
		EnableDebugLogging:         false,
		AstMaxCacheSize:            1024,
		AstEvictPercent:            25,
		EnableAstTtlEviction:       false,
		AstTtl:                     10 * time.Minute,
		DelegateMaxCacheSize:       512,
		DelegateEvictPercent:       25,
		EnableDelegateTtlEviction:  false,
		DelegateTtl:                10 * time.Minute,
	}
}

// WithStrategy selects the parser algorithm (default ShuntingYard).
func WithStrategy(s parser.Strategy) Option {
	return func(c *Config) { c.Strategy = s }
}

// WithAliasSuggestions turns Levenshtein-based hints on unknown tokens on
// or off (default on).
func WithAliasSuggestions(enabled bool) Option {
	return func(c *Config) { c.EnableAliasSuggestions = enabled }
}

// WithSuggestionParams overrides the default edit-distance threshold (2)
// and maximum suggestion count (3).
func WithSuggestionParams(maxDistance, maxItems int) Option {
	return func(c *Config) {
		c.SuggestionMaxDistance = maxDistance
		c.SuggestionMaxItems = maxItems
	}
}

// WithUnicodeNormalization enables or disables NFKC normalization before
// tokenizing (default on).
func WithUnicodeNormalization(enabled bool) Option {
	return func(c *Config) { c.EnableUnicodeNormalization = enabled }
}

// WithShortCircuiting selects whether the compiled evaluator uses Go's
// native short-circuiting && / || for "&" / "|" (default on) or always
// evaluates both operands first.
func WithShortCircuiting(enabled bool) Option {
	return func(c *Config) { c.UseShortCircuiting = enabled }
}

// WithDebugLogging turns on logrus diagnostics in the BDD manager an
// Expression keeps for its BDD-backed queries (default off). The temporary
// managers built by EquivalentTo and by the order strategies do not log.
func WithDebugLogging(enabled bool) Option {
	return func(c *Config) { c.EnableDebugLogging = enabled }
}

// WithAstCacheSize sets the parser AST cache's fixed capacity. The cache is
// process-wide, so Parse resizes it (dropping whatever was cached) whenever
// it sees a Config whose AstMaxCacheSize differs from the cache's current
// size; concurrent callers that want a stable cache size should agree on
// the same value, or manage the cache directly with ConfigureASTCache.
func WithAstCacheSize(max int) Option {
	return func(c *Config) { c.AstMaxCacheSize = max }
}

// WithAstEvictPercent is retained for interface compatibility with the
// original percent-based eviction design; the golang-lru-backed cache
// evicts one least-recently-used entry at a time rather than in batches,
// so this value is accepted but currently has no effect.
func WithAstEvictPercent(pct int) Option {
	return func(c *Config) { c.AstEvictPercent = pct }
}

// WithAstTtlEviction additionally expires AST cache entries older than ttl,
// on top of the cache's capacity-based eviction.
func WithAstTtlEviction(enabled bool, ttl time.Duration) Option {
	return func(c *Config) {
		c.EnableAstTtlEviction = enabled
		c.AstTtl = ttl
	}
}

// WithDelegateCacheSize sets the compiled-evaluator cache's fixed capacity.
// Like WithAstCacheSize, this resizes a process-wide cache on first use by
// Evaluate/EvaluateMap whenever the requested size differs from the size
// currently active.
func WithDelegateCacheSize(max int) Option {
	return func(c *Config) { c.DelegateMaxCacheSize = max }
}

// WithDelegateEvictPercent mirrors WithAstEvictPercent for the delegate
// cache: accepted for interface compatibility, currently a no-op under
// golang-lru's per-entry eviction.
func WithDelegateEvictPercent(pct int) Option {
	return func(c *Config) { c.DelegateEvictPercent = pct }
}

// WithDelegateTtlEviction records a TTL setting for the compiled-evaluator
// cache. That cache has no time-based expiry and evicts by capacity only,
// so this value is accepted but currently has no effect.
func WithDelegateTtlEviction(enabled bool, ttl time.Duration) Option {
	return func(c *Config) {
		c.EnableDelegateTtlEviction = enabled
		c.DelegateTtl = ttl
	}
}
