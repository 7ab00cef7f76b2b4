// Package regexcache memoizes compiled regular expressions by their source
// text.
//
// Compiled *regexp.Regexp values are immutable and safe for concurrent use,
// so a cache hit hands back the shared compiled value directly. The mapping
// only grows: patterns are never evicted for the lifetime of a Cache, which
// matches its intended use of one Cache per registered function.
package regexcache

import (
	"errors"
	"fmt"
	"regexp"
	"sync"
)

var (
	// ErrCompile indicates the pattern source is not a valid regular
	// expression.
	ErrCompile = errors.New("invalid regex pattern")

	// ErrUnavailable indicates the cache state was poisoned by an earlier
	// panic and can no longer be used. Fatal for the invocation; not
	// retriable.
	ErrUnavailable = errors.New("regex cache unavailable")
)

// CompileFunc compiles a pattern source. Replaced in tests to observe or
// fail compilation.
type CompileFunc func(pattern string) (*regexp.Regexp, error)

// Cache is a grow-only, thread-safe cache of compiled regular expressions
// keyed by their exact source string.
type Cache struct {
	compile CompileFunc

	mu       sync.Mutex
	poisoned bool
	entries  map[string]*regexp.Regexp
}

// Option configures a Cache.
type Option func(*Cache)

// WithCompileFunc overrides the pattern compiler. Used by tests to count
// compiler invocations or inject failures.
func WithCompileFunc(fn CompileFunc) Option {
	return func(c *Cache) { c.compile = fn }
}

// New creates an empty cache compiling with regexp.Compile.
func New(opts ...Option) *Cache {
	c := &Cache{
		compile: regexp.Compile,
		entries: make(map[string]*regexp.Regexp),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Get returns the compiled form of pattern, compiling and storing it on
// first use. Concurrent callers hitting an already-cached pattern never wait
// on another pattern's compilation: the lock covers only the lookup and the
// insert, not the compile.
//
// Two goroutines racing on the same uncached pattern may both compile it;
// the first insert wins and both receive a valid compiled value. The mapping
// never exposes a partial entry.
func (c *Cache) Get(pattern string) (*regexp.Regexp, error) {
	c.mu.Lock()
	if c.poisoned {
		c.mu.Unlock()
		return nil, fmt.Errorf("%w: poisoned by an earlier panic", ErrUnavailable)
	}
	re, ok := c.entries[pattern]
	c.mu.Unlock()
	if ok {
		cacheHits.Inc()
		return re, nil
	}
	cacheMisses.Inc()

	re, err := c.compile(pattern)
	if err != nil {
		// A bad pattern does not poison the cache for other patterns.
		compileErrors.Inc()
		return nil, fmt.Errorf("%w: %s: %v", ErrCompile, pattern, err)
	}

	return c.insert(pattern, re)
}

func (c *Cache) insert(pattern string, re *regexp.Regexp) (*regexp.Regexp, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.poisoned {
		return nil, fmt.Errorf("%w: poisoned by an earlier panic", ErrUnavailable)
	}
	defer func() {
		// A panic while mutating shared state leaves the cache in an
		// unknown condition; mark it unusable before propagating.
		if r := recover(); r != nil {
			c.poisoned = true
			panic(r)
		}
	}()
	if existing, ok := c.entries[pattern]; ok {
		return existing, nil
	}
	c.entries[pattern] = re
	return re, nil
}

// Len reports the number of cached patterns.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}
