package regexcache

import (
	"fmt"
	"regexp"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCache_GetCompilesOnce(t *testing.T) {
	var compiles int
	c := New(WithCompileFunc(func(pattern string) (*regexp.Regexp, error) {
		compiles++
		return regexp.Compile(pattern)
	}))

	first, err := c.Get(`(a)(b)`)
	require.NoError(t, err)
	require.NotNil(t, first)

	second, err := c.Get(`(a)(b)`)
	require.NoError(t, err)

	assert.Equal(t, 1, compiles, "second lookup must be served from the cache")
	assert.Same(t, first, second, "cache hit must return the shared compiled value")
	assert.Equal(t, 1, c.Len())
}

func TestCache_GetDistinctPatterns(t *testing.T) {
	c := New()

	a, err := c.Get(`a+`)
	require.NoError(t, err)
	b, err := c.Get(`b+`)
	require.NoError(t, err)

	assert.NotSame(t, a, b)
	assert.Equal(t, 2, c.Len())
}

func TestCache_GetInvalidPattern(t *testing.T) {
	c := New()

	_, err := c.Get(`(`)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrCompile)
	assert.Contains(t, err.Error(), "(", "error must identify the invalid pattern")
	assert.Equal(t, 0, c.Len(), "failed compilation must not be cached")
}

func TestCache_CompileFailureDoesNotPoison(t *testing.T) {
	c := New()

	_, err := c.Get(`(`)
	require.Error(t, err)

	// Other patterns keep working after a failed compilation.
	re, err := c.Get(`\d+`)
	require.NoError(t, err)
	assert.Equal(t, "123", re.FindString("abc-123"))
}

func TestCache_PoisonedFailsGet(t *testing.T) {
	c := New()
	_, err := c.Get(`a`)
	require.NoError(t, err)

	c.mu.Lock()
	c.poisoned = true
	c.mu.Unlock()

	_, err = c.Get(`a`)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnavailable)

	_, err = c.Get(`b`)
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestCache_InsertRaceKeepsFirstEntry(t *testing.T) {
	c := New()

	first, err := regexp.Compile(`x+`)
	require.NoError(t, err)
	second, err := regexp.Compile(`x+`)
	require.NoError(t, err)

	got, err := c.insert(`x+`, first)
	require.NoError(t, err)
	assert.Same(t, first, got)

	// A racing goroutine that also compiled the pattern loses the insert
	// but receives the already-stored value.
	got, err = c.insert(`x+`, second)
	require.NoError(t, err)
	assert.Same(t, first, got)
	assert.Equal(t, 1, c.Len())
}

func TestCache_ConcurrentGet(t *testing.T) {
	c := New()

	const goroutines = 32
	patterns := []string{`(a)(b)`, `\d+`, `[a-z]+-\d+`, `^x`}

	var wg sync.WaitGroup
	errs := make(chan error, goroutines*len(patterns))
	for g := 0; g < goroutines; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for _, p := range patterns {
				re, err := c.Get(p)
				if err != nil {
					errs <- err
					continue
				}
				if re == nil {
					errs <- fmt.Errorf("nil regexp for %s", p)
				}
			}
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		t.Errorf("concurrent Get failed: %v", err)
	}
	assert.Equal(t, len(patterns), c.Len())
}
