package tinyregex

import (
	"github.com/dgraph-io/ristretto/v2"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Cache memoizes compiled patterns by their source text.
//
// Compilation errors are returned to the caller and never cached. A Cache is
// safe for concurrent use. Admission is asynchronous: a pattern compiled by
// Get may only be served from the cache once the write has been applied
// (see Wait).
//
// Example:
//
//	cache, err := tinyregex.NewCache(1024, tinyregex.DefaultConfig())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer cache.Close()
//	re, err := cache.Get(`\d+`)
type Cache struct {
	cache  *ristretto.Cache[string, *Regex]
	config Config
}

// NewCache creates a cache holding up to maxEntries compiled patterns, all
// compiled with config.
func NewCache(maxEntries int64, config Config) (*Cache, error) {
	if maxEntries < 1 {
		return nil, &ConfigError{Field: "maxEntries", Message: "must be at least 1"}
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	log := config.logger()

	cache, err := ristretto.NewCache(&ristretto.Config[string, *Regex]{
		NumCounters:        10 * maxEntries,
		MaxCost:            maxEntries,
		BufferItems:        64,
		IgnoreInternalCost: true,
		OnEvict: func(item *ristretto.Item[*Regex]) {
			if item.Value == nil {
				return
			}
			log.Debug("evicted compiled pattern", zap.String("pattern", item.Value.String()))
		},
	})
	if err != nil {
		return nil, errors.Wrap(err, "tinyregex: create pattern cache")
	}
	return &Cache{cache: cache, config: config}, nil
}

// Get returns the compiled form of pattern, compiling it on a miss.
func (c *Cache) Get(pattern string) (*Regex, error) {
	if re, ok := c.cache.Get(pattern); ok {
		return re, nil
	}
	re, err := CompileWithConfig(pattern, c.config)
	if err != nil {
		return nil, err
	}
	c.cache.Set(pattern, re, 1)
	return re, nil
}

// Wait blocks until every pending write has been applied.
func (c *Cache) Wait() {
	c.cache.Wait()
}

// Close stops the cache's background goroutines. The cache must not be used
// afterwards.
func (c *Cache) Close() {
	c.cache.Close()
}
