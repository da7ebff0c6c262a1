// Package cache holds the in-memory cache tiers: the exact-fingerprint result
// cache and the keyword-substring index.
package cache

import (
	"sync"

	"go.uber.org/zap"

	"github.com/commentguard/commentguard/internal/core"
)

// ResultCache is an in-memory implementation of the core.ResultCache
// interface keyed by comment fingerprint. Entries are never evicted; growth
// is unbounded for the process lifetime. A production deployment would want a
// size or TTL bound on top.
type ResultCache struct {
	entries map[string]*core.ClassificationResult
	mu      sync.RWMutex
	logger  *zap.Logger
}

// NewResultCache creates a new in-memory result cache.
func NewResultCache(logger *zap.Logger) *ResultCache {
	return &ResultCache{
		entries: make(map[string]*core.ClassificationResult),
		logger:  logger,
	}
}

// Get retrieves the cached result for a fingerprint.
func (c *ResultCache) Get(fingerprint string) (*core.ClassificationResult, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	result, ok := c.entries[fingerprint]
	return result, ok
}

// Set stores a result under a fingerprint. Duplicate inserts for the same
// fingerprint carry identical values, since the fingerprint is a function of
// the comment content; last writer wins.
func (c *ResultCache) Set(fingerprint string, result *core.ClassificationResult) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[fingerprint] = result
}

// Len reports the number of cached entries.
func (c *ResultCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.entries)
}
