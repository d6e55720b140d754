package content

import (
	"encoding/json"
	"sync"

	"github.com/portfolio-content-api/internal/metrics"
)

// Cache memoizes parsed documents by logical path.
type Cache interface {
	Get(path string) (json.RawMessage, bool)
	Put(path string, doc json.RawMessage)
	Len() int
}

// MemoryCache is an append-only, process-lifetime document cache. Entries are
// never evicted or invalidated. Safe for concurrent use.
type MemoryCache struct {
	mu   sync.RWMutex
	docs map[string]json.RawMessage
}

// NewMemoryCache creates an empty MemoryCache
func NewMemoryCache() *MemoryCache {
	return &MemoryCache{docs: make(map[string]json.RawMessage)}
}

// Get returns the cached document for path
func (c *MemoryCache) Get(path string) (json.RawMessage, bool) {
	c.mu.RLock()
	doc, ok := c.docs[path]
	c.mu.RUnlock()

	if ok {
		metrics.CacheLookups.WithLabelValues(metrics.CacheHit).Inc()
	} else {
		metrics.CacheLookups.WithLabelValues(metrics.CacheMiss).Inc()
	}
	return doc, ok
}

// Put stores doc under path. A concurrent load of the same path may store it
// twice; the last write wins and both values are identical.
func (c *MemoryCache) Put(path string, doc json.RawMessage) {
	c.mu.Lock()
	c.docs[path] = doc
	n := len(c.docs)
	c.mu.Unlock()

	metrics.CacheEntries.Set(float64(n))
}

// Len returns the number of cached documents
func (c *MemoryCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.docs)
}

// NopCache never stores anything, so every load reads the source
type NopCache struct{}

func (NopCache) Get(string) (json.RawMessage, bool) { return nil, false }
func (NopCache) Put(string, json.RawMessage)        {}
func (NopCache) Len() int                           { return 0 }
