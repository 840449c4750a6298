// Package cache holds recent search results in memory, keyed by an opaque
// session token handed to the browser.
package cache

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/sells-group/storescout/internal/model"
)

// DefaultTTL is how long a search result stays retrievable.
const DefaultTTL = 30 * time.Minute

// ResultCache is a TTL map of search results. Expired entries are swept
// lazily on writes.
type ResultCache struct {
	mu      sync.Mutex
	ttl     time.Duration
	entries map[string]*model.SearchResult
	now     func() time.Time
}

// New creates a ResultCache. A non-positive ttl falls back to DefaultTTL.
func New(ttl time.Duration) *ResultCache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &ResultCache{
		ttl:     ttl,
		entries: make(map[string]*model.SearchResult),
		now:     time.Now,
	}
}

// Put stores a result and returns the token that retrieves it.
func (c *ResultCache) Put(result *model.SearchResult) string {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.sweep()

	token := uuid.NewString()
	result.CreatedAt = c.now()
	c.entries[token] = result
	return token
}

// Get returns the result for token, or ok=false when the token is unknown
// or the entry has expired.
func (c *ResultCache) Get(token string) (*model.SearchResult, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	result, ok := c.entries[token]
	if !ok {
		return nil, false
	}
	if c.now().Sub(result.CreatedAt) > c.ttl {
		delete(c.entries, token)
		return nil, false
	}
	return result, true
}

// Delete drops the entry for token, if present.
func (c *ResultCache) Delete(token string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, token)
}

// Len returns the number of live entries.
func (c *ResultCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.sweep()
	return len(c.entries)
}

func (c *ResultCache) sweep() {
	cutoff := c.now().Add(-c.ttl)
	for token, result := range c.entries {
		if result.CreatedAt.Before(cutoff) {
			delete(c.entries, token)
		}
	}
}
