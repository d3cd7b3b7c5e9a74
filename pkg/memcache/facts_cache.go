package memcache

import (
	"strings"
	"sync"
	"time"

	"voyago/internal/models/response_models"
)

// FactsCache keeps recently fetched destination facts in memory, keyed by the
// lower-cased destination name. Weather summaries and FX rates are stable well
// beyond a request burst; entries are never served past their TTL (30 minutes
// in the default wiring), which is the documented staleness bound.
type FactsCache struct {
	mu   sync.RWMutex
	ttl  time.Duration
	data map[string]factsEntry
}

type factsEntry struct {
	facts     *response_models.DestinationFacts
	expiresAt time.Time
}

func NewFactsCache(ttl time.Duration) *FactsCache {
	return &FactsCache{
		ttl:  ttl,
		data: make(map[string]factsEntry),
	}
}

func (c *FactsCache) Get(destination string) (*response_models.DestinationFacts, bool) {
	key := normalize(destination)

	c.mu.RLock()
	e, ok := c.data[key]
	c.mu.RUnlock()

	if !ok {
		return nil, false
	}
	if time.Now().After(e.expiresAt) {
		c.mu.Lock()
		delete(c.data, key)
		c.mu.Unlock()
		return nil, false
	}
	return e.facts, true
}

func (c *FactsCache) Set(destination string, facts *response_models.DestinationFacts) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[normalize(destination)] = factsEntry{
		facts:     facts,
		expiresAt: time.Now().Add(c.ttl),
	}
}

func normalize(destination string) string {
	return strings.ToLower(strings.TrimSpace(destination))
}
