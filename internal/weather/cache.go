package weather

import (
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
)

type cacheEntry[V any] struct {
	value     V
	expiresAt time.Time
}

// Cache is a TTL map. Expired entries are dropped lazily on Set.
type Cache[V any] struct {
	mu    sync.RWMutex
	ttl   time.Duration
	clock clockwork.Clock
	m     map[string]cacheEntry[V]
}

func NewCache[V any](ttl time.Duration, clock clockwork.Clock) *Cache[V] {
	return &Cache[V]{
		ttl:   ttl,
		clock: clock,
		m:     make(map[string]cacheEntry[V]),
	}
}

func (c *Cache[V]) Get(key string) (V, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	entry, ok := c.m[key]
	if !ok || c.clock.Now().After(entry.expiresAt) {
		var zero V
		return zero, false
	}
	return entry.value, true
}

func (c *Cache[V]) Set(key string, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()
	now := c.clock.Now()
	for k, e := range c.m {
		if now.After(e.expiresAt) {
			delete(c.m, k)
		}
	}
	c.m[key] = cacheEntry[V]{value: value, expiresAt: now.Add(c.ttl)}
}

func (c *Cache[V]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.m)
}

// gridKey snaps coordinates to two decimals (about 1 km), so nearby lookups
// share one upstream call.
func gridKey(lat, lon float64) string {
	return fmt.Sprintf("%.2f,%.2f", snap(lat), snap(lon))
}

func snap(v float64) float64 {
	return math.Round(v*100) / 100
}
