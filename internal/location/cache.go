package location

import (
	"container/list"
	"context"
	"strings"
	"sync"

	"github.com/bihius/weather-app/internal/observability"
	"github.com/bihius/weather-app/internal/providers/openstreetmap"
)

const DefaultCacheSize = 256

// CachedProvider wraps a SearchProvider with an in-memory LRU cache keyed by
// the normalized query. Nominatim allows one request per second, so repeated
// searches are served locally.
type CachedProvider struct {
	inner   SearchProvider
	metrics *observability.Metrics

	mu         sync.Mutex
	maxEntries int
	order      *list.List
	entries    map[string]*list.Element
}

type cacheEntry struct {
	key     string
	results []openstreetmap.SearchResult
}

func NewCachedProvider(inner SearchProvider, maxEntries int, metrics *observability.Metrics) *CachedProvider {
	if maxEntries <= 0 {
		maxEntries = DefaultCacheSize
	}
	return &CachedProvider{
		inner:      inner,
		metrics:    metrics,
		maxEntries: maxEntries,
		order:      list.New(),
		entries:    make(map[string]*list.Element),
	}
}

func (c *CachedProvider) Search(ctx context.Context, query string) ([]openstreetmap.SearchResult, error) {
	key := strings.ToLower(strings.Join(strings.Fields(query), " "))
	if results, ok := c.get(key); ok {
		c.count("hit")
		return results, nil
	}
	c.count("miss")

	results, err := c.inner.Search(ctx, query)
	if err != nil {
		return nil, err
	}
	// Only cache non-empty results so a transient "nothing found" is retried.
	if len(results) > 0 {
		c.put(key, results)
	}
	return results, nil
}

// Len returns the number of cached queries.
func (c *CachedProvider) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.order.Len()
}

func (c *CachedProvider) get(key string) ([]openstreetmap.SearchResult, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	el, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	c.order.MoveToFront(el)
	return el.Value.(*cacheEntry).results, true
}

func (c *CachedProvider) put(key string, results []openstreetmap.SearchResult) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if el, ok := c.entries[key]; ok {
		el.Value.(*cacheEntry).results = results
		c.order.MoveToFront(el)
		return
	}

	c.entries[key] = c.order.PushFront(&cacheEntry{key: key, results: results})
	if c.order.Len() > c.maxEntries {
		oldest := c.order.Back()
		c.order.Remove(oldest)
		delete(c.entries, oldest.Value.(*cacheEntry).key)
	}
}

func (c *CachedProvider) count(result string) {
	if c.metrics != nil {
		c.metrics.GeocodeCache.WithLabelValues(result).Inc()
	}
}
