package store

import (
	"fmt"
	"time"

	"github.com/dgraph-io/ristretto"

	"mahjongev/internal/response"
)

// ResultCache memoizes full analysis responses keyed by request hash,
// mirroring common/cache/ristretto.go's GeneralCache, specialized to
// this service's one value type.
type ResultCache struct {
	cache *ristretto.Cache
	ttl   time.Duration
}

// NewResultCache builds a cache with the given max cost (bytes) and
// default TTL.
func NewResultCache(maxCostBytes int64, ttl time.Duration) (*ResultCache, error) {
	c, err := ristretto.NewCache(&ristretto.Config{
		NumCounters: 1e7,
		MaxCost:     maxCostBytes,
		BufferItems: 64,
	})
	if err != nil {
		return nil, fmt.Errorf("store: new ristretto cache: %w", err)
	}
	return &ResultCache{cache: c, ttl: ttl}, nil
}

// Get returns the cached response for requestHash, if present.
func (c *ResultCache) Get(requestHash string) (*response.Analysis, bool) {
	v, ok := c.cache.Get(requestHash)
	if !ok {
		return nil, false
	}
	resp, ok := v.(*response.Analysis)
	return resp, ok
}

// Set stores resp under requestHash with the cache's default TTL.
func (c *ResultCache) Set(requestHash string, resp *response.Analysis) bool {
	return c.cache.SetWithTTL(requestHash, resp, 1, c.ttl)
}

func (c *ResultCache) Close() {
	c.cache.Close()
}
