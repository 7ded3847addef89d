package cache

import (
	"context"
	"sync"
	"time"

	apppartner "github.com/stockroom/backend/internal/application/partner"
	"github.com/stockroom/backend/internal/domain/partner"
)

// InMemoryCountryCache caches the country list in process memory.
// Suitable for single-instance deployments and testing; distributed
// deployments should use RedisCountryCache instead.
type InMemoryCountryCache struct {
	mu        sync.RWMutex
	countries []partner.Country
	expiresAt time.Time
	ttl       time.Duration
	now       func() time.Time
}

// NewInMemoryCountryCache creates an in-memory country cache.
// A zero ttl means entries never expire.
func NewInMemoryCountryCache(ttl time.Duration) *InMemoryCountryCache {
	return &InMemoryCountryCache{
		ttl: ttl,
		now: time.Now,
	}
}

// Get returns the cached country list, reporting a miss when empty or expired.
func (c *InMemoryCountryCache) Get(ctx context.Context) ([]partner.Country, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.countries == nil {
		return nil, false
	}
	if c.ttl > 0 && c.now().After(c.expiresAt) {
		return nil, false
	}

	// Return a copy so callers cannot mutate the cached slice
	out := make([]partner.Country, len(c.countries))
	copy(out, c.countries)
	return out, true
}

// Set stores the country list, resetting the expiry window.
func (c *InMemoryCountryCache) Set(ctx context.Context, countries []partner.Country) {
	stored := make([]partner.Country, len(countries))
	copy(stored, countries)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.countries = stored
	if c.ttl > 0 {
		c.expiresAt = c.now().Add(c.ttl)
	}
}

// Invalidate drops the cached country list.
func (c *InMemoryCountryCache) Invalidate(ctx context.Context) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.countries = nil
	c.expiresAt = time.Time{}
}

var _ apppartner.CountryCache = (*InMemoryCountryCache)(nil)
