package snapshot

import (
	"context"
	"sync"
	"time"

	"coinvalue/internal/coin"
)

// entry stores the snapshots loaded for one as-of day.
type entry struct {
	expiresAt time.Time
	snaps     []coin.SeriesSnapshot
}

// Cache keeps loaded snapshots per as-of day. Entries live for TTL, or until
// Invalidate when TTL is zero. The owner decides when data is stale.
type Cache struct {
	Source   Source
	TTL      time.Duration
	MaxItems int
	// Now defaults to time.Now.
	Now func() time.Time

	mu    sync.RWMutex
	items map[string]entry // key: as-of day

	dates        []time.Time
	datesExpires time.Time
	datesLoaded  bool
}

// NewCache wraps src.
func NewCache(src Source, ttl time.Duration, maxItems int) *Cache {
	return &Cache{Source: src, TTL: ttl, MaxItems: maxItems}
}

func (c *Cache) now() time.Time {
	if c.Now != nil {
		return c.Now()
	}
	return time.Now()
}

func (c *Cache) fresh(e entry, now time.Time) bool {
	return c.TTL <= 0 || now.Before(e.expiresAt)
}

// Load implements Source using cached snapshots when valid. When the source
// fails and an expired entry exists, the expired entry is returned.
func (c *Cache) Load(ctx context.Context, asOf time.Time) ([]coin.SeriesSnapshot, error) {
	key := asOf.UTC().Format(coin.DateLayout)
	now := c.now()

	c.mu.RLock()
	e, ok := c.items[key]
	c.mu.RUnlock()
	if ok && c.fresh(e, now) {
		return e.snaps, nil
	}

	snaps, err := c.Source.Load(ctx, asOf)
	if err != nil {
		if ok {
			return e.snaps, nil
		}
		return nil, err
	}

	c.mu.Lock()
	if c.items == nil {
		c.items = make(map[string]entry)
	}
	c.items[key] = entry{expiresAt: now.Add(c.TTL), snaps: snaps}
	// best-effort cap cache size
	if c.MaxItems > 0 && len(c.items) > c.MaxItems {
		for k, v := range c.items {
			if k != key && !c.fresh(v, now) {
				delete(c.items, k)
			}
		}
		for k := range c.items {
			if len(c.items) <= c.MaxItems {
				break
			}
			if k != key {
				delete(c.items, k)
			}
		}
	}
	c.mu.Unlock()
	return snaps, nil
}

// Dates implements Source.
func (c *Cache) Dates(ctx context.Context) ([]time.Time, error) {
	now := c.now()
	c.mu.RLock()
	if c.datesLoaded && (c.TTL <= 0 || now.Before(c.datesExpires)) {
		dates := c.dates
		c.mu.RUnlock()
		return dates, nil
	}
	c.mu.RUnlock()

	dates, err := c.Source.Dates(ctx)
	if err != nil {
		return nil, err
	}
	c.mu.Lock()
	c.dates = dates
	c.datesExpires = now.Add(c.TTL)
	c.datesLoaded = true
	c.mu.Unlock()
	return dates, nil
}

// Invalidate drops every cached entry.
func (c *Cache) Invalidate() {
	c.mu.Lock()
	c.items = nil
	c.dates = nil
	c.datesLoaded = false
	c.mu.Unlock()
}

// Reload drops the entry for asOf and loads it again.
func (c *Cache) Reload(ctx context.Context, asOf time.Time) ([]coin.SeriesSnapshot, error) {
	c.mu.Lock()
	delete(c.items, asOf.UTC().Format(coin.DateLayout))
	c.mu.Unlock()
	return c.Load(ctx, asOf)
}

// Len reports how many as-of days are cached.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}
