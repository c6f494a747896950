package strategy

import "github.com/mkalinowski/filler/gamestate"

// Cache memoizes an integer signal keyed by board position. Within one
// batch every candidate placement uses the same piece shape, so the
// absolute position of a placement's first filled cell identifies the
// whole covered-cell set and the cached value is exact, never approximate.
type Cache struct {
	entries map[gamestate.Position]int
	hits    int
	misses  int
}

func NewCache() *Cache {
	return &Cache{entries: make(map[gamestate.Position]int)}
}

// GetOrCompute returns the cached value for key, invoking compute and
// storing the result on a miss.
func (c *Cache) GetOrCompute(key gamestate.Position, compute func() int) int {
	if v, ok := c.entries[key]; ok {
		c.hits++
		return v
	}
	c.misses++
	v := compute()
	c.entries[key] = v
	return v
}

// Reset discards every entry and the hit/miss counters. Callers must reset
// between batches: entries are only valid for one grid and one piece shape.
func (c *Cache) Reset() {
	c.entries = make(map[gamestate.Position]int)
	c.hits = 0
	c.misses = 0
}

func (c *Cache) Len() int { return len(c.entries) }

// Stats returns a snapshot of the cache's effectiveness counters.
func (c *Cache) Stats() CacheStats {
	return CacheStats{Entries: len(c.entries), Hits: c.hits, Misses: c.misses}
}

// CacheStats is a point-in-time view of one cache's counters.
type CacheStats struct {
	Entries int
	Hits    int
	Misses  int
}

// HitRate returns hits over total lookups, or 0 when nothing was looked up.
func (s CacheStats) HitRate() float64 {
	total := s.Hits + s.Misses
	if total == 0 {
		return 0
	}
	return float64(s.Hits) / float64(total)
}
