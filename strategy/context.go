package strategy

import (
	"github.com/mkalinowski/filler/gamestate"
	"github.com/mkalinowski/filler/heuristics"
	"github.com/mkalinowski/filler/placement"
)

// Option adjusts a scoring context at construction.
type Option func(*Context)

// WithFloodFillBound caps flood-fill expansion per placement, for huge
// boards where a full traversal per candidate costs too much. Zero or
// negative means unbounded.
func WithFloodFillBound(n int) Option {
	return func(c *Context) {
		if n < 0 {
			n = 0
		}
		c.floodBound = n
	}
}

// Context carries the game state and per-batch caches through a scoring
// pass. The flood-fill and density signals memoize their raw integer
// metrics, so a cached read reproduces the uncached score bit for bit.
type Context struct {
	game       *gamestate.GameState
	floodFill  *Cache
	density    *Cache
	floodBound int
}

func NewContext(gs *gamestate.GameState, opts ...Option) *Context {
	c := &Context{game: gs, floodFill: NewCache(), density: NewCache()}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Context) Game() *gamestate.GameState { return c.game }

// cacheKey identifies a placement within a batch: with one fixed shape per
// batch, the first covered cell determines the rest.
func cacheKey(p *placement.Placement) (gamestate.Position, bool) {
	covered := p.CoveredPositions()
	if len(covered) == 0 {
		return gamestate.Position{}, false
	}
	return covered[0], true
}

// FloodFill returns the memoized territory-growth signal for p.
func (c *Context) FloodFill(p *placement.Placement) float64 {
	key, ok := cacheKey(p)
	if !ok {
		return 0
	}
	reachable := c.floodFill.GetOrCompute(key, func() int {
		return heuristics.PlacementReachableBounded(p, c.game, c.floodBound)
	})
	return float64(reachable) * heuristics.FloodFillMultiplier
}

// Density returns the memoized consolidation signal for p.
func (c *Context) Density(p *placement.Placement) float64 {
	covered := p.CoveredPositions()
	if len(covered) == 0 {
		return 0
	}
	sum := c.density.GetOrCompute(covered[0], func() int {
		return heuristics.NearbyTerritorySum(p, c.game)
	})
	return float64(sum) * heuristics.DensityFactor / float64(len(covered))
}

// WeakPositions returns the opponent-weakness signal for p. Cheap enough
// that memoizing it would cost more than recomputing.
func (c *Context) WeakPositions(p *placement.Placement) float64 {
	return heuristics.DetectWeakPositions(p, c.game)
}

// EdgeControl returns the border-presence signal for p.
func (c *Context) EdgeControl(p *placement.Placement) float64 {
	return heuristics.AnalyzeEdgeControl(p, c.game.Grid())
}

// Reset clears both caches. Required before reusing a context for a new
// grid or a new piece shape.
func (c *Context) Reset() {
	c.floodFill.Reset()
	c.density.Reset()
}

// CacheStats returns the flood-fill and density cache counters.
func (c *Context) CacheStats() (floodFill, density CacheStats) {
	return c.floodFill.Stats(), c.density.Stats()
}
