package strategy

import (
	"sort"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"

	"github.com/mkalinowski/filler/gamestate"
	"github.com/mkalinowski/filler/placement"
)

// Scored pairs a placement with its score under some strategy.
type Scored struct {
	Placement *placement.Placement
	Score     float64
}

// BatchScorer scores whole candidate batches against one game state,
// sharing the signal caches across every placement in a batch. All
// placements in one ScoreAll call must use the same piece shape; the
// caches key on a single covered position.
type BatchScorer struct {
	ctx *Context
}

func NewBatchScorer(gs *gamestate.GameState, opts ...Option) *BatchScorer {
	return &BatchScorer{ctx: NewContext(gs, opts...)}
}

// ScoreAll scores every placement with the given scorer, in input order.
// Caches are reset first, so back-to-back batches never see stale entries.
func (b *BatchScorer) ScoreAll(placements []*placement.Placement, scorer Scorer) []Scored {
	b.ctx.Reset()
	return lo.Map(placements, func(p *placement.Placement, _ int) Scored {
		return Scored{Placement: p, Score: scorer.Score(p, b.ctx)}
	})
}

// CacheStats returns the flood-fill and density cache counters accumulated
// since the last reset.
func (b *BatchScorer) CacheStats() (floodFill, density CacheStats) {
	return b.ctx.CacheStats()
}

// ScoreAll scores placements against gs under the named strategy with a
// fresh batch scorer.
func ScoreAll(placements []*placement.Placement, gs *gamestate.GameState,
	strat Strategy, opts ...Option) []Scored {
	return NewBatchScorer(gs, opts...).ScoreAll(placements, ScorerFor(strat))
}

// Select returns the highest-scoring placement under the named strategy,
// or nil when no candidates exist. Ties go to the later candidate, so with
// row-major candidate generation the winner is reproducible run to run.
func Select(placements []*placement.Placement, gs *gamestate.GameState,
	strat Strategy, opts ...Option) *placement.Placement {
	if len(placements) == 0 {
		return nil
	}
	b := NewBatchScorer(gs, opts...)
	best := pickBest(b.ScoreAll(placements, ScorerFor(strat)))
	if best != nil {
		ff, dens := b.CacheStats()
		log.Debug().
			Stringer("strategy", strat).
			Int("candidates", len(placements)).
			Stringer("anchor", best.Anchor).
			Float64("flood-hit-rate", ff.HitRate()).
			Float64("density-hit-rate", dens.HitRate()).
			Msg("selected placement")
	}
	return best
}

// pickBest scans for the maximum score. The comparison is written so that
// a later candidate replaces an equal-scoring earlier one, and so that a
// NaN score compares as equal rather than poisoning the scan.
func pickBest(scored []Scored) *placement.Placement {
	var best *placement.Placement
	bestScore := 0.0
	for _, s := range scored {
		if best == nil || !(bestScore > s.Score) {
			best = s.Placement
			bestScore = s.Score
		}
	}
	return best
}

// RankAll returns every placement scored and sorted best first. The sort
// is stable, so equal scores keep their generation order.
func RankAll(placements []*placement.Placement, gs *gamestate.GameState,
	strat Strategy, opts ...Option) []Scored {
	scored := ScoreAll(placements, gs, strat, opts...)
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})
	return scored
}
