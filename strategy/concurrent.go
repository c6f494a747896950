package strategy

import (
	"golang.org/x/sync/errgroup"

	"github.com/mkalinowski/filler/gamestate"
	"github.com/mkalinowski/filler/placement"
)

// ScoreAllConcurrent scores a batch across several goroutines, one signal
// context per worker, and returns scores in input order. The caches are
// per-worker rather than shared, trading some duplicate computation for
// lock-free scoring; results are identical to the sequential path because
// every signal is a pure function of the grid and the placement.
func ScoreAllConcurrent(placements []*placement.Placement, gs *gamestate.GameState,
	strat Strategy, workers int, opts ...Option) []Scored {

	if workers <= 1 || len(placements) < 2 {
		return ScoreAll(placements, gs, strat, opts...)
	}
	if workers > len(placements) {
		workers = len(placements)
	}

	scorer := ScorerFor(strat)
	out := make([]Scored, len(placements))

	var g errgroup.Group
	chunk := (len(placements) + workers - 1) / workers
	for start := 0; start < len(placements); start += chunk {
		end := start + chunk
		if end > len(placements) {
			end = len(placements)
		}
		start, end := start, end
		g.Go(func() error {
			ctx := NewContext(gs, opts...)
			for i := start; i < end; i++ {
				out[i] = Scored{
					Placement: placements[i],
					Score:     scorer.Score(placements[i], ctx),
				}
			}
			return nil
		})
	}
	// Workers never return errors; Wait is just the join point.
	_ = g.Wait()
	return out
}

// SelectConcurrent is Select with a parallel scoring pass.
func SelectConcurrent(placements []*placement.Placement, gs *gamestate.GameState,
	strat Strategy, workers int, opts ...Option) *placement.Placement {

	if len(placements) == 0 {
		return nil
	}
	return pickBest(ScoreAllConcurrent(placements, gs, strat, workers, opts...))
}
