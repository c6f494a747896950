package bench

import (
	"golang.org/x/sync/errgroup"

	"github.com/mkalinowski/filler/gamestate"
	"github.com/mkalinowski/filler/placement"
	"github.com/mkalinowski/filler/strategy"
)

type boardFixture struct {
	gs         *gamestate.GameState
	candidates []*placement.Placement
}

// StrategyResult is one profile's timings over a shared set of boards.
type StrategyResult struct {
	Strategy strategy.Strategy
	Metrics  *Metrics
}

// CompareStrategies times a full choose-move pass (candidate generation
// plus scoring plus selection) for every profile over rounds random
// boards. Each profile sees the same boards, one goroutine per profile.
func CompareStrategies(width, height, territory, pieceSize, rounds int) []StrategyResult {
	states := make([]*boardFixture, rounds)
	for i := range states {
		gs := RandomGameState(width, height, territory, pieceSize)
		states[i] = &boardFixture{gs: gs, candidates: placement.FindAll(gs)}
	}

	strategies := strategy.All()
	results := make([]StrategyResult, len(strategies))

	var g errgroup.Group
	for i, strat := range strategies {
		i, strat := i, strat
		g.Go(func() error {
			m := NewMetrics()
			for _, fixture := range states {
				timer := StartTimer()
				strategy.Select(fixture.candidates, fixture.gs, strat)
				m.Record(timer.Elapsed())
			}
			results[i] = StrategyResult{Strategy: strat, Metrics: m}
			return nil
		})
	}
	_ = g.Wait()
	return results
}
