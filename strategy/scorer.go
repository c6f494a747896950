package strategy

import "github.com/mkalinowski/filler/placement"

// Scorer assigns a desirability score to a validated placement. Scores are
// only comparable within one strategy; cross-strategy magnitudes mean
// nothing.
type Scorer interface {
	Score(p *placement.Placement, ctx *Context) float64
	Type() string
}

// contactScale dominates any realistic cells-added value, so the
// conservative profile orders by territory touches first and breaks ties
// by piece size.
const contactScale = 1024.0

type greedyScorer struct{}

func (greedyScorer) Type() string { return "greedy" }
func (greedyScorer) Score(p *placement.Placement, _ *Context) float64 {
	return float64(p.CellsAdded)
}

type balancedScorer struct{}

func (balancedScorer) Type() string { return "balanced" }
func (balancedScorer) Score(p *placement.Placement, _ *Context) float64 {
	return float64(p.CellsAdded)*2.0 + float64(p.TerritoryTouches)
}

type conservativeScorer struct{}

func (conservativeScorer) Type() string { return "conservative" }
func (conservativeScorer) Score(p *placement.Placement, _ *Context) float64 {
	return float64(p.TerritoryTouches)*contactScale + float64(p.CellsAdded)
}

type aggressiveScorer struct{}

func (aggressiveScorer) Type() string { return "aggressive" }
func (aggressiveScorer) Score(p *placement.Placement, ctx *Context) float64 {
	return float64(p.CellsAdded)*10.0 + ctx.FloodFill(p)*2.0
}

type opportunisticScorer struct{}

func (opportunisticScorer) Type() string { return "opportunistic" }
func (opportunisticScorer) Score(p *placement.Placement, ctx *Context) float64 {
	return ctx.WeakPositions(p)*2.5 + float64(p.CellsAdded)*5.0
}

type defensiveScorer struct{}

func (defensiveScorer) Type() string { return "defensive" }
func (defensiveScorer) Score(p *placement.Placement, ctx *Context) float64 {
	return ctx.Density(p)*2.0 +
		float64(p.TerritoryTouches)*2.0 +
		ctx.EdgeControl(p)*1.5
}

type blockingScorer struct{}

func (blockingScorer) Type() string { return "blocking" }
func (blockingScorer) Score(p *placement.Placement, ctx *Context) float64 {
	return ctx.WeakPositions(p)*1.8 +
		float64(p.TerritoryTouches)*3.0 +
		float64(p.CellsAdded)*3.0
}

type advancedScorer struct{}

func (advancedScorer) Type() string { return "advanced" }
func (advancedScorer) Score(p *placement.Placement, ctx *Context) float64 {
	return float64(p.CellsAdded)*10.0 +
		ctx.FloodFill(p)*1.5 +
		ctx.WeakPositions(p)*2.0 +
		ctx.Density(p)*1.2 +
		ctx.EdgeControl(p)*0.5
}

type territorialScorer struct{}

func (territorialScorer) Type() string { return "territorial" }
func (territorialScorer) Score(p *placement.Placement, ctx *Context) float64 {
	return float64(p.CellsAdded)*8.0 +
		ctx.FloodFill(p)*1.5 +
		float64(p.TerritoryTouches)*1.5 +
		ctx.EdgeControl(p)*0.8
}

var scorers = map[Strategy]Scorer{
	GreedyExpansion:     greedyScorer{},
	Balanced:            balancedScorer{},
	Conservative:        conservativeScorer{},
	AggressiveExpansion: aggressiveScorer{},
	Opportunistic:       opportunisticScorer{},
	Defensive:           defensiveScorer{},
	StrategicBlocking:   blockingScorer{},
	AdvancedBalanced:    advancedScorer{},
	TerritorialControl:  territorialScorer{},
}

// ScorerFor returns the scorer implementing s, falling back to the default
// profile for values outside the enum.
func ScorerFor(s Strategy) Scorer {
	if sc, ok := scorers[s]; ok {
		return sc
	}
	return scorers[Default]
}
