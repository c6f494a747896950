// Package heuristics contains the territory analyzer: pure functions
// computing secondary signal values for a candidate placement. Analyzers
// never fail; degenerate inputs contribute 0.
package heuristics

import (
	"github.com/mkalinowski/filler/gamestate"
	"github.com/mkalinowski/filler/placement"
)

const (
	// FloodFillMultiplier scales the reachable-empty-cell count in
	// AnalyzeFloodFill. Higher-level scorers reuse the raw count with
	// their own weights.
	FloodFillMultiplier = 2.5

	weakHighBonus = 3.0
	weakLowBonus  = 1.5

	// DensityFactor scales the per-cell nearby-territory count.
	DensityFactor = 0.8

	cornerBonus = 2.0
	edgeBonus   = 1.0
)

// AnalyzeFloodFill estimates the territory growth potential of a placement:
// the count of empty cells reachable after the piece lands, times a fixed
// multiplier. The placement's covered cells are treated as a transient
// patch of own-last-move cells over the shared read-only grid; the grid is
// never cloned or mutated.
func AnalyzeFloodFill(p *placement.Placement, gs *gamestate.GameState) float64 {
	reachable := reachableEmpty(gs.Grid(), gs.Player(), p.CoveredPositions(), true, -1)
	return float64(reachable) * FloodFillMultiplier
}

// PlacementReachable returns the raw reachable-empty count behind
// AnalyzeFloodFill, for callers that memoize the integer metric.
func PlacementReachable(p *placement.Placement, gs *gamestate.GameState) int {
	return reachableEmpty(gs.Grid(), gs.Player(), p.CoveredPositions(), true, -1)
}

// PlacementReachableBounded is PlacementReachable with an expansion cap.
// maxIterations <= 0 means unbounded.
func PlacementReachableBounded(p *placement.Placement, gs *gamestate.GameState,
	maxIterations int) int {
	if maxIterations <= 0 {
		maxIterations = -1
	}
	return reachableEmpty(gs.Grid(), gs.Player(), p.CoveredPositions(), true, maxIterations)
}

// DetectWeakPositions scores a placement by how thinly the opponent holds
// the ground around it. Covered cells with fewer than 2 opponent neighbors
// earn a high bonus, fewer than 4 a smaller one.
func DetectWeakPositions(p *placement.Placement, gs *gamestate.GameState) float64 {
	grid := gs.Grid()
	opponent := gs.Player().Opponent()

	score := 0.0
	for _, pos := range p.CoveredPositions() {
		if !grid.Valid(pos) {
			continue
		}
		switch n := OpponentNeighbors(grid, opponent, pos); {
		case n < 2:
			score += weakHighBonus
		case n < 4:
			score += weakLowBonus
		}
	}
	return score
}

// OpponentNeighbors counts the 4-connected neighbors of pos owned by opp.
func OpponentNeighbors(g *gamestate.Grid, opp gamestate.Player, pos gamestate.Position) int {
	count := 0
	for _, neighbor := range gamestate.Neighbors4(pos, g.Width(), g.Height()) {
		if g.Get(neighbor).OwnedBy(opp) {
			count++
		}
	}
	return count
}

// AnalyzeDensity measures territory consolidation: the number of own cells
// within Manhattan distance 2 of each covered cell, scaled and averaged
// over the covered cells. Averaging (rather than summing) keeps the signal
// independent of placement size.
func AnalyzeDensity(p *placement.Placement, gs *gamestate.GameState) float64 {
	covered := p.CoveredPositions()
	if len(covered) == 0 {
		return 0
	}
	sum := NearbyTerritorySum(p, gs)
	return float64(sum) * DensityFactor / float64(len(covered))
}

// NearbyTerritorySum returns the integer metric behind AnalyzeDensity: the
// summed NearbyOwnTerritory counts over the placement's covered cells.
func NearbyTerritorySum(p *placement.Placement, gs *gamestate.GameState) int {
	grid := gs.Grid()
	player := gs.Player()
	sum := 0
	for _, pos := range p.CoveredPositions() {
		if !grid.Valid(pos) {
			continue
		}
		sum += NearbyOwnTerritory(grid, player, pos)
	}
	return sum
}

// NearbyOwnTerritory counts the player's cells within Manhattan distance 2
// of center (the 5×5 diamond neighborhood, center excluded).
func NearbyOwnTerritory(g *gamestate.Grid, player gamestate.Player, center gamestate.Position) int {
	count := 0
	for dy := -2; dy <= 2; dy++ {
		for dx := -2; dx <= 2; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			if abs(dx)+abs(dy) > 2 {
				continue
			}
			pos := gamestate.Position{X: center.X + dx, Y: center.Y + dy}
			if g.Valid(pos) && g.Get(pos).OwnedBy(player) {
				count++
			}
		}
	}
	return count
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// AnalyzeEdgeControl scores border presence: corners earn a high bonus,
// other border cells a lower one, interior cells nothing.
func AnalyzeEdgeControl(p *placement.Placement, g *gamestate.Grid) float64 {
	score := 0.0
	for _, pos := range p.CoveredPositions() {
		if !g.Valid(pos) {
			continue
		}
		onVerticalEdge := pos.X == 0 || pos.X == g.Width()-1
		onHorizontalEdge := pos.Y == 0 || pos.Y == g.Height()-1
		switch {
		case onVerticalEdge && onHorizontalEdge:
			score += cornerBonus
		case onVerticalEdge || onHorizontalEdge:
			score += edgeBonus
		}
	}
	return score
}

// AdvancedScore combines every analyzer signal with the validator metrics
// into the default weighting.
func AdvancedScore(p *placement.Placement, gs *gamestate.GameState) float64 {
	return float64(p.CellsAdded)*10.0 +
		AnalyzeFloodFill(p, gs)*1.5 +
		DetectWeakPositions(p, gs)*2.0 +
		AnalyzeDensity(p, gs)*1.2 +
		AnalyzeEdgeControl(p, gs.Grid())*0.5
}
