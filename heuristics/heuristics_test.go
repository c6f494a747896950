package heuristics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkalinowski/filler/gamestate"
	"github.com/mkalinowski/filler/placement"
)

func testGrid() *gamestate.Grid {
	return gamestate.GridFromStrings([]string{
		".....",
		".@@..",
		".@...",
		"...$$",
		"...$.",
	})
}

func testState() *gamestate.GameState {
	return gamestate.NewGameState(gamestate.Player1, testGrid(),
		gamestate.ShapeFromStrings([]string{"#"}))
}

func singleCellPlacement(x, y int) *placement.Placement {
	return &placement.Placement{
		Anchor:           gamestate.Position{X: x, Y: y},
		Shape:            gamestate.ShapeFromStrings([]string{"#"}),
		CellsAdded:       1,
		TerritoryTouches: 1,
	}
}

func TestAnalyzeFloodFill(t *testing.T) {
	gs := testState()
	p := singleCellPlacement(1, 0)

	// 18 empty cells remain once (1,0) is covered; (4,4) is walled off by
	// opponent cells, so 17 are reachable.
	score := AnalyzeFloodFill(p, gs)
	assert.InDelta(t, 17*FloodFillMultiplier, score, 1e-9)
	assert.Greater(t, score, 0.0)
}

func TestAnalyzeFloodFillDoesNotMutateGrid(t *testing.T) {
	gs := testState()
	p := singleCellPlacement(1, 0)
	AnalyzeFloodFill(p, gs)
	// The covered cell is a transient patch; the shared grid stays intact.
	assert.Equal(t, gamestate.Empty, gs.Grid().Get(gamestate.Position{X: 1, Y: 0}))
}

func TestReachableEmptyMonotonicity(t *testing.T) {
	g := testGrid()

	// Nested seed sets: growing the seeds can never shrink the count.
	seedSets := [][]gamestate.Position{
		{{X: 1, Y: 1}},
		{{X: 1, Y: 1}, {X: 2, Y: 1}},
		{{X: 1, Y: 1}, {X: 2, Y: 1}, {X: 1, Y: 2}},
		{{X: 1, Y: 1}, {X: 2, Y: 1}, {X: 1, Y: 2}, {X: 0, Y: 0}},
		{{X: 1, Y: 1}, {X: 2, Y: 1}, {X: 1, Y: 2}, {X: 0, Y: 0}, {X: 4, Y: 4}},
	}
	prev := 0
	for i, seeds := range seedSets {
		count := ReachableEmpty(g, gamestate.Player1, seeds)
		assert.GreaterOrEqual(t, count, prev, "seed set %d", i)
		prev = count
	}
}

func TestReachableEmptyOpponentOpaque(t *testing.T) {
	g := testGrid()
	// (4,4) is surrounded by opponent cells on its two in-bounds sides, so
	// nothing beyond it is reachable from there, and it is not reachable
	// from anywhere else.
	count := ReachableEmpty(g, gamestate.Player1, []gamestate.Position{{X: 4, Y: 4}})
	assert.Equal(t, 1, count) // just the empty seed itself
}

func TestReachableEmptyBounded(t *testing.T) {
	g := testGrid()
	seeds := []gamestate.Position{{X: 1, Y: 1}}

	// Own-territory seed, zero expansions allowed: nothing is counted.
	assert.Equal(t, 0, ReachableEmptyBounded(g, gamestate.Player1, seeds, 0))

	// A generous bound explores everything the unbounded version does.
	unbounded := ReachableEmpty(g, gamestate.Player1, seeds)
	assert.Equal(t, unbounded, ReachableEmptyBounded(g, gamestate.Player1, seeds, 1000))
}

func TestDetectWeakPositions(t *testing.T) {
	gs := testState()

	// (2,3) has one opponent neighbor: sparse opposition, high bonus.
	assert.InDelta(t, 3.0, DetectWeakPositions(singleCellPlacement(2, 3), gs), 1e-9)

	// (4,4) has two opponent neighbors: smaller bonus.
	assert.InDelta(t, 1.5, DetectWeakPositions(singleCellPlacement(4, 4), gs), 1e-9)
}

func TestOpponentNeighbors(t *testing.T) {
	g := testGrid()
	assert.Equal(t, 1, OpponentNeighbors(g, gamestate.Player2, gamestate.Position{X: 3, Y: 2}))
	assert.Equal(t, 2, OpponentNeighbors(g, gamestate.Player2, gamestate.Position{X: 4, Y: 4}))
	assert.Equal(t, 0, OpponentNeighbors(g, gamestate.Player2, gamestate.Position{X: 0, Y: 0}))
}

func TestAnalyzeDensity(t *testing.T) {
	gs := testState()

	// (1,0) has all three own cells within Manhattan distance 2.
	assert.InDelta(t, 3*DensityFactor, AnalyzeDensity(singleCellPlacement(1, 0), gs), 1e-9)
}

func TestAnalyzeDensityAveragesOverCoveredCells(t *testing.T) {
	gs := testState()
	domino := &placement.Placement{
		Anchor:           gamestate.Position{X: 1, Y: 0},
		Shape:            gamestate.ShapeFromStrings([]string{"##"}),
		CellsAdded:       1,
		TerritoryTouches: 1,
	}
	// Covered cells (1,0) and (2,0) see 3 and 2 nearby own cells; the
	// signal is the average, not the sum.
	assert.InDelta(t, (3+2)*DensityFactor/2, AnalyzeDensity(domino, gs), 1e-9)
}

func TestNearbyOwnTerritoryExcludesBeyondDiamond(t *testing.T) {
	g := testGrid()
	// From (2,0): (1,1) and (2,1) are within distance 2, (1,2) is at
	// distance 3 and excluded.
	assert.Equal(t, 2, NearbyOwnTerritory(g, gamestate.Player1, gamestate.Position{X: 2, Y: 0}))
}

func TestAnalyzeEdgeControlOrdering(t *testing.T) {
	g := testGrid()

	corner := AnalyzeEdgeControl(singleCellPlacement(0, 0), g)
	edge := AnalyzeEdgeControl(singleCellPlacement(2, 0), g)
	interior := AnalyzeEdgeControl(singleCellPlacement(2, 2), g)

	assert.InDelta(t, 2.0, corner, 1e-9)
	assert.InDelta(t, 1.0, edge, 1e-9)
	assert.InDelta(t, 0.0, interior, 1e-9)
	assert.Greater(t, corner, edge)
	assert.Greater(t, edge, interior)
}

func TestAdvancedScoreIsPure(t *testing.T) {
	gs := testState()
	p := singleCellPlacement(1, 0)

	first := AdvancedScore(p, gs)
	second := AdvancedScore(p, gs)
	require.Equal(t, first, second)
	assert.Greater(t, first, 0.0)
}

func TestAnalyzersNeverFailOnDegenerateInput(t *testing.T) {
	gs := testState()
	empty := &placement.Placement{
		Anchor: gamestate.Position{X: 0, Y: 0},
		Shape:  gamestate.ShapeFromStrings([]string{"."}),
	}
	assert.Equal(t, 0.0, AnalyzeFloodFill(empty, gs))
	assert.Equal(t, 0.0, DetectWeakPositions(empty, gs))
	assert.Equal(t, 0.0, AnalyzeDensity(empty, gs))
	assert.Equal(t, 0.0, AnalyzeEdgeControl(empty, gs.Grid()))
}
