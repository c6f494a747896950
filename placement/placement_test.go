package placement

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkalinowski/filler/gamestate"
)

// Board used throughout: own territory at (1,1), (2,1), (1,2); opponent at
// (3,3), (4,3), (3,4).
func testGrid() *gamestate.Grid {
	return gamestate.GridFromStrings([]string{
		".....",
		".@@..",
		".@...",
		"...$$",
		"...$.",
	})
}

func stateWithPiece(piece []string) *gamestate.GameState {
	return gamestate.NewGameState(gamestate.Player1, testGrid(),
		gamestate.ShapeFromStrings(piece))
}

func TestValidateSingleCell(t *testing.T) {
	gs := stateWithPiece([]string{"#"})

	p, err := Validate(gs, gamestate.Position{X: 1, Y: 1})
	require.NoError(t, err)
	assert.Equal(t, 1, p.TerritoryTouches)
	assert.Equal(t, 0, p.CellsAdded)
	assert.Equal(t, gamestate.Position{X: 1, Y: 1}, p.Anchor)
}

func TestValidateCellsAddedInvariant(t *testing.T) {
	gs := stateWithPiece([]string{
		"##",
		"#.",
	})
	// Anchor (1,0): covers (1,0), (2,0), (1,1). Only (1,1) is own territory.
	p, err := Validate(gs, gamestate.Position{X: 1, Y: 0})
	require.NoError(t, err)
	assert.Equal(t, 1, p.TerritoryTouches)
	assert.Equal(t, gs.Piece().FilledCount()-1, p.CellsAdded)
}

func TestValidateEmptyShape(t *testing.T) {
	gs := stateWithPiece([]string{
		"..",
		"..",
	})
	for _, anchor := range []gamestate.Position{{X: 0, Y: 0}, {X: 4, Y: 4}, {X: 99, Y: 99}} {
		_, err := Validate(gs, anchor)
		// Checked before any positional logic, so even a wild anchor
		// reports the empty shape.
		assert.ErrorIs(t, err, ErrEmptyShape)
	}
}

func TestValidateOutOfBounds(t *testing.T) {
	gs := stateWithPiece([]string{"##"})
	_, err := Validate(gs, gamestate.Position{X: 4, Y: 1})
	assert.ErrorIs(t, err, ErrOutOfBounds)
}

func TestValidateCollisionWithOpponent(t *testing.T) {
	gs := stateWithPiece([]string{
		"#",
		"#",
	})
	// Covers (3,2) and (3,3); the latter is opponent territory.
	_, err := Validate(gs, gamestate.Position{X: 3, Y: 2})
	assert.ErrorIs(t, err, ErrCollisionWithOpponent)
}

func TestValidateNoTerritoryContact(t *testing.T) {
	gs := stateWithPiece([]string{"#"})
	_, err := Validate(gs, gamestate.Position{X: 4, Y: 0})
	assert.ErrorIs(t, err, ErrNoTerritoryContact)

	// Adjacency is not contact: (1,0) borders own territory at (1,1) but
	// the piece's single cell lands on an empty cell.
	p, err := Validate(gs, gamestate.Position{X: 1, Y: 0})
	assert.Nil(t, p)
	assert.ErrorIs(t, err, ErrNoTerritoryContact)
}

func TestValidateMultipleContacts(t *testing.T) {
	gs := stateWithPiece([]string{"##"})
	// Covers (1,1) and (2,1), both own territory.
	_, err := Validate(gs, gamestate.Position{X: 1, Y: 1})
	assert.ErrorIs(t, err, ErrMultipleContacts)
}

func TestCoveredPositions(t *testing.T) {
	shape := gamestate.ShapeFromStrings([]string{
		".#",
		"#.",
	})
	p := &Placement{Anchor: gamestate.Position{X: 3, Y: 3}, Shape: shape}
	covered := p.CoveredPositions()
	assert.Equal(t, []gamestate.Position{{X: 4, Y: 3}, {X: 3, Y: 4}}, covered)
}

func TestFindAllRowMajorOrder(t *testing.T) {
	gs := stateWithPiece([]string{"#"})
	placements := FindAll(gs)
	require.NotEmpty(t, placements)

	// Row-major: each successive anchor must compare strictly greater in
	// (y, x) order.
	for i := 1; i < len(placements); i++ {
		prev, cur := placements[i-1].Anchor, placements[i].Anchor
		greater := cur.Y > prev.Y || (cur.Y == prev.Y && cur.X > prev.X)
		assert.True(t, greater, "anchors out of order: %v then %v", prev, cur)
	}

	// Every returned placement satisfies the contact invariant.
	for _, p := range placements {
		assert.Equal(t, 1, p.TerritoryTouches)
		assert.Equal(t, 0, p.CellsAdded)
	}
}

func TestFindAllExactAnchors(t *testing.T) {
	gs := stateWithPiece([]string{"#"})
	placements := FindAll(gs)

	// A 1x1 piece is legal exactly on the own-territory cells: anywhere
	// else it either touches nothing or collides.
	var anchors []gamestate.Position
	for _, p := range placements {
		anchors = append(anchors, p.Anchor)
	}
	assert.Equal(t, []gamestate.Position{{X: 1, Y: 1}, {X: 2, Y: 1}, {X: 1, Y: 2}}, anchors)
}

func TestFindAllEmptyOnBlockedBoard(t *testing.T) {
	grid := gamestate.GridFromStrings([]string{
		"$$",
		"$$",
	})
	gs := gamestate.NewGameState(gamestate.Player1, grid,
		gamestate.ShapeFromStrings([]string{"#"}))
	assert.Empty(t, FindAll(gs))
}

func TestFindTouching(t *testing.T) {
	gs := stateWithPiece([]string{
		"#",
		"#",
	})
	territory := gs.MyPositions()
	placements := FindTouching(gs, territory)

	// Anchoring the vertical domino one cell above (1,1) or (2,1) covers
	// the territory cell below it; every other neighbor anchor either
	// fails validation or does not cover the cell it was expanded from.
	var anchors []gamestate.Position
	for _, p := range placements {
		anchors = append(anchors, p.Anchor)
	}
	assert.Equal(t, []gamestate.Position{{X: 1, Y: 0}, {X: 2, Y: 0}}, anchors)

	seen := make(map[gamestate.Position]bool)
	for _, p := range placements {
		assert.False(t, seen[p.Anchor], "duplicate anchor %v", p.Anchor)
		seen[p.Anchor] = true
	}
}

func TestFindTouchingEmptyTerritory(t *testing.T) {
	gs := stateWithPiece([]string{"#"})
	assert.Empty(t, FindTouching(gs, nil))
}
