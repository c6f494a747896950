// Package placement implements the placement validator: geometric legality
// checking for a piece at a candidate anchor, and bulk enumeration of every
// legal anchor on the board.
package placement

import (
	"errors"
	"fmt"

	"github.com/mkalinowski/filler/gamestate"
)

// Validation failures, in the order they are checked.
var (
	// ErrEmptyShape is returned for a shape with no filled cells,
	// regardless of anchor or board.
	ErrEmptyShape = errors.New("piece shape is empty")
	// ErrOutOfBounds is returned when a filled cell maps outside the grid.
	ErrOutOfBounds = errors.New("piece extends outside grid boundaries")
	// ErrCollisionWithOpponent is returned when a filled cell overlaps
	// opponent territory. Fatal; remaining cells are not checked.
	ErrCollisionWithOpponent = errors.New("piece overlaps with opponent territory")
	// ErrCollisionWithSelf is reserved. Validate never returns it:
	// own-territory overlap beyond the single contact cell surfaces as
	// ErrMultipleContacts instead.
	ErrCollisionWithSelf = errors.New("piece overlaps with own territory")
	// ErrNoTerritoryContact is returned when no filled cell touches the
	// acting player's territory.
	ErrNoTerritoryContact = errors.New("piece doesn't touch existing territory")
	// ErrMultipleContacts is returned when two or more filled cells touch
	// own territory. The game rule requires exactly one contact cell.
	ErrMultipleContacts = errors.New("piece touches territory at multiple cells")
)

// Placement is a validated candidate placement: the anchor where the
// shape's origin lands, plus its basic metrics. Construction through
// Validate guarantees TerritoryTouches == 1 and
// CellsAdded == FilledCount - 1.
type Placement struct {
	// Anchor is the board position of the shape's local (0,0).
	Anchor gamestate.Position
	// Shape is the piece being placed. It is shared, not copied.
	Shape *gamestate.Shape
	// CellsAdded is the number of filled cells landing on empty board cells.
	CellsAdded int
	// TerritoryTouches is the number of filled cells landing on own
	// territory; always 1 for a validated placement.
	TerritoryTouches int
}

func (p *Placement) String() string {
	return fmt.Sprintf("<anchor: %v cells: %d touches: %d>",
		p.Anchor, p.CellsAdded, p.TerritoryTouches)
}

// CoveredPositions returns the absolute board positions the piece would
// occupy, in the shape's row-major filled order.
func (p *Placement) CoveredPositions() []gamestate.Position {
	filled := p.Shape.FilledPositions()
	covered := make([]gamestate.Position, len(filled))
	for i, offset := range filled {
		covered[i] = gamestate.Position{X: p.Anchor.X + offset.X, Y: p.Anchor.Y + offset.Y}
	}
	return covered
}

// Validate checks whether placing the current piece with its origin at
// anchor is legal, and computes the placement metrics if so.
//
// Legality: every filled cell must land in bounds, no filled cell may
// overlap opponent territory, and exactly one filled cell must overlap the
// acting player's own territory.
func Validate(gs *gamestate.GameState, anchor gamestate.Position) (*Placement, error) {
	shape := gs.Piece()
	if shape.IsEmpty() {
		return nil, ErrEmptyShape
	}

	grid := gs.Grid()
	player := gs.Player()
	opponent := player.Opponent()

	touches := 0
	for _, offset := range shape.FilledPositions() {
		pos := gamestate.Position{X: anchor.X + offset.X, Y: anchor.Y + offset.Y}
		if !grid.Valid(pos) {
			return nil, ErrOutOfBounds
		}
		cell := grid.Get(pos)
		switch {
		case cell.OwnedBy(opponent):
			return nil, ErrCollisionWithOpponent
		case cell.OwnedBy(player):
			touches++
		}
		// Empty cells are accepted unconditionally.
	}

	switch touches {
	case 0:
		return nil, ErrNoTerritoryContact
	case 1:
		return &Placement{
			Anchor:           anchor,
			Shape:            shape,
			CellsAdded:       shape.FilledCount() - 1,
			TerritoryTouches: 1,
		}, nil
	default:
		return nil, ErrMultipleContacts
	}
}

// FindAll enumerates every anchor in row-major order and returns the
// placements that validate. Individual failures are discarded; an empty
// result means the caller must fall back to a default move.
func FindAll(gs *gamestate.GameState) []*Placement {
	grid := gs.Grid()
	var valid []*Placement
	for y := 0; y < grid.Height(); y++ {
		for x := 0; x < grid.Width(); x++ {
			if p, err := Validate(gs, gamestate.Position{X: x, Y: y}); err == nil {
				valid = append(valid, p)
			}
		}
	}
	return valid
}

// FindTouching enumerates placements anchored at the 4-neighbors of the
// given territory positions, keeping only those that actually cover the
// territory cell they were expanded from. Anchors are deduplicated before
// the results are returned. Useful for targeted expansion queries.
func FindTouching(gs *gamestate.GameState, territory []gamestate.Position) []*Placement {
	grid := gs.Grid()
	seen := make(map[gamestate.Position]bool)
	var valid []*Placement

	for _, terrPos := range territory {
		for _, anchor := range gamestate.Neighbors4(terrPos, grid.Width(), grid.Height()) {
			if seen[anchor] {
				continue
			}
			p, err := Validate(gs, anchor)
			if err != nil {
				continue
			}
			if !covers(p, terrPos) {
				continue
			}
			seen[anchor] = true
			valid = append(valid, p)
		}
	}
	return valid
}

func covers(p *Placement, pos gamestate.Position) bool {
	for _, covered := range p.CoveredPositions() {
		if covered == pos {
			return true
		}
	}
	return false
}
