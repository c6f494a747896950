package bench

import (
	"lukechampine.com/frand"

	"github.com/mkalinowski/filler/gamestate"
)

// RandomGameState builds a width×height board with two random territory
// blobs and a random piece, for throughput measurements on realistic
// mid-game boards. Both players start from a random seed cell and grow by
// the given number of cells.
func RandomGameState(width, height, territory, pieceSize int) *gamestate.GameState {
	grid := gamestate.NewGrid(width, height)

	growBlob(grid, gamestate.Player1Territory, territory)
	growBlob(grid, gamestate.Player2Territory, territory)

	return gamestate.NewGameState(gamestate.Player1, grid, randomPiece(pieceSize))
}

// growBlob claims up to target cells for state, growing 4-connected from
// a random empty seed. On a crowded board it may claim fewer.
func growBlob(g *gamestate.Grid, state gamestate.CellState, target int) {
	seed, ok := randomEmpty(g)
	if !ok || target <= 0 {
		return
	}
	g.Set(seed, state)
	frontier := []gamestate.Position{seed}

	for claimed := 1; claimed < target && len(frontier) > 0; {
		idx := frand.Intn(len(frontier))
		pos := frontier[idx]

		var grew bool
		for _, n := range gamestate.Neighbors4(pos, g.Width(), g.Height()) {
			if g.Get(n) == gamestate.Empty {
				g.Set(n, state)
				frontier = append(frontier, n)
				claimed++
				grew = true
				break
			}
		}
		if !grew {
			frontier[idx] = frontier[len(frontier)-1]
			frontier = frontier[:len(frontier)-1]
		}
	}
}

func randomEmpty(g *gamestate.Grid) (gamestate.Position, bool) {
	empty := g.EmptyPositions()
	if len(empty) == 0 {
		return gamestate.Position{}, false
	}
	return empty[frand.Intn(len(empty))], true
}

// randomPiece builds a connected piece of roughly size filled cells inside
// a bounding box just big enough to hold it.
func randomPiece(size int) *gamestate.Shape {
	if size < 1 {
		size = 1
	}
	side := 1
	for side*side < size {
		side++
	}

	raw := make([][]rune, side)
	for y := range raw {
		raw[y] = make([]rune, side)
		for x := range raw[y] {
			raw[y][x] = '.'
		}
	}

	x, y := frand.Intn(side), frand.Intn(side)
	raw[y][x] = 'O'
	for placed := 1; placed < size; {
		switch frand.Intn(4) {
		case 0:
			if x+1 < side {
				x++
			}
		case 1:
			if x > 0 {
				x--
			}
		case 2:
			if y+1 < side {
				y++
			}
		case 3:
			if y > 0 {
				y--
			}
		}
		if raw[y][x] == '.' {
			raw[y][x] = 'O'
			placed++
		}
	}
	return gamestate.ShapeFromRunes(side, side, raw)
}
