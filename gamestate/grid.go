package gamestate

import "strings"

// Grid is the Anfield: a width×height matrix of cell states. It is built
// once per turn by the protocol layer and treated as read-only by the
// move chooser.
type Grid struct {
	width  int
	height int
	cells  [][]CellState
}

// NewGrid creates an all-empty grid.
func NewGrid(width, height int) *Grid {
	cells := make([][]CellState, height)
	for y := range cells {
		cells[y] = make([]CellState, width)
	}
	return &Grid{width: width, height: height, cells: cells}
}

// GridFromRunes builds a grid from raw protocol characters, row by row.
func GridFromRunes(width, height int, raw [][]rune) *Grid {
	g := NewGrid(width, height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			g.cells[y][x] = CellStateFromRune(raw[y][x])
		}
	}
	return g
}

// GridFromStrings builds a grid from a row-per-string description, in the
// same character set as the protocol. All rows must be the same length.
func GridFromStrings(rows []string) *Grid {
	raw := make([][]rune, len(rows))
	for y, row := range rows {
		raw[y] = []rune(row)
	}
	width := 0
	if len(raw) > 0 {
		width = len(raw[0])
	}
	return GridFromRunes(width, len(raw), raw)
}

func (g *Grid) Width() int  { return g.width }
func (g *Grid) Height() int { return g.height }

// Valid reports whether pos is within the grid bounds.
func (g *Grid) Valid(pos Position) bool {
	return pos.X >= 0 && pos.X < g.width && pos.Y >= 0 && pos.Y < g.height
}

// Get returns the state at pos. The caller must check Valid first; an
// out-of-bounds access is a hard boundary violation and will panic rather
// than clamp.
func (g *Grid) Get(pos Position) CellState {
	return g.cells[pos.Y][pos.X]
}

// Set writes the state at pos. Same bounds contract as Get.
func (g *Grid) Set(pos Position, state CellState) {
	g.cells[pos.Y][pos.X] = state
}

// PlayerPositions returns every cell owned by p, last-move cells included,
// in row-major order.
func (g *Grid) PlayerPositions(p Player) []Position {
	var positions []Position
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			if g.cells[y][x].OwnedBy(p) {
				positions = append(positions, Position{x, y})
			}
		}
	}
	return positions
}

// EmptyPositions returns every empty cell in row-major order.
func (g *Grid) EmptyPositions() []Position {
	var positions []Position
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			if g.cells[y][x] == Empty {
				positions = append(positions, Position{x, y})
			}
		}
	}
	return positions
}

// CountTerritory returns the number of cells owned by p.
func (g *Grid) CountTerritory(p Player) int {
	count := 0
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			if g.cells[y][x].OwnedBy(p) {
				count++
			}
		}
	}
	return count
}

// Render returns a printable view of the grid for debug logging.
func (g *Grid) Render() string {
	var sb strings.Builder
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			sb.WriteRune(g.cells[y][x].Rune())
		}
		sb.WriteRune('\n')
	}
	return sb.String()
}
