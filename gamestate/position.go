package gamestate

import "fmt"

// Position is an (x, y) coordinate on the Anfield. Coordinates are always
// non-negative; bounds are enforced by the Grid, never clamped here.
type Position struct {
	X int
	Y int
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// ManhattanDistance returns |ax-bx| + |ay-by|.
func ManhattanDistance(a, b Position) int {
	return abs(a.X-b.X) + abs(a.Y-b.Y)
}

// ChebyshevDistance returns max(|ax-bx|, |ay-by|).
func ChebyshevDistance(a, b Position) int {
	dx := abs(a.X - b.X)
	dy := abs(a.Y - b.Y)
	if dx > dy {
		return dx
	}
	return dy
}

// Adjacent4 reports whether a and b are 4-connected neighbors.
func Adjacent4(a, b Position) bool {
	return ManhattanDistance(a, b) == 1
}

// Adjacent8 reports whether a and b are 8-connected neighbors.
func Adjacent8(a, b Position) bool {
	return ChebyshevDistance(a, b) == 1
}

// Neighbors4 returns the in-bounds 4-connected neighbors of pos on a
// width×height grid, in up/down/left/right order.
func Neighbors4(pos Position, width, height int) []Position {
	neighbors := make([]Position, 0, 4)
	if pos.Y > 0 {
		neighbors = append(neighbors, Position{pos.X, pos.Y - 1})
	}
	if pos.Y+1 < height {
		neighbors = append(neighbors, Position{pos.X, pos.Y + 1})
	}
	if pos.X > 0 {
		neighbors = append(neighbors, Position{pos.X - 1, pos.Y})
	}
	if pos.X+1 < width {
		neighbors = append(neighbors, Position{pos.X + 1, pos.Y})
	}
	return neighbors
}
