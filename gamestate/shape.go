package gamestate

import "strings"

// Shape is a piece: a width×height boolean occupancy mask relative to its
// own top-left origin. A shape with zero filled cells is a distinct,
// explicitly rejected state during placement validation.
type Shape struct {
	width  int
	height int
	cells  [][]bool
	// filled positions in row-major order, computed at construction.
	filled []Position
}

// ShapeFromRunes builds a shape from raw protocol characters. Any
// non-'.' character is a filled cell.
func ShapeFromRunes(width, height int, raw [][]rune) *Shape {
	cells := make([][]bool, height)
	var filled []Position
	for y := 0; y < height; y++ {
		cells[y] = make([]bool, width)
		for x := 0; x < width; x++ {
			if raw[y][x] != '.' {
				cells[y][x] = true
				filled = append(filled, Position{x, y})
			}
		}
	}
	return &Shape{width: width, height: height, cells: cells, filled: filled}
}

// ShapeFromStrings builds a shape from a row-per-string description.
func ShapeFromStrings(rows []string) *Shape {
	raw := make([][]rune, len(rows))
	for y, row := range rows {
		raw[y] = []rune(row)
	}
	width := 0
	if len(raw) > 0 {
		width = len(raw[0])
	}
	return ShapeFromRunes(width, len(raw), raw)
}

func (s *Shape) Width() int  { return s.width }
func (s *Shape) Height() int { return s.height }

// FilledPositions returns the filled cells in shape-local coordinates,
// row-major. Callers must not mutate the returned slice.
func (s *Shape) FilledPositions() []Position {
	return s.filled
}

// FilledCount returns the number of filled cells.
func (s *Shape) FilledCount() int {
	return len(s.filled)
}

// IsEmpty reports whether the shape has no filled cells.
func (s *Shape) IsEmpty() bool {
	return len(s.filled) == 0
}

// BoundingBox returns the top-left corner and dimensions of the smallest
// rectangle enclosing the filled cells. ok is false for an empty shape.
func (s *Shape) BoundingBox() (topLeft Position, width, height int, ok bool) {
	if s.IsEmpty() {
		return Position{}, 0, 0, false
	}
	minX, minY := s.filled[0].X, s.filled[0].Y
	maxX, maxY := minX, minY
	for _, p := range s.filled[1:] {
		if p.X < minX {
			minX = p.X
		}
		if p.X > maxX {
			maxX = p.X
		}
		if p.Y < minY {
			minY = p.Y
		}
		if p.Y > maxY {
			maxY = p.Y
		}
	}
	return Position{minX, minY}, maxX - minX + 1, maxY - minY + 1, true
}

// Render returns a printable view of the shape for debug logging.
func (s *Shape) Render() string {
	var sb strings.Builder
	for y := 0; y < s.height; y++ {
		for x := 0; x < s.width; x++ {
			if s.cells[y][x] {
				sb.WriteRune('#')
			} else {
				sb.WriteRune('.')
			}
		}
		sb.WriteRune('\n')
	}
	return sb.String()
}
