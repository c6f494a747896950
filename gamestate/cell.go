// Package gamestate contains the board representation for a single Filler
// turn: the Anfield grid, the piece shape being offered, and the acting
// player's view of both.
package gamestate

// Player is one of the two fixed player slots.
type Player uint8

const (
	Player1 Player = 1
	Player2 Player = 2
)

// Opponent returns the other player slot.
func (p Player) Opponent() Player {
	if p == Player1 {
		return Player2
	}
	return Player1
}

func (p Player) String() string {
	if p == Player1 {
		return "p1"
	}
	return "p2"
}

// CellState is the occupancy state of a single Anfield cell.
type CellState uint8

const (
	Empty CellState = iota
	Player1Territory
	Player2Territory
	Player1LastMove
	Player2LastMove
)

// CellStateFromRune maps a protocol character to a cell state. Unknown
// characters map to Empty.
func CellStateFromRune(c rune) CellState {
	switch c {
	case '@':
		return Player1Territory
	case '$':
		return Player2Territory
	case 'a':
		return Player1LastMove
	case 's':
		return Player2LastMove
	}
	return Empty
}

// Rune returns the protocol character for this cell state.
func (cs CellState) Rune() rune {
	switch cs {
	case Player1Territory:
		return '@'
	case Player2Territory:
		return '$'
	case Player1LastMove:
		return 'a'
	case Player2LastMove:
		return 's'
	}
	return '.'
}

func (cs CellState) String() string {
	return string(cs.Rune())
}

// OwnedBy reports whether this cell belongs to the given player. The
// last-move variant counts as territory.
func (cs CellState) OwnedBy(p Player) bool {
	switch p {
	case Player1:
		return cs == Player1Territory || cs == Player1LastMove
	case Player2:
		return cs == Player2Territory || cs == Player2LastMove
	}
	return false
}
