package gamestate

import "github.com/rs/zerolog"

// GameState is the complete single-turn snapshot: the acting player, the
// Anfield, and the piece being offered. Every move decision is a pure
// function of one of these.
type GameState struct {
	player Player
	grid   *Grid
	piece  *Shape
}

func NewGameState(player Player, grid *Grid, piece *Shape) *GameState {
	return &GameState{player: player, grid: grid, piece: piece}
}

func (gs *GameState) Player() Player { return gs.player }
func (gs *GameState) Grid() *Grid    { return gs.grid }
func (gs *GameState) Piece() *Shape  { return gs.piece }

// MyPositions returns every cell owned by the acting player.
func (gs *GameState) MyPositions() []Position {
	return gs.grid.PlayerPositions(gs.player)
}

// OpponentPositions returns every cell owned by the opponent.
func (gs *GameState) OpponentPositions() []Position {
	return gs.grid.PlayerPositions(gs.player.Opponent())
}

// MyTerritorySize returns the acting player's cell count.
func (gs *GameState) MyTerritorySize() int {
	return gs.grid.CountTerritory(gs.player)
}

// OpponentTerritorySize returns the opponent's cell count.
func (gs *GameState) OpponentTerritorySize() int {
	return gs.grid.CountTerritory(gs.player.Opponent())
}

// LogDebug writes the snapshot to the given logger at debug level.
func (gs *GameState) LogDebug(logger zerolog.Logger) {
	logger.Debug().
		Stringer("player", gs.player).
		Int("my-territory", gs.MyTerritorySize()).
		Int("opp-territory", gs.OpponentTerritorySize()).
		Str("grid", "\n"+gs.grid.Render()).
		Str("piece", "\n"+gs.piece.Render()).
		Msg("turn snapshot")
}
