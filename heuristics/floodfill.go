package heuristics

import (
	"github.com/mkalinowski/filler/gamestate"
)

// ReachableEmpty counts the distinct empty cells reachable from the seed
// positions via 4-connected traversal. Traversal passes through empty cells
// and the player's own territory, never through opponent cells; empty cells
// re-seed the frontier, own-territory cells are passable but terminal. Empty
// seed cells count as reachable, which keeps the count monotonic
// non-decreasing as the seed set grows on a fixed grid.
func ReachableEmpty(g *gamestate.Grid, player gamestate.Player, seeds []gamestate.Position) int {
	return reachableEmpty(g, player, seeds, false, -1)
}

// ReachableEmptyBounded is ReachableEmpty with an iteration cap: traversal
// stops after maxIterations cells have been expanded. Useful for cheap
// territory estimates on large boards.
func ReachableEmptyBounded(g *gamestate.Grid, player gamestate.Player,
	seeds []gamestate.Position, maxIterations int) int {
	if maxIterations < 0 {
		maxIterations = 0
	}
	return reachableEmpty(g, player, seeds, false, maxIterations)
}

// reachableEmpty is the BFS core. When seedsAreOwn is true, the seeds are
// treated as freshly placed own cells (a transient patch over the shared
// read-only grid) and are never counted, regardless of their underlying
// state. maxIterations < 0 means unbounded.
func reachableEmpty(g *gamestate.Grid, player gamestate.Player,
	seeds []gamestate.Position, seedsAreOwn bool, maxIterations int) int {

	width, height := g.Width(), g.Height()
	visited := make([]bool, width*height)
	queue := make([]gamestate.Position, 0, len(seeds))

	reachable := 0
	for _, pos := range seeds {
		if !g.Valid(pos) {
			continue
		}
		idx := pos.Y*width + pos.X
		if visited[idx] {
			continue
		}
		visited[idx] = true
		queue = append(queue, pos)
		if !seedsAreOwn && g.Get(pos) == gamestate.Empty {
			reachable++
		}
	}

	iterations := 0
	for len(queue) > 0 {
		if maxIterations >= 0 && iterations >= maxIterations {
			break
		}
		iterations++

		pos := queue[0]
		queue = queue[1:]

		for _, delta := range [4]gamestate.Position{{X: 1}, {X: -1}, {Y: 1}, {Y: -1}} {
			neighbor := gamestate.Position{X: pos.X + delta.X, Y: pos.Y + delta.Y}
			if !g.Valid(neighbor) {
				continue
			}
			idx := neighbor.Y*width + neighbor.X
			if visited[idx] {
				continue
			}
			state := g.Get(neighbor)
			if state != gamestate.Empty && !state.OwnedBy(player) {
				// Opponent cells are opaque.
				continue
			}
			visited[idx] = true
			if state == gamestate.Empty {
				reachable++
				// Only empty cells re-seed the frontier; own territory is
				// passable but terminal.
				queue = append(queue, neighbor)
			}
		}
	}

	return reachable
}
