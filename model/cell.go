package model

import "github.com/sheikhrachel/life-patterns/rules"

// Neighbor directions, in the order the indices are stored on a Cell
const (
	NorthWest = iota
	North
	NorthEast
	West
	East
	SouthWest
	South
	SouthEast

	neighborCount
)

// Cell holds the current and pending state of one board position. Neighbors
// are indices into the owning Board's cell slice, fixed at construction.
type Cell struct {
	alive     bool
	aliveNext bool
	neighbors [neighborCount]int
}

// IsAlive reports the current state
func (c *Cell) IsAlive() bool {
	return c.alive
}

// determineNext computes the pending state from the current board; it never
// touches c.alive so it is safe to run concurrently with other cells.
func (c *Cell) determineNext(cells []Cell) {
	liveNeighbors := 0
	for _, idx := range c.neighbors {
		if cells[idx].alive {
			liveNeighbors++
		}
	}
	c.aliveNext = rules.ApplyConwayRules(liveNeighbors, c.alive)
}

func (c *Cell) commit() {
	c.alive = c.aliveNext
}
