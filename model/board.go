package model

import (
	"math/rand"
	"runtime"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

// Board is a toroidal grid of cells advanced by Conway's rules. Cells live in
// one row-major slice and reference their neighbors by index.
type Board struct {
	columns    int
	rows       int
	cellSize   int
	cells      []Cell
	generation int
	workers    int
}

// NewBoard lays out width/cellSize columns and height/cellSize rows of dead cells
func NewBoard(width, height, cellSize int) (*Board, error) {
	if err := validateDimensions(width, height, cellSize); err != nil {
		return nil, err
	}
	b := &Board{
		columns:  width / cellSize,
		rows:     height / cellSize,
		cellSize: cellSize,
		workers:  runtime.NumCPU(),
	}
	b.cells = make([]Cell, b.columns*b.rows)
	b.connectNeighbors()
	return b, nil
}

// NewBoardFromGrid builds a cell size 1 board seeded with the grid's liveness
func NewBoardFromGrid(g *Grid) (*Board, error) {
	b, err := NewBoard(g.GetWidth(), g.GetHeight(), 1)
	if err != nil {
		return nil, err
	}
	for y := range b.rows {
		for x := range b.columns {
			b.cells[b.index(x, y)].alive = g.Get(x, y)
		}
	}
	return b, nil
}

// connectNeighbors wires every cell to its 8 wrapped neighbors. With a single
// column (or row) the west and east (north and south) neighbor is the cell itself.
func (b *Board) connectNeighbors() {
	for y := range b.rows {
		yT := y - 1
		if y == 0 {
			yT = b.rows - 1
		}
		yB := y + 1
		if y == b.rows-1 {
			yB = 0
		}
		for x := range b.columns {
			xL := x - 1
			if x == 0 {
				xL = b.columns - 1
			}
			xR := x + 1
			if x == b.columns-1 {
				xR = 0
			}

			c := &b.cells[b.index(x, y)]
			c.neighbors[NorthWest] = b.index(xL, yT)
			c.neighbors[North] = b.index(x, yT)
			c.neighbors[NorthEast] = b.index(xR, yT)
			c.neighbors[West] = b.index(xL, y)
			c.neighbors[East] = b.index(xR, y)
			c.neighbors[SouthWest] = b.index(xL, yB)
			c.neighbors[South] = b.index(x, yB)
			c.neighbors[SouthEast] = b.index(xR, yB)
		}
	}
}

func (b *Board) index(x, y int) int {
	return y*b.columns + x
}

func (b *Board) Columns() int    { return b.columns }
func (b *Board) Rows() int       { return b.rows }
func (b *Board) CellSize() int   { return b.cellSize }
func (b *Board) Width() int      { return b.columns * b.cellSize }
func (b *Board) Height() int     { return b.rows * b.cellSize }
func (b *Board) Generation() int { return b.generation }

// SetWorkers sets how many goroutines evaluate the determine phase; values
// below 1 are treated as 1.
func (b *Board) SetWorkers(n int) {
	b.workers = max(1, n)
}

// Alive returns the state of the cell at column x, row y
func (b *Board) Alive(x, y int) bool {
	if !b.contains(x, y) {
		return false
	}
	return b.cells[b.index(x, y)].alive
}

// SetAlive sets the state of the cell at column x, row y; out of range is ignored
func (b *Board) SetAlive(x, y int, alive bool) {
	if b.contains(x, y) {
		b.cells[b.index(x, y)].alive = alive
	}
}

func (b *Board) contains(x, y int) bool {
	return x >= 0 && x < b.columns && y >= 0 && y < b.rows
}

// Neighbors returns the coordinates of the 8 cells adjacent to (x, y), in
// NW, N, NE, W, E, SW, S, SE order.
func (b *Board) Neighbors(x, y int) ([neighborCount][2]int, error) {
	var out [neighborCount][2]int
	if !b.contains(x, y) {
		return out, errors.Errorf("[Neighbors] cell (%d,%d) outside %dx%d board", x, y, b.columns, b.rows)
	}
	for i, idx := range b.cells[b.index(x, y)].neighbors {
		out[i] = [2]int{idx % b.columns, idx / b.columns}
	}
	return out, nil
}

// Randomize sets each cell alive with probability density
func (b *Board) Randomize(density float64, rng *rand.Rand) {
	for i := range b.cells {
		b.cells[i].alive = rng.Float64() < density
	}
}

// CountLiveCells returns the number of alive cells
func (b *Board) CountLiveCells() (count int) {
	for i := range b.cells {
		if b.cells[i].alive {
			count++
		}
	}
	return
}

// Advance computes the next generation. Every pending state is determined
// before any cell commits.
func (b *Board) Advance() {
	b.determine()
	for i := range b.cells {
		b.cells[i].commit()
	}
	b.generation++
}

// determine evaluates the rule in row bands, one band per worker
func (b *Board) determine() {
	if b.workers <= 1 || b.rows < 2 {
		for i := range b.cells {
			b.cells[i].determineNext(b.cells)
		}
		return
	}

	var (
		eg            errgroup.Group
		numWorkers    = min(b.workers, b.rows)
		rowsPerWorker = (b.rows + numWorkers - 1) / numWorkers // Ceiling division
	)

	for i := range numWorkers {
		var (
			startRow = i * rowsPerWorker
			endRow   = min(startRow+rowsPerWorker, b.rows)
		)
		if startRow >= b.rows {
			break
		}

		eg.Go(func() error {
			for idx := b.index(0, startRow); idx < b.index(0, endRow); idx++ {
				b.cells[idx].determineNext(b.cells)
			}
			return nil
		})
	}

	// workers never fail; Wait is the barrier before commit
	_ = eg.Wait()
}

// Snapshot copies the current liveness into a grid, taken from pool when it
// holds grids of the board's size
func (b *Board) Snapshot(pool *GridPool) *Grid {
	var g *Grid
	if pool != nil && pool.Fits(b.columns, b.rows) {
		g = pool.Get()
	} else {
		g = NewGrid(b.columns, b.rows)
	}
	for y := range b.rows {
		for x := range b.columns {
			g.cells[y][x] = b.cells[b.index(x, y)].alive
		}
	}
	return g
}
