package model

import (
	"crypto/md5"
	"fmt"
)

// Grid is a plain liveness matrix. It is the interchange format between the
// board and everything that only reads it: storage, rendering, stability and
// pattern analysis.
type Grid struct {
	width  int
	height int
	cells  [][]bool
}

// NewGrid creates a new all-dead grid with the specified dimensions
func NewGrid(width, height int) *Grid {
	cells := make([][]bool, height)
	for i := range cells {
		cells[i] = make([]bool, width)
	}
	return &Grid{
		width:  width,
		height: height,
		cells:  cells,
	}
}

// NewGridFromRows copies a row-major boolean matrix into a grid. Rows must all
// share the length of the first one.
func NewGridFromRows(rows [][]bool) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, &InvalidBoardDimensionsError{Width: 0, Height: len(rows), CellSize: 1}
	}
	g := NewGrid(len(rows[0]), len(rows))
	for y, row := range rows {
		if len(row) != g.width {
			return nil, &InvalidBoardFormatError{
				Line:   y + 1,
				Reason: fmt.Sprintf("row has %d cells, expected %d", len(row), g.width),
			}
		}
		copy(g.cells[y], row)
	}
	return g, nil
}

// GetWidth returns the width of the grid
func (g *Grid) GetWidth() int {
	return g.width
}

// GetHeight returns the height of the grid
func (g *Grid) GetHeight() int {
	return g.height
}

// Clear clears all cells
func (g *Grid) Clear() {
	for y := range g.height {
		for x := range g.width {
			g.cells[y][x] = false
		}
	}
}

// Set sets a cell to alive (true) or dead (false); out of range coordinates are ignored
func (g *Grid) Set(x, y int, alive bool) {
	if x >= 0 && x < g.width && y >= 0 && y < g.height {
		g.cells[y][x] = alive
	}
}

// Get returns the state of a cell, false outside the grid
func (g *Grid) Get(x, y int) bool {
	if x < 0 || x >= g.width || y < 0 || y >= g.height {
		return false
	}
	return g.cells[y][x]
}

// Rows returns a deep copy of the matrix in row-major order
func (g *Grid) Rows() [][]bool {
	rows := make([][]bool, g.height)
	for y := range g.height {
		rows[y] = append([]bool(nil), g.cells[y]...)
	}
	return rows
}

// Equal reports whether both grids have the same shape and liveness
func (g *Grid) Equal(other *Grid) bool {
	if other == nil || g.width != other.width || g.height != other.height {
		return false
	}
	for y := range g.height {
		for x := range g.width {
			if g.cells[y][x] != other.cells[y][x] {
				return false
			}
		}
	}
	return true
}

// CountLivingCells returns the total number of living cells
func (g *Grid) CountLivingCells() (count int) {
	for y := range g.height {
		for x := range g.width {
			if g.cells[y][x] {
				count++
			}
		}
	}
	return
}

// GetGridHash returns an MD5 hash of the grid's shape and state
func (g *Grid) GetGridHash() string {
	h := md5.New()
	fmt.Fprintf(h, "%dx%d:", g.width, g.height)
	for y := range g.height {
		for x := range g.width {
			if g.cells[y][x] {
				h.Write([]byte{1})
			} else {
				h.Write([]byte{0})
			}
		}
	}
	return fmt.Sprintf("%x", h.Sum(nil))
}
