package model

import "sync"

// GridToPool returns a snapshot to the pool for reuse
func GridToPool(grid *Grid, pool *GridPool) {
	if pool == nil || grid == nil {
		return
	}

	pool.Put(grid)
}

// GridPool recycles same-sized snapshots of one board, so the driver's
// per-tick snapshot does not allocate in steady state.
type GridPool struct {
	width, height int
	pool          sync.Pool
}

// NewGridPool returns a pool of width x height grids
func NewGridPool(width, height int) *GridPool {
	p := &GridPool{width: width, height: height}
	p.pool.New = func() interface{} {
		return NewGrid(width, height)
	}
	return p
}

// Fits reports whether the pool hands out grids of the given size
func (p *GridPool) Fits(width, height int) bool {
	return p.width == width && p.height == height
}

// Get retrieves an all-dead grid from the pool
func (p *GridPool) Get() *Grid {
	return p.pool.Get().(*Grid)
}

// Put clears g and keeps it for reuse; grids of another size are dropped
func (p *GridPool) Put(g *Grid) {
	if !p.Fits(g.width, g.height) {
		return
	}
	g.Clear()
	p.pool.Put(g)
}
