package core

// Grid stores a 2D grid of alive/dead cells in row-major order.
type Grid struct {
	W, H  int
	cells []bool
}

// NewGrid allocates an all-dead grid with the given dimensions. Non-positive
// dimensions produce an empty grid.
func NewGrid(w, h int) *Grid {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return &Grid{W: w, H: h, cells: make([]bool, w*h)}
}

// NewSquareGrid allocates an all-dead size x size grid.
func NewSquareGrid(size int) *Grid { return NewGrid(size, size) }

// Cells exposes the backing slice so callers can read/write values directly.
func (g *Grid) Cells() []bool { return g.cells }

// Index returns the linear slice index for coordinates (x, y).
func (g *Grid) Index(x, y int) int { return y*g.W + x }

// InBounds reports whether (x, y) addresses a cell of the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.W && y >= 0 && y < g.H
}

// Alive reports the cell state. Out-of-bounds coordinates read as dead.
func (g *Grid) Alive(x, y int) bool {
	if !g.InBounds(x, y) {
		return false
	}
	return g.cells[g.Index(x, y)]
}

// Set writes the cell state. Out-of-bounds writes are ignored.
func (g *Grid) Set(x, y int, alive bool) {
	if !g.InBounds(x, y) {
		return
	}
	g.cells[g.Index(x, y)] = alive
}

// Population counts alive cells.
func (g *Grid) Population() int {
	n := 0
	for _, c := range g.cells {
		if c {
			n++
		}
	}
	return n
}

// Clone returns a deep copy.
func (g *Grid) Clone() *Grid {
	c := &Grid{W: g.W, H: g.H, cells: make([]bool, len(g.cells))}
	copy(c.cells, g.cells)
	return c
}

// Equal reports whether both grids have the same shape and cells.
func (g *Grid) Equal(o *Grid) bool {
	if g == nil || o == nil {
		return g == o
	}
	if g.W != o.W || g.H != o.H {
		return false
	}
	for i, c := range g.cells {
		if o.cells[i] != c {
			return false
		}
	}
	return true
}

// Clear marks every cell dead.
func (g *Grid) Clear() {
	for i := range g.cells {
		g.cells[i] = false
	}
}

// FillBytes writes 1 for alive and 0 for dead cells into dst.
func (g *Grid) FillBytes(dst []uint8) {
	for i, c := range g.cells {
		if i >= len(dst) {
			return
		}
		if c {
			dst[i] = 1
			continue
		}
		dst[i] = 0
	}
}
