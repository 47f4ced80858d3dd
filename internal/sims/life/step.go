package life

import (
	"labsim/internal/core"
)

// Coord addresses one board cell.
type Coord struct {
	X, Y int
}

// Neighbors counts alive cells in the Moore neighbourhood of (x, y).
// Positions outside the grid count as dead; there is no wraparound.
func Neighbors(g *core.Grid, x, y int) int {
	n := 0
	for dy := -1; dy <= 1; dy++ {
		ny := y + dy
		if ny < 0 || ny >= g.H {
			continue
		}
		for dx := -1; dx <= 1; dx++ {
			nx := x + dx
			if nx < 0 || nx >= g.W {
				continue
			}
			if dx == 0 && dy == 0 {
				continue
			}
			if g.Cells()[ny*g.W+nx] {
				n++
			}
		}
	}
	return n
}

// Step returns the next generation of g. g is not modified.
func Step(g *core.Grid, r Rules) *core.Grid {
	next := core.NewGrid(g.W, g.H)
	StepInto(next, g, r)
	return next
}

// StepInto writes the next generation of src into dst, which must have the
// same dimensions and must not alias src.
func StepInto(dst, src *core.Grid, r Rules) {
	cur, nxt := src.Cells(), dst.Cells()
	for y := 0; y < src.H; y++ {
		for x := 0; x < src.W; x++ {
			idx := y*src.W + x
			nxt[idx] = NextState(cur[idx], Neighbors(src, x, y), r)
		}
	}
}

// Toggle returns a copy of g with the cell at (x, y) flipped.
func Toggle(g *core.Grid, x, y int) *core.Grid {
	next := g.Clone()
	if next.InBounds(x, y) {
		next.Set(x, y, !next.Alive(x, y))
	}
	return next
}

// Resize allocates an all-dead size x size grid with its coordinate list.
func Resize(size int) (*core.Grid, []Coord, error) {
	if size <= 0 {
		return nil, nil, &core.ParamError{Key: "size", Reason: "must be positive"}
	}
	return core.NewSquareGrid(size), Coords(size), nil
}

// Coords lists every cell of a size x size board exactly once, column by
// column.
func Coords(size int) []Coord {
	if size <= 0 {
		return nil
	}
	out := make([]Coord, 0, size*size)
	for x := 0; x < size; x++ {
		for y := 0; y < size; y++ {
			out = append(out, Coord{X: x, Y: y})
		}
	}
	return out
}
