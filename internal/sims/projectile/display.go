package projectile

import (
	"image/color"
	"math"
)

const (
	paletteBackground uint8 = 0
	paletteAxis       uint8 = 1
	runColorBase      uint8 = 2
)

var runColors = []color.RGBA{
	{R: 0, G: 0, B: 255, A: 255},     // blue
	{R: 0, G: 128, B: 0, A: 255},     // green
	{R: 238, G: 130, B: 238, A: 255}, // violet
	{R: 64, G: 224, B: 208, A: 255},  // turquoise
	{R: 255, G: 165, B: 0, A: 255},   // orange
	{R: 128, G: 128, B: 0, A: 255},   // olive
	{R: 255, G: 127, B: 80, A: 255},  // coral
	{R: 0, G: 255, B: 255, A: 255},   // cyan
}

var paletteProjectile = runColorBase + uint8(len(runColors))

var projectilePalette = buildPalette()

// Palette exposes the colors used for the board raster.
func (b *Board) Palette() []color.RGBA {
	return projectilePalette
}

func buildPalette() []color.RGBA {
	palette := []color.RGBA{
		{R: 16, G: 16, B: 20, A: 255},
		{R: 110, G: 110, B: 120, A: 255},
	}
	palette = append(palette, runColors...)
	return append(palette, color.RGBA{R: 255, G: 0, B: 0, A: 255})
}

// cellFor maps world coordinates to a raster cell. ok is false outside the
// board box.
func (b *Board) cellFor(x, y float64) (int, int, bool) {
	c := b.cfg
	fx := (x - c.XMin) / (c.XMax - c.XMin)
	fy := (y - c.YMin) / (c.YMax - c.YMin)
	if math.IsNaN(fx) || math.IsNaN(fy) || fx < 0 || fx >= 1 || fy < 0 || fy >= 1 {
		return 0, 0, false
	}
	cx := int(fx * float64(c.Width))
	cy := c.Height - 1 - int(fy*float64(c.Height))
	return cx, cy, true
}

func (b *Board) plot(x, y int, v uint8) {
	if x < 0 || x >= b.cfg.Width || y < 0 || y >= b.cfg.Height {
		return
	}
	b.display[y*b.cfg.Width+x] = v
}

// line draws a Bresenham segment between two raster cells.
func (b *Board) line(x0, y0, x1, y1 int, v uint8) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	e := dx + dy
	for {
		b.plot(x0, y0, v)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x0 += sx
		}
		if e2 <= dx {
			e += dx
			y0 += sy
		}
	}
}

func (b *Board) rebuildDisplay() {
	for i := range b.display {
		b.display[i] = paletteBackground
	}
	if ox, oy, ok := b.cellFor(0, 0); ok {
		for x := 0; x < b.cfg.Width; x++ {
			b.plot(x, oy, paletteAxis)
		}
		for y := 0; y < b.cfg.Height; y++ {
			b.plot(ox, y, paletteAxis)
		}
	}

	b.sim.Trajectories().Each(func(id int, samples []Sample) {
		col, ok := b.colors[id]
		if !ok {
			col = runColorBase
		}
		px, py, prevOK := b.cellFor(0, 0)
		for _, s := range samples {
			cx, cy, ok := b.cellFor(s.X, s.Y)
			if ok && prevOK {
				b.line(px, py, cx, cy, col)
			} else if ok {
				b.plot(cx, cy, col)
			}
			px, py, prevOK = cx, cy, ok
		}
	})

	if b.sim.Running() {
		state := b.sim.State()
		if cx, cy, ok := b.cellFor(state.X, state.Y); ok {
			b.plot(cx, cy, paletteProjectile)
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
