package render

import (
	"sort"

	"github.com/guptarohit/asciigraph"
)

// Series is one curve y(x) sampled at increasing x.
type Series struct {
	Name string
	X, Y []float64
}

// PlotTrajectories draws every series as a text chart over a shared x axis
// from 0 to the largest x reached. Past the end of a series its curve sits
// on the ground line.
func PlotTrajectories(series []Series, width, height int, caption string) string {
	if width < 2 {
		width = 2
	}
	if height < 1 {
		height = 1
	}
	xmax := 0.0
	for _, s := range series {
		for _, x := range s.X {
			if x > xmax {
				xmax = x
			}
		}
	}
	data := make([][]float64, 0, len(series))
	for _, s := range series {
		if len(s.X) == 0 || len(s.X) != len(s.Y) {
			continue
		}
		data = append(data, Resample(s.X, s.Y, xmax, width))
	}
	if len(data) == 0 {
		return ""
	}
	opts := []asciigraph.Option{
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Precision(1),
	}
	if caption != "" {
		opts = append(opts, asciigraph.Caption(caption))
	}
	return asciigraph.PlotMany(data, opts...)
}

// Resample linearly interpolates y at n evenly spaced x positions in
// [0, xmax]. Positions outside the sampled x range yield 0. xs must be
// sorted ascending.
func Resample(xs, ys []float64, xmax float64, n int) []float64 {
	out := make([]float64, n)
	if len(xs) == 0 || n == 0 {
		return out
	}
	for i := range out {
		x := 0.0
		if n > 1 {
			x = xmax * float64(i) / float64(n-1)
		}
		out[i] = interpolate(xs, ys, x)
	}
	return out
}

func interpolate(xs, ys []float64, x float64) float64 {
	if x > xs[len(xs)-1] {
		return 0
	}
	j := sort.SearchFloat64s(xs, x)
	if j == 0 {
		if xs[0] == 0 {
			return ys[0]
		}
		// Launch point is the origin.
		return ys[0] * x / xs[0]
	}
	if j >= len(xs) {
		return ys[len(ys)-1]
	}
	x0, x1 := xs[j-1], xs[j]
	if x1 == x0 {
		return ys[j]
	}
	t := (x - x0) / (x1 - x0)
	return ys[j-1] + t*(ys[j]-ys[j-1])
}
