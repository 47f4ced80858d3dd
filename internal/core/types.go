package core

import (
	"image/color"
	"sort"
	"time"
)

// Size describes the dimensions of a simulation raster.
type Size struct {
	W int
	H int
}

// Sim defines the minimal contract a host needs to drive and draw a
// simulation. Cells holds one palette index per raster cell.
type Sim interface {
	Name() string
	Size() Size
	Reset(seed int64)
	Step()
	Cells() []uint8
}

// Runner is implemented by sims with an explicit start/stop lifecycle.
type Runner interface {
	Start() error
	Stop()
	Running() bool
}

// CellToggler is implemented by sims whose cells can be edited by the host.
type CellToggler interface {
	Toggle(x, y int) bool
}

// PaletteProvider maps cell values to colors. Sims without one are drawn as
// binary on/off rasters.
type PaletteProvider interface {
	Palette() []color.RGBA
}

// Intervaled is implemented by sims that advance once per wall-clock
// interval instead of once per frame.
type Intervaled interface {
	Interval() time.Duration
}

// StatusProvider exposes short human-readable status lines for overlays.
type StatusProvider interface {
	Status() []string
}

// Factory constructs a Sim using an optional configuration map.
type Factory func(cfg map[string]string) Sim

var sims = map[string]Factory{}

// Register adds a simulation factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	sims[name] = f
}

// Sims exposes the registry of available simulation factories.
func Sims() map[string]Factory {
	return sims
}

// SimNames lists registered simulations in lexical order.
func SimNames() []string {
	names := make([]string, 0, len(sims))
	for name := range sims {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
