//go:build ebiten

package ui

import (
	"image/color"

	"labsim/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// Overlay draws the sim's status lines and a key legend over the view.
type Overlay struct {
	sim        core.Sim
	showStatus bool
	showKeys   bool
	backdrop   *ebiten.Image
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(sim core.Sim) *Overlay {
	o := &Overlay{sim: sim, showStatus: true}
	o.backdrop = ebiten.NewImage(1, 1)
	o.backdrop.Fill(color.White)
	return o
}

// Update toggles the status block (Tab) and key legend (H).
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		o.showStatus = !o.showStatus
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		o.showKeys = !o.showKeys
	}
}

// Draw renders the overlay onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	var lines []string
	if o.showStatus {
		if sp, ok := o.sim.(core.StatusProvider); ok {
			lines = append(lines, sp.Status()...)
		}
	}
	if o.showKeys {
		lines = append(lines, KeyLegend...)
	}
	if len(lines) == 0 {
		return
	}
	face := basicfont.Face7x13
	width := 0
	for _, line := range lines {
		if w := text.BoundString(face, line).Dx(); w > width {
			width = w
		}
	}
	const pad, lineH = 4, 14
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(width+2*pad), float64(len(lines)*lineH+2*pad))
	op.ColorScale.ScaleWithColor(color.RGBA{A: 160})
	screen.DrawImage(o.backdrop, op)
	for i, line := range lines {
		text.Draw(screen, line, face, pad, pad+(i+1)*lineH-3, color.RGBA{R: 230, G: 230, B: 120, A: 255})
	}
}
