//go:build ebiten

package app

import (
	"image/color"
	"time"

	"labsim/internal/core"
	"labsim/internal/render"
	"labsim/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/rs/zerolog"
)

// Game adapts a core simulation to the ebiten.Game interface.
type Game struct {
	ctrl    *Controller
	sim     core.Sim
	painter *render.GridPainter
	overlay *ui.Overlay
	hud     *ui.HUD
	palette []color.RGBA
	log     zerolog.Logger

	onColor  color.Color
	offColor color.Color

	scale int
}

// New constructs a Game for the provided simulation.
func New(sim core.Sim, cfg *Config, log zerolog.Logger) *Game {
	size := sim.Size()
	g := &Game{
		ctrl:     NewController(sim, cfg.TPS, cfg.Seed, log),
		sim:      sim,
		painter:  render.NewGridPainter(size.W, size.H),
		overlay:  ui.NewOverlay(sim),
		hud:      ui.NewHUD(sim, cfg.HUDWidth),
		log:      log,
		onColor:  color.White,
		offColor: color.Black,
		scale:    cfg.Scale,
	}
	if pp, ok := sim.(core.PaletteProvider); ok {
		g.palette = pp.Palette()
	}
	return g
}

// Controller exposes the run controller.
func (g *Game) Controller() *Controller { return g.ctrl }

// Update handles per-frame logic and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		// Refusals are logged by the controller.
		_ = g.ctrl.ToggleRun()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.ctrl.StepOnce()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.ctrl.Reset()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.ctrl.Reseed(time.Now().UnixNano())
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		mx, my := ebiten.CursorPosition()
		if x, y, ok := ui.ScreenToCell(mx, my, g.scale, g.sim.Size()); ok {
			if g.ctrl.ToggleCell(x, y) {
				g.log.Debug().Int("x", x).Int("y", y).Msg("cell toggled")
			}
		}
	}

	g.overlay.Update()
	g.hud.Update(g.viewWidth())
	g.ctrl.Tick()
	return nil
}

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	size := g.sim.Size()
	if w, h := g.painter.Size(); w != size.W || h != size.H {
		// Boards can be resized from the HUD.
		g.painter = render.NewGridPainter(size.W, size.H)
	}
	g.painter.Blit(screen, g.sim.Cells(), g.palette, g.onColor, g.offColor, g.scale)
	g.overlay.Draw(screen)
	g.hud.Draw(screen, g.viewWidth(), g.scale)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.viewWidth() + g.hud.Width(), g.sim.Size().H * g.scale
}

func (g *Game) viewWidth() int { return g.sim.Size().W * g.scale }
