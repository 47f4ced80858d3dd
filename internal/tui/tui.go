package tui

import (
	"context"
	"image/color"
	"time"

	"labsim/internal/app"
	"labsim/internal/core"
	"labsim/internal/render"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"
)

// cellWidth is the number of terminal columns per raster cell.
const cellWidth = 2

// Runner drives a sim controller on a tcell screen.
type Runner struct {
	screen  tcell.Screen
	ctrl    *app.Controller
	palette []color.RGBA
	log     zerolog.Logger

	cursorX, cursorY int
	now              func() time.Time
}

// New builds a Runner. The screen must already be initialised.
func New(screen tcell.Screen, ctrl *app.Controller, log zerolog.Logger) *Runner {
	r := &Runner{screen: screen, ctrl: ctrl, log: log, now: time.Now}
	if pp, ok := ctrl.Sim().(core.PaletteProvider); ok {
		r.palette = pp.Palette()
	}
	return r
}

// Cursor returns the cell under the keyboard cursor.
func (r *Runner) Cursor() (int, int) { return r.cursorX, r.cursorY }

// Run polls input on its own goroutine and ticks the controller every frame
// until ctx is done or the user quits.
func (r *Runner) Run(ctx context.Context, frame time.Duration) error {
	if frame <= 0 {
		frame = time.Second / 60
	}
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	events := make(chan tcell.Event)
	go func() {
		for {
			ev := r.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	ticker := time.NewTicker(frame)
	defer ticker.Stop()

	r.Draw()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev := <-events:
			if r.HandleEvent(ev) {
				return nil
			}
			r.Draw()
		case <-ticker.C:
			if r.ctrl.Tick() {
				r.Draw()
			}
		}
	}
}

// HandleEvent applies one input event. It reports whether the user asked to
// quit.
func (r *Runner) HandleEvent(ev tcell.Event) bool {
	size := r.ctrl.Sim().Size()
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return true
		case tcell.KeyUp:
			r.moveCursor(0, -1, size)
		case tcell.KeyDown:
			r.moveCursor(0, 1, size)
		case tcell.KeyLeft:
			r.moveCursor(-1, 0, size)
		case tcell.KeyRight:
			r.moveCursor(1, 0, size)
		case tcell.KeyEnter:
			r.ctrl.ToggleCell(r.cursorX, r.cursorY)
		case tcell.KeyRune:
			return r.handleRune(ev.Rune())
		}
	case *tcell.EventMouse:
		if ev.Buttons()&tcell.Button1 == 0 {
			return false
		}
		mx, my := ev.Position()
		x, y := mx/cellWidth, my
		if x < size.W && y < size.H {
			r.cursorX, r.cursorY = x, y
			r.ctrl.ToggleCell(x, y)
		}
	case *tcell.EventResize:
		r.screen.Sync()
	}
	return false
}

func (r *Runner) handleRune(ch rune) bool {
	switch ch {
	case 'q':
		return true
	case ' ':
		if err := r.ctrl.ToggleRun(); err != nil {
			r.log.Debug().Err(err).Msg("toggle run")
		}
	case 'n':
		r.ctrl.StepOnce()
	case 'r':
		r.ctrl.Reset()
	case 's':
		r.ctrl.Reseed(r.now().UnixNano())
	}
	return false
}

func (r *Runner) moveCursor(dx, dy int, size core.Size) {
	x, y := r.cursorX+dx, r.cursorY+dy
	if x >= 0 && x < size.W {
		r.cursorX = x
	}
	if y >= 0 && y < size.H {
		r.cursorY = y
	}
}

// Draw paints the raster, the cursor and the status lines below them.
func (r *Runner) Draw() {
	sim := r.ctrl.Sim()
	size := sim.Size()
	cells := sim.Cells()
	r.screen.Clear()
	for y := 0; y < size.H; y++ {
		for x := 0; x < size.W; x++ {
			idx := y*size.W + x
			if idx >= len(cells) {
				break
			}
			style := r.cellStyle(cells[idx])
			if x == r.cursorX && y == r.cursorY && !r.ctrl.Active() {
				style = style.Foreground(tcell.ColorRed)
				r.screen.SetContent(x*cellWidth, y, '[', nil, style)
				r.screen.SetContent(x*cellWidth+1, y, ']', nil, style)
				continue
			}
			for i := 0; i < cellWidth; i++ {
				r.screen.SetContent(x*cellWidth+i, y, ' ', nil, style)
			}
		}
	}
	row := size.H + 1
	for _, line := range r.ctrl.Status() {
		drawText(r.screen, 0, row, line, tcell.StyleDefault.Foreground(tcell.ColorYellow))
		row++
	}
	drawText(r.screen, 0, row, "space run  n step  r reset  s seed  enter toggle  q quit", tcell.StyleDefault.Foreground(tcell.ColorGray))
	r.screen.Show()
}

func (r *Runner) cellStyle(v uint8) tcell.Style {
	c := render.ColorAt(v, r.palette, color.White, color.Black)
	return tcell.StyleDefault.Background(tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B)))
}

func drawText(s tcell.Screen, x, y int, text string, style tcell.Style) {
	for i, ch := range []rune(text) {
		s.SetContent(x+i, y, ch, nil, style)
	}
}
