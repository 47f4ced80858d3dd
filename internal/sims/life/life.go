package life

import (
	"fmt"
	"maps"
	"time"

	"labsim/internal/core"
	pcore "labsim/pkg/core"

	"github.com/rs/zerolog"
)

// randomDensity is the alive fraction used by Randomize.
const randomDensity = 0.3

// Life is an editable automaton board with bounded (non-wrapping) edges and
// configurable thresholds. Cells can be edited and rules changed only while
// it is stopped.
type Life struct {
	cfg Config

	cur     *core.Grid
	nxt     *core.Grid
	coords  []Coord
	display []uint8

	running    bool
	generation int

	log zerolog.Logger
}

// New returns a size x size board with the default rules and pattern.
func New(size int) *Life {
	cfg := DefaultConfig()
	cfg.Size = size
	return NewWithConfig(cfg)
}

// NewWithConfig returns a board configured from the provided options.
func NewWithConfig(cfg Config) *Life {
	cfg.invalid = maps.Clone(cfg.invalid)
	if cfg.Size <= 0 {
		cfg.Size = DefaultConfig().Size
	}
	l := &Life{cfg: cfg, log: zerolog.Nop()}
	l.allocate(cfg.Size)
	if cfg.Seed == SeedDefault {
		stamp(l.cur, DefaultSeed())
		l.refresh()
	}
	return l
}

func (l *Life) allocate(size int) {
	cur, coords, err := Resize(size)
	if err != nil {
		return
	}
	l.cfg.Size = size
	l.cur = cur
	l.nxt = core.NewSquareGrid(size)
	l.coords = coords
	l.display = make([]uint8, size*size)
	l.generation = 0
}

func (l *Life) refresh() {
	if l.cur != nil {
		l.cur.FillBytes(l.display)
	}
}

// SetLogger routes lifecycle events to lg.
func (l *Life) SetLogger(lg zerolog.Logger) { l.log = lg }

// Name returns the simulation identifier.
func (l *Life) Name() string { return "life" }

// Size returns the grid dimensions.
func (l *Life) Size() core.Size { return core.Size{W: l.cfg.Size, H: l.cfg.Size} }

// Cells exposes the current grid values as 0/1.
func (l *Life) Cells() []uint8 { return l.display }

// Grid returns a copy of the current generation.
func (l *Life) Grid() *core.Grid {
	if l.cur == nil {
		return nil
	}
	return l.cur.Clone()
}

// Coords returns the coordinate list of the board.
func (l *Life) Coords() []Coord { return append([]Coord(nil), l.coords...) }

// Rules returns the active thresholds.
func (l *Life) Rules() Rules { return l.cfg.Rules }

// Generation counts generations since the last reset or resize.
func (l *Life) Generation() int { return l.generation }

// Interval is the wall-clock time between generations while running.
func (l *Life) Interval() time.Duration {
	return time.Duration(l.cfg.Interval * float64(time.Second))
}

// Running reports whether the board advances on Step.
func (l *Life) Running() bool { return l.running }

// Start lets Step advance the board. It fails while any option given at
// construction is unparsable and has not been set since.
func (l *Life) Start() error {
	if l.cur == nil {
		return fmt.Errorf("life start: %w", core.ErrStateUnavailable)
	}
	if err := l.cfg.Validate(); err != nil {
		return err
	}
	l.running = true
	l.log.Debug().Int("generation", l.generation).Int("population", l.cur.Population()).Msg("automaton started")
	return nil
}

// Stop freezes the board.
func (l *Life) Stop() {
	if !l.running {
		return
	}
	l.running = false
	l.log.Debug().Int("generation", l.generation).Msg("automaton stopped")
}

// Step advances one generation while running. It is the per-tick hook.
func (l *Life) Step() {
	if !l.running {
		return
	}
	if err := l.Advance(); err != nil {
		l.log.Error().Err(err).Msg("automaton step failed")
	}
}

// Advance computes one generation regardless of the running flag.
func (l *Life) Advance() error {
	if l.cur == nil {
		return fmt.Errorf("life step: %w", core.ErrStateUnavailable)
	}
	before := l.cur.Population()
	StepInto(l.nxt, l.cur, l.cfg.Rules)
	l.cur, l.nxt = l.nxt, l.cur
	l.generation++
	l.refresh()
	if l.running && before > 0 && l.cur.Population() == 0 {
		l.log.Info().Int("generation", l.generation).Msg("population died out")
	}
	return nil
}

// Toggle flips one cell. It is refused while running or out of bounds.
func (l *Life) Toggle(x, y int) bool {
	if l.running || l.cur == nil || !l.cur.InBounds(x, y) {
		return false
	}
	l.cur.Set(x, y, !l.cur.Alive(x, y))
	l.refresh()
	return true
}

// Resize stops any run and replaces the board with an all-dead one of the
// given size.
func (l *Life) Resize(size int) error {
	if size <= 0 {
		return &core.ParamError{Key: "size", Reason: "must be positive"}
	}
	l.Stop()
	l.allocate(size)
	l.cfg.accept("size")
	l.log.Debug().Int("size", size).Msg("automaton resized")
	return nil
}

// SetRules replaces the thresholds. It is refused while running.
func (l *Life) SetRules(r Rules) bool {
	if l.running {
		return false
	}
	l.cfg.Rules = r
	l.cfg.accept("over", "under", "rebirth")
	return true
}

// LoadSeed stamps a pattern onto a cleared board. It is refused while running.
func (l *Life) LoadSeed(rows [][]bool) bool {
	if l.running || l.cur == nil {
		return false
	}
	l.cur.Clear()
	stamp(l.cur, rows)
	l.generation = 0
	l.refresh()
	return true
}

// Reset stops the board and clears every cell.
func (l *Life) Reset(seed int64) {
	l.Stop()
	if l.cur == nil {
		l.allocate(l.cfg.Size)
	}
	l.cur.Clear()
	l.generation = 0
	l.refresh()
}

// Randomize fills the board with a deterministic random pattern. It is
// refused while running.
func (l *Life) Randomize(seed int64) bool {
	if l.running || l.cur == nil {
		return false
	}
	if seed == 0 {
		seed = l.cfg.RandSeed
	}
	pcore.NewRNG(seed).FillBools(l.cur.Cells(), randomDensity)
	l.generation = 0
	l.refresh()
	return true
}

// Status reports the generation, population and rules.
func (l *Life) Status() []string {
	phase := "stopped"
	if l.running {
		phase = "running"
	}
	pop := 0
	if l.cur != nil {
		pop = l.cur.Population()
	}
	r := l.cfg.Rules
	return []string{
		fmt.Sprintf("generation %d %s", l.generation, phase),
		fmt.Sprintf("population %d / %d", pop, l.cfg.Size*l.cfg.Size),
		fmt.Sprintf("over>%d under<%d rebirth=%d", r.Overpopulation, r.Underpopulation, r.Rebirth),
		fmt.Sprintf("interval %.2fs", l.cfg.Interval),
	}
}

func init() {
	core.Register("life", func(cfg map[string]string) core.Sim {
		return NewWithConfig(FromMap(cfg))
	})
}
