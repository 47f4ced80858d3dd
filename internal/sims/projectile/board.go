package projectile

import (
	"fmt"

	"labsim/internal/core"
	pcore "labsim/pkg/core"

	"github.com/rs/zerolog"
)

// Board drives a Simulator once per frame, applies the landing rule and keeps
// a paletted raster of every recorded run for the hosts.
type Board struct {
	cfg Config
	sim *Simulator

	rng      *pcore.RNG
	colors   map[int]uint8
	steps    int
	display  []uint8
	onFinish func(runID int, reason FinishReason)

	log zerolog.Logger
}

// New returns a Board with the default configuration.
func New() *Board {
	return NewWithConfig(DefaultConfig())
}

// NewWithConfig returns a Board configured from the provided options.
func NewWithConfig(cfg Config) *Board {
	if cfg.Width <= 0 {
		cfg.Width = 1
	}
	if cfg.Height <= 0 {
		cfg.Height = 1
	}
	b := &Board{
		cfg:     cfg,
		sim:     NewSimulator(cfg.Params),
		rng:     pcore.NewRNG(cfg.Seed),
		colors:  map[int]uint8{},
		display: make([]uint8, cfg.Width*cfg.Height),
		log:     zerolog.Nop(),
	}
	b.rebuildDisplay()
	return b
}

// SetLogger routes run lifecycle events to l.
func (b *Board) SetLogger(l zerolog.Logger) { b.log = l }

// FinishReason tells why a run ended on its own.
type FinishReason string

const (
	// FinishLanded means the projectile reached the ground line.
	FinishLanded FinishReason = "landed"
	// FinishStepCap means the run was cut by MaxSteps.
	FinishStepCap FinishReason = "step cap"
)

// OnFinish registers a callback fired when a run lands or hits the step cap.
func (b *Board) OnFinish(fn func(runID int, reason FinishReason)) { b.onFinish = fn }

// Simulator exposes the underlying integrator.
func (b *Board) Simulator() *Simulator { return b.sim }

// Name returns the simulation identifier.
func (b *Board) Name() string { return "projectile" }

// Size reports the raster dimensions.
func (b *Board) Size() core.Size { return core.Size{W: b.cfg.Width, H: b.cfg.Height} }

// Cells exposes the current display buffer.
func (b *Board) Cells() []uint8 { return b.display }

// Running reports whether a run is in flight.
func (b *Board) Running() bool { return b.sim.Running() }

// Start launches a new run in a freshly picked color.
func (b *Board) Start() error {
	if b.sim.Running() {
		return nil
	}
	id, err := b.sim.Start()
	if err != nil {
		b.log.Warn().Err(err).Msg("projectile run refused")
		return err
	}
	b.colors[id] = runColorBase + uint8(b.rng.IntN(len(runColors)))
	b.steps = 0
	b.log.Debug().Int("run", id).Float64("r", b.sim.Derived().R).Msg("projectile run started")
	b.rebuildDisplay()
	return nil
}

// Stop halts the run in flight. Its trajectory stays on the board.
func (b *Board) Stop() {
	if !b.sim.Running() {
		return
	}
	b.log.Debug().Int("run", b.sim.RunID()).Int("steps", b.steps).Msg("projectile run stopped")
	b.sim.Stop()
	b.rebuildDisplay()
}

// Reset stops any run, clears every trajectory and reseeds the color picker.
func (b *Board) Reset(seed int64) {
	if seed == 0 {
		seed = b.cfg.Seed
	}
	b.sim.Reset()
	b.rng = pcore.NewRNG(seed)
	b.colors = map[int]uint8{}
	b.steps = 0
	b.rebuildDisplay()
}

// Step advances the active run by one frame and ends it once the projectile
// is at or below the ground line.
func (b *Board) Step() {
	if !b.sim.Running() {
		return
	}
	sample, err := b.sim.Step()
	if err != nil {
		b.log.Error().Err(err).Msg("projectile step failed")
		return
	}
	b.steps++
	switch {
	case landed(sample):
		b.finish(FinishLanded)
	case b.cfg.MaxSteps > 0 && b.steps >= b.cfg.MaxSteps:
		b.log.Warn().Int("run", b.sim.RunID()).Int("max_steps", b.cfg.MaxSteps).Msg("projectile run hit step cap")
		b.finish(FinishStepCap)
	}
	b.rebuildDisplay()
}

func (b *Board) finish(reason FinishReason) {
	id := b.sim.RunID()
	state := b.sim.State()
	b.log.Info().Int("run", id).Int("steps", b.steps).Float64("x", state.X).Str("reason", string(reason)).Msg("projectile run finished")
	b.sim.Stop()
	if b.onFinish != nil {
		b.onFinish(id, reason)
	}
}

// Status reports the run id, state and recorded run count.
func (b *Board) Status() []string {
	state := b.sim.State()
	phase := "stopped"
	if b.sim.Running() {
		phase = "running"
	}
	lines := []string{
		fmt.Sprintf("run %d %s, step %d", b.sim.RunID(), phase, b.steps),
		fmt.Sprintf("x=%.2f y=%.2f", state.X, state.Y),
		fmt.Sprintf("vx=%.2f vy=%.2f", state.VX, state.VY),
		fmt.Sprintf("runs recorded: %d", b.sim.Trajectories().Len()),
	}
	return lines
}

func init() {
	core.Register("projectile", func(cfg map[string]string) core.Sim {
		return NewWithConfig(FromMap(cfg))
	})
}
