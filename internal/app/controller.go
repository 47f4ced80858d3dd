package app

import (
	"fmt"

	"labsim/internal/core"

	"github.com/rs/zerolog"
)

type advancer interface {
	Advance() error
}

type randomizer interface {
	Randomize(seed int64) bool
}

// Controller owns the host-side run state of a sim: start/stop, single
// steps, reseeding and pacing. Hosts translate input into its methods and
// call Tick once per frame.
type Controller struct {
	sim      core.Sim
	runner   core.Runner
	toggler  core.CellToggler
	interval core.Intervaled
	timer    *core.FixedStep

	seed     int64
	paused   bool
	tickOnce bool
	log      zerolog.Logger
}

// NewController wraps sim. Sims without an interval advance tps times per
// second.
func NewController(sim core.Sim, tps int, seed int64, log zerolog.Logger) *Controller {
	c := &Controller{sim: sim, seed: seed, log: log}
	c.runner, _ = sim.(core.Runner)
	c.toggler, _ = sim.(core.CellToggler)
	c.interval, _ = sim.(core.Intervaled)
	if c.interval != nil {
		c.timer = core.NewFixedInterval(c.interval.Interval())
	} else {
		c.timer = core.NewFixedStep(tps)
	}
	return c
}

// Sim returns the wrapped simulation.
func (c *Controller) Sim() core.Sim { return c.sim }

// Timer exposes the pacing timer.
func (c *Controller) Timer() *core.FixedStep { return c.timer }

// Seed returns the seed used by Reset.
func (c *Controller) Seed() int64 { return c.seed }

// Active reports whether Tick will advance the sim on schedule.
func (c *Controller) Active() bool {
	if c.runner != nil {
		return c.runner.Running()
	}
	return !c.paused
}

// ToggleRun starts a stopped sim or stops a running one. Sims without a
// lifecycle are paused and resumed instead.
func (c *Controller) ToggleRun() error {
	if c.runner == nil {
		c.paused = !c.paused
		return nil
	}
	if c.runner.Running() {
		c.runner.Stop()
		return nil
	}
	if err := c.runner.Start(); err != nil {
		c.log.Warn().Err(err).Str("sim", c.sim.Name()).Msg("start refused")
		return fmt.Errorf("start %s: %w", c.sim.Name(), err)
	}
	c.timer.Restart()
	return nil
}

// StepOnce queues a single step for the next Tick.
func (c *Controller) StepOnce() { c.tickOnce = true }

// Reset reinitializes the sim with the current seed.
func (c *Controller) Reset() {
	c.sim.Reset(c.seed)
	c.tickOnce = false
	c.timer.Restart()
}

// Reseed switches to a new seed. Sims that support it are filled with a
// random pattern, others are reset.
func (c *Controller) Reseed(seed int64) {
	c.seed = seed
	if r, ok := c.sim.(randomizer); ok && r.Randomize(seed) {
		c.tickOnce = false
		return
	}
	c.Reset()
}

// ToggleCell flips a cell on sims that allow editing.
func (c *Controller) ToggleCell(x, y int) bool {
	if c.toggler == nil {
		return false
	}
	return c.toggler.Toggle(x, y)
}

// Tick advances the sim if a single step is queued or its period elapsed.
// It reports whether the sim was stepped.
func (c *Controller) Tick() bool {
	if c.interval != nil {
		c.timer.SetInterval(c.interval.Interval())
	}
	if c.tickOnce {
		c.tickOnce = false
		c.advance()
		return true
	}
	if !c.Active() {
		return false
	}
	if !c.timer.ShouldStep() {
		return false
	}
	c.sim.Step()
	return true
}

func (c *Controller) advance() {
	if adv, ok := c.sim.(advancer); ok {
		if err := adv.Advance(); err != nil {
			c.log.Warn().Err(err).Str("sim", c.sim.Name()).Msg("single step failed")
		}
		return
	}
	c.sim.Step()
}

// Status collects the sim's status lines, if any.
func (c *Controller) Status() []string {
	if sp, ok := c.sim.(core.StatusProvider); ok {
		return sp.Status()
	}
	return nil
}
