package projectile

import (
	"fmt"

	"labsim/internal/core"
)

// Simulator owns the running projectile state and the per-run sample store.
// It has no notion of landing: callers inspect State after each Step.
type Simulator struct {
	params  Params
	derived Derived
	state   State

	traj    *Trajectories
	nextID  int
	runID   int
	running bool
}

// NewSimulator prepares a stopped simulator with the given parameters.
func NewSimulator(p Params) *Simulator {
	s := &Simulator{traj: NewTrajectories(), runID: -1}
	s.apply(p)
	return s
}

func (s *Simulator) apply(p Params) {
	s.params = p
	s.state, s.derived = ComputeDerived(p)
}

// Params returns the raw parameters.
func (s *Simulator) Params() Params { return s.params }

// Derived returns the values derived from the current parameters.
func (s *Simulator) Derived() Derived { return s.derived }

// State returns the current position and velocity.
func (s *Simulator) State() State { return s.state }

// Running reports whether a run is accepting steps.
func (s *Simulator) Running() bool { return s.running }

// RunID returns the id of the latest run, or -1 before the first start.
func (s *Simulator) RunID() int { return s.runID }

// Trajectory returns a copy of the samples recorded for run id.
func (s *Simulator) Trajectory(id int) ([]Sample, bool) { return s.traj.Get(id) }

// Runs lists recorded run ids in ascending order.
func (s *Simulator) Runs() []int { return s.traj.IDs() }

// Trajectories exposes the sample store for read-only traversal.
func (s *Simulator) Trajectories() *Trajectories { return s.traj }

// SetParams replaces the parameters, recomputes derived values and puts the
// projectile back at the launch point. It is refused while a run is active.
func (s *Simulator) SetParams(p Params) bool {
	if s.running {
		return false
	}
	s.apply(p)
	return true
}

// Update edits a copy of the parameters and applies it via SetParams.
func (s *Simulator) Update(fn func(*Params)) bool {
	if s.running {
		return false
	}
	p := s.params
	fn(&p)
	return s.SetParams(p)
}

// Start validates the parameters and begins a new run with a fresh sample
// sequence. Nothing changes when validation fails. Starting while a run is
// active returns the active run id.
func (s *Simulator) Start() (int, error) {
	if s.running {
		return s.runID, nil
	}
	if err := s.params.Validate(); err != nil {
		return s.runID, err
	}
	state, derived := ComputeDerived(s.params)
	if err := core.CheckFinite("r", derived.R); err != nil {
		return s.runID, err
	}
	s.state, s.derived = state, derived
	s.runID = s.nextID
	s.nextID++
	s.traj.Begin(s.runID)
	s.running = true
	return s.runID, nil
}

// Step advances the active run by one time step and records the new
// position.
func (s *Simulator) Step() (Sample, error) {
	if !s.running {
		return Sample{}, fmt.Errorf("projectile step: %w", core.ErrStateUnavailable)
	}
	s.state = StepX(s.state, s.derived)
	s.state = StepY(s.state, s.derived)
	sample := Sample{X: s.state.X, Y: s.state.Y}
	s.traj.Append(s.runID, sample)
	return sample, nil
}

// Stop ends the active run. Its samples stay queryable; the projectile is
// returned to the launch state.
func (s *Simulator) Stop() {
	s.running = false
	s.apply(s.params)
}

// Reset stops any run and discards all recorded trajectories. Run ids keep
// increasing.
func (s *Simulator) Reset() {
	s.Stop()
	s.traj.Clear()
}
