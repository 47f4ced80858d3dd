package projectile

import (
	"errors"
	"math"
	"testing"

	"labsim/internal/core"
)

func TestStepWithoutRun(t *testing.T) {
	sim := NewSimulator(DefaultParams())
	if _, err := sim.Step(); !errors.Is(err, core.ErrStateUnavailable) {
		t.Fatalf("expected ErrStateUnavailable, got %v", err)
	}
	if sim.RunID() != -1 {
		t.Fatalf("run id = %d before first start, expected -1", sim.RunID())
	}
}

func TestStartRejectsInvalidParams(t *testing.T) {
	tests := []struct {
		name string
		edit func(*Params)
		key  string
	}{
		{"zero dt", func(p *Params) { p.Dt = 0 }, "dt"},
		{"nan speed", func(p *Params) { p.Speed = math.NaN() }, "v"},
		{"zero mass", func(p *Params) { p.Mass = 0 }, "m"},
		{"inf gravity", func(p *Params) { p.Gravity = math.Inf(-1) }, "g"},
		{"nan drag", func(p *Params) { p.Drag = math.NaN() }, "c"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := DefaultParams()
			tt.edit(&p)
			sim := NewSimulator(p)
			before := sim.State()

			_, err := sim.Start()
			if !errors.Is(err, core.ErrInvalidParameter) {
				t.Fatalf("expected ErrInvalidParameter, got %v", err)
			}
			var pe *core.ParamError
			if !errors.As(err, &pe) || pe.Key != tt.key {
				t.Fatalf("expected error for %q, got %v", tt.key, err)
			}
			if sim.Running() || sim.RunID() != -1 || len(sim.Runs()) != 0 {
				t.Fatal("refused start must not start a run")
			}
			after := sim.State()
			if !(math.IsNaN(before.VX) && math.IsNaN(after.VX)) && before != after {
				t.Fatalf("state mutated by refused start: %+v -> %+v", before, after)
			}
		})
	}
}

func TestNaNDragIgnoredWithoutFriction(t *testing.T) {
	p := DefaultParams()
	p.Friction = false
	p.Drag = math.NaN()
	sim := NewSimulator(p)
	if _, err := sim.Start(); err != nil {
		t.Fatalf("drag must be ignored when friction is off: %v", err)
	}
}

func TestRunsKeepSeparateSamples(t *testing.T) {
	sim := NewSimulator(DefaultParams())

	first, err := sim.Start()
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 5; i++ {
		if _, err := sim.Step(); err != nil {
			t.Fatal(err)
		}
	}
	sim.Stop()

	if _, err := sim.Step(); !errors.Is(err, core.ErrStateUnavailable) {
		t.Fatalf("step after stop: expected ErrStateUnavailable, got %v", err)
	}
	if s := sim.State(); s.X != 0 || s.Y != 0 {
		t.Fatalf("stop must return the projectile to the origin, got %+v", s)
	}

	if !sim.SetParams(Params{Speed: 20, Angle: 45, Mass: 1, Dt: 0.02, Gravity: 9.81}) {
		t.Fatal("SetParams refused while stopped")
	}
	second, err := sim.Start()
	if err != nil {
		t.Fatal(err)
	}
	if second <= first {
		t.Fatalf("run ids must increase: %d then %d", first, second)
	}
	for i := 0; i < 3; i++ {
		if _, err := sim.Step(); err != nil {
			t.Fatal(err)
		}
	}

	a, ok := sim.Trajectory(first)
	if !ok || len(a) != 5 {
		t.Fatalf("first run has %d samples, expected 5", len(a))
	}
	b, ok := sim.Trajectory(second)
	if !ok || len(b) != 3 {
		t.Fatalf("second run has %d samples, expected 3", len(b))
	}
	if ids := sim.Runs(); len(ids) != 2 || ids[0] != first || ids[1] != second {
		t.Fatalf("runs = %v", ids)
	}

	a[0].X = -1
	if again, _ := sim.Trajectory(first); again[0].X == -1 {
		t.Fatal("Trajectory must return a copy")
	}
}

func TestSetParamsRefusedWhileRunning(t *testing.T) {
	sim := NewSimulator(DefaultParams())
	if _, err := sim.Start(); err != nil {
		t.Fatal(err)
	}
	if sim.SetParams(Params{Speed: 1, Mass: 1, Dt: 1}) {
		t.Fatal("SetParams accepted during a run")
	}
	if sim.Params() != DefaultParams() {
		t.Fatal("params changed during a run")
	}
	id, err := sim.Start()
	if err != nil || id != sim.RunID() {
		t.Fatalf("start during a run returned (%d, %v)", id, err)
	}
}

func TestSetParamsRecomputesAndZeroesState(t *testing.T) {
	sim := NewSimulator(DefaultParams())
	sim.Update(func(p *Params) { p.Angle = 0; p.Friction = false })
	s := sim.State()
	if !near(s.VX, 50, tolerance) || !near(s.VY, 0, tolerance) {
		t.Fatalf("state not recomputed: %+v", s)
	}
	if sim.Derived().R != 0 {
		t.Fatalf("r = %v, expected 0", sim.Derived().R)
	}
}

func TestResetDropsTrajectories(t *testing.T) {
	sim := NewSimulator(DefaultParams())
	if _, err := sim.Start(); err != nil {
		t.Fatal(err)
	}
	if _, err := sim.Step(); err != nil {
		t.Fatal(err)
	}
	sim.Reset()
	if sim.Running() || len(sim.Runs()) != 0 {
		t.Fatal("reset must stop and clear every run")
	}
	id, err := sim.Start()
	if err != nil {
		t.Fatal(err)
	}
	if id != 1 {
		t.Fatalf("run id after reset = %d, expected 1", id)
	}
}
