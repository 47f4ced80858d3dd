package projectile

import (
	"math"

	"labsim/internal/core"
)

// Params holds the raw launch parameters entered by the user.
type Params struct {
	Speed    float64 // initial speed v
	Angle    float64 // launch angle in degrees
	Mass     float64
	Drag     float64 // linear drag coefficient c
	Dt       float64
	Gravity  float64
	Friction bool
}

// DefaultParams returns the classroom defaults.
func DefaultParams() Params {
	return Params{
		Speed:    50,
		Angle:    60,
		Mass:     2,
		Drag:     0.7,
		Dt:       0.01,
		Gravity:  9.81,
		Friction: true,
	}
}

// Validate reports the first parameter that cannot start a run.
func (p Params) Validate() error {
	if err := core.CheckFinite("v", p.Speed); err != nil {
		return err
	}
	if err := core.CheckFinite("alpha", p.Angle); err != nil {
		return err
	}
	if err := core.CheckPositive("m", p.Mass); err != nil {
		return err
	}
	if p.Friction {
		if err := core.CheckFinite("c", p.Drag); err != nil {
			return err
		}
	}
	if err := core.CheckPositive("dt", p.Dt); err != nil {
		return err
	}
	return core.CheckFinite("g", p.Gravity)
}

// Derived holds the values recomputed whenever Params change.
type Derived struct {
	AngleRad float64
	R        float64 // drag ratio c/m, zero when friction is disabled
	Dt       float64
	Gravity  float64
}

// ComputeDerived converts raw parameters into the integrator inputs and the
// launch state. The launch position is always the origin.
func ComputeDerived(p Params) (State, Derived) {
	rad := math.Pi * p.Angle / 180
	c := p.Drag
	if !p.Friction {
		c = 0
	}
	d := Derived{
		AngleRad: rad,
		R:        c / p.Mass,
		Dt:       p.Dt,
		Gravity:  p.Gravity,
	}
	s := State{
		VX: p.Speed * math.Cos(rad),
		VY: p.Speed * math.Sin(rad),
	}
	return s, d
}
