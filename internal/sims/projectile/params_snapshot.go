package projectile

import "labsim/internal/core"

// Parameters reports the current tunables grouped for the HUD.
func (b *Board) Parameters() core.ParameterSnapshot {
	p := b.sim.Params()
	d := b.sim.Derived()
	groups := []core.ParameterGroup{
		{
			Name: "Launch",
			Params: []core.Parameter{
				core.FloatParam("v", "Speed", p.Speed),
				core.FloatParam("alpha", "Angle (deg)", p.Angle),
			},
		},
		{
			Name: "Body",
			Params: []core.Parameter{
				core.FloatParam("m", "Mass", p.Mass),
				core.BoolParam("friction", "Drag enabled", p.Friction),
				core.FloatParam("c", "Drag coefficient", p.Drag),
			},
			Summary: "drag ratio r = c/m",
		},
		{
			Name: "Integration",
			Params: []core.Parameter{
				core.FloatParam("dt", "Time step", p.Dt),
				core.FloatParam("g", "Gravity", p.Gravity),
				core.IntParam("max_steps", "Step cap", b.cfg.MaxSteps),
			},
		},
		{
			Name: "Derived",
			Params: []core.Parameter{
				core.FloatParam("alpha_rad", "Angle (rad)", d.AngleRad),
				core.FloatParam("r", "Drag ratio", d.R),
			},
		},
	}
	return core.ParameterSnapshot{Groups: groups}
}

// ParameterControls lists the HUD-adjustable parameters.
func (b *Board) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: "v", Label: "Speed", Type: core.ParamTypeFloat, Step: 5, Min: 0, HasMin: true},
		{Key: "alpha", Label: "Angle", Type: core.ParamTypeFloat, Step: 5, Min: 0, Max: 90, HasMin: true, HasMax: true},
		{Key: "m", Label: "Mass", Type: core.ParamTypeFloat, Step: 0.5, Min: 0.5, HasMin: true},
		{Key: "friction", Label: "Drag on", Type: core.ParamTypeBool},
		{Key: "c", Label: "Drag coef", Type: core.ParamTypeFloat, Step: 0.1, Min: 0, HasMin: true},
		{Key: "dt", Label: "Time step", Type: core.ParamTypeFloat, Step: 0.005, Min: 0.005, HasMin: true},
		{Key: "g", Label: "Gravity", Type: core.ParamTypeFloat, Step: 0.5, Min: 0, HasMin: true},
	}
}

// SetFloatParameter updates a launch parameter. It is refused while a run is
// in flight.
func (b *Board) SetFloatParameter(key string, value float64) bool {
	var ok bool
	applied := b.sim.Update(func(p *Params) {
		ok = true
		switch key {
		case "v":
			p.Speed = value
		case "alpha":
			p.Angle = value
		case "m":
			p.Mass = value
		case "c":
			p.Drag = value
		case "dt":
			p.Dt = value
		case "g":
			p.Gravity = value
		default:
			ok = false
		}
	})
	if applied && ok {
		b.rebuildDisplay()
	}
	return applied && ok
}

// SetBoolParameter toggles drag.
func (b *Board) SetBoolParameter(key string, value bool) bool {
	if key != "friction" {
		return false
	}
	if !b.sim.Update(func(p *Params) { p.Friction = value }) {
		return false
	}
	b.rebuildDisplay()
	return true
}

// SetIntParameter updates the step cap.
func (b *Board) SetIntParameter(key string, value int) bool {
	if key != "max_steps" || value < 0 || b.sim.Running() {
		return false
	}
	b.cfg.MaxSteps = value
	return true
}
