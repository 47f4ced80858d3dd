package life

import (
	"math"

	"labsim/internal/core"
)

// Parameters reports the current tunables grouped for the HUD.
func (l *Life) Parameters() core.ParameterSnapshot {
	r := l.cfg.Rules
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Board",
			Params: []core.Parameter{
				core.IntParam("size", "Size", l.cfg.Size),
				core.FloatParam("interval", "Interval (s)", l.cfg.Interval),
			},
		},
		{
			Name: "Rules",
			Params: []core.Parameter{
				core.IntParam("over", "Overpopulation", r.Overpopulation),
				core.IntParam("under", "Underpopulation", r.Underpopulation),
				core.IntParam("rebirth", "Rebirth", r.Rebirth),
			},
		},
	}}
}

// ParameterControls lists the HUD-adjustable parameters.
func (l *Life) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: "size", Label: "Size", Type: core.ParamTypeInt, Step: 1, Min: 1, Max: 200, HasMin: true, HasMax: true},
		{Key: "interval", Label: "Interval", Type: core.ParamTypeFloat, Step: 0.1, Min: 0.1, HasMin: true},
		{Key: "over", Label: "Over", Type: core.ParamTypeInt, Step: 1, Min: 0, Max: 8, HasMin: true, HasMax: true},
		{Key: "under", Label: "Under", Type: core.ParamTypeInt, Step: 1, Min: 0, Max: 8, HasMin: true, HasMax: true},
		{Key: "rebirth", Label: "Rebirth", Type: core.ParamTypeInt, Step: 1, Min: 0, Max: 8, HasMin: true, HasMax: true},
	}
}

// SetIntParameter updates size or a rule threshold while stopped.
func (l *Life) SetIntParameter(key string, value int) bool {
	if l.running {
		return false
	}
	r := l.cfg.Rules
	switch key {
	case "size":
		return l.Resize(value) == nil
	case "over":
		r.Overpopulation = value
	case "under":
		r.Underpopulation = value
	case "rebirth":
		r.Rebirth = value
	default:
		return false
	}
	l.cfg.Rules = r
	l.cfg.accept(key)
	return true
}

// SetFloatParameter updates the tick interval while stopped.
func (l *Life) SetFloatParameter(key string, value float64) bool {
	if l.running || key != "interval" || math.IsNaN(value) {
		return false
	}
	l.cfg.Interval = value
	return true
}
