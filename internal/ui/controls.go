package ui

import (
	"image"
	"math"
	"strconv"
	"strings"

	"labsim/internal/core"
)

// Title returns the panel heading for sim.
func Title(sim core.Sim) string {
	if sim == nil {
		return "Controls"
	}
	name := sim.Name()
	if name == "" {
		return "Controls"
	}
	return strings.ToUpper(name[:1]) + name[1:] + " Controls"
}

// NextInt moves an integer control one step in direction, clamped to its
// bounds. ok is false when the value would not change.
func NextInt(ctrl core.ParameterControl, current, direction int) (int, bool) {
	if direction == 0 {
		return current, false
	}
	step := int(math.Round(ctrl.Step))
	if step <= 0 {
		step = 1
	}
	target := current + direction*step
	if ctrl.HasMin {
		if min := int(math.Round(ctrl.Min)); target < min {
			target = min
		}
	}
	if ctrl.HasMax {
		if max := int(math.Round(ctrl.Max)); target > max {
			target = max
		}
	}
	return target, target != current
}

// NextFloat moves a float control one step in direction, clamped to its
// bounds. ok is false when the value would not change.
func NextFloat(ctrl core.ParameterControl, current float64, direction int) (float64, bool) {
	if direction == 0 {
		return current, false
	}
	step := ctrl.Step
	if step <= 0 {
		step = 0.05
	}
	target := current + float64(direction)*step
	if ctrl.HasMin && target < ctrl.Min {
		target = ctrl.Min
	}
	if ctrl.HasMax && target > ctrl.Max {
		target = ctrl.Max
	}
	return target, math.Abs(target-current) >= 1e-9
}

// FormatFloat renders a value with a precision derived from the control step.
func FormatFloat(ctrl core.ParameterControl, value float64) string {
	step := ctrl.Step
	if step <= 0 {
		step = 0.05
	}
	precision := 1
	switch {
	case step < 0.001:
		precision = 4
	case step < 0.01:
		precision = 3
	case step < 0.1:
		precision = 2
	}
	return strconv.FormatFloat(value, 'f', precision, 64)
}

// FormatValue renders a snapshot parameter for display. ok is false when the
// value does not parse as the parameter's type.
func FormatValue(ctrl core.ParameterControl, p core.Parameter) (string, bool) {
	switch ctrl.Type {
	case core.ParamTypeInt:
		v, err := strconv.Atoi(p.Value)
		if err != nil {
			return "--", false
		}
		return strconv.Itoa(v), true
	case core.ParamTypeFloat:
		v, err := strconv.ParseFloat(p.Value, 64)
		if err != nil {
			return "--", false
		}
		return FormatFloat(ctrl, v), true
	case core.ParamTypeBool:
		v, err := strconv.ParseBool(p.Value)
		if err != nil {
			return "--", false
		}
		if v {
			return "on", true
		}
		return "off", true
	}
	return "--", false
}

// ScreenToCell maps a window position to a cell of a w*h raster drawn at
// scale. ok is false outside the raster.
func ScreenToCell(px, py, scale int, size core.Size) (int, int, bool) {
	if scale <= 0 {
		scale = 1
	}
	if px < 0 || py < 0 {
		return 0, 0, false
	}
	x, y := px/scale, py/scale
	if x >= size.W || y >= size.H {
		return 0, 0, false
	}
	return x, y, true
}

func pointInRect(x, y int, rect image.Rectangle) bool {
	return x >= rect.Min.X && x < rect.Max.X && y >= rect.Min.Y && y < rect.Max.Y
}

// KeyLegend lists the interactive bindings shared by the hosts.
var KeyLegend = []string{
	"space  start / stop",
	"n      single step",
	"r      reset",
	"s      new seed",
	"click  toggle cell",
	"q      quit",
}
