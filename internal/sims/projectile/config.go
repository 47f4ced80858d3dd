package projectile

import (
	"math"
	"strconv"
)

// Config controls the projectile board: launch parameters, the step cap and
// the world box mapped onto the raster.
type Config struct {
	Params Params

	// MaxSteps ends a run after this many frames. Zero means unbounded, so
	// a run that never descends keeps going until stopped.
	MaxSteps int

	Width  int
	Height int

	XMin, XMax float64
	YMin, YMax float64

	Seed int64
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Params: DefaultParams(),
		Width:  310,
		Height: 110,
		XMin:   -10,
		XMax:   300,
		YMin:   -10,
		YMax:   100,
		Seed:   1,
	}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
// Unparseable physics values become NaN so that starting a run reports them.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	floats := map[string]*float64{
		"v":     &c.Params.Speed,
		"alpha": &c.Params.Angle,
		"m":     &c.Params.Mass,
		"c":     &c.Params.Drag,
		"dt":    &c.Params.Dt,
		"g":     &c.Params.Gravity,
	}
	for key, dst := range floats {
		if v, ok := cfg[key]; ok {
			*dst = parseNumber(v)
		}
	}
	if v, ok := cfg["friction"]; ok {
		if parsed, err := strconv.ParseBool(v); err == nil {
			c.Params.Friction = parsed
		}
	}
	if v, ok := cfg["max_steps"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.MaxSteps = parsed
		}
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	return c
}

func parseNumber(v string) float64 {
	parsed, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return math.NaN()
	}
	return parsed
}
