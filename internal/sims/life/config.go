package life

import (
	"maps"
	"math"
	"slices"
	"strconv"

	"labsim/internal/core"
)

const (
	// SeedDefault loads the embedded startup pattern.
	SeedDefault = "default"
	// SeedEmpty starts from an all-dead board.
	SeedEmpty = "empty"
)

// Config controls the board size, rules, tick interval and startup pattern.
type Config struct {
	Size     int
	Rules    Rules
	Interval float64 // seconds between generations while running
	Seed     string
	RandSeed int64

	// invalid maps option keys that failed to parse to the reason.
	invalid map[string]string
}

func (c *Config) reject(key, reason string) {
	if c.invalid == nil {
		c.invalid = make(map[string]string)
	}
	c.invalid[key] = reason
}

func (c *Config) accept(keys ...string) {
	for _, k := range keys {
		delete(c.invalid, k)
	}
}

// Validate reports the first rejected option in key order, then checks the
// interval.
func (c Config) Validate() error {
	if keys := slices.Sorted(maps.Keys(c.invalid)); len(keys) > 0 {
		return &core.ParamError{Key: keys[0], Reason: c.invalid[keys[0]]}
	}
	return core.CheckPositive("interval", c.Interval)
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Size:     20,
		Rules:    DefaultRules(),
		Interval: 1,
		Seed:     SeedDefault,
		RandSeed: 42,
	}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["size"]; ok {
		parsed, err := strconv.Atoi(v)
		switch {
		case err != nil:
			c.reject("size", "not a number")
		case parsed <= 0:
			c.reject("size", "must be positive")
		default:
			c.Size = parsed
		}
	}
	c.parseThreshold(cfg, "over", &c.Rules.Overpopulation)
	c.parseThreshold(cfg, "under", &c.Rules.Underpopulation)
	c.parseThreshold(cfg, "rebirth", &c.Rules.Rebirth)
	if v, ok := cfg["interval"]; ok {
		parsed, err := strconv.ParseFloat(v, 64)
		if err != nil {
			parsed = math.NaN()
		}
		c.Interval = parsed
	}
	if v, ok := cfg["seed_pattern"]; ok {
		switch v {
		case SeedDefault, SeedEmpty:
			c.Seed = v
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.RandSeed = parsed
		}
	}
	return c
}

func (c *Config) parseThreshold(cfg map[string]string, key string, dst *int) {
	v, ok := cfg[key]
	if !ok {
		return
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		c.reject(key, "not a number")
		return
	}
	*dst = parsed
}
