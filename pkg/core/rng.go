package core

import "math/rand/v2"

// RNG is a seeded PCG source. Equal seeds replay equal sequences.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// IntN returns a random int in [0, n). It returns 0 when n <= 0.
func (r *RNG) IntN(n int) int {
	if n <= 0 {
		return 0
	}
	return r.r.IntN(n)
}

// Chance reports true with probability p.
func (r *RNG) Chance(p float64) bool {
	return r.r.Float64() < p
}

// FillBools sets each entry with probability density and returns how many
// were set.
func (r *RNG) FillBools(buf []bool, density float64) int {
	n := 0
	for i := range buf {
		buf[i] = r.Chance(density)
		if buf[i] {
			n++
		}
	}
	return n
}
