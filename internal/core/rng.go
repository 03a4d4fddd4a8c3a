package core

import "math/rand/v2"

// RNG wraps math/rand/v2 so a seed always reproduces the same soup.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// Alive returns 1 with probability density and 0 otherwise. Densities are
// clamped to [0, 1].
func (r *RNG) Alive(density float64) uint8 {
	switch {
	case density <= 0:
		return 0
	case density >= 1:
		return 1
	}
	if r.r.Float64() < density {
		return 1
	}
	return 0
}

// FillSoup overwrites buf with 0/1 values, each alive with the given density.
func (r *RNG) FillSoup(buf []uint8, density float64) {
	for i := range buf {
		buf[i] = r.Alive(density)
	}
}
