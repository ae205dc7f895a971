package core

import "math/rand/v2"

// RNG is a deterministic PCG stream. It satisfies the Next() float64 contract
// the grid initializer draws from.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// Next returns the next value of the stream in [0, 1).
func (r *RNG) Next() float64 {
	return r.r.Float64()
}
