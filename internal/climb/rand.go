package climb

import "math/rand"

// Rand is the random source used by world generation and effects.
// Float64 returns a value in [0, 1).
type Rand interface {
	Float64() float64
}

// NewRand returns a seeded pseudo-random source. The platform layer seeds it
// from the wall clock unless a fixed seed is requested.
func NewRand(seed int64) Rand {
	return rand.New(rand.NewSource(seed))
}

// between returns a uniform value in [lo, hi).
func between(r Rand, lo, hi float64) float64 {
	return lo + r.Float64()*(hi-lo)
}
