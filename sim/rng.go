package sim

import "math/rand"

// Source yields uniform floats in [0,1). The simulation takes its
// randomness (spawn positions, max-age jitter) through this interface so
// scenario tests can supply a deterministic sequence.
type Source interface {
	Float64() float64
}

// NewSource returns a seeded default source backed by math/rand.
func NewSource(seed int64) Source {
	return rand.New(rand.NewSource(seed))
}
