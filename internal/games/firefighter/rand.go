package firefighter

import "math/rand"

// Rand is the random source the engine draws spawn trials from.
// *rand.Rand satisfies it; tests pass fixed sequences.
type Rand interface {
	Float64() float64
}

// NewRand returns a seeded source for deterministic runs.
func NewRand(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}
