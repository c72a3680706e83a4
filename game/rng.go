package game

import "math/rand/v2"

// Source is the random source a generation draws from.
type Source interface {
	// IntN returns a value in [0, n).
	IntN(n int) int
}

// NewSource returns a PCG-backed source. The same seed always yields the
// same sequence of draws.
func NewSource(seed int64) Source {
	return rand.New(rand.NewPCG(uint64(seed), 0))
}
