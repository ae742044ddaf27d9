package flappy

import "math/rand"

// Random is the source of randomness for obstacle placement.
// *rand.Rand satisfies it; tests substitute fixed sequences.
type Random interface {
	// Intn returns a value in [0, n). n is always positive.
	Intn(n int) int
}

// NewRandom returns a seeded pseudo-random source.
func NewRandom(seed int64) Random {
	return rand.New(rand.NewSource(seed))
}
