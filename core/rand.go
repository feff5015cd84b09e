package core

import "math/rand/v2"

// Rand represents a uniform random source
type Rand interface {
	// IntN should return a uniform random int in [0, n)
	IntN(n int) int
}

// GoRand represents the default process wide random source
// It is not seeded on purpose which makes runs non reproducible
type GoRand struct{}

// IntN returns a uniform random int in [0, n)
func (GoRand) IntN(n int) int {
	return rand.IntN(n)
}

// NewSeededRand instantiates a reproducible random source from seed
// which can be used for testing purposes
func NewSeededRand(seed uint64) *SeededRand {
	return &SeededRand{
		r: rand.New(rand.NewPCG(seed, 0)),
	}
}

// SeededRand represents a reproducible random source
type SeededRand struct {
	r *rand.Rand
}

// IntN returns a uniform random int in [0, n)
func (s *SeededRand) IntN(n int) int {
	return s.r.IntN(n)
}
