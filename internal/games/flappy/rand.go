package flappy

import "math/rand"

// RandSource draws uniform integers. It is the only source of randomness in
// the simulation, injected so tests can script every draw.
type RandSource interface {
	// IntRange returns a uniform integer in the closed interval [lo, hi].
	IntRange(lo, hi int) int
}

// SeededRand is a RandSource backed by a seeded math/rand generator.
// The same seed always produces the same game.
type SeededRand struct {
	rng *rand.Rand
}

// NewSeededRand creates a deterministic RandSource.
func NewSeededRand(seed int64) *SeededRand {
	return &SeededRand{rng: rand.New(rand.NewSource(seed))}
}

// IntRange returns a uniform integer in [lo, hi]. An empty range yields lo.
func (r *SeededRand) IntRange(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + r.rng.Intn(hi-lo+1)
}
