// Package xrand provides the single pseudo-random stream every planning
// call draws from: every probabilistic decision, in the sampler and the PSO
// refiner, pulls from the same seeded sequence. (The RRT* engine draws
// nothing; its tie-breaking is deterministic.)
// Centralizing it here is what makes two runs with the same seed produce
// identical output regardless of which component asks first.
package xrand

import (
	"golang.org/x/exp/rand"

	"gonum.org/v1/gonum/stat/distuv"
)

// Stream is a seeded source of randomness shared by the sampler and the PSO
// refiner.
type Stream struct {
	rng *rand.Rand
}

// New builds a Stream seeded deterministically from seed.
func New(seed int64) *Stream {
	return &Stream{rng: rand.New(rand.NewSource(uint64(seed)))}
}

// Float64 returns a uniform draw in [0, 1).
func (s *Stream) Float64() float64 {
	return s.rng.Float64()
}

// Intn returns a uniform draw in [0, n).
func (s *Stream) Intn(n int) int {
	return s.rng.Intn(n)
}

// Uniform returns a draw from Uniform[lo, hi) using gonum's distuv, bound to
// this stream's RNG so every distribution in the planner shares one
// sequence.
func (s *Stream) Uniform(lo, hi float64) float64 {
	u := distuv.Uniform{Min: lo, Max: hi, Src: s.rng}
	return u.Rand()
}

// SignedUnit returns a draw from Uniform[-0.5, 0.5), the shape used
// repeatedly across the sampler's and PSO refiner's noise terms.
func (s *Stream) SignedUnit() float64 {
	return s.Uniform(-0.5, 0.5)
}
