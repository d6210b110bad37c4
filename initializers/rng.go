// Package initializers supplies the random number generators used to set the starting weights and
// biases of a network. Every generator is seeded explicitly, so that two networks built with the
// same seed and topology are identical.
package initializers

import (
	"math/rand"
)

// RNG is the source of initial weights. Between returns a value in the range [lower, upper).
type RNG interface {
	Between(lower, upper float64) float64
}

type uniform struct {
	r *rand.Rand
}

// Uniform returns an RNG that gives values uniformly spread between the bounds it is asked for,
// seeded with the given seed.
//
// The returned RNG is not safe for concurrent use.
func Uniform(seed int64) *uniform {
	return &uniform{rand.New(rand.NewSource(seed))}
}

// Between is the implementation of RNG for Uniform.
func (u *uniform) Between(lower, upper float64) float64 {
	return lower + u.r.Float64()*(upper-lower)
}

type constant float64

// Constant returns an RNG that always gives the same value, regardless of the bounds requested.
// It is mostly useful for tests that need hand-computable weights.
func Constant(value float64) constant {
	return constant(value)
}

func (c constant) Between(lower, upper float64) float64 {
	return float64(c)
}

type sequence struct {
	values []float64
	index  int
}

// Sequence returns an RNG that gives the provided values in order, wrapping around once it has
// reached the end. Sequence panics if no values are given.
func Sequence(values ...float64) *sequence {
	if len(values) == 0 {
		panic("initializers: Sequence requires at least one value")
	}

	vs := make([]float64, len(values))
	copy(vs, values)
	return &sequence{values: vs}
}

func (s *sequence) Between(lower, upper float64) float64 {
	v := s.values[s.index]
	s.index = (s.index + 1) % len(s.values)
	return v
}
