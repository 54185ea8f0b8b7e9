package engine

import "math/rand/v2"

// Source draws secrets for new rounds.
//
// Precondition: upper >= 1. Callers validate the range before drawing.
type Source interface {
	// Next returns a value uniformly distributed over [1, upper].
	Next(upper int) int
}

// SourceFactory returns a fresh Source for the given round number (1-based)
// so that consecutive rounds are independent.
type SourceFactory func(round int) Source

type pcgSource struct {
	rng *rand.Rand
}

// NewSource creates a deterministic Source seeded with seed
func NewSource(seed uint64) Source {
	return &pcgSource{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// NewRandomSource creates a Source seeded by the runtime
func NewRandomSource() Source {
	return &pcgSource{rng: rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))}
}

func (s *pcgSource) Next(upper int) int {
	return s.rng.IntN(upper) + 1
}

// FixedSource always yields n, clamped into [1, upper]. Useful for tests and
// scripted play.
type FixedSource int

// Next returns the fixed value clamped into range
func (f FixedSource) Next(upper int) int {
	return clamp(int(f), 1, upper)
}

// RandomFactory returns a factory handing out runtime-seeded sources
func RandomFactory() SourceFactory {
	return func(int) Source { return NewRandomSource() }
}

// SeededFactory derives the per-round seed from base so a whole run is
// reproducible while each round still gets its own generator.
func SeededFactory(base uint64) SourceFactory {
	return func(round int) Source { return NewSource(base + uint64(round)) }
}
