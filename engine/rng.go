package engine

import "math/rand"

// UniformSource yields uniform draws in [0,1). *math/rand.Rand satisfies it;
// tests substitute scripted sequences to force or suppress chance rolls.
type UniformSource interface {
	Float64() float64
}

// RNG wraps a uniform source with draw counting. The draw count is purely
// observational (shown by /status and trace); combat consumes draws in a
// fixed order, so equal seeds replay identical fights.
type RNG struct {
	seed  int64
	src   UniformSource
	draws int64
}

// NewRNG creates a deterministic RNG from a seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		seed: seed,
		src:  rand.New(rand.NewSource(seed)),
	}
}

// NewRNGFrom wraps an arbitrary uniform source. Seed reports 0.
func NewRNGFrom(src UniformSource) *RNG {
	return &RNG{src: src}
}

// Chance draws once and reports whether the draw landed under p.
// p <= 0 never hits, p >= 1 always does; the draw is consumed either way.
func (r *RNG) Chance(p float64) bool {
	r.draws++
	return r.src.Float64() < p
}

// Seed returns the seed the RNG was built with.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Draws returns the number of draws made since creation.
func (r *RNG) Draws() int64 {
	return r.draws
}
