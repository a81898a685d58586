package pet

import "math/rand"

// Rand is the source of all non-determinism in the engine. Injected so tests
// can supply deterministic sequences.
type Rand interface {
	// Float64 returns a uniform draw in [0, 1).
	Float64() float64
	// Intn returns a uniform draw in [0, n).
	Intn(n int) int
}

// NewRand returns the production Rand seeded with the given value.
func NewRand(seed int64) Rand {
	return rand.New(rand.NewSource(seed))
}

// uniform returns a uniform draw in the half-open interval [min, max).
// This half-open convention applies to every ranged draw in the engine.
func (e *Engine) uniform(min, max float64) float64 {
	return min + e.rng.Float64()*(max-min)
}

// variedTime scales a base seconds-to-saturate time by a uniform variation
// in [-variation_range, +variation_range].
func (e *Engine) variedTime(base float64) float64 {
	variation := (e.rng.Float64()*2 - 1) * e.cfg.Decay.VariationRange
	return base * (1 + variation)
}
