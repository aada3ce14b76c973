package simulator

import (
	"math"
	"math/rand"
)

// poisson samples a Poisson-distributed count using Knuth's method:
// multiply uniform draws until the running product falls below e^-lam.
// Returns 0 for lam <= 0 without touching the rng. The loop is bounded
// in expectation by lam, which stays small at gameplay ranges (foot
// traffic <= 8, ad factor <= 5, so lam <= 48).
func poisson(rng *rand.Rand, lam float64) int {
	if lam <= 0 {
		return 0
	}

	threshold := math.Exp(-lam)
	k := 0
	p := 1.0
	for p > threshold {
		k++
		p *= rng.Float64()
	}
	return k - 1
}

// weightedIndex draws an index proportionally to weights. When every
// weight is zero the draw degrades to a uniform choice rather than
// dividing by zero.
func weightedIndex(rng *rand.Rand, weights []float64) int {
	total := 0.0
	for _, w := range weights {
		total += w
	}
	if total <= 0 {
		return rng.Intn(len(weights))
	}

	r := rng.Float64() * total
	cumulative := 0.0
	for i, w := range weights {
		cumulative += w
		if r <= cumulative {
			return i
		}
	}
	return len(weights) - 1
}
