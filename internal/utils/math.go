package utils

import (
	"math/rand"
)

// RandomFloat returns a random float64 in [0.0, 1.0)
func RandomFloat() float64 {
	return rand.Float64() //nolint:gosec // Game logic randomness, not security critical
}

// WeightedIndex maps roll in [0, 1) onto weights and returns the chosen index.
// Non-positive weights are never chosen. Returns -1 when no weight is positive.
func WeightedIndex(weights []float64, roll float64) int {
	total := 0.0
	for _, w := range weights {
		if w > 0 {
			total += w
		}
	}
	if total <= 0 {
		return -1
	}

	target := roll * total
	last := -1
	for i, w := range weights {
		if w <= 0 {
			continue
		}
		last = i
		if target < w {
			return i
		}
		target -= w
	}
	// roll == 1.0 or float drift lands past the end
	return last
}

// Normalize scales weights so they sum to one. A zero total yields zeros.
func Normalize(weights []float64) []float64 {
	total := 0.0
	for _, w := range weights {
		if w > 0 {
			total += w
		}
	}
	out := make([]float64, len(weights))
	if total == 0 {
		return out
	}
	for i, w := range weights {
		if w > 0 {
			out[i] = w / total
		}
	}
	return out
}
