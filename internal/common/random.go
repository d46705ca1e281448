package common

import "fmt"

// Rand is the source of randomness consumed when generating circles.
// *rand.Rand from math/rand/v2 satisfies it; tests pass a seeded one.
type Rand interface {
	Float64() float64
}

// Range is a closed interval [Min, Max] used for randomized generation.
type Range struct {
	Min float64
	Max float64
}

// Sample draws a uniformly distributed value from the range.
func (r Range) Sample(rng Rand) float64 {
	return r.Min + rng.Float64()*(r.Max-r.Min)
}

// Contains reports whether v lies within the range.
func (r Range) Contains(v float64) bool {
	return v >= r.Min && v <= r.Max
}

// Validate checks that the range is not inverted.
func (r Range) Validate() error {
	if r.Max < r.Min {
		return fmt.Errorf("range max %.2f is below min %.2f", r.Max, r.Min)
	}
	return nil
}

func (r Range) String() string {
	return fmt.Sprintf("[%.2f, %.2f]", r.Min, r.Max)
}

// RandomSign returns -1 or 1 with equal probability.
func RandomSign(rng Rand) float64 {
	if rng.Float64() < 0.5 {
		return -1
	}
	return 1
}
