package simulation

import (
	"fmt"

	"circle-collision-sim/internal/collision"

	"gonum.org/v1/gonum/spatial/r2"
)

// CollisionMode selects how overlapping pairs are visited during a tick.
type CollisionMode string

const (
	// CollisionPairwise moves every circle first, then resolves each
	// unordered pair at most once.
	CollisionPairwise CollisionMode = "pairwise"
	// CollisionLegacy processes circles one by one: move, scan every other
	// circle, decay flash. A pair can be resolved from both sides in one tick.
	CollisionLegacy CollisionMode = "legacy"
)

// ParseCollisionMode validates a mode name.
func ParseCollisionMode(s string) (CollisionMode, error) {
	switch m := CollisionMode(s); m {
	case CollisionPairwise, CollisionLegacy:
		return m, nil
	default:
		return "", fmt.Errorf("unknown collision mode %q: %w", s, ErrInvalidConfig)
	}
}

// Resolve separates a and b if they overlap, flashes both and swaps their
// velocities. It reports whether anything was done.
func Resolve(a, b *Circle, flash FlashEffect) bool {
	push, _, ok := collision.Separation(a, b)
	if !ok {
		return false
	}

	flash.Trigger(a)
	flash.Trigger(b)

	a.position = r2.Add(a.position, push)
	b.position = r2.Sub(b.position, push)

	a.velocity, b.velocity = b.velocity, a.velocity
	return true
}

// resolvePairs resolves every overlapping unordered pair of circles once.
func resolvePairs(circles []*Circle, flash FlashEffect) int {
	resolved := 0
	for i := 0; i < len(circles); i++ {
		for j := i + 1; j < len(circles); j++ {
			if Resolve(circles[i], circles[j], flash) {
				resolved++
			}
		}
	}
	return resolved
}

// resolveAgainst resolves c against every other circle in circles.
func resolveAgainst(c *Circle, circles []*Circle, flash FlashEffect) int {
	resolved := 0
	for _, other := range circles {
		if other == c {
			continue
		}
		if Resolve(c, other, flash) {
			resolved++
		}
	}
	return resolved
}
