package collision

import (
	"math"

	"circle-collision-sim/internal/common"

	"gonum.org/v1/gonum/spatial/r2"
)

// Body is anything with a circular footprint that can take part in collisions.
type Body interface {
	Center() r2.Vec
	Radius() float64
}

// Contact describes one overlapping unordered pair found by Detect.
type Contact struct {
	I, J int // indices into the slice passed to Detect, I < J
}

// Collides reports whether two bodies overlap. Touching bodies do not collide.
func Collides(a, b Body) bool {
	return common.Distance(a.Center(), b.Center()) < a.Radius()+b.Radius()
}

// Separation returns the displacement to apply to a so that a and b no longer
// overlap; b must be moved by the negated vector. The push is split evenly
// between the two bodies along the line joining their centers.
// ok is false when the bodies do not collide.
func Separation(a, b Body) (push r2.Vec, overlap float64, ok bool) {
	offset := r2.Sub(a.Center(), b.Center())
	distance := r2.Norm(offset)
	minDistance := a.Radius() + b.Radius()
	if distance >= minDistance {
		return r2.Vec{}, 0, false
	}

	// Coincident centers give atan2(0, 0) = 0, so the pair splits along X.
	angle := math.Atan2(offset.Y, offset.X)
	overlap = minDistance - distance
	return common.FromPolar(angle, overlap/2), overlap, true
}

// Detect returns every overlapping unordered pair in bodies, ordered by (I, J).
func Detect[B Body](bodies []B) []Contact {
	var contacts []Contact
	for i := 0; i < len(bodies); i++ {
		for j := i + 1; j < len(bodies); j++ {
			if Collides(bodies[i], bodies[j]) {
				contacts = append(contacts, Contact{I: i, J: j})
			}
		}
	}
	return contacts
}

// HitTest returns the index of the first body containing point p,
// or -1 when no body does. Points on the outline are outside.
func HitTest[B Body](bodies []B, p r2.Vec) int {
	for i, b := range bodies {
		if common.Distance(b.Center(), p) < b.Radius() {
			return i
		}
	}
	return -1
}
