package common

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Distance calculates the Euclidean distance between two points.
func Distance(a, b r2.Vec) float64 {
	return r2.Norm(r2.Sub(a, b))
}

// FromPolar builds a vector of the given length pointing at angle (radians).
func FromPolar(angle, length float64) r2.Vec {
	return r2.Vec{X: math.Cos(angle) * length, Y: math.Sin(angle) * length}
}

// FormatVector returns a short representation of v for logging.
func FormatVector(v r2.Vec) string {
	return fmt.Sprintf("[%.3f, %.3f]", v.X, v.Y)
}
