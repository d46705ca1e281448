package simulation

import (
	"fmt"
	"math"

	"circle-collision-sim/internal/common"

	"gonum.org/v1/gonum/spatial/r2"
)

// Bounds is the viewport the circles live in. The origin is the top-left
// corner and Y grows downward.
type Bounds struct {
	Width  float64
	Height float64
}

func (b Bounds) String() string {
	return fmt.Sprintf("%.0fx%.0f", b.Width, b.Height)
}

// Boundary policy names accepted by NewBoundaryPolicy.
const (
	BoundaryFloor  = "floor"
	BoundaryBounce = "bounce"
)

// BoundaryPolicy decides where new circles appear and what happens when a
// circle reaches a viewport edge.
type BoundaryPolicy interface {
	Name() string
	// Spawn returns the initial position and velocity of a circle.
	Spawn(radius, speed float64, b Bounds, rng common.Rand) (pos, vel r2.Vec)
	// Constrain is applied right after Integrate.
	Constrain(c *Circle, b Bounds, rng common.Rand)
}

// NewBoundaryPolicy returns the policy registered under name.
func NewBoundaryPolicy(name string, margin float64, rise common.Range) (BoundaryPolicy, error) {
	switch name {
	case BoundaryFloor:
		return FloorRespawn{Margin: margin, Rise: rise}, nil
	case BoundaryBounce:
		return FullBounce{}, nil
	default:
		return nil, fmt.Errorf("unknown boundary policy %q: %w", name, ErrInvalidConfig)
	}
}

// Integrate advances the circle by one tick of its velocity.
func Integrate(c *Circle) {
	c.position = r2.Add(c.position, c.velocity)
}

// Advance integrates c and applies the boundary policy.
func Advance(c *Circle, p BoundaryPolicy, b Bounds, rng common.Rand) {
	Integrate(c)
	p.Constrain(c, b, rng)
}

// FloorRespawn lets circles drift upward from the bottom edge. Side walls
// reflect horizontal motion; a circle leaving through the top is moved back
// to the bottom line at a new random X with its velocity unchanged.
type FloorRespawn struct {
	Margin float64      // gap between the bottom edge and a respawned circle
	Rise   common.Range // magnitude range of the upward speed
}

func (FloorRespawn) Name() string { return BoundaryFloor }

// RespawnY is the vertical position a circle of radius r is placed at.
func (f FloorRespawn) RespawnY(r float64, b Bounds) float64 {
	return b.Height - r - f.Margin
}

func (f FloorRespawn) Spawn(radius, speed float64, b Bounds, rng common.Rand) (r2.Vec, r2.Vec) {
	pos := r2.Vec{X: randomX(radius, b, rng), Y: f.RespawnY(radius, b)}
	vel := r2.Vec{X: common.RandomSign(rng) * speed, Y: -f.Rise.Sample(rng)}
	return pos, vel
}

func (f FloorRespawn) Constrain(c *Circle, b Bounds, rng common.Rand) {
	if c.position.X+c.radius > b.Width || c.position.X-c.radius < 0 {
		c.velocity.X = -c.velocity.X
	}
	if c.position.Y-c.radius < 0 {
		c.position = r2.Vec{X: randomX(c.radius, b, rng), Y: f.RespawnY(c.radius, b)}
	}
}

// FullBounce reflects both velocity components off all four edges and keeps
// every circle inside the viewport.
type FullBounce struct{}

func (FullBounce) Name() string { return BoundaryBounce }

func (FullBounce) Spawn(radius, speed float64, b Bounds, rng common.Rand) (r2.Vec, r2.Vec) {
	pos := r2.Vec{X: randomX(radius, b, rng), Y: randomY(radius, b, rng)}
	heading := rng.Float64() * 2 * math.Pi
	return pos, common.FromPolar(heading, speed)
}

func (FullBounce) Constrain(c *Circle, b Bounds, _ common.Rand) {
	c.position.X, c.velocity.X = reflectAxis(c.position.X, c.velocity.X, c.radius, b.Width)
	c.position.Y, c.velocity.Y = reflectAxis(c.position.Y, c.velocity.Y, c.radius, b.Height)
}

// reflectAxis clamps p into [r, limit-r] and points v back inside. When the
// circle is wider than the axis it is pinned to the low edge.
func reflectAxis(p, v, r, limit float64) (float64, float64) {
	if p-r < 0 {
		return r, math.Abs(v)
	}
	if p+r > limit {
		return limit - r, -math.Abs(v)
	}
	return p, v
}

func randomX(r float64, b Bounds, rng common.Rand) float64 {
	return rng.Float64()*(b.Width-2*r) + r
}

func randomY(r float64, b Bounds, rng common.Rand) float64 {
	return rng.Float64()*(b.Height-2*r) + r
}
