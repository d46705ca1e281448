package simulation

import (
	"fmt"
	"image/color"

	"circle-collision-sim/internal/common"

	"github.com/google/uuid"
	"gonum.org/v1/gonum/spatial/r2"
)

// CircleParams holds the creation-time attributes of a circle.
type CircleParams struct {
	Label      string
	Position   r2.Vec
	Velocity   r2.Vec
	Radius     float64
	Color      color.RGBA // outline color
	LabelColor color.RGBA
}

// Circle represents one simulated entity.
type Circle struct {
	id       string
	label    string
	position r2.Vec
	velocity r2.Vec
	radius   float64

	originalColor color.RGBA
	currentColor  color.RGBA
	labelColor    color.RGBA

	flashing   bool
	flashTicks int
}

// NewCircle creates a circle from params. A non-positive radius is an
// invalid configuration and is rejected.
func NewCircle(p CircleParams) (*Circle, error) {
	if !(p.Radius > 0) {
		return nil, fmt.Errorf("circle %q radius must be positive, got %v: %w", p.Label, p.Radius, ErrInvalidConfig)
	}
	return &Circle{
		id:            fmt.Sprintf("circle-%s", uuid.NewString()[:8]), // Shorter unique ID
		label:         p.Label,
		position:      p.Position,
		velocity:      p.Velocity,
		radius:        p.Radius,
		originalColor: p.Color,
		currentColor:  p.Color,
		labelColor:    p.LabelColor,
	}, nil
}

// GetID returns the unique identifier of the circle.
func (c *Circle) GetID() string {
	return c.id
}

// Label returns the text drawn at the circle's center.
func (c *Circle) Label() string {
	return c.label
}

// Center returns the current position of the circle.
func (c *Circle) Center() r2.Vec {
	return c.position
}

// Velocity returns the per-tick displacement.
func (c *Circle) Velocity() r2.Vec {
	return c.velocity
}

// Radius returns the fixed radius.
func (c *Circle) Radius() float64 {
	return c.radius
}

// Color returns the color the outline is currently drawn in.
func (c *Circle) Color() color.RGBA {
	return c.currentColor
}

// OriginalColor returns the outline color outside of flashes.
func (c *Circle) OriginalColor() color.RGBA {
	return c.originalColor
}

// LabelColor returns the color of the label text.
func (c *Circle) LabelColor() color.RGBA {
	return c.labelColor
}

// IsFlashing reports whether a collision flash is active.
func (c *Circle) IsFlashing() bool {
	return c.flashing
}

// FlashTicksRemaining returns the number of ticks left in the current flash.
func (c *Circle) FlashTicksRemaining() int {
	return c.flashTicks
}

// String representation for logging
func (c *Circle) String() string {
	state := ""
	if c.flashing {
		state = fmt.Sprintf(" flash:%d", c.flashTicks)
	}
	return fmt.Sprintf("Circle[%s %s] Pos: %s Vel: %s R: %.1f Color: %s%s",
		c.label, c.id, common.FormatVector(c.position), common.FormatVector(c.velocity),
		c.radius, common.HexString(c.currentColor), state)
}
