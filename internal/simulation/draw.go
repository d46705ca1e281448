package simulation

import (
	"image/color"

	"gonum.org/v1/gonum/spatial/r2"
)

// StrokeWidth is the outline width of every circle.
const StrokeWidth = 2

// Background is the color the surface is cleared to before each frame.
var Background = color.Black

// Canvas is a drawing surface sized to the simulation bounds.
type Canvas interface {
	Clear(c color.Color)
	StrokeCircle(center r2.Vec, radius, width float64, c color.Color)
	// DrawLabel draws text centered on center.
	DrawLabel(text string, center r2.Vec, c color.Color)
}

// Draw renders every live circle in collection order.
func (s *Simulation) Draw(canvas Canvas) {
	canvas.Clear(Background)
	for _, c := range s.circles {
		DrawCircle(canvas, c)
	}
}

// DrawCircle strokes the outline of c in its current color and draws its label.
func DrawCircle(canvas Canvas, c *Circle) {
	canvas.StrokeCircle(c.position, c.radius, StrokeWidth, c.currentColor)
	canvas.DrawLabel(c.label, c.position, c.labelColor)
}
