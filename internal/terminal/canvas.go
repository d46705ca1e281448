package terminal

import (
	"image/color"
	"math"

	"github.com/gdamore/tcell/v2"
	"gonum.org/v1/gonum/spatial/r2"
)

const outlineRune = '•'

// cellWriter is the part of tcell.Screen the canvas draws through.
type cellWriter interface {
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
}

// cellCanvas rasterizes circles and labels into terminal cells.
type cellCanvas struct {
	out  cellWriter
	proj Projector
	bg   tcell.Color
}

func newCellCanvas(out cellWriter, proj Projector) *cellCanvas {
	return &cellCanvas{out: out, proj: proj, bg: tcell.ColorBlack}
}

func (c *cellCanvas) Clear(col color.Color) {
	c.bg = toTcell(col)
	style := tcell.StyleDefault.Background(c.bg)
	cols, rows := c.proj.Size()
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			c.out.SetContent(x, y, ' ', nil, style)
		}
	}
}

// StrokeCircle plots the circumference; width is ignored since a cell is
// already wider than any stroke.
func (c *cellCanvas) StrokeCircle(center r2.Vec, radius, _ float64, col color.Color) {
	style := tcell.StyleDefault.Foreground(toTcell(col)).Background(c.bg)
	sx, sy := c.proj.CellsPerUnit()
	// Enough samples to touch every cell on the circumference.
	steps := int(math.Ceil(2*math.Pi*radius*math.Max(sx, sy))) * 2
	steps = max(steps, 8)
	for i := 0; i < steps; i++ {
		angle := 2 * math.Pi * float64(i) / float64(steps)
		p := r2.Vec{X: center.X + radius*math.Cos(angle), Y: center.Y + radius*math.Sin(angle)}
		if x, y, ok := c.proj.Project(p); ok {
			c.out.SetContent(x, y, outlineRune, nil, style)
		}
	}
}

func (c *cellCanvas) DrawLabel(text string, center r2.Vec, col color.Color) {
	x, y, ok := c.proj.Project(center)
	if !ok {
		return
	}
	style := tcell.StyleDefault.Foreground(toTcell(col)).Background(c.bg)
	runes := []rune(text)
	cols, _ := c.proj.Size()
	start := x - len(runes)/2
	for i, r := range runes {
		if cx := start + i; cx >= 0 && cx < cols {
			c.out.SetContent(cx, y, r, nil, style)
		}
	}
}

// drawText writes s on row y starting at column 0.
func drawText(out cellWriter, y int, s string, style tcell.Style) {
	for i, r := range []rune(s) {
		out.SetContent(i, y, r, nil, style)
	}
}

func toTcell(col color.Color) tcell.Color {
	r, g, b, _ := col.RGBA()
	return tcell.NewRGBColor(int32(r>>8), int32(g>>8), int32(b>>8))
}
