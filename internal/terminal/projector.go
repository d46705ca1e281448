package terminal

import (
	"math"

	"circle-collision-sim/internal/simulation"

	"gonum.org/v1/gonum/spatial/r2"
)

// Projector maps simulation coordinates onto a grid of terminal cells and back.
type Projector struct {
	bounds simulation.Bounds
	cols   int
	rows   int
}

// NewProjector fits bounds onto a cols x rows grid. Non-positive grid sizes
// are raised to one cell.
func NewProjector(bounds simulation.Bounds, cols, rows int) Projector {
	return Projector{bounds: bounds, cols: max(cols, 1), rows: max(rows, 1)}
}

// Size returns the grid dimensions.
func (p Projector) Size() (cols, rows int) {
	return p.cols, p.rows
}

// CellsPerUnit returns how many cells one simulation unit spans on each axis.
func (p Projector) CellsPerUnit() (sx, sy float64) {
	return float64(p.cols) / p.bounds.Width, float64(p.rows) / p.bounds.Height
}

// Project returns the cell containing v. ok is false when v lies outside
// the grid.
func (p Projector) Project(v r2.Vec) (col, row int, ok bool) {
	sx, sy := p.CellsPerUnit()
	col = int(math.Floor(v.X * sx))
	row = int(math.Floor(v.Y * sy))
	ok = col >= 0 && col < p.cols && row >= 0 && row < p.rows
	return col, row, ok
}

// Unproject returns the simulation coordinates of the center of a cell.
func (p Projector) Unproject(col, row int) r2.Vec {
	sx, sy := p.CellsPerUnit()
	return r2.Vec{X: (float64(col) + 0.5) / sx, Y: (float64(row) + 0.5) / sy}
}
