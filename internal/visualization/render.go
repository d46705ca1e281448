package visualization

import (
	"bytes"
	"fmt"
	"image/color"
	"log"

	"circle-collision-sim/internal/simulation"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/gofont/goregular"
	"gonum.org/v1/gonum/spatial/r2"
)

// labelFontSize is the fixed size of circle labels in pixels.
const labelFontSize = 20

// Options controls the interactive behaviour of the Renderer.
type Options struct {
	ClickRemove bool // left click / tap removes the circle under the pointer
	ShowHUD     bool
}

// Renderer implements ebiten.Game on top of a Simulation.
// Ebiten calls Update once per tick and Draw once per frame.
type Renderer struct {
	sim  *simulation.Simulation
	face *text.GoTextFace
	opts Options

	// Logical screen size, fixed to the simulation bounds.
	screenWidth  int
	screenHeight int

	lastRemoved string
	touchIDs    []ebiten.TouchID
}

// NewRenderer creates a new Ebiten renderer for sim.
func NewRenderer(sim *simulation.Simulation, opts Options) (*Renderer, error) {
	source, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("failed to load label font: %w", err)
	}
	b := sim.Bounds()
	return &Renderer{
		sim:          sim,
		face:         &text.GoTextFace{Source: source, Size: labelFontSize},
		opts:         opts,
		screenWidth:  int(b.Width),
		screenHeight: int(b.Height),
	}, nil
}

// Update handles input between ticks, then advances the simulation by one tick.
func (r *Renderer) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		r.opts.ShowHUD = !r.opts.ShowHUD
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		if err := r.sim.Reset(); err != nil {
			return fmt.Errorf("reset failed: %w", err)
		}
		log.Printf("Simulation reset with %d circles", r.sim.Len())
	}

	if r.opts.ClickRemove {
		for _, p := range r.justPressedPoints() {
			r.removeAt(p)
		}
	}

	r.sim.Step()
	return nil
}

// justPressedPoints collects the pointer positions pressed since the last tick.
func (r *Renderer) justPressedPoints() []r2.Vec {
	var points []r2.Vec
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		points = append(points, r2.Vec{X: float64(x), Y: float64(y)})
	}
	r.touchIDs = inpututil.AppendJustPressedTouchIDs(r.touchIDs[:0])
	for _, id := range r.touchIDs {
		x, y := ebiten.TouchPosition(id)
		points = append(points, r2.Vec{X: float64(x), Y: float64(y)})
	}
	return points
}

func (r *Renderer) removeAt(p r2.Vec) {
	c, ok := r.sim.RemoveAt(p)
	if !ok {
		return
	}
	r.lastRemoved = c.Label()
	log.Printf("Removed %s at (%.0f, %.0f), %d circles left", c, p.X, p.Y, r.sim.Len())
}

// Draw is called every frame to render the simulation.
func (r *Renderer) Draw(screen *ebiten.Image) {
	r.sim.Draw(&screenCanvas{dst: screen, face: r.face})
	if r.opts.ShowHUD {
		r.drawDebugInfo(screen)
	}
}

func (r *Renderer) drawDebugInfo(screen *ebiten.Image) {
	st := r.sim.Stats()
	msg := fmt.Sprintf("FPS: %.1f, TPS: %.1f\n", ebiten.ActualFPS(), ebiten.ActualTPS())
	msg += fmt.Sprintf("Tick: %d  Boundary: %s\n", st.Tick, r.sim.Policy().Name())
	msg += fmt.Sprintf("Circles: %d  Flashing: %d\n", st.Count, st.Flashing)
	msg += fmt.Sprintf("Collisions: %d (last tick %d)\n", st.Collisions, st.LastCollisions)
	msg += fmt.Sprintf("Speed: %.2f +/- %.2f\n", st.MeanSpeed, st.SpeedStdDev)
	if r.lastRemoved != "" {
		msg += fmt.Sprintf("Last removed: %s\n", r.lastRemoved)
	}
	msg += "[H] HUD  [R] reset"
	if r.opts.ClickRemove {
		msg += "  [click] remove"
	}
	ebitenutil.DebugPrint(screen, msg)
}

// Layout keeps the logical screen at the simulation size; Ebiten scales it
// into the window, and cursor positions come back in logical coordinates.
func (r *Renderer) Layout(outsideWidth, outsideHeight int) (int, int) {
	return r.screenWidth, r.screenHeight
}

// screenCanvas draws onto an Ebiten image.
type screenCanvas struct {
	dst  *ebiten.Image
	face *text.GoTextFace
}

func (c *screenCanvas) Clear(col color.Color) {
	c.dst.Fill(col)
}

func (c *screenCanvas) StrokeCircle(center r2.Vec, radius, width float64, col color.Color) {
	vector.StrokeCircle(c.dst, float32(center.X), float32(center.Y), float32(radius), float32(width), col, true)
}

func (c *screenCanvas) DrawLabel(s string, center r2.Vec, col color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(center.X, center.Y)
	op.ColorScale.ScaleWithColor(col)
	op.PrimaryAlign = text.AlignCenter
	op.SecondaryAlign = text.AlignCenter
	text.Draw(c.dst, s, c.face, op)
}
