package collision

import (
	"math"
	"testing"

	"circle-collision-sim/internal/common"

	"gonum.org/v1/gonum/spatial/r2"
)

type disc struct {
	center r2.Vec
	radius float64
}

func (d disc) Center() r2.Vec  { return d.center }
func (d disc) Radius() float64 { return d.radius }

func TestCollides(t *testing.T) {
	tests := []struct {
		name string
		a, b disc
		want bool
	}{
		{"overlapping", disc{r2.Vec{X: 0, Y: 0}, 10}, disc{r2.Vec{X: 15, Y: 0}, 10}, true},
		{"touching", disc{r2.Vec{X: 0, Y: 0}, 10}, disc{r2.Vec{X: 20, Y: 0}, 10}, false},
		{"apart", disc{r2.Vec{X: 0, Y: 0}, 10}, disc{r2.Vec{X: 25, Y: 0}, 10}, false},
		{"same center", disc{r2.Vec{X: 5, Y: 5}, 1}, disc{r2.Vec{X: 5, Y: 5}, 1}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Collides(tt.a, tt.b); got != tt.want {
				t.Errorf("Collides = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSeparationRestoresContactDistance(t *testing.T) {
	a := disc{r2.Vec{X: 100, Y: 100}, 20}
	b := disc{r2.Vec{X: 130, Y: 100}, 25}

	push, overlap, ok := Separation(a, b)
	if !ok {
		t.Fatal("expected overlapping pair")
	}
	if math.Abs(overlap-15) > 1e-9 {
		t.Errorf("overlap = %v, want 15", overlap)
	}

	a.center = r2.Add(a.center, push)
	b.center = r2.Sub(b.center, push)
	if got := common.Distance(a.center, b.center); math.Abs(got-45) > 1e-9 {
		t.Errorf("distance after separation = %v, want 45", got)
	}
	// a sits left of b, so it is pushed further left.
	if push.X >= 0 || math.Abs(push.Y) > 1e-9 {
		t.Errorf("push = %+v, want negative X only", push)
	}
}

func TestSeparationDiagonal(t *testing.T) {
	a := disc{r2.Vec{X: 10, Y: 10}, 10}
	b := disc{r2.Vec{X: 20, Y: 20}, 10}

	push, _, ok := Separation(a, b)
	if !ok {
		t.Fatal("expected overlapping pair")
	}
	a.center = r2.Add(a.center, push)
	b.center = r2.Sub(b.center, push)
	if got := common.Distance(a.center, b.center); math.Abs(got-20) > 1e-9 {
		t.Errorf("distance after separation = %v, want 20", got)
	}
}

func TestSeparationCoincidentCenters(t *testing.T) {
	a := disc{r2.Vec{X: 50, Y: 50}, 5}
	b := disc{r2.Vec{X: 50, Y: 50}, 5}

	push, overlap, ok := Separation(a, b)
	if !ok {
		t.Fatal("expected overlapping pair")
	}
	if overlap != 10 {
		t.Errorf("overlap = %v, want 10", overlap)
	}
	if push != (r2.Vec{X: 5, Y: 0}) {
		t.Errorf("push = %+v, want {5 0}", push)
	}
}

func TestSeparationNoOverlap(t *testing.T) {
	a := disc{r2.Vec{X: 0, Y: 0}, 5}
	b := disc{r2.Vec{X: 10, Y: 0}, 5}
	if _, _, ok := Separation(a, b); ok {
		t.Error("touching discs should not need separation")
	}
}

func TestDetectUniquePairs(t *testing.T) {
	bodies := []disc{
		{r2.Vec{X: 0, Y: 0}, 10},
		{r2.Vec{X: 15, Y: 0}, 10},
		{r2.Vec{X: 30, Y: 0}, 10},
		{r2.Vec{X: 300, Y: 300}, 10},
	}

	contacts := Detect(bodies)
	if len(contacts) != 2 {
		t.Fatalf("len(contacts) = %d, want 2", len(contacts))
	}
	want := [][2]int{{0, 1}, {1, 2}}
	for k, c := range contacts {
		if c.I != want[k][0] || c.J != want[k][1] {
			t.Errorf("contact %d = (%d,%d), want (%d,%d)", k, c.I, c.J, want[k][0], want[k][1])
		}
	}
}

func TestDetectEmpty(t *testing.T) {
	if got := Detect([]disc(nil)); len(got) != 0 {
		t.Errorf("Detect(nil) = %v, want empty", got)
	}
}

func TestHitTest(t *testing.T) {
	bodies := []disc{
		{r2.Vec{X: 100, Y: 100}, 20},
		{r2.Vec{X: 110, Y: 100}, 20},
		{r2.Vec{X: 300, Y: 300}, 30},
	}

	tests := []struct {
		name  string
		point r2.Vec
		want  int
	}{
		{"first of overlapping", r2.Vec{X: 105, Y: 100}, 0},
		{"only second", r2.Vec{X: 125, Y: 100}, 1},
		{"far circle", r2.Vec{X: 310, Y: 290}, 2},
		{"on outline", r2.Vec{X: 330, Y: 300}, -1},
		{"miss", r2.Vec{X: 0, Y: 0}, -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HitTest(bodies, tt.point); got != tt.want {
				t.Errorf("HitTest = %d, want %d", got, tt.want)
			}
		})
	}
}
