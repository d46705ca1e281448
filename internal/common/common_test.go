package common

import (
	"image/color"
	"math"
	"math/rand/v2"
	"regexp"
	"testing"

	"gonum.org/v1/gonum/spatial/r2"
)

// fixedRand returns the same value from every Float64 call.
type fixedRand float64

func (f fixedRand) Float64() float64 { return float64(f) }

func TestRangeSample(t *testing.T) {
	r := Range{Min: 20, Max: 50}
	tests := []struct {
		draw float64
		want float64
	}{
		{0, 20},
		{0.5, 35},
		{0.999, 49.97},
	}
	for _, tt := range tests {
		if got := r.Sample(fixedRand(tt.draw)); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("Sample(%v) = %v, want %v", tt.draw, got, tt.want)
		}
	}
}

func TestRangeSampleStaysInside(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	r := Range{Min: 1, Max: 5}
	for i := 0; i < 1000; i++ {
		if v := r.Sample(rng); !r.Contains(v) {
			t.Fatalf("sample %v outside %v", v, r)
		}
	}
}

func TestRangeValidate(t *testing.T) {
	if err := (Range{Min: 1, Max: 1}).Validate(); err != nil {
		t.Errorf("degenerate range should be valid: %v", err)
	}
	if err := (Range{Min: 5, Max: 1}).Validate(); err == nil {
		t.Error("inverted range should be rejected")
	}
}

func TestRandomSign(t *testing.T) {
	if got := RandomSign(fixedRand(0.1)); got != -1 {
		t.Errorf("RandomSign(0.1) = %v, want -1", got)
	}
	if got := RandomSign(fixedRand(0.7)); got != 1 {
		t.Errorf("RandomSign(0.7) = %v, want 1", got)
	}
}

func TestRandomHexColorFormat(t *testing.T) {
	pattern := regexp.MustCompile(`^#[0-9a-f]{6}$`)
	rng := rand.New(rand.NewPCG(7, 7))
	for i := 0; i < 100; i++ {
		s := RandomHexColor(rng)
		if !pattern.MatchString(s) {
			t.Fatalf("RandomHexColor = %q, want #rrggbb", s)
		}
	}
	if got := RandomHexColor(fixedRand(0)); got != "#000000" {
		t.Errorf("RandomHexColor(0) = %q, want #000000", got)
	}
}

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		in      string
		want    color.RGBA
		wantErr bool
	}{
		{"#0000FF", color.RGBA{0, 0, 255, 255}, false},
		{"#ff8000", color.RGBA{255, 128, 0, 255}, false},
		{"#fff", color.RGBA{255, 255, 255, 255}, false},
		{"blue", color.RGBA{}, true},
		{"", color.RGBA{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseHexColor(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseHexColor(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseHexColor(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestHexStringRoundTrip(t *testing.T) {
	c := color.RGBA{R: 0x12, G: 0xab, B: 0x07, A: 0xff}
	s := HexString(c)
	if s != "#12ab07" {
		t.Fatalf("HexString = %q, want #12ab07", s)
	}
	back, err := ParseHexColor(s)
	if err != nil {
		t.Fatal(err)
	}
	if back != c {
		t.Errorf("round trip = %v, want %v", back, c)
	}
}

func TestDistanceAndPolar(t *testing.T) {
	if got := Distance(r2.Vec{X: 0, Y: 0}, r2.Vec{X: 3, Y: 4}); got != 5 {
		t.Errorf("Distance = %v, want 5", got)
	}
	v := FromPolar(math.Pi/2, 2)
	if math.Abs(v.X) > 1e-12 || math.Abs(v.Y-2) > 1e-12 {
		t.Errorf("FromPolar(pi/2, 2) = %+v, want {0 2}", v)
	}
}
