package common

import (
	"fmt"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// maxHexColor is the largest value produced for a random 24-bit color.
const maxHexColor = 0xFFFFFF

// RandomHexColor returns a random "#rrggbb" color string.
func RandomHexColor(rng Rand) string {
	return fmt.Sprintf("#%06x", int(rng.Float64()*maxHexColor))
}

// ParseHexColor converts "#rrggbb" or "#rgb" into an opaque color.RGBA.
func ParseHexColor(s string) (color.RGBA, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid hex color %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 0xff}, nil
}

// RandomColor generates a random opaque color.
func RandomColor(rng Rand) color.RGBA {
	c, err := ParseHexColor(RandomHexColor(rng))
	if err != nil {
		// RandomHexColor always yields a well-formed string
		panic(err)
	}
	return c
}

// HexString formats c as "#rrggbb", ignoring alpha.
func HexString(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
