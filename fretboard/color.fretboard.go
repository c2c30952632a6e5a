package fretboard

import (
	"fmt"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// ParseColor reads a "#rrggbb" (or "#rgb") hex string.
func ParseColor(hex string) (Color, error) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return Color{}, fmt.Errorf("parse color %q: %w", hex, err)
	}
	return Color{c.R, c.G, c.B}, nil
}

func (c Color) Hex() string {
	return colorful.Color{R: c.R, G: c.G, B: c.B}.Clamped().Hex()
}

func getDarkerShade(c Color) Color {
	var d = 0.8
	return Color{c.R * d, c.G * d, c.B * d}
}
