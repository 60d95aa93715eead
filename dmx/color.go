package dmx

import (
	"fmt"
	"strings"
)

// Color carries the color channels commonly found on LED PARs and moving
// lights. Each component is a raw DMX level.
type Color struct {
	R     byte
	G     byte
	B     byte
	W     byte
	Amber byte
	UV    byte
}

// RGB builds a color with only the red/green/blue components set.
func RGB(r, g, b byte) Color {
	return Color{R: r, G: g, B: b}
}

// ColorFromHex parses "#RRGGBB" (leading '#' optional).
func ColorFromHex(hex string) (Color, error) {
	hex = strings.TrimPrefix(hex, "#")
	if len(hex) != 6 {
		return Color{}, fmt.Errorf("hex color %q: want 6 hex digits", hex)
	}
	var r, g, b byte
	if _, err := fmt.Sscanf(hex, "%02x%02x%02x", &r, &g, &b); err != nil {
		return Color{}, fmt.Errorf("hex color %q: %w", hex, err)
	}
	return RGB(r, g, b), nil
}

// Hex formats the RGB components as "#RRGGBB".
func (c Color) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

// HasColor reports whether any visible component is lit.
func (c Color) HasColor() bool {
	return c.R != 0 || c.G != 0 || c.B != 0 || c.W != 0
}
