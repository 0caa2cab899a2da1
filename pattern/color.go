package pattern

import (
	"encoding/hex"
	"fmt"
	"strings"
)

// Color is a single RGBW sample. All components are normalized to the
// range [0, 1]; channel order is fixed as red, green, blue, white.
type Color struct {
	R float64
	G float64
	B float64
	W float64
}

// True if all components are zero, false otherwise
func (c Color) IsOff() bool {
	return c.R == 0 && c.G == 0 && c.B == 0 && c.W == 0
}

// Clamped returns the color with every component forced into [0, 1].
func (c Color) Clamped() Color {
	return Color{
		R: clamp01(c.R),
		G: clamp01(c.G),
		B: clamp01(c.B),
		W: clamp01(c.W),
	}
}

// Scaled returns the color with every component multiplied by factor
// and clamped.
func (c Color) Scaled(factor float64) Color {
	return Color{
		R: c.R * factor,
		G: c.G * factor,
		B: c.B * factor,
		W: c.W * factor,
	}.Clamped()
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// ParseHex parses "#RRGGBB" or "#RRGGBBWW" into a Color. The leading
// '#' is optional.
func ParseHex(s string) (Color, error) {
	trimmed := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(trimmed) != 6 && len(trimmed) != 8 {
		return Color{}, fmt.Errorf("color %q must be 6 or 8 hex digits", s)
	}
	raw, err := hex.DecodeString(trimmed)
	if err != nil {
		return Color{}, fmt.Errorf("color %q is not valid hex: %w", s, err)
	}
	c := Color{
		R: float64(raw[0]) / 255,
		G: float64(raw[1]) / 255,
		B: float64(raw[2]) / 255,
	}
	if len(raw) == 4 {
		c.W = float64(raw[3]) / 255
	}
	return c, nil
}

// Hex renders the color as "#RRGGBBWW".
func (c Color) Hex() string {
	cl := c.Clamped()
	return fmt.Sprintf("#%02x%02x%02x%02x",
		byte(cl.R*255+0.5), byte(cl.G*255+0.5), byte(cl.B*255+0.5), byte(cl.W*255+0.5))
}
