package iconbake

import (
	"fmt"
	"image/color"
	"math"
	"strings"
)

// Color is a linear RGBA color with components in 0..1.
type Color struct {
	R, G, B, A float64
}

var (
	Transparent = Color{}
	Black       = Color{0, 0, 0, 1}
	White       = Color{1, 1, 1, 1}
)

// HexColor parses "rgb", "rgba", "rrggbb" or "rrggbbaa", with or without a
// leading '#'. Invalid input yields black.
func HexColor(x string) Color {
	c, err := ParseHexColor(x)
	if err != nil {
		return Black
	}
	return c
}

func ParseHexColor(x string) (Color, error) {
	x = strings.TrimPrefix(strings.TrimSpace(x), "#")
	var r, g, b int
	a := 255
	var err error
	switch len(x) {
	case 3:
		_, err = fmt.Sscanf(x, "%1x%1x%1x", &r, &g, &b)
		r, g, b = r<<4|r, g<<4|g, b<<4|b
	case 4:
		_, err = fmt.Sscanf(x, "%1x%1x%1x%1x", &r, &g, &b, &a)
		r, g, b, a = r<<4|r, g<<4|g, b<<4|b, a<<4|a
	case 6:
		_, err = fmt.Sscanf(x, "%02x%02x%02x", &r, &g, &b)
	case 8:
		_, err = fmt.Sscanf(x, "%02x%02x%02x%02x", &r, &g, &b, &a)
	default:
		err = fmt.Errorf("bad length %d", len(x))
	}
	if err != nil {
		return Color{}, fmt.Errorf("iconbake: invalid hex color %q: %w", x, err)
	}
	const d = 0xff
	return Color{float64(r) / d, float64(g) / d, float64(b) / d, float64(a) / d}, nil
}

// MakeColor converts from the standard library, which yields
// alpha-premultiplied components.
func MakeColor(c color.Color) Color {
	r, g, b, a := c.RGBA()
	const d = 0xffff
	return Color{float64(r) / d, float64(g) / d, float64(b) / d, float64(a) / d}
}

func (c Color) NRGBA() color.NRGBA {
	const d = 0xff
	r := Clamp(c.R, 0, 1)
	g := Clamp(c.G, 0, 1)
	b := Clamp(c.B, 0, 1)
	a := Clamp(c.A, 0, 1)
	return color.NRGBA{uint8(math.Round(r * d)), uint8(math.Round(g * d)), uint8(math.Round(b * d)), uint8(math.Round(a * d))}
}

func (c Color) Hex() string {
	n := c.NRGBA()
	if n.A == 0xff {
		return fmt.Sprintf("#%02x%02x%02x", n.R, n.G, n.B)
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", n.R, n.G, n.B, n.A)
}

func (a Color) Add(b Color) Color {
	return Color{a.R + b.R, a.G + b.G, a.B + b.B, a.A + b.A}
}

func (a Color) Mul(b Color) Color {
	return Color{a.R * b.R, a.G * b.G, a.B * b.B, a.A * b.A}
}

func (a Color) MulScalar(b float64) Color {
	return Color{a.R * b, a.G * b, a.B * b, a.A * b}
}

func (a Color) DivScalar(b float64) Color {
	return Color{a.R / b, a.G / b, a.B / b, a.A / b}
}

func (a Color) Min(b Color) Color {
	return Color{math.Min(a.R, b.R), math.Min(a.G, b.G), math.Min(a.B, b.B), math.Min(a.A, b.A)}
}

func (a Color) Lerp(b Color, t float64) Color {
	return a.Add(b.Sub(a).MulScalar(t))
}

func (a Color) Sub(b Color) Color {
	return Color{a.R - b.R, a.G - b.G, a.B - b.B, a.A - b.A}
}

// Alpha returns the color with its alpha replaced.
func (a Color) Alpha(alpha float64) Color {
	return Color{a.R, a.G, a.B, alpha}
}

func InterpolateColors(c1, c2, c3 Color, b VectorW) Color {
	c := Color{}
	c = c.Add(c1.MulScalar(b.X))
	c = c.Add(c2.MulScalar(b.Y))
	c = c.Add(c3.MulScalar(b.Z))
	return c.MulScalar(b.W)
}
