package config

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is an sRGB colour with a straight (non-premultiplied) alpha in [0,1].
type Color struct {
	R, G, B uint8
	A       float64
}

// WithAlpha returns the same colour with alpha replaced.
func (c Color) WithAlpha(a float64) Color {
	c.A = a
	return c
}

// CSS formats the colour as an rgba() string.
func (c Color) CSS() string {
	return fmt.Sprintf("rgba(%d, %d, %d, %s)", c.R, c.G, c.B, strconv.FormatFloat(c.A, 'f', -1, 64))
}

// NRGBA converts to the standard library's non-premultiplied colour.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: uint8(clamp01(c.A)*255 + 0.5)}
}

// Colorful returns the RGB part as a go-colorful colour.
func (c Color) Colorful() colorful.Color {
	return colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
}

// FromColorful builds a Color from a go-colorful colour and an alpha.
func FromColorful(cc colorful.Color, a float64) Color {
	r, g, b := cc.Clamped().RGB255()
	return Color{R: r, G: g, B: b, A: a}
}

// ParseColor parses "#rrggbb" with an optional "@alpha" suffix (default 1).
func ParseColor(s string) (Color, error) {
	s = strings.TrimSpace(s)
	hex, alpha, hasAlpha := strings.Cut(s, "@")
	cc, err := colorful.Hex(hex)
	if err != nil {
		return Color{}, fmt.Errorf("parse colour %q: %w", s, err)
	}
	a := 1.0
	if hasAlpha {
		a, err = strconv.ParseFloat(alpha, 64)
		if err != nil {
			return Color{}, fmt.Errorf("parse alpha of %q: %w", s, err)
		}
		if a < 0 || a > 1 {
			return Color{}, fmt.Errorf("alpha of %q must be in [0,1]", s)
		}
	}
	return FromColorful(cc, a), nil
}

// ParsePalette parses a comma separated list of ParseColor values.
func ParsePalette(s string) ([]Color, error) {
	var palette []Color
	for _, part := range strings.Split(s, ",") {
		if strings.TrimSpace(part) == "" {
			continue
		}
		c, err := ParseColor(part)
		if err != nil {
			return nil, err
		}
		palette = append(palette, c)
	}
	if len(palette) == 0 {
		return nil, fmt.Errorf("palette %q has no colours", s)
	}
	return palette, nil
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
