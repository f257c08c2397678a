// Package style defines the visual vocabulary shared by the virtual DOM and
// the renderer: colors, merge-able styles, dimensions, and border tables.
package style

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
)

// ColorKind distinguishes the two ways a Color can be specified.
type ColorKind uint8

const (
	// ColorANSI selects one of the 16 standard ANSI colors by index (0-15).
	ColorANSI ColorKind = iota
	// ColorRGB selects a 24-bit true color.
	ColorRGB
)

// Named ANSI color indices (8 normal + 8 bright), matching the order a
// terminal's SGR 30-37 / 90-97 codes expect.
const (
	Black = iota
	Red
	Green
	Yellow
	Blue
	Magenta
	Cyan
	White
	BrightBlack
	BrightRed
	BrightGreen
	BrightYellow
	BrightBlue
	BrightMagenta
	BrightCyan
	BrightWhite
)

// Color is either one of the 16 ANSI colors or an RGB true color.
type Color struct {
	Kind    ColorKind
	ANSI    uint8
	R, G, B uint8
}

// ANSIColor constructs an ANSI-indexed color (0-15).
func ANSIColor(idx uint8) Color {
	return Color{Kind: ColorANSI, ANSI: idx % 16}
}

// RGB constructs a true-color value.
func RGB(r, g, b uint8) Color {
	return Color{Kind: ColorRGB, R: r, G: g, B: b}
}

// Hex parses a "#rrggbb" or "rrggbb" string into an RGB Color. It accepts
// anything go-colorful's hex parser accepts, so 3- and 6-digit forms both
// work.
func Hex(s string) (Color, error) {
	c, err := colorful.Hex(normalizeHex(s))
	if err != nil {
		return Color{}, fmt.Errorf("style: invalid hex color %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	return RGB(r, g, b), nil
}

// MustHex is like Hex but panics on a malformed literal; meant for
// package-level color constants, not for parsing user input.
func MustHex(s string) Color {
	c, err := Hex(s)
	if err != nil {
		panic(err)
	}
	return c
}

func normalizeHex(s string) string {
	if len(s) > 0 && s[0] != '#' {
		return "#" + s
	}
	return s
}

// Equal reports whether two colors describe the same pixel.
func (c Color) Equal(o Color) bool {
	return c.Kind == o.Kind && c.ANSI == o.ANSI && c.R == o.R && c.G == o.G && c.B == o.B
}
