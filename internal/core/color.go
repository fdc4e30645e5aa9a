package core

import "fmt"

// NamedColor is one of the terminal's palette colors.
type NamedColor uint8

// The twelve palette colors pipes are drawn with in ANSI mode.
// The zero value means the color is RGB.
const (
	ColorRed NamedColor = iota + 1
	ColorDarkRed
	ColorGreen
	ColorDarkGreen
	ColorYellow
	ColorDarkYellow
	ColorBlue
	ColorDarkBlue
	ColorMagenta
	ColorDarkMagenta
	ColorCyan
	ColorDarkCyan
)

// NamedColors lists the palette colors in declaration order.
var NamedColors = []NamedColor{
	ColorRed, ColorDarkRed,
	ColorGreen, ColorDarkGreen,
	ColorYellow, ColorDarkYellow,
	ColorBlue, ColorDarkBlue,
	ColorMagenta, ColorDarkMagenta,
	ColorCyan, ColorDarkCyan,
}

// ANSIIndex returns the 16-color palette index.
// Plain names map to the bright variants, Dark names to the normal ones.
func (n NamedColor) ANSIIndex() int {
	switch n {
	case ColorRed:
		return 9
	case ColorDarkRed:
		return 1
	case ColorGreen:
		return 10
	case ColorDarkGreen:
		return 2
	case ColorYellow:
		return 11
	case ColorDarkYellow:
		return 3
	case ColorBlue:
		return 12
	case ColorDarkBlue:
		return 4
	case ColorMagenta:
		return 13
	case ColorDarkMagenta:
		return 5
	case ColorCyan:
		return 14
	case ColorDarkCyan:
		return 6
	default:
		return 7
	}
}

// Color is a foreground color: a palette color or a 24-bit RGB value.
type Color struct {
	Named   NamedColor
	R, G, B uint8
}

// Named returns a palette color.
func Named(n NamedColor) Color {
	return Color{Named: n}
}

// RGB returns a 24-bit color.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b}
}

// IsRGB reports whether the color is a 24-bit value.
func (c Color) IsRGB() bool {
	return c.Named == 0
}

// Hex returns the color as #rrggbb. Palette colors are not representable.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
