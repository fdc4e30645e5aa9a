package pipe

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/vovakirdan/tui-pipes/internal/core"
	"github.com/vovakirdan/tui-pipes/internal/rng"
)

var (
	// ErrUnknownColorMode is returned for an unrecognized color mode name.
	ErrUnknownColorMode = errors.New("unknown color mode")

	// ErrUnknownPalette is returned for an unrecognized palette name.
	ErrUnknownPalette = errors.New("unknown palette")
)

// ColorMode selects how pipes are colored.
type ColorMode int

const (
	ColorModeANSI ColorMode = iota // one of the twelve palette colors
	ColorModeRGB                   // 24-bit color from an OKLCH palette
	ColorModeNone                  // terminal default color
)

// String returns the config name of the mode.
func (m ColorMode) String() string {
	switch m {
	case ColorModeANSI:
		return "ansi"
	case ColorModeRGB:
		return "rgb"
	case ColorModeNone:
		return "none"
	default:
		return "unknown"
	}
}

// ParseColorMode parses "ansi", "rgb" or "none".
func ParseColorMode(s string) (ColorMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "ansi":
		return ColorModeANSI, nil
	case "rgb":
		return ColorModeRGB, nil
	case "none":
		return ColorModeNone, nil
	}
	return 0, fmt.Errorf(`%w %q (expected "ansi", "rgb" or "none")`, ErrUnknownColorMode, s)
}

// Palette is the OKLCH region RGB colors are drawn from.
type Palette struct {
	Name string

	HueMin, HueMax     float64 // degrees
	LightMin, LightMax float64 // OKLCH lightness, 0..1
	Chroma             float64
}

var palettes = []Palette{
	{Name: "default", HueMin: 0, HueMax: 360, LightMin: 0.75, LightMax: 0.75, Chroma: 0.125},
	{Name: "darker", HueMin: 0, HueMax: 360, LightMin: 0.65, LightMax: 0.65, Chroma: 0.11},
	{Name: "pastel", HueMin: 0, HueMax: 360, LightMin: 0.8, LightMax: 0.8, Chroma: 0.085},
	{Name: "matrix", HueMin: 142, HueMax: 142, LightMin: 0.45, LightMax: 0.9, Chroma: 0.15},
}

// Palettes returns every built-in palette.
func Palettes() []Palette {
	out := make([]Palette, len(palettes))
	copy(out, palettes)
	return out
}

// DefaultPalette returns the "default" palette.
func DefaultPalette() Palette {
	return palettes[0]
}

// ParsePalette looks up a palette by name.
func ParsePalette(name string) (Palette, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	names := make([]string, 0, len(palettes))
	for _, p := range palettes {
		if p.Name == key {
			return p, nil
		}
		names = append(names, fmt.Sprintf("%q", p.Name))
	}
	return Palette{}, fmt.Errorf("%w %q (expected one of %s)", ErrUnknownPalette, name, strings.Join(names, ", "))
}

// Color is a pipe color. RGB colors remember their OKLCH source so the hue
// can be rotated without drifting.
type Color struct {
	Value core.Color

	hue, lightness, chroma float64
	oklch                  bool
}

// GenerateColor draws a color for a new pipe. Returns nil in ColorModeNone.
func GenerateColor(r rng.Rand, mode ColorMode, p Palette) *Color {
	switch mode {
	case ColorModeANSI:
		named := core.NamedColors[r.IntRange(0, len(core.NamedColors))]
		return &Color{Value: core.Named(named)}
	case ColorModeRGB:
		c := &Color{
			hue:       r.FloatRange(p.HueMin, p.HueMax),
			lightness: core.ClampF(r.FloatRange(p.LightMin, p.LightMax), 0, 1),
			chroma:    p.Chroma,
			oklch:     true,
		}
		c.Value = oklchToRGB(c.lightness, c.chroma, c.hue)
		return c
	default:
		return nil
	}
}

// ShiftHue rotates the hue by deg degrees, wrapping at 360, and recomputes
// the RGB value. Palette colors are left unchanged.
func (c *Color) ShiftHue(deg float64) {
	if !c.oklch || deg == 0 {
		return
	}
	c.hue = math.Mod(c.hue+deg, 360)
	if c.hue < 0 {
		c.hue += 360
	}
	c.Value = oklchToRGB(c.lightness, c.chroma, c.hue)
}

// oklchToRGB converts and clamps into the sRGB gamut.
func oklchToRGB(l, c, h float64) core.Color {
	col := colorful.OkLch(l, c, h)
	if !col.IsValid() {
		col = col.Clamped()
	}
	r, g, b := col.RGB255()
	return core.RGB(r, g, b)
}
