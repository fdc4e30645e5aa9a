package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/vovakirdan/tui-pipes/internal/core"
	"github.com/vovakirdan/tui-pipes/internal/pipe"
)

// colorStyle maps a pipe color to a lipgloss style.
func colorStyle(c core.Color) lipgloss.Style {
	if c.IsRGB() {
		return lipgloss.NewStyle().Foreground(lipgloss.Color(c.Hex()))
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(strconv.Itoa(c.Named.ANSIIndex())))
}

// Swatches returns n representative colors of a color mode and palette.
// RGB swatches walk the palette's hue and lightness ranges evenly; ANSI
// swatches cycle the named colors. ColorModeNone has none.
func Swatches(mode pipe.ColorMode, p pipe.Palette, n int) []core.Color {
	if n <= 0 {
		return nil
	}

	switch mode {
	case pipe.ColorModeANSI:
		out := make([]core.Color, n)
		for i := range out {
			out[i] = core.Named(core.NamedColors[i%len(core.NamedColors)])
		}
		return out
	case pipe.ColorModeRGB:
		out := make([]core.Color, n)
		for i := range out {
			t := float64(i) / float64(n)
			hue := p.HueMin + (p.HueMax-p.HueMin)*t
			light := p.LightMin + (p.LightMax-p.LightMin)*t
			r, g, b := colorful.OkLch(light, p.Chroma, hue).Clamped().RGB255()
			out[i] = core.RGB(r, g, b)
		}
		return out
	default:
		return nil
	}
}

// RenderPreview draws the sample run of a kind, one swatch per glyph.
// Adjacent glyphs with the same color are styled together.
func RenderPreview(k pipe.Kind, mode pipe.ColorMode, p pipe.Palette) string {
	glyphs := []rune(k.Sample())
	colors := Swatches(mode, p, len(glyphs))
	if colors == nil {
		return string(glyphs)
	}

	var sb strings.Builder
	for x := 0; x < len(glyphs); {
		start := colors[x]
		var run strings.Builder
		for x < len(glyphs) && colors[x] == start {
			run.WriteRune(glyphs[x])
			x++
		}
		sb.WriteString(colorStyle(start).Render(run.String()))
	}
	return sb.String()
}
