package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-pipes/internal/core"
	"github.com/vovakirdan/tui-pipes/internal/pipe"
)

func TestSwatches(t *testing.T) {
	matrix, _ := pipe.ParsePalette("matrix")

	tests := []struct {
		name string
		mode pipe.ColorMode
		p    pipe.Palette
		n    int
		len  int
		rgb  bool
	}{
		{"ansi", pipe.ColorModeANSI, pipe.DefaultPalette(), 14, 14, false},
		{"rgb", pipe.ColorModeRGB, pipe.DefaultPalette(), 6, 6, true},
		{"matrix", pipe.ColorModeRGB, matrix, 4, 4, true},
		{"none", pipe.ColorModeNone, pipe.DefaultPalette(), 6, 0, false},
		{"zero", pipe.ColorModeANSI, pipe.DefaultPalette(), 0, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Swatches(tt.mode, tt.p, tt.n)
			if len(got) != tt.len {
				t.Fatalf("len(Swatches()) = %d, expected %d", len(got), tt.len)
			}
			for i, c := range got {
				if c.IsRGB() != tt.rgb {
					t.Errorf("swatch %d IsRGB() = %v, expected %v", i, c.IsRGB(), tt.rgb)
				}
			}
		})
	}
}

func TestSwatchesCycleNamedColors(t *testing.T) {
	got := Swatches(pipe.ColorModeANSI, pipe.DefaultPalette(), len(core.NamedColors)+1)
	if got[len(core.NamedColors)] != got[0] {
		t.Errorf("swatch %d = %v, expected the first color again", len(core.NamedColors), got[len(core.NamedColors)])
	}
}

func TestMatrixSwatchesAreGreen(t *testing.T) {
	matrix, _ := pipe.ParsePalette("matrix")
	for i, c := range Swatches(pipe.ColorModeRGB, matrix, 5) {
		if c.G <= c.R || c.G <= c.B {
			t.Errorf("matrix swatch %d = %s, expected green to dominate", i, c.Hex())
		}
	}
}

func TestRenderPreviewKeepsGlyphs(t *testing.T) {
	kind, _ := pipe.KindByName("light")

	for _, mode := range []pipe.ColorMode{pipe.ColorModeANSI, pipe.ColorModeRGB, pipe.ColorModeNone} {
		out := RenderPreview(kind, mode, pipe.DefaultPalette())
		for _, r := range kind.Sample() {
			if !strings.ContainsRune(out, r) {
				t.Errorf("RenderPreview(%v) missing %q", mode, r)
			}
		}
	}
}
