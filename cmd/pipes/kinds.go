package main

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-pipes/internal/pipe"
	"github.com/vovakirdan/tui-pipes/internal/registry"
)

var kindsCmd = &cobra.Command{
	Use:   "kinds",
	Short: "List pipe kinds, palettes and backends",
	Long:  `Shows every built-in pipe kind with a sample, the RGB palettes and the terminal backends.`,
	Args:  cobra.NoArgs,
	Run:   runKinds,
}

func runKinds(cmd *cobra.Command, _ []string) {
	out := cmd.OutOrStdout()
	kinds := pipe.Presets()

	fmt.Fprintln(out, "Pipe kinds:")
	fmt.Fprintln(out)

	// Calculate column widths
	maxNameLen := len("Name")
	maxSampleWidth := len("Sample")
	for _, k := range kinds {
		maxNameLen = max(maxNameLen, len(k.Name))
		maxSampleWidth = max(maxSampleWidth, runewidth.StringWidth(k.Sample()))
	}

	fmt.Fprintf(out, "  %-*s  %s  %s\n", maxNameLen, "Name", runewidth.FillRight("Sample", maxSampleWidth), "Width")
	fmt.Fprintf(out, "  %-*s  %s  %s\n", maxNameLen, "----", runewidth.FillRight("------", maxSampleWidth), "-----")
	for _, k := range kinds {
		fmt.Fprintf(out, "  %-*s  %s  %d\n", maxNameLen, k.Name, runewidth.FillRight(k.Sample(), maxSampleWidth), k.DisplayWidth())
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Palettes (--color-mode rgb):")
	fmt.Fprintln(out)
	for _, p := range pipe.Palettes() {
		hue := fmt.Sprintf("hue %g-%g", p.HueMin, p.HueMax)
		if p.HueMin == p.HueMax {
			hue = fmt.Sprintf("hue %g", p.HueMin)
		}
		light := fmt.Sprintf("lightness %g", p.LightMin)
		if p.LightMin != p.LightMax {
			light = fmt.Sprintf("lightness %g-%g", p.LightMin, p.LightMax)
		}
		fmt.Fprintf(out, "  %-8s  %s, %s, chroma %g\n", p.Name, hue, light, p.Chroma)
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Backends (--backend):")
	fmt.Fprintln(out)
	for _, b := range registry.List() {
		fmt.Fprintf(out, "  %-6s  %s\n", b.Name, b.Description)
	}

	fmt.Fprintln(out)
	fmt.Fprintf(out, "Run 'pipes -k %s' to mix kinds.\n", strings.Join(pipe.PresetNames()[:2], ","))
}
