package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-pipes/internal/app"
	"github.com/vovakirdan/tui-pipes/internal/registry"
	"github.com/vovakirdan/tui-pipes/internal/terminal"
)

var (
	flagBenchFrames uint64
	flagBenchCols   int
	flagBenchRows   int
)

var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Measure frame throughput on a headless terminal",
	Long: `Run the screensaver against the void backend without frame delays and
report how fast frames are produced. Style flags and the config file apply.

Examples:
  pipes bench
  pipes bench --frames 100000 -p 8 -c rgb --rainbow 3
  pipes bench --cols 400 --rows 120 --seed 42`,
	Args: cobra.NoArgs,
	RunE: runBench,
}

func init() {
	benchCmd.Flags().Uint64Var(&flagBenchFrames, "frames", 10000, "Number of frames to render")
	benchCmd.Flags().IntVar(&flagBenchCols, "cols", 200, "Terminal columns")
	benchCmd.Flags().IntVar(&flagBenchRows, "rows", 50, "Terminal rows")
}

func runBench(cmd *cobra.Command, _ []string) error {
	settings, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	settings.Interval = 0

	backend, err := registry.Create("void", registry.Options{Cols: flagBenchCols, Rows: flagBenchRows})
	if err != nil {
		return err
	}
	defer backend.Close()

	logger, closer, err := newLogger()
	if err != nil {
		return err
	}
	defer closer.Close()

	r := newRand(cmd)
	a := app.New(backend, settings, r, app.WithLogger(logger), app.WithFrameLimit(flagBenchFrames))
	if err := a.Run(context.Background()); err != nil {
		return err
	}

	stats := a.Stats()
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "terminal:  %dx%d (%s)\n", flagBenchCols, flagBenchRows, settings.Kinds)
	fmt.Fprintf(out, "pipes:     %d\n", settings.NumPipes)
	fmt.Fprintf(out, "seed:      %d\n", r.Seed())
	fmt.Fprintf(out, "frames:    %d in %s\n", stats.Frames, stats.Elapsed)
	fmt.Fprintf(out, "rate:      %.0f frames/s\n", stats.FPS())
	fmt.Fprintf(out, "resets:    %d\n", stats.Resets)
	fmt.Fprintf(out, "respawns:  %d\n", stats.Respawn)
	if v, ok := backend.(*terminal.Void); ok {
		fmt.Fprintf(out, "glyphs:    %d\n", v.Glyphs())
	}
	return nil
}
