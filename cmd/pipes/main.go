// pipes is an animated pipes screensaver for the terminal.
//
// Usage:
//
//	pipes                    - Run the screensaver
//	pipes kinds              - List pipe kinds, palettes and backends
//	pipes menu               - Pick a style interactively, then run
//	pipes serve              - Start SSH server for remote viewing
//	pipes config             - Print the default or resolved config
//	pipes bench              - Measure frame throughput headlessly
//
// Press q or Ctrl+C to quit and r to restart the screen.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-pipes/internal/registry"
)

var (
	// Global flags
	flagConfig   string
	flagSeed     int64
	flagLogFile  string
	flagLogLevel string

	// Style flags, applied over the config file when set
	flagColorMode      string
	flagPalette        string
	flagDelay          uint
	flagFPS            float64
	flagResetThreshold float64
	flagKinds          []string
	flagBold           bool
	flagInheritStyle   bool
	flagPipeNum        uint
	flagTurnChance     float64
	flagRainbow        float64

	// Run flags
	flagBackend string
	flagFrames  uint64
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		// Joined validation errors are reported on one line.
		fmt.Fprintln(os.Stderr, "pipes:", strings.ReplaceAll(err.Error(), "\n", "; "))
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "pipes",
	Short: "Animated pipes screensaver for your terminal",
	Long: `pipes draws pipes that wander across the terminal, turning at random
and changing color, until the screen fills up and starts over.

Controls:
  R          - Restart
  Q/Ctrl+C   - Quit

Available commands:
  kinds    - Show pipe kinds, palettes and backends
  menu     - Interactive style picker
  serve    - Start SSH server for remote viewing
  config   - Print configuration
  bench    - Measure frame throughput

Examples:
  pipes
  pipes -p 4 -k heavy,curved
  pipes --color-mode rgb --palette pastel --rainbow 2
  pipes --fps 30 --reset-threshold 0
  pipes --backend tcell`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runRoot,
}

func init() {
	pf := rootCmd.PersistentFlags()

	pf.StringVar(&flagConfig, "config", "", "Path to config YAML (default: search user and project dirs)")
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed for a reproducible run (default: random)")
	pf.StringVar(&flagLogFile, "log-file", "", "Write logs to this file (default: discard)")
	pf.StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	pf.StringVarP(&flagColorMode, "color-mode", "c", "ansi", "Color mode: ansi, rgb, none")
	pf.StringVar(&flagPalette, "palette", "default", "RGB palette: default, darker, pastel, matrix")
	pf.UintVarP(&flagDelay, "delay", "d", 20, "Delay between frames in milliseconds")
	pf.Float64VarP(&flagFPS, "fps", "f", 0, "Frames per second, instead of --delay (0 = unlimited)")
	pf.Float64VarP(&flagResetThreshold, "reset-threshold", "r", 0.5, "Fraction of the screen drawn before clearing (0 = never)")
	pf.StringSliceVarP(&flagKinds, "kinds", "k", []string{"heavy"}, "Pipe kinds, see 'pipes kinds'")
	pf.BoolVarP(&flagBold, "bold", "b", true, "Draw pipes in bold")
	pf.BoolVarP(&flagInheritStyle, "inherit-style", "i", false, "Replacement pipes keep the color and kind of the pipe they replace")
	pf.UintVarP(&flagPipeNum, "pipe-num", "p", 1, "Number of pipes")
	pf.Float64VarP(&flagTurnChance, "turn-chance", "t", 0.15, "Chance of turning on each tick")
	pf.Float64Var(&flagRainbow, "rainbow", 0, "Hue rotation in degrees per tick (rgb mode)")

	rootCmd.Flags().StringVar(&flagBackend, "backend", "ansi", "Terminal backend: "+strings.Join(registry.Names(), ", "))
	rootCmd.Flags().Uint64Var(&flagFrames, "frames", 0, "Stop after this many frames (0 = run until quit)")

	// Add subcommands
	rootCmd.AddCommand(kindsCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(benchCmd)
}

func runRoot(cmd *cobra.Command, _ []string) error {
	settings, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	return runScreensaver(cmd, settings, flagBackend, flagFrames)
}
