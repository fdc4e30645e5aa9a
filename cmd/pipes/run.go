package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-pipes/internal/app"
	"github.com/vovakirdan/tui-pipes/internal/config"
	"github.com/vovakirdan/tui-pipes/internal/registry"
	"github.com/vovakirdan/tui-pipes/internal/rng"
)

// flagConfigLayer collects the style flags the user actually set.
func flagConfigLayer(cmd *cobra.Command) config.Config {
	flags := cmd.Flags()
	var cfg config.Config

	if flags.Changed("color-mode") {
		cfg.ColorMode = config.Ptr(flagColorMode)
	}
	if flags.Changed("palette") {
		cfg.Palette = config.Ptr(flagPalette)
	}
	if flags.Changed("delay") {
		cfg.DelayMS = config.Ptr(flagDelay)
	}
	if flags.Changed("fps") {
		cfg.FPS = config.Ptr(flagFPS)
	}
	if flags.Changed("reset-threshold") {
		cfg.ResetThreshold = config.Ptr(flagResetThreshold)
	}
	if flags.Changed("kinds") {
		cfg.Kinds = append([]string{}, flagKinds...)
	}
	if flags.Changed("bold") {
		cfg.Bold = config.Ptr(flagBold)
	}
	if flags.Changed("inherit-style") {
		cfg.InheritStyle = config.Ptr(flagInheritStyle)
	}
	if flags.Changed("pipe-num") {
		cfg.NumPipes = config.Ptr(flagPipeNum)
	}
	if flags.Changed("turn-chance") {
		cfg.TurnChance = config.Ptr(flagTurnChance)
	}
	if flags.Changed("rainbow") {
		cfg.Rainbow = config.Ptr(flagRainbow)
	}
	return cfg
}

// loadConfig merges the config file with the command line.
func loadConfig(cmd *cobra.Command) (config.Config, string, error) {
	fileCfg, path, err := config.Load(flagConfig)
	if err != nil {
		return config.Config{}, "", err
	}
	return fileCfg.Merge(flagConfigLayer(cmd)), path, nil
}

// loadSettings resolves the effective settings. It runs before any backend
// exists, so bad values never leave the terminal in raw mode.
func loadSettings(cmd *cobra.Command) (config.Settings, error) {
	cfg, _, err := loadConfig(cmd)
	if err != nil {
		return config.Settings{}, err
	}
	return cfg.Resolve()
}

// newLogger returns a logger writing to --log-file, or discarding output.
// The screensaver owns the terminal, so it never logs to stderr.
func newLogger() (*log.Logger, io.Closer, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level: %w", err)
	}

	var (
		w      io.Writer = io.Discard
		closer io.Closer = io.NopCloser(nil)
	)
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		w, closer = f, f
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "pipes",
		Level:           level,
	})
	return logger, closer, nil
}

// newRand honors --seed when it was given.
func newRand(cmd *cobra.Command) *rng.Source {
	if cmd.Flags().Changed("seed") {
		return rng.NewSeeded(flagSeed)
	}
	return rng.New()
}

// runScreensaver runs the screensaver on the named backend until quit.
func runScreensaver(cmd *cobra.Command, settings config.Settings, backendName string, frames uint64) error {
	logger, closer, err := newLogger()
	if err != nil {
		return err
	}
	defer closer.Close()

	backend, err := registry.Create(backendName, registry.Options{})
	if err != nil {
		return err
	}
	defer backend.Close()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	r := newRand(cmd)
	logger.Debug("seeded", "seed", r.Seed())

	a := app.New(backend, settings, r, app.WithLogger(logger), app.WithFrameLimit(frames))
	return a.Run(ctx)
}
