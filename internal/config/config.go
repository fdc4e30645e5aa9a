// Package config provides YAML-based configuration loading and validation
// for the pipes screensaver.
package config

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/vovakirdan/tui-pipes/internal/pipe"
)

// Validation errors returned by Resolve.
var (
	ErrPacingConflict  = errors.New("delay and fps are mutually exclusive")
	ErrNegativeFPS     = errors.New("fps must not be negative")
	ErrThresholdRange  = errors.New("reset threshold must be within [0, 1]")
	ErrTurnChanceRange = errors.New("turn chance must be within [0, 1]")
	ErrNoKinds         = errors.New("at least one pipe kind is required")
	ErrNotFinite       = errors.New("value must be a finite number")
)

// Built-in values for settings left unset everywhere.
const (
	DefaultDelay          = 20 * time.Millisecond
	DefaultResetThreshold = 0.5
	DefaultTurnChance     = 0.15
	DefaultNumPipes       = 1
)

// Config is the file and flag representation. Nil fields are unset, so an
// explicit zero (for example reset_threshold: 0) survives merging.
type Config struct {
	ColorMode      *string  `yaml:"color_mode,omitempty"`
	Palette        *string  `yaml:"palette,omitempty"`
	DelayMS        *uint    `yaml:"delay_ms,omitempty"`
	FPS            *float64 `yaml:"fps,omitempty"`
	ResetThreshold *float64 `yaml:"reset_threshold,omitempty"`
	Kinds          []string `yaml:"kinds,omitempty,flow"`
	Bold           *bool    `yaml:"bold,omitempty"`
	InheritStyle   *bool    `yaml:"inherit_style,omitempty"`
	NumPipes       *uint    `yaml:"num_pipes,omitempty"`
	TurnChance     *float64 `yaml:"turn_chance,omitempty"`
	Rainbow        *float64 `yaml:"rainbow,omitempty"`
}

// Settings is a validated Config with every value filled in.
type Settings struct {
	ColorMode pipe.ColorMode
	Palette   pipe.Palette

	// Interval between frames. Zero means no sleeping.
	Interval time.Duration

	// ResetThreshold applies only when ResetEnabled is set.
	ResetThreshold float64
	ResetEnabled   bool

	Kinds        pipe.KindSet
	Bold         bool
	InheritStyle bool
	NumPipes     int
	TurnChance   float64
	HueShift     float64
}

// Merge returns c overlaid with every field other sets.
func (c Config) Merge(other Config) Config {
	out := c
	if other.ColorMode != nil {
		out.ColorMode = other.ColorMode
	}
	if other.Palette != nil {
		out.Palette = other.Palette
	}
	// Pacing is one setting: naming either one replaces both.
	if other.DelayMS != nil || other.FPS != nil {
		out.DelayMS = other.DelayMS
		out.FPS = other.FPS
	}
	if other.ResetThreshold != nil {
		out.ResetThreshold = other.ResetThreshold
	}
	if other.Kinds != nil {
		out.Kinds = other.Kinds
	}
	if other.Bold != nil {
		out.Bold = other.Bold
	}
	if other.InheritStyle != nil {
		out.InheritStyle = other.InheritStyle
	}
	if other.NumPipes != nil {
		out.NumPipes = other.NumPipes
	}
	if other.TurnChance != nil {
		out.TurnChance = other.TurnChance
	}
	if other.Rainbow != nil {
		out.Rainbow = other.Rainbow
	}
	return out
}

// Resolve validates c and fills in defaults. All problems are reported
// together.
func (c Config) Resolve() (Settings, error) {
	s := Settings{
		ColorMode:      pipe.ColorModeANSI,
		Palette:        pipe.DefaultPalette(),
		Interval:       DefaultDelay,
		ResetThreshold: DefaultResetThreshold,
		ResetEnabled:   true,
		Bold:           true,
		NumPipes:       DefaultNumPipes,
		TurnChance:     DefaultTurnChance,
	}
	var errs []error

	if c.ColorMode != nil {
		mode, err := pipe.ParseColorMode(*c.ColorMode)
		if err != nil {
			errs = append(errs, err)
		}
		s.ColorMode = mode
	}
	if c.Palette != nil {
		p, err := pipe.ParsePalette(*c.Palette)
		if err != nil {
			errs = append(errs, err)
		}
		s.Palette = p
	}

	switch {
	case c.DelayMS != nil && c.FPS != nil:
		errs = append(errs, ErrPacingConflict)
	case c.DelayMS != nil:
		s.Interval = time.Duration(*c.DelayMS) * time.Millisecond
	case c.FPS != nil:
		interval, err := intervalForFPS(*c.FPS)
		if err != nil {
			errs = append(errs, err)
		}
		s.Interval = interval
	}

	if c.ResetThreshold != nil {
		t := *c.ResetThreshold
		if !inUnitRange(t) {
			errs = append(errs, fmt.Errorf("%w: got %v", ErrThresholdRange, t))
		}
		s.ResetThreshold = t
		s.ResetEnabled = t > 0
	}

	kinds := c.Kinds
	if kinds == nil {
		kinds = []string{"heavy"}
	}
	set, err := pipe.ParseKindSet(kinds)
	switch {
	case errors.Is(err, pipe.ErrEmptyKindSet):
		errs = append(errs, ErrNoKinds)
	case err != nil:
		errs = append(errs, err)
	}
	s.Kinds = set

	if c.Bold != nil {
		s.Bold = *c.Bold
	}
	if c.InheritStyle != nil {
		s.InheritStyle = *c.InheritStyle
	}
	if c.NumPipes != nil {
		s.NumPipes = int(*c.NumPipes)
	}
	if c.TurnChance != nil {
		tc := *c.TurnChance
		if !inUnitRange(tc) {
			errs = append(errs, fmt.Errorf("%w: got %v", ErrTurnChanceRange, tc))
		}
		s.TurnChance = tc
	}
	if c.Rainbow != nil {
		shift := *c.Rainbow
		if !isFinite(shift) {
			errs = append(errs, fmt.Errorf("rainbow: %w: got %v", ErrNotFinite, shift))
		}
		s.HueShift = shift
	}

	if err := errors.Join(errs...); err != nil {
		return Settings{}, fmt.Errorf("invalid config: %w", err)
	}
	return s, nil
}

// intervalForFPS converts a frame rate to a sleep interval. Zero fps means
// run flat out.
func intervalForFPS(fps float64) (time.Duration, error) {
	if !isFinite(fps) {
		return 0, fmt.Errorf("fps: %w: got %v", ErrNotFinite, fps)
	}
	if fps < 0 {
		return 0, fmt.Errorf("%w: got %v", ErrNegativeFPS, fps)
	}
	if fps == 0 {
		return 0, nil
	}
	return time.Duration(float64(time.Second) / fps), nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// NaN fails both comparisons.
func inUnitRange(v float64) bool {
	return v >= 0 && v <= 1
}
