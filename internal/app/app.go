// Package app runs the screensaver: it owns the pipes and drives the
// render/tick loop against a terminal backend.
package app

import (
	"context"
	"errors"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-pipes/internal/config"
	"github.com/vovakirdan/tui-pipes/internal/core"
	"github.com/vovakirdan/tui-pipes/internal/pipe"
	"github.com/vovakirdan/tui-pipes/internal/rng"
	"github.com/vovakirdan/tui-pipes/internal/terminal"
)

// State is the loop state.
type State int

const (
	StateResetting State = iota
	StateRunning
	StateTerminating
)

func (s State) String() string {
	switch s {
	case StateResetting:
		return "resetting"
	case StateRunning:
		return "running"
	case StateTerminating:
		return "terminating"
	default:
		return "unknown"
	}
}

// SleepFunc waits for d or until ctx is done.
type SleepFunc func(ctx context.Context, d time.Duration) error

// App is one screensaver run. It is not safe for concurrent use.
type App struct {
	term     *terminal.Terminal
	settings config.Settings
	rng      rng.Rand
	logger   *log.Logger
	sleep    SleepFunc

	pipes     []*pipe.Pipe
	state     State
	stats     core.Stats
	maxFrames uint64
}

// Option configures an App.
type Option func(*App)

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *log.Logger) Option {
	return func(a *App) { a.logger = l }
}

// WithSleep replaces the frame sleep.
func WithSleep(f SleepFunc) Option {
	return func(a *App) { a.sleep = f }
}

// WithFrameLimit stops the run after n frames. Zero means no limit.
func WithFrameLimit(n uint64) Option {
	return func(a *App) { a.maxFrames = n }
}

// New creates an App drawing on backend. Grid cells are as wide as the
// widest configured kind.
func New(backend terminal.Backend, settings config.Settings, r rng.Rand, opts ...Option) *App {
	a := &App{
		term:     terminal.New(backend, settings.Kinds.MaxDisplayWidth()),
		settings: settings,
		rng:      r,
		logger:   log.New(io.Discard),
		sleep:    sleepContext,
		state:    StateResetting,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// State returns the current loop state.
func (a *App) State() State {
	return a.state
}

// Stats returns the counters of the last run.
func (a *App) Stats() core.Stats {
	return a.stats
}

// Pipes returns the live pipes.
func (a *App) Pipes() []*pipe.Pipe {
	return a.pipes
}

// Run takes over the terminal and animates until an exit key, the end of
// input, the frame limit or ctx cancellation. The terminal is restored on
// every return path; restore errors are joined to the loop error.
func (a *App) Run(ctx context.Context) (err error) {
	start := time.Now()
	a.stats = core.Stats{}
	a.state = StateResetting

	a.logger.Info("starting", "kinds", a.settings.Kinds, "pipes", a.settings.NumPipes,
		"color", a.settings.ColorMode, "interval", a.settings.Interval)

	defer func() {
		a.stats.Elapsed = time.Since(start)
		err = errors.Join(err, a.restore())
		a.logger.Info("stopped", "frames", a.stats.Frames, "resets", a.stats.Resets,
			"fps", a.stats.FPS(), "err", err)
	}()

	if err := a.setup(); err != nil {
		return err
	}

	for {
		switch a.state {
		case StateResetting:
			if err := a.reset(); err != nil {
				return err
			}
			a.state = StateRunning
		case StateRunning:
			if err := a.frame(ctx); err != nil {
				return err
			}
		case StateTerminating:
			return nil
		}
	}
}

func (a *App) setup() error {
	if err := a.term.EnterAlternateScreen(); err != nil {
		return err
	}
	if err := a.term.SetRawMode(true); err != nil {
		return err
	}
	return a.term.SetCursorVisible(false)
}

// restore attempts every step even when earlier ones fail.
func (a *App) restore() error {
	return errors.Join(
		a.term.SetRawMode(false),
		a.term.SetCursorVisible(true),
		a.term.ResetStyle(),
		a.term.LeaveAlternateScreen(),
		a.term.Flush(),
	)
}

// reset clears the screen and starts a fresh set of pipes sized to the
// current terminal.
func (a *App) reset() error {
	if err := a.term.Sync(); err != nil {
		return err
	}
	if err := a.term.Clear(); err != nil {
		return err
	}
	if a.settings.Bold {
		if err := a.term.EnableBold(); err != nil {
			return err
		}
	}

	size := a.term.Size()
	a.pipes = a.pipes[:0]
	if !size.Empty() {
		for i := 0; i < a.settings.NumPipes; i++ {
			a.pipes = append(a.pipes, a.spawn(size))
		}
	}

	a.stats.Resets++
	a.logger.Debug("reset", "size", size, "cell_width", a.term.CellWidth(), "pipes", len(a.pipes), "frame", a.stats.Frames)
	return nil
}

func (a *App) spawn(size core.Size) *pipe.Pipe {
	kind := a.settings.Kinds.Choose(a.rng)
	return pipe.Spawn(size, a.rng, a.settings.ColorMode, a.settings.Palette, kind)
}

// frame handles one event, draws and advances every pipe, then sleeps.
func (a *App) frame(ctx context.Context) error {
	if ctx.Err() != nil {
		a.state = StateTerminating
		return nil
	}

	if ev, ok := a.term.PollEvent(); ok {
		switch ev.Type {
		case core.EventExit:
			a.state = StateTerminating
			return nil
		case core.EventReset, core.EventResize:
			a.logger.Debug("event", "type", ev.Type, "width", ev.Width, "height", ev.Height)
			a.state = StateResetting
			return nil
		}
	}

	size := a.term.Size()
	for i, p := range a.pipes {
		if err := a.draw(p); err != nil {
			return err
		}
		if !p.Tick(size, a.rng, a.settings.TurnChance, a.settings.HueShift) {
			a.pipes[i] = a.replace(p, size)
			a.stats.Respawn++
		}
	}

	if err := a.term.Flush(); err != nil {
		return err
	}
	a.stats.Frames++

	if a.maxFrames > 0 && a.stats.Frames >= a.maxFrames {
		a.state = StateTerminating
		return nil
	}

	if err := a.sleep(ctx, a.settings.Interval); err != nil {
		a.state = StateTerminating
		return nil
	}

	if a.settings.ResetEnabled && a.term.Coverage() >= a.settings.ResetThreshold {
		a.logger.Debug("coverage reached", "coverage", a.term.Coverage())
		a.state = StateResetting
	}
	return nil
}

func (a *App) draw(p *pipe.Pipe) error {
	if err := a.term.MoveCursor(p.Position()); err != nil {
		return err
	}
	if c, ok := p.Color(); ok {
		if err := a.term.SetTextColor(c); err != nil {
			return err
		}
	}
	return a.term.Print(p.Glyph())
}

func (a *App) replace(p *pipe.Pipe, size core.Size) *pipe.Pipe {
	if a.settings.InheritStyle {
		return p.Duplicate(size, a.rng)
	}
	return a.spawn(size)
}

func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
