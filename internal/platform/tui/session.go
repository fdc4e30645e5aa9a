package tui

import (
	"io"
	"strings"
	"sync"

	"github.com/charmbracelet/ssh"
	"github.com/muesli/termenv"

	"github.com/vovakirdan/tui-pipes/internal/core"
	"github.com/vovakirdan/tui-pipes/internal/terminal"
)

// sessionConsole is a terminal.Console over an SSH channel. The client's
// terminal is already raw, so MakeRaw and Restore do nothing.
type sessionConsole struct {
	io.ReadWriter

	mu      sync.Mutex
	window  ssh.Window
	resizes chan core.Size
	stop    chan struct{}
	once    sync.Once
}

func newSessionConsole(rw io.ReadWriter, window ssh.Window, windows <-chan ssh.Window) *sessionConsole {
	c := &sessionConsole{
		ReadWriter: rw,
		window:     window,
		resizes:    make(chan core.Size, 1),
		stop:       make(chan struct{}),
	}
	go c.watch(windows)
	return c
}

func (c *sessionConsole) watch(windows <-chan ssh.Window) {
	for {
		select {
		case <-c.stop:
			return
		case w, ok := <-windows:
			if !ok {
				return
			}
			c.mu.Lock()
			c.window = w
			c.mu.Unlock()

			size := core.Size{Width: w.Width, Height: w.Height}
			// Keep only the latest size.
			select {
			case <-c.resizes:
			default:
			}
			c.resizes <- size
		}
	}
}

func (c *sessionConsole) Size() (int, int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.window.Width, c.window.Height, nil
}

func (c *sessionConsole) MakeRaw() error { return nil }
func (c *sessionConsole) Restore() error { return nil }

func (c *sessionConsole) Resizes() <-chan core.Size {
	return c.resizes
}

// Close stops watching window changes. The session itself belongs to wish.
func (c *sessionConsole) Close() error {
	c.once.Do(func() { close(c.stop) })
	return nil
}

var _ terminal.Console = (*sessionConsole)(nil)

// sessionEnviron is an SSH session's environment as seen by termenv.
// Later entries win, so the pty's TERM is appended last.
type sessionEnviron []string

func (e sessionEnviron) Environ() []string { return e }

func (e sessionEnviron) Getenv(key string) string {
	for i := len(e) - 1; i >= 0; i-- {
		if name, value, ok := strings.Cut(e[i], "="); ok && name == key {
			return value
		}
	}
	return ""
}

// sessionProfile picks the color profile for a remote terminal from its
// TERM and environment.
func sessionProfile(w io.Writer, term string, environ []string) termenv.Profile {
	env := make(sessionEnviron, 0, len(environ)+1)
	env = append(env, environ...)
	if term != "" {
		env = append(env, "TERM="+term)
	}
	out := termenv.NewOutput(w, termenv.WithEnvironment(env), termenv.WithTTY(true))
	return out.EnvColorProfile()
}
