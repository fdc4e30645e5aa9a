package terminal

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/muesli/termenv"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-pipes/internal/core"
)

// Console is the byte stream an ANSI backend draws on together with the
// controls that live outside the stream: size, raw mode and resize notices.
type Console interface {
	io.Reader
	io.Writer

	// Size returns the console size in columns and rows.
	Size() (cols, rows int, err error)

	MakeRaw() error
	Restore() error

	// Resizes delivers the new size whenever the console is resized.
	// May return nil if the console never resizes.
	Resizes() <-chan core.Size

	Close() error
}

// StdConsole is the process's controlling terminal.
type StdConsole struct {
	in  *os.File
	out *os.File

	mu    sync.Mutex
	state *term.State

	resizes    chan core.Size
	stopResize func()
}

// NewStdConsole opens the console on stdin and stdout.
// Returns an error when stdout is not a terminal.
func NewStdConsole() (*StdConsole, error) {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return nil, fmt.Errorf("stdout is not a terminal")
	}
	c := &StdConsole{
		in:      os.Stdin,
		out:     os.Stdout,
		resizes: make(chan core.Size, 1),
	}
	c.stopResize = watchResize(c)
	return c, nil
}

// Read reads raw input from stdin.
func (c *StdConsole) Read(p []byte) (int, error) {
	return c.in.Read(p)
}

// Write writes to stdout.
func (c *StdConsole) Write(p []byte) (int, error) {
	return c.out.Write(p)
}

// Size returns the terminal size.
func (c *StdConsole) Size() (int, int, error) {
	cols, rows, err := term.GetSize(int(c.out.Fd()))
	if err != nil {
		return 0, 0, fmt.Errorf("failed to query terminal size: %w", err)
	}
	return cols, rows, nil
}

// MakeRaw puts stdin into raw mode. Calling it twice is a no-op.
func (c *StdConsole) MakeRaw() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state != nil {
		return nil
	}
	state, err := term.MakeRaw(int(c.in.Fd()))
	if err != nil {
		return fmt.Errorf("failed to enable raw mode: %w", err)
	}
	c.state = state
	return nil
}

// Restore leaves raw mode. Calling it outside raw mode is a no-op.
func (c *StdConsole) Restore() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state == nil {
		return nil
	}
	if err := term.Restore(int(c.in.Fd()), c.state); err != nil {
		return fmt.Errorf("failed to disable raw mode: %w", err)
	}
	c.state = nil
	return nil
}

// Resizes delivers SIGWINCH driven size changes.
func (c *StdConsole) Resizes() <-chan core.Size {
	return c.resizes
}

// ColorProfile detects the color support of stdout from the environment.
func (c *StdConsole) ColorProfile() termenv.Profile {
	return termenv.NewOutput(c.out).EnvColorProfile()
}

// Close stops the resize watcher and leaves raw mode.
func (c *StdConsole) Close() error {
	if c.stopResize != nil {
		c.stopResize()
		c.stopResize = nil
	}
	return c.Restore()
}

// notifyResize publishes the current size, replacing a stale one.
func (c *StdConsole) notifyResize() {
	cols, rows, err := c.Size()
	if err != nil || cols <= 0 || rows <= 0 {
		return
	}
	size := core.Size{Width: cols, Height: rows}
	select {
	case c.resizes <- size:
	default:
		select {
		case <-c.resizes:
		default:
		}
		select {
		case c.resizes <- size:
		default:
		}
	}
}
