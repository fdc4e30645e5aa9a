package terminal

import (
	"bufio"
	"sync"
	"unicode/utf8"

	"github.com/muesli/termenv"

	"github.com/vovakirdan/tui-pipes/internal/core"
)

const escape = 0x1b

// ANSI draws with escape sequences on a Console.
// Output is buffered until Flush; colors are converted to the given profile.
type ANSI struct {
	console Console
	buf     *bufio.Writer
	out     *termenv.Output
	queue   *eventQueue

	stopCh    chan struct{}
	closeOnce sync.Once
}

// NewANSI creates a backend on console and starts its input and resize listeners.
func NewANSI(console Console, profile termenv.Profile) *ANSI {
	buf := bufio.NewWriterSize(console, 16*1024)
	a := &ANSI{
		console: console,
		buf:     buf,
		out:     termenv.NewOutput(buf, termenv.WithProfile(profile), termenv.WithUnsafe()),
		queue:   newEventQueue(),
		stopCh:  make(chan struct{}),
	}
	go a.readLoop()
	if resizes := console.Resizes(); resizes != nil {
		go a.resizeLoop(resizes)
	}
	return a
}

// readLoop maps key presses to events until the console stops producing input.
func (a *ANSI) readLoop() {
	buf := make([]byte, 64)
	for {
		n, err := a.console.Read(buf)
		if n > 0 {
			a.handleInput(buf[:n])
		}
		if err != nil {
			a.queue.closeInput()
			return
		}
	}
}

// handleInput maps one read chunk. Chunks starting with ESC are escape
// sequences (arrows, function keys) and carry no bindings.
func (a *ANSI) handleInput(chunk []byte) {
	if chunk[0] == escape {
		return
	}
	for len(chunk) > 0 {
		r, size := utf8.DecodeRune(chunk)
		chunk = chunk[size:]
		a.queue.pushKey(core.EventForKey(r))
	}
}

func (a *ANSI) resizeLoop(resizes <-chan core.Size) {
	for {
		select {
		case <-a.stopCh:
			return
		case size, ok := <-resizes:
			if !ok {
				return
			}
			a.queue.pushResize(size.Width, size.Height)
		}
	}
}

// Size returns the console size.
func (a *ANSI) Size() (int, int, error) {
	return a.console.Size()
}

// MoveCursor moves to column x, row y.
func (a *ANSI) MoveCursor(x, y int) error {
	a.out.MoveCursor(y+1, x+1)
	return nil
}

// SetTextColor sets the SGR foreground color of the glyphs that follow.
// Does nothing on a colorless profile.
func (a *ANSI) SetTextColor(c core.Color) error {
	if a.out.Profile == termenv.Ascii {
		return nil
	}
	seq := a.out.Convert(termenvColor(c)).Sequence(false)
	if seq == "" {
		return nil
	}
	_, err := a.out.WriteString(termenv.CSI + seq + "m")
	return err
}

// termenvColor converts a pipe color to its termenv form.
func termenvColor(c core.Color) termenv.Color {
	if c.IsRGB() {
		return termenv.RGBColor(c.Hex())
	}
	return termenv.ANSIColor(c.Named.ANSIIndex())
}

// Print writes one glyph.
func (a *ANSI) Print(r rune) error {
	_, err := a.buf.WriteRune(r)
	return err
}

// Flush writes the buffered frame to the console.
func (a *ANSI) Flush() error {
	return a.buf.Flush()
}

// EnableBold turns on bold text.
func (a *ANSI) EnableBold() error {
	_, err := a.out.WriteString(termenv.CSI + termenv.BoldSeq + "m")
	return err
}

// ResetStyle clears colors and attributes.
func (a *ANSI) ResetStyle() error {
	a.out.Reset()
	return nil
}

// SetRawMode toggles raw input on the console.
func (a *ANSI) SetRawMode(enabled bool) error {
	if enabled {
		return a.console.MakeRaw()
	}
	return a.console.Restore()
}

// SetCursorVisible shows or hides the cursor.
func (a *ANSI) SetCursorVisible(visible bool) error {
	if visible {
		a.out.ShowCursor()
	} else {
		a.out.HideCursor()
	}
	return nil
}

// EnterAlternateScreen switches to the alternate screen buffer.
func (a *ANSI) EnterAlternateScreen() error {
	a.out.AltScreen()
	return nil
}

// LeaveAlternateScreen returns to the normal screen buffer.
func (a *ANSI) LeaveAlternateScreen() error {
	a.out.ExitAltScreen()
	return nil
}

// Clear erases the screen.
func (a *ANSI) Clear() error {
	a.out.ClearScreen()
	return nil
}

// PollEvent returns the next pending event.
func (a *ANSI) PollEvent() (core.Event, bool) {
	return a.queue.poll()
}

// Close stops the resize listener and closes the console.
// The input goroutine exits once the console read fails.
func (a *ANSI) Close() error {
	var err error
	a.closeOnce.Do(func() {
		close(a.stopCh)
		err = a.console.Close()
	})
	return err
}
