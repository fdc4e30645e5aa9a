package terminal

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/tui-pipes/internal/core"
)

// TCell draws through a tcell screen. tcell owns raw mode and the
// alternate screen: the screen is initialized on EnterAlternateScreen and
// finalized on LeaveAlternateScreen.
type TCell struct {
	screen  tcell.Screen
	style   tcell.Style
	x, y    int
	queue   *eventQueue
	started bool
	done    chan struct{}
}

// NewTCell creates a backend on the given screen. Init is deferred until
// EnterAlternateScreen.
func NewTCell(screen tcell.Screen) *TCell {
	return &TCell{
		screen: screen,
		style:  tcell.StyleDefault,
		queue:  newEventQueue(),
	}
}

// NewTCellScreen creates a backend on the local terminal.
func NewTCellScreen() (*TCell, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("failed to create tcell screen: %w", err)
	}
	return NewTCell(screen), nil
}

// pollLoop translates tcell events until the screen is finalized.
func (t *TCell) pollLoop() {
	defer close(t.done)
	for {
		ev := t.screen.PollEvent()
		if ev == nil {
			return
		}
		switch ev := ev.(type) {
		case *tcell.EventResize:
			w, h := ev.Size()
			t.queue.pushResize(w, h)
		case *tcell.EventKey:
			switch ev.Key() {
			case tcell.KeyCtrlC:
				t.queue.pushKey(core.EventExit)
			case tcell.KeyRune:
				t.queue.pushKey(core.EventForKey(ev.Rune()))
			}
		}
	}
}

// Size returns the screen size.
func (t *TCell) Size() (int, int, error) {
	if !t.started {
		return 0, 0, fmt.Errorf("tcell screen not initialized")
	}
	w, h := t.screen.Size()
	return w, h, nil
}

// MoveCursor sets where the next glyph is drawn.
func (t *TCell) MoveCursor(x, y int) error {
	t.x, t.y = x, y
	return nil
}

// SetTextColor sets the foreground color of later glyphs.
func (t *TCell) SetTextColor(c core.Color) error {
	t.style = t.style.Foreground(tcellColor(c))
	return nil
}

// tcellColor converts a pipe color to its tcell form.
func tcellColor(c core.Color) tcell.Color {
	if c.IsRGB() {
		return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
	}
	return tcell.PaletteColor(c.Named.ANSIIndex())
}

// Print draws one glyph at the cursor.
func (t *TCell) Print(r rune) error {
	t.screen.SetContent(t.x, t.y, r, nil, t.style)
	t.x++
	return nil
}

// Flush shows the frame.
func (t *TCell) Flush() error {
	if t.started {
		t.screen.Show()
	}
	return nil
}

// EnableBold makes later glyphs bold.
func (t *TCell) EnableBold() error {
	t.style = t.style.Bold(true)
	return nil
}

// ResetStyle returns to the default style.
func (t *TCell) ResetStyle() error {
	t.style = tcell.StyleDefault
	return nil
}

// SetRawMode is handled by tcell itself.
func (t *TCell) SetRawMode(bool) error {
	return nil
}

// SetCursorVisible hides the cursor; tcell restores it on Fini.
func (t *TCell) SetCursorVisible(visible bool) error {
	if !visible && t.started {
		t.screen.HideCursor()
	}
	return nil
}

// EnterAlternateScreen initializes the screen and starts the event listener.
func (t *TCell) EnterAlternateScreen() error {
	if t.started {
		return nil
	}
	if err := t.screen.Init(); err != nil {
		return fmt.Errorf("failed to initialize tcell screen: %w", err)
	}
	t.started = true
	t.done = make(chan struct{})
	go t.pollLoop()
	return nil
}

// LeaveAlternateScreen finalizes the screen, restoring the terminal.
func (t *TCell) LeaveAlternateScreen() error {
	if !t.started {
		return nil
	}
	t.started = false
	t.screen.Fini()
	<-t.done
	return nil
}

// Clear erases the screen.
func (t *TCell) Clear() error {
	if t.started {
		t.screen.Clear()
	}
	return nil
}

// PollEvent returns the next pending event. Resizes also resync the screen.
func (t *TCell) PollEvent() (core.Event, bool) {
	ev, ok := t.queue.poll()
	if ok && ev.Type == core.EventResize && t.started {
		t.screen.Sync()
	}
	return ev, ok
}

// Close finalizes the screen if it is still active.
func (t *TCell) Close() error {
	return t.LeaveAlternateScreen()
}
