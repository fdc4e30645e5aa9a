// Package terminaltest provides a recording terminal backend for tests.
package terminaltest

import (
	"errors"
	"fmt"
	"sync"

	"github.com/vovakirdan/tui-pipes/internal/core"
	"github.com/vovakirdan/tui-pipes/internal/terminal"
)

// ErrInjected is returned by the method named in Recorder.FailOn.
var ErrInjected = errors.New("injected terminal failure")

// Recorder is a Backend that logs every call and remembers printed glyphs.
// Events are handed out one per PollEvent call, in order.
type Recorder struct {
	mu sync.Mutex

	Cols, Rows int
	Events     []core.Event
	FailOn     string

	calls  []string
	cells  map[[2]int]rune
	x, y   int
	color  core.Color
	colors map[[2]int]core.Color
	raw    bool
	cursor bool
	alt    bool
}

// NewRecorder creates a recorder reporting the given size.
func NewRecorder(cols, rows int) *Recorder {
	return &Recorder{
		Cols:   cols,
		Rows:   rows,
		cells:  make(map[[2]int]rune),
		colors: make(map[[2]int]core.Color),
		cursor: true,
	}
}

func (r *Recorder) record(call string) error {
	r.calls = append(r.calls, call)
	if r.FailOn != "" && r.FailOn == call {
		return fmt.Errorf("%s: %w", call, ErrInjected)
	}
	return nil
}

// Calls returns the call log.
func (r *Recorder) Calls() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.calls))
	copy(out, r.calls)
	return out
}

// Count returns how many times call appears in the log.
func (r *Recorder) Count(call string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, c := range r.calls {
		if c == call {
			n++
		}
	}
	return n
}

// Cell returns the last glyph printed at column x, row y.
func (r *Recorder) Cell(x, y int) (rune, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	g, ok := r.cells[[2]int{x, y}]
	return g, ok
}

// CellColor returns the color active when the glyph at (x, y) was printed.
func (r *Recorder) CellColor(x, y int) (core.Color, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.colors[[2]int{x, y}]
	return c, ok
}

// Restored reports whether raw mode is off, the cursor visible and the
// alternate screen left.
func (r *Recorder) Restored() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return !r.raw && r.cursor && !r.alt
}

// InRawMode reports whether raw mode is on.
func (r *Recorder) InRawMode() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.raw
}

func (r *Recorder) Size() (int, int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.Cols, r.Rows, r.record("Size")
}

func (r *Recorder) MoveCursor(x, y int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.x, r.y = x, y
	return r.record("MoveCursor")
}

func (r *Recorder) SetTextColor(c core.Color) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.color = c
	return r.record("SetTextColor")
}

func (r *Recorder) Print(g rune) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.record("Print"); err != nil {
		return err
	}
	r.cells[[2]int{r.x, r.y}] = g
	r.colors[[2]int{r.x, r.y}] = r.color
	r.x++
	return nil
}

func (r *Recorder) Flush() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.record("Flush")
}

func (r *Recorder) EnableBold() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.record("EnableBold")
}

func (r *Recorder) ResetStyle() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.record("ResetStyle")
}

func (r *Recorder) SetRawMode(enabled bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.record(fmt.Sprintf("SetRawMode(%v)", enabled)); err != nil {
		return err
	}
	r.raw = enabled
	return nil
}

func (r *Recorder) SetCursorVisible(visible bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.record(fmt.Sprintf("SetCursorVisible(%v)", visible)); err != nil {
		return err
	}
	r.cursor = visible
	return nil
}

func (r *Recorder) EnterAlternateScreen() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.record("EnterAlternateScreen"); err != nil {
		return err
	}
	r.alt = true
	return nil
}

func (r *Recorder) LeaveAlternateScreen() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.record("LeaveAlternateScreen"); err != nil {
		return err
	}
	r.alt = false
	return nil
}

func (r *Recorder) Clear() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.record("Clear"); err != nil {
		return err
	}
	r.cells = make(map[[2]int]rune)
	r.colors = make(map[[2]int]core.Color)
	return nil
}

// PollEvent hands out the next scripted event. A resize also updates the
// reported size, like a real terminal.
func (r *Recorder) PollEvent() (core.Event, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.Events) == 0 {
		return core.Event{}, false
	}
	ev := r.Events[0]
	r.Events = r.Events[1:]
	if ev.Type == core.EventResize {
		r.Cols, r.Rows = ev.Width, ev.Height
	}
	return ev, true
}

func (r *Recorder) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.record("Close")
}

var _ terminal.Backend = (*Recorder)(nil)
