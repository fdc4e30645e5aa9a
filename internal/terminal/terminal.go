package terminal

import (
	"fmt"

	"github.com/vovakirdan/tui-pipes/internal/core"
)

// Terminal draws on a Backend in grid coordinates and records coverage.
// A grid cell is cellWidth terminal columns wide.
type Terminal struct {
	backend   Backend
	screen    *core.Screen
	cellWidth int
	cursor    core.Position
}

// New wraps backend. The grid is empty until Sync is called.
func New(backend Backend, cellWidth int) *Terminal {
	return &Terminal{
		backend:   backend,
		screen:    core.NewScreen(0, 0),
		cellWidth: core.Max(cellWidth, 1),
	}
}

// Sync queries the backend size and resizes the grid to match.
func (t *Terminal) Sync() error {
	cols, rows, err := t.backend.Size()
	if err != nil {
		return fmt.Errorf("failed to query terminal size: %w", err)
	}
	t.resize(cols, rows)
	return nil
}

func (t *Terminal) resize(cols, rows int) {
	size := core.NewSize(cols/t.cellWidth, rows)
	t.screen.Resize(size.Width, size.Height)
	t.cursor = core.Position{}
}

// Size returns the grid size.
func (t *Terminal) Size() core.Size {
	return t.screen.Size()
}

// CellWidth returns the number of columns per grid cell.
func (t *Terminal) CellWidth() int {
	return t.cellWidth
}

// Coverage returns the fraction of grid cells drawn on since the last clear.
func (t *Terminal) Coverage() float64 {
	return t.screen.Fraction()
}

// MoveCursor moves to a grid cell. Panics if p is outside the grid.
func (t *Terminal) MoveCursor(p core.Position) error {
	if !t.screen.Size().Contains(p) {
		panic(fmt.Sprintf("terminal: cursor %v outside %v grid", p, t.screen.Size()))
	}
	t.cursor = p
	return t.backend.MoveCursor(p.X*t.cellWidth, p.Y)
}

// Print draws a glyph at the cursor and marks the cell covered.
func (t *Terminal) Print(r rune) error {
	if err := t.backend.Print(r); err != nil {
		return err
	}
	t.screen.Mark(t.cursor.X, t.cursor.Y)
	return nil
}

// Clear erases the terminal and the coverage record.
func (t *Terminal) Clear() error {
	if err := t.backend.Clear(); err != nil {
		return err
	}
	t.screen.Clear()
	return nil
}

// PollEvent returns the next event. A resize also resizes the grid.
func (t *Terminal) PollEvent() (core.Event, bool) {
	ev, ok := t.backend.PollEvent()
	if ok && ev.Type == core.EventResize {
		t.resize(ev.Width, ev.Height)
	}
	return ev, ok
}

func (t *Terminal) SetTextColor(c core.Color) error { return t.backend.SetTextColor(c) }
func (t *Terminal) Flush() error { return t.backend.Flush() }
func (t *Terminal) EnableBold() error { return t.backend.EnableBold() }
func (t *Terminal) ResetStyle() error { return t.backend.ResetStyle() }
func (t *Terminal) SetRawMode(enabled bool) error { return t.backend.SetRawMode(enabled) }

func (t *Terminal) SetCursorVisible(visible bool) error {
	return t.backend.SetCursorVisible(visible)
}

func (t *Terminal) EnterAlternateScreen() error { return t.backend.EnterAlternateScreen() }
func (t *Terminal) LeaveAlternateScreen() error { return t.backend.LeaveAlternateScreen() }
