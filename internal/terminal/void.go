package terminal

import "github.com/vovakirdan/tui-pipes/internal/core"

// Void is a backend that draws nothing. It reports a fixed size and never
// produces events, for benchmarks and headless runs.
type Void struct {
	cols, rows int
	glyphs     uint64
}

// NewVoid creates a void backend of the given size.
func NewVoid(cols, rows int) *Void {
	return &Void{cols: cols, rows: rows}
}

// Glyphs returns how many glyphs were printed.
func (v *Void) Glyphs() uint64 { return v.glyphs }

func (v *Void) Size() (int, int, error) {
	return v.cols, v.rows, nil
}

func (v *Void) MoveCursor(int, int) error {
	return nil
}

func (v *Void) SetTextColor(core.Color) error {
	return nil
}

func (v *Void) Print(rune) error {
	v.glyphs++
	return nil
}

func (v *Void) Flush() error {
	return nil
}

func (v *Void) EnableBold() error {
	return nil
}

func (v *Void) ResetStyle() error {
	return nil
}

func (v *Void) SetRawMode(bool) error {
	return nil
}

func (v *Void) SetCursorVisible(bool) error {
	return nil
}

func (v *Void) EnterAlternateScreen() error {
	return nil
}

func (v *Void) LeaveAlternateScreen() error {
	return nil
}

func (v *Void) Clear() error {
	return nil
}

func (v *Void) PollEvent() (core.Event, bool) {
	return core.Event{}, false
}

func (v *Void) Close() error {
	return nil
}
