// Package terminal drives the device the screensaver draws on.
//
// A Backend is the low-level capability (escape sequences, raw mode, input).
// Terminal wraps a Backend with the coverage screen and converts grid cells
// to terminal columns, so the simulation only ever deals in grid coordinates.
package terminal

import "github.com/vovakirdan/tui-pipes/internal/core"

// Backend is a terminal the screensaver can draw on.
// Coordinates are terminal columns and rows, 0-based.
type Backend interface {
	// Size returns the terminal size in columns and rows.
	Size() (cols, rows int, err error)

	MoveCursor(x, y int) error
	SetTextColor(c core.Color) error
	Print(r rune) error

	// Flush writes buffered output. Called once per frame.
	Flush() error

	EnableBold() error
	ResetStyle() error
	SetRawMode(enabled bool) error
	SetCursorVisible(visible bool) error
	EnterAlternateScreen() error
	LeaveAlternateScreen() error
	Clear() error

	// PollEvent returns the next pending event without blocking.
	// A pending resize is always returned before key events.
	PollEvent() (core.Event, bool)

	// Close stops background listeners.
	Close() error
}
