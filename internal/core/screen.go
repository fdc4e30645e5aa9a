package core

import "fmt"

// Screen tracks which grid cells have been drawn on since the last clear.
// The covered counter is kept in sync with the cells so Fraction is O(1).
type Screen struct {
	width   int
	height  int
	cells   []bool
	covered int
}

// NewScreen creates a cleared screen with the given dimensions.
func NewScreen(width, height int) *Screen {
	s := &Screen{}
	s.Resize(width, height)
	return s
}

// allocate creates the underlying cell storage.
func (s *Screen) allocate() {
	s.cells = make([]bool, s.width*s.height)
	s.covered = 0
}

// Width returns the screen width in cells.
func (s *Screen) Width() int {
	return s.width
}

// Height returns the screen height in cells.
func (s *Screen) Height() int {
	return s.height
}

// Size returns the screen dimensions.
func (s *Screen) Size() Size {
	return Size{Width: s.width, Height: s.height}
}

// Resize reallocates the screen. All cells are uncovered afterwards.
func (s *Screen) Resize(width, height int) {
	size := NewSize(width, height)
	s.width, s.height = size.Width, size.Height
	s.allocate()
}

// Clear marks every cell as uncovered.
func (s *Screen) Clear() {
	clear(s.cells)
	s.covered = 0
}

// Mark records that the cell at (x, y) was drawn on.
// Marking a covered cell again has no effect.
// Panics if (x, y) lies outside the screen.
func (s *Screen) Mark(x, y int) {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		panic(fmt.Sprintf("core: cell (%d, %d) outside %dx%d screen", x, y, s.width, s.height))
	}
	i := y*s.width + x
	if s.cells[i] {
		return
	}
	s.cells[i] = true
	s.covered++
}

// Covered returns the number of covered cells.
func (s *Screen) Covered() int {
	return s.covered
}

// Fraction returns covered cells divided by total cells.
// An empty screen reports 0.
func (s *Screen) Fraction() float64 {
	total := s.width * s.height
	if total == 0 {
		return 0
	}
	return float64(s.covered) / float64(total)
}
