// Package core provides the value types shared by the pipes simulation:
// grid geometry, directions, colors, input events and the coverage screen.
// It has no terminal dependencies so the simulation stays pure and testable.
package core

// Position is a 0-based cell coordinate on the grid.
type Position struct {
	X, Y int
}

// Size is the grid size in cells.
type Size struct {
	Width, Height int
}

// NewSize creates a size, clamping negative dimensions to zero.
func NewSize(width, height int) Size {
	return Size{Width: Max(width, 0), Height: Max(height, 0)}
}

// Area returns the number of cells in the grid.
func (s Size) Area() int {
	return s.Width * s.Height
}

// Empty reports whether the grid has no cells.
func (s Size) Empty() bool {
	return s.Width <= 0 || s.Height <= 0
}

// Contains returns true if p lies inside the grid.
func (s Size) Contains(p Position) bool {
	return p.X >= 0 && p.X < s.Width && p.Y >= 0 && p.Y < s.Height
}

// MoveIn moves p one cell in dir and reports whether it is still within size.
// A move that would take a coordinate below zero is rejected and p is left
// untouched. Moves past the far edge are applied and then reported.
func (p *Position) MoveIn(dir Direction, size Size) bool {
	switch dir {
	case Up:
		if p.Y == 0 {
			return false
		}
		p.Y--
	case Down:
		p.Y++
	case Left:
		if p.X == 0 {
			return false
		}
		p.X--
	case Right:
		p.X++
	}
	return size.Contains(*p)
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
