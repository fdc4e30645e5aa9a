package core

import "github.com/vovakirdan/tui-pipes/internal/rng"

// Direction is the heading of a pipe on the grid.
type Direction uint8

const (
	Up Direction = iota
	Down
	Left
	Right
)

// Directions lists every direction in declaration order.
var Directions = [4]Direction{Up, Down, Left, Right}

// String returns a human-readable name for the direction.
func (d Direction) String() string {
	switch d {
	case Up:
		return "Up"
	case Down:
		return "Down"
	case Left:
		return "Left"
	case Right:
		return "Right"
	default:
		return "Unknown"
	}
}

// RandomDirection picks one of the four directions uniformly.
func RandomDirection(r rng.Rand) Direction {
	return Directions[r.IntRange(0, len(Directions))]
}

// TurnLeft returns the direction after a left turn.
func (d Direction) TurnLeft() Direction {
	switch d {
	case Up:
		return Left
	case Down:
		return Right
	case Left:
		return Up
	default:
		return Down
	}
}

// TurnRight returns the direction after a right turn.
func (d Direction) TurnRight() Direction {
	switch d {
	case Up:
		return Right
	case Down:
		return Left
	case Left:
		return Down
	default:
		return Up
	}
}

// Reverse returns the opposite direction.
func (d Direction) Reverse() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	default:
		return Left
	}
}

// MaybeTurn turns left or right with probability chance, picking the side
// with a fair coin. Otherwise the direction is returned unchanged.
func (d Direction) MaybeTurn(r rng.Rand, chance float64) Direction {
	if !r.Bool(chance) {
		return d
	}
	if r.Bool(0.5) {
		return d.TurnLeft()
	}
	return d.TurnRight()
}
