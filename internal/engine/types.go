// Package engine provides the snake simulation: the cell grid, the snake
// body/direction state machine and the per-tick update.
// This package is UI-agnostic and deterministic for a given seed.
package engine

import "fmt"

// Position is a zero-based grid coordinate.
// X increases to the right, Y increases downward.
type Position struct {
	X int
	Y int
}

// P is a convenience constructor for Position.
func P(x, y int) Position {
	return Position{X: x, Y: y}
}

// String returns a string representation of the position.
func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Step returns the position one cell away in the given direction.
func (p Position) Step(d Direction) Position {
	dx, dy := d.Delta()
	return Position{X: p.X + dx, Y: p.Y + dy}
}

// Direction is a snake heading.
type Direction uint8

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// Directions lists every heading, in declaration order.
var Directions = [...]Direction{DirUp, DirDown, DirLeft, DirRight}

// String returns the string representation of a direction.
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// Delta returns the (dx, dy) offset for moving one step in this direction.
// Up decreases Y, Down increases Y (screen coordinates).
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case DirUp:
		return 0, -1
	case DirDown:
		return 0, 1
	case DirLeft:
		return -1, 0
	case DirRight:
		return 1, 0
	default:
		return 0, 0
	}
}

// Opposite returns the reverse heading.
func (d Direction) Opposite() Direction {
	switch d {
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	case DirRight:
		return DirLeft
	default:
		return d
	}
}

// CellState classifies a grid coordinate.
// CellOutside is synthetic: it is never stored, only returned for
// coordinates beyond the grid bounds.
type CellState int8

const (
	CellOutside CellState = iota - 1
	CellEmpty
	CellFood
	CellSnake
)

// String returns the name of the state.
func (c CellState) String() string {
	switch c {
	case CellOutside:
		return "outside"
	case CellEmpty:
		return "empty"
	case CellFood:
		return "food"
	case CellSnake:
		return "snake"
	default:
		return "unknown"
	}
}

// Glyph returns the character used for the state in text dumps.
func (c CellState) Glyph() rune {
	switch c {
	case CellOutside:
		return '*'
	case CellEmpty:
		return '+'
	case CellFood:
		return '@'
	case CellSnake:
		return '#'
	default:
		return '?'
	}
}
