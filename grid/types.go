// Package grid defines core types and sentinel errors for patrol grids.
package grid

import (
	"errors"
	"fmt"
)

// Sentinel errors for grid construction and parsing.
var (
	// ErrEmptyGrid indicates the input has no rows or a row of zero width.
	ErrEmptyGrid = errors.New("grid: input must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
	// ErrOutOfBounds indicates a point outside [0,width) x [0,height).
	ErrOutOfBounds = errors.New("grid: point out of bounds")
	// ErrNoStart indicates the map carries no guard marker.
	ErrNoStart = errors.New("grid: no guard start marker")
	// ErrMultipleStarts indicates more than one guard marker.
	ErrMultipleStarts = errors.New("grid: multiple guard start markers")
	// ErrStartObstructed indicates the guard starts on an obstruction.
	ErrStartObstructed = errors.New("grid: guard start is an obstruction")
	// ErrNestedDerive indicates With was called on a derived grid.
	ErrNestedDerive = errors.New("grid: cannot derive from a derived grid")
)

// Point identifies a grid cell. Coordinates are signed so that stepping off
// the top or left edge yields a negative, out-of-bounds value.
type Point struct {
	X, Y int
}

// Add returns p translated by d.
func (p Point) Add(d Point) Point {
	return Point{X: p.X + d.X, Y: p.Y + d.Y}
}

// String formats p as "x,y".
func (p Point) String() string {
	return fmt.Sprintf("%d,%d", p.X, p.Y)
}

// Direction is one of the four compass facings, in clockwise order.
type Direction uint8

const (
	// Up decreases Y.
	Up Direction = iota
	// Right increases X.
	Right
	// Down increases Y.
	Down
	// Left decreases X.
	Left
)

// deltas is indexed by Direction.
var deltas = [4]Point{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}

// TurnRight returns the next facing clockwise: Up→Right→Down→Left→Up.
func (d Direction) TurnRight() Direction {
	return (d + 1) % 4
}

// Delta returns the unit step for d.
func (d Direction) Delta() Point {
	return deltas[d%4]
}

// String returns the lower-case facing name.
func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Right:
		return "right"
	case Down:
		return "down"
	case Left:
		return "left"
	}
	return fmt.Sprintf("Direction(%d)", uint8(d))
}

// Position is a guard state: where it stands and which way it faces.
// It is the unit of state for loop detection; the same Point with two
// facings is two distinct Positions.
type Position struct {
	Point Point
	Dir   Direction
}

// Ahead returns the point one step ahead of pos along its facing.
// No bounds or obstruction check is made.
func (pos Position) Ahead() Point {
	return pos.Point.Add(pos.Dir.Delta())
}

// Turned returns pos rotated 90° clockwise in place.
func (pos Position) Turned() Position {
	return Position{Point: pos.Point, Dir: pos.Dir.TurnRight()}
}

// String formats pos as "x,y/dir".
func (pos Position) String() string {
	return pos.Point.String() + "/" + pos.Dir.String()
}

// StepTarget is the free-function form of Position.Ahead.
func StepTarget(pos Position) Point {
	return pos.Ahead()
}
