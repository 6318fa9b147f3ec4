package grid

import (
	"bufio"
	"fmt"
	"io"
	"slices"
	"strings"
)

// Map symbols.
const (
	SymbolObstruction = '#'
	SymbolStart       = '^'
	SymbolFloor       = '.'
)

// maxLineBytes bounds a single map row read by Parse.
const maxLineBytes = 1 << 20

// Map is a parsed patrol map: the static Grid and where the guard starts.
type Map struct {
	Grid  *Grid
	Start Position
}

// NewMap pairs g with a start position after checking that the guard stands
// inside the grid on open floor.
// Returns ErrOutOfBounds or ErrStartObstructed.
func NewMap(g *Grid, start Position) (*Map, error) {
	if !g.InBounds(start.Point) {
		return nil, fmt.Errorf("start %v: %w", start.Point, ErrOutOfBounds)
	}
	if g.IsObstruction(start.Point) {
		return nil, fmt.Errorf("start %v: %w", start.Point, ErrStartObstructed)
	}

	return &Map{Grid: g, Start: start}, nil
}

// Parse reads a map from r, one row per line. See ParseLines.
func Parse(r io.Reader) (*Map, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	var lines []string
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("grid: read map: %w", err)
	}

	return ParseLines(lines)
}

// ParseLines builds a Map from text rows: '#' is an obstruction, '^' is the
// guard facing Up, anything else is floor. Trailing '\r' is stripped and one
// trailing empty row is ignored.
//
// Errors:
//   - ErrEmptyGrid: no rows, or every row is empty.
//   - ErrNonRectangular: a row's length differs from the first row's,
//     including an empty first row followed by a non-empty one.
//   - ErrNoStart / ErrMultipleStarts: zero or several '^' markers.
//
// Complexity: O(W×H + N log N).
func ParseLines(lines []string) (*Map, error) {
	if n := len(lines); n > 0 && strings.TrimRight(lines[n-1], "\r") == "" {
		lines = lines[:n-1]
	}
	if !slices.ContainsFunc(lines, func(l string) bool { return strings.TrimRight(l, "\r") != "" }) {
		return nil, ErrEmptyGrid
	}

	var (
		width        = -1
		start        Point
		found        bool
		obstructions []Point
	)
	for y, line := range lines {
		row := []rune(strings.TrimRight(line, "\r"))
		if width < 0 {
			width = len(row)
		}
		if len(row) != width {
			return nil, fmt.Errorf("line %d: %d columns, want %d: %w", y+1, len(row), width, ErrNonRectangular)
		}
		for x, c := range row {
			switch c {
			case SymbolObstruction:
				obstructions = append(obstructions, Point{X: x, Y: y})
			case SymbolStart:
				if found {
					return nil, fmt.Errorf("line %d column %d: %w", y+1, x+1, ErrMultipleStarts)
				}
				start, found = Point{X: x, Y: y}, true
			}
		}
	}
	if !found {
		return nil, ErrNoStart
	}

	g, err := New(width, len(lines), obstructions)
	if err != nil {
		return nil, err
	}

	return NewMap(g, Position{Point: start, Dir: Up})
}
