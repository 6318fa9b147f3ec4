// Package grid provides a sorted-axis obstruction index over a bounded
// rectangle. It supports:
//
//   - Point membership queries (IsObstruction)
//   - Ray queries: the nearest obstruction ahead of a Position
//   - One-level derivation with a single extra obstruction (With)
//
// A Grid is immutable once built; derived grids borrow their parent and must
// not outlive it.
package grid

import (
	"fmt"
	"slices"
)

// Grid is either a base grid owning its obstruction index, or a derived grid
// that points at a base parent and adds exactly one extra obstruction.
// cols[x] holds the sorted ys of obstructions in column x; rows[y] holds the
// sorted xs of obstructions in row y. Derived grids share these slices.
type Grid struct {
	width, height int
	cols          [][]int
	rows          [][]int

	parent *Grid // nil for a base grid
	extra  Point // meaningful only when parent != nil
}

// New constructs a base Grid of the given size from a list of obstruction
// points. Duplicates are collapsed; the input slice is not retained.
// Returns ErrEmptyGrid if width or height is not positive and ErrOutOfBounds
// (wrapped with the offending point) if any obstruction lies outside.
// Complexity: O(W + H + N log N) time, O(W + H + N) memory.
func New(width, height int, obstructions []Point) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrEmptyGrid
	}
	g := &Grid{
		width:  width,
		height: height,
		cols:   make([][]int, width),
		rows:   make([][]int, height),
	}
	for _, p := range obstructions {
		if !g.InBounds(p) {
			return nil, fmt.Errorf("obstruction %v in %dx%d grid: %w", p, width, height, ErrOutOfBounds)
		}
		g.cols[p.X] = append(g.cols[p.X], p.Y)
		g.rows[p.Y] = append(g.rows[p.Y], p.X)
	}
	// Sort and dedupe every axis so binary searches are valid.
	for x := range g.cols {
		slices.Sort(g.cols[x])
		g.cols[x] = slices.Compact(g.cols[x])
	}
	for y := range g.rows {
		slices.Sort(g.rows[y])
		g.rows[y] = slices.Compact(g.rows[y])
	}

	return g, nil
}

// With returns a grid that behaves like g except that p is also an
// obstruction. g is neither copied nor mutated.
// Returns ErrOutOfBounds if p lies outside g, ErrNestedDerive if g is itself
// derived.
// Complexity: O(1).
func (g *Grid) With(p Point) (*Grid, error) {
	if g.parent != nil {
		return nil, ErrNestedDerive
	}
	if !g.InBounds(p) {
		return nil, fmt.Errorf("derive at %v: %w", p, ErrOutOfBounds)
	}

	return &Grid{
		width:  g.width,
		height: g.height,
		cols:   g.cols,
		rows:   g.rows,
		parent: g,
		extra:  p,
	}, nil
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// Parent returns the base grid of a derived grid, or nil for a base grid.
func (g *Grid) Parent() *Grid { return g.parent }

// Extra returns the extra obstruction of a derived grid. ok is false for a
// base grid.
func (g *Grid) Extra() (p Point, ok bool) {
	if g.parent == nil {
		return Point{}, false
	}
	return g.extra, true
}

// InBounds reports whether p lies within [0,width) x [0,height).
// Complexity: O(1).
func (g *Grid) InBounds(p Point) bool {
	return p.X >= 0 && p.X < g.width && p.Y >= 0 && p.Y < g.height
}

// IsObstruction reports whether p is a wall in g. A derived grid checks its
// extra point first and then defers to its parent. Out-of-bounds points are
// never obstructions.
// Complexity: O(log k), k = obstructions in p's column.
func (g *Grid) IsObstruction(p Point) bool {
	if g.parent != nil {
		if p == g.extra {
			return true
		}
		return g.parent.IsObstruction(p)
	}
	if !g.InBounds(p) {
		return false
	}

	return contains(g.cols[p.X], p.Y)
}

// NextObstruction returns the nearest obstruction strictly ahead of pos along
// its facing. ok is false when the ray leaves the grid unobstructed or pos
// itself is out of bounds.
// Complexity: O(log k), k = obstructions on the ray's row or column.
func (g *Grid) NextObstruction(pos Position) (Point, bool) {
	if !g.InBounds(pos.Point) {
		return Point{}, false
	}
	x, y := pos.Point.X, pos.Point.Y
	// The extra point competes with the base axis only when it sits on the
	// same ray, ahead of pos.
	extra, derived := g.Extra()

	switch pos.Dir {
	case Up:
		oy, ok := LowerBound(g.cols[x], y)
		if derived && extra.X == x && extra.Y < y && (!ok || extra.Y > oy) {
			oy, ok = extra.Y, true
		}
		return Point{X: x, Y: oy}, ok
	case Down:
		oy, ok := UpperBound(g.cols[x], y)
		if derived && extra.X == x && extra.Y > y && (!ok || extra.Y < oy) {
			oy, ok = extra.Y, true
		}
		return Point{X: x, Y: oy}, ok
	case Left:
		ox, ok := LowerBound(g.rows[y], x)
		if derived && extra.Y == y && extra.X < x && (!ok || extra.X > ox) {
			ox, ok = extra.X, true
		}
		return Point{X: ox, Y: y}, ok
	case Right:
		ox, ok := UpperBound(g.rows[y], x)
		if derived && extra.Y == y && extra.X > x && (!ok || extra.X < ox) {
			ox, ok = extra.X, true
		}
		return Point{X: ox, Y: y}, ok
	}

	return Point{}, false
}

// Obstructions lists every obstruction of g in row-major order, including the
// extra point of a derived grid.
// Complexity: O(N).
func (g *Grid) Obstructions() []Point {
	extra, derived := g.Extra()
	var out []Point
	for y, xs := range g.rows {
		if derived && extra.Y == y && !contains(xs, extra.X) {
			i, _ := slices.BinarySearch(xs, extra.X)
			xs = slices.Insert(slices.Clone(xs), i, extra.X)
		}
		for _, x := range xs {
			out = append(out, Point{X: x, Y: y})
		}
	}

	return out
}

// Coordinate converts a row-major index back to a Point.
// Complexity: O(1).
func (g *Grid) Coordinate(idx int) Point {
	return Point{X: idx % g.width, Y: idx / g.width}
}
