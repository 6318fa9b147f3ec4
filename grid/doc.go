// Package grid models a bounded rectangular patrol area with a sparse set of
// obstruction cells, plus the Point, Direction and Position types every walk
// over it is expressed in.
//
// What:
//
//   - Grid stores obstructions twice: per column (sorted ys) and per row
//     (sorted xs). Membership and "nearest obstruction along a ray" are both
//     binary searches over those slices.
//   - Grid.With derives a grid with exactly one extra obstruction. The derived
//     grid shares the parent's slices and only remembers the extra point, so a
//     hypothesis costs O(1) memory instead of a full copy.
//   - Parse reads the text map ('#' wall, '^' guard facing up, anything else
//     floor) into a Map holding the Grid and the guard's start Position.
//   - Render draws a Grid back to text with visited cells and loop candidates.
//
// Why:
//
//   - Ray queries turn a walk into O(log n) jumps between turns instead of
//     O(distance) single steps, which is what keeps repeated what-if walks
//     cheap.
//
// Complexity:
//
//   - New:             O(N log N) for N obstructions, Memory: O(W + H + N).
//   - IsObstruction:   O(log k), k = obstructions in the column.
//   - NextObstruction: O(log k), k = obstructions on the ray's row/column.
//   - With:            O(1) time and memory.
//
// Errors:
//
//   - ErrEmptyGrid: no rows or zero-width rows.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrOutOfBounds: an obstruction or derived point outside the grid.
//   - ErrNoStart, ErrMultipleStarts, ErrStartObstructed: bad guard marker.
//   - ErrNestedDerive: deriving from an already derived grid.
package grid
