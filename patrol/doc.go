// Package patrol walks a guard across a grid.Grid.
//
// What:
//
//   - Path is the single-step walker: each Next yields the current Position
//     and what happens next. If the cell ahead is outside the grid the walk
//     ends; if it is an obstruction the guard turns right in place;
//     otherwise it advances one cell.
//   - Stops is the accelerated walker: it jumps straight to the cell before
//     the next obstruction and yields only the turned Positions, ending when
//     no obstruction lies ahead.
//   - Walk drives a Path to completion and summarises the visited cells.
//
// A well-formed map always lets the guard leave. A guard boxed in on all four
// sides turns forever; WithMaxSteps bounds such walks and reports
// ErrStepLimit.
//
// Complexity:
//
//   - Path: O(1) amortised per step plus O(log k) obstruction lookup.
//   - Stops: O(log k) per turn.
package patrol
