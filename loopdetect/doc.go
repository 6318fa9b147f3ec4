// Package loopdetect counts the cells where one extra obstruction would trap
// the guard in an endless patrol.
//
// Detect walks the real patrol one step at a time. Right before the guard
// steps onto a cell it has never been offered before, a trial puts a
// hypothetical obstruction there (grid.Grid.With) and re-walks from the
// guard's current Position with patrol.Stops. The trial is a loop as soon as
// it reaches a Position already seen, either in the real walk so far or
// earlier in the same trial; it is not a loop if the guard leaves the grid.
//
// Reusing the real walk's history is sound because the new obstruction sits
// on a cell the real walk has not yet entered, so every earlier Position is
// reachable unchanged on the hypothetical route too.
//
// Each cell gets one verdict, taken the first time it is about to be entered.
// The start cell is never offered.
//
// Parallel mode (WithWorkers > 1) records the real walk first and then
// evaluates trials on an errgroup, each against the history prefix that
// existed when its cell was discovered. Results match the sequential run.
//
// Complexity: O(C × T log k) where C is the number of candidate cells and T
// the turns per trial, bounded by 4×W×H.
package loopdetect
