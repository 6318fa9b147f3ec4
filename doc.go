// Package guardwalk simulates a guard patrolling a rectangular map and finds
// every cell where a single extra obstruction would trap the guard in an
// endless loop.
//
// The guard walks straight ahead and turns right in place whenever the cell
// in front is an obstruction, until it steps off the map.
//
// Quick ASCII example:
//
//	....#.....
//	.........#
//	..........
//	..#.......
//	.......#..
//	..........
//	.#..^.....
//	........#.
//	#.........
//	......#...
//
// visits 41 distinct cells; 6 cells would each produce a loop if blocked.
//
// Everything is organized under a few subpackages:
//
//	grid/          Point, Direction, Position, sorted-axis Grid, parsing, rendering
//	patrol/        single-step Path walker and accelerated Stops walker
//	loopdetect/    real walk plus per-cell what-if trials, sequential or parallel
//	cmd/guardwalk  the command-line front end (solve, render)
//
//	go install github.com/katalvlaran/guardwalk/cmd/guardwalk@latest
package guardwalk
