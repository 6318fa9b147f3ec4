// File: grid/example_test.go
package grid_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/guardwalk/grid"
)

////////////////////////////////////////////////////////////////////////////////
// Example: NextObstruction on a derived grid
////////////////////////////////////////////////////////////////////////////////

// ExampleGrid_With shows that a derived grid sees its extra obstruction
// while the parent does not.
func ExampleGrid_With() {
	m, _ := grid.ParseLines([]string{
		"#....",
		".....",
		"^....",
	})
	up := m.Start

	hit, ok := m.Grid.NextObstruction(up)
	fmt.Println("base:", hit, ok)

	d, _ := m.Grid.With(grid.Point{X: 0, Y: 1})
	hit, ok = d.NextObstruction(up)
	fmt.Println("derived:", hit, ok)
	fmt.Println("parent sees extra:", m.Grid.IsObstruction(grid.Point{X: 0, Y: 1}))

	// Output:
	// base: 0,0 true
	// derived: 0,1 true
	// parent sees extra: false
}

////////////////////////////////////////////////////////////////////////////////
// Example: Render
////////////////////////////////////////////////////////////////////////////////

// ExampleRender marks two visited cells and one loop candidate.
func ExampleRender() {
	m, _ := grid.ParseLines([]string{
		".#.",
		"...",
		".^.",
	})
	visited := map[grid.Point]struct{}{{X: 1, Y: 1}: {}, {X: 1, Y: 2}: {}}
	loops := map[grid.Point]struct{}{{X: 2, Y: 1}: {}}

	fmt.Println(strings.Join(grid.Render(m.Grid, m.Start, visited, loops, nil), "\n"))

	// Output:
	// .#.
	// .XO
	// .^.
}
