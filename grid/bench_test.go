package grid_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/guardwalk/grid"
)

// randomGrid builds an n×n grid with roughly density*n*n obstructions from a
// fixed seed.
func randomGrid(b *testing.B, n int, density float64) *grid.Grid {
	b.Helper()
	r := rand.New(rand.NewSource(42))
	var pts []grid.Point
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			if r.Float64() < density {
				pts = append(pts, grid.Point{X: x, Y: y})
			}
		}
	}
	g, err := grid.New(n, n, pts)
	if err != nil {
		b.Fatalf("setup New failed: %v", err)
	}
	return g
}

// BenchmarkNextObstruction measures ray queries on a derived 1000×1000 grid.
// Complexity: O(log k) per query.
func BenchmarkNextObstruction(b *testing.B) {
	g := randomGrid(b, 1000, 0.02)
	d, err := g.With(grid.Point{X: 500, Y: 250})
	if err != nil {
		b.Fatalf("setup With failed: %v", err)
	}
	pos := grid.Position{Point: grid.Point{X: 500, Y: 999}}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		pos.Dir = grid.Direction(i % 4)
		_, _ = d.NextObstruction(pos)
	}
}

// BenchmarkIsObstruction measures point membership on a 1000×1000 grid.
func BenchmarkIsObstruction(b *testing.B) {
	g := randomGrid(b, 1000, 0.02)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.IsObstruction(grid.Point{X: i % 1000, Y: (i / 1000) % 1000})
	}
}
