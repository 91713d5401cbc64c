package floodfill_test

import (
	"testing"

	"github.com/katalvlaran/lvmaze/bintree"
	"github.com/katalvlaran/lvmaze/floodfill"
	"github.com/katalvlaran/lvmaze/grid"
)

// BenchmarkSolve_201 measures labeling plus reconstruction on a 201×201
// generated maze between its fixed exits.
func BenchmarkSolve_201(b *testing.B) {
	g, err := bintree.FromSeed(201, 201, false, 42)
	if err != nil {
		b.Fatalf("setup: %v", err)
	}
	start, goal := grid.At(0, 199), grid.At(200, 1)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = floodfill.Solve(g, start, goal)
	}
}
