package astar_test

import (
	"testing"

	"github.com/katalvlaran/waypath/astar"
)

// BenchmarkFindPath_Grid32 measures an unpaced corner-to-corner search.
func BenchmarkFindPath_Grid32(b *testing.B) {
	g := newGrid(b, 32, 32)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		g.ResetPaths()
		g.ClearVisited()
		if _, err := astar.FindPath(g, 0, 32*32-1); err != nil {
			b.Fatal(err)
		}
	}
}
