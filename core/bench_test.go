// Package core_test provides benchmarks for core.Graph hot paths used by the search.
package core_test

import (
	"testing"

	"github.com/katalvlaran/waypath/core"
)

// BenchmarkRelax measures the locked cost update performed on every improvement.
func BenchmarkRelax(b *testing.B) {
	g := newLine(b, 2)
	n := g.NodeAt(1)
	h := func() float64 { return 1 }
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		n.Relax(0, float64(i), h)
	}
}

// BenchmarkIsEdgeObstacle measures the obstacle lookup done per neighbor.
func BenchmarkIsEdgeObstacle(b *testing.B) {
	g := newLine(b, 64)
	_ = g.SetEdgeObstacle(10, 11, true)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.IsEdgeObstacle(int64(i%63), int64(i%63+1))
	}
}

// BenchmarkSnapshot measures a full render-frame copy of a 1k-node line.
func BenchmarkSnapshot(b *testing.B) {
	g := newLine(b, 1024)
	g.NodeAt(5).SetCost(core.CostTentative, 1)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.Snapshot()
	}
}
