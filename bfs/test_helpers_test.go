package bfs_test

import (
	"testing"

	"github.com/katalvlaran/waypath/core"
)

// buildGraph creates nodes 0..n-1 on the x axis and unit-cost edges.
func buildGraph(t testing.TB, n int, edges [][2]int64) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for i := 0; i < n; i++ {
		if err := g.AddNode(int64(i), core.Vec3{X: float64(i)}); err != nil {
			t.Fatalf("AddNode(%d): %v", i, err)
		}
	}
	for _, e := range edges {
		if err := g.Connect(e[0], e[1], 1); err != nil {
			t.Fatalf("Connect(%d,%d): %v", e[0], e[1], err)
		}
	}

	return g
}
