// Package dijkstra_test contains unit tests for the Dijkstra implementation.
// These tests validate validation order, obstacle handling, MaxDistance,
// directed graphs and path reconstruction.
package dijkstra_test

import (
	"errors"
	"math"
	"reflect"
	"testing"

	"github.com/katalvlaran/waypath/core"
	"github.com/katalvlaran/waypath/dijkstra"
)

// buildGraph creates nodes 0..n-1 on the X axis and connects the given edges.
func buildGraph(t *testing.T, n int, edges [][3]float64, opts ...core.GraphOption) *core.Graph {
	t.Helper()
	g := core.NewGraph(opts...)
	for i := 0; i < n; i++ {
		if err := g.AddNode(int64(i), core.Vec3{X: float64(i)}); err != nil {
			t.Fatalf("AddNode(%d): %v", i, err)
		}
	}
	for _, e := range edges {
		if err := g.Connect(int64(e[0]), int64(e[1]), e[2]); err != nil {
			t.Fatalf("Connect(%v): %v", e, err)
		}
	}

	return g
}

// ------------------------------------------------------------------------
// 1. Validation Tests: Ensure errors are returned for invalid inputs.
// ------------------------------------------------------------------------

func TestDijkstra_NilGraph(t *testing.T) {
	_, _, err := dijkstra.Dijkstra(nil, dijkstra.Source(0))
	if !errors.Is(err, dijkstra.ErrNilGraph) {
		t.Fatalf("Expected ErrNilGraph, got %v", err)
	}
}

func TestDijkstra_SourceNotFound(t *testing.T) {
	g := buildGraph(t, 2, nil)
	_, _, err := dijkstra.Dijkstra(g, dijkstra.Source(7))
	if !errors.Is(err, dijkstra.ErrNodeNotFound) {
		t.Fatalf("Expected ErrNodeNotFound, got %v", err)
	}
	// Without Source, the default NoVia is never a node.
	_, _, err = dijkstra.Dijkstra(g)
	if !errors.Is(err, dijkstra.ErrNodeNotFound) {
		t.Fatalf("Expected ErrNodeNotFound without Source, got %v", err)
	}
}

func TestWithMaxDistance_PanicsOnNegative(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("Expected panic for negative MaxDistance")
		}
	}()
	dijkstra.WithMaxDistance(-1)(&dijkstra.Options{})
}

// ------------------------------------------------------------------------
// 2. Distances
// ------------------------------------------------------------------------

// TestDijkstra_Basic checks distances and predecessors on a small diamond.
//
//	0 —1— 1 —1— 3
//	 \         /
//	  4 — 2 —1
func TestDijkstra_Basic(t *testing.T) {
	g := buildGraph(t, 4, [][3]float64{{0, 1, 1}, {1, 3, 1}, {0, 2, 4}, {2, 3, 1}})
	dist, prev, err := dijkstra.Dijkstra(g, dijkstra.Source(0), dijkstra.WithReturnPath())
	if err != nil {
		t.Fatalf("Dijkstra error: %v", err)
	}
	want := map[int64]float64{0: 0, 1: 1, 2: 3, 3: 2}
	if !reflect.DeepEqual(dist, want) {
		t.Errorf("dist = %v; want %v", dist, want)
	}
	if prev[3] != 1 || prev[2] != 3 || prev[0] != core.NoVia {
		t.Errorf("prev = %v", prev)
	}
}

func TestDijkstra_NoPrevWithoutReturnPath(t *testing.T) {
	g := buildGraph(t, 2, [][3]float64{{0, 1, 1}})
	_, prev, err := dijkstra.Dijkstra(g, dijkstra.Source(0))
	if err != nil {
		t.Fatalf("Dijkstra error: %v", err)
	}
	if prev != nil {
		t.Errorf("prev = %v; want nil", prev)
	}
}

func TestDijkstra_Obstacles(t *testing.T) {
	g := buildGraph(t, 3, [][3]float64{{0, 1, 1}, {1, 2, 1}})
	if err := g.SetEdgeObstacle(1, 2, true); err != nil {
		t.Fatal(err)
	}

	dist, _, err := dijkstra.Dijkstra(g, dijkstra.Source(0))
	if err != nil {
		t.Fatalf("Dijkstra error: %v", err)
	}
	if !math.IsInf(dist[2], 1) {
		t.Errorf("dist[2] = %v; want +Inf behind the obstacle", dist[2])
	}

	dist, _, err = dijkstra.Dijkstra(g, dijkstra.Source(0), dijkstra.WithIgnoreObstacles())
	if err != nil {
		t.Fatalf("Dijkstra error: %v", err)
	}
	if dist[2] != 2 {
		t.Errorf("dist[2] = %v; want 2 when obstacles are ignored", dist[2])
	}
}

func TestDijkstra_MaxDistance(t *testing.T) {
	g := buildGraph(t, 4, [][3]float64{{0, 1, 1}, {1, 2, 1}, {2, 3, 1}})
	dist, _, err := dijkstra.Dijkstra(g, dijkstra.Source(0), dijkstra.WithMaxDistance(2))
	if err != nil {
		t.Fatalf("Dijkstra error: %v", err)
	}
	if dist[2] != 2 || !math.IsInf(dist[3], 1) {
		t.Errorf("dist = %v; want 3 cut off beyond 2", dist)
	}
}

func TestDijkstra_Directed(t *testing.T) {
	g := buildGraph(t, 3, [][3]float64{{0, 1, 1}, {1, 2, 1}}, core.WithDirected())
	dist, _, err := dijkstra.Dijkstra(g, dijkstra.Source(2))
	if err != nil {
		t.Fatalf("Dijkstra error: %v", err)
	}
	if !math.IsInf(dist[0], 1) || dist[2] != 0 {
		t.Errorf("dist = %v; directed edges must not be walked backwards", dist)
	}
}

// TestDijkstra_LeavesNodesUntouched checks the reference never writes search state.
func TestDijkstra_LeavesNodesUntouched(t *testing.T) {
	g := buildGraph(t, 3, [][3]float64{{0, 1, 1}, {1, 2, 1}})
	if _, _, err := dijkstra.ShortestPath(g, 0, 2); err != nil {
		t.Fatal(err)
	}
	if !g.Pristine() {
		t.Error("Dijkstra mutated node search fields")
	}
}

// ------------------------------------------------------------------------
// 3. ShortestPath
// ------------------------------------------------------------------------

func TestShortestPath(t *testing.T) {
	g := buildGraph(t, 5, [][3]float64{{0, 1, 2}, {1, 4, 10}, {0, 2, 1.5}, {2, 4, 3.5}, {1, 3, 1}, {3, 4, 1}})
	cases := []struct {
		name     string
		src, dst int64
		path     []int64
		cost     float64
		err      error
	}{
		{"Trap", 0, 4, []int64{0, 1, 3, 4}, 4, nil},
		{"Self", 2, 2, []int64{2}, 0, nil},
		{"UnknownTarget", 0, 9, nil, math.Inf(1), dijkstra.ErrNodeNotFound},
		{"UnknownSource", 9, 0, nil, math.Inf(1), dijkstra.ErrNodeNotFound},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			path, cost, err := dijkstra.ShortestPath(g, tc.src, tc.dst)
			if !errors.Is(err, tc.err) {
				t.Fatalf("err = %v; want %v", err, tc.err)
			}
			if !reflect.DeepEqual(path, tc.path) || cost != tc.cost {
				t.Errorf("got %v (%v); want %v (%v)", path, cost, tc.path, tc.cost)
			}
		})
	}
}

func TestShortestPath_Unreachable(t *testing.T) {
	g := buildGraph(t, 3, [][3]float64{{0, 1, 1}})
	_, cost, err := dijkstra.ShortestPath(g, 0, 2)
	if !errors.Is(err, dijkstra.ErrNoPath) {
		t.Fatalf("err = %v; want ErrNoPath", err)
	}
	if !math.IsInf(cost, 1) {
		t.Errorf("cost = %v; want +Inf", cost)
	}
}
