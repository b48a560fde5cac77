package gridgraph

import (
	"reflect"
	"sort"
	"testing"
)

// TestConnectedComponents_Simple4 tests ConnectedComponents on a simple 4×3 grid
// with orthogonal connectivity (Conn4).
//
// Grid (1 = walkable, 0 = wall):
//
//	0 1 1 0
//	1 1 0 0
//	0 0 1 1
//
// Expected: 2 regions of sizes 4 and 2.
func TestConnectedComponents_Simple4(t *testing.T) {
	grid := [][]int{
		{0, 1, 1, 0},
		{1, 1, 0, 0},
		{0, 0, 1, 1},
	}
	gg, err := From2D(grid, Conn4)
	if err != nil {
		t.Fatalf("From2D failed: %v", err)
	}

	comps := gg.ConnectedComponents()
	if len(comps) != 2 {
		t.Fatalf("got %d components; want 2", len(comps))
	}

	sizes := []int{len(comps[0]), len(comps[1])}
	sort.Ints(sizes)
	if want := []int{2, 4}; !reflect.DeepEqual(sizes, want) {
		t.Errorf("component sizes = %v; want %v", sizes, want)
	}
	if want := []int64{1, 2, 4, 5}; !reflect.DeepEqual(comps[0], want) {
		t.Errorf("component 0 = %v; want %v", comps[0], want)
	}
}

// TestConnectedComponents_DiagonalCorners checks that Conn8 does not join
// cells that only touch at a corner between two walls, matching the
// obstacle rule of ToCoreGraph.
//
//	1 0 1
//	1 1 0
func TestConnectedComponents_DiagonalCorners(t *testing.T) {
	grid := [][]int{
		{1, 0, 1},
		{1, 1, 0},
	}
	gg, err := From2D(grid, Conn8)
	if err != nil {
		t.Fatalf("From2D failed: %v", err)
	}

	comps := gg.ConnectedComponents()
	want := [][]int64{{0, 3, 4}, {2}}
	if !reflect.DeepEqual(comps, want) {
		t.Errorf("components = %v; want %v", comps, want)
	}
}

// TestConnectedComponents_Diagonal8 joins diagonal cells when the corner is open.
//
//	1 1
//	0 1
func TestConnectedComponents_Diagonal8(t *testing.T) {
	gg, err := From2D([][]int{{1, 1}, {0, 1}}, Conn8)
	if err != nil {
		t.Fatalf("From2D failed: %v", err)
	}
	comps := gg.ConnectedComponents()
	if len(comps) != 1 || len(comps[0]) != 3 {
		t.Errorf("components = %v; want a single region of 3", comps)
	}
}

// TestSameComponent covers walls, separated regions and a shared region.
func TestSameComponent(t *testing.T) {
	gg, err := From2D([][]int{{1, 1, 0, 1}}, Conn4)
	if err != nil {
		t.Fatalf("From2D failed: %v", err)
	}
	cases := []struct {
		a, b int64
		want bool
	}{
		{0, 1, true},
		{1, 0, true},
		{0, 3, false},
		{0, 2, false}, // wall
		{2, 2, false},
		{3, 3, true},
	}
	for _, tc := range cases {
		if got := gg.SameComponent(tc.a, tc.b); got != tc.want {
			t.Errorf("SameComponent(%d,%d) = %v; want %v", tc.a, tc.b, got, tc.want)
		}
	}
}
