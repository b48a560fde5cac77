// Package gridgraph provides utilities to treat a 2D grid of integer cell values
// as a search graph. It supports:
//
//   - Four- or eight-connectivity (Conn4 or Conn8)
//   - Conversion to a *core.Graph with walls as obstructed edges
//   - Identification of connected walkable regions
//   - Minimum wall-breach paths between two cells
//
// Cells with value < LandThreshold are walls; cells with value ≥ LandThreshold are walkable.
package gridgraph

import (
	"fmt"
	"math"

	"github.com/katalvlaran/waypath/core"
)

// NewGridGraph constructs a GridGraph from a non-empty, rectangular 2D slice.
// It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid if grid has no rows or no columns,
// ErrNonRectangular if any row length differs, ErrBadCellSize if
// opts.CellSize ≤ 0.
// Algorithmic complexity: O(W×H) time and memory.
func NewGridGraph(values [][]int, opts GridOptions) (*GridGraph, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	if opts.CellSize <= 0 || math.IsNaN(opts.CellSize) || math.IsInf(opts.CellSize, 0) {
		return nil, fmt.Errorf("%w: %v", ErrBadCellSize, opts.CellSize)
	}
	h, w := len(values), len(values[0])
	for _, row := range values {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	// Deep copy to prevent external mutation
	cells := make([][]int, h)
	for y := 0; y < h; y++ {
		cells[y] = make([]int, w)
		copy(cells[y], values[y])
	}
	// Precompute neighbor offsets based on connectivity, clockwise from north.
	var offsets [][2]int
	if opts.Conn == Conn8 {
		offsets = [][2]int{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
	} else {
		offsets = [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	}
	gg := &GridGraph{
		Width:           w,
		Height:          h,
		CellValues:      cells,
		Conn:            opts.Conn,
		LandThreshold:   opts.LandThreshold,
		CellSize:        opts.CellSize,
		neighborOffsets: offsets,
	}

	return gg, nil
}

// From2D builds a GridGraph with default options and the given connectivity.
func From2D(values [][]int, conn Connectivity) (*GridGraph, error) {
	opts := DefaultGridOptions()
	opts.Conn = conn

	return NewGridGraph(values, opts)
}

// InBounds reports whether (x,y) lies within the grid boundaries.
// Complexity: O(1).
func (gg *GridGraph) InBounds(x, y int) bool {
	return x >= 0 && x < gg.Width && y >= 0 && y < gg.Height
}

// NeighborOffsets returns the precomputed neighbor offsets slice.
// Complexity: O(1).
func (gg *GridGraph) NeighborOffsets() [][2]int {
	return gg.neighborOffsets
}

// Walkable reports whether (x,y) is in bounds and not a wall.
func (gg *GridGraph) Walkable(x, y int) bool {
	return gg.InBounds(x, y) && gg.CellValues[y][x] >= gg.LandThreshold
}

// CellAt returns the cell at (x,y).
func (gg *GridGraph) CellAt(x, y int) (Cell, error) {
	if !gg.InBounds(x, y) {
		return Cell{}, fmt.Errorf("%w: (%d,%d)", ErrOutOfBounds, x, y)
	}

	return Cell{X: x, Y: y, Value: gg.CellValues[y][x]}, nil
}

// UID returns the node UID of cell (x,y): y*Width + x.
func (gg *GridGraph) UID(x, y int) (int64, error) {
	if !gg.InBounds(x, y) {
		return core.NoVia, fmt.Errorf("%w: (%d,%d)", ErrOutOfBounds, x, y)
	}

	return int64(gg.index(x, y)), nil
}

// Coordinate converts a row‑major index (node UID) back to (x,y).
// Complexity: O(1).
func (gg *GridGraph) Coordinate(uid int64) (x, y int) {
	return int(uid) % gg.Width, int(uid) / gg.Width
}

// Position returns the spatial position of cell (x,y) in a core.Graph built
// by ToCoreGraph.
func (gg *GridGraph) Position(x, y int) core.Vec3 {
	return core.Vec3{X: float64(x) * gg.CellSize, Y: float64(y) * gg.CellSize}
}

// ToCoreGraph converts the GridGraph into an undirected *core.Graph.
//
// Every cell, wall or not, becomes a node with UID y*Width+x at Position(x,y),
// so UIDs stay dense and renderers can draw the whole board. Neighboring
// cells per gg.Conn are connected with their center distance as cost
// (CellSize orthogonally, CellSize·√2 diagonally). An edge is marked as an
// obstacle when either end is a wall, and a diagonal edge is also an
// obstacle when either orthogonal cell it cuts past is a wall.
//
// Complexity: O(W×H×d) time, Memory: O(W×H×d).
func (gg *GridGraph) ToCoreGraph() (*core.Graph, error) {
	g := core.NewGraph()
	// Add all nodes
	for y := 0; y < gg.Height; y++ {
		for x := 0; x < gg.Width; x++ {
			if err := g.AddNode(int64(gg.index(x, y)), gg.Position(x, y)); err != nil {
				return nil, err
			}
		}
	}
	// Add edges for each neighbor pair once; Connect mirrors them.
	for y := 0; y < gg.Height; y++ {
		for x := 0; x < gg.Width; x++ {
			u := int64(gg.index(x, y))
			for _, d := range gg.neighborOffsets {
				nx, ny := x+d[0], y+d[1]
				if !gg.InBounds(nx, ny) {
					continue
				}
				v := int64(gg.index(nx, ny))
				if v < u {
					continue
				}
				if err := g.ConnectByDistance(u, v); err != nil {
					return nil, err
				}
				if gg.blocked(x, y, nx, ny) {
					if err := g.SetEdgeObstacle(u, v, true); err != nil {
						return nil, err
					}
				}
			}
		}
	}

	return g, nil
}

// blocked reports whether the step (x,y)→(nx,ny) touches or cuts past a wall.
func (gg *GridGraph) blocked(x, y, nx, ny int) bool {
	if !gg.Walkable(x, y) || !gg.Walkable(nx, ny) {
		return true
	}
	if x != nx && y != ny {
		return !gg.Walkable(nx, y) || !gg.Walkable(x, ny)
	}

	return false
}

// index maps (x,y) to a row‑major index: y*Width + x.
// Complexity: O(1).
func (gg *GridGraph) index(x, y int) int {
	return y*gg.Width + x
}
