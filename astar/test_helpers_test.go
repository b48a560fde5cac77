package astar_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/waypath/core"
)

// newGrid builds a w×h 4-connected grid with unit costs.
// UID = y*w + x, position (x, y).
func newGrid(t testing.TB, w, h int) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			require.NoError(t, g.AddNode(int64(y*w+x), core.Vec3{X: float64(x), Y: float64(y)}))
		}
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			uid := int64(y*w + x)
			if x+1 < w {
				require.NoError(t, g.Connect(uid, uid+1, 1))
			}
			if y+1 < h {
				require.NoError(t, g.Connect(uid, uid+int64(w), 1))
			}
		}
	}

	return g
}

// trail walks Via from goal back to start and returns start…goal.
func trail(t testing.TB, g *core.Graph, start, goal int64) []int64 {
	t.Helper()
	out := []int64{goal}
	for cur := goal; cur != start; {
		cur = g.NodeAt(cur).Via()
		require.NotEqual(t, core.NoVia, cur, "broken trail")
		out = append([]int64{cur}, out...)
		require.LessOrEqual(t, len(out), g.NodeCount(), "trail loops")
	}

	return out
}

// trailCost sums edge costs along path and checks every hop is an open edge.
func trailCost(t testing.TB, g *core.Graph, path []int64) float64 {
	t.Helper()
	total := 0.0
	for i := 1; i < len(path); i++ {
		require.True(t, g.IsNeighbor(path[i-1], path[i]), "%d→%d not adjacent", path[i-1], path[i])
		require.False(t, g.IsEdgeObstacle(path[i-1], path[i]), "%d→%d obstructed", path[i-1], path[i])
		total += g.EdgeCost(path[i-1], path[i])
	}

	return total
}

// countingPacer records suspension-point calls and can stop after n delays.
type countingPacer struct {
	checkpoints int
	delays      int
	stopAfter   int
}

func (p *countingPacer) Checkpoint() bool { p.checkpoints++; return true }
func (p *countingPacer) Delay()           { p.delays++ }
func (p *countingPacer) Stopped() bool    { return p.stopAfter > 0 && p.delays >= p.stopAfter }
