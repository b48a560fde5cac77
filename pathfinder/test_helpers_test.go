package pathfinder_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/waypath/core"
	"github.com/katalvlaran/waypath/gridgraph"
	"github.com/katalvlaran/waypath/pathfinder"
)

// Timing used by tests: fast reveal and pause polling, generous wait bound.
const (
	testQuantum  = time.Millisecond
	testReveal   = time.Millisecond
	testDeadline = 10 * time.Second
)

// board parses rows of '.' (floor) and '#' (wall) into a grid graph.
// Cell (x, y) has UID y*width + x.
func board(t testing.TB, conn gridgraph.Connectivity, rows ...string) (*gridgraph.GridGraph, *core.Graph) {
	t.Helper()
	values := make([][]int, len(rows))
	for y, row := range rows {
		values[y] = make([]int, len(row))
		for x, c := range row {
			if c != '#' {
				values[y][x] = 1
			}
		}
	}
	gg, err := gridgraph.From2D(values, conn)
	require.NoError(t, err)
	g, err := gg.ToCoreGraph()
	require.NoError(t, err)

	return gg, g
}

// open returns an obstacle-free w×h Conn4 board.
func open(t testing.TB, w, h int) (*gridgraph.GridGraph, *core.Graph) {
	t.Helper()
	rows := make([]string, h)
	for y := range rows {
		b := make([]byte, w)
		for x := range b {
			b[x] = '.'
		}
		rows[y] = string(b)
	}

	return board(t, gridgraph.Conn4, rows...)
}

// newPF returns an unpaced Pathfinder closed at test end.
func newPF(t testing.TB, g *core.Graph, opts ...pathfinder.Option) *pathfinder.Pathfinder {
	t.Helper()
	base := []pathfinder.Option{
		pathfinder.WithPacingDelay(0),
		pathfinder.WithPauseQuantum(testQuantum),
		pathfinder.WithRevealInterval(testReveal),
	}
	pf, err := pathfinder.New(g, append(base, opts...)...)
	require.NoError(t, err)
	t.Cleanup(pf.Close)

	return pf
}

// run starts a session and waits for it to finish.
func run(t testing.TB, pf *pathfinder.Pathfinder, start, goal int64, waypoints ...int64) {
	t.Helper()
	require.NoError(t, pf.Start(start, goal, waypoints))
	waitDone(t, pf)
	require.Equal(t, pathfinder.Finished, pf.State())
}

// waitDone waits for the current session to leave Finding/Paused.
func waitDone(t testing.TB, pf *pathfinder.Pathfinder) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), testDeadline)
	defer cancel()
	require.NoError(t, pf.Wait(ctx))
}

// routeCost checks that route (start first) only uses open edges and returns its cost.
func routeCost(t testing.TB, g *core.Graph, route []int64) float64 {
	t.Helper()
	total := 0.0
	for i := 1; i < len(route); i++ {
		a, b := route[i-1], route[i]
		require.True(t, g.IsNeighbor(a, b), "%d→%d not adjacent", a, b)
		require.False(t, g.IsEdgeObstacle(a, b), "%d→%d obstructed", a, b)
		total += g.EdgeCost(a, b)
	}

	return total
}
