// Package astar_test validates FindPath: reachability, obstacles, optimality,
// tie handling, pacing hooks and cancellation.
package astar_test

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/waypath/astar"
	"github.com/katalvlaran/waypath/core"
)

// ------------------------------------------------------------------------
// 1. Validation
// ------------------------------------------------------------------------

func TestFindPath_Validation(t *testing.T) {
	_, err := astar.FindPath(nil, 0, 1)
	require.ErrorIs(t, err, astar.ErrNilGraph)

	g := newGrid(t, 2, 2)
	_, err = astar.FindPath(g, 9, 1)
	require.ErrorIs(t, err, astar.ErrNodeNotFound)
	require.ErrorIs(t, err, core.ErrNodeNotFound)

	_, err = astar.FindPath(g, 0, 9)
	require.ErrorIs(t, err, astar.ErrNodeNotFound)
	require.True(t, g.Pristine(), "validation failure must not touch nodes")
}

// ------------------------------------------------------------------------
// 2. Reachability and obstacles
// ------------------------------------------------------------------------

func TestFindPath_Line(t *testing.T) {
	g := newGrid(t, 4, 1)
	p := &countingPacer{}

	res, err := astar.FindPath(g, 0, 3, astar.WithPacer(p))
	require.NoError(t, err)
	require.True(t, res.Found)
	require.False(t, res.Cancelled)
	require.Equal(t, 3.0, res.Cost)
	require.Equal(t, 3, res.Expanded)
	require.Equal(t, 3, res.Relaxed)
	require.Equal(t, []int64{0, 1, 2, 3}, trail(t, g, 0, 3))
	require.True(t, astar.Reached(g, 0, 3))

	// One delay per examined neighbor: 0→{1}, 1→{0,2}, 2→{1,3}.
	assert.Equal(t, 5, p.delays)
	assert.Equal(t, []int64{0, 2}, g.NodeAt(1).VisitedNeighbors(),
		"the came-from neighbor is skipped but still marked visited")
	assert.Equal(t, core.NoVia, g.NodeAt(0).Via(), "start never gets a back-pointer")
}

func TestFindPath_StartEqualsGoal(t *testing.T) {
	g := newGrid(t, 2, 2)
	res, err := astar.FindPath(g, 3, 3)
	require.NoError(t, err)
	require.True(t, res.Found)
	require.Equal(t, 0.0, res.Cost)
	require.Zero(t, res.Expanded)
	require.True(t, astar.Reached(g, 3, 3))
}

func TestFindPath_BlockedByObstacles(t *testing.T) {
	// 3×3 grid; wall off the middle column completely.
	g := newGrid(t, 3, 3)
	for _, e := range [][2]int64{{0, 1}, {3, 4}, {6, 7}} {
		require.NoError(t, g.SetEdgeObstacle(e[0], e[1], true))
	}

	res, err := astar.FindPath(g, 0, 2)
	require.NoError(t, err)
	assert.False(t, res.Found)
	assert.False(t, res.Cancelled)
	assert.True(t, math.IsInf(res.Cost, 1))
	assert.False(t, astar.Reached(g, 0, 2))
	assert.False(t, g.NodeAt(2).HasVia())
	assert.Equal(t, 3, res.Expanded, "only the 0, 3, 6 column is reachable")
}

func TestFindPath_DetourAroundObstacle(t *testing.T) {
	// 3×3 grid; block 0—1 and 4—1 so the route must go around.
	g := newGrid(t, 3, 3)
	require.NoError(t, g.SetEdgeObstacle(0, 1, true))
	require.NoError(t, g.SetEdgeObstacle(4, 1, true))

	res, err := astar.FindPath(g, 0, 1)
	require.NoError(t, err)
	require.True(t, res.Found)
	path := trail(t, g, 0, 1)
	require.Equal(t, res.Cost, trailCost(t, g, path))
	require.Equal(t, 5.0, res.Cost)
	require.Equal(t, []int64{0, 3, 4, 5, 2, 1}, path)
}

// ------------------------------------------------------------------------
// 3. Optimality
// ------------------------------------------------------------------------

// TestFindPath_Optimal uses a graph where the greedy first choice is a trap.
//
//	S(0,0) —2— A(2,0) —1— C(3,0) —1— G(4,0)
//	  \          \______________10______/
//	  1.5
//	    B(1,1) ————————3.5———————— G
func TestFindPath_Optimal(t *testing.T) {
	const S, A, B, C, G = 0, 1, 2, 3, 4
	g := core.NewGraph()
	require.NoError(t, g.AddNode(S, core.Vec3{X: 0, Y: 0}))
	require.NoError(t, g.AddNode(A, core.Vec3{X: 2, Y: 0}))
	require.NoError(t, g.AddNode(B, core.Vec3{X: 1, Y: 1}))
	require.NoError(t, g.AddNode(C, core.Vec3{X: 3, Y: 0}))
	require.NoError(t, g.AddNode(G, core.Vec3{X: 4, Y: 0}))
	require.NoError(t, g.Connect(S, A, 2))
	require.NoError(t, g.Connect(A, G, 10))
	require.NoError(t, g.Connect(S, B, 1.5))
	require.NoError(t, g.Connect(B, G, 3.5))
	require.NoError(t, g.Connect(A, C, 1))
	require.NoError(t, g.Connect(C, G, 1))

	res, err := astar.FindPath(g, S, G)
	require.NoError(t, err)
	require.True(t, res.Found)
	require.Equal(t, 4.0, res.Cost)
	require.Equal(t, []int64{S, A, C, G}, trail(t, g, S, G))
	require.Equal(t, 4.0, g.NodeAt(G).GetCost(core.CostTotal))
}

// TestFindPath_EqualCostPaths checks the many-equal-paths case: the cost is
// optimal and the chosen trail is reproducible across runs.
func TestFindPath_EqualCostPaths(t *testing.T) {
	g := newGrid(t, 4, 4)

	res, err := astar.FindPath(g, 0, 15)
	require.NoError(t, err)
	require.True(t, res.Found)
	require.Equal(t, 6.0, res.Cost)
	first := trail(t, g, 0, 15)
	require.Equal(t, 6.0, trailCost(t, g, first))

	g.ResetPaths()
	g.ClearVisited()
	res2, err := astar.FindPath(g, 0, 15)
	require.NoError(t, err)
	require.Equal(t, res, res2)
	require.Equal(t, first, trail(t, g, 0, 15))
}

// TestFindPath_ReopensImprovedNode checks that a node removed from the
// frontier is re-queued when a cheaper route to it appears later.
func TestFindPath_ReopensImprovedNode(t *testing.T) {
	// The inflated estimate on A lets B expand before its cheapest route is
	// known; the later improvement via A must push B back onto the frontier.
	const S, A, B, M, G = 0, 1, 2, 3, 4
	g := core.NewGraph()
	for uid := int64(0); uid <= 4; uid++ {
		require.NoError(t, g.AddNode(uid, core.Vec3{X: float64(uid)}))
	}
	require.NoError(t, g.Connect(S, A, 1))
	require.NoError(t, g.Connect(S, B, 4))
	require.NoError(t, g.Connect(A, B, 1))
	require.NoError(t, g.Connect(B, M, 1))
	require.NoError(t, g.Connect(M, G, 1))

	h := map[int64]float64{S: 0, A: 5, B: 0, M: 0, G: 0}
	var relaxedB int
	res, err := astar.FindPath(g, S, G,
		astar.WithHeuristic(func(n, _ *core.Node) float64 { return h[n.UID()] }),
		astar.WithOnRelax(func(_, to int64, _ float64) {
			if to == B {
				relaxedB++
			}
		}),
	)
	require.NoError(t, err)
	require.True(t, res.Found)
	require.Equal(t, 2, relaxedB, "B is relaxed via S first, then improved via A")
	require.Equal(t, 4.0, res.Cost)
	require.Equal(t, []int64{S, A, B, M, G}, trail(t, g, S, G))
}

// ------------------------------------------------------------------------
// 4. Hooks, heuristic caching, pacing and cancellation
// ------------------------------------------------------------------------

func TestFindPath_HeuristicComputedOncePerNode(t *testing.T) {
	g := newGrid(t, 5, 5)
	calls := map[int64]int{}
	res, err := astar.FindPath(g, 0, 24, astar.WithHeuristic(func(n, goal *core.Node) float64 {
		calls[n.UID()]++
		return astar.Euclidean(n, goal)
	}))
	require.NoError(t, err)
	require.True(t, res.Found)
	for uid, c := range calls {
		assert.Equal(t, 1, c, "heuristic for %d computed %d times", uid, c)
	}
}

func TestFindPath_Hooks(t *testing.T) {
	g := newGrid(t, 3, 1)
	var active []int64
	var frontiers [][]int64
	_, err := astar.FindPath(g, 0, 2,
		astar.WithOnActivate(func(uid int64) { active = append(active, uid) }),
		astar.WithOnFrontier(func(f []int64) { frontiers = append(frontiers, f) }),
	)
	require.NoError(t, err)
	require.Equal(t, []int64{0, 1, 2}, active)
	require.Equal(t, [][]int64{{1}, {2}}, frontiers)
}

func TestFindPath_StoppedByPacer(t *testing.T) {
	g := newGrid(t, 6, 6)
	p := &countingPacer{stopAfter: 2}
	res, err := astar.FindPath(g, 0, 35, astar.WithPacer(p))
	require.NoError(t, err)
	require.True(t, res.Cancelled)
	require.False(t, res.Found)
	require.Equal(t, 2, p.delays, "no neighbor examined after teardown")
}

func TestFindPath_ContextCancelled(t *testing.T) {
	g := newGrid(t, 3, 3)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res, err := astar.FindPath(g, 0, 8, astar.WithContext(ctx))
	require.NoError(t, err)
	require.True(t, res.Cancelled)
	require.Zero(t, res.Expanded)
}
