// Package astar implements the paced best-first frontier search.
//
// Notes on implementation choices:
//
//   - All search state except the frontier lives on the graph's nodes, so a
//     renderer can draw Via links and costs while the search runs.
//   - The frontier is a plain slice re-sorted with a stable sort after each
//     expansion instead of a heap: ties keep insertion order, which makes
//     the animation (and the resulting trail) reproducible.
//   - Pacer.Checkpoint runs before every frontier step and every neighbor;
//     Pacer.Delay runs after every examined neighbor.
package astar

import (
	"fmt"
	"math"

	"github.com/katalvlaran/waypath/core"
)

// FindPath runs A* from start to goal over g.
//
// The caller must reset the graph's path fields (core.Graph.ResetPaths)
// before a new search; FindPath only initializes the start node's tentative
// cost. On return the frontier is cleared and the Via trail from goal back to
// start is left on the nodes when Result.Found is true.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. start and goal must exist (ErrNodeNotFound, also matching core.ErrNodeNotFound).
//
// Complexity:
//
//   - Time:  O(V · (d + V log V)), excluding pacing delays.
//   - Space: O(V).
func FindPath(g *core.Graph, start, goal int64, opts ...Option) (Result, error) {
	// 1) Validate inputs.
	if g == nil {
		return Result{}, ErrNilGraph
	}
	startNode, err := g.Node(start)
	if err != nil {
		return Result{}, fmt.Errorf("%w: start: %w", ErrNodeNotFound, err)
	}
	goalNode, err := g.Node(goal)
	if err != nil {
		return Result{}, fmt.Errorf("%w: goal: %w", ErrNodeNotFound, err)
	}

	// 2) Apply options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 3) Run.
	r := &runner{
		g:        g,
		opts:     cfg,
		goal:     goalNode,
		frontier: NewFrontier(),
	}
	r.init(startNode)
	r.process()
	r.frontier.Clear()

	// 4) Report.
	r.res.Cost = math.Inf(1)
	if r.res.Found {
		r.res.Cost = goalNode.GetCost(core.CostTentative)
	}

	return r.res, nil
}

// Reached reports whether the last search from start found goal, judged from
// node state alone: start == goal, or the goal carries a back-pointer.
func Reached(g *core.Graph, start, goal int64) bool {
	if start == goal {
		return true
	}
	n, err := g.Node(goal)
	if err != nil {
		return false
	}

	return n.HasVia()
}

// runner holds the mutable state of a single FindPath execution.
type runner struct {
	g        *core.Graph
	opts     Options
	goal     *core.Node
	frontier *Frontier
	res      Result
}

// init seeds the frontier with the start node at tentative cost zero.
func (r *runner) init(start *core.Node) {
	start.SetCost(core.CostTentative, 0)
	r.frontier.PushFront(start.UID())
}

// stopped reports teardown or context cancellation.
func (r *runner) stopped() bool {
	return r.opts.Pacer.Stopped() || r.opts.Ctx.Err() != nil
}

// process is the frontier loop. It exits when the goal reaches the front,
// when the frontier empties, or on teardown.
func (r *runner) process() {
	goalUID := r.goal.UID()
	for r.frontier.Len() > 0 {
		// 1) Honor teardown and pause before each step.
		if r.stopped() || !r.opts.Pacer.Checkpoint() {
			r.res.Cancelled = true

			return
		}

		// 2) Take the front as the active node; stop early on the goal.
		activeUID, _ := r.frontier.Front()
		r.opts.OnActivate(activeUID)
		if activeUID == goalUID {
			r.res.Found = true

			return
		}

		// 3) Remove it and examine its neighbors.
		r.frontier.PopFront()
		r.res.Expanded++
		if !r.expand(r.g.NodeAt(activeUID)) {
			r.res.Cancelled = true

			return
		}

		// 4) Re-sort by total cost; ties keep their current order.
		r.frontier.SortStable(func(uid int64) float64 {
			return r.g.NodeAt(uid).GetCost(core.CostTotal)
		})
		r.opts.OnFrontier(r.frontier.Snapshot())
	}
}

// expand relaxes every admissible neighbor of active. It returns false if
// the search was stopped part-way.
func (r *runner) expand(active *core.Node) bool {
	activeUID := active.UID()
	cameFrom := active.Via()
	base := active.GetCost(core.CostTentative)

	for _, nbUID := range r.g.NeighborsOf(activeUID) {
		if r.stopped() || !r.opts.Pacer.Checkpoint() {
			return false
		}

		if nbUID != cameFrom && !r.g.IsEdgeObstacle(activeUID, nbUID) {
			r.relax(activeUID, base, nbUID)
		}
		active.AddVisitedNeighbor(nbUID)

		r.opts.Pacer.Delay()
	}

	return true
}

// relax tries to improve neighbor nbUID through the active node.
func (r *runner) relax(activeUID int64, base float64, nbUID int64) {
	nb := r.g.NodeAt(nbUID)
	candidate := base + r.g.EdgeCost(activeUID, nbUID)

	// Unset tentative reads +Inf, so the first visit always improves.
	if candidate >= nb.GetCost(core.CostTentative) {
		return
	}

	nb.Relax(activeUID, candidate, func() float64 {
		return r.opts.Heuristic(nb, r.goal)
	})
	r.frontier.PushBack(nbUID)
	r.res.Relaxed++
	r.opts.OnRelax(activeUID, nbUID, candidate)
}
