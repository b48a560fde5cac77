// Package bfs provides breadth-first search over a core.Graph,
// returning hop-count distances, parent links, and visit order.
//
// BFS explores nodes in increasing hop distance from a start node,
// with optional hooks, depth limiting, and neighbor filtering.
package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/waypath/core"
)

// queueItem pairs a node UID with its BFS depth.
type queueItem struct {
	uid   int64
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	graph *core.Graph
	opts  Options
	ctx   context.Context
	queue []queueItem
	res   *Result
}

// BFS runs breadth-first search on g starting from start,
// applying any number of functional Options.
// Returns ErrGraphNil or ErrStartNotFound for invalid input,
// ErrOptionViolation for bad options, ctx.Err() on cancellation,
// or any user-supplied hook error. The partial Result is returned with
// cancellation and hook errors.
func BFS(g *core.Graph, start int64, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.HasNode(start) {
		return nil, fmt.Errorf("%w: %d", ErrStartNotFound, start)
	}

	n := g.NodeCount()
	w := &walker{
		graph: g,
		opts:  o,
		ctx:   o.Ctx,
		queue: make([]queueItem, 0, n),
		res: &Result{
			Start:  start,
			Order:  make([]int64, 0, n),
			Depth:  make(map[int64]int, n),
			Parent: make(map[int64]int64, n),
		},
	}

	w.enqueue(start, 0, core.NoVia)

	return w.res, w.loop()
}

// Reachable reports whether to can be reached from from without crossing an
// obstructed edge.
func Reachable(g *core.Graph, from, to int64) (bool, error) {
	res, err := BFS(g, from)
	if err != nil {
		return false, err
	}

	return res.Reached(to), nil
}

// enqueue marks uid seen at depth d, records its parent, and queues it.
func (w *walker) enqueue(uid int64, d int, parent int64) {
	w.res.Depth[uid] = d
	if parent != core.NoVia {
		w.res.Parent[uid] = parent
	}
	w.opts.OnEnqueue(uid, d)
	w.queue = append(w.queue, queueItem{uid: uid, depth: d})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		if err := w.ctx.Err(); err != nil {
			return err
		}

		item := w.queue[0]
		w.queue = w.queue[1:]

		w.res.Order = append(w.res.Order, item.uid)
		if err := w.opts.OnVisit(item.uid, item.depth); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %d: %w", item.uid, err)
		}
		w.enqueueNeighbors(item)
	}

	return nil
}

// enqueueNeighbors applies obstacles, filtering and MaxDepth, and enqueues
// each unseen neighbor in ascending UID order.
func (w *walker) enqueueNeighbors(item queueItem) {
	next := item.depth + 1
	if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
		return
	}
	for _, nb := range w.graph.NeighborsOf(item.uid) {
		if w.opts.Obstacles && w.graph.IsEdgeObstacle(item.uid, nb) {
			continue
		}
		if !w.opts.FilterNeighbor(item.uid, nb) {
			continue
		}
		if _, seen := w.res.Depth[nb]; !seen {
			w.enqueue(nb, next, item.uid)
		}
	}
}
