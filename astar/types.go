// Package astar defines options, hooks, results and sentinel errors for FindPath.
package astar

import (
	"context"
	"errors"

	"github.com/katalvlaran/waypath/core"
)

// Sentinel errors returned by FindPath.
var (
	// ErrNilGraph indicates a nil *core.Graph.
	ErrNilGraph = errors.New("astar: graph is nil")

	// ErrNodeNotFound indicates the start or goal UID is not in the graph.
	ErrNodeNotFound = errors.New("astar: node not found")
)

// Pacer controls the suspension points of a running search.
// Implementations are called from the searching goroutine only.
type Pacer interface {
	// Checkpoint blocks while the owner is paused.
	// It returns false once the search must stop.
	Checkpoint() bool

	// Delay applies the pacing delay after one examined neighbor.
	Delay()

	// Stopped reports, without blocking, whether the search must stop.
	Stopped() bool
}

// Heuristic estimates the remaining cost from node to goal.
// It must not overestimate for FindPath to return optimal trails.
type Heuristic func(node, goal *core.Node) float64

// Euclidean is the default Heuristic: straight-line distance between positions.
func Euclidean(node, goal *core.Node) float64 {
	return core.Distance(node.Position(), goal.Position())
}

// Options configures FindPath.
type Options struct {
	// Ctx cancels the search when done.
	Ctx context.Context

	// Pacer owns pause, pacing delay and teardown.
	Pacer Pacer

	// Heuristic replaces Euclidean.
	Heuristic Heuristic

	// OnActivate runs each time a node becomes the active (front) node.
	OnActivate func(uid int64)

	// OnRelax runs after neighbor to received a better tentative cost via from.
	OnRelax func(from, to int64, tentative float64)

	// OnFrontier receives a copy of the frontier after each re-sort.
	OnFrontier func(frontier []int64)
}

// Option is a functional option for FindPath.
type Option func(*Options)

// DefaultOptions returns Options with no pacing, Euclidean heuristic and no-op hooks.
func DefaultOptions() Options {
	return Options{
		Ctx:        context.Background(),
		Pacer:      nopPacer{},
		Heuristic:  Euclidean,
		OnActivate: func(int64) {},
		OnRelax:    func(int64, int64, float64) {},
		OnFrontier: func([]int64) {},
	}
}

// WithContext sets a context; cancellation stops the search like a teardown.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithPacer installs the pause/delay/teardown controller.
func WithPacer(p Pacer) Option {
	return func(o *Options) {
		if p != nil {
			o.Pacer = p
		}
	}
}

// WithHeuristic replaces the default Euclidean heuristic.
func WithHeuristic(h Heuristic) Option {
	return func(o *Options) {
		if h != nil {
			o.Heuristic = h
		}
	}
}

// WithOnActivate registers a hook for the active node.
func WithOnActivate(fn func(uid int64)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnActivate = fn
		}
	}
}

// WithOnRelax registers a hook for successful relaxations.
func WithOnRelax(fn func(from, to int64, tentative float64)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnRelax = fn
		}
	}
}

// WithOnFrontier registers a hook receiving frontier snapshots.
func WithOnFrontier(fn func(frontier []int64)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnFrontier = fn
		}
	}
}

// Result summarizes one FindPath call.
type Result struct {
	// Found is true if the goal reached the front of the frontier.
	Found bool

	// Cancelled is true if the search stopped on teardown or context cancellation.
	Cancelled bool

	// Expanded counts nodes removed from the frontier and expanded.
	Expanded int

	// Relaxed counts successful tentative-cost improvements.
	Relaxed int

	// Cost is the goal's tentative cost when Found, +Inf otherwise.
	Cost float64
}

// nopPacer never pauses, never delays and never stops.
type nopPacer struct{}

func (nopPacer) Checkpoint() bool { return true }
func (nopPacer) Delay()           {}
func (nopPacer) Stopped() bool    { return false }
