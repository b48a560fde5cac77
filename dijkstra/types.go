// Package dijkstra defines core types and configuration options
// for the exact shortest-path reference solver over core.Graph.
//
// Options:
//
//	– Source:          UID of the starting node (must be present in the graph).
//	– ReturnPath:      if true, return the predecessor map for path reconstruction.
//	– MaxDistance:     optional cap on distances to explore; nodes beyond this are skipped.
//	– WithObstacles:   traverse obstructed edges too (default: obstacles are impassable).
//
// Errors (sentinel):
//
//	– ErrNilGraph       if the provided graph pointer is nil.
//	– ErrNodeNotFound   if the source or target node does not exist in the graph.
//	– ErrBadMaxDistance if MaxDistance < 0.
//	– ErrNoPath         if ShortestPath's target is unreachable.
package dijkstra

import (
	"errors"
	"math"

	"github.com/katalvlaran/waypath/core"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed to Dijkstra.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrNodeNotFound indicates that the source or target does not exist in the graph.
	ErrNodeNotFound = errors.New("dijkstra: node not found in graph")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value,
	// which is not meaningful for a distance threshold.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrNoPath indicates that the target cannot be reached from the source.
	ErrNoPath = errors.New("dijkstra: target unreachable")
)

// Options configures the behavior of the Dijkstra algorithm.
//
// Source        – starting node UID (must be present in the graph).
// ReturnPath    – if true, return the predecessor map; otherwise prev map is nil.
// MaxDistance   – optional cap on distances to explore (nodes beyond are skipped).
//
//	Must be ≥ 0. Default is +Inf (no cap).
//
// WithObstacles – if true, obstructed edges are traversed like open ones.
type Options struct {
	Source        int64   // The UID of the source node
	ReturnPath    bool    // Whether to return the predecessor map
	MaxDistance   float64 // Maximum distance to explore
	WithObstacles bool    // Whether obstructed edges are traversable
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// Source sets the Source field of Options to the given UID.
// Must be called to specify the starting node.
func Source(uid int64) Option {
	return func(o *Options) {
		o.Source = uid
	}
}

// WithReturnPath enables generation of the predecessor map in the result.
// If false (default), the predecessor map is not returned (prev == nil).
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// WithMaxDistance sets a maximum distance threshold.
// Nodes whose shortest distance would exceed this value are not explored.
// Negative values panic with ErrBadMaxDistance.
func WithMaxDistance(limit float64) Option {
	return func(o *Options) {
		if limit < 0 || math.IsNaN(limit) {
			// Panic to signal invalid configuration early.
			panic(ErrBadMaxDistance.Error())
		}
		o.MaxDistance = limit
	}
}

// WithIgnoreObstacles makes obstructed edges traversable, e.g. to measure
// how much shorter the route would be without walls.
func WithIgnoreObstacles() Option {
	return func(o *Options) {
		o.WithObstacles = true
	}
}

// DefaultOptions returns an Options struct initialized with sensible defaults
// for the given source UID.
//
// Defaults:
//   - Source:        <as passed> (validated in Dijkstra).
//   - ReturnPath:    false (predecessor map not returned).
//   - MaxDistance:   +Inf (no distance limit; explore all reachable).
//   - WithObstacles: false (obstacles are impassable).
func DefaultOptions(source int64) Options {
	return Options{
		Source:      source,
		ReturnPath:  false,
		MaxDistance: math.Inf(1),
	}
}

// Unreached is the distance reported for nodes not reachable from Source.
var Unreached = math.Inf(1)

// noPrev marks a node without predecessor in the prev map.
const noPrev = core.NoVia
