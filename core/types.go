// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Declares Vec3, CostKind, Node, Graph, GraphOption, sentinel errors and
// the NewGraph constructor.
// Concurrency:
//   - Graph.mu guards nodes, obstacles, start and goal.
//   - Node.muPath guards costs/costSet/via; Node.muVisited guards visited.

package core

import (
	"errors"
	"math"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrBadUID indicates a negative UID; negative values are reserved for NoVia.
	ErrBadUID = errors.New("core: node UID must be non-negative")

	// ErrDuplicateNode indicates AddNode was called with a UID already present.
	ErrDuplicateNode = errors.New("core: duplicate node UID")

	// ErrNodeNotFound indicates an operation referenced a non-existent node.
	ErrNodeNotFound = errors.New("core: node not found")

	// ErrSelfLoop indicates Connect was called with identical endpoints.
	ErrSelfLoop = errors.New("core: self-loop not allowed")

	// ErrNegativeCost indicates a negative or NaN traversal cost.
	ErrNegativeCost = errors.New("core: edge cost must be a non-negative number")

	// ErrBadCostKind indicates a CostKind outside [0, MaxCostKinds).
	ErrBadCostKind = errors.New("core: cost kind out of range")
)

// NoVia is the back-pointer value of a node that has not been reached.
const NoVia int64 = -1

// Vec3 is a position in 2-D or 3-D space. 2-D graphs leave Z at zero.
type Vec3 struct {
	X, Y, Z float64
}

// Sub returns v - o.
func (v Vec3) Sub(o Vec3) Vec3 {
	return Vec3{X: v.X - o.X, Y: v.Y - o.Y, Z: v.Z - o.Z}
}

// Length returns the Euclidean norm of v.
func (v Vec3) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// Distance returns the straight-line distance between a and b.
func Distance(a, b Vec3) float64 {
	return a.Sub(b).Length()
}

// CostKind indexes a slot in a Node's cost table.
type CostKind uint8

const (
	// CostTentative is the best known cost from the leg source to the node.
	CostTentative CostKind = iota

	// CostHeuristic is the cached straight-line estimate to the leg target.
	CostHeuristic

	// CostTotal is CostTentative + CostHeuristic; it orders the frontier.
	CostTotal

	// CostCustom is the first slot free for caller-defined kinds.
	// Use CostCustom, CostCustom+1, … up to MaxCostKinds-1.
	CostCustom
)

// MaxCostKinds is the size of every Node's cost table.
const MaxCostKinds = 8

// Valid reports whether k addresses a slot of the cost table.
func (k CostKind) Valid() bool { return int(k) < MaxCostKinds }

// String returns a short name for the built-in kinds.
func (k CostKind) String() string {
	switch k {
	case CostTentative:
		return "Tentative"
	case CostHeuristic:
		return "Heuristic"
	case CostTotal:
		return "Total"
	default:
		return "Custom"
	}
}

// Node is a spatial graph node with search bookkeeping.
//
// uid, pos and the neighbor map are fixed once the graph is built.
// Search fields (costs, via, visited) change during a search and are
// reset by ResetPath / ClearVisitedNeighbors.
type Node struct {
	uid int64
	pos Vec3

	// neighbors maps neighbor UID → traversal cost; order lists the same UIDs ascending.
	neighbors map[int64]float64
	order     []int64

	muPath  sync.RWMutex
	costs   [MaxCostKinds]float64
	costSet uint8 // bit k set ⇔ costs[k] present
	via     int64

	muVisited sync.RWMutex
	visited   map[int64]struct{}
}

// newNode allocates a Node in its pre-search state.
func newNode(uid int64, pos Vec3) *Node {
	return &Node{
		uid:       uid,
		pos:       pos,
		neighbors: make(map[int64]float64),
		via:       NoVia,
		visited:   make(map[int64]struct{}),
	}
}

// GraphOption configures a Graph before creation.
type GraphOption func(g *Graph)

// WithDirected makes Connect store only the from→to direction.
// By default every connection is mirrored.
func WithDirected() GraphOption {
	return func(g *Graph) { g.directed = true }
}

// edgeKey identifies an obstacle. Undirected graphs normalize a < b.
type edgeKey struct {
	from, to int64
}

// Graph owns every Node of a traversal grid and answers topology queries.
//
// Graph is safe for concurrent use. Topology mutations (AddNode, Connect)
// are not expected once a search is running.
type Graph struct {
	mu sync.RWMutex

	directed bool

	nodes     map[int64]*Node
	obstacles map[edgeKey]struct{}

	// start and goal are display hints for consumers; the search never reads them.
	start int64
	goal  int64
}

// NewGraph creates an empty Graph. By default connections are undirected.
// Complexity: O(1).
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		nodes:     make(map[int64]*Node),
		obstacles: make(map[edgeKey]struct{}),
		start:     NoVia,
		goal:      NoVia,
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}
