// SPDX-License-Identifier: MIT
//
// File: methods_edges.go
// Role: Connections, traversal costs and edge obstacles.
// Policy:
//   - Undirected graphs mirror every Connect and key obstacles by the
//     unordered pair, so blocking a→b also blocks b→a.
//   - Queries are pure functions of topology; the search never calls a
//     mutating method in this file.

package core

import (
	"fmt"
	"math"
)

// Connect links a to b with the given traversal cost.
// On an undirected graph the link is mirrored. Re-connecting overwrites the cost.
//
// Errors:
//   - ErrSelfLoop if a == b.
//   - ErrNegativeCost if cost < 0 or NaN.
//   - ErrNodeNotFound if either endpoint is missing.
//
// Complexity: O(d) for the sorted neighbor insert.
func (g *Graph) Connect(a, b int64, cost float64) error {
	if a == b {
		return fmt.Errorf("%w: %d", ErrSelfLoop, a)
	}
	if cost < 0 || math.IsNaN(cost) {
		return fmt.Errorf("%w: %d→%d cost=%v", ErrNegativeCost, a, b, cost)
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	na, ok := g.nodes[a]
	if !ok {
		return fmt.Errorf("%w: %d", ErrNodeNotFound, a)
	}
	nb, ok := g.nodes[b]
	if !ok {
		return fmt.Errorf("%w: %d", ErrNodeNotFound, b)
	}
	na.setNeighbor(b, cost)
	if !g.directed {
		nb.setNeighbor(a, cost)
	}

	return nil
}

// ConnectByDistance links a to b using their straight-line distance as cost.
func (g *Graph) ConnectByDistance(a, b int64) error {
	d, err := g.Distance(a, b)
	if err != nil {
		return err
	}

	return g.Connect(a, b, d)
}

// NeighborsOf returns the neighbor UIDs of uid in ascending order,
// or nil if uid is unknown.
func (g *Graph) NeighborsOf(uid int64) []int64 {
	g.mu.RLock()
	n, ok := g.nodes[uid]
	g.mu.RUnlock()
	if !ok {
		return nil
	}

	return n.Neighbors()
}

// EdgeCost returns the traversal cost from a to b, or +Inf if b is not a
// neighbor of a.
func (g *Graph) EdgeCost(a, b int64) float64 {
	g.mu.RLock()
	n, ok := g.nodes[a]
	g.mu.RUnlock()
	if !ok {
		return math.Inf(1)
	}
	if c, ok := n.neighbors[b]; ok {
		return c
	}

	return math.Inf(1)
}

// IsNeighbor reports whether b is a neighbor of a.
func (g *Graph) IsNeighbor(a, b int64) bool {
	return !math.IsInf(g.EdgeCost(a, b), 1)
}

// SetEdgeObstacle marks (blocked=true) or clears (blocked=false) the edge
// between a and b as obstructed. Both nodes must exist; they need not be
// connected yet.
func (g *Graph) SetEdgeObstacle(a, b int64, blocked bool) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if _, ok := g.nodes[a]; !ok {
		return fmt.Errorf("%w: %d", ErrNodeNotFound, a)
	}
	if _, ok := g.nodes[b]; !ok {
		return fmt.Errorf("%w: %d", ErrNodeNotFound, b)
	}
	k := g.key(a, b)
	if blocked {
		g.obstacles[k] = struct{}{}
	} else {
		delete(g.obstacles, k)
	}

	return nil
}

// IsEdgeObstacle reports whether the edge from a to b is obstructed.
func (g *Graph) IsEdgeObstacle(a, b int64) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, blocked := g.obstacles[g.key(a, b)]

	return blocked
}

// ObstacleCount returns the number of obstructed edges.
func (g *Graph) ObstacleCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.obstacles)
}

// Directed reports whether the graph was built WithDirected.
func (g *Graph) Directed() bool { return g.directed }

// key normalizes an obstacle key. Caller must hold g.mu.
func (g *Graph) key(a, b int64) edgeKey {
	if !g.directed && b < a {
		a, b = b, a
	}

	return edgeKey{from: a, to: b}
}
