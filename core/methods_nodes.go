// SPDX-License-Identifier: MIT
//
// File: methods_nodes.go
// Role: Node catalog lifecycle, lookups, display hints and search-field resets.
// Determinism:
//   - UIDs() and Nodes() return nodes sorted by UID ascending.
// Concurrency:
//   - Catalog protected by Graph.mu; per-node fields by the node's own locks.

package core

import (
	"fmt"
	"sort"
)

// AddNode inserts a node with the given UID and position.
//
// Errors:
//   - ErrBadUID if uid < 0.
//   - ErrDuplicateNode if uid already exists.
//
// Complexity: O(1) amortized.
func (g *Graph) AddNode(uid int64, pos Vec3) error {
	if uid < 0 {
		return fmt.Errorf("%w: %d", ErrBadUID, uid)
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	if _, exists := g.nodes[uid]; exists {
		return fmt.Errorf("%w: %d", ErrDuplicateNode, uid)
	}
	g.nodes[uid] = newNode(uid, pos)

	return nil
}

// HasNode reports whether uid exists.
func (g *Graph) HasNode(uid int64) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.nodes[uid]

	return ok
}

// Node returns the node with the given UID or ErrNodeNotFound.
func (g *Graph) Node(uid int64) (*Node, error) {
	g.mu.RLock()
	n, ok := g.nodes[uid]
	g.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrNodeNotFound, uid)
	}

	return n, nil
}

// NodeAt returns the node with the given UID.
// It panics if uid is unknown: callers guarantee UIDs come from the graph
// topology or from a validated waypoint list.
func (g *Graph) NodeAt(uid int64) *Node {
	n, err := g.Node(uid)
	if err != nil {
		panic(err.Error())
	}

	return n
}

// NodeCount returns the number of nodes.
func (g *Graph) NodeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.nodes)
}

// UIDs returns every node UID sorted ascending.
// Complexity: O(V log V).
func (g *Graph) UIDs() []int64 {
	g.mu.RLock()
	out := make([]int64, 0, len(g.nodes))
	for uid := range g.nodes {
		out = append(out, uid)
	}
	g.mu.RUnlock()
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}

// Nodes returns every node sorted by UID.
// The slice is fresh; the *Node values are the live records.
func (g *Graph) Nodes() []*Node {
	g.mu.RLock()
	out := make([]*Node, 0, len(g.nodes))
	for _, n := range g.nodes {
		out = append(out, n)
	}
	g.mu.RUnlock()
	sort.Slice(out, func(i, j int) bool { return out[i].uid < out[j].uid })

	return out
}

// Distance returns the straight-line distance between two nodes.
// Returns ErrNodeNotFound if either is missing.
func (g *Graph) Distance(a, b int64) (float64, error) {
	na, err := g.Node(a)
	if err != nil {
		return 0, err
	}
	nb, err := g.Node(b)
	if err != nil {
		return 0, err
	}

	return Distance(na.pos, nb.pos), nil
}

// SetStart records the display start UID. NoVia clears it.
func (g *Graph) SetStart(uid int64) error {
	return g.setHint(&g.start, uid)
}

// SetGoal records the display goal UID. NoVia clears it.
func (g *Graph) SetGoal(uid int64) error {
	return g.setHint(&g.goal, uid)
}

func (g *Graph) setHint(dst *int64, uid int64) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if uid != NoVia {
		if _, ok := g.nodes[uid]; !ok {
			return fmt.Errorf("%w: %d", ErrNodeNotFound, uid)
		}
	}
	*dst = uid

	return nil
}

// StartUID returns the display start UID, or NoVia.
func (g *Graph) StartUID() int64 {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.start
}

// GoalUID returns the display goal UID, or NoVia.
func (g *Graph) GoalUID() int64 {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.goal
}

// ResetPaths calls ResetPath on every node.
// Complexity: O(V).
func (g *Graph) ResetPaths() {
	for _, n := range g.snapshotNodes() {
		n.ResetPath()
	}
}

// ClearVisited calls ClearVisitedNeighbors on every node.
// Complexity: O(V).
func (g *Graph) ClearVisited() {
	for _, n := range g.snapshotNodes() {
		n.ClearVisitedNeighbors()
	}
}

// snapshotNodes copies the catalog so per-node locks are never taken
// while Graph.mu is held.
func (g *Graph) snapshotNodes() []*Node {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]*Node, 0, len(g.nodes))
	for _, n := range g.nodes {
		out = append(out, n)
	}

	return out
}
