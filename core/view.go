// SPDX-License-Identifier: MIT
//
// File: view.go
// Role: Read-only copies of node state for renderers and tests.
// Concurrency:
//   - Each NodeView is assembled under the node's own read locks; views of
//     different nodes may come from slightly different search steps.

package core

import "math"

// NodeView is a copy of one node's display-relevant state.
type NodeView struct {
	UID       int64
	Position  Vec3
	Via       int64
	Tentative float64 // +Inf if absent
	Heuristic float64 // +Inf if absent
	Total     float64 // +Inf if absent
	Neighbors []int64
	Visited   []int64
}

// Reached reports whether the node had a back-pointer when the view was taken.
func (v NodeView) Reached() bool { return v.Via != NoVia }

// View returns a copy of n's current state.
func (n *Node) View() NodeView {
	v := NodeView{
		UID:       n.uid,
		Position:  n.pos,
		Neighbors: n.Neighbors(),
		Visited:   n.VisitedNeighbors(),
	}
	n.muPath.RLock()
	v.Via = n.via
	v.Tentative = n.costLocked(CostTentative)
	v.Heuristic = n.costLocked(CostHeuristic)
	v.Total = n.costLocked(CostTotal)
	n.muPath.RUnlock()

	return v
}

// costLocked reads one slot. Caller must hold n.muPath.
func (n *Node) costLocked(kind CostKind) float64 {
	if n.costSet&(1<<kind) == 0 {
		return math.Inf(1)
	}

	return n.costs[kind]
}

// Snapshot returns a NodeView for every node, sorted by UID.
// Complexity: O(V + E).
func (g *Graph) Snapshot() []NodeView {
	nodes := g.Nodes()
	out := make([]NodeView, len(nodes))
	for i, n := range nodes {
		out[i] = n.View()
	}

	return out
}

// Pristine reports whether every node is in its pre-search state:
// no back-pointer, no costs and no visited neighbors.
func (g *Graph) Pristine() bool {
	for _, n := range g.snapshotNodes() {
		n.muPath.RLock()
		dirty := n.via != NoVia || n.costSet != 0
		n.muPath.RUnlock()
		if dirty || n.VisitedCount() != 0 {
			return false
		}
	}

	return true
}
