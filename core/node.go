// SPDX-License-Identifier: MIT
//
// File: node.go
// Role: Node accessors for topology (immutable) and search fields (locked).
// Determinism:
//   - Neighbors() and VisitedNeighbors() return UIDs sorted ascending.

package core

import (
	"fmt"
	"math"
	"sort"
)

// UID returns the node's unique identifier.
func (n *Node) UID() int64 { return n.uid }

// Position returns the node's position.
func (n *Node) Position() Vec3 { return n.pos }

// Neighbors returns the neighbor UIDs in ascending order.
// The returned slice is a copy.
// Complexity: O(d).
func (n *Node) Neighbors() []int64 {
	out := make([]int64, len(n.order))
	copy(out, n.order)

	return out
}

// NeighborCount returns the number of outgoing neighbors.
func (n *Node) NeighborCount() int { return len(n.order) }

// NeighborCost returns the traversal cost to neighbor uid.
// ok is false if uid is not a neighbor.
func (n *Node) NeighborCost(uid int64) (cost float64, ok bool) {
	cost, ok = n.neighbors[uid]

	return cost, ok
}

// setNeighbor records or overwrites a neighbor and keeps order sorted.
// Caller must hold the owning Graph's write lock.
func (n *Node) setNeighbor(uid int64, cost float64) {
	if _, exists := n.neighbors[uid]; !exists {
		idx := sort.Search(len(n.order), func(i int) bool { return n.order[i] >= uid })
		n.order = append(n.order, 0)
		copy(n.order[idx+1:], n.order[idx:])
		n.order[idx] = uid
	}
	n.neighbors[uid] = cost
}

// GetCost returns the cost stored under kind, or +Inf when it is absent.
// Use HasCost to tell an absent cost from a stored one.
func (n *Node) GetCost(kind CostKind) float64 {
	if !kind.Valid() {
		return math.Inf(1)
	}
	n.muPath.RLock()
	defer n.muPath.RUnlock()
	if n.costSet&(1<<kind) == 0 {
		return math.Inf(1)
	}

	return n.costs[kind]
}

// HasCost reports whether a cost has been stored under kind.
func (n *Node) HasCost(kind CostKind) bool {
	if !kind.Valid() {
		return false
	}
	n.muPath.RLock()
	defer n.muPath.RUnlock()

	return n.costSet&(1<<kind) != 0
}

// SetCost stores value under kind.
// Panics with ErrBadCostKind if kind is outside the cost table; cost kinds
// are compile-time constants, so this is a programming error.
func (n *Node) SetCost(kind CostKind, value float64) {
	if !kind.Valid() {
		panic(fmt.Sprintf("%v: %d", ErrBadCostKind, kind))
	}
	n.muPath.Lock()
	n.costs[kind] = value
	n.costSet |= 1 << kind
	n.muPath.Unlock()
}

// ClearCost removes the cost stored under kind, if any.
func (n *Node) ClearCost(kind CostKind) {
	if !kind.Valid() {
		return
	}
	n.muPath.Lock()
	n.costs[kind] = 0
	n.costSet &^= 1 << kind
	n.muPath.Unlock()
}

// SetVia records the UID this node was reached from.
func (n *Node) SetVia(uid int64) {
	n.muPath.Lock()
	n.via = uid
	n.muPath.Unlock()
}

// Via returns the back-pointer, or NoVia.
func (n *Node) Via() int64 {
	n.muPath.RLock()
	defer n.muPath.RUnlock()

	return n.via
}

// HasVia reports whether the node has been reached during the current search.
func (n *Node) HasVia() bool { return n.Via() != NoVia }

// Relax records a strictly better route into n in one step: Via,
// CostTentative, CostHeuristic (evaluated only if none is cached) and
// CostTotal. Readers never observe Via updated without the matching costs.
// Returns the new total cost.
func (n *Node) Relax(via int64, tentative float64, heuristic func() float64) (total float64) {
	n.muPath.Lock()
	defer n.muPath.Unlock()

	n.via = via
	n.costs[CostTentative] = tentative
	n.costSet |= 1 << CostTentative
	if n.costSet&(1<<CostHeuristic) == 0 {
		n.costs[CostHeuristic] = heuristic()
		n.costSet |= 1 << CostHeuristic
	}
	total = tentative + n.costs[CostHeuristic]
	n.costs[CostTotal] = total
	n.costSet |= 1 << CostTotal

	return total
}

// ResetPath clears every cost and the back-pointer.
func (n *Node) ResetPath() {
	n.muPath.Lock()
	n.costs = [MaxCostKinds]float64{}
	n.costSet = 0
	n.via = NoVia
	n.muPath.Unlock()
}

// AddVisitedNeighbor marks uid as examined from this node.
func (n *Node) AddVisitedNeighbor(uid int64) {
	n.muVisited.Lock()
	n.visited[uid] = struct{}{}
	n.muVisited.Unlock()
}

// VisitedCount returns the number of examined neighbors.
func (n *Node) VisitedCount() int {
	n.muVisited.RLock()
	defer n.muVisited.RUnlock()

	return len(n.visited)
}

// VisitedNeighbors returns the examined neighbor UIDs in ascending order.
func (n *Node) VisitedNeighbors() []int64 {
	n.muVisited.RLock()
	out := make([]int64, 0, len(n.visited))
	for uid := range n.visited {
		out = append(out, uid)
	}
	n.muVisited.RUnlock()
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}

// FullyExpanded reports whether every neighbor has been examined.
func (n *Node) FullyExpanded() bool {
	return n.VisitedCount() >= len(n.order)
}

// ClearVisitedNeighbors empties the visited-neighbor set.
func (n *Node) ClearVisitedNeighbors() {
	n.muVisited.Lock()
	clear(n.visited)
	n.muVisited.Unlock()
}
