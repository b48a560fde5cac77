// Package bfs provides breadth-first search over a core.Graph, returning
// hop-count distances, parent links, and visit order.
//
// What
//
//   - Explore nodes in non-decreasing hop distance from a start node.
//   - Obstructed edges are never crossed unless WithIgnoreObstacles is set.
//   - Returns a Result containing:
//   - Order: visit sequence
//   - Depth: map from UID → distance (edges) from start
//   - Parent: map from UID → its predecessor in the BFS tree
//   - Hooks: OnEnqueue (before a node is queued) and OnVisit (may abort).
//   - Honors MaxDepth limit (d>0) or explicit "no limit" (d==0).
//
// Why
//
//   - Reachability prechecks before a paced search: Reachable answers
//     "can this leg succeed at all" in O(V + E) without touching node state.
//   - Hop-count lower bounds for unit-cost boards.
//
// Determinism
//
//	core.Graph.NeighborsOf returns UIDs in ascending order and BFS enqueues
//	neighbors in that order, so the visit sequence is reproducible.
//
// Complexity (V = nodes, E = edges)
//
//   - Time:   O(V + E)
//   - Memory: O(V)
//
// Usage
//
//	res, err := bfs.BFS(g, start, bfs.WithMaxDepth(3))
//	if err != nil {
//		// ErrGraphNil, ErrStartNotFound, ErrOptionViolation, ctx or hook errors
//	}
//	path, err := res.PathTo(goal)
//
// BFS only reads topology and obstacles; it never writes the search fields
// on nodes, so it is safe to run while a Pathfinder session is active.
package bfs
