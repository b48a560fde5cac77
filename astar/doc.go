// Package astar implements a paced, interruptible single-pair A* search over
// a core.Graph, built to be watched rather than to finish quickly.
//
// What
//
//   - FindPath searches from a start node to a goal node and leaves a trail of
//     Via back-pointers on the graph's nodes from goal back to start.
//   - The frontier is an ordered slice of UIDs, each present at most once,
//     stably re-sorted ascending by CostTotal after every expansion.
//   - Termination is early-exit: the search stops as soon as the goal sits at
//     the front of the frontier.
//   - One-step backtracking is skipped: a neighbor equal to the active node's
//     own Via is never relaxed.
//   - The heuristic (straight-line distance to the goal by default) is
//     computed once per node and cached in CostHeuristic.
//
// Pacing and interruption
//
//	A Pacer supplied through WithPacer owns three suspension points:
//	  - Checkpoint before every frontier step and every neighbor (blocks while paused),
//	  - Delay after every examined neighbor (visualization pacing),
//	  - Stopped, polled by every loop so teardown is observed promptly.
//	Without a Pacer the search runs flat out. WithContext adds context
//	cancellation on top of either.
//
// Detecting success
//
//	The goal was reached iff Result.Found, or equivalently Reached(g, start, goal)
//	after the call: the goal has a back-pointer (or start == goal).
//
// Complexity (V = |nodes|, E = |edges|)
//
//   - Time:   O(V · (d + V log V)) – the frontier is re-sorted after each expansion.
//   - Memory: O(V) for the frontier; all other state lives on the nodes.
//
// Non-negative edge costs are required for optimality, as for standard A*.
// Nodes already removed from the frontier are re-added when their tentative
// cost improves.
package astar
