// Package waypath is an animated, interruptible multi-waypoint A* engine.
//
// A Pathfinder runs one search session at a time on a background goroutine,
// leg by leg through ordered waypoints, and exposes every intermediate step
// (active node, frontier, Via links, visited neighbors) so a renderer can draw
// the search while it runs. Sessions can be paused, resumed, restarted and
// torn down at any time; teardown always joins the worker before returning.
//
// Packages:
//
//	core/       — search graph: nodes with per-node locks, edges, obstacles
//	astar/      — paced best-first frontier search over core.Graph
//	pathfinder/ — session state machine, pacing, stitching, reveal, metrics
//	gridgraph/  — 2D boards as search graphs, regions, wall breaching
//	bfs/        — hop-count reachability that never touches search state
//	dijkstra/   — reference shortest paths used to check optimality
//	builder/    — seeded board generators (open, scatter, maze)
//	config/     — YAML + WAYPATH_* configuration and zap logger setup
//
// Commands:
//
//	cmd/waypath       — headless runner printing the route
//	examples/pathviz  — ebiten visualizer
//	examples/breach   — explains a sealed goal with gridgraph.Breach
//
// Quick ASCII example:
//
//	S . . #
//	# # . #
//	G . . .
//
// Start S, goal G: the session reveals S→(1,0)→(2,0)→(2,1)→(2,2)→(1,2)→G.
package waypath
