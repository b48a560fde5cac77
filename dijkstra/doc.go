// Package dijkstra provides an exact implementation of Dijkstra's shortest-path
// algorithm over core.Graph, used as the optimality reference for the
// animated A* search.
//
// Overview:
//
//   - Dijkstra computes the minimum-cost distance from a single source node to
//     all reachable nodes in O((V + E) log V) time.
//   - ShortestPath wraps it for one source/target pair and rebuilds the route.
//   - Obstructed edges are impassable, exactly as for the search engine;
//     WithIgnoreObstacles lifts that to measure what walls cost.
//
// Differences from the search engine:
//
//   - It never writes node state (Via, costs, visited sets), so it can run
//     on a graph while a session owns those fields.
//   - Its route may differ from the engine's on equal-cost ties; only the
//     cost is comparable.
//
// Example usage:
//
//	path, cost, err := dijkstra.ShortestPath(g, start, goal)
//	if errors.Is(err, dijkstra.ErrNoPath) {
//	    // unreachable
//	}
package dijkstra
