// Package gridgraph turns a 2D grid of cells into a search graph for the
// pathfinder and answers a few grid-level questions about it.
//
// What:
//
//   - GridGraph wraps a rectangular [][]int grid with a tunable LandThreshold.
//   - ToCoreGraph emits a *core.Graph: one node per cell (UID = y*Width+x),
//     center-distance edge costs, and walls as obstructed edges.
//   - ConnectedComponents / SameComponent find walkable regions, a cheap
//     reachability precheck before starting a session.
//   - Breach finds the fewest walls to clear between two cells (0-1 BFS),
//     used to explain an unreachable goal.
//
// Complexity:
//
//   - ToCoreGraph:         O(W×H×d), Memory: O(W×H×d)   (d = number of neighbors, 4 or 8).
//   - ConnectedComponents: O(W×H×d), Memory: O(W×H).
//   - Breach:              O(W×H×d), Memory: O(W×H).
//
// Options:
//
//   - GridOptions.LandThreshold: minimum value considered walkable.
//   - GridOptions.Conn: Conn4 (4-neighbors) or Conn8 (8-neighbors).
//   - GridOptions.CellSize: spacing between cell centers.
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrBadCellSize: CellSize is not a positive finite number.
//   - ErrOutOfBounds: coordinate or UID outside the grid.
//   - ErrNoPath: Breach endpoints are not connected at all.
package gridgraph
