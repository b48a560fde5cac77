// Package dijkstra implements Dijkstra's shortest-path algorithm on core.Graph.
//
// It is the exact reference the animated A* search is checked against: same
// graph, same edge costs, same obstacle rule, but no heuristic, no pacing and
// no writes to node state.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Each node is extracted at most once: V extractions from the heap.
//   - Each edge relaxation may push a new entry into the heap: up to E pushes.
//   - Space: O(V + E)
//   - O(V) for distance and predecessor maps.
//   - O(E) worst-case for entries in the heap under “lazy-decrease-key”.
//
// Notes on implementation choices:
//
//   - Obstructed edges are impassable unless WithIgnoreObstacles is given.
//   - We stop exploring once the minimum distance in the heap exceeds MaxDistance.
//   - We use a “lazy” decrease-key strategy: pushing duplicates into the heap and ignoring stale entries.
//   - Neighbors are visited in ascending UID order and ties in the heap break
//     by UID, so the predecessor map is deterministic.
package dijkstra

import (
	"container/heap"
	"fmt"
	"slices"

	"github.com/katalvlaran/waypath/core"
)

// Dijkstra computes shortest distances from the source node (Options.Source)
// to all other nodes of g.
//
// Returns:
//
//   - dist: map from node UID to minimum distance (Unreached = +Inf if unreachable).
//   - prev: optional predecessor map if ReturnPath=true (nil otherwise).
//     prev[v] == u means the shortest path to v goes through u.
//     For unreachable v and for the source, prev[v] == core.NoVia.
//   - err:  error if inputs are invalid.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. g must contain Source (ErrNodeNotFound).
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
func Dijkstra(g *core.Graph, opts ...Option) (map[int64]float64, map[int64]int64, error) {
	// 1) Build Options
	cfg := DefaultOptions(core.NoVia)
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate graph is non-nil
	if g == nil {
		return nil, nil, ErrNilGraph
	}

	// 3) Validate Source exists in the graph
	if !g.HasNode(cfg.Source) {
		return nil, nil, fmt.Errorf("%w: source %d", ErrNodeNotFound, cfg.Source)
	}

	// 4) Prepare data structures for the algorithm.
	V := g.NodeCount()
	r := &runner{
		g:       g,
		options: cfg,
		dist:    make(map[int64]float64, V),
		visited: make(map[int64]bool, V),
		pq:      make(nodePQ, 0, V),
	}
	if cfg.ReturnPath {
		r.prev = make(map[int64]int64, V)
	}

	// 5) Initialize algorithm state and run main loop.
	r.init()
	r.process()

	return r.dist, r.prev, nil
}

// ShortestPath returns the cheapest source→target route (both ends included)
// and its cost. It returns ErrNoPath if target is unreachable.
func ShortestPath(g *core.Graph, source, target int64, opts ...Option) ([]int64, float64, error) {
	if g != nil && !g.HasNode(target) {
		return nil, Unreached, fmt.Errorf("%w: target %d", ErrNodeNotFound, target)
	}
	opts = append(slices.Clone(opts), Source(source), WithReturnPath())
	dist, prev, err := Dijkstra(g, opts...)
	if err != nil {
		return nil, Unreached, err
	}
	if dist[target] == Unreached {
		return nil, Unreached, fmt.Errorf("%w: %d→%d", ErrNoPath, source, target)
	}

	path := []int64{target}
	for at := target; at != source; {
		at = prev[at]
		path = append(path, at)
	}
	slices.Reverse(path)

	return path, dist[target], nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g       *core.Graph       // The input graph; read-only within Dijkstra.
	options Options           // Configuration options (Source, limits, etc.).
	dist    map[int64]float64 // Maps node UID → current best distance from Source.
	prev    map[int64]int64   // Maps node UID → predecessor on the shortest path.
	visited map[int64]bool    // Tracks if a node's distance is finalized.
	pq      nodePQ            // Min-heap of *nodeItem for lazy priority queue.
}

// init sets up initial distances, predecessors and visited flags, and pushes Source=0 into the heap.
func (r *runner) init() {
	for _, v := range r.g.UIDs() {
		r.dist[v] = Unreached
		if r.prev != nil {
			r.prev[v] = noPrev
		}
	}
	r.dist[r.options.Source] = 0

	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{id: r.options.Source, dist: 0})
}

// process is the core loop of Dijkstra's algorithm. It repeatedly extracts the node
// with the minimum distance from the source and relaxes its outgoing edges.
//
// Loop termination conditions:
//
//   - The heap becomes empty (all reachable nodes processed).
//   - The minimum distance in the heap exceeds MaxDistance (no need to explore farther).
func (r *runner) process() {
	for r.pq.Len() > 0 {
		// 1) Pop the smallest-distance item from the heap.
		item := heap.Pop(&r.pq).(*nodeItem)
		u := item.id

		// 2) Skip stale heap entries.
		if r.visited[u] {
			continue
		}

		// 3) Stop at the distance cap without finalizing u.
		if item.dist > r.options.MaxDistance {
			break
		}

		// 4) u's distance is final; relax its edges.
		r.visited[u] = true
		r.relax(u)
	}
}

// relax examines each edge leaving u and attempts to improve distances to its neighbors.
// Obstructed edges are skipped unless WithObstacles is set.
//
// Assumes r.dist[u] is finalized before calling relax(u).
func (r *runner) relax(u int64) {
	for _, v := range r.g.NeighborsOf(u) {
		if !r.options.WithObstacles && r.g.IsEdgeObstacle(u, v) {
			continue
		}

		newDist := r.dist[u] + r.g.EdgeCost(u, v)
		if newDist > r.options.MaxDistance {
			continue
		}
		// Strictly better only, to avoid pushing duplicates on ties.
		if newDist >= r.dist[v] {
			continue
		}

		r.dist[v] = newDist
		if r.prev != nil {
			r.prev[v] = u
		}
		heap.Push(&r.pq, &nodeItem{id: v, dist: newDist})
	}
}

// nodeItem represents a node and its current distance from the source.
type nodeItem struct {
	id   int64   // node UID
	dist float64 // distance from source
}

// nodePQ is a min-heap of *nodeItem, ordered by dist then UID.
// Outdated entries remain and are ignored when popped (checked via visited).
type nodePQ []*nodeItem

// Len returns the number of items in the heap.
func (pq nodePQ) Len() int { return len(pq) }

// Less orders by distance; equal distances break by UID.
func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}

	return pq[i].id < pq[j].id
}

// Swap swaps two elements in the heap.
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap.
func (pq *nodePQ) Push(x any) { *pq = append(*pq, x.(*nodeItem)) }

// Pop removes and returns the smallest element from the heap.
func (pq *nodePQ) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
