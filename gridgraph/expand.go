package gridgraph

import (
	"container/list"
	"fmt"
)

// Breach finds a path from cell `from` to cell `to` (node UIDs) that crosses
// the fewest walls. Each wall cell entered costs 1; walkable cells cost 0.
// Returns the sequence of UIDs (including both ends) and the number of walls
// crossed. A cost of 0 means the cells are already connected.
//
// Behavior:
//  1. Validate both UIDs.
//  2. 0–1 BFS from `from`:
//     • Moving into a walkable cell → cost 0
//     • Moving into a wall cell     → cost 1
//  3. Stop when `to` is dequeued.
//  4. Reconstruct path via predecessors.
//
// Diagonal corner cutting is ignored here: Breach answers "how many walls
// must go", not "which route will the search take".
//
// Complexity: O(W·H·d). Memory: O(W·H).
func (gg *GridGraph) Breach(from, to int64) (path []int64, cost int, err error) {
	n := int64(gg.Width * gg.Height)
	if from < 0 || from >= n || to < 0 || to >= n {
		return nil, 0, fmt.Errorf("%w: %d→%d", ErrOutOfBounds, from, to)
	}

	const inf = int(^uint(0) >> 1)
	dist := make([]int, n)
	prev := make([]int, n)
	for i := range dist {
		dist[i] = inf
		prev[i] = -1
	}

	// 0–1 BFS: deque processes cost0 at front, cost1 at back
	src, dst := int(from), int(to)
	dist[src] = 0
	dq := list.New()
	dq.PushFront(src)
	target := -1

	for dq.Len() > 0 {
		e := dq.Front()
		dq.Remove(e)
		u := e.Value.(int)
		if u == dst {
			target = u
			break
		}
		ux, uy := gg.Coordinate(int64(u))
		for _, d := range gg.neighborOffsets {
			vx, vy := ux+d[0], uy+d[1]
			if !gg.InBounds(vx, vy) {
				continue
			}
			v := gg.index(vx, vy)
			step := 0
			if !gg.Walkable(vx, vy) {
				step = 1
			}
			nd := dist[u] + step
			if nd < dist[v] {
				dist[v] = nd
				prev[v] = u
				if step == 0 {
					dq.PushFront(v)
				} else {
					dq.PushBack(v)
				}
			}
		}
	}

	if target < 0 {
		return nil, 0, ErrNoPath
	}
	// Reconstruct path
	for at := target; at >= 0; at = prev[at] {
		path = append([]int64{int64(at)}, path...)
	}

	return path, dist[target], nil
}
