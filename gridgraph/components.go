package gridgraph

import "slices"

// ConnectedComponents finds all contiguous regions of walkable cells
// (CellValues[y][x] ≥ LandThreshold), according to gg.Conn connectivity.
// Diagonal steps follow the same corner rule as ToCoreGraph, so two cells
// share a component exactly when a search between them can succeed.
// Returns a slice of components; each component holds node UIDs in
// ascending order, and components are ordered by their smallest UID.
//
// Time:   O(W·H·d), where d = 4 or 8.
// Memory: O(W·H) for visited flags and output.
func (gg *GridGraph) ConnectedComponents() [][]int64 {
	total := gg.Width * gg.Height
	seen := make([]bool, total)
	var comps [][]int64

	for y := 0; y < gg.Height; y++ {
		for x := 0; x < gg.Width; x++ {
			if !gg.Walkable(x, y) {
				continue // wall
			}
			i0 := gg.index(x, y)
			if seen[i0] {
				continue
			}
			// BFS to collect component
			queue := []int{i0}
			seen[i0] = true
			var comp []int64

			for qi := 0; qi < len(queue); qi++ {
				u := queue[qi]
				comp = append(comp, int64(u))
				ux, uy := gg.Coordinate(int64(u))
				for _, d := range gg.neighborOffsets {
					vx, vy := ux+d[0], uy+d[1]
					if !gg.InBounds(vx, vy) || gg.blocked(ux, uy, vx, vy) {
						continue
					}
					vi := gg.index(vx, vy)
					if !seen[vi] {
						seen[vi] = true
						queue = append(queue, vi)
					}
				}
			}
			slices.Sort(comp)
			comps = append(comps, comp)
		}
	}

	return comps
}

// SameComponent reports whether cells a and b (node UIDs) are both walkable
// and connected.
func (gg *GridGraph) SameComponent(a, b int64) bool {
	for _, comp := range gg.ConnectedComponents() {
		_, okA := slices.BinarySearch(comp, a)
		_, okB := slices.BinarySearch(comp, b)
		if okA || okB {
			return okA && okB
		}
	}

	return false
}
