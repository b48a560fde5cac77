// SPDX-License-Identifier: MIT
// Package: waypath/builder
//
// impl_maze.go — Maze(w, h): a perfect maze by randomized depth-first search.
//
// Canonical model:
//   - Rooms sit on odd coordinates (1,1), (3,1), …; walls fill the rest.
//   - An explicit stack carves from room (1,1), knocking out the wall cell
//     between the current room and a random unvisited neighbor room.
//   - Every room is reachable from every other by exactly one simple path.
//
// Contract:
//   - w, h odd and ≥ 5 (else ErrTooSmall).
//   - RNG required (else ErrNeedRandSource).
//   - Start and Goal are rooms at the chosen corners, inset by one.
//
// Complexity: O(w·h) time and memory.

package builder

import "fmt"

const methodMaze = "Maze"

// Maze returns a Constructor for a w×h perfect maze.
func Maze(w, h int) Constructor {
	return func(cfg builderConfig) (Board, error) {
		if err := validateSize(methodMaze, w, h, 5, 5); err != nil {
			return Board{}, err
		}
		if w%2 == 0 || h%2 == 0 {
			return Board{}, fmt.Errorf("%s: %dx%d must be odd: %w", methodMaze, w, h, ErrTooSmall)
		}
		if cfg.rng == nil {
			return Board{}, fmt.Errorf("%s: %w", methodMaze, ErrNeedRandSource)
		}

		b := Board{Values: fill(w, h, cfg.wall), wall: cfg.wall}
		carve(b.Values, cfg, w, h)
		place(&b, cfg, 1)

		return b, nil
	}
}

// carve runs the iterative backtracker over rooms.
func carve(values [][]int, cfg builderConfig, w, h int) {
	steps := [4]Cell{{0, -2}, {2, 0}, {0, 2}, {-2, 0}}
	visited := make([]bool, w*h)
	stack := []Cell{{1, 1}}
	visited[w+1] = true
	values[1][1] = cfg.floor

	var open [4]Cell
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		n := 0
		for _, d := range steps {
			nx, ny := cur.X+d.X, cur.Y+d.Y
			if nx > 0 && ny > 0 && nx < w-1 && ny < h-1 && !visited[ny*w+nx] {
				open[n] = Cell{nx, ny}
				n++
			}
		}
		if n == 0 {
			stack = stack[:len(stack)-1]
			continue
		}
		next := open[cfg.rng.IntN(n)]
		values[(cur.Y+next.Y)/2][(cur.X+next.X)/2] = cfg.floor
		values[next.Y][next.X] = cfg.floor
		visited[next.Y*w+next.X] = true
		stack = append(stack, next)
	}
}
