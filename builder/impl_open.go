// SPDX-License-Identifier: MIT
// Package: waypath/builder
//
// impl_open.go — Open(w, h): a board with no walls.

package builder

const methodOpen = "Open"

// Open returns a Constructor for a w×h board with every cell walkable.
// Requires w, h ≥ 1. Complexity: O(w·h).
func Open(w, h int) Constructor {
	return func(cfg builderConfig) (Board, error) {
		if err := validateSize(methodOpen, w, h, 1, 1); err != nil {
			return Board{}, err
		}
		b := Board{Values: fill(w, h, cfg.floor), wall: cfg.wall}
		place(&b, cfg, 0)

		return b, nil
	}
}
