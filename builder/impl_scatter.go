// SPDX-License-Identifier: MIT
// Package: waypath/builder
//
// impl_scatter.go — Scatter(w, h, p): independent random walls.
//
// Determinism:
//   - One Bernoulli trial per cell in row-major order, then Start and Goal
//     are cleared; a fixed seed always yields the same board.
//   - No connectivity guarantee: Start and Goal may be sealed off.

package builder

import (
	"fmt"
	"math"
)

const methodScatter = "Scatter"

// Scatter returns a Constructor for a w×h board where each cell is a wall
// with probability p. Requires w, h ≥ 1, p ∈ [0,1] and an RNG for 0 < p < 1.
// Complexity: O(w·h).
func Scatter(w, h int, p float64) Constructor {
	return func(cfg builderConfig) (Board, error) {
		if err := validateSize(methodScatter, w, h, 1, 1); err != nil {
			return Board{}, err
		}
		if p < 0 || p > 1 || math.IsNaN(p) {
			return Board{}, fmt.Errorf("%s: p=%.6f: %w", methodScatter, p, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > 0 && p < 1 {
			return Board{}, fmt.Errorf("%s: %w", methodScatter, ErrNeedRandSource)
		}

		b := Board{Values: fill(w, h, cfg.floor), wall: cfg.wall}
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				switch {
				case p == 1:
					b.Values[y][x] = cfg.wall
				case p > 0 && cfg.rng.Float64() < p:
					b.Values[y][x] = cfg.wall
				}
			}
		}
		place(&b, cfg, 0)

		return b, nil
	}
}
