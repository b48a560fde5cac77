// SPDX-License-Identifier: MIT
// Package: waypath/builder
//
// board.go — the Board value and the Build entry point.

package builder

import (
	"fmt"
	"strings"
)

// Cell is an (X, Y) board coordinate.
type Cell struct{ X, Y int }

// Board is a generated grid with walkable Start and Goal cells.
// Values[y][x] is the cell value, ready for gridgraph.NewGridGraph.
type Board struct {
	Values      [][]int
	Start, Goal Cell
	wall        int
}

// Width returns the number of columns.
func (b Board) Width() int {
	if len(b.Values) == 0 {
		return 0
	}

	return len(b.Values[0])
}

// Height returns the number of rows.
func (b Board) Height() int { return len(b.Values) }

// Walls counts wall cells.
func (b Board) Walls() int {
	n := 0
	for _, row := range b.Values {
		for _, v := range row {
			if v == b.wall {
				n++
			}
		}
	}

	return n
}

// Rows renders the board as '#' (wall) and '.' (floor) strings.
func (b Board) Rows() []string {
	rows := make([]string, len(b.Values))
	var sb strings.Builder
	for y, row := range b.Values {
		sb.Reset()
		for _, v := range row {
			if v == b.wall {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
		rows[y] = sb.String()
	}

	return rows
}

// Constructor fills a w×h board. It receives the resolved config.
type Constructor func(cfg builderConfig) (Board, error)

// Build runs c with the given options.
func Build(c Constructor, opts ...BuilderOption) (Board, error) {
	return c(newBuilderConfig(opts...))
}

// fill returns a w×h grid where every cell holds v.
func fill(w, h, v int) [][]int {
	values := make([][]int, h)
	for y := range values {
		values[y] = make([]int, w)
		for x := range values[y] {
			values[y][x] = v
		}
	}

	return values
}

// place sets Start/Goal at the chosen corners inset by margin and clears them.
func place(b *Board, cfg builderConfig, margin int) {
	w, h := b.Width(), b.Height()
	lo, hiX, hiY := margin, w-1-margin, h-1-margin
	switch cfg.corners {
	case AntiDiagonal:
		b.Start, b.Goal = Cell{hiX, lo}, Cell{lo, hiY}
	default:
		b.Start, b.Goal = Cell{lo, lo}, Cell{hiX, hiY}
	}
	b.Values[b.Start.Y][b.Start.X] = cfg.floor
	b.Values[b.Goal.Y][b.Goal.X] = cfg.floor
}

func validateSize(method string, w, h, minW, minH int) error {
	if w < minW || h < minH {
		return fmt.Errorf("%s: %dx%d below %dx%d: %w", method, w, h, minW, minH, ErrTooSmall)
	}

	return nil
}
