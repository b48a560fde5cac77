// SPDX-License-Identifier: MIT
//
// File: route.go
// Role: Trail extraction and Via-chain walking over the core graph.

package pathfinder

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/waypath/core"
)

// extractTrail walks Via from `to` back to `from` and returns the UIDs in
// travel order, excluding `from` and including `to`. A leg with from == to
// yields an empty trail.
//
// The walk is bounded by the node count; a missing back-pointer or a walk
// that never reaches `from` returns ErrMalformedTrail.
func extractTrail(g *core.Graph, from, to int64) ([]int64, error) {
	limit := g.NodeCount()
	var rev []int64
	for cur := to; cur != from; {
		if len(rev) >= limit {
			return nil, fmt.Errorf("%w: %d→%d exceeds %d steps", ErrMalformedTrail, from, to, limit)
		}
		rev = append(rev, cur)
		n, err := g.Node(cur)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrMalformedTrail, err)
		}
		cur = n.Via()
		if cur == core.NoVia {
			return nil, fmt.Errorf("%w: %d has no via before reaching %d", ErrMalformedTrail, rev[len(rev)-1], from)
		}
	}
	slices.Reverse(rev)

	return rev, nil
}

// viaChain walks Via from uid to the root of its trail and returns the UIDs
// root first. It stops early after NodeCount steps, which only happens while
// a search is mid-update.
func viaChain(g *core.Graph, uid int64) []int64 {
	if uid == core.NoVia || !g.HasNode(uid) {
		return nil
	}
	limit := g.NodeCount()
	out := []int64{uid}
	for cur := g.NodeAt(uid).Via(); cur != core.NoVia && len(out) < limit; {
		out = append(out, cur)
		n, err := g.Node(cur)
		if err != nil {
			break
		}
		cur = n.Via()
	}
	slices.Reverse(out)

	return out
}
