// SPDX-License-Identifier: MIT
// Package core_test contains fixtures shared by the core tests.
package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/waypath/core"
)

// Common concurrency sizes used across core tests.
const (
	NReaders = 50
	NWriters = 8
	NRounds  = 200
)

// newLine builds 0—1—…—(n-1) along the X axis with unit costs.
func newLine(t testing.TB, n int) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for i := 0; i < n; i++ {
		require.NoError(t, g.AddNode(int64(i), core.Vec3{X: float64(i)}))
	}
	for i := 1; i < n; i++ {
		require.NoError(t, g.Connect(int64(i-1), int64(i), 1))
	}

	return g
}
