// Package astar_test provides runnable examples for FindPath.
package astar_test

import (
	"fmt"

	"github.com/katalvlaran/waypath/astar"
	"github.com/katalvlaran/waypath/core"
)

// ExampleFindPath searches a three-node corridor and prints the Via trail.
func ExampleFindPath() {
	// 1) Build 0 —1— 1 —1— 2 along the X axis.
	g := core.NewGraph()
	for uid := int64(0); uid < 3; uid++ {
		_ = g.AddNode(uid, core.Vec3{X: float64(uid)})
	}
	_ = g.Connect(0, 1, 1)
	_ = g.Connect(1, 2, 1)

	// 2) Search; without a Pacer the search runs without pauses or delays.
	res, err := astar.FindPath(g, 0, 2)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	// 3) Walk the back-pointers from the goal.
	fmt.Println(res.Found, res.Cost, g.NodeAt(2).Via(), g.NodeAt(1).Via())
	// Output: true 2 1 0
}
