package pathfinder_test

import (
	"context"
	"fmt"
	"time"

	"github.com/katalvlaran/waypath/gridgraph"
	"github.com/katalvlaran/waypath/pathfinder"
)

// ExamplePathfinder runs a two-leg session over a small board and prints the
// stitched route as cell coordinates.
//
//	. . . .
//	. # # .
//	. . . .
func ExamplePathfinder() {
	gg, _ := gridgraph.From2D([][]int{
		{1, 1, 1, 1},
		{1, 0, 0, 1},
		{1, 1, 1, 1},
	}, gridgraph.Conn4)
	g, _ := gg.ToCoreGraph()

	pf, _ := pathfinder.New(g, pathfinder.WithPacingDelay(0))
	defer pf.Close()

	start, _ := gg.UID(0, 0)
	via, _ := gg.UID(3, 0)
	goal, _ := gg.UID(1, 2)
	if err := pf.Start(start, goal, []int64{via}); err != nil {
		fmt.Println("error:", err)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = pf.Wait(ctx)

	fmt.Println(pf.State(), pf.PathFound())
	for _, uid := range pf.RouteWithStart() {
		x, y := gg.Coordinate(uid)
		fmt.Printf("(%d,%d) ", x, y)
	}
	fmt.Println()
	// Output:
	// Finished true
	// (0,0) (1,0) (2,0) (3,0) (3,1) (3,2) (2,2) (1,2)
}
