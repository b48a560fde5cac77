// Package builder generates grid boards for gridgraph: open fields, scattered
// walls and perfect mazes, in the same functional-options style as the rest
// of the module.
//
// The package offers:
//
//   - Constructors (Constructor implementations):
//     – Open:    every cell walkable.
//     – Scatter: each cell independently a wall with probability p.
//     – Maze:    a perfect maze carved by randomized depth-first search.
//   - Configuration (BuilderOption):
//     – WithSeed / WithRand: deterministic RNG for stochastic constructors.
//     – WithCorners:         Start/Goal placement policy.
//     – WithValues:          wall and floor cell values.
//   - Rendering helpers:
//     – Board.Rows: '#' / '.' strings, the format config scenarios use.
//
// Guarantees:
//
//   - Start and Goal of a built Board are always walkable.
//   - The same seed and options always yield the same Board.
//   - Option constructors panic on meaningless input; constructors return
//     sentinel errors and never panic.
package builder
