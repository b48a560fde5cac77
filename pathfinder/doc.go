// Package pathfinder runs animated, interruptible multi-waypoint searches
// over a core.Graph in a background goroutine.
//
// A Pathfinder owns one session at a time. A session runs astar.FindPath once
// per consecutive pair of stops (start → wp1 → … → wpN → goal), strictly in
// order, and stitches each leg's Via trail into one route. Any failed leg
// fails the whole session; later legs are never attempted.
//
// State machine:
//
//	WaitingForStart ──Start──▶ Finding ⇄ Paused
//	                             │
//	                             ▼
//	                          Finished ──Restart──▶ WaitingForStart
//
//	Any state ──teardown──▶ BeingCollected ──join──▶ previous state
//	                                                  (WaitingForStart on Close)
//
// Commands are requests: calling Pause while idle, Start while running or
// Resume while finding is a silent no-op. Only Start reports errors, and only
// for UIDs unknown to the graph.
//
// Pacing:
//
//	The search yields at two kinds of suspension points. Before every
//	frontier step and every neighbor it checks the pause flag, polling in
//	PauseQuantum steps while paused. After every examined neighbor it sleeps
//	the pacing delay. Delays under one millisecond accumulate and are slept
//	in 1 ms chunks once the accumulator exceeds a millisecond.
//
// Teardown:
//
//	Restart, Reset and Close mark the session BeingCollected, cancel its
//	context and block until the goroutine has returned. No node is written
//	after teardown returns, so Restart and Reset can wipe the path fields
//	safely.
//
// Reveal:
//
//	After a successful session the goroutine advances Revealed by one every
//	RevealInterval until the full route is revealed, so a renderer can draw
//	the route growing.
//
// Observability:
//
//	Lifecycle events go to a *zap.Logger (WithLogger) tagged with the session
//	UUID. Counters and a duration histogram go to an optional Metrics
//	collector (WithMetrics).
package pathfinder
