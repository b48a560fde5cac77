// SPDX-License-Identifier: MIT
//
// File: pathfinder.go
// Role: Pathfinder type, control operations and read accessors.
// Concurrency:
//   - ctl serializes control operations (Start, Pause, Resume, Restart,
//     Reset, Close) so teardown never interleaves with another command.
//   - state, delay, active and revealed are atomics shared with the worker.
//   - mu guards the session record, route, frontier and result fields.

package pathfinder

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/katalvlaran/waypath/core"
)

// Pathfinder controls one background search session over a graph.
type Pathfinder struct {
	g    *core.Graph
	opts Options
	log  *zap.Logger

	ctl sync.Mutex
	wg  sync.WaitGroup

	state    atomic.Int32
	delay    atomic.Int64
	active   atomic.Int64
	revealed atomic.Int64

	mu        sync.RWMutex
	sess      *session
	route     []int64
	frontier  []int64
	pathFound bool
	err       error
}

// session is the record of one Start call.
type session struct {
	id        uuid.UUID
	start     int64
	goal      int64
	waypoints []int64
	began     time.Time
	cancel    context.CancelFunc
	done      chan struct{}
	settled   sync.Once
}

// settle marks the session as no longer Finding/Paused. Safe to call twice.
func (s *session) settle() { s.settled.Do(func() { close(s.done) }) }

// New returns an idle Pathfinder over g.
func New(g *core.Graph, opts ...Option) (*Pathfinder, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	pf := &Pathfinder{g: g, opts: cfg, log: cfg.Logger}
	pf.delay.Store(int64(cfg.PacingDelay))
	pf.active.Store(core.NoVia)

	return pf, nil
}

// Start launches a session from start through waypoints (in order) to goal.
//
// Every UID is checked before anything else; an unknown UID returns an error
// wrapping both ErrNodeNotFound and core.ErrNodeNotFound and changes nothing.
// From Finished, Start restarts first. From WaitingForStart it enters Finding
// and launches the goroutine. In any other state it is a no-op.
func (pf *Pathfinder) Start(start, goal int64, waypoints []int64) error {
	for _, uid := range append([]int64{start, goal}, waypoints...) {
		if _, err := pf.g.Node(uid); err != nil {
			return fmt.Errorf("%w: %w", ErrNodeNotFound, err)
		}
	}

	pf.ctl.Lock()
	defer pf.ctl.Unlock()

	if pf.State() == Finished {
		pf.restartLocked()
	}
	if pf.State() != WaitingForStart {
		return nil
	}

	// The graph keeps no stale fields from a Close'd or failed session.
	pf.g.ResetPaths()
	pf.g.ClearVisited()
	if err := pf.g.SetStart(start); err != nil {
		return fmt.Errorf("%w: %w", ErrNodeNotFound, err)
	}
	if err := pf.g.SetGoal(goal); err != nil {
		return fmt.Errorf("%w: %w", ErrNodeNotFound, err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	s := &session{
		id:        uuid.New(),
		start:     start,
		goal:      goal,
		waypoints: slices.Clone(waypoints),
		began:     time.Now(),
		cancel:    cancel,
		done:      make(chan struct{}),
	}

	pf.mu.Lock()
	pf.sess = s
	pf.route = nil
	pf.frontier = nil
	pf.pathFound = false
	pf.err = nil
	pf.mu.Unlock()
	pf.active.Store(core.NoVia)
	pf.revealed.Store(0)

	pf.state.Store(int32(Finding))
	pf.opts.Metrics.sessionStarted()
	pf.log.Info("session started",
		zap.String("session", s.id.String()),
		zap.Int64("from", start),
		zap.Int64("to", goal),
		zap.Int64s("waypoints", s.waypoints),
	)

	pf.wg.Add(1)
	go pf.run(ctx, s)

	return nil
}

// Pause suspends a Finding session at its next suspension point.
// No-op in any other state.
func (pf *Pathfinder) Pause() {
	pf.ctl.Lock()
	defer pf.ctl.Unlock()
	if pf.state.CompareAndSwap(int32(Finding), int32(Paused)) {
		pf.logState(Paused)
	}
}

// Resume continues a Paused session. No-op in any other state.
func (pf *Pathfinder) Resume() {
	pf.ctl.Lock()
	defer pf.ctl.Unlock()
	if pf.state.CompareAndSwap(int32(Paused), int32(Finding)) {
		pf.logState(Finding)
	}
}

// Restart tears down the session, resets every node's path fields and
// visited neighbors, and returns to WaitingForStart. Legal from Finding,
// Paused or Finished; otherwise a no-op.
func (pf *Pathfinder) Restart() {
	pf.ctl.Lock()
	defer pf.ctl.Unlock()
	switch pf.State() {
	case Finding, Paused, Finished:
		pf.restartLocked()
	}
}

// Reset performs the same cleanup as Restart from any non-idle state.
func (pf *Pathfinder) Reset() {
	pf.ctl.Lock()
	defer pf.ctl.Unlock()
	if pf.State() != WaitingForStart {
		pf.restartLocked()
	}
}

// Close tears down any running session and returns to WaitingForStart.
// Node state and results are left as they were; Start clears them.
func (pf *Pathfinder) Close() {
	pf.ctl.Lock()
	defer pf.ctl.Unlock()
	pf.collect()
	pf.state.Store(int32(WaitingForStart))
	pf.logState(WaitingForStart)
}

// SetPacingDelay sets the per-neighbor delay; it takes effect at the next
// neighbor. Negative values mean zero.
func (pf *Pathfinder) SetPacingDelay(d time.Duration) {
	pf.delay.Store(int64(max(d, 0)))
}

// PacingDelay returns the current per-neighbor delay.
func (pf *Pathfinder) PacingDelay() time.Duration {
	return time.Duration(pf.delay.Load())
}

// Wait blocks until the current session leaves Finding/Paused or ctx is done.
// It returns immediately when no session was started.
func (pf *Pathfinder) Wait(ctx context.Context) error {
	pf.mu.RLock()
	s := pf.sess
	pf.mu.RUnlock()
	if s == nil {
		return nil
	}
	select {
	case <-s.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// restartLocked is Restart's body. Caller holds ctl.
func (pf *Pathfinder) restartLocked() {
	pf.collect()
	pf.state.Store(int32(WaitingForStart))

	pf.g.ResetPaths()
	pf.g.ClearVisited()

	pf.mu.Lock()
	pf.route = nil
	pf.frontier = nil
	pf.pathFound = false
	pf.err = nil
	pf.sess = nil
	pf.mu.Unlock()
	pf.active.Store(core.NoVia)
	pf.revealed.Store(0)

	pf.logState(WaitingForStart)
}

// collect is the teardown-then-join protocol: mark BeingCollected, cancel,
// wait for the goroutine, then restore the state that held before.
// Caller holds ctl.
func (pf *Pathfinder) collect() State {
	var saved State
	for {
		saved = pf.State()
		if pf.state.CompareAndSwap(int32(saved), int32(BeingCollected)) {
			break
		}
	}

	pf.mu.RLock()
	s := pf.sess
	pf.mu.RUnlock()
	if s != nil {
		s.cancel()
	}
	pf.wg.Wait()

	pf.state.Store(int32(saved))

	return saved
}

func (pf *Pathfinder) logState(st State) {
	pf.log.Debug("state changed",
		zap.String("session", pf.SessionID()),
		zap.Stringer("state", st),
	)
}

// ---- accessors -------------------------------------------------------------

// State returns the current session state.
func (pf *Pathfinder) State() State { return State(pf.state.Load()) }

// Graph returns the graph the Pathfinder searches.
func (pf *Pathfinder) Graph() *core.Graph { return pf.g }

// ActiveUID returns the node at the front of the frontier, or core.NoVia.
func (pf *Pathfinder) ActiveUID() int64 { return pf.active.Load() }

// SessionID returns the current session UUID, or "" when idle.
func (pf *Pathfinder) SessionID() string {
	pf.mu.RLock()
	defer pf.mu.RUnlock()
	if pf.sess == nil {
		return ""
	}

	return pf.sess.id.String()
}

// Frontier returns a copy of the last published frontier.
func (pf *Pathfinder) Frontier() []int64 {
	pf.mu.RLock()
	defer pf.mu.RUnlock()

	return slices.Clone(pf.frontier)
}

// Route returns a copy of the stitched route, start excluded. It stays empty
// until every leg succeeded; a failed or running session has no route.
func (pf *Pathfinder) Route() []int64 {
	pf.mu.RLock()
	defer pf.mu.RUnlock()

	return slices.Clone(pf.route)
}

// RouteWithStart returns Route prefixed by the session start, once a path
// was found. It returns nil otherwise.
func (pf *Pathfinder) RouteWithStart() []int64 {
	pf.mu.RLock()
	defer pf.mu.RUnlock()
	if pf.sess == nil || !pf.pathFound {
		return nil
	}

	return append([]int64{pf.sess.start}, pf.route...)
}

// Revealed returns how many route entries the reveal animation has shown.
func (pf *Pathfinder) Revealed() int { return int(pf.revealed.Load()) }

// RevealedRoute returns the revealed prefix of Route.
func (pf *Pathfinder) RevealedRoute() []int64 {
	n := pf.Revealed()
	pf.mu.RLock()
	defer pf.mu.RUnlock()

	return slices.Clone(pf.route[:min(n, len(pf.route))])
}

// PathFound reports whether the finished session reached the goal.
func (pf *Pathfinder) PathFound() bool {
	pf.mu.RLock()
	defer pf.mu.RUnlock()

	return pf.pathFound
}

// Err returns the internal error that failed the session, if any.
func (pf *Pathfinder) Err() error {
	pf.mu.RLock()
	defer pf.mu.RUnlock()

	return pf.err
}

// ActiveTrail returns the Via chain ending at the active node, root first:
// the current best path the search is considering.
func (pf *Pathfinder) ActiveTrail() []int64 {
	return viaChain(pf.g, pf.ActiveUID())
}

// Snapshot returns a View for one render frame.
func (pf *Pathfinder) Snapshot() View {
	v := View{
		State:     pf.State(),
		ActiveUID: pf.ActiveUID(),
		Revealed:  pf.Revealed(),
		Start:     core.NoVia,
		Goal:      core.NoVia,
	}

	pf.mu.RLock()
	if pf.sess != nil {
		v.SessionID = pf.sess.id.String()
		v.Start = pf.sess.start
		v.Goal = pf.sess.goal
		v.Waypoints = slices.Clone(pf.sess.waypoints)
	}
	v.Frontier = slices.Clone(pf.frontier)
	v.Route = slices.Clone(pf.route)
	v.PathFound = pf.pathFound
	v.Err = pf.err
	pf.mu.RUnlock()

	v.Nodes = pf.g.Snapshot()

	return v
}
