// SPDX-License-Identifier: MIT
//
// File: session.go
// Role: Session goroutine: leg orchestration, result publication and route reveal.

package pathfinder

import (
	"context"
	"slices"
	"time"

	"go.uber.org/zap"

	"github.com/katalvlaran/waypath/astar"
	"github.com/katalvlaran/waypath/core"
)

// run is the session goroutine: every leg in order, then the reveal.
func (pf *Pathfinder) run(ctx context.Context, s *session) {
	defer pf.wg.Done()
	defer s.settle()

	log := pf.log.With(zap.String("session", s.id.String()))
	found, route, err := pf.runLegs(ctx, s, log)

	// 1) Enter Finished and publish under one lock, so readers never see a
	// result without Finished. Teardown wins: no result, no Finished state.
	pf.mu.Lock()
	if ctx.Err() != nil || !pf.finish() {
		pf.mu.Unlock()
		pf.opts.Metrics.sessionFinished(ResultCancelled, time.Since(s.began))
		log.Info("session torn down")

		return
	}
	if !found {
		route = nil
	}
	pf.route = route
	pf.pathFound = found
	pf.err = err
	pf.frontier = nil
	pf.revealed.Store(0)
	pf.mu.Unlock()

	result := ResultNotFound
	switch {
	case err != nil:
		result = ResultError
		log.Error("session failed", zap.Error(err))
	case found:
		result = ResultFound
		log.Info("path found", zap.Int("length", len(pf.Route())))
	default:
		log.Info("path not found")
	}
	pf.opts.Metrics.sessionFinished(result, time.Since(s.began))
	s.settle()

	// 2) Animate the route.
	if found {
		pf.reveal(ctx)
	}
}

// runLegs searches start → waypoints… → goal and returns the stitched route.
// It returns found=false as soon as one leg fails, without attempting the
// rest; the route is only meaningful when found is true.
func (pf *Pathfinder) runLegs(ctx context.Context, s *session, log *zap.Logger) (bool, []int64, error) {
	p := newPacer(ctx, pf.State, pf.PacingDelay, pf.opts.PauseQuantum)
	targets := append(slices.Clone(s.waypoints), s.goal)

	var route []int64
	from := s.start
	for leg, to := range targets {
		legLog := log.With(zap.Int("leg", leg), zap.Int64("from", from), zap.Int64("to", to))
		legLog.Debug("leg started")

		// 1) Every leg starts from clean path fields.
		pf.g.ResetPaths()
		pf.g.ClearVisited()

		// 2) Search.
		res, err := astar.FindPath(pf.g, from, to,
			astar.WithContext(ctx),
			astar.WithPacer(p),
			astar.WithHeuristic(pf.opts.Heuristic),
			astar.WithOnActivate(pf.active.Store),
			astar.WithOnFrontier(pf.publishFrontier),
		)
		if err != nil {
			return false, nil, err
		}
		pf.opts.Metrics.legDone(res)
		if res.Cancelled {
			return false, nil, nil
		}

		// 3) A failed leg fails the session; its node state stays for display.
		if !astar.Reached(pf.g, from, to) {
			legLog.Debug("leg unreachable", zap.Int("expanded", res.Expanded))

			return false, nil, nil
		}

		// 4) Keep the trail, then wipe the fields for the next leg.
		trail, err := extractTrail(pf.g, from, to)
		if err != nil {
			return false, nil, err
		}
		route = append(route, trail...)
		pf.publishFrontier(nil)
		legLog.Debug("leg done",
			zap.Float64("cost", res.Cost),
			zap.Int("expanded", res.Expanded),
			zap.Int("relaxed", res.Relaxed),
		)

		pf.g.ResetPaths()
		pf.g.ClearVisited()
		from = to
	}
	pf.active.Store(core.NoVia)

	return true, route, nil
}

// finish moves Finding or Paused to Finished. It returns false if a teardown
// got there first.
func (pf *Pathfinder) finish() bool {
	for {
		st := pf.State()
		if !st.Active() {
			return false
		}
		if pf.state.CompareAndSwap(int32(st), int32(Finished)) {
			return true
		}
	}
}

// reveal advances the reveal counter every RevealInterval up to the route
// length, or until the session is torn down.
func (pf *Pathfinder) reveal(ctx context.Context) {
	total := int64(len(pf.Route()))
	if total == 0 {
		return
	}
	t := time.NewTicker(pf.opts.RevealInterval)
	defer t.Stop()
	for pf.revealed.Load() < total {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			pf.revealed.Add(1)
		}
	}
}

// publishFrontier stores the frontier copy handed over by astar.
func (pf *Pathfinder) publishFrontier(f []int64) {
	pf.mu.Lock()
	pf.frontier = f
	pf.mu.Unlock()
}
