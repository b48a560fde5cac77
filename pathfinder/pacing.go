// SPDX-License-Identifier: MIT
//
// File: pacing.go
// Role: Pacer handed to astar: pause checkpoints and sub-millisecond delay accumulation.

package pathfinder

import (
	"context"
	"time"
)

// minorDelayQuantum is the smallest delay actually slept; shorter pacing
// delays accumulate until they cross it.
const minorDelayQuantum = time.Millisecond

// pacer implements astar.Pacer for one session goroutine.
// It is not safe for concurrent use; only the searching goroutine calls it.
type pacer struct {
	ctx     context.Context
	state   func() State
	delay   func() time.Duration
	quantum time.Duration
	sleep   func(ctx context.Context, d time.Duration) bool

	// acc carries sub-millisecond delays across calls.
	acc time.Duration
}

func newPacer(ctx context.Context, state func() State, delay func() time.Duration, quantum time.Duration) *pacer {
	return &pacer{
		ctx:     ctx,
		state:   state,
		delay:   delay,
		quantum: quantum,
		sleep:   sleepCtx,
	}
}

// Checkpoint blocks while the session is Paused, polling every quantum.
// It returns false once teardown or cancellation is observed.
func (p *pacer) Checkpoint() bool {
	for {
		switch p.state() {
		case BeingCollected:
			return false
		case Paused:
			if !p.sleep(p.ctx, p.quantum) {
				return false
			}
		default:
			return p.ctx.Err() == nil
		}
	}
}

// Delay sleeps the current pacing delay. Delays of at least one millisecond
// are slept directly; shorter ones are accumulated.
func (p *pacer) Delay() {
	d := p.delay()
	switch {
	case d <= 0:
		return
	case d >= minorDelayQuantum:
		p.acc = 0
		p.sleep(p.ctx, d)
	default:
		p.acc += d
		for p.acc > minorDelayQuantum {
			if !p.sleep(p.ctx, minorDelayQuantum) {
				return
			}
			p.acc -= minorDelayQuantum
		}
	}
}

// Stopped reports teardown or cancellation without blocking.
func (p *pacer) Stopped() bool {
	return p.state() == BeingCollected || p.ctx.Err() != nil
}

// sleepCtx sleeps for d or until ctx is done. It returns false on cancellation.
func sleepCtx(ctx context.Context, d time.Duration) bool {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}
