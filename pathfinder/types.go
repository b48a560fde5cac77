// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Declares State, sentinel errors, Options and the View snapshot type.

package pathfinder

import (
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/katalvlaran/waypath/astar"
	"github.com/katalvlaran/waypath/core"
)

// Sentinel errors.
var (
	// ErrNilGraph indicates New was called without a graph.
	ErrNilGraph = errors.New("pathfinder: graph is nil")

	// ErrNodeNotFound indicates Start received a UID absent from the graph.
	ErrNodeNotFound = errors.New("pathfinder: node not found")

	// ErrMalformedTrail indicates a Via walk that did not reach its source
	// within NodeCount steps.
	ErrMalformedTrail = errors.New("pathfinder: malformed via trail")
)

// State is the session state.
type State int32

const (
	// WaitingForStart is the idle state.
	WaitingForStart State = iota
	// Finding means the background search is running.
	Finding
	// Paused means the search is suspended at its next suspension point.
	Paused
	// Finished means every leg completed or one failed; see PathFound.
	Finished
	// BeingCollected means a teardown is waiting for the goroutine to exit.
	BeingCollected
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case WaitingForStart:
		return "WaitingForStart"
	case Finding:
		return "Finding"
	case Paused:
		return "Paused"
	case Finished:
		return "Finished"
	case BeingCollected:
		return "BeingCollected"
	default:
		return "Unknown"
	}
}

// Active reports whether a session goroutine may be running in this state.
func (s State) Active() bool { return s == Finding || s == Paused }

// Defaults.
const (
	DefaultPacingDelay    = 10 * time.Millisecond
	DefaultRevealInterval = 50 * time.Millisecond
	DefaultPauseQuantum   = 10 * time.Millisecond
)

// Options configures a Pathfinder.
type Options struct {
	// Logger receives lifecycle events. Defaults to zap.NewNop().
	Logger *zap.Logger

	// Metrics, if non-nil, records session counters.
	Metrics *Metrics

	// PacingDelay is slept after every examined neighbor.
	PacingDelay time.Duration

	// RevealInterval is the period of the reveal counter after success.
	RevealInterval time.Duration

	// PauseQuantum is the poll interval while paused.
	PauseQuantum time.Duration

	// Heuristic replaces astar.Euclidean.
	Heuristic astar.Heuristic
}

// Option is a functional option for New.
type Option func(*Options)

// DefaultOptions returns the defaults used by New.
func DefaultOptions() Options {
	return Options{
		Logger:         zap.NewNop(),
		PacingDelay:    DefaultPacingDelay,
		RevealInterval: DefaultRevealInterval,
		PauseQuantum:   DefaultPauseQuantum,
		Heuristic:      astar.Euclidean,
	}
}

// WithLogger sets the logger. A nil logger is ignored.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithMetrics records session metrics into m.
func WithMetrics(m *Metrics) Option {
	return func(o *Options) { o.Metrics = m }
}

// WithPacingDelay sets the initial per-neighbor delay. Negative values mean zero.
func WithPacingDelay(d time.Duration) Option {
	return func(o *Options) { o.PacingDelay = max(d, 0) }
}

// WithRevealInterval sets the reveal period. Non-positive values are ignored.
func WithRevealInterval(d time.Duration) Option {
	return func(o *Options) {
		if d > 0 {
			o.RevealInterval = d
		}
	}
}

// WithPauseQuantum sets the pause poll interval. Non-positive values are ignored.
func WithPauseQuantum(d time.Duration) Option {
	return func(o *Options) {
		if d > 0 {
			o.PauseQuantum = d
		}
	}
}

// WithHeuristic replaces the Euclidean heuristic for every leg.
func WithHeuristic(h astar.Heuristic) Option {
	return func(o *Options) {
		if h != nil {
			o.Heuristic = h
		}
	}
}

// View is everything a renderer needs for one frame, read in one call.
// Nodes are read node by node while the search runs, so neighboring nodes
// may come from adjacent search steps.
type View struct {
	SessionID string
	State     State
	Start     int64
	Goal      int64
	Waypoints []int64
	ActiveUID int64
	Frontier  []int64
	Route     []int64
	Revealed  int
	PathFound bool
	Err       error
	Nodes     []core.NodeView
}

// RevealedRoute returns the revealed prefix of Route.
func (v View) RevealedRoute() []int64 {
	return v.Route[:min(v.Revealed, len(v.Route))]
}
