// SPDX-License-Identifier: MIT
//
// File: metrics.go
// Role: Prometheus collectors for sessions and legs on a private registry.

package pathfinder

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/katalvlaran/waypath/astar"
)

// Session results used as the "result" label of SessionsFinished.
const (
	ResultFound     = "found"
	ResultNotFound  = "not_found"
	ResultError     = "error"
	ResultCancelled = "cancelled"
)

// Metrics holds the Prometheus collectors for a Pathfinder.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	registry *prometheus.Registry

	SessionsStarted  prometheus.Counter
	SessionsFinished *prometheus.CounterVec
	LegsRun          prometheus.Counter
	NodesExpanded    prometheus.Counter
	EdgesRelaxed     prometheus.Counter
	SessionDuration  prometheus.Histogram
}

// NewMetrics creates the collectors under namespace and registers them on a
// private registry.
func NewMetrics(namespace string) *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		SessionsStarted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sessions_started_total",
			Help:      "Total number of search sessions started",
		}),
		SessionsFinished: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sessions_finished_total",
			Help:      "Total number of search sessions finished, by result",
		}, []string{"result"}),
		LegsRun: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "legs_total",
			Help:      "Total number of point-to-point legs searched",
		}),
		NodesExpanded: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "nodes_expanded_total",
			Help:      "Total number of nodes removed from the frontier and expanded",
		}),
		EdgesRelaxed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "edges_relaxed_total",
			Help:      "Total number of successful tentative cost improvements",
		}),
		SessionDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "session_duration_seconds",
			Help:      "Wall time from Start until the session finished or was torn down",
			Buckets:   prometheus.ExponentialBuckets(0.001, 4, 10),
		}),
	}
	m.registry.MustRegister(
		m.SessionsStarted,
		m.SessionsFinished,
		m.LegsRun,
		m.NodesExpanded,
		m.EdgesRelaxed,
		m.SessionDuration,
	)

	return m
}

// Registry returns the private registry, e.g. for promhttp.HandlerFor.
func (m *Metrics) Registry() *prometheus.Registry { return m.registry }

func (m *Metrics) sessionStarted() {
	if m == nil {
		return
	}
	m.SessionsStarted.Inc()
}

func (m *Metrics) legDone(res astar.Result) {
	if m == nil {
		return
	}
	m.LegsRun.Inc()
	m.NodesExpanded.Add(float64(res.Expanded))
	m.EdgesRelaxed.Add(float64(res.Relaxed))
}

func (m *Metrics) sessionFinished(result string, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.SessionsFinished.WithLabelValues(result).Inc()
	m.SessionDuration.Observe(elapsed.Seconds())
}
