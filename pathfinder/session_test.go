package pathfinder

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/waypath/gridgraph"
)

func TestRun_CollectedBeforeCancelPublishesNothing(t *testing.T) {
	gg, err := gridgraph.From2D([][]int{{1, 1, 1}}, gridgraph.Conn4)
	require.NoError(t, err)
	g, err := gg.ToCoreGraph()
	require.NoError(t, err)
	m := NewMetrics("waypath_collected")
	pf, err := New(g, WithMetrics(m), WithPacingDelay(0))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	s := &session{
		id:     uuid.New(),
		start:  0,
		goal:   2,
		began:  time.Now(),
		cancel: cancel,
		done:   make(chan struct{}),
	}
	pf.sess = s

	// Teardown has marked the session but not cancelled its context yet.
	pf.state.Store(int32(BeingCollected))
	pf.wg.Add(1)
	pf.run(ctx, s)

	assert.Equal(t, BeingCollected, pf.State())
	assert.False(t, pf.PathFound())
	assert.Empty(t, pf.Route())
	assert.NoError(t, pf.Err())
	assert.Equal(t, 1.0, testutil.ToFloat64(m.SessionsFinished.WithLabelValues(ResultCancelled)))
	assert.Zero(t, testutil.ToFloat64(m.SessionsFinished.WithLabelValues(ResultNotFound)))
	assert.Zero(t, testutil.ToFloat64(m.SessionsFinished.WithLabelValues(ResultFound)))

	select {
	case <-s.done:
	default:
		t.Fatal("session not settled")
	}
}
