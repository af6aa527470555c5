package scrollview

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_NilIsNoop(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.poolSize(3)
		m.contentRefreshed()
		m.cellCreated()
		m.motionStarted("timed")
		m.selectionChanged()
	})
}

func TestMetrics_Registered(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics(reg)

	m.motionStarted("snap")
	m.motionStarted("elastic")
	m.motionStarted("snap")

	assert.Equal(t, 2.0, testutil.ToFloat64(m.MotionsStarted.WithLabelValues("snap")))
	n, err := testutil.GatherAndCount(reg, "scrollview_scroller_motions_started_total")
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	assert.Panics(t, func() { NewMetrics(reg) }, "duplicate registration")
}

func TestMetrics_ScrollerMotions(t *testing.T) {
	m := NewMetrics(nil)
	s, _ := newTestScroller(DefaultMotionConfig(), 20)
	s.SetMetrics(m)

	s.SetPosition(-2)
	for i := 0; i < 120; i++ {
		s.Update(frame)
	}

	assert.Equal(t, 1.0, testutil.ToFloat64(m.MotionsStarted.WithLabelValues("elastic")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.SelectionsChanged))
}
