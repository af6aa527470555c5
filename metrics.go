package scrollview

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics exports scroll view activity to Prometheus. A nil *Metrics is valid
// and records nothing, so views without metrics pay only a nil check.
type Metrics struct {
	PoolSize          prometheus.Gauge
	ContentRefreshes  prometheus.Counter
	CellsCreated      prometheus.Counter
	MotionsStarted    *prometheus.CounterVec
	SelectionsChanged prometheus.Counter
}

// NewMetrics creates the metric set and registers it with reg. A nil reg
// leaves the metrics unregistered, which suits tests.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		PoolSize: f.NewGauge(prometheus.GaugeOpts{
			Namespace: "scrollview",
			Subsystem: "pool",
			Name:      "cells",
			Help:      "Number of cells in the pool",
		}),
		ContentRefreshes: f.NewCounter(prometheus.CounterOpts{
			Namespace: "scrollview",
			Subsystem: "pool",
			Name:      "content_refreshes_total",
			Help:      "Total cell content updates",
		}),
		CellsCreated: f.NewCounter(prometheus.CounterOpts{
			Namespace: "scrollview",
			Subsystem: "pool",
			Name:      "cells_created_total",
			Help:      "Total cells created by the factory",
		}),
		// Labels: kind (timed, elastic, snap)
		MotionsStarted: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: "scrollview",
			Subsystem: "scroller",
			Name:      "motions_started_total",
			Help:      "Total automatic scroll motions started",
		}, []string{"kind"}),
		SelectionsChanged: f.NewCounter(prometheus.CounterOpts{
			Namespace: "scrollview",
			Subsystem: "scroller",
			Name:      "selection_changes_total",
			Help:      "Total selection change notifications",
		}),
	}
}

func (m *Metrics) poolSize(n int) {
	if m == nil {
		return
	}
	m.PoolSize.Set(float64(n))
}

func (m *Metrics) contentRefreshed() {
	if m == nil {
		return
	}
	m.ContentRefreshes.Inc()
}

func (m *Metrics) cellCreated() {
	if m == nil {
		return
	}
	m.CellsCreated.Inc()
}

func (m *Metrics) motionStarted(kind string) {
	if m == nil {
		return
	}
	m.MotionsStarted.WithLabelValues(kind).Inc()
}

func (m *Metrics) selectionChanged() {
	if m == nil {
		return
	}
	m.SelectionsChanged.Inc()
}
