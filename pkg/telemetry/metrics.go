package telemetry

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Commit results used as the result label.
const (
	ResultChanged  = "changed"
	ResultNoChange = "no_change"
	ResultInvalid  = "invalid"
)

// Metrics records frame statistics. A nil *Metrics records nothing.
type Metrics struct {
	registry prometheus.Gatherer
	commits  *prometheus.CounterVec
	cells    prometheus.Histogram
	render   prometheus.Histogram
}

// NewMetrics registers the frame metrics with a fresh registry.
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	return newMetrics(reg, reg)
}

func newMetrics(reg prometheus.Registerer, gather prometheus.Gatherer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		registry: gather,
		commits: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "buckle",
			Name:      "frames_committed_total",
			Help:      "Frames handed to the committer, by diff result.",
		}, []string{"result"}),
		cells: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: "buckle",
			Name:      "cells_changed",
			Help:      "Cells written to the terminal per committed frame.",
			Buckets:   prometheus.ExponentialBuckets(1, 4, 8),
		}),
		render: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: "buckle",
			Name:      "frame_render_seconds",
			Help:      "Time spent laying out and painting a frame.",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 2, 12),
		}),
	}
}

// ObserveCommit records one commit and how many cells it wrote.
func (m *Metrics) ObserveCommit(result string, cells int) {
	if m == nil {
		return
	}
	m.commits.WithLabelValues(result).Inc()
	if result == ResultChanged {
		m.cells.Observe(float64(cells))
	}
}

// ObserveRender records the layout and paint time of one frame.
func (m *Metrics) ObserveRender(d time.Duration) {
	if m == nil {
		return
	}
	m.render.Observe(d.Seconds())
}

// Handler serves the metrics in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
