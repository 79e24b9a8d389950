package telemetry

import (
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_ObserveCommit(t *testing.T) {
	m := NewMetrics()

	m.ObserveCommit(ResultChanged, 12)
	m.ObserveCommit(ResultChanged, 3)
	m.ObserveCommit(ResultNoChange, 0)
	m.ObserveCommit(ResultInvalid, 0)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.commits.WithLabelValues(ResultChanged)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.commits.WithLabelValues(ResultNoChange)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.commits.WithLabelValues(ResultInvalid)))
	assert.Equal(t, 1, testutil.CollectAndCount(m.cells))
}

func TestMetrics_NilIsNoop(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.ObserveCommit(ResultChanged, 1)
		m.ObserveRender(time.Millisecond)
	})
}

func TestMetrics_Handler(t *testing.T) {
	m := NewMetrics()
	m.ObserveCommit(ResultChanged, 4)
	m.ObserveRender(2 * time.Millisecond)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))

	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `buckle_frames_committed_total{result="changed"} 1`)
	assert.Contains(t, string(body), "buckle_cells_changed_count 1")
	assert.Contains(t, string(body), "buckle_frame_render_seconds_count 1")
}

func TestMetrics_SeparateRegistries(t *testing.T) {
	a, b := NewMetrics(), NewMetrics()
	a.ObserveCommit(ResultChanged, 1)
	assert.Equal(t, 0.0, testutil.ToFloat64(b.commits.WithLabelValues(ResultChanged)))
}
