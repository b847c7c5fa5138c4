package telemetry

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stalwartlabs/storekey/kv"
)

func counterValue(t *testing.T, c prometheus.Counter) float64 {
	t.Helper()
	var m dto.Metric
	require.NoError(t, c.Write(&m))
	return m.GetCounter().GetValue()
}

func TestObserveRoutesToTheRightCounter(t *testing.T) {
	reg := prometheus.NewRegistry()
	r := NewRecorder(reg, nil)

	r.Observe(kv.TelemetrySpanClass{SpanID: 1})
	assert.Equal(t, float64(1), counterValue(t, r.spanWrites))
	assert.Equal(t, float64(0), counterValue(t, r.indexWrites))
	assert.Equal(t, float64(0), counterValue(t, r.metricWrites))

	r.Observe(kv.TelemetryIndexClass{SpanID: 1, Value: []byte("v")})
	assert.Equal(t, float64(1), counterValue(t, r.indexWrites))

	r.Observe(kv.TelemetryMetricClass{Timestamp: 1, MetricID: 2, NodeID: 3})
	assert.Equal(t, float64(1), counterValue(t, r.metricWrites))

	r.Observe(kv.TelemetrySpanClass{SpanID: 2})
	assert.Equal(t, float64(2), counterValue(t, r.spanWrites))
}

func TestNewRecorderRegistersAllThreeCounters(t *testing.T) {
	reg := prometheus.NewRegistry()
	NewRecorder(reg, nil)

	families, err := reg.Gather()
	require.NoError(t, err)
	assert.Len(t, families, 3)
}
