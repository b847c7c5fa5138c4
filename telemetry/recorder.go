// Package telemetry records metrics for the three TELEMETRY_* subspaces
// (span, index, metric) as a Prometheus registry, and logs span/metric
// writes through zap. It is a consumer of kv.TelemetryClass, not part of
// the key layer itself — the key layer only says where a span or metric
// row lives, this package decides what to do when one is written.
package telemetry

import (
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/stalwartlabs/storekey/kv"
)

// Recorder tracks counts of telemetry writes by subspace and exposes
// them as Prometheus metrics, alongside a debug-level log for each
// write. Registered against a caller-supplied registry so embedding
// applications control where metrics are exposed.
type Recorder struct {
	log *zap.Logger

	spanWrites   prometheus.Counter
	indexWrites  prometheus.Counter
	metricWrites prometheus.Counter
}

// NewRecorder builds a Recorder and registers its metrics with reg. A
// nil logger disables logging.
func NewRecorder(reg prometheus.Registerer, log *zap.Logger) *Recorder {
	if log == nil {
		log = zap.NewNop()
	}
	r := &Recorder{
		log: log,
		spanWrites: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "storekey",
			Subsystem: "telemetry",
			Name:      "span_writes_total",
			Help:      "Number of TelemetrySpanClass rows written.",
		}),
		indexWrites: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "storekey",
			Subsystem: "telemetry",
			Name:      "index_writes_total",
			Help:      "Number of TelemetryIndexClass rows written.",
		}),
		metricWrites: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "storekey",
			Subsystem: "telemetry",
			Name:      "metric_writes_total",
			Help:      "Number of TelemetryMetricClass rows written.",
		}),
	}
	reg.MustRegister(r.spanWrites, r.indexWrites, r.metricWrites)
	return r
}

// Observe records a write of class, incrementing the counter for its
// variant and logging at debug level. It accepts any TelemetryClass,
// switching on the concrete variant the same way value_encode.go does —
// this is a reporting concern, not a routing one, so it stays a small
// local switch rather than reaching into kv's internals.
func (r *Recorder) Observe(class kv.TelemetryClass) {
	switch c := class.(type) {
	case kv.TelemetrySpanClass:
		r.spanWrites.Inc()
		r.log.Debug("telemetry span written", zap.Uint64("span_id", c.SpanID))
	case kv.TelemetryIndexClass:
		r.indexWrites.Inc()
		r.log.Debug("telemetry index written", zap.Uint64("span_id", c.SpanID), zap.Int("value_len", len(c.Value)))
	case kv.TelemetryMetricClass:
		r.metricWrites.Inc()
		r.log.Debug("telemetry metric written",
			zap.Uint64("timestamp", c.Timestamp),
			zap.Uint64("metric_id", c.MetricID),
			zap.Uint64("node_id", c.NodeID),
		)
	}
}
