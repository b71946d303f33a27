package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// AggregationMetrics records which computation strategy the funnel
// engine chose and how long each aggregation took, so snapshot misses
// and fallbacks are visible instead of silent.
type AggregationMetrics struct {
	strategy *prometheus.CounterVec
	duration *prometheus.HistogramVec
	failures *prometheus.CounterVec
}

// NewAggregationMetrics registers the aggregation metrics on the
// provided registerer. A nil registerer yields a no-op recorder.
func NewAggregationMetrics(reg prometheus.Registerer) *AggregationMetrics {
	if reg == nil {
		return &AggregationMetrics{}
	}
	strategy := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "funnel_aggregation_strategy_total",
		Help: "Aggregation strategy chosen per funnel query.",
	}, []string{"strategy"})
	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "aggregation_duration_seconds",
		Help:    "Duration of aggregation queries in seconds.",
		Buckets: prometheus.DefBuckets,
	}, []string{"source"})
	failures := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "aggregation_failure_total",
		Help: "Failed aggregation queries.",
	}, []string{"source"})
	reg.MustRegister(strategy, duration, failures)
	return &AggregationMetrics{
		strategy: strategy,
		duration: duration,
		failures: failures,
	}
}

// IncStrategy counts one aggregation served by the named strategy.
func (m *AggregationMetrics) IncStrategy(strategy string) {
	if m == nil || m.strategy == nil {
		return
	}
	m.strategy.WithLabelValues(normalizeLabel(strategy)).Inc()
}

// ObserveDuration records how long the named aggregation source took.
func (m *AggregationMetrics) ObserveDuration(source string, duration time.Duration) {
	if m == nil || m.duration == nil {
		return
	}
	m.duration.WithLabelValues(normalizeLabel(source)).Observe(duration.Seconds())
}

// IncFailure counts one failed aggregation for the named source.
func (m *AggregationMetrics) IncFailure(source string) {
	if m == nil || m.failures == nil {
		return
	}
	m.failures.WithLabelValues(normalizeLabel(source)).Inc()
}

func normalizeLabel(value string) string {
	if value == "" {
		return "unknown"
	}
	return value
}
