package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for ID number evaluation.
type Metrics struct {
	// Evaluations by country, format, operation and resulting state
	Evaluations *prometheus.CounterVec

	// Lookups that named an unknown country or format
	LookupFailures *prometheus.CounterVec

	// Evaluation latency by operation
	EvaluateLatency *prometheus.HistogramVec

	// Items per batch request
	BatchSize prometheus.Histogram
}

// New registers the metrics with reg. Pass prometheus.DefaultRegisterer in
// production and a fresh registry in tests.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		Evaluations: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "idnumbers_evaluations_total",
			Help: "Total ID number evaluations by country, format, operation and state",
		}, []string{"country", "format", "operation", "state"}),

		LookupFailures: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "idnumbers_lookup_failures_total",
			Help: "Total requests naming an unknown country or format",
		}, []string{"operation"}),

		EvaluateLatency: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "idnumbers_evaluate_duration_seconds",
			Help:    "Duration of ID number operations",
			Buckets: []float64{0.00001, 0.00005, 0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1},
		}, []string{"operation"}),

		BatchSize: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "idnumbers_batch_size",
			Help:    "Number of items per batch validation request",
			Buckets: prometheus.ExponentialBuckets(1, 2, 12),
		}),
	}
}

// IncrementEvaluation records one evaluated number.
func (m *Metrics) IncrementEvaluation(country, format, operation, state string) {
	if m != nil {
		m.Evaluations.WithLabelValues(country, format, operation, state).Inc()
	}
}

// IncrementLookupFailure records a request for an unknown format.
func (m *Metrics) IncrementLookupFailure(operation string) {
	if m != nil {
		m.LookupFailures.WithLabelValues(operation).Inc()
	}
}

// ObserveEvaluate records the duration of an operation.
// Call with time.Now() at the start of the operation.
func (m *Metrics) ObserveEvaluate(operation string, start time.Time) {
	if m != nil {
		m.EvaluateLatency.WithLabelValues(operation).Observe(time.Since(start).Seconds())
	}
}

// ObserveBatchSize records how many items a batch carried.
func (m *Metrics) ObserveBatchSize(n int) {
	if m != nil {
		m.BatchSize.Observe(float64(n))
	}
}
