package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

// PrometheusMetrics implements Recorder with Prometheus counter
// vectors.
type PrometheusMetrics struct {
	leaves     *prometheus.CounterVec
	failures   *prometheus.CounterVec
	assertions *prometheus.CounterVec
}

// NewPrometheusMetrics creates the counters and registers them on
// reg. A nil reg uses prometheus.DefaultRegisterer.
func NewPrometheusMetrics(
	reg prometheus.Registerer,
) (*PrometheusMetrics, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	m := &PrometheusMetrics{
		leaves: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "matchers_leaf_evaluations_total",
			Help: "Leaf matcher evaluations by result.",
		}, []string{"result"}),
		failures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "matchers_captured_failures_total",
			Help: "Failures captured during evaluation by kind.",
		}, []string{"kind"}),
		assertions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "matchers_assertions_total",
			Help: "Top-level assertions by result.",
		}, []string{"result"}),
	}

	for _, c := range []prometheus.Collector{
		m.leaves, m.failures, m.assertions,
	} {
		if err := reg.Register(c); err != nil {
			return nil, fmt.Errorf("register matcher metrics: %w", err)
		}
	}
	return m, nil
}

func (m *PrometheusMetrics) RecordLeaf(passed bool) {
	m.leaves.WithLabelValues(resultLabel(passed)).Inc()
}

func (m *PrometheusMetrics) RecordFailure(kind string) {
	m.failures.WithLabelValues(kind).Inc()
}

func (m *PrometheusMetrics) RecordAssertion(passed bool) {
	m.assertions.WithLabelValues(resultLabel(passed)).Inc()
}

// LeafCount returns the number of leaf evaluations with the
// given result.
func (m *PrometheusMetrics) LeafCount(passed bool) float64 {
	return counterValue(m.leaves.WithLabelValues(resultLabel(passed)))
}

// FailureCount returns the number of captured failures of kind.
func (m *PrometheusMetrics) FailureCount(kind string) float64 {
	return counterValue(m.failures.WithLabelValues(kind))
}

// AssertionCount returns the number of assertions with the given
// result.
func (m *PrometheusMetrics) AssertionCount(passed bool) float64 {
	return counterValue(m.assertions.WithLabelValues(resultLabel(passed)))
}

func counterValue(c prometheus.Counter) float64 {
	var out dto.Metric
	if err := c.Write(&out); err != nil {
		return 0
	}
	return out.GetCounter().GetValue()
}
