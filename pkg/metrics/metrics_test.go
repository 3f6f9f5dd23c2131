package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNoopMetrics_ImplementsInterface(t *testing.T) {
	var r Recorder = NoopMetrics{}
	assert.NotPanics(t, func() {
		r.RecordLeaf(true)
		r.RecordFailure("panic")
		r.RecordAssertion(false)
	})
}

func TestPrometheusMetrics_ImplementsInterface(t *testing.T) {
	var _ Recorder = &PrometheusMetrics{}
}

func TestPrometheusMetrics_Counts(t *testing.T) {
	reg := prometheus.NewRegistry()
	m, err := NewPrometheusMetrics(reg)
	require.NoError(t, err)

	m.RecordLeaf(true)
	m.RecordLeaf(true)
	m.RecordLeaf(false)
	m.RecordFailure("panic")
	m.RecordAssertion(false)

	assert.Equal(t, 2.0, m.LeafCount(true))
	assert.Equal(t, 1.0, m.LeafCount(false))
	assert.Equal(t, 1.0, m.FailureCount("panic"))
	assert.Equal(t, 0.0, m.FailureCount("errors.errorString"))
	assert.Equal(t, 1.0, m.AssertionCount(false))
	assert.Equal(t, 0.0, m.AssertionCount(true))

	assert.Equal(t, 1.0, testutil.ToFloat64(
		m.failures.WithLabelValues("panic"),
	))
	assert.Equal(t, 2, testutil.CollectAndCount(m.leaves))
}

func TestPrometheusMetrics_DoubleRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	_, err := NewPrometheusMetrics(reg)
	require.NoError(t, err)

	_, err = NewPrometheusMetrics(reg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "register matcher metrics")
}
