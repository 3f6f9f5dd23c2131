// Package metrics records counters about matcher evaluation:
// leaf outcomes, captured failures and top-level assertions.
package metrics

// Recorder defines the interface for recording matcher metrics.
type Recorder interface {
	// RecordLeaf records the outcome of one leaf evaluation.
	RecordLeaf(passed bool)
	// RecordFailure records a failure captured at a leaf or
	// composite boundary, labeled by failure kind.
	RecordFailure(kind string)
	// RecordAssertion records a top-level assertion outcome.
	RecordAssertion(passed bool)
}

// NoopMetrics is a no-op implementation of Recorder, used when
// metrics collection is disabled.
type NoopMetrics struct{}

func (NoopMetrics) RecordLeaf(_ bool)      {}
func (NoopMetrics) RecordFailure(_ string) {}
func (NoopMetrics) RecordAssertion(_ bool) {}

func resultLabel(passed bool) string {
	if passed {
		return "passed"
	}
	return "failed"
}
