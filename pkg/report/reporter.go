// Package report records assertion outcomes and renders them as
// JSON and Markdown summaries.
package report

import (
	"io"
	"sync"
	"time"
)

// FailureEntry is a failure captured inside a matcher.
type FailureEntry struct {
	Node    string `json:"node"`
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

// Entry is the recorded outcome of one assertion.
type Entry struct {
	Name        string         `json:"name"`
	Passed      bool           `json:"passed"`
	Expectation string         `json:"expectation"`
	Mismatch    string         `json:"mismatch,omitempty"`
	Failures    []FailureEntry `json:"failures,omitempty"`
	Duration    time.Duration  `json:"duration"`
	RecordedAt  time.Time      `json:"recorded_at"`
}

// Reporter renders entries.
type Reporter interface {
	// GenerateReport renders a single entry.
	GenerateReport(entry *Entry) ([]byte, error)

	// GenerateSummary renders a summary of all entries.
	GenerateSummary(entries []*Entry) ([]byte, error)

	// WriteReport writes the rendering of entry to w.
	WriteReport(w io.Writer, entry *Entry) error
}

// Recorder collects entries. It is safe for concurrent use.
type Recorder struct {
	mu      sync.Mutex
	entries []*Entry
}

// NewRecorder creates an empty recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Record appends e, stamping RecordedAt when unset.
func (r *Recorder) Record(e *Entry) {
	if e == nil {
		return
	}
	if e.RecordedAt.IsZero() {
		e.RecordedAt = time.Now()
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, e)
}

// Entries returns the recorded entries in order.
func (r *Recorder) Entries() []*Entry {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*Entry, len(r.entries))
	copy(out, r.entries)
	return out
}

// Len returns the number of recorded entries.
func (r *Recorder) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.entries)
}

// Reset drops all entries.
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = nil
}
