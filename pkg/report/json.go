package report

import (
	"encoding/json"
	"io"
)

// JSONReporter renders entries as JSON.
type JSONReporter struct {
	pretty bool
}

// NewJSONReporter creates a JSON reporter. When pretty is true,
// output is indented for readability.
func NewJSONReporter(pretty bool) *JSONReporter {
	return &JSONReporter{pretty: pretty}
}

func (r *JSONReporter) marshal(v any) ([]byte, error) {
	if r.pretty {
		return json.MarshalIndent(v, "", "  ")
	}
	return json.Marshal(v)
}

// GenerateReport renders one entry.
func (r *JSONReporter) GenerateReport(entry *Entry) ([]byte, error) {
	return r.marshal(entry)
}

// GenerateSummary renders Build(entries).
func (r *JSONReporter) GenerateSummary(entries []*Entry) ([]byte, error) {
	return r.marshal(Build(entries))
}

// WriteReport writes the JSON rendering of entry to w.
func (r *JSONReporter) WriteReport(w io.Writer, entry *Entry) error {
	data, err := r.GenerateReport(entry)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}
