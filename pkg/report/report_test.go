package report

import (
	"bufio"
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	_ Reporter = (*JSONReporter)(nil)
	_ Reporter = (*MarkdownReporter)(nil)
)

func makeEntries() []*Entry {
	return []*Entry{
		{
			Name:        "size",
			Passed:      true,
			Expectation: "equalTo[3](size(x))->true",
			Duration:    2 * time.Millisecond,
		},
		{
			Name:        "first word",
			Passed:      false,
			Expectation: "and:[\n  equalTo[hello](elementAt[0](x))\n]->true",
			Mismatch:    "when x=<[\"Hello\"]>; then and:[\n  ...\n]->false",
			Failures: []FailureEntry{
				{Node: "equalTo[1](boom(x))", Kind: "panic", Message: "FAILED"},
			},
			Duration: 3 * time.Millisecond,
		},
	}
}

func TestRecorder(t *testing.T) {
	r := NewRecorder()
	r.Record(nil)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			r.Record(&Entry{Name: "e", Passed: true})
		}()
	}
	wg.Wait()

	assert.Equal(t, 10, r.Len())
	for _, e := range r.Entries() {
		assert.False(t, e.RecordedAt.IsZero())
	}

	r.Reset()
	assert.Equal(t, 0, r.Len())
}

func TestBuild(t *testing.T) {
	summary := Build(makeEntries())

	assert.NotEmpty(t, summary.ID)
	assert.Equal(t, 2, summary.Total)
	assert.Equal(t, 1, summary.Passed)
	assert.Equal(t, 1, summary.Failed)
	assert.Equal(t, 1, summary.CapturedFailures)
	assert.Equal(t, 5*time.Millisecond, summary.TotalDuration)
	assert.Equal(t, 0.5, summary.PassRate)
}

func TestBuild_Empty(t *testing.T) {
	summary := Build(nil)

	assert.Equal(t, 0, summary.Total)
	assert.Equal(t, float64(0), summary.PassRate)
	assert.Empty(t, summary.Entries)
}

func TestJSONReporter(t *testing.T) {
	entries := makeEntries()

	tests := []struct {
		name   string
		pretty bool
	}{
		{"pretty", true},
		{"compact", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewJSONReporter(tt.pretty)

			data, err := r.GenerateReport(entries[1])
			require.NoError(t, err)
			assert.True(t, json.Valid(data))
			assert.Equal(t, tt.pretty, bytes.Contains(data, []byte("\n  ")))

			data, err = r.GenerateSummary(entries)
			require.NoError(t, err)
			var summary Summary
			require.NoError(t, json.Unmarshal(data, &summary))
			assert.Equal(t, 2, summary.Total)
			assert.Len(t, summary.Entries, 2)

			var buf bytes.Buffer
			require.NoError(t, r.WriteReport(&buf, entries[0]))
			assert.True(t, json.Valid(buf.Bytes()))
		})
	}
}

func TestMarkdownReporter(t *testing.T) {
	r := NewMarkdownReporter()
	entries := makeEntries()

	data, err := r.GenerateReport(entries[1])
	require.NoError(t, err)
	md := string(data)
	assert.Contains(t, md, "### first word: FAILED")
	assert.Contains(t, md, "But:\n\n```\nwhen x=<")
	assert.Contains(t, md, "- `equalTo[1](boom(x))` failed with panic(FAILED)")

	data, err = r.GenerateSummary(entries)
	require.NoError(t, err)
	md = string(data)
	assert.Contains(t, md, "# Assertion Summary")
	assert.Contains(t, md, "| size | PASSED | 2ms | 0 |")
	assert.Contains(t, md, "| Pass Rate | 50% |")
	assert.Contains(t, md, "## Failures")
	assert.NotContains(t, md, "### size")

	var buf bytes.Buffer
	require.NoError(t, r.WriteReport(&buf, entries[0]))
	assert.NotContains(t, buf.String(), "But:")
}

func TestSaveSummary(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "reports")
	summary := Build(makeEntries())

	jsonPath, mdPath, err := SaveSummary(summary, dir)
	require.NoError(t, err)

	data, err := os.ReadFile(jsonPath)
	require.NoError(t, err)
	var loaded Summary
	require.NoError(t, json.Unmarshal(data, &loaded))
	assert.Equal(t, summary.ID, loaded.ID)

	md, err := os.ReadFile(mdPath)
	require.NoError(t, err)
	assert.Contains(t, string(md), summary.ID)
}

func TestAppendToHistory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.jsonl")

	for _, e := range makeEntries() {
		require.NoError(t, AppendToHistory(path, e))
	}

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	var lines []HistoricalEntry
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		var h HistoricalEntry
		require.NoError(t, json.Unmarshal(scanner.Bytes(), &h))
		lines = append(lines, h)
	}

	require.Len(t, lines, 2)
	assert.Equal(t, "PASSED", lines[0].Status)
	assert.Equal(t, "FAILED", lines[1].Status)
	assert.Equal(t, 1, lines[1].Failures)
	assert.Equal(t, "3ms", lines[1].Duration)
}

func TestAppendToHistory_BadPath(t *testing.T) {
	err := AppendToHistory(filepath.Join(t.TempDir(), "missing", "h.jsonl"), &Entry{})
	assert.ErrorContains(t, err, "failed to open history file")
}
