package report

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Summary aggregates recorded entries.
type Summary struct {
	ID               string        `json:"id"`
	GeneratedAt      time.Time     `json:"generated_at"`
	Entries          []*Entry      `json:"entries"`
	Total            int           `json:"total"`
	Passed           int           `json:"passed"`
	Failed           int           `json:"failed"`
	CapturedFailures int           `json:"captured_failures"`
	TotalDuration    time.Duration `json:"total_duration"`
	PassRate         float64       `json:"pass_rate"`
}

// Build creates a summary of entries.
func Build(entries []*Entry) *Summary {
	now := time.Now()
	summary := &Summary{
		ID:          fmt.Sprintf("summary_%s", now.Format("20060102_150405")),
		GeneratedAt: now,
		Entries:     make([]*Entry, 0, len(entries)),
	}

	for _, e := range entries {
		summary.Entries = append(summary.Entries, e)
		summary.Total++
		summary.TotalDuration += e.Duration
		summary.CapturedFailures += len(e.Failures)
		if e.Passed {
			summary.Passed++
		} else {
			summary.Failed++
		}
	}

	if summary.Total > 0 {
		summary.PassRate = float64(summary.Passed) / float64(summary.Total)
	}
	return summary
}

// SaveJSON writes summary as indented JSON to path, creating parent
// directories.
func SaveJSON(summary *Summary, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	data, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal summary: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write JSON summary: %w", err)
	}
	return nil
}

// SaveSummary writes summary as JSON and Markdown files named after
// its generation time into outputDir, and returns their paths.
func SaveSummary(summary *Summary, outputDir string) (jsonPath, mdPath string, err error) {
	ts := summary.GeneratedAt.Format("20060102_150405")

	jsonPath = filepath.Join(outputDir, fmt.Sprintf("summary_%s.json", ts))
	if err := SaveJSON(summary, jsonPath); err != nil {
		return "", "", err
	}

	mdPath = filepath.Join(outputDir, fmt.Sprintf("summary_%s.md", ts))
	md := generateSummaryMarkdown(summary)
	if err := os.WriteFile(mdPath, []byte(md), 0644); err != nil {
		return "", "", fmt.Errorf("failed to write Markdown summary: %w", err)
	}
	return jsonPath, mdPath, nil
}
