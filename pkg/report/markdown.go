package report

import (
	"fmt"
	"io"
	"strings"
	"time"
)

// MarkdownReporter renders entries as Markdown.
type MarkdownReporter struct{}

// NewMarkdownReporter creates a Markdown reporter.
func NewMarkdownReporter() *MarkdownReporter {
	return &MarkdownReporter{}
}

// GenerateReport renders one entry.
func (r *MarkdownReporter) GenerateReport(entry *Entry) ([]byte, error) {
	var sb strings.Builder
	writeEntry(&sb, entry)
	return []byte(sb.String()), nil
}

// GenerateSummary renders Build(entries).
func (r *MarkdownReporter) GenerateSummary(entries []*Entry) ([]byte, error) {
	return []byte(generateSummaryMarkdown(Build(entries))), nil
}

// WriteReport writes the Markdown rendering of entry to w.
func (r *MarkdownReporter) WriteReport(w io.Writer, entry *Entry) error {
	data, err := r.GenerateReport(entry)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

func status(passed bool) string {
	if passed {
		return "PASSED"
	}
	return "FAILED"
}

func writeEntry(sb *strings.Builder, e *Entry) {
	fmt.Fprintf(sb, "### %s: %s\n\n", e.Name, status(e.Passed))
	sb.WriteString("Expected:\n\n```\n" + e.Expectation + "\n```\n\n")
	if e.Mismatch != "" {
		sb.WriteString("But:\n\n```\n" + e.Mismatch + "\n```\n\n")
	}
	for _, f := range e.Failures {
		fmt.Fprintf(sb, "- `%s` failed with %s(%s)\n", f.Node, f.Kind, f.Message)
	}
	if len(e.Failures) > 0 {
		sb.WriteString("\n")
	}
}

// generateSummaryMarkdown creates markdown from a summary.
func generateSummaryMarkdown(summary *Summary) string {
	var sb strings.Builder

	sb.WriteString("# Assertion Summary\n\n")
	fmt.Fprintf(&sb, "**Summary ID:** %s\n\n", summary.ID)
	fmt.Fprintf(&sb, "**Generated:** %s\n\n", summary.GeneratedAt.Format(time.RFC3339))

	sb.WriteString("## Overview\n\n")
	sb.WriteString("| Assertion | Status | Duration | Failures |\n")
	sb.WriteString("|-----------|--------|----------|----------|\n")
	for _, e := range summary.Entries {
		fmt.Fprintf(&sb, "| %s | %s | %v | %d |\n",
			e.Name, status(e.Passed), e.Duration, len(e.Failures))
	}

	sb.WriteString("\n## Statistics\n\n")
	sb.WriteString("| Metric | Value |\n")
	sb.WriteString("|--------|-------|\n")
	fmt.Fprintf(&sb, "| Total Assertions | %d |\n", summary.Total)
	fmt.Fprintf(&sb, "| Passed | %d |\n", summary.Passed)
	fmt.Fprintf(&sb, "| Failed | %d |\n", summary.Failed)
	fmt.Fprintf(&sb, "| Captured Failures | %d |\n", summary.CapturedFailures)
	fmt.Fprintf(&sb, "| Pass Rate | %.0f%% |\n", summary.PassRate*100)
	fmt.Fprintf(&sb, "| Total Duration | %v |\n", summary.TotalDuration)

	var failed []*Entry
	for _, e := range summary.Entries {
		if !e.Passed {
			failed = append(failed, e)
		}
	}
	if len(failed) > 0 {
		sb.WriteString("\n## Failures\n\n")
		for _, e := range failed {
			writeEntry(&sb, e)
		}
	}

	return sb.String()
}
