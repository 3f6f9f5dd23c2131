package report

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// HistoricalEntry is one assertion in the history log.
type HistoricalEntry struct {
	Timestamp time.Time `json:"timestamp"`
	Name      string    `json:"name"`
	Status    string    `json:"status"`
	Duration  string    `json:"duration"`
	Failures  int       `json:"failures"`
}

// AppendToHistory adds entry to the log at historyPath, one JSON
// object per line.
func AppendToHistory(historyPath string, entry *Entry) error {
	line := HistoricalEntry{
		Timestamp: entry.RecordedAt,
		Name:      entry.Name,
		Status:    status(entry.Passed),
		Duration:  entry.Duration.String(),
		Failures:  len(entry.Failures),
	}

	data, err := json.Marshal(line)
	if err != nil {
		return fmt.Errorf("failed to marshal history entry: %w", err)
	}

	file, err := os.OpenFile(
		historyPath,
		os.O_CREATE|os.O_APPEND|os.O_WRONLY,
		0644,
	)
	if err != nil {
		return fmt.Errorf("failed to open history file: %w", err)
	}
	defer func() { _ = file.Close() }()

	_, err = fmt.Fprintln(file, string(data))
	return err
}
