package logging

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func splitNonEmpty(s string) []string {
	var out []string
	for _, line := range strings.Split(s, "\n") {
		if strings.TrimSpace(line) != "" {
			out = append(out, line)
		}
	}
	return out
}

func decodeLines(t *testing.T, s string) []map[string]any {
	t.Helper()
	var entries []map[string]any
	for _, line := range splitNonEmpty(s) {
		var entry map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &entry))
		entries = append(entries, entry)
	}
	return entries
}

func TestJSONLogger_WritesZerologLines(t *testing.T) {
	var buf bytes.Buffer
	logger := NewJSONLoggerWriter(&buf, LevelInfo)

	logger.Info("hello", LogField("key", "val"))

	entries := decodeLines(t, buf.String())
	require.Len(t, entries, 1)
	assert.Equal(t, "info", entries[0]["level"])
	assert.Equal(t, "hello", entries[0]["message"])
	assert.Equal(t, "val", entries[0]["key"])
	assert.Contains(t, entries[0], "time")
}

func TestJSONLogger_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := NewJSONLoggerWriter(&buf, LevelWarn)

	logger.Debug("debug")
	logger.Info("info")
	logger.Warn("warn")
	logger.Error("error")

	entries := decodeLines(t, buf.String())
	require.Len(t, entries, 2)
	assert.Equal(t, "warn", entries[0]["level"])
	assert.Equal(t, "error", entries[1]["level"])
}

func TestJSONLogger_WithFields(t *testing.T) {
	var buf bytes.Buffer
	logger := NewJSONLoggerWriter(&buf, LevelDebug)

	child := logger.WithFields(LogField("session", "s1"))
	child.Debug("captured", LogField("kind", "panic"))
	logger.Info("parent")

	entries := decodeLines(t, buf.String())
	require.Len(t, entries, 2)
	assert.Equal(t, "s1", entries[0]["session"])
	assert.Equal(t, "panic", entries[0]["kind"])
	assert.NotContains(t, entries[1], "session")
}

func TestJSONLogger_File(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "nested", "matchers.log")

	logger, err := NewJSONLogger(LoggerConfig{
		OutputPath: logPath,
		Level:      LevelDebug,
		Fields:     map[string]any{"suite": "greetings"},
	})
	require.NoError(t, err)

	logger.Info("hello")
	require.NoError(t, logger.Close())
	logger.Info("dropped after close")
	require.NoError(t, logger.Close())

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)

	entries := decodeLines(t, string(data))
	require.Len(t, entries, 1)
	assert.Equal(t, "greetings", entries[0]["suite"])
}

func TestJSONLogger_BadPath(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "file")
	require.NoError(t, os.WriteFile(blocker, nil, 0644))

	_, err := NewJSONLogger(LoggerConfig{
		OutputPath: filepath.Join(blocker, "sub", "x.log"),
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "log directory")
}
