package config

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"digital.vasic.matchers/pkg/logging"
	"digital.vasic.matchers/pkg/matcher"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, 2, cfg.IndentWidth)
	assert.True(t, cfg.Memoize)
	assert.False(t, cfg.StackTraces)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, FormatConsole, cfg.LogFormat)
	assert.Empty(t, cfg.ReportPath)
	assert.NoError(t, cfg.Validate())
	assert.Equal(t, "  ", cfg.Indent())
}

func TestLoad_NoFileUsesDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "matchers.yaml")
	require.NoError(t, os.WriteFile(path, []byte(
		"indent-width: 4\nstack-traces: true\nlog-format: JSON\nreport-path: out/summary.json\n",
	), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 4, cfg.IndentWidth)
	assert.True(t, cfg.StackTraces)
	assert.True(t, cfg.Memoize)
	assert.Equal(t, FormatJSON, cfg.LogFormat)
	assert.Equal(t, "out/summary.json", cfg.ReportPath)
	assert.Equal(t, "    ", cfg.Indent())
}

func TestLoad_EnvironmentOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "matchers.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log-level: warn\n"), 0o644))

	t.Setenv("MATCHERS_LOG_LEVEL", "debug")
	t.Setenv("MATCHERS_MEMOIZE", "false")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.False(t, cfg.Memoize)
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "read config")

	t.Setenv("MATCHERS_INDENT_WIDTH", "12")
	t.Setenv("MATCHERS_LOG_FORMAT", "xml")
	_, err = Load("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "indent-width must be between 0 and 8, got 12")
	assert.Contains(t, err.Error(), `log-format must be "console" or "json", got "xml"`)
}

func TestValidate_BadLevel(t *testing.T) {
	cfg := Default()
	cfg.LogLevel = "loud"

	assert.ErrorContains(t, cfg.Validate(), `unknown log level: "loud"`)
}

func TestNewLogger(t *testing.T) {
	tests := []struct {
		format string
		want   any
	}{
		{FormatConsole, &logging.ConsoleLogger{}},
		{FormatJSON, &logging.JSONLogger{}},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			cfg := Default()
			cfg.LogFormat = tt.format

			var buf bytes.Buffer
			l, err := cfg.NewLogger(&buf)
			require.NoError(t, err)
			assert.IsType(t, tt.want, l)

			l.Info("hello")
			assert.Contains(t, buf.String(), "hello")
		})
	}

	cfg := Default()
	cfg.LogFormat = "xml"
	_, err := cfg.NewLogger(&bytes.Buffer{})
	assert.Error(t, err)
}

func TestNewLogger_AlsoWritesLogFile(t *testing.T) {
	cfg := Default()
	cfg.LogFile = filepath.Join(t.TempDir(), "logs", "matchers.jsonl")

	var buf bytes.Buffer
	l, err := cfg.NewLogger(&buf)
	require.NoError(t, err)
	assert.IsType(t, &logging.MultiLogger{}, l)

	l.Warn("assertion failed", logging.StringField("name", "greeting"))
	require.NoError(t, l.Close())

	assert.Contains(t, buf.String(), "assertion failed")
	data, err := os.ReadFile(cfg.LogFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"name":"greeting"`)
	assert.Contains(t, string(data), `"level":"warn"`)
}

func TestSessionOptions(t *testing.T) {
	cfg := Default()
	cfg.IndentWidth = 4
	cfg.Memoize = false

	s := matcher.NewSession(cfg.SessionOptions()...)
	assert.Equal(t, "    ", s.Indent())
}
