package logging

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogLevel_String(t *testing.T) {
	tests := []struct {
		level    LogLevel
		expected string
	}{
		{LevelDebug, "DEBUG"},
		{LevelInfo, "INFO"},
		{LevelWarn, "WARN"},
		{LevelError, "ERROR"},
		{LogLevel(99), "UNKNOWN"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.level.String())
		})
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want LogLevel
	}{
		{"debug", LevelDebug},
		{"INFO", LevelInfo},
		{"", LevelInfo},
		{" warn ", LevelWarn},
		{"warning", LevelWarn},
		{"Error", LevelError},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLevel(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := ParseLevel("loud")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown log level")
}

type named string

func (n named) String() string { return string(n) }

func TestFieldHelpers(t *testing.T) {
	assert.Equal(t, Field{"k", "v"}, LogField("k", "v"))
	assert.Equal(t, Field{"name", "test"}, StringField("name", "test"))
	assert.Equal(t, Field{"count", 42}, IntField("count", 42))
	assert.Equal(t, Field{"ok", true}, BoolField("ok", true))
	assert.Equal(t,
		Field{"took", "1.5ms"},
		DurationField("took", 1500*time.Microsecond),
	)
	assert.Equal(t,
		Field{"fn", "size"},
		StringerField("fn", named("size")),
	)
	assert.Equal(t, Field{"fn", "<nil>"}, StringerField("fn", nil))
}

func TestErrorField(t *testing.T) {
	assert.Equal(t, Field{"error", "boom"}, ErrorField(errors.New("boom")))
	assert.Equal(t, Field{"error", "<nil>"}, ErrorField(nil))
}

func TestNullLogger_DiscardsEverything(t *testing.T) {
	var l Logger = NullLogger{}

	assert.NotPanics(t, func() {
		l.Info("a")
		l.Warn("b")
		l.Error("c")
		l.Debug("d", LogField("k", 1))
	})
	assert.Equal(t, NullLogger{}, l.WithFields(LogField("k", 1)))
	assert.NoError(t, l.Close())
}
