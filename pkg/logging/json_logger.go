package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/rs/zerolog"
)

// LoggerConfig configures the JSONLogger.
type LoggerConfig struct {
	// OutputPath is the log file. Empty means stderr.
	OutputPath string
	Level      LogLevel
	Fields     map[string]any
}

// JSONLogger implements Logger with JSON Lines output written
// through zerolog. Each line carries "level", "time", "message"
// and the merged fields.
type JSONLogger struct {
	state  *jsonState
	zl     zerolog.Logger
	fields map[string]any
}

type jsonState struct {
	mu     sync.Mutex
	closer io.Closer
	closed bool
}

// NewJSONLogger creates a new JSON logger.
func NewJSONLogger(config LoggerConfig) (*JSONLogger, error) {
	var (
		out    io.Writer = os.Stderr
		closer io.Closer
	)

	if config.OutputPath != "" {
		dir := filepath.Dir(config.OutputPath)
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf(
				"failed to create log directory: %w", err,
			)
		}
		file, err := os.OpenFile(
			config.OutputPath,
			os.O_CREATE|os.O_WRONLY|os.O_APPEND,
			0644,
		)
		if err != nil {
			return nil, fmt.Errorf(
				"failed to open log file: %w", err,
			)
		}
		out, closer = file, file
	}

	l := NewJSONLoggerWriter(out, config.Level)
	l.state.closer = closer
	l.fields = mergeFields(config.Fields, nil)
	return l, nil
}

// NewJSONLoggerWriter creates a JSON logger writing to w.
func NewJSONLoggerWriter(w io.Writer, level LogLevel) *JSONLogger {
	zl := zerolog.New(w).
		Level(toZerologLevel(level)).
		With().Timestamp().Logger()

	return &JSONLogger{
		state:  &jsonState{},
		zl:     zl,
		fields: make(map[string]any),
	}
}

func toZerologLevel(level LogLevel) zerolog.Level {
	switch level {
	case LevelDebug:
		return zerolog.DebugLevel
	case LevelWarn:
		return zerolog.WarnLevel
	case LevelError:
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

func (l *JSONLogger) emit(ev *zerolog.Event, msg string, fields []Field) {
	l.state.mu.Lock()
	defer l.state.mu.Unlock()

	if l.state.closed || ev == nil {
		return
	}
	for k, v := range mergeFields(l.fields, fields) {
		ev = ev.Interface(k, v)
	}
	ev.Msg(msg)
}

// Info logs an informational message.
func (l *JSONLogger) Info(msg string, fields ...Field) {
	l.emit(l.zl.Info(), msg, fields)
}

// Warn logs a warning message.
func (l *JSONLogger) Warn(msg string, fields ...Field) {
	l.emit(l.zl.Warn(), msg, fields)
}

// Error logs an error message.
func (l *JSONLogger) Error(msg string, fields ...Field) {
	l.emit(l.zl.Error(), msg, fields)
}

// Debug logs a debug message.
func (l *JSONLogger) Debug(msg string, fields ...Field) {
	l.emit(l.zl.Debug(), msg, fields)
}

// WithFields returns a new Logger with additional default
// fields. The derived logger shares the output and its closed
// state with l.
func (l *JSONLogger) WithFields(fields ...Field) Logger {
	return &JSONLogger{
		state:  l.state,
		zl:     l.zl,
		fields: mergeFields(l.fields, fields),
	}
}

// Close closes the log file, if any. Subsequent log calls are
// dropped.
func (l *JSONLogger) Close() error {
	l.state.mu.Lock()
	defer l.state.mu.Unlock()

	if l.state.closed {
		return nil
	}
	l.state.closed = true

	if l.state.closer != nil {
		return l.state.closer.Close()
	}
	return nil
}
