package logging

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// testMockLogger is a mock logger for testing MultiLogger delegation.
type testMockLogger struct {
	mock.Mock
}

func (m *testMockLogger) Info(msg string, fields ...Field) {
	m.Called(msg, fields)
}

func (m *testMockLogger) Warn(msg string, fields ...Field) {
	m.Called(msg, fields)
}

func (m *testMockLogger) Error(msg string, fields ...Field) {
	m.Called(msg, fields)
}

func (m *testMockLogger) Debug(msg string, fields ...Field) {
	m.Called(msg, fields)
}

func (m *testMockLogger) WithFields(fields ...Field) Logger {
	args := m.Called(fields)
	return args.Get(0).(Logger)
}

func (m *testMockLogger) Close() error {
	args := m.Called()
	return args.Error(0)
}

func TestMultiLogger_FansOut(t *testing.T) {
	a, b := &testMockLogger{}, &testMockLogger{}
	fields := []Field{LogField("k", 1)}

	for _, l := range []*testMockLogger{a, b} {
		l.On("Info", "i", fields).Once()
		l.On("Warn", "w", []Field(nil)).Once()
		l.On("Error", "e", []Field(nil)).Once()
		l.On("Debug", "d", []Field(nil)).Once()
	}

	m := NewMultiLogger(a, b)
	m.Info("i", fields...)
	m.Warn("w")
	m.Error("e")
	m.Debug("d")

	a.AssertExpectations(t)
	b.AssertExpectations(t)
}

func TestMultiLogger_WithFields(t *testing.T) {
	a := &testMockLogger{}
	derived := &testMockLogger{}
	fields := []Field{LogField("session", "s1")}

	a.On("WithFields", fields).Return(derived).Once()
	derived.On("Info", "x", []Field(nil)).Once()

	m := NewMultiLogger(a).WithFields(fields...)
	m.Info("x")

	a.AssertExpectations(t)
	derived.AssertExpectations(t)
}

func TestMultiLogger_Close_CombinesErrors(t *testing.T) {
	a, b, c := &testMockLogger{}, &testMockLogger{}, &testMockLogger{}
	a.On("Close").Return(errors.New("first"))
	b.On("Close").Return(nil)
	c.On("Close").Return(errors.New("third"))

	err := NewMultiLogger(a, b, c).Close()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "first")
	assert.Contains(t, err.Error(), "third")
}

func TestMultiLogger_Close_NoErrors(t *testing.T) {
	a := &testMockLogger{}
	a.On("Close").Return(nil)

	assert.NoError(t, NewMultiLogger(a).Close())
	assert.NoError(t, NewMultiLogger().Close())
}
