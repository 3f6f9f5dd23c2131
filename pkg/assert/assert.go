// Package assert is the entry point for checking a subject against
// a matcher: it evaluates, renders the expectation and mismatch,
// and reports the outcome to the configured logger, metrics and
// report recorder.
package assert

import (
	"fmt"
	"time"

	"digital.vasic.matchers/pkg/config"
	"digital.vasic.matchers/pkg/logging"
	"digital.vasic.matchers/pkg/matcher"
	"digital.vasic.matchers/pkg/metrics"
	"digital.vasic.matchers/pkg/report"
)

// AssertionError is returned when a subject does not satisfy a
// matcher.
type AssertionError struct {
	// Name labels the assertion; it may be empty.
	Name string
	// Expected is the rendered expectation of the matcher.
	Expected string
	// Actual is the rendered mismatch.
	Actual string
	// Failures are the failures captured during evaluation.
	Failures []matcher.CapturedFailure
}

// Error returns the expectation and the mismatch in one message.
func (e *AssertionError) Error() string {
	return "Expected: " + e.Expected + "\n     but: " + e.Actual
}

// Asserter checks subjects with shared configuration and
// reporting.
type Asserter struct {
	cfg      *config.Config
	logger   logging.Logger
	metrics  metrics.Recorder
	recorder *report.Recorder
}

// Option configures an Asserter.
type Option func(*Asserter)

// WithConfig sets the configuration.
func WithConfig(cfg *config.Config) Option {
	return func(a *Asserter) {
		if cfg != nil {
			a.cfg = cfg
		}
	}
}

// WithLogger sets the logger for assertion outcomes and captured
// failures.
func WithLogger(l logging.Logger) Option {
	return func(a *Asserter) {
		if l != nil {
			a.logger = l
		}
	}
}

// WithMetrics sets the metrics recorder.
func WithMetrics(m metrics.Recorder) Option {
	return func(a *Asserter) {
		if m != nil {
			a.metrics = m
		}
	}
}

// WithRecorder records every assertion into r.
func WithRecorder(r *report.Recorder) Option {
	return func(a *Asserter) { a.recorder = r }
}

// New creates an Asserter with the default configuration, no
// logging, no metrics and no recorder unless options say
// otherwise.
func New(opts ...Option) *Asserter {
	a := &Asserter{
		cfg:     config.Default(),
		logger:  logging.NullLogger{},
		metrics: metrics.NoopMetrics{},
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

var defaultAsserter = New()

// Default returns the asserter used by AssertThat, Require and
// Expect.
func Default() *Asserter {
	return defaultAsserter
}

// Session creates an evaluation session carrying the asserter's
// configuration, logger and metrics.
func (a *Asserter) Session() *matcher.Session {
	opts := append(
		a.cfg.SessionOptions(),
		matcher.WithLogger(a.logger),
		matcher.WithMetrics(a.metrics),
	)
	return matcher.NewSession(opts...)
}

// Flush saves a summary of the recorded assertions: JSON at the
// configured report path, and JSON plus Markdown in the report
// directory. It does nothing without a recorder.
func (a *Asserter) Flush() error {
	if a.recorder == nil || (a.cfg.ReportPath == "" && a.cfg.ReportDir == "") {
		return nil
	}
	summary := report.Build(a.recorder.Entries())
	fields := []logging.Field{
		logging.IntField("total", summary.Total),
		logging.IntField("failed", summary.Failed),
	}

	if a.cfg.ReportPath != "" {
		if err := report.SaveJSON(summary, a.cfg.ReportPath); err != nil {
			return fmt.Errorf("flush assertions: %w", err)
		}
		fields = append(fields, logging.StringField("path", a.cfg.ReportPath))
	}
	if a.cfg.ReportDir != "" {
		_, mdPath, err := report.SaveSummary(summary, a.cfg.ReportDir)
		if err != nil {
			return fmt.Errorf("flush assertions: %w", err)
		}
		fields = append(fields, logging.StringField("markdown", mdPath))
	}

	a.logger.Info("assertion report saved", fields...)
	return nil
}

// Check evaluates subject against m with a. It returns nil when the
// subject satisfies m and an *AssertionError otherwise.
func Check[T any](a *Asserter, name string, subject T, m matcher.Matcher[T]) error {
	if matcher.IsNil(m) {
		return fmt.Errorf("assert %q: nil matcher: %w", name, matcher.ErrInvalidArgument)
	}
	if a == nil {
		a = defaultAsserter
	}

	start := time.Now()
	s := a.Session()
	r := matcher.Evaluate(s, m, subject)
	expected := matcher.DescribeIndent(m, s.Indent())

	var err *AssertionError
	if !r.Passed {
		err = &AssertionError{
			Name:     name,
			Expected: expected,
			Actual:   matcher.RenderMismatch(s.Indent(), subject, r.Outcome),
			Failures: r.Failures,
		}
	}
	a.observe(name, r, expected, err, time.Since(start))

	if err != nil {
		return err
	}
	return nil
}

func (a *Asserter) observe(
	name string,
	r matcher.Result,
	expected string,
	failed *AssertionError,
	elapsed time.Duration,
) {
	a.metrics.RecordAssertion(r.Passed)

	fields := []logging.Field{
		logging.StringField("assertion", name),
		logging.DurationField("duration", elapsed),
		logging.IntField("captured_failures", len(r.Failures)),
	}
	if r.Passed {
		a.logger.Debug("assertion passed", fields...)
	} else {
		a.logger.Warn("assertion failed", fields...)
	}

	if a.recorder == nil && a.cfg.HistoryPath == "" {
		return
	}
	entry := &report.Entry{
		Name:        name,
		Passed:      r.Passed,
		Expectation: expected,
		Duration:    elapsed,
		RecordedAt:  time.Now(),
	}
	if failed != nil {
		entry.Mismatch = failed.Actual
	}
	for _, cf := range r.Failures {
		entry.Failures = append(entry.Failures, report.FailureEntry{
			Node:    cf.Node,
			Kind:    cf.Failure.Kind,
			Message: cf.Failure.Message,
		})
	}

	if a.recorder != nil {
		a.recorder.Record(entry)
	}
	if a.cfg.HistoryPath != "" {
		if err := report.AppendToHistory(a.cfg.HistoryPath, entry); err != nil {
			a.logger.Error("history append failed",
				logging.StringField("path", a.cfg.HistoryPath),
				logging.ErrorField(err),
			)
		}
	}
}

// AssertThat checks subject against m with the default asserter.
func AssertThat[T any](subject T, m matcher.Matcher[T]) error {
	return Check(defaultAsserter, "", subject, m)
}

// AllOf combines matchers with AND.
func AllOf[T any](ms ...matcher.Matcher[T]) matcher.Matcher[T] {
	return matcher.AllOf(ms...)
}

// AnyOf combines matchers with OR.
func AnyOf[T any](ms ...matcher.Matcher[T]) matcher.Matcher[T] {
	return matcher.AnyOf(ms...)
}
