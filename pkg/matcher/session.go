package matcher

import (
	"fmt"
	"sync"

	"github.com/hashicorp/go-multierror"
	"github.com/patrickmn/go-cache"
	"github.com/rs/xid"

	"digital.vasic.matchers/pkg/logging"
	"digital.vasic.matchers/pkg/metrics"
	"digital.vasic.matchers/pkg/printable"
)

// CapturedFailure pairs a failure with the expectation text of the
// node where it was captured.
type CapturedFailure struct {
	Node    string
	Failure *Failure
}

// Session is the context of one evaluation and the mismatch
// description that follows it. It memoizes function and predicate
// calls per (callable, input), so describing a mismatch after a
// match does not run any callable twice, and it collects captured
// failures in the order they occurred.
//
// A Session is meant for one logical evaluation; create a new one
// per subject.
type Session struct {
	mu          sync.Mutex
	memo        *cache.Cache
	failures    []CapturedFailure
	seen        map[*Failure]bool
	indent      string
	stackTraces bool
	logger      logging.Logger
	metrics     metrics.Recorder
}

// Option configures a Session.
type Option func(*Session)

// WithMemoization enables or disables the call cache. It is
// enabled by default.
func WithMemoization(enabled bool) Option {
	return func(s *Session) {
		if enabled {
			s.memo = cache.New(cache.NoExpiration, 0)
		} else {
			s.memo = nil
		}
	}
}

// WithStackTraces appends the stack of captured panics to leaf
// diagnostics.
func WithStackTraces(enabled bool) Option {
	return func(s *Session) { s.stackTraces = enabled }
}

// WithIndent sets the indentation unit of rendered mismatches.
func WithIndent(indent string) Option {
	return func(s *Session) { s.indent = indent }
}

// WithLogger sets the logger captured failures are reported to.
func WithLogger(l logging.Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithMetrics sets the metrics recorder.
func WithMetrics(m metrics.Recorder) Option {
	return func(s *Session) {
		if m != nil {
			s.metrics = m
		}
	}
}

// NewSession creates a session with memoization enabled, no stack
// traces and the default indent.
func NewSession(opts ...Option) *Session {
	s := &Session{
		memo:    cache.New(cache.NoExpiration, 0),
		seen:    make(map[*Failure]bool),
		indent:  DefaultIndent,
		logger:  logging.NullLogger{},
		metrics: metrics.NoopMetrics{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func ensure(s *Session) *Session {
	if s == nil {
		return NewSession()
	}
	return s
}

// Indent returns the indentation unit used for rendering.
func (s *Session) Indent() string {
	return s.indent
}

// Failures returns the captured failures in capture order.
func (s *Session) Failures() []CapturedFailure {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]CapturedFailure, len(s.failures))
	copy(out, s.failures)
	return out
}

// Err returns all captured failures as one error, or nil.
func (s *Session) Err() error {
	var errs *multierror.Error
	for _, cf := range s.Failures() {
		errs = multierror.Append(
			errs, fmt.Errorf("%s: %w", cf.Node, cf.Failure),
		)
	}
	return errs.ErrorOrNil()
}

// capture records f once, however often a memoized call replays
// it.
func (s *Session) capture(node string, f *Failure) {
	s.mu.Lock()
	if s.seen[f] {
		s.mu.Unlock()
		return
	}
	s.seen[f] = true
	s.failures = append(s.failures, CapturedFailure{Node: node, Failure: f})
	s.mu.Unlock()

	s.logger.Debug("captured failure",
		logging.StringField("node", node),
		logging.StringField("kind", f.Kind),
		logging.StringField("message", f.Message),
	)
	s.metrics.RecordFailure(f.Kind)
}

// stackSuffix returns the stack of f on its own lines when stack
// traces are enabled.
func (s *Session) stackSuffix(f *Failure) string {
	if !s.stackTraces || f.Stack == "" {
		return ""
	}
	return "\n" + f.Stack
}

type memoEntry struct {
	value   any
	failure *Failure
}

func (s *Session) memoKey(id xid.ID, in any) (string, bool) {
	if s.memo == nil {
		return "", false
	}
	return fmt.Sprintf("%s|%T|%#v", id, in, in), true
}

func memoized[O any](
	s *Session,
	id xid.ID,
	in any,
	fn func() (O, error),
) (O, *Failure) {
	key, ok := s.memoKey(id, in)
	if ok {
		if hit, found := s.memo.Get(key); found {
			entry := hit.(memoEntry)
			v, _ := entry.value.(O)
			return v, entry.failure
		}
	}

	out, failure := call(fn)
	if ok {
		s.memo.Set(key, memoEntry{value: out, failure: failure}, cache.NoExpiration)
	}
	return out, failure
}

// apply runs f on in through the session cache. A cached failure
// is replayed as the same *Failure.
func apply[I, O any](
	s *Session,
	f printable.Function[I, O],
	in I,
) (O, *Failure) {
	return memoized(s, f.ID(), in, func() (O, error) {
		return f.Apply(in)
	})
}

// testPredicate runs p on v through the session cache.
func testPredicate[T any](
	s *Session,
	p printable.Predicate[T],
	v T,
) (bool, *Failure) {
	return memoized(s, p.ID(), v, func() (bool, error) {
		return p.Test(v)
	})
}
