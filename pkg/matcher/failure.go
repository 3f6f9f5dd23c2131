package matcher

import (
	"errors"
	"fmt"
	"runtime/debug"
	"strings"

	"digital.vasic.matchers/pkg/printable"
)

var (
	// ErrInvalidArgument reports a nil or malformed construction
	// argument.
	ErrInvalidArgument = printable.ErrInvalidArgument

	// ErrIllegalState reports a matcher frozen or composed from
	// nothing. It is a defect in test code, not an assertion
	// failure.
	ErrIllegalState = errors.New("illegal state")
)

// KindPanic is the Failure kind of a recovered panic whose value
// is not an error.
const KindPanic = "panic"

// Failure is a failure thrown by a function or predicate during
// evaluation, captured at a matcher boundary.
type Failure struct {
	// Kind is the type name of the returned or panicked error
	// (e.g. "errors.errorString"), or "panic" for a panic with a
	// non-error value.
	Kind string
	// Message is the panic value or error text.
	Message string
	// Stack is set for panics only.
	Stack string
	// Cause is the returned error, or the panic value when it is
	// an error.
	Cause error
}

// Error returns "{Kind}({Message})".
func (f *Failure) Error() string {
	return f.Kind + "(" + f.Message + ")"
}

// Unwrap returns the underlying cause.
func (f *Failure) Unwrap() error {
	return f.Cause
}

func failureFromError(err error) *Failure {
	var f *Failure
	if errors.As(err, &f) {
		return f
	}
	return &Failure{
		Kind:    errorKind(err),
		Message: err.Error(),
		Cause:   err,
	}
}

func errorKind(err error) string {
	return strings.TrimPrefix(fmt.Sprintf("%T", err), "*")
}

func failureFromPanic(v any, stack []byte) *Failure {
	f := &Failure{
		Kind:    KindPanic,
		Message: fmt.Sprint(v),
		Stack:   strings.TrimSpace(string(stack)),
	}
	if err, ok := v.(error); ok {
		f.Kind = errorKind(err)
		f.Cause = err
	}
	return f
}

// call runs fn, turning both an error return and a panic into a
// Failure.
func call[O any](fn func() (O, error)) (out O, failure *Failure) {
	defer func() {
		if r := recover(); r != nil {
			var zero O
			out, failure = zero, failureFromPanic(r, debug.Stack())
		}
	}()

	var err error
	out, err = fn()
	if err != nil {
		return out, failureFromError(err)
	}
	return out, nil
}
