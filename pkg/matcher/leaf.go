package matcher

import (
	"fmt"

	"digital.vasic.matchers/pkg/printable"
)

// Leaf applies one function to the subject and tests the derived
// value with one predicate.
type Leaf[T, O any] struct {
	fn   printable.Function[T, O]
	pred printable.Predicate[O]
}

// NewLeaf pairs fn and pred. Both must come from the printable
// constructors.
func NewLeaf[T, O any](
	fn printable.Function[T, O],
	pred printable.Predicate[O],
) (*Leaf[T, O], error) {
	if !fn.Valid() {
		return nil, fmt.Errorf("leaf: missing function: %w", ErrInvalidArgument)
	}
	if !pred.Valid() {
		return nil, fmt.Errorf(
			"leaf %s: missing predicate: %w", fn, ErrInvalidArgument,
		)
	}
	return &Leaf[T, O]{fn: fn, pred: pred}, nil
}

// LeafOf is like NewLeaf but panics on invalid arguments.
func LeafOf[T, O any](
	fn printable.Function[T, O],
	pred printable.Predicate[O],
) *Leaf[T, O] {
	l, err := NewLeaf(fn, pred)
	if err != nil {
		panic(err)
	}
	return l
}

// Function returns the leaf's transformation.
func (l *Leaf[T, O]) Function() printable.Function[T, O] {
	return l.fn
}

// Predicate returns the leaf's predicate.
func (l *Leaf[T, O]) Predicate() printable.Predicate[O] {
	return l.pred
}

// String returns "{predicate}({function}(x))".
func (l *Leaf[T, O]) String() string {
	return l.pred.String() + "(" + l.fn.String() + "(x))"
}

// DescribeTo writes the leaf's expectation, which does not depend
// on any subject.
func (l *Leaf[T, O]) DescribeTo(d *Description) {
	d.Line(l.String())
}

// Evaluate applies the function then the predicate. A failure in
// either is captured and fails the leaf; it never propagates.
func (l *Leaf[T, O]) Evaluate(s *Session, subject T) *Outcome {
	s = ensure(s)
	exp := l.String()
	out := &Outcome{Op: OpLeaf, Expectation: exp}

	derived, failure := apply(s, l.fn, subject)
	if failure != nil {
		s.capture(exp, failure)
		out.Failure = failure
		out.Diagnostic = exp + " failed with " + failure.Error() +
			s.stackSuffix(failure)
		s.metrics.RecordLeaf(false)
		return out
	}

	because := " because " + l.fn.String() + "(x)=" + FormatValue(derived)

	passed, failure := testPredicate(s, l.pred, derived)
	switch {
	case failure != nil:
		s.capture(exp, failure)
		out.Failure = failure
		out.Diagnostic = exp + " failed with " + failure.Error() +
			because + s.stackSuffix(failure)
	case passed:
		out.Passed = true
		out.Diagnostic = exp + " was true" + because
	default:
		out.Diagnostic = exp + " was false" + because
	}

	s.metrics.RecordLeaf(out.Passed)
	return out
}
