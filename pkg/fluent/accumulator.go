// Package fluent builds matchers by chaining checks onto one shared
// transformation of the subject:
//
//	m := fluent.AsInteger(transform.Size[string]()).
//		IsGreaterThan(0).
//		IsAtMost(3).
//		All()
//
// Builders are values. Every Check returns a new builder, so a
// partially built chain can be reused as a prefix.
package fluent

import (
	"fmt"

	"digital.vasic.matchers/pkg/matcher"
	"digital.vasic.matchers/pkg/printable"
)

// accumulator holds a transformation and the ordered predicates to
// apply to its result.
type accumulator[T, O any] struct {
	fn    printable.Function[T, O]
	preds []printable.Predicate[O]
	err   error
}

func newAccumulator[T, O any](fn printable.Function[T, O]) accumulator[T, O] {
	a := accumulator[T, O]{fn: fn}
	if !fn.Valid() {
		a.err = fmt.Errorf("builder: missing function: %w", matcher.ErrInvalidArgument)
	}
	return a
}

// with returns a copy of a with p appended. The first invalid
// predicate is remembered and reported when freezing.
func (a accumulator[T, O]) with(p printable.Predicate[O]) accumulator[T, O] {
	if a.err != nil {
		return a
	}
	if !p.Valid() {
		a.err = fmt.Errorf(
			"check %d on %s: missing predicate: %w",
			len(a.preds)+1, a.fn, matcher.ErrInvalidArgument,
		)
		return a
	}

	preds := make([]printable.Predicate[O], len(a.preds), len(a.preds)+1)
	copy(preds, a.preds)
	a.preds = append(preds, p)
	return a
}

// Len returns the number of accumulated checks.
func (a accumulator[T, O]) Len() int {
	return len(a.preds)
}

// Freeze turns the accumulated checks into a matcher: a bare leaf
// for a single check, otherwise a composite with op.
func (a accumulator[T, O]) Freeze(op matcher.Op) (matcher.Matcher[T], error) {
	if a.err != nil {
		return nil, a.err
	}
	if op != matcher.OpAnd && op != matcher.OpOr {
		return nil, fmt.Errorf(
			"freeze %s: unsupported op %s: %w",
			a.fn, op, matcher.ErrInvalidArgument,
		)
	}
	if len(a.preds) == 0 {
		return nil, fmt.Errorf(
			"freeze %s: no checks: %w", a.fn, matcher.ErrIllegalState,
		)
	}

	if len(a.preds) == 1 {
		leaf, err := matcher.NewLeaf(a.fn, a.preds[0])
		if err != nil {
			return nil, err
		}
		return leaf, nil
	}

	children := make([]matcher.Matcher[T], 0, len(a.preds))
	for _, p := range a.preds {
		leaf, err := matcher.NewLeaf(a.fn, p)
		if err != nil {
			return nil, err
		}
		children = append(children, leaf)
	}
	c, err := matcher.NewComposite(op, children...)
	if err != nil {
		return nil, err
	}
	return c, nil
}

// All freezes the checks with AND. It panics when no check was
// added or a check was invalid.
func (a accumulator[T, O]) All() matcher.Matcher[T] {
	return must(a.Freeze(matcher.OpAnd))
}

// Any freezes the checks with OR. It panics like All.
func (a accumulator[T, O]) Any() matcher.Matcher[T] {
	return must(a.Freeze(matcher.OpOr))
}

// Matcher is All.
func (a accumulator[T, O]) Matcher() matcher.Matcher[T] {
	return a.All()
}

func must[T any](m matcher.Matcher[T], err error) matcher.Matcher[T] {
	if err != nil {
		panic(err)
	}
	return m
}
