package printable

import (
	"fmt"

	"github.com/rs/xid"
)

// Predicate is a named boolean test over T.
type Predicate[T any] struct {
	id   xid.ID
	name string
	test func(T) (bool, error)
}

// NewPredicate wraps test with the given display name.
func NewPredicate[T any](
	name string,
	test func(T) bool,
) (Predicate[T], error) {
	if test == nil {
		return Predicate[T]{}, fmt.Errorf(
			"predicate %q: nil callable: %w",
			name, ErrInvalidArgument,
		)
	}
	return NewFalliblePredicate(name, func(v T) (bool, error) {
		return test(v), nil
	})
}

// NewFalliblePredicate wraps a test that may report a failure
// through its error return.
func NewFalliblePredicate[T any](
	name string,
	test func(T) (bool, error),
) (Predicate[T], error) {
	if name == "" {
		return Predicate[T]{}, fmt.Errorf(
			"predicate: empty display name: %w",
			ErrInvalidArgument,
		)
	}
	if test == nil {
		return Predicate[T]{}, fmt.Errorf(
			"predicate %q: nil callable: %w",
			name, ErrInvalidArgument,
		)
	}
	return Predicate[T]{id: xid.New(), name: name, test: test}, nil
}

// Pred is like NewPredicate but panics on invalid arguments.
func Pred[T any](name string, test func(T) bool) Predicate[T] {
	p, err := NewPredicate(name, test)
	if err != nil {
		panic(err)
	}
	return p
}

// FalliblePred is like NewFalliblePredicate but panics on invalid
// arguments.
func FalliblePred[T any](
	name string,
	test func(T) (bool, error),
) Predicate[T] {
	p, err := NewFalliblePredicate(name, test)
	if err != nil {
		panic(err)
	}
	return p
}

// ID identifies this predicate instance.
func (p Predicate[T]) ID() xid.ID {
	return p.id
}

// Valid reports whether p was built by one of the constructors.
func (p Predicate[T]) Valid() bool {
	return p.test != nil
}

// Test runs the predicate.
func (p Predicate[T]) Test(v T) (bool, error) {
	return p.test(v)
}

// String returns the display name.
func (p Predicate[T]) String() string {
	return p.name
}

// And returns a predicate named "(p&&q)". Both sides are tested;
// the first error wins.
func (p Predicate[T]) And(q Predicate[T]) Predicate[T] {
	return FalliblePred(
		"("+p.name+"&&"+q.name+")",
		func(v T) (bool, error) {
			a, err := p.test(v)
			if err != nil {
				return false, err
			}
			b, err := q.test(v)
			if err != nil {
				return false, err
			}
			return a && b, nil
		},
	)
}

// Or returns a predicate named "(p||q)".
func (p Predicate[T]) Or(q Predicate[T]) Predicate[T] {
	return FalliblePred(
		"("+p.name+"||"+q.name+")",
		func(v T) (bool, error) {
			a, err := p.test(v)
			if err != nil {
				return false, err
			}
			b, err := q.test(v)
			if err != nil {
				return false, err
			}
			return a || b, nil
		},
	)
}

// Negate returns a predicate named "!p".
func (p Predicate[T]) Negate() Predicate[T] {
	return FalliblePred("!"+p.name, func(v T) (bool, error) {
		ok, err := p.test(v)
		if err != nil {
			return false, err
		}
		return !ok, nil
	})
}
