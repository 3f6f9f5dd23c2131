// Package printable provides functions and predicates that carry an
// explicit display name. The display name is what a diagnostic
// renderer embeds in report text, so String always returns it
// verbatim.
package printable

import (
	"errors"
	"fmt"

	"github.com/rs/xid"
)

// ErrInvalidArgument is returned when a printable value is
// constructed from an empty name or a nil callable.
var ErrInvalidArgument = errors.New("invalid argument")

// Function is a named transformation from I to O. The zero value
// is not usable; construct one with NewFunction or Func.
type Function[I, O any] struct {
	id   xid.ID
	name string
	fn   func(I) (O, error)
}

// NewFunction wraps fn with the given display name.
func NewFunction[I, O any](
	name string,
	fn func(I) O,
) (Function[I, O], error) {
	if fn == nil {
		return Function[I, O]{}, fmt.Errorf(
			"function %q: nil callable: %w",
			name, ErrInvalidArgument,
		)
	}
	return NewFallibleFunction(name, func(in I) (O, error) {
		return fn(in), nil
	})
}

// NewFallibleFunction wraps a transformation that may report a
// failure through its error return.
func NewFallibleFunction[I, O any](
	name string,
	fn func(I) (O, error),
) (Function[I, O], error) {
	if name == "" {
		return Function[I, O]{}, fmt.Errorf(
			"function: empty display name: %w",
			ErrInvalidArgument,
		)
	}
	if fn == nil {
		return Function[I, O]{}, fmt.Errorf(
			"function %q: nil callable: %w",
			name, ErrInvalidArgument,
		)
	}
	return Function[I, O]{id: xid.New(), name: name, fn: fn}, nil
}

// Func is like NewFunction but panics on invalid arguments.
func Func[I, O any](name string, fn func(I) O) Function[I, O] {
	f, err := NewFunction(name, fn)
	if err != nil {
		panic(err)
	}
	return f
}

// FallibleFunc is like NewFallibleFunction but panics on invalid
// arguments.
func FallibleFunc[I, O any](
	name string,
	fn func(I) (O, error),
) Function[I, O] {
	f, err := NewFallibleFunction(name, fn)
	if err != nil {
		panic(err)
	}
	return f
}

// ID identifies this function instance. Composition produces a new
// ID.
func (f Function[I, O]) ID() xid.ID {
	return f.id
}

// Valid reports whether f was built by one of the constructors.
func (f Function[I, O]) Valid() bool {
	return f.fn != nil
}

// Apply runs the transformation. Panics raised by the callable are
// not recovered here.
func (f Function[I, O]) Apply(in I) (O, error) {
	return f.fn(in)
}

// String returns the display name.
func (f Function[I, O]) String() string {
	return f.name
}

// AndThen returns g∘f: f is applied first. The display name is
// "{f}->{g}".
func AndThen[A, B, C any](
	f Function[A, B],
	g Function[B, C],
) Function[A, C] {
	return FallibleFunc(f.name+"->"+g.name, func(a A) (C, error) {
		b, err := f.fn(a)
		if err != nil {
			var zero C
			return zero, err
		}
		return g.fn(b)
	})
}

// Compose returns f∘g: g is applied first. The display name lists
// the functions in application order, "{g}->{f}".
func Compose[A, B, C any](
	f Function[B, C],
	g Function[A, B],
) Function[A, C] {
	return AndThen(g, f)
}
