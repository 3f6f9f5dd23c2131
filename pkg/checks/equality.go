// Package checks provides ready-made predicates with deterministic
// display names, for use as the right-hand side of matcher leaves.
package checks

import (
	stdcmp "cmp"
	"fmt"
	"reflect"

	"github.com/google/go-cmp/cmp"

	"digital.vasic.matchers/pkg/printable"
)

var exportAll = cmp.Exporter(func(reflect.Type) bool { return true })

// Equal reports whether a and b are deeply equal, including
// unexported fields.
func Equal(a, b any) bool {
	return cmp.Equal(a, b, exportAll)
}

// Diff returns a human-readable difference between want and got,
// or "" when they are equal.
func Diff(want, got any) string {
	return cmp.Diff(want, got, exportAll)
}

// EqualTo passes when the value is deeply equal to want.
func EqualTo[T any](want T) printable.Predicate[T] {
	return printable.Pred(
		fmt.Sprintf("equalTo[%v]", want),
		func(v T) bool { return Equal(want, v) },
	)
}

// NotEqualTo passes when the value differs from want.
func NotEqualTo[T any](want T) printable.Predicate[T] {
	return printable.Pred(
		fmt.Sprintf("notEqualTo[%v]", want),
		func(v T) bool { return !Equal(want, v) },
	)
}

// GreaterThan passes when the value is > bound.
func GreaterThan[T stdcmp.Ordered](bound T) printable.Predicate[T] {
	return printable.Pred(
		fmt.Sprintf(">[%v]", bound),
		func(v T) bool { return v > bound },
	)
}

// AtLeast passes when the value is >= bound.
func AtLeast[T stdcmp.Ordered](bound T) printable.Predicate[T] {
	return printable.Pred(
		fmt.Sprintf(">=[%v]", bound),
		func(v T) bool { return v >= bound },
	)
}

// LessThan passes when the value is < bound.
func LessThan[T stdcmp.Ordered](bound T) printable.Predicate[T] {
	return printable.Pred(
		fmt.Sprintf("<[%v]", bound),
		func(v T) bool { return v < bound },
	)
}

// AtMost passes when the value is <= bound.
func AtMost[T stdcmp.Ordered](bound T) printable.Predicate[T] {
	return printable.Pred(
		fmt.Sprintf("<=[%v]", bound),
		func(v T) bool { return v <= bound },
	)
}

// Between passes when lo <= value <= hi.
func Between[T stdcmp.Ordered](lo, hi T) printable.Predicate[T] {
	return printable.Pred(
		fmt.Sprintf("between[%v,%v]", lo, hi),
		func(v T) bool { return v >= lo && v <= hi },
	)
}

// IsNil passes for nil interfaces and nil pointers, slices, maps,
// channels and funcs.
func IsNil[T any]() printable.Predicate[T] {
	return printable.Pred("isNil", func(v T) bool { return NilValue(v) })
}

// IsNotNil negates IsNil.
func IsNotNil[T any]() printable.Predicate[T] {
	return printable.Pred("isNotNil", func(v T) bool { return !NilValue(v) })
}

// IsTrue passes for true.
func IsTrue() printable.Predicate[bool] {
	return printable.Pred("isTrue", func(v bool) bool { return v })
}

// IsFalse passes for false.
func IsFalse() printable.Predicate[bool] {
	return printable.Pred("isFalse", func(v bool) bool { return !v })
}

// NilValue reports whether v is nil or a nil reference.
func NilValue(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Slice, reflect.Map,
		reflect.Chan, reflect.Func, reflect.Interface:
		return rv.IsNil()
	}
	return false
}
