// Package transform provides named functions that derive the value
// a matcher leaf tests.
package transform

import (
	"cmp"
	"fmt"
	"iter"
	"maps"
	"slices"
	"strings"

	"digital.vasic.matchers/pkg/printable"
)

// Identity returns the subject itself.
func Identity[T any]() printable.Function[T, T] {
	return printable.Func("identity", func(v T) T { return v })
}

// Size returns the number of elements of a slice.
func Size[E any]() printable.Function[[]E, int] {
	return printable.Func("size", func(v []E) int { return len(v) })
}

// MapSize returns the number of entries of a map.
func MapSize[K comparable, V any]() printable.Function[map[K]V, int] {
	return printable.Func("size", func(m map[K]V) int { return len(m) })
}

// Length returns the byte length of a string.
func Length() printable.Function[string, int] {
	return printable.Func("length", func(s string) int { return len(s) })
}

// ElementAt returns the i-th element. An index out of range panics;
// the leaf evaluating it reports the panic as a failure.
func ElementAt[E any](i int) printable.Function[[]E, E] {
	return printable.Func(
		fmt.Sprintf("elementAt[%d]", i),
		func(v []E) E { return v[i] },
	)
}

// Get returns the value stored under k, failing when k is absent.
func Get[K comparable, V any](k K) printable.Function[map[K]V, V] {
	return printable.FallibleFunc(
		fmt.Sprintf("get[%v]", k),
		func(m map[K]V) (V, error) {
			v, ok := m[k]
			if !ok {
				return v, fmt.Errorf("no key %v", k)
			}
			return v, nil
		},
	)
}

// Keys returns the keys of a map in ascending order.
func Keys[K cmp.Ordered, V any]() printable.Function[map[K]V, []K] {
	return printable.Func("keys", func(m map[K]V) []K {
		return slices.Sorted(maps.Keys(m))
	})
}

// ToString renders the value with %v.
func ToString[T any]() printable.Function[T, string] {
	return printable.Func("toString", func(v T) string {
		return fmt.Sprintf("%v", v)
	})
}

// Trim strips leading and trailing whitespace.
func Trim() printable.Function[string, string] {
	return printable.Func("trim", strings.TrimSpace)
}

// ToLowerCase lowercases a string.
func ToLowerCase() printable.Function[string, string] {
	return printable.Func("toLowerCase", strings.ToLower)
}

// ToList drains a sequence into a slice.
func ToList[E any]() printable.Function[iter.Seq[E], []E] {
	return printable.Func("toList", func(seq iter.Seq[E]) []E {
		if seq == nil {
			return nil
		}
		return slices.Collect(seq)
	})
}
