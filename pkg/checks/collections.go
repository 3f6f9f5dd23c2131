package checks

import (
	"fmt"

	"digital.vasic.matchers/pkg/printable"
)

// IsEmpty passes for a nil or zero-length slice.
func IsEmpty[E any]() printable.Predicate[[]E] {
	return printable.Pred("isEmpty", func(v []E) bool { return len(v) == 0 })
}

// Contains passes when some element is deeply equal to want.
func Contains[E any](want E) printable.Predicate[[]E] {
	return printable.Pred(
		fmt.Sprintf("contains[%v]", want),
		func(v []E) bool {
			for _, e := range v {
				if Equal(want, e) {
					return true
				}
			}
			return false
		},
	)
}

// AnyMatch passes when p holds for at least one element. A failure
// of p on any element fails the whole check.
func AnyMatch[E any](p printable.Predicate[E]) printable.Predicate[[]E] {
	return printable.FalliblePred(
		fmt.Sprintf("anyMatch[%s]", p),
		func(v []E) (bool, error) {
			n, err := countMatches(p, v)
			return n > 0, err
		},
	)
}

// AllMatch passes when p holds for every element, including for an
// empty slice.
func AllMatch[E any](p printable.Predicate[E]) printable.Predicate[[]E] {
	return printable.FalliblePred(
		fmt.Sprintf("allMatch[%s]", p),
		func(v []E) (bool, error) {
			n, err := countMatches(p, v)
			return n == len(v), err
		},
	)
}

// NoneMatch passes when p holds for no element.
func NoneMatch[E any](p printable.Predicate[E]) printable.Predicate[[]E] {
	return printable.FalliblePred(
		fmt.Sprintf("noneMatch[%s]", p),
		func(v []E) (bool, error) {
			n, err := countMatches(p, v)
			return n == 0, err
		},
	)
}

// NoDuplicates passes when no two elements render the same with
// %#v.
func NoDuplicates[E any]() printable.Predicate[[]E] {
	return printable.Pred("noDuplicates", func(v []E) bool {
		seen := make(map[string]bool, len(v))
		for _, e := range v {
			key := fmt.Sprintf("%#v", e)
			if seen[key] {
				return false
			}
			seen[key] = true
		}
		return true
	})
}

// ContainsKey passes when the map has key k.
func ContainsKey[K comparable, V any](k K) printable.Predicate[map[K]V] {
	return printable.Pred(
		fmt.Sprintf("containsKey[%v]", k),
		func(m map[K]V) bool {
			_, ok := m[k]
			return ok
		},
	)
}

// ContainsValue passes when some map value is deeply equal to want.
func ContainsValue[K comparable, V any](want V) printable.Predicate[map[K]V] {
	return printable.Pred(
		fmt.Sprintf("containsValue[%v]", want),
		func(m map[K]V) bool {
			for _, v := range m {
				if Equal(want, v) {
					return true
				}
			}
			return false
		},
	)
}

func countMatches[E any](p printable.Predicate[E], v []E) (int, error) {
	n := 0
	for i, e := range v {
		ok, err := p.Test(e)
		if err != nil {
			return n, fmt.Errorf("element %d: %w", i, err)
		}
		if ok {
			n++
		}
	}
	return n, nil
}
