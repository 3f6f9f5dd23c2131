package fluent

import (
	"cmp"
	"iter"

	"digital.vasic.matchers/pkg/checks"
	"digital.vasic.matchers/pkg/printable"
	"digital.vasic.matchers/pkg/registry"
	"digital.vasic.matchers/pkg/transform"
)

// Method resolves a method of the subject by name, for builders fed
// by reflection instead of an explicit function. It panics when O
// cannot hold the method's result.
func Method[T, O any](name string, args ...any) printable.Function[T, O] {
	fn, err := registry.MethodOf[T, O](name, args...)
	if err != nil {
		panic(err)
	}
	return fn
}

// ObjectBuilder checks a derived value of any type.
type ObjectBuilder[T, O any] struct {
	accumulator[T, O]
}

// AsObject starts a builder over fn(subject).
func AsObject[T, O any](fn printable.Function[T, O]) ObjectBuilder[T, O] {
	return ObjectBuilder[T, O]{newAccumulator(fn)}
}

// Check appends p.
func (b ObjectBuilder[T, O]) Check(p printable.Predicate[O]) ObjectBuilder[T, O] {
	return ObjectBuilder[T, O]{b.with(p)}
}

// IsEqualTo checks the value equals v.
func (b ObjectBuilder[T, O]) IsEqualTo(v O) ObjectBuilder[T, O] {
	return b.Check(checks.EqualTo(v))
}

// IsNotEqualTo checks the value differs from v.
func (b ObjectBuilder[T, O]) IsNotEqualTo(v O) ObjectBuilder[T, O] {
	return b.Check(checks.NotEqualTo(v))
}

// IsNil checks the value is nil.
func (b ObjectBuilder[T, O]) IsNil() ObjectBuilder[T, O] {
	return b.Check(checks.IsNil[O]())
}

// IsNotNil checks the value is not nil.
func (b ObjectBuilder[T, O]) IsNotNil() ObjectBuilder[T, O] {
	return b.Check(checks.IsNotNil[O]())
}

// ComparableBuilder checks an ordered derived value.
type ComparableBuilder[T any, O cmp.Ordered] struct {
	accumulator[T, O]
}

// AsComparable starts a builder over fn(subject).
func AsComparable[T any, O cmp.Ordered](fn printable.Function[T, O]) ComparableBuilder[T, O] {
	return ComparableBuilder[T, O]{newAccumulator(fn)}
}

// AsInteger is AsComparable for int results.
func AsInteger[T any](fn printable.Function[T, int]) ComparableBuilder[T, int] {
	return AsComparable(fn)
}

// Check appends p.
func (b ComparableBuilder[T, O]) Check(p printable.Predicate[O]) ComparableBuilder[T, O] {
	return ComparableBuilder[T, O]{b.with(p)}
}

// IsEqualTo checks the value equals v.
func (b ComparableBuilder[T, O]) IsEqualTo(v O) ComparableBuilder[T, O] {
	return b.Check(checks.EqualTo(v))
}

// IsNotEqualTo checks the value differs from v.
func (b ComparableBuilder[T, O]) IsNotEqualTo(v O) ComparableBuilder[T, O] {
	return b.Check(checks.NotEqualTo(v))
}

// IsGreaterThan checks the value is above v.
func (b ComparableBuilder[T, O]) IsGreaterThan(v O) ComparableBuilder[T, O] {
	return b.Check(checks.GreaterThan(v))
}

// IsAtLeast checks the value is v or above.
func (b ComparableBuilder[T, O]) IsAtLeast(v O) ComparableBuilder[T, O] {
	return b.Check(checks.AtLeast(v))
}

// IsLessThan checks the value is below v.
func (b ComparableBuilder[T, O]) IsLessThan(v O) ComparableBuilder[T, O] {
	return b.Check(checks.LessThan(v))
}

// IsAtMost checks the value is v or below.
func (b ComparableBuilder[T, O]) IsAtMost(v O) ComparableBuilder[T, O] {
	return b.Check(checks.AtMost(v))
}

// IsBetween checks lo <= value <= hi.
func (b ComparableBuilder[T, O]) IsBetween(lo, hi O) ComparableBuilder[T, O] {
	return b.Check(checks.Between(lo, hi))
}

// StringBuilder checks a derived string.
type StringBuilder[T any] struct {
	accumulator[T, string]
}

// AsString starts a builder over fn(subject).
func AsString[T any](fn printable.Function[T, string]) StringBuilder[T] {
	return StringBuilder[T]{newAccumulator(fn)}
}

// Check appends p.
func (b StringBuilder[T]) Check(p printable.Predicate[string]) StringBuilder[T] {
	return StringBuilder[T]{b.with(p)}
}

// IsEqualTo checks the string equals s.
func (b StringBuilder[T]) IsEqualTo(s string) StringBuilder[T] {
	return b.Check(checks.EqualTo(s))
}

// IsEqualToIgnoringCase checks the string equals s under Unicode case folding.
func (b StringBuilder[T]) IsEqualToIgnoringCase(s string) StringBuilder[T] {
	return b.Check(checks.EqualToIgnoringCase(s))
}

// Contains checks the string contains s.
func (b StringBuilder[T]) Contains(s string) StringBuilder[T] {
	return b.Check(checks.ContainsString(s))
}

// StartsWith checks the string has prefix s.
func (b StringBuilder[T]) StartsWith(s string) StringBuilder[T] {
	return b.Check(checks.StartsWith(s))
}

// EndsWith checks the string has suffix s.
func (b StringBuilder[T]) EndsWith(s string) StringBuilder[T] {
	return b.Check(checks.EndsWith(s))
}

// Matches checks the string matches pattern. An invalid pattern fails
// the leaf when tested.
func (b StringBuilder[T]) Matches(pattern string) StringBuilder[T] {
	return b.Check(checks.MatchesRegex(pattern))
}

// IsEmpty checks the string is "".
func (b StringBuilder[T]) IsEmpty() StringBuilder[T] {
	return b.Check(checks.IsEmptyString())
}

// IsBlank checks the string is empty or only whitespace.
func (b StringBuilder[T]) IsBlank() StringBuilder[T] {
	return b.Check(checks.IsBlank())
}

// HasMinLength checks the string is at least n bytes long.
func (b StringBuilder[T]) HasMinLength(n int) StringBuilder[T] {
	return b.Check(checks.MinLength(n))
}

// BooleanBuilder checks a derived bool.
type BooleanBuilder[T any] struct {
	accumulator[T, bool]
}

// AsBoolean starts a builder over fn(subject).
func AsBoolean[T any](fn printable.Function[T, bool]) BooleanBuilder[T] {
	return BooleanBuilder[T]{newAccumulator(fn)}
}

// Check appends p.
func (b BooleanBuilder[T]) Check(p printable.Predicate[bool]) BooleanBuilder[T] {
	return BooleanBuilder[T]{b.with(p)}
}

// IsTrue checks the value is true.
func (b BooleanBuilder[T]) IsTrue() BooleanBuilder[T] {
	return b.Check(checks.IsTrue())
}

// IsFalse checks the value is false.
func (b BooleanBuilder[T]) IsFalse() BooleanBuilder[T] {
	return b.Check(checks.IsFalse())
}

// ListBuilder checks a derived slice.
type ListBuilder[T, E any] struct {
	accumulator[T, []E]
}

// AsList starts a builder over fn(subject).
func AsList[T, E any](fn printable.Function[T, []E]) ListBuilder[T, E] {
	return ListBuilder[T, E]{newAccumulator(fn)}
}

// AsStream starts a list builder over a sequence, drained once per
// evaluation. The function displays as "{fn}->toList".
func AsStream[T, E any](fn printable.Function[T, iter.Seq[E]]) ListBuilder[T, E] {
	if !fn.Valid() {
		return ListBuilder[T, E]{newAccumulator(printable.Function[T, []E]{})}
	}
	return AsList(printable.AndThen(fn, transform.ToList[E]()))
}

// Check appends p.
func (b ListBuilder[T, E]) Check(p printable.Predicate[[]E]) ListBuilder[T, E] {
	return ListBuilder[T, E]{b.with(p)}
}

// IsEmpty checks the list has no elements.
func (b ListBuilder[T, E]) IsEmpty() ListBuilder[T, E] {
	return b.Check(checks.IsEmpty[E]())
}

// Contains checks some element equals v.
func (b ListBuilder[T, E]) Contains(v E) ListBuilder[T, E] {
	return b.Check(checks.Contains(v))
}

// AnyMatch checks at least one element satisfies p.
func (b ListBuilder[T, E]) AnyMatch(p printable.Predicate[E]) ListBuilder[T, E] {
	return b.Check(checks.AnyMatch(p))
}

// AllMatch checks every element satisfies p.
func (b ListBuilder[T, E]) AllMatch(p printable.Predicate[E]) ListBuilder[T, E] {
	return b.Check(checks.AllMatch(p))
}

// NoneMatch checks no element satisfies p.
func (b ListBuilder[T, E]) NoneMatch(p printable.Predicate[E]) ListBuilder[T, E] {
	return b.Check(checks.NoneMatch(p))
}

// HasNoDuplicates checks no element appears twice.
func (b ListBuilder[T, E]) HasNoDuplicates() ListBuilder[T, E] {
	return b.Check(checks.NoDuplicates[E]())
}

// MapBuilder checks a derived map.
type MapBuilder[T any, K comparable, V any] struct {
	accumulator[T, map[K]V]
}

// AsMap starts a builder over fn(subject).
func AsMap[T any, K comparable, V any](fn printable.Function[T, map[K]V]) MapBuilder[T, K, V] {
	return MapBuilder[T, K, V]{newAccumulator(fn)}
}

// Check appends p.
func (b MapBuilder[T, K, V]) Check(p printable.Predicate[map[K]V]) MapBuilder[T, K, V] {
	return MapBuilder[T, K, V]{b.with(p)}
}

// ContainsKey checks the map has key k.
func (b MapBuilder[T, K, V]) ContainsKey(k K) MapBuilder[T, K, V] {
	return b.Check(checks.ContainsKey[K, V](k))
}

// ContainsValue checks some entry has value v.
func (b MapBuilder[T, K, V]) ContainsValue(v V) MapBuilder[T, K, V] {
	return b.Check(checks.ContainsValue[K](v))
}

// IsEmpty checks the map has no entries.
func (b MapBuilder[T, K, V]) IsEmpty() MapBuilder[T, K, V] {
	return b.Check(printable.Pred("isEmpty", func(m map[K]V) bool {
		return len(m) == 0
	}))
}
