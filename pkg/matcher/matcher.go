// Package matcher evaluates trees of AND/OR nodes over
// (function, predicate) leaves and renders what was expected and
// what actually happened.
//
// Rendering is explicit about depth: a Description carries the
// nesting level, so the same tree renders identically no matter
// which goroutine renders it or what was rendered before.
//
// Expectation of a two-leaf AND, as the top-level matcher:
//
//	and:[
//	  equalTo[3](size(x))
//	  equalTo[hello](elementAt[0](x))
//	]->true
//
// Mismatch of the same tree against ["Hello" "world" "!"]:
//
//	when x=<["Hello" "world" "!"]>; then and:[
//	  equalTo[hello](elementAt[0](x)) was false because elementAt[0](x)="Hello"
//	]->false
package matcher

import (
	"fmt"
	"reflect"
)

// Matcher is a node of a matcher tree over subjects of type T.
// Matchers hold no evaluation state and may be evaluated any
// number of times.
type Matcher[T any] interface {
	// Evaluate checks subject and returns a non-nil outcome
	// mirroring this node's shape.
	Evaluate(s *Session, subject T) *Outcome

	// DescribeTo writes the expectation at the description's
	// current depth.
	DescribeTo(d *Description)
}

// Evaluate checks subject against m within s. A nil session gets
// a fresh default one.
func Evaluate[T any](s *Session, m Matcher[T], subject T) Result {
	s = ensure(s)
	o := evaluateChild(s, m, subject)
	return Result{
		Passed:   o.Passed,
		Outcome:  o,
		Failures: s.Failures(),
	}
}

// Matches reports whether subject satisfies m, using a fresh
// session.
func Matches[T any](m Matcher[T], subject T) bool {
	return Evaluate(nil, m, subject).Passed
}

// Expectation renders m at depth zero without the top-level
// suffix.
func Expectation[T any](m Matcher[T]) string {
	return render(m, DefaultIndent)
}

// Describe renders m as the top-level matcher: its expectation
// followed by "->true".
func Describe[T any](m Matcher[T]) string {
	return DescribeIndent(m, DefaultIndent)
}

// DescribeIndent is Describe with a custom indentation unit.
func DescribeIndent[T any](m Matcher[T], indent string) string {
	return render(m, indent) + "->true"
}

// IsNil reports whether m is nil or an interface holding a nil
// pointer, map, slice, func or chan.
func IsNil[T any](m Matcher[T]) bool {
	if m == nil {
		return true
	}
	v := reflect.ValueOf(m)
	switch v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice,
		reflect.Func, reflect.Chan, reflect.Interface:
		return v.IsNil()
	}
	return false
}

// render writes m's expectation at depth zero. A DescribeTo that
// panics renders as the matcher's type name.
func render[T any](m Matcher[T], indent string) (text string) {
	defer func() {
		if r := recover(); r != nil {
			text = fmt.Sprintf("%T", m)
		}
	}()
	d := NewDescription(indent)
	m.DescribeTo(d)
	return d.String()
}

// DescribeMismatch evaluates m against subject within s and
// renders the top-level mismatch. Calls already made in s are
// served from its cache.
func DescribeMismatch[T any](s *Session, m Matcher[T], subject T) string {
	s = ensure(s)
	r := Evaluate(s, m, subject)
	return RenderMismatch(s.Indent(), subject, r.Outcome)
}

// RenderMismatch renders an outcome tree as the top-level
// mismatch: "when x=<{subject}>; then " followed by the outcome.
func RenderMismatch(indent string, subject any, o *Outcome) string {
	d := NewDescription(indent)
	d.Append("when x=<" + FormatValue(subject) + ">; then ")
	d.AppendMismatch(o)
	return d.String()
}
