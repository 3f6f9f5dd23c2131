package assert

import (
	"fmt"
	"reflect"

	"github.com/onsi/gomega/format"
	"github.com/onsi/gomega/types"

	"digital.vasic.matchers/pkg/matcher"
)

// Satisfy adapts m to gomega:
//
//	g.Expect(words).To(assert.Satisfy(m))
//
// Failure messages are rendered from the outcome of the preceding
// Match; no function or predicate runs again.
func Satisfy[T any](m matcher.Matcher[T]) types.GomegaMatcher {
	return SatisfyWith(defaultAsserter, m)
}

// SatisfyWith is Satisfy using a.
func SatisfyWith[T any](a *Asserter, m matcher.Matcher[T]) types.GomegaMatcher {
	if a == nil {
		a = defaultAsserter
	}
	return &satisfyMatcher[T]{asserter: a, matcher: m}
}

type satisfyMatcher[T any] struct {
	asserter *Asserter
	matcher  matcher.Matcher[T]

	subject T
	indent  string
	outcome *matcher.Outcome
}

func (g *satisfyMatcher[T]) Match(actual any) (bool, error) {
	if matcher.IsNil(g.matcher) {
		return false, fmt.Errorf("Satisfy matcher is nil")
	}

	subject, ok := actual.(T)
	if !ok {
		if actual != nil || !nilable(reflect.TypeFor[T]()) {
			return false, fmt.Errorf(
				"Satisfy matcher expects a %s.  Got:\n%s",
				reflect.TypeFor[T](), format.Object(actual, 1),
			)
		}
	}

	s := g.asserter.Session()
	r := matcher.Evaluate(s, g.matcher, subject)
	g.asserter.metrics.RecordAssertion(r.Passed)

	g.subject = subject
	g.indent = s.Indent()
	g.outcome = r.Outcome
	return r.Passed, nil
}

func (g *satisfyMatcher[T]) FailureMessage(actual any) string {
	if g.outcome == nil {
		return fmt.Sprintf("Expected\n%s\nto satisfy\n%s",
			format.Object(actual, 1), g.expectation())
	}
	return "Expected: " + g.expectation() +
		"\n     but: " + matcher.RenderMismatch(g.indent, g.subject, g.outcome)
}

func (g *satisfyMatcher[T]) NegatedFailureMessage(actual any) string {
	return fmt.Sprintf("Expected\n%s\nnot to satisfy\n%s",
		format.Object(actual, 1), g.expectation())
}

func (g *satisfyMatcher[T]) expectation() string {
	indent := g.indent
	if indent == "" {
		indent = g.asserter.cfg.Indent()
	}
	return matcher.DescribeIndent(g.matcher, indent)
}

func nilable(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Interface, reflect.Ptr, reflect.Slice,
		reflect.Map, reflect.Chan, reflect.Func:
		return true
	}
	return false
}
