package assert

import "digital.vasic.matchers/pkg/matcher"

// TestingT is the subset of *testing.T used here.
type TestingT interface {
	Helper()
	Errorf(format string, args ...any)
	FailNow()
}

// Require fails and stops the test when subject does not satisfy m.
func Require[T any](t TestingT, subject T, m matcher.Matcher[T]) {
	t.Helper()
	if err := AssertThat(subject, m); err != nil {
		t.Errorf("%s", err)
		t.FailNow()
	}
}

// Expect marks the test failed when subject does not satisfy m,
// and reports whether it did.
func Expect[T any](t TestingT, subject T, m matcher.Matcher[T]) bool {
	t.Helper()
	if err := AssertThat(subject, m); err != nil {
		t.Errorf("%s", err)
		return false
	}
	return true
}
