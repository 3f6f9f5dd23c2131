package checks

import (
	"fmt"
	"regexp"
	"strings"

	"digital.vasic.matchers/pkg/printable"
)

// ContainsString passes when the value contains sub.
func ContainsString(sub string) printable.Predicate[string] {
	return printable.Pred(
		fmt.Sprintf("containsString[%s]", sub),
		func(v string) bool { return strings.Contains(v, sub) },
	)
}

// StartsWith passes when the value has the given prefix.
func StartsWith(prefix string) printable.Predicate[string] {
	return printable.Pred(
		fmt.Sprintf("startsWith[%s]", prefix),
		func(v string) bool { return strings.HasPrefix(v, prefix) },
	)
}

// EndsWith passes when the value has the given suffix.
func EndsWith(suffix string) printable.Predicate[string] {
	return printable.Pred(
		fmt.Sprintf("endsWith[%s]", suffix),
		func(v string) bool { return strings.HasSuffix(v, suffix) },
	)
}

// MatchesRegex passes when the value matches pattern anywhere. An
// invalid pattern fails every evaluation with the compile error.
func MatchesRegex(pattern string) printable.Predicate[string] {
	re, err := regexp.Compile(pattern)
	return printable.FalliblePred(
		fmt.Sprintf("matchesRegex[%s]", pattern),
		func(v string) (bool, error) {
			if err != nil {
				return false, err
			}
			return re.MatchString(v), nil
		},
	)
}

// EqualToIgnoringCase compares under Unicode case folding.
func EqualToIgnoringCase(want string) printable.Predicate[string] {
	return printable.Pred(
		fmt.Sprintf("equalToIgnoringCase[%s]", want),
		func(v string) bool { return strings.EqualFold(v, want) },
	)
}

// IsEmptyString passes for "".
func IsEmptyString() printable.Predicate[string] {
	return printable.Pred("isEmptyString", func(v string) bool {
		return v == ""
	})
}

// IsBlank passes for strings of only whitespace.
func IsBlank() printable.Predicate[string] {
	return printable.Pred("isBlank", func(v string) bool {
		return strings.TrimSpace(v) == ""
	})
}

// MinLength passes when the value has at least n bytes.
func MinLength(n int) printable.Predicate[string] {
	return printable.Pred(
		fmt.Sprintf("minLength[%d]", n),
		func(v string) bool { return len(v) >= n },
	)
}
