package registry

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"digital.vasic.matchers/pkg/checks"
	"digital.vasic.matchers/pkg/printable"
)

// BuiltinsName is the name of the builtin library.
const BuiltinsName = "builtin"

// Builtins returns the library of standard transformations and
// checks. Names and display formats match the typed ones in
// packages transform and checks.
func Builtins() Library {
	return LibraryFunc{LibName: BuiltinsName, Fn: installBuiltins}
}

func installBuiltins(r *Registry) error {
	functions := map[string]FunctionFactory{
		"identity":    fixed(func(v any) (any, error) { return v, nil }),
		"size":        fixed(func(v any) (any, error) { return length(v) }),
		"length":      fixed(stringLength),
		"elementAt":   elementAt,
		"get":         get,
		"keys":        fixed(keys),
		"toString":    fixed(func(v any) (any, error) { return fmt.Sprintf("%v", v), nil }),
		"trim":        fixed(stringOp(strings.TrimSpace)),
		"toLowerCase": fixed(stringOp(strings.ToLower)),
		"toList":      fixed(func(v any) (any, error) { return elements(v) }),
	}
	for name, f := range functions {
		if err := r.RegisterFunction(name, f); err != nil {
			return err
		}
	}

	predicates := map[string]PredicateFactory{
		"equalTo":    unary(func(want, v any) (bool, error) { return equal(want, v), nil }),
		"notEqualTo": unary(func(want, v any) (bool, error) { return !equal(want, v), nil }),
		">":          ordering(func(c int) bool { return c > 0 }),
		">=":         ordering(func(c int) bool { return c >= 0 }),
		"<":          ordering(func(c int) bool { return c < 0 }),
		"<=":         ordering(func(c int) bool { return c <= 0 }),
		"between":    between,
		"isNil":      nullary(func(v any) (bool, error) { return checks.NilValue(v), nil }),
		"isNotNil":   nullary(func(v any) (bool, error) { return !checks.NilValue(v), nil }),
		"isTrue":     nullary(boolIs(true)),
		"isFalse":    nullary(boolIs(false)),
		"notEmpty":   nullary(notEmpty),

		"containsString":      stringCheck(strings.Contains),
		"startsWith":          stringCheck(strings.HasPrefix),
		"endsWith":            stringCheck(strings.HasSuffix),
		"equalToIgnoringCase": stringCheck(strings.EqualFold),
		"matchesRegex":        matchesRegex,
		"isEmptyString":       nullary(stringIs(func(s string) bool { return s == "" })),
		"isBlank":             nullary(stringIs(func(s string) bool { return strings.TrimSpace(s) == "" })),
		"minLength":           minLength,

		"isEmpty":       nullary(func(v any) (bool, error) { n, err := length(v); return n == 0, err }),
		"contains":      unary(contains),
		"noDuplicates":  nullary(noDuplicates),
		"containsKey":   unary(containsKey),
		"containsValue": unary(containsValue),
	}
	for name, f := range predicates {
		if err := r.RegisterPredicate(name, f); err != nil {
			return err
		}
	}
	return nil
}

func arity(args []any, n int) error {
	if len(args) != n {
		return fmt.Errorf(
			"want %d arguments, got %d: %w",
			n, len(args), printable.ErrInvalidArgument,
		)
	}
	return nil
}

func fixed(fn func(any) (any, error)) FunctionFactory {
	return func(args ...any) (func(any) (any, error), error) {
		if err := arity(args, 0); err != nil {
			return nil, err
		}
		return fn, nil
	}
}

func nullary(test func(any) (bool, error)) PredicateFactory {
	return func(args ...any) (func(any) (bool, error), error) {
		if err := arity(args, 0); err != nil {
			return nil, err
		}
		return test, nil
	}
}

func unary(test func(arg, v any) (bool, error)) PredicateFactory {
	return func(args ...any) (func(any) (bool, error), error) {
		if err := arity(args, 1); err != nil {
			return nil, err
		}
		return func(v any) (bool, error) { return test(args[0], v) }, nil
	}
}

func ordering(accept func(int) bool) PredicateFactory {
	return unary(func(bound, v any) (bool, error) {
		c, err := compare(v, bound)
		if err != nil {
			return false, err
		}
		return accept(c), nil
	})
}

func between(args ...any) (func(any) (bool, error), error) {
	if err := arity(args, 2); err != nil {
		return nil, err
	}
	return func(v any) (bool, error) {
		lo, err := compare(v, args[0])
		if err != nil {
			return false, err
		}
		hi, err := compare(v, args[1])
		if err != nil {
			return false, err
		}
		return lo >= 0 && hi <= 0, nil
	}, nil
}

func stringLength(v any) (any, error) {
	s, err := toString(v)
	if err != nil {
		return nil, err
	}
	return len(s), nil
}

func stringOp(op func(string) string) func(any) (any, error) {
	return func(v any) (any, error) {
		s, err := toString(v)
		if err != nil {
			return nil, err
		}
		return op(s), nil
	}
}

func elementAt(args ...any) (func(any) (any, error), error) {
	if err := arity(args, 1); err != nil {
		return nil, err
	}
	i, ok := toInt(args[0])
	if !ok {
		return nil, fmt.Errorf(
			"index %v is not an integer: %w", args[0], printable.ErrInvalidArgument,
		)
	}
	return func(v any) (any, error) {
		items, err := elements(v)
		if err != nil {
			return nil, err
		}
		if i < 0 || i >= len(items) {
			return nil, fmt.Errorf("index %d out of range [0,%d)", i, len(items))
		}
		return items[i], nil
	}, nil
}

func get(args ...any) (func(any) (any, error), error) {
	if err := arity(args, 1); err != nil {
		return nil, err
	}
	key := args[0]
	return func(v any) (any, error) {
		m, err := mapValue(v)
		if err != nil {
			return nil, err
		}
		k, err := assignable(key, m.Type().Key())
		if err != nil {
			return nil, err
		}
		out := m.MapIndex(k)
		if !out.IsValid() {
			return nil, fmt.Errorf("no key %v", key)
		}
		return out.Interface(), nil
	}, nil
}

func keys(v any) (any, error) {
	m, err := mapValue(v)
	if err != nil {
		return nil, err
	}
	out := make([]any, 0, m.Len())
	for _, k := range m.MapKeys() {
		out = append(out, k.Interface())
	}
	sort.Slice(out, func(i, j int) bool {
		return fmt.Sprintf("%v", out[i]) < fmt.Sprintf("%v", out[j])
	})
	return out, nil
}

func boolIs(want bool) func(any) (bool, error) {
	return func(v any) (bool, error) {
		b, ok := v.(bool)
		if !ok {
			return false, fmt.Errorf("value %v (%T) is not a bool", v, v)
		}
		return b == want, nil
	}
}

// notEmpty passes for non-nil values, rejecting blank strings and
// empty collections.
func notEmpty(v any) (bool, error) {
	if checks.NilValue(v) {
		return false, nil
	}
	if s, ok := v.(string); ok {
		return strings.TrimSpace(s) != "", nil
	}
	if n, err := length(v); err == nil {
		return n > 0, nil
	}
	return true, nil
}

func stringCheck(test func(s, arg string) bool) PredicateFactory {
	return unary(func(arg, v any) (bool, error) {
		s, err := toString(v)
		if err != nil {
			return false, err
		}
		return test(s, fmt.Sprintf("%v", arg)), nil
	})
}

func stringIs(test func(string) bool) func(any) (bool, error) {
	return func(v any) (bool, error) {
		s, err := toString(v)
		if err != nil {
			return false, err
		}
		return test(s), nil
	}
}

func matchesRegex(args ...any) (func(any) (bool, error), error) {
	if err := arity(args, 1); err != nil {
		return nil, err
	}
	re, err := regexp.Compile(fmt.Sprintf("%v", args[0]))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", err, printable.ErrInvalidArgument)
	}
	return stringIs(re.MatchString), nil
}

func minLength(args ...any) (func(any) (bool, error), error) {
	if err := arity(args, 1); err != nil {
		return nil, err
	}
	n, ok := toInt(args[0])
	if !ok {
		return nil, fmt.Errorf(
			"length %v is not an integer: %w", args[0], printable.ErrInvalidArgument,
		)
	}
	return stringIs(func(s string) bool { return len(s) >= n }), nil
}

func contains(want, v any) (bool, error) {
	items, err := elements(v)
	if err != nil {
		return false, err
	}
	for _, item := range items {
		if equal(want, item) {
			return true, nil
		}
	}
	return false, nil
}

func noDuplicates(v any) (bool, error) {
	items, err := elements(v)
	if err != nil {
		return false, err
	}
	seen := make(map[string]bool, len(items))
	for _, item := range items {
		key := fmt.Sprintf("%#v", item)
		if seen[key] {
			return false, nil
		}
		seen[key] = true
	}
	return true, nil
}

func containsKey(key, v any) (bool, error) {
	m, err := mapValue(v)
	if err != nil {
		return false, err
	}
	k, err := assignable(key, m.Type().Key())
	if err != nil {
		return false, nil
	}
	return m.MapIndex(k).IsValid(), nil
}

func containsValue(want, v any) (bool, error) {
	m, err := mapValue(v)
	if err != nil {
		return false, err
	}
	iter := m.MapRange()
	for iter.Next() {
		if equal(want, iter.Value().Interface()) {
			return true, nil
		}
	}
	return false, nil
}
