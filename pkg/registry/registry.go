// Package registry resolves functions and predicates by name, so
// matchers can be assembled from text (suite files, compact
// references) instead of Go code.
package registry

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"digital.vasic.matchers/pkg/printable"
)

var (
	// ErrUnknown reports a name with no registered factory.
	ErrUnknown = errors.New("unknown callable")

	// ErrDuplicate reports a second registration under one name.
	ErrDuplicate = errors.New("already registered")
)

// FunctionFactory builds a transformation from resolution arguments.
type FunctionFactory func(args ...any) (func(any) (any, error), error)

// PredicateFactory builds a test from resolution arguments.
type PredicateFactory func(args ...any) (func(any) (bool, error), error)

// Registry maps names to function and predicate factories. It is
// safe for concurrent use.
type Registry struct {
	mu         sync.RWMutex
	functions  map[string]FunctionFactory
	predicates map[string]PredicateFactory
	installed  map[string]bool
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{
		functions:  make(map[string]FunctionFactory),
		predicates: make(map[string]PredicateFactory),
		installed:  make(map[string]bool),
	}
}

// NewDefault creates a registry with the builtin library installed.
func NewDefault() *Registry {
	r := New()
	if err := r.Install(Builtins()); err != nil {
		panic(err)
	}
	return r
}

// Default is the package-level registry with the builtins.
var Default = NewDefault()

// RegisterFunction adds a function factory under name.
func (r *Registry) RegisterFunction(name string, f FunctionFactory) error {
	if err := checkName(name, f == nil); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.functions[name]; exists {
		return fmt.Errorf("function %q: %w", name, ErrDuplicate)
	}
	r.functions[name] = f
	return nil
}

// RegisterPredicate adds a predicate factory under name.
func (r *Registry) RegisterPredicate(name string, f PredicateFactory) error {
	if err := checkName(name, f == nil); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.predicates[name]; exists {
		return fmt.Errorf("predicate %q: %w", name, ErrDuplicate)
	}
	r.predicates[name] = f
	return nil
}

// ResolveFunction builds the function registered as name. The
// result displays as "name" without arguments and "name[a,b]" with.
func (r *Registry) ResolveFunction(
	name string,
	args ...any,
) (printable.Function[any, any], error) {
	r.mu.RLock()
	factory, ok := r.functions[name]
	r.mu.RUnlock()

	if !ok {
		return printable.Function[any, any]{}, fmt.Errorf(
			"function %q: %w", name, ErrUnknown,
		)
	}

	fn, err := factory(args...)
	if err != nil {
		return printable.Function[any, any]{}, fmt.Errorf(
			"function %q: %w", name, err,
		)
	}
	return printable.NewFallibleFunction(DisplayName(name, args...), fn)
}

// ResolvePredicate builds the predicate registered as name.
func (r *Registry) ResolvePredicate(
	name string,
	args ...any,
) (printable.Predicate[any], error) {
	r.mu.RLock()
	factory, ok := r.predicates[name]
	r.mu.RUnlock()

	if !ok {
		return printable.Predicate[any]{}, fmt.Errorf(
			"predicate %q: %w", name, ErrUnknown,
		)
	}

	test, err := factory(args...)
	if err != nil {
		return printable.Predicate[any]{}, fmt.Errorf(
			"predicate %q: %w", name, err,
		)
	}
	return printable.NewFalliblePredicate(DisplayName(name, args...), test)
}

// ResolveFunctionRef resolves a compact reference such as
// "elementAt:0". Steps joined by "->" are chained left to right.
func (r *Registry) ResolveFunctionRef(
	ref string,
	extra ...any,
) (printable.Function[any, any], error) {
	steps := strings.Split(ref, "->")

	var out printable.Function[any, any]
	for i, step := range steps {
		name, args := ParseRef(step)
		if i == len(steps)-1 {
			args = append(args, extra...)
		}

		fn, err := r.ResolveFunction(name, args...)
		if err != nil {
			return printable.Function[any, any]{}, err
		}
		if i == 0 {
			out = fn
		} else {
			out = printable.AndThen(out, fn)
		}
	}
	return out, nil
}

// ResolvePredicateRef resolves a compact reference such as
// "equalTo:3".
func (r *Registry) ResolvePredicateRef(
	ref string,
	extra ...any,
) (printable.Predicate[any], error) {
	name, args := ParseRef(ref)
	return r.ResolvePredicate(name, append(args, extra...)...)
}

// HasFunction reports whether name is a registered function.
func (r *Registry) HasFunction(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.functions[name]
	return ok
}

// HasPredicate reports whether name is a registered predicate.
func (r *Registry) HasPredicate(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.predicates[name]
	return ok
}

// Functions returns the registered function names, sorted.
func (r *Registry) Functions() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return sortedKeys(r.functions)
}

// Predicates returns the registered predicate names, sorted.
func (r *Registry) Predicates() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return sortedKeys(r.predicates)
}

// DisplayName renders "name" or "name[a,b]".
func DisplayName(name string, args ...any) string {
	if len(args) == 0 {
		return name
	}
	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = fmt.Sprintf("%v", a)
	}
	return name + "[" + strings.Join(parts, ",") + "]"
}

func checkName(name string, nilFactory bool) error {
	if name == "" {
		return fmt.Errorf("register: empty name: %w", printable.ErrInvalidArgument)
	}
	if nilFactory {
		return fmt.Errorf(
			"register %q: nil factory: %w", name, printable.ErrInvalidArgument,
		)
	}
	return nil
}

func sortedKeys[V any](m map[string]V) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
