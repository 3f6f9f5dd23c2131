package registry

import (
	"fmt"
	"reflect"

	"digital.vasic.matchers/pkg/printable"
)

var errorType = reflect.TypeFor[error]()

// Method resolves the method called name on the subject at
// evaluation time and calls it with args. The function displays as
// "name" or "name[a,b]".
func Method(name string, args ...any) (printable.Function[any, any], error) {
	return MethodOf[any, any](name, args...)
}

// MethodOf is Method with typed subject and result. When T is a
// concrete type the method must exist on it. A trailing error
// result of the method becomes the failure of the call.
func MethodOf[T, O any](name string, args ...any) (printable.Function[T, O], error) {
	if name == "" {
		return printable.Function[T, O]{}, fmt.Errorf(
			"method: empty name: %w", printable.ErrInvalidArgument,
		)
	}

	if t := reflect.TypeFor[T](); t.Kind() != reflect.Interface {
		if _, ok := t.MethodByName(name); !ok {
			return printable.Function[T, O]{}, fmt.Errorf(
				"method %s on %s: %w", name, t, ErrUnknown,
			)
		}
	}

	return printable.NewFallibleFunction(
		DisplayName(name, args...),
		func(subject T) (O, error) {
			var zero O

			out, err := callMethod(subject, name, args)
			if err != nil {
				return zero, err
			}
			if out == nil {
				return zero, nil
			}
			v, ok := out.(O)
			if !ok {
				return zero, fmt.Errorf(
					"method %s returned %T, want %s",
					name, out, reflect.TypeFor[O](),
				)
			}
			return v, nil
		},
	)
}

func callMethod(subject any, name string, args []any) (any, error) {
	if subject == nil {
		return nil, fmt.Errorf("method %s on nil subject", name)
	}

	m := reflect.ValueOf(subject).MethodByName(name)
	if !m.IsValid() {
		return nil, fmt.Errorf("method %s on %T: %w", name, subject, ErrUnknown)
	}

	mt := m.Type()
	if mt.IsVariadic() || mt.NumIn() != len(args) {
		return nil, fmt.Errorf(
			"method %s takes %d arguments, got %d",
			name, mt.NumIn(), len(args),
		)
	}

	in := make([]reflect.Value, len(args))
	for i, a := range args {
		v, err := assignable(a, mt.In(i))
		if err != nil {
			return nil, fmt.Errorf("method %s argument %d: %w", name, i, err)
		}
		in[i] = v
	}

	results := m.Call(in)
	if n := len(results); n > 0 && mt.Out(n-1) == errorType {
		if err, _ := results[n-1].Interface().(error); err != nil {
			return nil, err
		}
		results = results[:n-1]
	}

	switch len(results) {
	case 0:
		return nil, nil
	case 1:
		return results[0].Interface(), nil
	}
	return nil, fmt.Errorf("method %s returns %d values", name, len(results))
}
