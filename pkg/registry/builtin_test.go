package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuiltinFunctions(t *testing.T) {
	r := NewDefault()

	tests := []struct {
		ref   string
		input any
		want  any
		fails bool
	}{
		{"identity", 7, 7, false},
		{"size", []string{"a", "b"}, 2, false},
		{"size", map[string]int{"a": 1}, 1, false},
		{"size", 3, nil, true},
		{"length", "Hello", 5, false},
		{"length", 5, nil, true},
		{"elementAt:0", []int{4, 5}, 4, false},
		{"elementAt:5", []int{4, 5}, nil, true},
		{"get:a", map[string]int{"a": 1}, 1, false},
		{"get:z", map[string]int{"a": 1}, nil, true},
		{"keys", map[string]int{"b": 1, "a": 2}, []any{"a", "b"}, false},
		{"toString", 42, "42", false},
		{"trim", "  hi  ", "hi", false},
		{"toLowerCase", "HeLLo", "hello", false},
		{"toList", []string{"a"}, []any{"a"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.ref, func(t *testing.T) {
			fn, err := r.ResolveFunctionRef(tt.ref)
			require.NoError(t, err)

			got, err := fn.Apply(tt.input)
			if tt.fails {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBuiltinPredicates(t *testing.T) {
	r := NewDefault()

	tests := []struct {
		ref    string
		value  any
		passed bool
		fails  bool
	}{
		{"equalTo:3", 3, true, false},
		{"equalTo:3", int64(3), true, false},
		{"equalTo:3", 4, false, false},
		{"equalTo:Hello", "Hello", true, false},
		{"notEqualTo:3", 4, true, false},
		{">:3", 4, true, false},
		{">:3", 3, false, false},
		{">=:3", 3.0, true, false},
		{"<:b", "a", true, false},
		{"<=:3", "x", false, true},
		{"between:1,5", 5, true, false},
		{"between:1,5", 6, false, false},
		{"isNil", nil, true, false},
		{"isNotNil", "x", true, false},
		{"isTrue", true, true, false},
		{"isFalse", true, false, false},
		{"isTrue", "yes", false, true},
		{"notEmpty", " ", false, false},
		{"notEmpty", []int{1}, true, false},
		{"notEmpty", 0, true, false},
		{"containsString:ell", "Hello", true, false},
		{"startsWith:He", "Hello", true, false},
		{"endsWith:He", "Hello", false, false},
		{"equalToIgnoringCase:hello", "HELLO", true, false},
		{"matchesRegex:^H.*o$", "Hello", true, false},
		{"isEmptyString", "", true, false},
		{"isBlank", " \n", true, false},
		{"minLength:3", "Hi", false, false},
		{"minLength:3", 3, false, true},
		{"isEmpty", []string{}, true, false},
		{"isEmpty", map[string]int{"a": 1}, false, false},
		{"contains:2", []int{1, 2}, true, false},
		{"contains:3", []int{1, 2}, false, false},
		{"noDuplicates", []string{"a", "a"}, false, false},
		{"noDuplicates", []string{"a", "b"}, true, false},
		{"containsKey:a", map[string]int{"a": 1}, true, false},
		{"containsKey:1", map[string]int{"a": 1}, false, false},
		{"containsValue:1", map[string]int{"a": 1}, true, false},
	}

	for _, tt := range tests {
		t.Run(tt.ref, func(t *testing.T) {
			p, err := r.ResolvePredicateRef(tt.ref)
			require.NoError(t, err)

			ok, err := p.Test(tt.value)
			if tt.fails {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.passed, ok)
		})
	}
}

func TestBuiltinPredicates_InvalidArguments(t *testing.T) {
	r := NewDefault()

	for _, ref := range []string{"matchesRegex:(", "minLength:abc", "between:1", "isNil:1"} {
		t.Run(ref, func(t *testing.T) {
			_, err := r.ResolvePredicateRef(ref)
			assert.Error(t, err)
		})
	}

	_, err := r.ResolveFunctionRef("elementAt:x")
	assert.Error(t, err)
}
