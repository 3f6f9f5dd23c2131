package printable

import (
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestNewFunction_InvalidArguments(t *testing.T) {
	_, err := NewFunction[int, int]("", func(i int) int { return i })
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidArgument)

	_, err = NewFunction[int, int]("inc", nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidArgument)

	_, err = NewFallibleFunction[int, int]("inc", nil)
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestFunc_PanicsOnInvalid(t *testing.T) {
	assert.Panics(t, func() {
		Func[int, int]("", func(i int) int { return i })
	})
}

func TestFunction_StringAndApply(t *testing.T) {
	f := Func("inc", func(i int) int { return i + 1 })

	assert.Equal(t, "inc", f.String())
	assert.True(t, f.Valid())
	assert.False(t, Function[int, int]{}.Valid())

	out, err := f.Apply(41)
	require.NoError(t, err)
	assert.Equal(t, 42, out)
}

func TestAndThen_AppliesLeftToRight(t *testing.T) {
	inc := Func("inc", func(i int) int { return i + 1 })
	str := Func("str", strconv.Itoa)

	h := AndThen(inc, str)

	assert.Equal(t, "inc->str", h.String())
	out, err := h.Apply(1)
	require.NoError(t, err)
	assert.Equal(t, "2", out)
	assert.NotEqual(t, inc.ID(), h.ID())
}

func TestCompose_NamesInApplicationOrder(t *testing.T) {
	double := Func("double", func(i int) int { return i * 2 })
	inc := Func("inc", func(i int) int { return i + 1 })

	h := Compose(double, inc)

	assert.Equal(t, "inc->double", h.String())
	out, err := h.Apply(3)
	require.NoError(t, err)
	assert.Equal(t, 8, out)
}

func TestAndThen_StopsOnError(t *testing.T) {
	boom := errors.New("boom")
	calls := 0
	failing := FallibleFunc("failing", func(int) (int, error) {
		return 0, boom
	})
	counted := Func("counted", func(i int) int {
		calls++
		return i
	})

	_, err := AndThen(failing, counted).Apply(1)
	assert.ErrorIs(t, err, boom)
	assert.Zero(t, calls)
}

func TestPredicate_Combinators(t *testing.T) {
	pos := Pred("pos", func(i int) bool { return i > 0 })
	even := Pred("even", func(i int) bool { return i%2 == 0 })

	tests := []struct {
		name string
		p    Predicate[int]
		in   int
		want bool
		str  string
	}{
		{"and true", pos.And(even), 2, true, "(pos&&even)"},
		{"and false", pos.And(even), 3, false, "(pos&&even)"},
		{"or true", pos.Or(even), -2, true, "(pos||even)"},
		{"or false", pos.Or(even), -3, false, "(pos||even)"},
		{"negate", pos.Negate(), -1, true, "!pos"},
		{"nested", pos.And(even).Negate(), 2, false, "!(pos&&even)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.p.Test(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.str, tt.p.String())
		})
	}
}

func TestPredicate_CombinatorPropagatesError(t *testing.T) {
	boom := errors.New("boom")
	bad := FalliblePred("bad", func(int) (bool, error) {
		return false, boom
	})
	ok := Pred("ok", func(int) bool { return true })

	_, err := ok.And(bad).Test(1)
	assert.ErrorIs(t, err, boom)
	_, err = bad.Or(ok).Test(1)
	assert.ErrorIs(t, err, boom)
	_, err = bad.Negate().Test(1)
	assert.ErrorIs(t, err, boom)
}

func TestNewPredicate_InvalidArguments(t *testing.T) {
	_, err := NewPredicate("", func(int) bool { return true })
	assert.ErrorIs(t, err, ErrInvalidArgument)

	_, err = NewPredicate[int]("p", nil)
	assert.ErrorIs(t, err, ErrInvalidArgument)

	assert.Panics(t, func() { Pred[int]("p", nil) })
}

func TestDisplayNameFormatting_Properties(t *testing.T) {
	name := rapid.StringMatching(`[a-zA-Z\[\]0-9]{1,12}`)

	rapid.Check(t, func(rt *rapid.T) {
		fn := name.Draw(rt, "f")
		gn := name.Draw(rt, "g")
		pn := name.Draw(rt, "p")
		qn := name.Draw(rt, "q")

		f := Func(fn, func(i int) int { return i })
		g := Func(gn, func(i int) int { return i })
		p := Pred(pn, func(int) bool { return true })
		q := Pred(qn, func(int) bool { return false })

		if got := AndThen(f, g).String(); got != f.String()+"->"+g.String() {
			rt.Fatalf("AndThen name = %q", got)
		}
		if got := Compose(f, g).String(); got != g.String()+"->"+f.String() {
			rt.Fatalf("Compose name = %q", got)
		}
		if got := p.And(q).String(); got != "("+p.String()+"&&"+q.String()+")" {
			rt.Fatalf("And name = %q", got)
		}
		if got := p.Or(q).String(); got != "("+p.String()+"||"+q.String()+")" {
			rt.Fatalf("Or name = %q", got)
		}
		if got := p.Negate().String(); got != "!"+p.String() {
			rt.Fatalf("Negate name = %q", got)
		}
	})
}
