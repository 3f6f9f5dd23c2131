package matcher

import (
	"fmt"
	"runtime/debug"
	"strings"
)

// Composite combines child matchers with AND or OR. Every child is
// evaluated exactly once per evaluation, whatever the running
// result, so a mismatch report covers every branch.
type Composite[T any] struct {
	op       Op
	children []Matcher[T]
}

// NewComposite builds an AND or OR node. It needs at least one
// child, and no child may be nil, typed nils included.
func NewComposite[T any](
	op Op,
	children ...Matcher[T],
) (*Composite[T], error) {
	if op != OpAnd && op != OpOr {
		return nil, fmt.Errorf(
			"composite: unsupported op %q: %w", op, ErrInvalidArgument,
		)
	}
	if len(children) == 0 {
		return nil, fmt.Errorf(
			"composite %s: no children: %w", op, ErrIllegalState,
		)
	}
	for i, c := range children {
		if IsNil(c) {
			return nil, fmt.Errorf(
				"composite %s: child %d is nil: %w",
				op, i, ErrInvalidArgument,
			)
		}
	}

	kids := make([]Matcher[T], len(children))
	copy(kids, children)
	return &Composite[T]{op: op, children: kids}, nil
}

// AllOf is the panicking form of NewComposite(OpAnd, ...).
func AllOf[T any](children ...Matcher[T]) *Composite[T] {
	c, err := NewComposite(OpAnd, children...)
	if err != nil {
		panic(err)
	}
	return c
}

// AnyOf is the panicking form of NewComposite(OpOr, ...).
func AnyOf[T any](children ...Matcher[T]) *Composite[T] {
	c, err := NewComposite(OpOr, children...)
	if err != nil {
		panic(err)
	}
	return c
}

// Op returns OpAnd or OpOr.
func (c *Composite[T]) Op() Op {
	return c.op
}

// Children returns a copy of the child list.
func (c *Composite[T]) Children() []Matcher[T] {
	out := make([]Matcher[T], len(c.children))
	copy(out, c.children)
	return out
}

// DescribeTo writes "{op}:[", each child one level deeper, then
// "]".
func (c *Composite[T]) DescribeTo(d *Description) {
	d.Line(c.op.String() + ":[")
	d.Nested(func() {
		for _, child := range c.children {
			child.DescribeTo(d)
		}
	})
	d.Line("]")
}

// Evaluate runs every child and folds the results with AND or OR.
// It never panics: a panicking child becomes a failed child, named
// by its type when describing it panics as well.
func (c *Composite[T]) Evaluate(s *Session, subject T) *Outcome {
	s = ensure(s)
	out := &Outcome{
		Op:       c.op,
		Passed:   c.op == OpAnd,
		Children: make([]*Outcome, 0, len(c.children)),
	}

	for _, child := range c.children {
		co := evaluateChild(s, child, subject)
		out.Children = append(out.Children, co)

		if c.op == OpAnd {
			out.Passed = out.Passed && co.Passed
		} else {
			out.Passed = out.Passed || co.Passed
		}
	}
	return out
}

func evaluateChild[T any](
	s *Session,
	child Matcher[T],
	subject T,
) (o *Outcome) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		o = contained(s, child, failureFromPanic(r, debug.Stack()))
	}()

	o = child.Evaluate(s, subject)
	if o == nil {
		o = contained(s, child, &Failure{
			Kind:    "nil",
			Message: "matcher returned no outcome",
		})
	}
	return o
}

func contained[T any](s *Session, child Matcher[T], f *Failure) *Outcome {
	exp := flatten(Expectation(child))
	s.capture(exp, f)
	return &Outcome{
		Op:          OpLeaf,
		Expectation: exp,
		Failure:     f,
		Diagnostic:  exp + " failed with " + f.Error() + s.stackSuffix(f),
	}
}

// flatten joins a multi-line expectation into one line, so
// "and:[\n  p\n  q\n]" becomes "and:[p, q]".
func flatten(text string) string {
	lines := strings.Split(text, "\n")
	if len(lines) == 1 {
		return text
	}

	var b strings.Builder
	prev := ""
	for i, line := range lines {
		line = strings.TrimSpace(line)
		if i > 0 && !strings.HasSuffix(prev, "[") && !strings.HasPrefix(line, "]") {
			b.WriteString(", ")
		}
		b.WriteString(line)
		prev = line
	}
	return b.String()
}
