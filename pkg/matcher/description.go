package matcher

import (
	"fmt"
	"strconv"
	"strings"
)

// DefaultIndent is one nesting level in rendered descriptions.
const DefaultIndent = "  "

// Description accumulates rendered text line by line. The nesting
// depth is explicit state of the description, so nested matchers
// render at their own depth and two descriptions never share it.
type Description struct {
	b     strings.Builder
	unit  string
	depth int
	lines int
}

// NewDescription returns an empty description that indents each
// nesting level by indent.
func NewDescription(indent string) *Description {
	return &Description{unit: indent}
}

// Depth returns the current nesting depth.
func (d *Description) Depth() int {
	return d.depth
}

// Nested runs fn one level deeper. The previous depth is restored
// when fn returns or panics.
func (d *Description) Nested(fn func()) {
	prev := d.depth
	d.depth = prev + 1
	defer func() { d.depth = prev }()
	fn()
}

// Line starts a new line at the current depth. Continuation lines
// of a multi-line text are indented one level deeper.
func (d *Description) Line(text string) {
	for i, part := range strings.Split(text, "\n") {
		if d.lines > 0 {
			d.b.WriteByte('\n')
		}
		depth := d.depth
		if i > 0 {
			depth++
		}
		d.b.WriteString(strings.Repeat(d.unit, depth))
		d.b.WriteString(part)
		d.lines++
	}
}

// Append writes s at the current position without starting a new
// line.
func (d *Description) Append(s string) {
	d.b.WriteString(s)
}

// AppendMismatch renders an outcome tree: a leaf as its diagnostic,
// a composite as a block listing only its failing children and
// closed with "]->{passed}".
func (d *Description) AppendMismatch(o *Outcome) {
	if o.Op == OpLeaf {
		d.Line(o.Diagnostic)
		return
	}

	d.Line(o.Op.String() + ":[")
	d.Nested(func() {
		for _, child := range o.Children {
			if !child.Passed {
				d.AppendMismatch(child)
			}
		}
	})
	d.Line("]->" + strconv.FormatBool(o.Passed))
}

// String returns the rendered text.
func (d *Description) String() string {
	return d.b.String()
}

// FormatValue renders a value for diagnostic text: strings are
// quoted, string slices use %q, nil is "nil", and everything else
// uses %v.
func FormatValue(v any) string {
	switch x := v.(type) {
	case nil:
		return "nil"
	case string:
		return strconv.Quote(x)
	case []string:
		return fmt.Sprintf("%q", x)
	}
	return fmt.Sprintf("%v", v)
}
