package matcher

// Op identifies the kind of a matcher node.
type Op int

const (
	// OpLeaf is a single (function, predicate) check.
	OpLeaf Op = iota
	// OpAnd passes when every child passes.
	OpAnd
	// OpOr passes when at least one child passes.
	OpOr
)

// String returns "leaf", "and" or "or".
func (o Op) String() string {
	switch o {
	case OpLeaf:
		return "leaf"
	case OpAnd:
		return "and"
	case OpOr:
		return "or"
	default:
		return "unknown"
	}
}

// Outcome is the evaluation result of one node. Its shape mirrors
// the matcher tree.
type Outcome struct {
	Op     Op
	Passed bool

	// Expectation is the node's own expectation text (leaves and
	// contained child failures only).
	Expectation string

	// Diagnostic is the mismatch fragment of a leaf.
	Diagnostic string

	// Failure is the failure captured at this node, if any.
	Failure *Failure

	Children []*Outcome
}

// Result is the outcome of evaluating a whole matcher tree
// against one subject.
type Result struct {
	Passed   bool
	Outcome  *Outcome
	Failures []CapturedFailure
}
