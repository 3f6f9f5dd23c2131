package suite

// File is the YAML structure of a suite file.
type File struct {
	Version  string         `yaml:"version"`
	Name     string         `yaml:"name"`
	Matchers []Definition   `yaml:"matchers"`
	Metadata map[string]any `yaml:"metadata,omitempty"`
}

// Definition is one named matcher.
type Definition struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description,omitempty"`
	Node        `yaml:",inline"`
}

// Node is either a composite (All or Any) or a leaf (Function and
// Predicate). Function and predicate are compact registry
// references; a leaf without a function tests the subject itself.
type Node struct {
	All []Node `yaml:"all,omitempty"`
	Any []Node `yaml:"any,omitempty"`

	Function      string `yaml:"function,omitempty"`
	FunctionArgs  []any  `yaml:"function_args,omitempty"`
	Predicate     string `yaml:"predicate,omitempty"`
	PredicateArgs []any  `yaml:"predicate_args,omitempty"`
}

// IsLeaf reports whether n has no children.
func (n Node) IsLeaf() bool {
	return len(n.All) == 0 && len(n.Any) == 0
}
