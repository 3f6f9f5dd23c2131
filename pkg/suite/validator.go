package suite

import (
	"fmt"

	"github.com/hashicorp/go-multierror"
)

// ValidationError is one problem found in a suite file.
type ValidationError struct {
	Path    string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Path, e.Message)
}

// Validate checks the structure of file and that every reference
// resolves. All problems are returned together.
func (s *Suite) Validate(file *File) error {
	var errs *multierror.Error
	add := func(path, format string, args ...any) {
		errs = multierror.Append(errs, ValidationError{
			Path:    path,
			Message: fmt.Sprintf(format, args...),
		})
	}

	if file == nil {
		add("file", "is empty")
		return errs.ErrorOrNil()
	}
	if file.Version == "" {
		add("version", "version is required")
	}
	if len(file.Matchers) == 0 {
		add("matchers", "at least one matcher is required")
	}

	names := make(map[string]bool)
	for i, def := range file.Matchers {
		path := fmt.Sprintf("matchers[%d]", i)
		switch {
		case def.Name == "":
			add(path+".name", "matcher name is required")
		case names[def.Name]:
			add(path+".name", "duplicate name: %s", def.Name)
		default:
			names[def.Name] = true
		}
		s.validateNode(path, def.Node, add)
	}

	return errs.ErrorOrNil()
}

func (s *Suite) validateNode(
	path string,
	n Node,
	add func(path, format string, args ...any),
) {
	if len(n.All) > 0 && len(n.Any) > 0 {
		add(path, "node cannot have both all and any")
		return
	}

	if !n.IsLeaf() {
		if n.Function != "" || n.Predicate != "" {
			add(path, "composite node cannot have a function or predicate")
		}
		key, nodes := "all", n.All
		if len(n.Any) > 0 {
			key, nodes = "any", n.Any
		}
		for i, child := range nodes {
			s.validateNode(fmt.Sprintf("%s.%s[%d]", path, key, i), child, add)
		}
		return
	}

	if n.Predicate == "" {
		add(path, "leaf needs a predicate")
		return
	}
	if _, err := s.buildLeaf(n); err != nil {
		add(path, "%v", err)
	}
}
