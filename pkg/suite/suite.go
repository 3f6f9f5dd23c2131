// Package suite loads named matcher definitions from YAML files and
// builds them into matchers over untyped subjects.
package suite

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"gopkg.in/yaml.v3"

	"digital.vasic.matchers/pkg/matcher"
	"digital.vasic.matchers/pkg/registry"
)

// Suite holds matcher definitions loaded from files.
type Suite struct {
	mu          sync.RWMutex
	registry    *registry.Registry
	definitions map[string]*Definition
	sources     []string
}

// Option configures a Suite.
type Option func(*Suite)

// WithRegistry resolves references against r instead of
// registry.Default.
func WithRegistry(r *registry.Registry) Option {
	return func(s *Suite) {
		if r != nil {
			s.registry = r
		}
	}
}

// New creates an empty suite.
func New(opts ...Option) *Suite {
	s := &Suite{
		registry:    registry.Default,
		definitions: make(map[string]*Definition),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Parse decodes a suite file without validating it.
func Parse(data []byte) (*File, error) {
	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse suite: %w", err)
	}
	return &file, nil
}

// Add validates file and adds its definitions. source names the
// file in errors. Nothing is added when any problem is found.
func (s *Suite) Add(file *File, source string) error {
	if err := s.Validate(file); err != nil {
		return fmt.Errorf("suite %s: %w", source, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range file.Matchers {
		if _, exists := s.definitions[file.Matchers[i].Name]; exists {
			return fmt.Errorf(
				"suite %s: matcher %q already loaded",
				source, file.Matchers[i].Name,
			)
		}
	}
	for i := range file.Matchers {
		def := file.Matchers[i]
		s.definitions[def.Name] = &def
	}
	s.sources = append(s.sources, source)
	return nil
}

// LoadFile reads, validates and adds a YAML suite file.
func (s *Suite) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read suite file %s: %w", path, err)
	}

	file, err := Parse(data)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return s.Add(file, path)
}

// LoadDir loads every .yaml and .yml file in dir.
func (s *Suite) LoadDir(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("read suite directory %s: %w", dir, err)
	}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := filepath.Ext(entry.Name())
		if ext != ".yaml" && ext != ".yml" {
			continue
		}
		if err := s.LoadFile(filepath.Join(dir, entry.Name())); err != nil {
			return err
		}
	}
	return nil
}

// Get returns the definition called name.
func (s *Suite) Get(name string) (*Definition, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	def, ok := s.definitions[name]
	return def, ok
}

// Names returns the loaded matcher names, sorted.
func (s *Suite) Names() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	names := make([]string, 0, len(s.definitions))
	for name := range s.definitions {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Count returns the number of loaded definitions.
func (s *Suite) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.definitions)
}

// Sources returns the loaded sources in load order.
func (s *Suite) Sources() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]string, len(s.sources))
	copy(result, s.sources)
	return result
}

// Build turns the definition called name into a matcher.
func (s *Suite) Build(name string) (matcher.Matcher[any], error) {
	def, ok := s.Get(name)
	if !ok {
		return nil, fmt.Errorf("matcher %q not found", name)
	}
	m, err := s.build(def.Node)
	if err != nil {
		return nil, fmt.Errorf("build matcher %q: %w", name, err)
	}
	return m, nil
}

func (s *Suite) build(n Node) (matcher.Matcher[any], error) {
	if n.IsLeaf() {
		return s.buildLeaf(n)
	}

	op, nodes := matcher.OpAnd, n.All
	if len(n.Any) > 0 {
		op, nodes = matcher.OpOr, n.Any
	}

	children := make([]matcher.Matcher[any], 0, len(nodes))
	for _, child := range nodes {
		m, err := s.build(child)
		if err != nil {
			return nil, err
		}
		children = append(children, m)
	}
	return matcher.NewComposite(op, children...)
}

func (s *Suite) buildLeaf(n Node) (matcher.Matcher[any], error) {
	ref := n.Function
	if ref == "" {
		ref = "identity"
	}

	fn, err := s.registry.ResolveFunctionRef(ref, n.FunctionArgs...)
	if err != nil {
		return nil, err
	}
	pred, err := s.registry.ResolvePredicateRef(n.Predicate, n.PredicateArgs...)
	if err != nil {
		return nil, err
	}
	return matcher.NewLeaf(fn, pred)
}
