package registry

import "fmt"

// Library is a bundle of functions and predicates installed into a
// registry in one step.
type Library interface {
	// Name returns the library's unique name.
	Name() string
	// Install registers the library's callables into r.
	Install(r *Registry) error
}

// Install installs lib once. Installing a library a second time is
// a no-op.
func (r *Registry) Install(lib Library) error {
	if lib == nil {
		return fmt.Errorf("install: nil library")
	}
	name := lib.Name()
	if name == "" {
		return fmt.Errorf("install: library name cannot be empty")
	}

	r.mu.RLock()
	done := r.installed[name]
	r.mu.RUnlock()
	if done {
		return nil
	}

	if err := lib.Install(r); err != nil {
		return fmt.Errorf("install library %q: %w", name, err)
	}

	r.mu.Lock()
	r.installed[name] = true
	r.mu.Unlock()
	return nil
}

// Installed reports whether a library named name was installed.
func (r *Registry) Installed(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.installed[name]
}

// Libraries returns the installed library names, sorted.
func (r *Registry) Libraries() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return sortedKeys(r.installed)
}

// LibraryFunc adapts a name and an install function to Library.
type LibraryFunc struct {
	LibName string
	Fn      func(r *Registry) error
}

// Name returns LibName.
func (l LibraryFunc) Name() string { return l.LibName }

// Install calls Fn.
func (l LibraryFunc) Install(r *Registry) error { return l.Fn(r) }
