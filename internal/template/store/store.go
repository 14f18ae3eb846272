// Package store defines how templates are looked up by file extension.
package store

// Store resolves templates for file extensions.
type Store interface {
	// Lookup returns the raw value registered for extension and whether one exists.
	// The value is not guaranteed to be a string; callers type-check it.
	Lookup(extension string) (any, bool)
	// IsExecutable reports whether files with extension are created executable.
	IsExecutable(extension string) bool
}

// MapStore is an in-memory Store.
type MapStore struct {
	// Templates maps extension to template value as decoded from configuration.
	Templates map[string]any
	// Executable lists extensions whose files get the owner execute bit.
	Executable []string
}

// NewMapStore creates a MapStore from string templates.
func NewMapStore(templates map[string]string, executable ...string) *MapStore {
	m := make(map[string]any, len(templates))
	for ext, tmpl := range templates {
		m[ext] = tmpl
	}
	return &MapStore{Templates: m, Executable: executable}
}

// Lookup implements Store.
func (s *MapStore) Lookup(extension string) (any, bool) {
	v, ok := s.Templates[extension]
	return v, ok
}

// IsExecutable implements Store.
func (s *MapStore) IsExecutable(extension string) bool {
	for _, ext := range s.Executable {
		if ext == extension {
			return true
		}
	}
	return false
}
