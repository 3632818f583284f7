package descriptor

import (
	"fmt"
	"sort"
	"sync"
)

// Resolver looks up the descriptor backing a named type reference. The
// builder consults it whenever a field or variant points at a user type.
type Resolver interface {
	Resolve(name string) (Type, error)
}

// UnsupportedTypeReferenceError reports a named reference that no descriptor
// source could normalize. The schema builder propagates it unchanged rather
// than guessing a mapping.
type UnsupportedTypeReferenceError struct {
	Name string
}

func (e UnsupportedTypeReferenceError) Error() string {
	return fmt.Sprintf("descriptor: unsupported type reference %q", e.Name)
}

// Registry stores descriptors by type name, providing lookup and duplication
// safeguards. It satisfies Resolver and is safe for concurrent use.
type Registry struct {
	mu    sync.RWMutex
	types map[string]Type
}

// NewRegistry creates an empty registry instance.
func NewRegistry() *Registry {
	return &Registry{
		types: make(map[string]Type),
	}
}

// Register adds a descriptor by its Name. Duplicate names return an error.
func (r *Registry) Register(t Type) error {
	if t.Name == "" {
		return fmt.Errorf("descriptor: type name is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.types[t.Name]; exists {
		return fmt.Errorf("descriptor: type %q already registered", t.Name)
	}

	r.types[t.Name] = t
	return nil
}

// MustRegister panics on registration failure. Useful for init-time wiring.
func (r *Registry) MustRegister(t Type) {
	if err := r.Register(t); err != nil {
		panic(err)
	}
}

// Resolve retrieves a descriptor by name, returning
// UnsupportedTypeReferenceError when the name is unknown.
func (r *Registry) Resolve(name string) (Type, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	t, ok := r.types[name]
	if !ok {
		return Type{}, UnsupportedTypeReferenceError{Name: name}
	}
	return t, nil
}

// Has reports whether a descriptor is registered under name.
func (r *Registry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.types[name]
	return ok
}

// List returns a sorted list of registered type names.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.types))
	for name := range r.types {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
