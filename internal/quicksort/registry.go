package quicksort

import (
	"errors"
	"fmt"
	"sort"
	"sync"
)

// ErrUnknownScheme is returned by Registry.Get for unregistered names.
var ErrUnknownScheme = errors.New("unknown partition scheme")

// Registry maps scheme names to implementations.
type Registry struct {
	mu      sync.RWMutex
	schemes map[string]Scheme
	order   []string
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{schemes: make(map[string]Scheme)}
}

// NewDefaultRegistry returns a registry holding Lomuto then Hoare.
func NewDefaultRegistry() *Registry {
	r := NewRegistry()
	r.MustRegister(Lomuto{})
	r.MustRegister(Hoare{})
	return r
}

var (
	globalRegistry     *Registry
	globalRegistryOnce sync.Once
)

// GlobalRegistry returns a process-wide default registry.
func GlobalRegistry() *Registry {
	globalRegistryOnce.Do(func() { globalRegistry = NewDefaultRegistry() })
	return globalRegistry
}

// Register adds s under s.Name(). Registering a name twice fails.
func (r *Registry) Register(s Scheme) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	name := s.Name()
	if _, exists := r.schemes[name]; exists {
		return fmt.Errorf("partition scheme %q already registered", name)
	}
	r.schemes[name] = s
	r.order = append(r.order, name)
	return nil
}

// MustRegister is like Register but panics on error.
func (r *Registry) MustRegister(s Scheme) {
	if err := r.Register(s); err != nil {
		panic(err)
	}
}

// Get returns the scheme registered under name.
func (r *Registry) Get(name string) (Scheme, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.schemes[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownScheme, name)
	}
	return s, nil
}

// List returns the registered names in alphabetical order.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.schemes))
	for name := range r.schemes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// All returns every registered scheme in registration order.
func (r *Registry) All() []Scheme {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Scheme, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.schemes[name])
	}
	return out
}
