package postprocess

import (
	"fmt"
	"sync"
)

// Registry stores postprocessor implementations keyed by name.
type Registry struct {
	postprocessors map[string]Postprocessor
	mu             sync.RWMutex
}

// NewRegistry creates a new postprocessor registry.
func NewRegistry() *Registry {
	return &Registry{
		postprocessors: make(map[string]Postprocessor),
	}
}

// Register adds a postprocessor under the given name.
func (r *Registry) Register(name string, p Postprocessor) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.postprocessors[name]; exists {
		return fmt.Errorf("postprocess: register %q: %w", name, ErrAlreadyRegistered)
	}

	r.postprocessors[name] = p
	return nil
}

// Get retrieves a postprocessor by name.
func (r *Registry) Get(name string) (Postprocessor, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.postprocessors[name]
	return p, ok
}

// Delete removes the postprocessor registered under name, if any.
func (r *Registry) Delete(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.postprocessors, name)
}
