package preprocess

import (
	"fmt"
	"sync"
)

// Registry stores preprocessor implementations keyed by name.
type Registry struct {
	preprocessors map[string]Preprocessor
	mu            sync.RWMutex
}

// NewRegistry creates a new preprocessor registry.
func NewRegistry() *Registry {
	return &Registry{
		preprocessors: make(map[string]Preprocessor),
	}
}

// Register adds a preprocessor under the given name.
func (r *Registry) Register(name string, p Preprocessor) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.preprocessors[name]; exists {
		return fmt.Errorf("preprocess: register %q: %w", name, ErrAlreadyRegistered)
	}

	r.preprocessors[name] = p
	return nil
}

// Get retrieves a preprocessor by name.
func (r *Registry) Get(name string) (Preprocessor, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.preprocessors[name]
	return p, ok
}

// Delete removes the preprocessor registered under name, if any.
func (r *Registry) Delete(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.preprocessors, name)
}
