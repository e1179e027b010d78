package model

import (
	"fmt"
	"sort"
	"sync"
)

// Registry stores model implementations keyed by name so downstream
// packages can plug their models in and resolve them from manifests.
type Registry struct {
	models map[string]Model
	mu     sync.RWMutex
}

// NewRegistry creates a new model registry.
func NewRegistry() *Registry {
	return &Registry{
		models: make(map[string]Model),
	}
}

// Register adds a model under the given name. Registering the same name
// twice is a caller bug and fails with ErrAlreadyRegistered.
func (r *Registry) Register(name string, m Model) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.models[name]; exists {
		return fmt.Errorf("model: register %q: %w", name, ErrAlreadyRegistered)
	}

	r.models[name] = m
	return nil
}

// Get retrieves a model by name.
func (r *Registry) Get(name string) (Model, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	m, ok := r.models[name]
	return m, ok
}

// Names returns the registered model names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.models))
	for name := range r.models {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

// Delete removes the model registered under name, if any.
func (r *Registry) Delete(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.models, name)
}
