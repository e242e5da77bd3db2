package types

import "sync"

// ModelRegistry records the external domain model names a cart may
// associate line items with. Associating by type-name string requires the
// name to be registered here; associating a live value does not.
type ModelRegistry struct {
	mu    sync.RWMutex
	names map[string]bool
}

// NewModelRegistry returns an empty registry.
func NewModelRegistry() *ModelRegistry {
	return &ModelRegistry{names: make(map[string]bool)}
}

// Register records name as a known model.
func (r *ModelRegistry) Register(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.names[name] = true
}

// Resolve reports whether name is a known model.
func (r *ModelRegistry) Resolve(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.names[name]
}
