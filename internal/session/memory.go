// Package session provides SessionStore implementations: an in-memory
// store for embedding in web handlers and tests, and a file-backed store
// that lets the CLI keep a cart between invocations.
package session

import (
	"sync"

	"github.com/dukaforge/cartbox/pkg/types"
)

// Memory is an in-memory session store. It guards its map with a mutex so
// a single store can back several request-scoped carts, but it offers no
// read-modify-write coordination: concurrent writers to one key resolve
// last-write-wins, matching the session semantics the cart assumes.
type Memory struct {
	mu      sync.RWMutex
	entries map[string]*types.Content
}

var _ types.SessionStore = (*Memory)(nil)

// NewMemory returns an empty in-memory session store.
func NewMemory() *Memory {
	return &Memory{entries: make(map[string]*types.Content)}
}

// Get returns the content stored under key.
func (m *Memory) Get(key string) (*types.Content, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	content, ok := m.entries[key]
	return content, ok
}

// Put stores content under key, replacing any previous value.
func (m *Memory) Put(key string, content *types.Content) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[key] = content
}

// Has reports whether key is present.
func (m *Memory) Has(key string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.entries[key]
	return ok
}

// Remove deletes key. Removing an absent key is a no-op.
func (m *Memory) Remove(key string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.entries, key)
}

// Len returns the number of stored session entries.
func (m *Memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.entries)
}
