package types

// SessionStore is the narrow contract the cart uses for per-session
// state. Keys are namespaced as "cart." + instance name. Implementations
// are request-scoped; the cart performs no locking of its own, so two
// simultaneous writers to the same key resolve last-write-wins.
type SessionStore interface {
	// Get returns the content stored under key and whether it exists.
	Get(key string) (*Content, bool)

	// Put stores content under key, replacing any previous value.
	Put(key string, content *Content)

	// Has reports whether key is present.
	Has(key string) bool

	// Remove deletes key. Removing an absent key is a no-op.
	Remove(key string)
}
