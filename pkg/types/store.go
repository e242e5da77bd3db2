package types

// StoredCart is one durable snapshot of a cart instance. Content is the
// serialized content structure, opaque to the store.
type StoredCart struct {
	Identifier string
	Instance   string
	Content    []byte
}

// CartStore is the durable store behind Cart.Store and Cart.Restore,
// backed by a relational table keyed by identifier.
type CartStore interface {
	// Insert persists a snapshot. Returns ErrAlreadyStored when the
	// identifier is already present.
	Insert(stored StoredCart) error

	// Exists reports whether a snapshot with the identifier is present.
	Exists(identifier string) (bool, error)

	// Get retrieves the snapshot with the identifier.
	// Returns ErrStoredCartNotFound when absent.
	Get(identifier string) (StoredCart, error)

	// Delete removes the snapshot with the identifier.
	// Returns ErrStoredCartNotFound when absent.
	Delete(identifier string) error
}
