// Package sqlite provides the public API for the SQLite stored-cart
// store. It exposes the factory function while keeping the implementation
// internal.
package sqlite

import (
	"github.com/dukaforge/cartbox/internal/sqlite"
	"github.com/dukaforge/cartbox/pkg/types"
)

// Store is the SQLite-backed types.CartStore. Close it when done.
type Store = sqlite.Store

// Open opens (creating when missing) the stored-cart database at path.
// An empty table name selects "shoppingcart".
//
// Example:
//
//	store, err := sqlite.Open(".cartbox-db/carts.db", "")
//	if err != nil { ... }
//	defer store.Close()
//	cart.SetStore(store)
func Open(path, table string) (*Store, error) {
	return sqlite.Open(path, table)
}

// Interface conformance check for the public alias.
var _ types.CartStore = (*Store)(nil)
