// Package types defines the cart entities (LineItem, Options, Content),
// the collaborator interfaces (SessionStore, Dispatcher, CartStore, Buyable),
// the configuration struct, and the standard errors for the Cartbox library.
package types
