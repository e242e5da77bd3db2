package types

import "errors"

// Entity construction and mutation errors.
var (
	ErrInvalidID       = errors.New("invalid item identifier")
	ErrInvalidName     = errors.New("invalid item name")
	ErrInvalidPrice    = errors.New("invalid item price")
	ErrInvalidQuantity = errors.New("invalid item quantity")
	ErrInvalidKind     = errors.New("invalid line item kind")

	// ErrDetailFromBuyable is returned when a detail line is constructed
	// from a Buyable. Details are never tied to catalog entities.
	ErrDetailFromBuyable = errors.New("cart detail cannot be created from a buyable")
)

// Cart operation errors.
var (
	ErrRowNotFound  = errors.New("row not found")
	ErrUnknownModel = errors.New("unknown associated model")
)

// Stored-cart errors.
var (
	ErrAlreadyStored      = errors.New("cart already stored under this identifier")
	ErrStoredCartNotFound = errors.New("stored cart not found")
	ErrStoreClosed        = errors.New("cart store is closed")
	ErrNoCartStore        = errors.New("no cart store configured")
)

// Config validation errors.
var (
	ErrTaxRateOutOfRange = errors.New("tax rate must be in [0, 1)")
	ErrTableNameInvalid  = errors.New("invalid database table name")
)
