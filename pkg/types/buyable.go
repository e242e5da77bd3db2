package types

import "github.com/shopspring/decimal"

// Buyable is the capability exposed by external domain objects the cart
// can ingest directly. Each accessor takes the option bag of the line
// being built, so a product may vary its price or name per option set.
type Buyable interface {
	// BuyableIdentifier returns the identifier of the purchasable entity.
	BuyableIdentifier(options Options) string

	// BuyableName returns the display name.
	BuyableName(options Options) string

	// BuyableDescription returns the display description.
	BuyableDescription(options Options) string

	// BuyablePrice returns the unit price.
	BuyablePrice(options Options) decimal.Decimal

	// BuyableDiscountable reports whether promotional discounts may apply.
	BuyableDiscountable(options Options) bool
}
