package types

import (
	"crypto/md5"
	"encoding/hex"

	"github.com/shopspring/decimal"

	"github.com/dukaforge/cartbox/pkg/tax"
)

// Line item kinds. Items placed in the items partition use KindItem;
// detail lines (discounts, shipping, fees) use any of the others.
const (
	KindItem       = "item"
	KindSubtotal   = "subtotal"
	KindDiscount   = "discount"
	KindShipping   = "shipping"
	KindAdjustment = "adjustment"
	KindAdminFees  = "adminfees"
)

// validKinds is the set of recognized line item kinds.
var validKinds = map[string]bool{
	KindItem:       true,
	KindSubtotal:   true,
	KindDiscount:   true,
	KindShipping:   true,
	KindAdjustment: true,
	KindAdminFees:  true,
}

// ValidKind reports whether k is a recognized line item kind.
func ValidKind(k string) bool { return validKinds[k] }

var percentScale = decimal.NewFromInt(100)

// LineItem is a priced, quantified row in the cart: either a catalog item
// or a non-catalog detail charge. Its RowID is a pure function of the
// identifier and the option set, so renaming or repricing a row never
// changes its identity, while changing the identifier or options does.
type LineItem struct {
	RowID           string          `json:"row_id"`
	ID              string          `json:"id"`
	Kind            string          `json:"kind"`
	Name            string          `json:"name"`
	Description     string          `json:"description,omitempty"`
	Price           decimal.Decimal `json:"price"`
	Quantity        decimal.Decimal `json:"quantity"`
	TaxRate         decimal.Decimal `json:"tax_rate"`
	TaxApplies      bool            `json:"tax_applies"`
	TaxIncluded     bool            `json:"tax_included"`
	Discountable    bool            `json:"discountable"`
	Options         Options         `json:"options,omitempty"`
	AssociatedModel string          `json:"associated_model,omitempty"`
}

// ItemSpec is the attribute-bag form of a line item, used by the
// spec-based construction path and by callers that assemble items from
// request payloads.
type ItemSpec struct {
	ID           string
	Name         string
	Description  string
	Price        decimal.Decimal
	Quantity     decimal.Decimal
	Kind         string
	Discountable bool
	Options      Options
}

// ItemPatch is a partial update of a line item. Nil fields leave the
// current value unchanged. Changing ID or Options changes the row's
// identity; callers must re-key the row afterward.
type ItemPatch struct {
	ID          *string
	Name        *string
	Description *string
	Price       *decimal.Decimal
	Quantity    *decimal.Decimal
	Options     *Options
}

// NewItem constructs a validated line item from positional attributes.
// The identifier and name must be non-empty and the price non-negative.
// An empty kind defaults to KindItem. The RowID is computed immediately.
func NewItem(id, name, description string, price decimal.Decimal, kind string, discountable bool, options Options) (*LineItem, error) {
	if id == "" {
		return nil, ErrInvalidID
	}
	if name == "" {
		return nil, ErrInvalidName
	}
	if price.IsNegative() {
		return nil, ErrInvalidPrice
	}
	if kind == "" {
		kind = KindItem
	}
	if !validKinds[kind] {
		return nil, ErrInvalidKind
	}

	li := &LineItem{
		ID:           id,
		Kind:         kind,
		Name:         name,
		Description:  description,
		Price:        price,
		Discountable: discountable,
		Options:      options.Clone(),
	}
	li.RowID = computeRowID(id, options)
	return li, nil
}

// NewItemFromSpec constructs a line item from an attribute bag.
func NewItemFromSpec(spec ItemSpec) (*LineItem, error) {
	return NewItem(spec.ID, spec.Name, spec.Description, spec.Price, spec.Kind, spec.Discountable, spec.Options)
}

// NewItemFromBuyable constructs a line item by reading the identifier,
// name, description, price, and discountability from a purchasable domain
// object, each accessor parameterized by the option bag.
func NewItemFromBuyable(b Buyable, options Options) (*LineItem, error) {
	return NewItem(
		b.BuyableIdentifier(options),
		b.BuyableName(options),
		b.BuyableDescription(options),
		b.BuyablePrice(options),
		KindItem,
		b.BuyableDiscountable(options),
		options,
	)
}

// NewDetailFromSpec constructs a detail line item. The kind must be one of
// the detail kinds; KindItem is rejected.
func NewDetailFromSpec(spec ItemSpec) (*LineItem, error) {
	if spec.Kind == "" || spec.Kind == KindItem {
		return nil, ErrInvalidKind
	}
	return NewItemFromSpec(spec)
}

// NewDetailFromBuyable always fails: detail lines are charges, not catalog
// entities, so the buyable construction path is unsupported for them.
func NewDetailFromBuyable(Buyable, Options) (*LineItem, error) {
	return nil, ErrDetailFromBuyable
}

// Subtotal returns quantity * price, before any tax.
func (li *LineItem) Subtotal() decimal.Decimal {
	return li.Quantity.Mul(li.Price)
}

// Taxed returns the tax amount on the subtotal, or zero when tax does not
// apply to this line. The rate is stored as a fraction and converted to a
// percentage at the tax function boundary.
func (li *LineItem) Taxed() decimal.Decimal {
	if !li.TaxApplies {
		return decimal.Zero
	}
	return tax.Amount(li.Subtotal(), li.TaxRate.Mul(percentScale), li.TaxIncluded)
}

// Total returns the amount payable for this line. Tax is added on top of
// the subtotal only when it applies and is not already embedded in the
// price.
func (li *LineItem) Total() decimal.Decimal {
	if li.TaxApplies && !li.TaxIncluded {
		return li.Subtotal().Add(li.Taxed())
	}
	return li.Subtotal()
}

// Taxable returns the base amount the tax was computed on: zero when tax
// does not apply, total minus tax when the price embeds the tax, and the
// subtotal otherwise.
func (li *LineItem) Taxable() decimal.Decimal {
	if !li.TaxApplies {
		return decimal.Zero
	}
	if li.TaxIncluded {
		return li.Total().Sub(li.Taxed())
	}
	return li.Subtotal()
}

// SetQuantity sets the quantity. Zero and negative values are accepted at
// the entity level; the cart decides whether such a transition removes
// the row.
func (li *LineItem) SetQuantity(q decimal.Decimal) {
	li.Quantity = q
}

// SetTaxRate configures taxation for this line. The rate is a fraction
// (0.06 for 6%); included marks the price as already embedding the tax.
func (li *LineItem) SetTaxRate(rate decimal.Decimal, included bool) {
	li.TaxRate = rate
	li.TaxIncluded = included
	li.TaxApplies = true
}

// Associate attaches the name of an external domain model to this line.
// The reference is informational; nothing in the cart dereferences it.
func (li *LineItem) Associate(typeName string) {
	li.AssociatedModel = typeName
}

// UpdateFromBuyable overwrites the identifier, name, description, and
// price from a purchasable object and recomputes the RowID. The caller
// must re-key the row when the identity changed.
func (li *LineItem) UpdateFromBuyable(b Buyable) {
	li.ID = b.BuyableIdentifier(li.Options)
	li.Name = b.BuyableName(li.Options)
	li.Description = b.BuyableDescription(li.Options)
	li.Price = b.BuyablePrice(li.Options)
	li.RowID = computeRowID(li.ID, li.Options)
}

// Apply overwrites the fields present in the patch, leaving the rest
// unchanged, and recomputes the RowID. The same construction invariants
// hold: a patched identifier or name must be non-empty and a patched
// price non-negative.
func (li *LineItem) Apply(patch ItemPatch) error {
	if patch.ID != nil && *patch.ID == "" {
		return ErrInvalidID
	}
	if patch.Name != nil && *patch.Name == "" {
		return ErrInvalidName
	}
	if patch.Price != nil && patch.Price.IsNegative() {
		return ErrInvalidPrice
	}

	if patch.ID != nil {
		li.ID = *patch.ID
	}
	if patch.Name != nil {
		li.Name = *patch.Name
	}
	if patch.Description != nil {
		li.Description = *patch.Description
	}
	if patch.Price != nil {
		li.Price = *patch.Price
	}
	if patch.Quantity != nil {
		li.Quantity = *patch.Quantity
	}
	if patch.Options != nil {
		li.Options = patch.Options.Clone()
	}

	li.RowID = computeRowID(li.ID, li.Options)
	return nil
}

// computeRowID derives the row identity from the identifier and the
// canonical encoding of the sorted options. Price, quantity, and name
// never contribute.
func computeRowID(id string, options Options) string {
	sum := md5.Sum([]byte(id + "|" + options.canonical()))
	return hex.EncodeToString(sum[:])
}
