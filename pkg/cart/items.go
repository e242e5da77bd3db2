package cart

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/dukaforge/cartbox/pkg/types"
)

// AddItem builds a catalog line item from the spec, applies the
// configured global tax rate, and inserts it into the items partition.
// When a row with the same identity already exists, the quantities are
// summed onto one row. Emits cart.item_added with the merged line.
func (c *Cart) AddItem(spec types.ItemSpec) (*types.LineItem, error) {
	if spec.Quantity.Sign() <= 0 {
		return nil, types.ErrInvalidQuantity
	}
	spec.Kind = types.KindItem

	li, err := types.NewItemFromSpec(spec)
	if err != nil {
		return nil, err
	}
	li.SetQuantity(spec.Quantity)
	li.SetTaxRate(c.config.TaxRate, false)

	return c.addLine(li, false, types.EventItemAdded), nil
}

// AddItemFromBuyable builds a line item by reading the purchasable's
// accessors through the option bag, associates the purchasable's type
// with the line, and inserts it with the same merge semantics as AddItem.
func (c *Cart) AddItemFromBuyable(b types.Buyable, quantity decimal.Decimal, options types.Options) (*types.LineItem, error) {
	if quantity.Sign() <= 0 {
		return nil, types.ErrInvalidQuantity
	}

	li, err := types.NewItemFromBuyable(b, options)
	if err != nil {
		return nil, err
	}
	li.SetQuantity(quantity)
	li.SetTaxRate(c.config.TaxRate, false)
	li.Associate(fmt.Sprintf("%T", b))

	return c.addLine(li, false, types.EventItemAdded), nil
}

// AddDetail inserts an auxiliary charge line (shipping, discount, fee)
// into the details partition with merge-on-identity semantics. Details
// carry the fixed detail tax rate, not the configured item rate, and
// default to non-discountable. Emits cart.detail_added.
func (c *Cart) AddDetail(spec types.ItemSpec) (*types.LineItem, error) {
	if spec.Quantity.Sign() <= 0 {
		return nil, types.ErrInvalidQuantity
	}

	li, err := types.NewDetailFromSpec(spec)
	if err != nil {
		return nil, err
	}
	li.SetQuantity(spec.Quantity)
	li.SetTaxRate(detailTaxRate, false)

	return c.addLine(li, true, types.EventDetailAdded), nil
}

// addLine merges a freshly built line into a partition, summing the
// quantity onto any existing row with the same identity. The emitted
// payload is the merged line, not the delta.
func (c *Cart) addLine(li *types.LineItem, detail bool, event string) *types.LineItem {
	content := c.Content()
	partition := content.Items
	if detail {
		partition = content.Details
	}

	if existing, ok := partition[li.RowID]; ok {
		li.SetQuantity(existing.Quantity.Add(li.Quantity))
	}
	partition[li.RowID] = li

	c.events.Emit(event, li)
	c.persist(content)
	return li
}

// UpdateItemQuantity replaces the quantity of the row at rowID. A
// quantity of zero or less removes the row and returns a nil line.
func (c *Cart) UpdateItemQuantity(rowID string, quantity decimal.Decimal) (*types.LineItem, error) {
	return c.updateItem(rowID, func(li *types.LineItem) error {
		li.SetQuantity(quantity)
		return nil
	})
}

// UpdateItem applies a partial patch to the row at rowID. A patched
// identifier or option set changes the row's identity: the old row is
// removed and the line merges into any row already at the new identity by
// summing quantities.
func (c *Cart) UpdateItem(rowID string, patch types.ItemPatch) (*types.LineItem, error) {
	return c.updateItem(rowID, func(li *types.LineItem) error {
		return li.Apply(patch)
	})
}

// UpdateItemFromBuyable overwrites the row's identifier, name,
// description, and price from the purchasable, with the same re-keying
// rules as UpdateItem.
func (c *Cart) UpdateItemFromBuyable(rowID string, b types.Buyable) (*types.LineItem, error) {
	return c.updateItem(rowID, func(li *types.LineItem) error {
		li.UpdateFromBuyable(b)
		return nil
	})
}

// updateItem is the shared update flow: locate, mutate, re-key when the
// identity changed, delete on non-positive quantity (via the remove flow,
// emitting cart.item_removed), otherwise store and emit cart.updated.
func (c *Cart) updateItem(rowID string, mutate func(*types.LineItem) error) (*types.LineItem, error) {
	content := c.Content()
	li, ok := content.Items[rowID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", types.ErrRowNotFound, rowID)
	}

	if err := mutate(li); err != nil {
		return nil, err
	}

	if li.RowID != rowID {
		delete(content.Items, rowID)
		if existing, ok := content.Items[li.RowID]; ok {
			li.SetQuantity(existing.Quantity.Add(li.Quantity))
		}
	}

	if li.Quantity.Sign() <= 0 {
		delete(content.Items, li.RowID)
		c.events.Emit(types.EventItemRemoved, li)
		c.persist(content)
		return nil, nil
	}

	content.Items[li.RowID] = li
	c.events.Emit(types.EventUpdated, li)
	c.persist(content)
	return li, nil
}

// RemoveItem deletes the row at rowID from the items partition and emits
// cart.item_removed with the removed line.
func (c *Cart) RemoveItem(rowID string) error {
	content := c.Content()
	li, ok := content.Items[rowID]
	if !ok {
		return fmt.Errorf("%w: %s", types.ErrRowNotFound, rowID)
	}
	delete(content.Items, rowID)
	c.events.Emit(types.EventItemRemoved, li)
	c.persist(content)
	return nil
}

// RemoveDetail deletes the row at rowID from the details partition and
// emits cart.detail_removed with the removed line.
func (c *Cart) RemoveDetail(rowID string) error {
	content := c.Content()
	li, ok := content.Details[rowID]
	if !ok {
		return fmt.Errorf("%w: %s", types.ErrRowNotFound, rowID)
	}
	delete(content.Details, rowID)
	c.events.Emit(types.EventDetailRemoved, li)
	c.persist(content)
	return nil
}

// GetItem returns the item at rowID and whether it exists.
func (c *Cart) GetItem(rowID string) (*types.LineItem, bool) {
	li, ok := c.Content().Items[rowID]
	return li, ok
}

// GetDetail returns the detail at rowID and whether it exists.
func (c *Cart) GetDetail(rowID string) (*types.LineItem, bool) {
	li, ok := c.Content().Details[rowID]
	return li, ok
}

// GetItemByID returns the first item whose entity identifier matches id.
func (c *Cart) GetItemByID(id string) (*types.LineItem, bool) {
	for _, li := range c.Content().Items {
		if li.ID == id {
			return li, true
		}
	}
	return nil, false
}

// SearchItems returns the items matching the predicate.
func (c *Cart) SearchItems(pred func(*types.LineItem) bool) []*types.LineItem {
	return search(c.Content().Items, pred)
}

// SearchDetails returns the details matching the predicate.
func (c *Cart) SearchDetails(pred func(*types.LineItem) bool) []*types.LineItem {
	return search(c.Content().Details, pred)
}

func search(partition map[string]*types.LineItem, pred func(*types.LineItem) bool) []*types.LineItem {
	var out []*types.LineItem
	for _, li := range partition {
		if pred(li) {
			out = append(out, li)
		}
	}
	return out
}

// Associate attaches an external domain model reference to the item at
// rowID. A string is treated as a type name and must resolve through the
// model registry; any other value contributes its dynamic type name. The
// reference is informational and never dereferenced by the cart.
func (c *Cart) Associate(rowID string, model any) error {
	name, isName := model.(string)
	if isName {
		if c.models == nil || !c.models.Resolve(name) {
			return fmt.Errorf("%w: %s", types.ErrUnknownModel, name)
		}
	} else {
		name = fmt.Sprintf("%T", model)
	}

	content := c.Content()
	li, ok := content.Items[rowID]
	if !ok {
		return fmt.Errorf("%w: %s", types.ErrRowNotFound, rowID)
	}
	li.Associate(name)
	c.persist(content)
	return nil
}
