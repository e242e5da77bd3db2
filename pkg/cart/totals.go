package cart

import (
	"github.com/shopspring/decimal"

	"github.com/dukaforge/cartbox/pkg/types"
)

// ItemsTotal folds the items partition, summing Total per line when
// withTax is set and Subtotal otherwise.
func (c *Cart) ItemsTotal(withTax bool) decimal.Decimal {
	return foldLines(c.Content().Items, withTax)
}

// ItemsTaxedTotal sums the tax amounts of all items.
func (c *Cart) ItemsTaxedTotal() decimal.Decimal {
	return foldTaxed(c.Content().Items)
}

// DetailsTotal folds the details partition, summing Total per line when
// withTax is set and Subtotal otherwise.
func (c *Cart) DetailsTotal(withTax bool) decimal.Decimal {
	return foldLines(c.Content().Details, withTax)
}

// DetailsTaxedTotal sums the tax amounts of all details.
func (c *Cart) DetailsTaxedTotal() decimal.Decimal {
	return foldTaxed(c.Content().Details)
}

// Subtotal returns the untaxed items total.
func (c *Cart) Subtotal() decimal.Decimal {
	return c.ItemsTotal(false)
}

// Total returns the final cart total: taxed items total plus taxed
// details total. Details always contribute their tax, independent of any
// withTax flag on item reads.
func (c *Cart) Total() decimal.Decimal {
	return c.ItemsTotal(true).Add(c.DetailsTotal(true))
}

// TaxTotal returns the combined tax amount across items and details.
func (c *Cart) TaxTotal() decimal.Decimal {
	return c.ItemsTaxedTotal().Add(c.DetailsTaxedTotal())
}

// Count returns the sum of item quantities. Details are excluded.
func (c *Cart) Count() decimal.Decimal {
	count := decimal.Zero
	for _, li := range c.Content().Items {
		count = count.Add(li.Quantity)
	}
	return count
}

// Empty reports whether the cart holds no item quantity.
func (c *Cart) Empty() bool {
	return c.Count().IsZero()
}

func foldLines(partition map[string]*types.LineItem, withTax bool) decimal.Decimal {
	total := decimal.Zero
	for _, li := range partition {
		if withTax {
			total = total.Add(li.Total())
		} else {
			total = total.Add(li.Subtotal())
		}
	}
	return total
}

func foldTaxed(partition map[string]*types.LineItem) decimal.Decimal {
	total := decimal.Zero
	for _, li := range partition {
		total = total.Add(li.Taxed())
	}
	return total
}
