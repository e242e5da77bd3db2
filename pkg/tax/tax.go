// Package tax provides the pure arithmetic for tax computation on cart
// amounts. Rates arrive as percentages, amounts are decimal money values,
// and rounding is applied exactly once, at the end, half-up to two places.
package tax

import "github.com/shopspring/decimal"

// DefaultRate is the fallback tax rate fraction used by PriceExcludingTax
// when no explicit rate is supplied.
var DefaultRate = decimal.NewFromFloat(0.06)

var (
	one     = decimal.NewFromInt(1)
	hundred = decimal.NewFromInt(100)
)

// moneyScale is the number of decimal places kept on computed amounts.
const moneyScale = 2

// RateFraction converts a percentage rate to its fractional form.
// RateFraction(6) = 0.06.
func RateFraction(percent decimal.Decimal) decimal.Decimal {
	return percent.Div(hundred)
}

// Amount returns the tax amount for price at the given percentage rate.
//
// When taxIncluded is false the price is treated as a net amount and the
// tax is added on top: price * rate. When taxIncluded is true the price
// already embeds the tax and the amount is extracted from it:
// (rate * price) / (1 + rate). Intermediate values are kept at full
// precision; only the final amount is rounded.
func Amount(price, ratePercent decimal.Decimal, taxIncluded bool) decimal.Decimal {
	rate := RateFraction(ratePercent)

	var amount decimal.Decimal
	if !taxIncluded {
		amount = price.Mul(rate)
	} else {
		amount = rate.Mul(price).Div(one.Add(rate))
	}
	return amount.Round(moneyScale)
}

// PriceExcludingTax strips an embedded tax from total using the given rate
// fraction. When inclusive is false the total is already a net amount and
// is returned unchanged.
func PriceExcludingTax(total, rateFraction decimal.Decimal, inclusive bool) decimal.Decimal {
	if !inclusive {
		return total
	}
	return total.Div(one.Add(rateFraction)).Round(moneyScale)
}

// PriceExcludingDefaultTax is PriceExcludingTax with the DefaultRate,
// treating the total as tax-inclusive.
func PriceExcludingDefaultTax(total decimal.Decimal) decimal.Decimal {
	return PriceExcludingTax(total, DefaultRate, true)
}
