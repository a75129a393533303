// Package pricing converts between the business's three price forms: the
// online retail price (pre-tax), the event price charged at fairs and shows
// (tax included, whole dollars so nobody handles change), and the pre-tax
// price backed out of a tax-included amount.
package pricing

import "math"

// EventPrice converts a retail (website) price to an event price: apply the
// discount, add sales tax, round to the nearest whole dollar, never below $1.
func EventPrice(price, discountPercent, taxPercent float64) float64 {
	price = price * (1.0 - discountPercent/100.0)
	price = price * (1.0 + taxPercent/100.0)
	return math.Max(1.0, math.Floor(price+0.5))
}

// RetailPrice converts an event price back to a retail price: remove sales
// tax, unapply the discount, round to the nearest dime and subtract a penny.
// EventPrice and RetailPrice do not round-trip exactly; the dollar and dime
// rounding each lose information.
func RetailPrice(price, discountPercent, taxPercent float64) float64 {
	price = price / (1.0 + taxPercent/100.0)
	price = price / (1.0 - discountPercent/100.0)
	return math.Max(0.01, math.Floor(price*10.0+0.5)/10.0-0.01)
}

// PreTaxPrice backs the pre-tax online price out of a tax-included price,
// rounded to the nearest dime minus a penny.
func PreTaxPrice(taxIncludedPrice, taxPercent float64) float64 {
	price := taxIncludedPrice / (1.0 + taxPercent/100.0)
	return math.Floor(price*10.0+0.5)/10.0 - 0.01
}
