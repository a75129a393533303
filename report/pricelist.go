package report

import (
	"math"

	"github.com/xuri/excelize/v2"

	"cctools/corecommerce"
	"cctools/internal/types"
)

// PriceListOptions configures the price list document.
type PriceListOptions struct {
	Title      string
	TaxPercent float64
}

// PriceList builds the fairs-and-shows price list: tax-included prices
// rounded to whole dollars so nobody handles change, grouped by category in
// storefront display order.
func PriceList(products []types.Row, keys *corecommerce.SortKeys, opts PriceListOptions) *excelize.File {
	multiplier := 1.0 + opts.TaxPercent/100.0

	rows := sellable(products)
	sortRows(rows, keys.ByCategoryAndName)

	f := excelize.NewFile()
	setCell(f, 1, 1, opts.Title)

	line := 3
	lastCategory := ""
	for _, product := range rows {
		if product["Category"] != lastCategory {
			lastCategory = product["Category"]
			setCell(f, 1, line, lastCategory)
			line++
		}
		setCell(f, 1, line, product["Product Name"])
		setCell(f, 2, line, product["SKU"])
		setCell(f, 3, line, priceIncTax(product["Price"], multiplier))
		line++
	}

	_ = f.SetColWidth(sheet, "A", "A", 40)
	_ = f.SetColWidth(sheet, "B", "C", 12)
	return f
}

// priceIncTax applies the tax multiplier and rounds to a whole dollar,
// never below one dollar.
func priceIncTax(value string, multiplier float64) float64 {
	return math.Max(1.0, math.Floor(price(value)*multiplier+0.5))
}
