package report

import (
	"fmt"
	"math"

	"github.com/xuri/excelize/v2"

	"cctools/corecommerce"
	"cctools/internal/types"
)

// WholesaleOrderOptions configures the wholesale order form.
type WholesaleOrderOptions struct {
	Title             string
	WholesaleFraction float64 // wholesale price as a fraction of retail
	ExcludeSKUs       []string
}

// WholesaleOrder builds the order form handed to wholesale buyers: retail
// and wholesale price columns plus quantity and total columns wired with
// formulas, ending in a grand total.
func WholesaleOrder(products []types.Row, keys *corecommerce.SortKeys, opts WholesaleOrderOptions) *excelize.File {
	excluded := make(map[string]bool, len(opts.ExcludeSKUs))
	for _, sku := range opts.ExcludeSKUs {
		excluded[sku] = true
	}

	var rows []types.Row
	for _, product := range sellable(products) {
		if excluded[product["SKU"]] {
			continue
		}
		rows = append(rows, product)
	}
	sortRows(rows, keys.ByCategoryAndName)

	f := excelize.NewFile()
	setCell(f, 1, 1, opts.Title)

	headers := []string{"SKU", "Product Name", "Retail", "Wholesale", "Qty", "Total"}
	for col, header := range headers {
		setCell(f, col+1, 2, header)
	}

	line := 3
	for _, product := range rows {
		retail := price(product["Price"])
		wholesale := math.Floor(retail*opts.WholesaleFraction*100.0+0.5) / 100.0

		setCell(f, 1, line, product["SKU"])
		setCell(f, 2, line, product["Product Name"])
		setCell(f, 3, line, retail)
		setCell(f, 4, line, wholesale)
		setFormula(f, 6, line, fmt.Sprintf("D%d*E%d", line, line))
		line++
	}

	setCell(f, 5, line, "Total")
	setFormula(f, 6, line, fmt.Sprintf("SUM(F3:F%d)", line-1))

	_ = f.SetColWidth(sheet, "A", "A", 10)
	_ = f.SetColWidth(sheet, "B", "B", 40)
	_ = f.SetColWidth(sheet, "C", "F", 12)
	return f
}
