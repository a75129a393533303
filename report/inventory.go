package report

import (
	"github.com/xuri/excelize/v2"

	"cctools/corecommerce"
	"cctools/internal/types"
)

// Inventory builds the inventory tracker: one line per product with its
// variant lines expanded beneath it, plus a blank count column to fill in
// during a physical count.
func Inventory(products, variants []types.Row, keys *corecommerce.SortKeys) *excelize.File {
	variantsByProduct := make(map[string][]types.Row)
	for _, variant := range variants {
		key := variant["Product SKU"]
		if key == "" {
			key = variant["Product Name"]
		}
		variantsByProduct[key] = append(variantsByProduct[key], variant)
	}

	rows := make([]types.Row, len(products))
	copy(rows, products)
	sortRows(rows, keys.ByCategoryAndName)

	f := excelize.NewFile()
	headers := []string{"SKU", "Product Name", "Category", "Variant", "Inventory Level", "Cost", "Count"}
	for col, header := range headers {
		setCell(f, col+1, 1, header)
	}

	line := 2
	for _, product := range rows {
		if product["Track Inventory"] == "N" {
			continue
		}

		key := product["SKU"]
		if key == "" {
			key = product["Product Name"]
		}
		productVariants := variantsByProduct[key]
		sortRows(productVariants, keys.ByVariant)

		if len(productVariants) == 0 {
			setCell(f, 1, line, product["SKU"])
			setCell(f, 2, line, product["Product Name"])
			setCell(f, 3, line, product["Category"])
			setCell(f, 5, line, product["Inventory Level"])
			setCell(f, 6, line, price(product["Cost"]))
			line++
			continue
		}

		for _, variant := range productVariants {
			setCell(f, 1, line, product["SKU"])
			setCell(f, 2, line, product["Product Name"])
			setCell(f, 3, line, product["Category"])
			setCell(f, 4, line, variant["Variant Group"]+": "+variant["Variant Name"])
			setCell(f, 5, line, variant["Inventory Level"])
			setCell(f, 6, line, price(product["Cost"]))
			line++
		}
	}

	_ = f.SetColWidth(sheet, "A", "A", 10)
	_ = f.SetColWidth(sheet, "B", "D", 32)
	_ = f.SetColWidth(sheet, "E", "G", 14)
	return f
}
