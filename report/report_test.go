package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cctools/corecommerce"
	"cctools/internal/types"
)

func testKeys() *corecommerce.SortKeys {
	return corecommerce.NewSortKeys([]types.Row{
		{"Category Name": "Necklaces", "Sort": "1"},
		{"Category Name": "Bracelets", "Sort": "2"},
	})
}

func testProducts() []types.Row {
	return []types.Row{
		{
			"SKU": "B0001", "Product Name": "Bangle", "Category": "Bracelets",
			"Price": "20.00", "Cost": "6.50", "Available": "Y",
			"Discontinued Item": "N", "Track Inventory": "Y",
			"Inventory Level": "4",
		},
		{
			"SKU": "N0001", "Product Name": "Beaded Necklace", "Category": "Necklaces",
			"Price": "35.00", "Cost": "12.00", "Available": "Y",
			"Discontinued Item": "N", "Track Inventory": "Y",
			"Inventory Level": "7",
		},
		{
			"SKU": "X0001", "Product Name": "Old Thing", "Category": "Necklaces",
			"Price": "10.00", "Available": "Y", "Discontinued Item": "Y",
			"Track Inventory": "N",
		},
	}
}

func TestPriceList(t *testing.T) {
	f := PriceList(testProducts(), testKeys(), PriceListOptions{
		Title:      "Retail Price List",
		TaxPercent: 8.3,
	})

	title, err := f.GetCellValue("Sheet1", "A1")
	require.NoError(t, err)
	assert.Equal(t, "Retail Price List", title)

	// Necklaces sort before Bracelets; the discontinued product is gone.
	category, _ := f.GetCellValue("Sheet1", "A3")
	assert.Equal(t, "Necklaces", category)
	name, _ := f.GetCellValue("Sheet1", "A4")
	assert.Equal(t, "Beaded Necklace", name)

	// 35.00 * 1.083 = 37.905, rounded to a whole dollar.
	value, _ := f.GetCellValue("Sheet1", "C4")
	assert.Equal(t, "38", value)

	category, _ = f.GetCellValue("Sheet1", "A5")
	assert.Equal(t, "Bracelets", category)
}

func TestInventory_ExpandsVariants(t *testing.T) {
	variants := []types.Row{
		{
			"Product SKU": "N0001", "Product Name": "Beaded Necklace",
			"Category": "Necklaces", "Variant Type": "Personalization",
			"Variant Group": "Length", "Variant Name": "18 inch",
			"Inventory Level": "3", "Question Sort Order": "1",
			"Answer Sort Order": "1",
		},
		{
			"Product SKU": "N0001", "Product Name": "Beaded Necklace",
			"Category": "Necklaces", "Variant Type": "Personalization",
			"Variant Group": "Length", "Variant Name": "24 inch",
			"Inventory Level": "4", "Question Sort Order": "1",
			"Answer Sort Order": "2",
		},
	}

	f := Inventory(testProducts(), variants, testKeys())

	// Row 2 and 3 are the necklace's variants, row 4 the plain bracelet.
	variant, _ := f.GetCellValue("Sheet1", "D2")
	assert.Equal(t, "Length: 18 inch", variant)
	level, _ := f.GetCellValue("Sheet1", "E2")
	assert.Equal(t, "3", level)
	variant, _ = f.GetCellValue("Sheet1", "D3")
	assert.Equal(t, "Length: 24 inch", variant)

	sku, _ := f.GetCellValue("Sheet1", "A4")
	assert.Equal(t, "B0001", sku)
	variant, _ = f.GetCellValue("Sheet1", "D4")
	assert.Equal(t, "", variant)
}

func TestWholesaleOrder(t *testing.T) {
	f := WholesaleOrder(testProducts(), testKeys(), WholesaleOrderOptions{
		Title:             "Wholesale Order Form",
		WholesaleFraction: 0.5,
		ExcludeSKUs:       []string{"B0001"},
	})

	// Only the necklace survives the exclude list and sellable filter.
	sku, _ := f.GetCellValue("Sheet1", "A3")
	assert.Equal(t, "N0001", sku)
	wholesale, _ := f.GetCellValue("Sheet1", "D3")
	assert.Equal(t, "17.5", wholesale)

	formula, err := f.GetCellFormula("Sheet1", "F3")
	require.NoError(t, err)
	assert.Equal(t, "D3*E3", formula)

	total, _ := f.GetCellFormula("Sheet1", "F4")
	assert.Equal(t, "SUM(F3:F3)", total)
}
