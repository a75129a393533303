package corecommerce

import "cctools/internal/types"

// Boolean-typed export columns per entity type. The admin emits blanks and
// stray values for these depending on product type and platform version;
// anything outside Y/N is coerced to "N", treating ambiguous data as the
// non-special case.
var (
	ProductBoolFields = []string{
		"Available",
		"Discontinued Item",
		"Track Inventory",
		"Taxable",
		"Free Shipping",
		"Featured Product",
		"New Item",
		"On Sale",
		"Hide Price",
		"Call for Price",
		"Allow Reviews",
		"Out of Season",
		"Drop Ship",
		"Gift Certificate",
		"Donation",
		"Use Tabs",
		"Show Buy Now",
		"Show Quantity",
		"Include in Feeds",
		"Requires Shipping",
		"Subscription Product",
		"Apply Quantity Discounts",
	}

	CategoryBoolFields = []string{
		"Available",
		"Hide from Menu",
	}

	PersonalizationBoolFields = []string{
		"Required",
		"Track Inventory",
		"Answer Available",
	}
)

// CleanRows forces each listed column to "Y" or "N" in place. Columns absent
// from a row are left absent; the export decides the column set, not us.
func CleanRows(rows []types.Row, boolFields []string) {
	for _, row := range rows {
		for _, field := range boolFields {
			value, ok := row[field]
			if !ok {
				continue
			}
			if value != "Y" && value != "N" {
				row[field] = "N"
			}
		}
	}
}
