package corecommerce

import (
	"fmt"
	"strconv"
	"strings"

	"cctools/internal/types"
)

// SortKeys builds row ordering keys from the category list so every report
// orders categories the same way the storefront does. The helpers are pure;
// they never trigger a fetch.
type SortKeys struct {
	order map[string]int
}

// NewSortKeys indexes the categories' Sort field by category name.
func NewSortKeys(categories []types.Row) *SortKeys {
	order := make(map[string]int, len(categories))
	for _, category := range categories {
		sort, err := strconv.Atoi(category["Sort"])
		if err != nil {
			continue
		}
		order[category["Category Name"]] = sort
	}
	return &SortKeys{order: order}
}

// ByCategory keys a row by its category's display order. Categories without
// a known Sort value fall back to the raw category name, which places them
// after the numbered ones.
func (s *SortKeys) ByCategory(row types.Row) string {
	name := row["Category"]
	if sort, ok := s.order[name]; ok {
		return fmt.Sprintf("%03d", sort)
	}
	return name
}

// ByCategoryAndName keys a row by (category order, product name).
func (s *SortKeys) ByCategoryAndName(row types.Row) string {
	return s.ByCategory(row) + ":" + row["Product Name"]
}

// ByVariant keys a variant row by (category order, product name, question
// order, answer order).
func (s *SortKeys) ByVariant(row types.Row) string {
	return strings.Join([]string{
		s.ByCategory(row),
		row["Product Name"],
		ordinal(row["Question Sort Order"]),
		ordinal(row["Answer Sort Order"]),
	}, ":")
}

// BySKU keys a row by SKU.
func BySKU(row types.Row) string {
	return row["SKU"]
}

// ordinal zero-pads numeric sort order strings so they compare as numbers.
func ordinal(value string) string {
	n, err := strconv.Atoi(value)
	if err != nil {
		return value
	}
	return fmt.Sprintf("%05d", n)
}
