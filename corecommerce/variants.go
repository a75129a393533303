package corecommerce

import (
	"fmt"
	"strconv"
	"strings"

	"cctools/internal/types"
)

// maxOptionGroups caps how many option group column triples the product
// option export can carry per row.
const maxOptionGroups = 9

// Variant type tags.
const (
	VariantTypePersonalization = "Personalization"
	VariantTypeOption          = "Option"
)

// DeriveVariants merges the two historical option exports into one uniform
// variant shape. Personalization rows (the legacy export) win when a product
// has both; a product with neither is a simple product and contributes no
// rows.
func DeriveVariants(products, personalizations, productOptions []types.Row) []types.Row {
	persByProduct := groupByProduct(personalizations)
	optsByProduct := groupByProduct(productOptions)

	// Never nil: the memoizing getters treat nil as not-yet-loaded.
	variants := []types.Row{}
	for _, product := range products {
		key := productKey(product)
		if rows := persByProduct[key]; len(rows) > 0 {
			for _, row := range rows {
				variants = append(variants, personalizationVariant(product, row))
			}
			continue
		}
		for _, row := range optsByProduct[key] {
			variants = append(variants, optionVariant(product, row))
		}
	}
	return variants
}

// productKey identifies a product across exports. The option exports key
// rows by product SKU when one exists and by product name otherwise.
func productKey(row types.Row) string {
	if sku := row["SKU"]; sku != "" {
		return sku
	}
	if sku := row["Product SKU"]; sku != "" {
		return sku
	}
	return row["Product Name"]
}

func groupByProduct(rows []types.Row) map[string][]types.Row {
	grouped := make(map[string][]types.Row)
	for _, row := range rows {
		key := productKey(row)
		grouped[key] = append(grouped[key], row)
	}
	return grouped
}

// personalizationVariant maps one legacy personalization row onto the
// uniform variant shape.
func personalizationVariant(product, row types.Row) types.Row {
	return types.Row{
		"Product SKU":         product["SKU"],
		"Product Name":        product["Product Name"],
		"Category":            product["Category"],
		"Variant Type":        VariantTypePersonalization,
		"Variant Group":       row["Question"],
		"Variant Name":        row["Answer"],
		"Variant Sort":        row["Answer Sort Order"],
		"Question ID":         row["Question ID"],
		"Question Sort Order": row["Question Sort Order"],
		"Answer Sort Order":   row["Answer Sort Order"],
		"Inventory Level":     row["Inventory Level"],
	}
}

// optionVariant maps one product option row onto the uniform variant shape.
// A row encodes up to maxOptionGroups option groups in repeated columns
// (repaired to "Option Group Name", "Option Group Name [2]", ...); the
// groups are concatenated with ":" separators.
func optionVariant(product, row types.Row) types.Row {
	var groups, names, sorts []string
	for i := 1; i <= maxOptionGroups; i++ {
		group := row[optionColumn("Option Group Name", i)]
		if group == "" {
			break
		}
		groups = append(groups, group)
		names = append(names, row[optionColumn("Option Name", i)])
		sorts = append(sorts, row[optionColumn("Option Sort Order", i)])
	}

	return types.Row{
		"Product SKU":     product["SKU"],
		"Product Name":    product["Product Name"],
		"Category":        product["Category"],
		"Variant Type":    VariantTypeOption,
		"Variant Group":   strings.Join(groups, ":"),
		"Variant Name":    strings.Join(names, ":"),
		"Variant Sort":    strings.Join(sorts, ":"),
		"Inventory Level": row["Inventory Level"],
	}
}

// optionColumn returns the repaired column name for the i-th occurrence of
// a duplicated option column. The first occurrence is unsuffixed.
func optionColumn(name string, index int) string {
	if index == 1 {
		return name
	}
	return fmt.Sprintf("%s [%d]", name, index)
}

// DeriveQuestions aggregates personalization variants into one row per
// distinct (product, question) pair, counting the answers under each.
func DeriveQuestions(variants []types.Row) []types.Row {
	type questionKey struct {
		product    string
		questionID string
	}

	index := make(map[questionKey]types.Row)
	var order []questionKey

	for _, variant := range variants {
		if variant["Variant Type"] != VariantTypePersonalization {
			continue
		}
		key := questionKey{productKey(variant), variant["Question ID"]}
		row, ok := index[key]
		if !ok {
			row = types.Row{
				"Product SKU":         variant["Product SKU"],
				"Product Name":        variant["Product Name"],
				"Question ID":         variant["Question ID"],
				"Question":            variant["Variant Group"],
				"Question Sort Order": variant["Question Sort Order"],
				"Answer Count":        "0",
			}
			index[key] = row
			order = append(order, key)
		}
		count, _ := strconv.Atoi(row["Answer Count"])
		row["Answer Count"] = strconv.Itoa(count + 1)
	}

	questions := make([]types.Row, 0, len(order))
	for _, key := range order {
		questions = append(questions, index[key])
	}
	return questions
}
