package corecommerce

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cctools/internal/types"
)

func TestDeriveVariants_Personalizations(t *testing.T) {
	products := []types.Row{
		{"SKU": "N0001", "Product Name": "Beaded Necklace", "Category": "Necklaces"},
	}
	personalizations := []types.Row{
		{
			"Product SKU": "N0001", "Product Name": "Beaded Necklace",
			"Question ID": "42", "Question": "Size",
			"Question Sort Order": "1",
			"Answer":              "Small", "Answer Sort Order": "1",
			"Inventory Level": "3",
		},
		{
			"Product SKU": "N0001", "Product Name": "Beaded Necklace",
			"Question ID": "42", "Question": "Size",
			"Question Sort Order": "1",
			"Answer":              "Large", "Answer Sort Order": "2",
			"Inventory Level": "5",
		},
	}

	variants := DeriveVariants(products, personalizations, nil)

	require.Len(t, variants, 2)
	for _, variant := range variants {
		assert.Equal(t, "Personalization", variant["Variant Type"])
		assert.Equal(t, "N0001", variant["Product SKU"])
		assert.Equal(t, "Size", variant["Variant Group"])
	}
	assert.Equal(t, "Small", variants[0]["Variant Name"])
	assert.Equal(t, "Large", variants[1]["Variant Name"])
	assert.NotEqual(t, variants[0]["Variant Name"], variants[1]["Variant Name"])
}

func TestDeriveVariants_ProductOptions(t *testing.T) {
	products := []types.Row{
		{"SKU": "B0001", "Product Name": "Bangle", "Category": "Bracelets"},
	}
	productOptions := []types.Row{
		{
			"Product SKU":           "B0001",
			"Option Group Name":     "Size",
			"Option Name":           "Small",
			"Option Sort Order":     "1",
			"Option Group Name [2]": "Color",
			"Option Name [2]":       "Red",
			"Option Sort Order [2]": "2",
		},
	}

	variants := DeriveVariants(products, nil, productOptions)

	require.Len(t, variants, 1)
	assert.Equal(t, "Option", variants[0]["Variant Type"])
	assert.Equal(t, "Size:Color", variants[0]["Variant Group"])
	assert.Equal(t, "Small:Red", variants[0]["Variant Name"])
	assert.Equal(t, "1:2", variants[0]["Variant Sort"])
}

func TestDeriveVariants_PersonalizationsWin(t *testing.T) {
	products := []types.Row{
		{"SKU": "N0001", "Product Name": "Beaded Necklace"},
	}
	personalizations := []types.Row{
		{"Product SKU": "N0001", "Question": "Size", "Answer": "Small"},
	}
	productOptions := []types.Row{
		{"Product SKU": "N0001", "Option Group Name": "Color", "Option Name": "Red"},
	}

	variants := DeriveVariants(products, personalizations, productOptions)

	require.Len(t, variants, 1)
	assert.Equal(t, "Personalization", variants[0]["Variant Type"])
}

func TestDeriveVariants_SimpleProductHasNone(t *testing.T) {
	products := []types.Row{
		{"SKU": "M0001", "Product Name": "Trivet"},
	}

	variants := DeriveVariants(products, nil, nil)

	assert.NotNil(t, variants)
	assert.Empty(t, variants)
}

func TestDeriveVariants_MatchesByNameWithoutSKU(t *testing.T) {
	products := []types.Row{
		{"SKU": "", "Product Name": "Basket"},
	}
	personalizations := []types.Row{
		{"Product SKU": "", "Product Name": "Basket", "Question": "Size", "Answer": "Large"},
	}

	variants := DeriveVariants(products, personalizations, nil)

	require.Len(t, variants, 1)
	assert.Equal(t, "Large", variants[0]["Variant Name"])
}

func TestDeriveQuestions(t *testing.T) {
	variants := []types.Row{
		{
			"Variant Type": "Personalization", "Product SKU": "N0001",
			"Product Name": "Beaded Necklace", "Question ID": "42",
			"Variant Group": "Size", "Question Sort Order": "1",
		},
		{
			"Variant Type": "Personalization", "Product SKU": "N0001",
			"Product Name": "Beaded Necklace", "Question ID": "42",
			"Variant Group": "Size", "Question Sort Order": "1",
		},
		{
			"Variant Type": "Personalization", "Product SKU": "N0001",
			"Product Name": "Beaded Necklace", "Question ID": "43",
			"Variant Group": "Color", "Question Sort Order": "2",
		},
		{
			"Variant Type": "Option", "Product SKU": "B0001",
			"Product Name": "Bangle", "Variant Group": "Size",
		},
	}

	questions := DeriveQuestions(variants)

	require.Len(t, questions, 2)
	assert.Equal(t, "42", questions[0]["Question ID"])
	assert.Equal(t, "2", questions[0]["Answer Count"])
	assert.Equal(t, "Size", questions[0]["Question"])
	assert.Equal(t, "43", questions[1]["Question ID"])
	assert.Equal(t, "1", questions[1]["Answer Count"])
}
