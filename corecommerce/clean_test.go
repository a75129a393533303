package corecommerce

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"cctools/internal/types"
)

func TestCleanRows(t *testing.T) {
	rows := []types.Row{
		{"Available": "Y", "Discontinued Item": "N"},
		{"Available": "", "Discontinued Item": "yes"},
		{"Available": "n", "Discontinued Item": "TRUE"},
	}

	CleanRows(rows, ProductBoolFields)

	for _, row := range rows {
		assert.Contains(t, []string{"Y", "N"}, row["Available"])
		assert.Contains(t, []string{"Y", "N"}, row["Discontinued Item"])
	}
	assert.Equal(t, "Y", rows[0]["Available"]) // valid values untouched
	assert.Equal(t, "N", rows[1]["Available"])
	assert.Equal(t, "N", rows[2]["Discontinued Item"])
}

func TestCleanRows_AbsentColumnsStayAbsent(t *testing.T) {
	rows := []types.Row{{"SKU": "N0001"}}

	CleanRows(rows, ProductBoolFields)

	_, ok := rows[0]["Available"]
	assert.False(t, ok)
}

func TestCleanRows_OtherColumnsUntouched(t *testing.T) {
	rows := []types.Row{{"Teaser": "whatever", "Available": "bogus"}}

	CleanRows(rows, ProductBoolFields)

	assert.Equal(t, "whatever", rows[0]["Teaser"])
	assert.Equal(t, "N", rows[0]["Available"])
}
