// Package report renders business documents from CoreCommerce data as XLSX
// workbooks: the fairs price list, the inventory tracker and the wholesale
// order form.
package report

import (
	"sort"
	"strconv"

	"github.com/xuri/excelize/v2"

	"cctools/internal/types"
)

// sheet is the default worksheet every builder writes into.
const sheet = "Sheet1"

func cellName(col, row int) string {
	name, _ := excelize.CoordinatesToCellName(col, row)
	return name
}

func setCell(f *excelize.File, col, row int, value interface{}) {
	_ = f.SetCellValue(sheet, cellName(col, row), value)
}

func setFormula(f *excelize.File, col, row int, formula string) {
	_ = f.SetCellFormula(sheet, cellName(col, row), formula)
}

// sortRows sorts rows in place by a string key, keeping input order for ties.
func sortRows(rows []types.Row, key func(types.Row) string) {
	sort.SliceStable(rows, func(i, j int) bool {
		return key(rows[i]) < key(rows[j])
	})
}

// sellable filters out products that should not appear on customer-facing
// documents.
func sellable(products []types.Row) []types.Row {
	var result []types.Row
	for _, product := range products {
		if product["Available"] != "Y" || product["Discontinued Item"] == "Y" {
			continue
		}
		result = append(result, product)
	}
	return result
}

// price parses an export price cell; malformed values count as zero rather
// than aborting a whole document.
func price(value string) float64 {
	p, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0
	}
	return p
}
