// Package lint detects problems in data exported from CoreCommerce before
// it flows into customer-facing documents.
package lint

import (
	"fmt"

	"cctools/internal/types"
)

const (
	minTeaserLen = 10

	// Imitation jewelry all ships under one HTSUS heading; everything else
	// carries its own 12 character code in the MPN field.
	jewelryHTSUSNo = "7117.90.9000"
	htsusNoLen     = 12
)

var jewelryCategories = map[string]bool{
	"Necklaces": true,
	"Bracelets": true,
}

var yesNo = []string{"Y", "N"}

// CheckProducts runs every product check and returns the findings in input
// order.
func CheckProducts(products []types.Row) []string {
	var findings []string
	for _, product := range products {
		findings = append(findings, CheckProduct(product)...)
	}
	return findings
}

// CheckProduct checks a single product row for problems.
func CheckProduct(product types.Row) []string {
	displayName := fmt.Sprintf("%s %s", product["SKU"], product["Product Name"])

	var findings []string
	report := func(format string, args ...interface{}) {
		findings = append(
			findings,
			fmt.Sprintf("Product '%s': ", displayName)+fmt.Sprintf(format, args...),
		)
	}

	checkString(report, product, "Teaser", minTeaserLen)
	checkValueInSet(report, product, "Available", yesNo)
	checkValueInSet(report, product, "Discontinued Item", yesNo)

	if product["Available"] == "Y" && product["Discontinued Item"] == "Y" {
		report("Is Available and is a Discontinued Item")
	}

	if product["UPC"] != "" {
		report("UPC '%s' is not blank", product["UPC"])
	}

	// The MPN field is repurposed to hold the HTSUS customs code.
	if jewelryCategories[product["Category"]] {
		if product["MPN"] != jewelryHTSUSNo {
			report("MPN (HTSUS No) '%s' != '%s'", product["MPN"], jewelryHTSUSNo)
		}
	} else {
		if product["MPN"] == "" {
			report("MPN (HTSUS No) not set")
		} else if len(product["MPN"]) != htsusNoLen {
			report("Invalid MPN (HTSUS No) '%s'", product["MPN"])
		}
	}

	return findings
}

func checkString(report func(string, ...interface{}), row types.Row, key string, minLen int) {
	value := row[key]
	if len(value) == 0 {
		report("Value '%s' not defined", key)
	} else if len(value) < minLen {
		report("Value '%s' == '%s' is too short", key, value)
	}
}

func checkValueInSet(report func(string, ...interface{}), row types.Row, key string, valid []string) {
	value := row[key]
	for _, v := range valid {
		if value == v {
			return
		}
	}
	report("Invalid '%s' == '%s' not in %v", key, value, valid)
}
