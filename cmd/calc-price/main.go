package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"

	"cctools/pricing"
)

// calc-price converts an event price (tax-included) to a retail price
// (pre-tax) or vice versa.
//
//	calc-price event 100   -> 76
//	calc-price retail 76   -> 100.29
func main() {
	var (
		discountPercent = flag.Float64("discount", 30, "discount in percent")
		avgTaxPercent   = flag.Float64("avg-tax", 8.3, "average sales tax rate in percent")
	)
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: %s [options] {event|retail} PRICE\n", os.Args[0])
		fmt.Fprintln(os.Stderr, "  event PRICE  - calculate event price from retail price")
		fmt.Fprintln(os.Stderr, "  retail PRICE - calculate retail price from event price")
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 2 {
		flag.Usage()
		os.Exit(1)
	}

	price, err := strconv.ParseFloat(flag.Arg(1), 64)
	if err != nil {
		fmt.Fprintf(os.Stderr, "price %q is not a valid number\n", flag.Arg(1))
		os.Exit(1)
	}

	switch flag.Arg(0) {
	case "event":
		fmt.Printf("%.0f\n", pricing.EventPrice(price, *discountPercent, *avgTaxPercent))
	case "retail":
		fmt.Printf("%.2f\n", pricing.RetailPrice(price, *discountPercent, *avgTaxPercent))
	default:
		flag.Usage()
		os.Exit(1)
	}
}
