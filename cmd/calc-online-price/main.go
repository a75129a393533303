package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"

	"cctools/pricing"
)

// calc-online-price calculates an online price (pre-tax) based upon a
// tax-included price.
func main() {
	taxPercent := flag.Float64("tax", 8.4, "tax rate in percent")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: %s [options] PRICE\n", os.Args[0])
		fmt.Fprintln(os.Stderr, "  PRICE - price including tax")
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(1)
	}

	price, err := strconv.ParseFloat(flag.Arg(0), 64)
	if err != nil {
		fmt.Fprintf(os.Stderr, "price %q is not a valid number\n", flag.Arg(0))
		os.Exit(1)
	}

	fmt.Printf("%.2f\n", pricing.PreTaxPrice(price, *taxPercent))
}
