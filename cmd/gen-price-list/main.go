package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"

	"cctools/corecommerce"
	"cctools/internal/config"
	"cctools/report"
)

// gen-price-list generates a price list from CoreCommerce data. Prices are
// adjusted to include sales tax and rounded to even dollar amounts so the
// list can be used at fairs and shows without handling change.
func main() {
	var (
		configFlag = flag.String("config", "cctools.cfg", "configuration file")
		cacheTTL   = flag.Duration("cache-ttl", time.Hour, "cache time to live")
		refresh    = flag.Bool("refresh", false, "force a fresh download")
		outfile    = flag.String("outfile", "price-list.xlsx", "output file")
		taxPercent = flag.Float64("avg-tax", 8.3, "average sales tax rate in percent")
		useBrowser = flag.Bool("use-browser", false, "fetch the login page with a headless browser")
		verbose    = flag.Bool("verbose", false, "display progress messages")
	)
	flag.Parse()

	if flag.NArg() != 0 {
		fmt.Fprintf(os.Stderr, "usage: %s [options]\n", os.Args[0])
		flag.PrintDefaults()
		os.Exit(1)
	}

	logger := newLogger(*verbose)

	cfg, err := config.Load(*configFlag)
	if err != nil {
		logger.Fatal(err)
	}

	ttl := *cacheTTL
	if *refresh {
		ttl = 0
	}
	clientCfg := cfg.ClientConfig(ttl, true)
	if *useBrowser {
		clientCfg.UseHeadlessBrowser = true
	}
	browser, err := corecommerce.NewBrowser(clientCfg, logger)
	if err != nil {
		logger.Fatal(err)
	}

	products, err := browser.GetProducts()
	if err != nil {
		logger.Fatal(err)
	}
	keys, err := browser.SortKeys()
	if err != nil {
		logger.Fatal(err)
	}

	f := report.PriceList(products, keys, report.PriceListOptions{
		Title:      cfg.Get("price_list", "title", "Price List"),
		TaxPercent: cfg.GetFloat("price_list", "tax_percent", *taxPercent),
	})
	if err := f.SaveAs(*outfile); err != nil {
		logger.Fatalf("Failed to write %s: %v", *outfile, err)
	}
	logger.Infof("Wrote %s", *outfile)
}

func newLogger(verbose bool) *logrus.Logger {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05.000",
	})
	if levelStr := os.Getenv("LOG_LEVEL"); levelStr != "" {
		if level, err := logrus.ParseLevel(levelStr); err == nil {
			logger.SetLevel(level)
		}
	} else if verbose {
		logger.SetLevel(logrus.DebugLevel)
	} else {
		logger.SetLevel(logrus.InfoLevel)
	}
	return logger
}
