package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"cctools/corecommerce"
	"cctools/internal/config"
	"cctools/report"
)

// gen-wholesale-order generates a wholesale order form from CoreCommerce
// data, with quantity and total columns wired with formulas.
func main() {
	var (
		configFlag  = flag.String("config", "cctools.cfg", "configuration file")
		cacheTTL    = flag.Duration("cache-ttl", time.Hour, "cache time to live")
		refresh     = flag.Bool("refresh", false, "force a fresh download")
		outfile     = flag.String("outfile", "wholesale-order.xlsx", "output file")
		fraction    = flag.Float64("wholesale-fraction", 0.5, "wholesale price as a fraction of retail")
		excludeSKUs = flag.String("exclude-skus", "", "comma-separated SKUs to leave off the form")
		useBrowser  = flag.Bool("use-browser", false, "fetch the login page with a headless browser")
		verbose     = flag.Bool("verbose", false, "display progress messages")
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

	var excluded []string
	if *excludeSKUs != "" {
		for _, sku := range strings.Split(*excludeSKUs, ",") {
			excluded = append(excluded, strings.TrimSpace(sku))
		}
	}

	f := report.WholesaleOrder(products, keys, report.WholesaleOrderOptions{
		Title:             cfg.Get("wholesale_order", "title", "Wholesale Order Form"),
		WholesaleFraction: *fraction,
		ExcludeSKUs:       excluded,
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
