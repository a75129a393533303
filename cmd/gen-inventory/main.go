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

// gen-inventory generates an inventory tracking worksheet from CoreCommerce
// data, one line per product variant, with a blank column for a physical
// count.
func main() {
	var (
		configFlag = flag.String("config", "cctools.cfg", "configuration file")
		cacheTTL   = flag.Duration("cache-ttl", time.Hour, "cache time to live")
		refresh    = flag.Bool("refresh", false, "force a fresh download")
		outfile    = flag.String("outfile", "inventory.xlsx", "output file")
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
	variants, err := browser.GetVariants()
	if err != nil {
		logger.Fatal(err)
	}
	keys, err := browser.SortKeys()
	if err != nil {
		logger.Fatal(err)
	}

	f := report.Inventory(products, variants, keys)
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
