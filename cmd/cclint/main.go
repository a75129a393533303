package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"

	"cctools/corecommerce"
	"cctools/internal/config"
	"cctools/lint"
)

// cclint detects problems in data exported from CoreCommerce.
func main() {
	var (
		configFlag = flag.String("config", "cctools.cfg", "configuration file")
		cacheTTL   = flag.Duration("cache-ttl", time.Hour, "cache time to live")
		refresh    = flag.Bool("refresh", false, "force a fresh download")
		noClean    = flag.Bool("no-clean", false, "do not clean data before checking")
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
	clientCfg := cfg.ClientConfig(ttl, !*noClean)
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

	findings := lint.CheckProducts(products)
	for _, finding := range findings {
		fmt.Println(finding)
	}

	logger.Debugf("Checks complete, %d findings", len(findings))
	if len(findings) > 0 {
		os.Exit(1)
	}
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
