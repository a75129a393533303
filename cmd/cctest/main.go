package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"

	"cctools/corecommerce"
	"cctools/internal/config"
	"cctools/internal/types"
)

// go run ./cmd/cctest -config cctools.cfg products
func main() {
	var (
		configFlag = flag.String("config", "cctools.cfg", "configuration file")
		cacheTTL   = flag.Duration("cache-ttl", time.Hour, "cache time to live")
		refresh    = flag.Bool("refresh", false, "force a fresh download")
		noClean    = flag.Bool("no-clean", false, "do not clean data after download")
		useBrowser = flag.Bool("use-browser", false, "fetch the login page with a headless browser")
		verbose    = flag.Bool("verbose", false, "display progress messages")
	)
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: %s [options] action\n", os.Args[0])
		fmt.Fprintln(os.Stderr, "  Actions:")
		fmt.Fprintln(os.Stderr, "    products - list products")
		fmt.Fprintln(os.Stderr, "    categories - list categories")
		fmt.Fprintln(os.Stderr, "    personalizations - list personalizations")
		fmt.Fprintln(os.Stderr, "    product-options - list product options")
		fmt.Fprintln(os.Stderr, "    variants - list derived variants")
		fmt.Fprintln(os.Stderr, "    questions - list derived questions")
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
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

	var rows []types.Row
	switch action := flag.Arg(0); action {
	case "products":
		rows, err = browser.GetProducts()
	case "categories":
		rows, err = browser.GetCategories()
	case "personalizations":
		rows, err = browser.GetPersonalizations()
	case "product-options":
		rows, err = browser.GetProductOptions()
	case "variants":
		rows, err = browser.GetVariants()
	case "questions":
		rows, err = browser.GetQuestions()
	default:
		logger.Fatalf("invalid action %q", action)
	}
	if err != nil {
		logger.Fatal(err)
	}

	jsonData, err := json.MarshalIndent(rows, "", "  ")
	if err != nil {
		logger.Fatalf("Failed to marshal rows: %v", err)
	}
	fmt.Println(string(jsonData))
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
