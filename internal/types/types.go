package types

import "time"

// Row is one record from a CoreCommerce CSV export, keyed by column name.
// The admin's column set shifts between product types and platform updates,
// so rows stay dynamic instead of being bound to a static schema.
type Row map[string]string

// Resource identifies one exportable collection in the admin UI.
type Resource string

const (
	Products         Resource = "products"
	Categories       Resource = "categories"
	Personalizations Resource = "personalizations"
	ProductOptions   Resource = "product_options"
)

// CacheFile returns the on-disk cache file name for the resource.
func (r Resource) CacheFile() string {
	return string(r) + ".csv"
}

// Config holds the configuration for the scraping client
type Config struct {
	AdminURL           string // https://{host}/~{site}/admin/index.php
	AjaxURL            string // https://{host}/~{site}/controllers/ajaxController.php
	Username           string
	Password           string
	CacheDir           string // empty means the XDG default
	CacheTTL           time.Duration
	Clean              bool
	Timeout            time.Duration
	UseHeadlessBrowser bool
	UserAgent          string
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		CacheTTL:           1 * time.Hour,
		Clean:              true,
		Timeout:            60 * time.Second,
		UseHeadlessBrowser: false,
		UserAgent:          "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36",
	}
}

// Logger defines the logging interface
type Logger interface {
	Debug(args ...interface{})
	Info(args ...interface{})
	Warn(args ...interface{})
	Error(args ...interface{})
	Debugf(format string, args ...interface{})
	Infof(format string, args ...interface{})
	Warnf(format string, args ...interface{})
	Errorf(format string, args ...interface{})
}
