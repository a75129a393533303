package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/ini.v1"

	"cctools/internal/types"
)

// Website holds the [website] section of the config file. Older config files
// carry host + site and the URLs are composed; newer ones carry base_url
// directly. Credentials may be overridden from the environment so they can
// stay out of shared config files.
type Website struct {
	Host               string
	Site               string
	BaseURL            string
	Username           string
	Password           string
	UseHeadlessBrowser bool
}

// File is a loaded cctools configuration file.
type File struct {
	Website Website

	ini *ini.File
}

// Load reads an INI config file and applies the .env / environment overlay.
func Load(path string) (*File, error) {
	// Load .env file if present
	_ = godotenv.Load()

	cfg, err := ini.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	section, err := cfg.GetSection("website")
	if err != nil {
		return nil, fmt.Errorf("config file %s has no [website] section: %w", path, err)
	}

	website := Website{
		Host:               section.Key("host").String(),
		Site:               section.Key("site").String(),
		BaseURL:            section.Key("base_url").String(),
		Username:           section.Key("username").String(),
		Password:           section.Key("password").String(),
		UseHeadlessBrowser: section.Key("use_headless_browser").MustBool(false),
	}

	if v := os.Getenv("CCTOOLS_USERNAME"); v != "" {
		website.Username = v
	}
	if v := os.Getenv("CCTOOLS_PASSWORD"); v != "" {
		website.Password = v
	}

	if website.BaseURL == "" {
		if website.Host == "" || website.Site == "" {
			return nil, fmt.Errorf(
				"config file %s: [website] must set base_url, or host and site",
				path,
			)
		}
		website.BaseURL = fmt.Sprintf("https://%s/~%s", website.Host, website.Site)
	}

	return &File{Website: website, ini: cfg}, nil
}

// AdminURL returns the admin index page URL.
func (f *File) AdminURL() string {
	return f.Website.BaseURL + "/admin/index.php"
}

// AjaxURL returns the ajax controller URL used by the export poll loop.
func (f *File) AjaxURL() string {
	return f.Website.BaseURL + "/controllers/ajaxController.php"
}

// ClientConfig builds a client configuration from the loaded file.
func (f *File) ClientConfig(cacheTTL time.Duration, clean bool) *types.Config {
	cfg := types.DefaultConfig()
	cfg.AdminURL = f.AdminURL()
	cfg.AjaxURL = f.AjaxURL()
	cfg.Username = f.Website.Username
	cfg.Password = f.Website.Password
	cfg.CacheTTL = cacheTTL
	cfg.Clean = clean
	cfg.UseHeadlessBrowser = f.Website.UseHeadlessBrowser
	return cfg
}

// Get returns a string value from an arbitrary section, or the default when
// the section or key is absent. Report scripts read their titles and options
// this way.
func (f *File) Get(section, key, defaultValue string) string {
	s, err := f.ini.GetSection(section)
	if err != nil {
		return defaultValue
	}
	if !s.HasKey(key) {
		return defaultValue
	}
	return s.Key(key).String()
}

// GetFloat returns a float value from an arbitrary section.
func (f *File) GetFloat(section, key string, defaultValue float64) float64 {
	s, err := f.ini.GetSection(section)
	if err != nil {
		return defaultValue
	}
	if !s.HasKey(key) {
		return defaultValue
	}
	return s.Key(key).MustFloat64(defaultValue)
}
