// Package corecommerce scrapes product, category and variant data from a
// CoreCommerce hosted store's web admin. The platform has no public API, so
// everything goes through the admin UI's undocumented ajax export protocol.
// Exports are cached on disk with a TTL and loaded at most once per process.
package corecommerce

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/adrg/xdg"
	"github.com/gofrs/flock"

	"cctools/internal/types"
	"cctools/utils"
)

const loginFormName = "digiSHOP"

// Browser is an authenticated scraping session against one store's admin.
// It is not safe for concurrent use; each collection is fetched at most once
// and memoized on the instance.
type Browser struct {
	config   *types.Config
	logger   types.Logger
	session  *utils.Session
	headless *utils.BrowserClient
	cacheDir string
	lock     *flock.Flock
	loggedIn bool

	products         []types.Row
	categories       []types.Row
	personalizations []types.Row
	productOptions   []types.Row
	variants         []types.Row
	questions        []types.Row
	sortKeys         *SortKeys
}

// NewBrowser creates a browser for the configured store. The cache directory
// is created up front so the download lock always has somewhere to live.
func NewBrowser(config *types.Config, logger types.Logger) (*Browser, error) {
	cacheDir := config.CacheDir
	if cacheDir == "" {
		cacheDir = filepath.Join(xdg.CacheHome, "cctools")
	}
	if err := os.MkdirAll(cacheDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create cache directory %s: %w", cacheDir, err)
	}

	return &Browser{
		config:   config,
		logger:   logger,
		session:  utils.NewSession(config, logger),
		headless: utils.NewBrowserClient(config, logger),
		cacheDir: cacheDir,
		lock:     flock.New(filepath.Join(cacheDir, "download.lock")),
	}, nil
}

// CacheDir returns the directory holding the cached export files.
func (b *Browser) CacheDir() string {
	return b.cacheDir
}

// login submits the admin login form. It is a no-op after the first
// successful call on this browser.
func (b *Browser) login() error {
	if b.loggedIn {
		return nil
	}

	html, err := b.fetchLoginPage()
	if err != nil {
		return fmt.Errorf("failed to load login page: %w", err)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return fmt.Errorf("failed to parse login page: %w", err)
	}

	form := doc.Find(fmt.Sprintf("form[name=%q]", loginFormName))
	if form.Length() == 0 {
		// The usual cause is a wrong hostname in the config; listing the
		// forms that are present makes that quick to spot.
		return fmt.Errorf(
			"login form %q not found (forms present: %v)",
			loginFormName, formNames(doc),
		)
	}

	values := formValues(form)
	values.Set("userId", b.config.Username)
	values.Set("password", b.config.Password)

	action := resolveFormAction(form, b.config.AdminURL)
	if _, err := b.session.PostForm(action, values); err != nil {
		return fmt.Errorf("login failed: %w", err)
	}

	b.loggedIn = true
	b.logger.Debugf("Logged in to %s as %s", b.config.AdminURL, b.config.Username)
	return nil
}

// fetchLoginPage loads the admin index page either over plain HTTP or, when
// configured, through the headless browser so JavaScript-rendered login
// pages still yield a parseable form.
func (b *Browser) fetchLoginPage() (string, error) {
	if b.config.UseHeadlessBrowser {
		return b.headless.GetPageContent(b.config.AdminURL)
	}
	body, err := b.session.Get(b.config.AdminURL)
	if err != nil {
		return "", err
	}
	return string(body), nil
}

// formNames lists the name attributes of every form in the document.
func formNames(doc *goquery.Document) []string {
	var names []string
	doc.Find("form").Each(func(_ int, s *goquery.Selection) {
		if name, ok := s.Attr("name"); ok {
			names = append(names, name)
		}
	})
	return names
}

// formValues collects the current values of a form's fields: hidden inputs
// and defaults are carried through unchanged, selects take their selected
// (or first) option, submit/button inputs are skipped.
func formValues(form *goquery.Selection) url.Values {
	values := url.Values{}

	form.Find("input").Each(func(_ int, s *goquery.Selection) {
		name, ok := s.Attr("name")
		if !ok || name == "" {
			return
		}
		inputType, _ := s.Attr("type")
		switch strings.ToLower(inputType) {
		case "submit", "button", "image":
			return
		case "checkbox", "radio":
			if _, checked := s.Attr("checked"); !checked {
				return
			}
		}
		value, _ := s.Attr("value")
		values.Set(name, value)
	})

	form.Find("select").Each(func(_ int, s *goquery.Selection) {
		name, ok := s.Attr("name")
		if !ok || name == "" {
			return
		}
		option := s.Find("option[selected]").First()
		if option.Length() == 0 {
			option = s.Find("option").First()
		}
		value, ok := option.Attr("value")
		if !ok {
			value = strings.TrimSpace(option.Text())
		}
		values.Set(name, value)
	})

	return values
}

// resolveFormAction resolves a form's action attribute against the page URL.
func resolveFormAction(form *goquery.Selection, pageURL string) string {
	action, ok := form.Attr("action")
	if !ok || action == "" {
		return pageURL
	}
	base, err := url.Parse(pageURL)
	if err != nil {
		return action
	}
	ref, err := url.Parse(action)
	if err != nil {
		return pageURL
	}
	return base.ResolveReference(ref).String()
}

// GetProducts returns all products, downloading and caching on first use.
func (b *Browser) GetProducts() ([]types.Row, error) {
	if b.products != nil {
		return b.products, nil
	}
	rows, err := b.loadResource(types.Products)
	if err != nil {
		return nil, err
	}
	if b.config.Clean {
		CleanRows(rows, ProductBoolFields)
	}
	b.products = rows
	return rows, nil
}

// GetCategories returns all categories, downloading and caching on first use.
func (b *Browser) GetCategories() ([]types.Row, error) {
	if b.categories != nil {
		return b.categories, nil
	}
	rows, err := b.loadResource(types.Categories)
	if err != nil {
		return nil, err
	}
	if b.config.Clean {
		CleanRows(rows, CategoryBoolFields)
	}
	b.categories = rows
	return rows, nil
}

// GetPersonalizations returns the raw personalization rows.
func (b *Browser) GetPersonalizations() ([]types.Row, error) {
	if b.personalizations != nil {
		return b.personalizations, nil
	}
	rows, err := b.loadResource(types.Personalizations)
	if err != nil {
		return nil, err
	}
	if b.config.Clean {
		CleanRows(rows, PersonalizationBoolFields)
	}
	b.personalizations = rows
	return rows, nil
}

// GetProductOptions returns the raw product option rows. This export has a
// ragged shape with duplicated column names; the reader repairs the header
// before building rows.
func (b *Browser) GetProductOptions() ([]types.Row, error) {
	if b.productOptions != nil {
		return b.productOptions, nil
	}
	rows, err := b.loadResource(types.ProductOptions)
	if err != nil {
		return nil, err
	}
	b.productOptions = rows
	return rows, nil
}

// GetVariants returns the uniform variant view derived from the
// personalization and product option exports.
func (b *Browser) GetVariants() ([]types.Row, error) {
	if b.variants != nil {
		return b.variants, nil
	}
	products, err := b.GetProducts()
	if err != nil {
		return nil, err
	}
	personalizations, err := b.GetPersonalizations()
	if err != nil {
		return nil, err
	}
	productOptions, err := b.GetProductOptions()
	if err != nil {
		return nil, err
	}
	b.variants = DeriveVariants(products, personalizations, productOptions)
	return b.variants, nil
}

// GetQuestions returns one row per distinct (product, question) pair over
// the personalization variants, with the answer count for each.
func (b *Browser) GetQuestions() ([]types.Row, error) {
	if b.questions != nil {
		return b.questions, nil
	}
	variants, err := b.GetVariants()
	if err != nil {
		return nil, err
	}
	b.questions = DeriveQuestions(variants)
	return b.questions, nil
}

// SortKeys returns the ordering helpers built from the category list.
func (b *Browser) SortKeys() (*SortKeys, error) {
	if b.sortKeys != nil {
		return b.sortKeys, nil
	}
	categories, err := b.GetCategories()
	if err != nil {
		return nil, err
	}
	b.sortKeys = NewSortKeys(categories)
	return b.sortKeys, nil
}

// loadResource makes sure the resource's cache file is fresh and reads it.
func (b *Browser) loadResource(resource types.Resource) ([]types.Row, error) {
	path, err := b.ensureCached(resource)
	if err != nil {
		return nil, err
	}
	rows, err := ReadCSVFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	b.logger.Debugf("Loaded %d %s rows from %s", len(rows), resource, path)
	return rows, nil
}
