package corecommerce

import (
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"cctools/internal/types"
)

const exportFormName = "jsform"

// exportCycle is one processExportCycle response. Both fields arrive as
// whatever the server feels like that day; current in particular is an
// opaque pagination cursor and must be echoed back exactly as received.
type exportCycle struct {
	Current         json.Number `json:"current"`
	PercentComplete json.Number `json:"percentComplete"`
}

// downloadExport drives the admin's asynchronous export job for one resource
// and saves the finished CSV as path. The caller holds the download lock.
func (b *Browser) downloadExport(resource types.Resource, path string) error {
	b.logger.Infof("Downloading %s export", resource)

	// Step 1: open the export page for this resource.
	exportURL := fmt.Sprintf(
		"%s?m=ajax_export&instance=%s&checkAccess=%s",
		b.config.AdminURL, resource, resource,
	)
	body, err := b.session.Get(exportURL)
	if err != nil {
		return fmt.Errorf("failed to open %s export page: %w", resource, err)
	}

	// Step 2: the product export defaults to the last category the admin
	// user had selected, so force it back to All Categories.
	if resource == types.Products {
		if err := b.submitExportForm(body, exportURL); err != nil {
			return err
		}
	}

	// Step 3: poll until the server-side job is complete.
	if err := b.pollExport(resource); err != nil {
		return err
	}

	// Step 4: fetch the finished file.
	sendURL := b.config.AdminURL + "?m=ajax_export_send"
	if err := b.session.Download(sendURL, path); err != nil {
		return fmt.Errorf("failed to fetch %s export file: %w", resource, err)
	}

	b.logger.Infof("Saved %s export to %s", resource, path)
	return nil
}

// submitExportForm selects the export page's form, forces the category
// filter to All Categories (the empty value) and submits it.
func (b *Browser) submitExportForm(page []byte, pageURL string) error {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(string(page)))
	if err != nil {
		return fmt.Errorf("failed to parse export page: %w", err)
	}

	form := doc.Find(fmt.Sprintf("form[name=%q]", exportFormName))
	if form.Length() == 0 {
		return fmt.Errorf(
			"export form %q not found (forms present: %v)",
			exportFormName, formNames(doc),
		)
	}

	values := formValues(form)
	values.Set("category", "") // "" is the All Categories option

	action := resolveFormAction(form, pageURL)
	if _, err := b.session.PostForm(action, values); err != nil {
		return fmt.Errorf("failed to submit export form: %w", err)
	}
	return nil
}

// pollExport calls processExportCycle until the server reports 100%. There
// is no timeout: a job that never completes hangs the invocation, which
// matches how the admin's own progress bar behaves.
func (b *Browser) pollExport(resource types.Resource) error {
	current := "0"
	for {
		cycleURL := fmt.Sprintf(
			"%s?object=ExportAjax&function=processExportCycle&current=%s",
			b.config.AjaxURL, url.QueryEscape(current),
		)
		body, err := b.session.Get(cycleURL)
		if err != nil {
			return fmt.Errorf("export cycle request failed: %w", err)
		}

		var cycle exportCycle
		if err := json.Unmarshal(body, &cycle); err != nil {
			return fmt.Errorf("malformed export cycle response %q: %w", body, err)
		}

		percent, err := cycle.PercentComplete.Float64()
		if err != nil {
			return fmt.Errorf("malformed percentComplete %q: %w", cycle.PercentComplete, err)
		}

		b.logger.Debugf("%s export %v%% complete", resource, cycle.PercentComplete)
		if percent == 100 {
			return nil
		}
		current = cycle.Current.String()
	}
}
