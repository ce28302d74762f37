package templates

import (
	"context"
	"io"
	"strconv"

	"github.com/a-h/templ"
)

// Page renders the complete dashboard document.
func Page(view PageView) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := &htmlWriter{w: w}
		h.raw(`<!DOCTYPE html><html lang="en"><head><meta charset="utf-8">`)
		h.raw(`<meta name="viewport" content="width=device-width, initial-scale=1">`)
		h.raw(`<title>`)
		h.text(view.Title)
		h.raw(`</title><link rel="stylesheet" href="/static/dashboard.css">`)
		h.raw(`<script src="/static/htmx-shim.js" defer></script></head><body>`)

		h.raw(`<header class="page-header"><h1>`)
		h.text(view.Title)
		h.raw(`</h1>`)
		if view.Summary != "" {
			h.raw(`<p class="deal-summary">`)
			h.text(view.Summary)
			h.raw(`</p>`)
		}
		h.raw(`</header><div class="layout"><aside class="sidebar">`)
		if h.err != nil {
			return h.err
		}
		if err := Filters(view.Filters).Render(ctx, w); err != nil {
			return err
		}
		if err := Export(view.Export).Render(ctx, w); err != nil {
			return err
		}
		h.raw(`</aside><main id="charts" class="charts">`)
		if h.err != nil {
			return h.err
		}
		if err := Charts(view.Sections).Render(ctx, w); err != nil {
			return err
		}
		h.raw(`</main></div></body></html>`)
		return h.err
	})
}

// Filters renders the filter sidebar form. Each dimension carries a hidden
// "<key>_present" field so an empty multi-select still submits.
func Filters(controls []FilterControl) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		h := &htmlWriter{w: w}
		h.raw(`<form class="filters" method="post" action="/filters" hx-post="/filters" hx-target="#charts">`)
		h.raw(`<h2>Filters</h2>`)
		for _, control := range controls {
			h.raw(`<label class="filter"><span>`)
			h.text(control.Label)
			h.raw(`</span><input type="hidden"`)
			h.attr("name", control.Key+"_present")
			h.raw(` value="1"><select multiple`)
			h.attr("name", control.Key)
			h.attr("size", sizeFor(len(control.Options)))
			h.raw(`>`)
			for _, option := range control.Options {
				writeOption(h, option)
			}
			h.raw(`</select></label>`)
		}
		h.raw(`<div class="actions"><button type="submit">Apply</button>`)
		h.raw(`<button type="submit" formaction="/filters/reset" hx-post="/filters/reset">Reset</button></div></form>`)
		return h.err
	})
}

// Export renders the dataset download selector.
func Export(control ExportControl) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		h := &htmlWriter{w: w}
		h.raw(`<form class="export" method="get" action="/export"><h2>Export</h2>`)
		h.raw(`<select name="dataset">`)
		for _, option := range control.Options {
			writeOption(h, option)
		}
		h.raw(`</select><button type="submit">Download CSV</button></form>`)
		return h.err
	})
}

func writeOption(h *htmlWriter, option Option) {
	h.raw(`<option`)
	h.attr("value", option.Value)
	if option.Selected {
		h.raw(` selected`)
	}
	h.raw(`>`)
	h.text(option.Value)
	h.raw(`</option>`)
}

func sizeFor(options int) string {
	return strconv.Itoa(min(max(options, 2), 8))
}
