package templates

import (
	"context"
	"io"
	"strconv"
	"strings"

	"github.com/a-h/templ"
)

// Charts renders every section. It is also the HTMX swap target after a
// filter change.
func Charts(sections []SectionView) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		h := &htmlWriter{w: w}
		for _, section := range sections {
			h.raw(`<section class="section"`)
			h.attr("id", "section-"+section.ID)
			h.raw(`><h2>`)
			h.text(section.Title)
			h.raw(`</h2>`)
			if section.Summary != "" {
				h.raw(`<p class="section-summary">`)
				h.text(section.Summary)
				h.raw(`</p>`)
			}
			h.raw(`<div class="panels">`)
			for _, panel := range section.Panels {
				writePanel(h, panel)
			}
			h.raw(`</div></section>`)
		}
		return h.err
	})
}

func writePanel(h *htmlWriter, panel PanelView) {
	h.raw(`<figure class="panel"`)
	h.attr("id", "panel-"+panel.ID)
	h.attr("data-dataset", panel.Dataset)
	h.raw(`>`)
	switch {
	case panel.Error != "":
		h.raw(`<p class="panel-error">`)
		h.text(panel.Error)
		h.raw(`</p>`)
	default:
		h.raw(`<div class="chart`)
		if panel.Placeholder {
			h.raw(` placeholder`)
		}
		h.raw(`">`)
		h.bytes(panel.SVG)
		h.raw(`</div>`)
	}
	h.raw(`<figcaption>`)
	h.text(panel.Title)
	if len(panel.Unmapped) > 0 {
		h.raw(` <small class="unmapped">Not on map: `)
		h.text(strings.Join(panel.Unmapped, ", "))
		h.raw(`</small>`)
	}
	h.raw(`</figcaption>`)
	if panel.Table != nil {
		writeTable(h, *panel.Table)
	}
	h.raw(`</figure>`)
}

func writeTable(h *htmlWriter, table TableView) {
	h.raw(`<table class="data"><thead><tr>`)
	for _, column := range table.Columns {
		h.raw(`<th>`)
		h.text(column)
		h.raw(`</th>`)
	}
	h.raw(`</tr></thead><tbody>`)
	if len(table.Rows) == 0 {
		h.raw(`<tr><td class="empty"`)
		h.attr("colspan", strconv.Itoa(len(table.Columns)))
		h.raw(`>No rows match the current filters</td></tr>`)
	}
	for _, row := range table.Rows {
		h.raw(`<tr>`)
		for _, cell := range row {
			h.raw(`<td>`)
			h.text(cell)
			h.raw(`</td>`)
		}
		h.raw(`</tr>`)
	}
	h.raw(`</tbody></table>`)
}
