package dashboard

import (
	"context"
	"errors"
	"net/http"

	"github.com/louisbranch/poolview/internal/chart"
	"github.com/louisbranch/poolview/internal/dataset"
	"github.com/louisbranch/poolview/internal/filter"
	"github.com/louisbranch/poolview/internal/platform/otel"
	"github.com/louisbranch/poolview/internal/services/dashboard/templates"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var supportedLanguages = []language.Tag{
	language.AmericanEnglish,
	language.BritishEnglish,
	language.German,
	language.French,
	language.Spanish,
}

var languageMatcher = language.NewMatcher(supportedLanguages)

// printerFor formats table numbers for the request's Accept-Language.
func printerFor(r *http.Request) *message.Printer {
	tag, _ := language.MatchStrings(languageMatcher, r.Header.Get("Accept-Language"))
	return message.NewPrinter(tag)
}

func (h *Handler) pageView(ctx context.Context, sess *session, printer *message.Printer) templates.PageView {
	return templates.PageView{
		Title:    h.layout.Title,
		Summary:  h.layout.Summary,
		Filters:  filterControls(sess.state),
		Sections: h.sectionViews(ctx, sess.state, printer),
		Export:   h.exportControl(sess.export),
	}
}

func filterControls(state *filter.State) []templates.FilterControl {
	dims := filter.Dimensions()
	out := make([]templates.FilterControl, 0, len(dims))
	for _, dim := range dims {
		control := templates.FilterControl{Key: string(dim), Label: dim.Label()}
		for _, category := range state.Options(dim) {
			control.Options = append(control.Options, templates.Option{
				Value:    category,
				Selected: state.Selected(dim, category),
			})
		}
		out = append(out, control)
	}
	return out
}

func (h *Handler) exportControl(selected string) templates.ExportControl {
	names := h.registry.Names()
	control := templates.ExportControl{Options: make([]templates.Option, 0, len(names))}
	for _, name := range names {
		control.Options = append(control.Options, templates.Option{Value: name, Selected: name == selected})
	}
	return control
}

func (h *Handler) sectionViews(ctx context.Context, state *filter.State, printer *message.Printer) []templates.SectionView {
	out := make([]templates.SectionView, 0, len(h.layout.Sections))
	for _, section := range h.layout.Sections {
		sv := templates.SectionView{ID: section.ID, Title: section.Title, Summary: section.Summary}
		for _, panel := range section.Panels {
			sv.Panels = append(sv.Panels, h.panelView(ctx, state, panel, printer))
		}
		out = append(out, sv)
	}
	return out
}

// renderPanel projects the panel's dataset through state and draws it.
// Insufficient data is not a failure: the placeholder chart is returned with
// a nil error.
func (h *Handler) renderPanel(ctx context.Context, state *filter.State, panel Panel) (chart.RenderedChart, dataset.Dataset, error) {
	_, span := otel.Tracer().Start(ctx, "dashboard.render_panel", trace.WithAttributes(
		attribute.String("panel.id", panel.ID),
		attribute.String("dataset.name", panel.Dataset),
		attribute.String("chart.kind", panel.Kind),
	))
	defer span.End()

	source, err := h.projector.Project(state, panel.Dataset)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "project")
		return chart.RenderedChart{}, dataset.Dataset{}, err
	}
	span.SetAttributes(attribute.Int("dataset.records", source.Len()))

	rendered, err := chart.Render(panel.Spec(source, h.width, h.height))
	if errors.Is(err, chart.ErrInsufficientData) {
		span.SetAttributes(attribute.Bool("chart.placeholder", true))
		return rendered, source, nil
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "render")
		return chart.RenderedChart{}, source, err
	}
	return rendered, source, nil
}

func (h *Handler) panelView(ctx context.Context, state *filter.State, panel Panel, printer *message.Printer) templates.PanelView {
	pv := templates.PanelView{ID: panel.ID, Title: panel.Title, Dataset: panel.Dataset}
	rendered, source, err := h.renderPanel(ctx, state, panel)
	if err != nil {
		h.logger.Printf("render panel failed panel=%s dataset=%q err=%v", panel.ID, panel.Dataset, err)
		pv.Error = "Chart unavailable"
		return pv
	}
	pv.SVG = rendered.SVG
	pv.Placeholder = rendered.Placeholder
	pv.Message = rendered.Message
	pv.Unmapped = rendered.Unmapped
	if panel.Table {
		pv.Table = tableView(source, printer)
	}
	return pv
}

func tableView(ds dataset.Dataset, printer *message.Printer) *templates.TableView {
	table := &templates.TableView{Columns: ds.Columns()}
	for _, record := range ds.Records() {
		row := make([]string, len(record))
		for i, value := range record {
			row[i] = formatCell(printer, value)
		}
		table.Rows = append(table.Rows, row)
	}
	return table
}

func formatCell(printer *message.Printer, value dataset.Value) string {
	n, ok := value.Number()
	if !ok {
		return value.Text()
	}
	return printer.Sprint(number.Decimal(n, number.MaxFractionDigits(2)))
}
