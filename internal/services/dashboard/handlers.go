package dashboard

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/a-h/templ"
	"github.com/louisbranch/poolview/internal/chart"
	"github.com/louisbranch/poolview/internal/dataset"
	"github.com/louisbranch/poolview/internal/export"
	"github.com/louisbranch/poolview/internal/filter"
	"github.com/louisbranch/poolview/internal/platform/otel"
	apperrors "github.com/louisbranch/poolview/internal/services/dashboard/platform/errors"
	"github.com/louisbranch/poolview/internal/services/dashboard/platform/httpx"
	"github.com/louisbranch/poolview/internal/services/dashboard/platform/sessioncookie"
	"github.com/louisbranch/poolview/internal/services/dashboard/templates"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// session resolves the caller's session, issuing a cookie for new ones.
func (h *Handler) session(w http.ResponseWriter, r *http.Request) (*session, error) {
	sessionID, _ := sessioncookie.Read(r)
	sess, created, err := h.sessions.acquire(sessionID)
	if err != nil {
		return nil, err
	}
	if created {
		sessioncookie.Write(w, r, sess.id)
	}
	return sess, nil
}

func (h *Handler) handleIndex(w http.ResponseWriter, r *http.Request) {
	sess, err := h.session(w, r)
	if err != nil {
		httpx.WriteError(w, err)
		return
	}
	printer := printerFor(r)
	var page templates.PageView
	_ = sess.with(func(s *session) error {
		page = h.pageView(r.Context(), s, printer)
		return nil
	})
	templ.Handler(templates.Page(page)).ServeHTTP(w, r)
}

func (h *Handler) handleFilters(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		httpx.WriteError(w, apperrors.Wrap(apperrors.KindInvalidInput, "parse filter form", err))
		return
	}
	h.updateFilters(w, r, "dashboard.filters.apply", func(state *filter.State) error {
		return applyFilterForm(state, r.PostForm)
	})
}

func (h *Handler) handleFiltersReset(w http.ResponseWriter, r *http.Request) {
	h.updateFilters(w, r, "dashboard.filters.reset", func(state *filter.State) error {
		state.Reset()
		return nil
	})
}

// updateFilters mutates the session state and answers with the charts
// fragment for HTMX or a redirect to the page otherwise.
func (h *Handler) updateFilters(w http.ResponseWriter, r *http.Request, spanName string, mutate func(*filter.State) error) {
	ctx, span := otel.Tracer().Start(r.Context(), spanName)
	defer span.End()

	sess, err := h.session(w, r)
	if err != nil {
		httpx.WriteError(w, err)
		return
	}
	htmx := httpx.IsHTMXRequest(r)
	printer := printerFor(r)
	var sections []templates.SectionView
	err = sess.with(func(s *session) error {
		if err := mutate(s.state); err != nil {
			return err
		}
		for _, dim := range filter.Dimensions() {
			span.SetAttributes(attribute.Int("filter."+string(dim), len(s.state.Selection(dim))))
		}
		if htmx {
			sections = h.sectionViews(ctx, s.state, printer)
		}
		return nil
	})
	if err != nil {
		span.RecordError(err)
		httpx.WriteError(w, err)
		return
	}
	if !htmx {
		httpx.WriteRedirect(w, r, "/")
		return
	}
	templ.Handler(templates.Charts(sections)).ServeHTTP(w, r)
}

// applyFilterForm replaces the selection of every dimension the form
// mentions. A dimension counts as submitted when its "<key>_present" marker
// or any value is posted; an absent dimension keeps its selection.
func applyFilterForm(state *filter.State, form url.Values) error {
	for _, dim := range filter.Dimensions() {
		key := string(dim)
		_, present := form[key+"_present"]
		values, hasValues := form[key]
		if !present && !hasValues {
			continue
		}
		if err := state.SetSelection(dim, values); err != nil {
			return err
		}
	}
	return nil
}

func (h *Handler) handleChart(w http.ResponseWriter, r *http.Request) {
	panelID := r.PathValue("panelID")
	panel, ok := h.layout.Panel(panelID)
	if !ok {
		httpx.WriteError(w, apperrors.E(apperrors.KindNotFound, fmt.Sprintf("unknown panel %q", panelID)))
		return
	}
	sess, err := h.session(w, r)
	if err != nil {
		httpx.WriteError(w, err)
		return
	}
	var rendered chart.RenderedChart
	err = sess.with(func(s *session) error {
		var renderErr error
		rendered, _, renderErr = h.renderPanel(r.Context(), s.state, panel)
		return renderErr
	})
	if err != nil {
		h.logger.Printf("render chart failed panel=%s err=%v", panel.ID, err)
		httpx.WriteError(w, err)
		return
	}
	w.Header().Set("Content-Type", "image/svg+xml")
	w.Header().Set("Cache-Control", "no-store")
	if rendered.Placeholder {
		w.Header().Set("X-Chart-Placeholder", "true")
	}
	_, _ = w.Write(rendered.SVG)
}

func (h *Handler) handleExport(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer().Start(r.Context(), "dashboard.export")
	defer span.End()

	sess, err := h.session(w, r)
	if err != nil {
		httpx.WriteError(w, err)
		return
	}
	var artifact export.Artifact
	err = sess.with(func(s *session) error {
		requested := r.URL.Query().Get("dataset")
		if requested == "" {
			requested = s.export
		}
		name, err := h.resolveDataset(requested)
		if err != nil {
			return apperrors.Wrap(apperrors.KindNotFound, "export", err)
		}
		span.SetAttributes(attribute.String("dataset.name", name))
		s.export = name
		filtered, err := h.project(ctx, s.state, name)
		if err != nil {
			return err
		}
		artifact, err = export.Download(filtered)
		return err
	})
	if err != nil {
		span.RecordError(err)
		httpx.WriteError(w, err)
		return
	}
	w.Header().Set("Content-Type", artifact.MIMEType+"; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", artifact.Filename))
	w.Header().Set("Content-Length", strconv.Itoa(len(artifact.Body)))
	_, _ = w.Write(artifact.Body)
}

func (h *Handler) handleView(w http.ResponseWriter, r *http.Request) {
	sess, err := h.session(w, r)
	if err != nil {
		_ = httpx.WriteJSONError(w, err)
		return
	}
	var filtered dataset.Dataset
	err = sess.with(func(s *session) error {
		name, err := h.resolveDataset(r.PathValue("dataset"))
		if err != nil {
			return apperrors.Wrap(apperrors.KindNotFound, "view", err)
		}
		filtered, err = h.project(r.Context(), s.state, name)
		return err
	})
	if err != nil {
		_ = httpx.WriteJSONError(w, err)
		return
	}
	_ = httpx.WriteJSON(w, http.StatusOK, filtered)
}

func (h *Handler) project(ctx context.Context, state *filter.State, name string) (dataset.Dataset, error) {
	_, span := otel.Tracer().Start(ctx, "dashboard.project", trace.WithAttributes(attribute.String("dataset.name", name)))
	defer span.End()
	filtered, err := h.projector.Project(state, name)
	if err != nil {
		span.RecordError(err)
		return dataset.Dataset{}, err
	}
	span.SetAttributes(attribute.Int("dataset.records", filtered.Len()))
	return filtered, nil
}

func (h *Handler) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok"))
}
