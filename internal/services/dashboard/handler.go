package dashboard

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/louisbranch/poolview/internal/dataset"
	"github.com/louisbranch/poolview/internal/filter"
	"github.com/louisbranch/poolview/internal/services/dashboard/platform/httpx"
	"github.com/louisbranch/poolview/internal/services/dashboard/platform/observability"
	"github.com/louisbranch/poolview/internal/services/dashboard/static"
	"github.com/louisbranch/poolview/internal/view"
)

const (
	defaultIdleTimeout = 30 * time.Minute
	defaultChartWidth  = 640
	defaultChartHeight = 360
)

// Config defines the inputs for the dashboard server.
type Config struct {
	HTTPAddr string
	// SessionIdleTimeout evicts sessions unused for this long. Zero uses the
	// default; negative disables eviction.
	SessionIdleTimeout time.Duration
	ChartWidth         int
	ChartHeight        int
	// Logger defaults to log.Default().
	Logger *log.Logger
	// Registry, Governance and Layout default to the compiled-in dashboard.
	Registry   *dataset.Registry
	Governance filter.Governance
	Layout     *Layout
}

// Handler routes dashboard requests.
type Handler struct {
	registry  *dataset.Registry
	projector *view.Projector
	layout    Layout
	sessions  *sessionStore
	width     int
	height    int
	logger    *log.Logger
}

// NewHandler validates the registry, governance and layout and builds the
// request handler.
func NewHandler(cfg Config) (*Handler, error) {
	reg := cfg.Registry
	if reg == nil {
		reg = dataset.Default()
	}
	gov := cfg.Governance
	if gov == nil {
		gov = filter.DefaultGovernance()
	}
	layout := cfg.Layout
	if layout == nil {
		parsed, err := DefaultLayout()
		if err != nil {
			return nil, err
		}
		layout = &parsed
	}
	if err := layout.Validate(reg); err != nil {
		return nil, fmt.Errorf("validate layout: %w", err)
	}
	projector, err := view.NewProjector(reg, gov)
	if err != nil {
		return nil, fmt.Errorf("build projector: %w", err)
	}
	base, err := filter.NewState(reg, gov)
	if err != nil {
		return nil, fmt.Errorf("build filter state: %w", err)
	}
	names := reg.Names()
	if len(names) == 0 {
		return nil, errors.New("dataset registry is empty")
	}

	idle := cfg.SessionIdleTimeout
	if idle == 0 {
		idle = defaultIdleTimeout
	}
	width, height := cfg.ChartWidth, cfg.ChartHeight
	if width <= 0 {
		width = defaultChartWidth
	}
	if height <= 0 {
		height = defaultChartHeight
	}
	logger := cfg.Logger
	if logger == nil {
		logger = log.Default()
	}
	return &Handler{
		registry:  reg,
		projector: projector,
		layout:    *layout,
		sessions:  newSessionStore(base, names[0], idle),
		width:     width,
		height:    height,
		logger:    logger,
	}, nil
}

// Routes returns the HTTP surface wrapped in the shared middleware.
func (h *Handler) Routes() http.Handler {
	mux := http.NewServeMux()
	mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServerFS(static.FS)))
	mux.HandleFunc("GET /{$}", h.handleIndex)
	mux.HandleFunc("POST /filters", h.handleFilters)
	mux.HandleFunc("POST /filters/reset", h.handleFiltersReset)
	mux.HandleFunc("GET /charts/{panelID}", h.handleChart)
	mux.HandleFunc("GET /export", h.handleExport)
	mux.HandleFunc("GET /api/views/{dataset}", h.handleView)
	mux.HandleFunc("GET /up", h.handleHealth)
	return httpx.Chain(
		mux,
		httpx.RequestID(),
		observability.RequestLogger(h.logger),
		httpx.RecoverPanic(h.logger),
	)
}

// resolveDataset accepts a registered name or its slug form
// ("state_concentration").
func (h *Handler) resolveDataset(name string) (string, error) {
	name = strings.TrimSpace(name)
	if _, err := h.registry.Get(name); err == nil {
		return name, nil
	}
	slug := strings.ToLower(name)
	for _, candidate := range h.registry.Names() {
		if strings.ReplaceAll(strings.ToLower(candidate), " ", "_") == slug {
			return candidate, nil
		}
	}
	_, err := h.registry.Get(name)
	return "", err
}
