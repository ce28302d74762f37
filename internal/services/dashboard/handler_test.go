package dashboard

import (
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"net/url"
	"slices"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/louisbranch/poolview/internal/dataset"
	"github.com/louisbranch/poolview/internal/services/dashboard/platform/sessioncookie"
)

func newTestHandler(t *testing.T) http.Handler {
	t.Helper()
	h, err := NewHandler(Config{Logger: log.New(io.Discard, "", 0)})
	if err != nil {
		t.Fatalf("NewHandler() error = %v", err)
	}
	return h.Routes()
}

// client replays the session cookie the first response issued.
type client struct {
	t       *testing.T
	handler http.Handler
	cookie  *http.Cookie
}

func newClient(t *testing.T, handler http.Handler) *client {
	return &client{t: t, handler: handler}
}

func (c *client) do(req *http.Request) *httptest.ResponseRecorder {
	c.t.Helper()
	if c.cookie != nil {
		req.AddCookie(c.cookie)
	}
	rr := httptest.NewRecorder()
	c.handler.ServeHTTP(rr, req)
	for _, cookie := range rr.Result().Cookies() {
		if cookie.Name == sessioncookie.Name {
			c.cookie = cookie
		}
	}
	return rr
}

func (c *client) get(target string) *httptest.ResponseRecorder {
	return c.do(httptest.NewRequest(http.MethodGet, target, nil))
}

func (c *client) post(target string, form url.Values, htmx bool) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if htmx {
		req.Header.Set("HX-Request", "true")
	}
	return c.do(req)
}

func industryForm(values ...string) url.Values {
	return url.Values{"industry_present": {"1"}, "industry": values}
}

func TestIndexRendersPageAndIssuesSession(t *testing.T) {
	t.Parallel()

	c := newClient(t, newTestHandler(t))
	rr := c.get("/")
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d", rr.Code)
	}
	if c.cookie == nil || c.cookie.Value == "" {
		t.Fatal("expected session cookie")
	}
	body := rr.Body.String()
	for _, want := range []string{
		"<title>Clinic Loan Pool Dashboard</title>",
		`name="industry_present"`,
		`name="score_band"`,
		`<option value="Dental" selected>`,
		`id="panel-state-map"`,
		`id="panel-enhancement-waterfall"`,
		"<svg",
		"Not on map: ZZ",
	} {
		if !strings.Contains(body, want) {
			t.Fatalf("page missing %q", want)
		}
	}

	first := c.cookie.Value
	c.get("/")
	if c.cookie.Value != first {
		t.Fatal("session should be reused")
	}
}

func TestUnknownPathIs404(t *testing.T) {
	t.Parallel()

	rr := newClient(t, newTestHandler(t)).get("/nope")
	if rr.Code != http.StatusNotFound {
		t.Fatalf("status = %d", rr.Code)
	}
}

func TestFilterPostChangesExportForThatSessionOnly(t *testing.T) {
	t.Parallel()

	handler := newTestHandler(t)
	alice := newClient(t, handler)
	bob := newClient(t, handler)
	alice.get("/")
	bob.get("/")

	rr := alice.post("/filters", industryForm("Dental", "Medspa"), false)
	if rr.Code != http.StatusSeeOther || rr.Header().Get("Location") != "/" {
		t.Fatalf("filters = %d %q", rr.Code, rr.Header().Get("Location"))
	}

	rr = alice.get("/export?dataset=Industries")
	if rr.Code != http.StatusOK {
		t.Fatalf("export status = %d", rr.Code)
	}
	if got := rr.Header().Get("Content-Type"); !strings.HasPrefix(got, "text/csv") {
		t.Fatalf("content type = %q", got)
	}
	if got := rr.Header().Get("Content-Disposition"); got != `attachment; filename="industries_data.csv"` {
		t.Fatalf("content disposition = %q", got)
	}
	if diff := cmp.Diff("Industry,Balance ($M)\nDental,113.9\nMedspa,111.3\n", rr.Body.String()); diff != "" {
		t.Fatalf("alice csv mismatch (-want +got):\n%s", diff)
	}

	rr = bob.get("/export?dataset=Industries")
	if lines := strings.Count(rr.Body.String(), "\n"); lines != 5 {
		t.Fatalf("bob csv has %d lines, want header + 4:\n%s", lines, rr.Body.String())
	}
}

func TestEmptySelectionExportsHeaderOnly(t *testing.T) {
	t.Parallel()

	c := newClient(t, newTestHandler(t))
	c.post("/filters", industryForm(), false)
	rr := c.get("/export?dataset=Industries")
	if rr.Body.String() != "Industry,Balance ($M)\n" {
		t.Fatalf("csv = %q", rr.Body.String())
	}

	rr = c.get("/charts/industry-mix")
	if rr.Code != http.StatusOK || rr.Header().Get("X-Chart-Placeholder") != "true" {
		t.Fatalf("chart = %d placeholder=%q", rr.Code, rr.Header().Get("X-Chart-Placeholder"))
	}
}

func TestMerchantConcentrationFollowsIndustryFilter(t *testing.T) {
	t.Parallel()

	c := newClient(t, newTestHandler(t))
	c.post("/filters", industryForm("Medspa"), false)
	rr := c.get("/api/views/merchant_concentration")
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d", rr.Code)
	}
	var payload struct {
		Name    string   `json:"name"`
		Columns []string `json:"columns"`
		Rows    [][]any  `json:"rows"`
	}
	if err := json.NewDecoder(rr.Body).Decode(&payload); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if payload.Name != dataset.MerchantConcentration || len(payload.Rows) != 3 {
		t.Fatalf("payload = %+v", payload)
	}
	if diff := cmp.Diff([]string{"Merchant", "Industry", "Balance ($M)"}, payload.Columns); diff != "" {
		t.Fatalf("columns mismatch (-want +got):\n%s", diff)
	}
	industry := slices.Index(payload.Columns, "Industry")
	if industry < 0 {
		t.Fatalf("columns = %v", payload.Columns)
	}
	for _, row := range payload.Rows {
		if len(row) != len(payload.Columns) {
			t.Fatalf("row %v not aligned with columns %v", row, payload.Columns)
		}
		if row[industry] != "Medspa" {
			t.Fatalf("row leaked through filter: %v", row)
		}
	}
}

func TestFilterPostHTMXReturnsChartsFragment(t *testing.T) {
	t.Parallel()

	c := newClient(t, newTestHandler(t))
	rr := c.post("/filters", industryForm("Dental"), true)
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d", rr.Code)
	}
	body := rr.Body.String()
	if strings.Contains(body, "<html") || strings.Contains(body, `name="industry_present"`) {
		t.Fatal("fragment must only contain the charts")
	}
	if !strings.HasPrefix(body, `<section class="section" id="section-geography">`) {
		t.Fatalf("fragment starts with %q", body[:min(80, len(body))])
	}
	if !strings.Contains(body, `id="panel-industry-mix"`) {
		t.Fatal("fragment missing industry panel")
	}
}

func TestFilterFormLeavesAbsentDimensionsAlone(t *testing.T) {
	t.Parallel()

	c := newClient(t, newTestHandler(t))
	c.post("/filters", url.Values{"loan_type_present": {"1"}, "loan_type": {"Promo"}}, false)
	c.post("/filters", industryForm("Dental"), false)

	rr := c.get("/export?dataset=Promo%20Mix")
	want := "Loan Type,Balance ($M),Share (%)\nPromo,104.3,38.4\n"
	if rr.Body.String() != want {
		t.Fatalf("csv = %q, want %q", rr.Body.String(), want)
	}
}

func TestFiltersResetRestoresSelection(t *testing.T) {
	t.Parallel()

	c := newClient(t, newTestHandler(t))
	c.post("/filters", industryForm(), false)
	rr := c.post("/filters/reset", url.Values{}, false)
	if rr.Code != http.StatusSeeOther {
		t.Fatalf("reset status = %d", rr.Code)
	}
	rr = c.get("/export?dataset=Industries")
	if lines := strings.Count(rr.Body.String(), "\n"); lines != 5 {
		t.Fatalf("csv after reset = %q", rr.Body.String())
	}
}

func TestExportDefaultsAndRemembersSelection(t *testing.T) {
	t.Parallel()

	c := newClient(t, newTestHandler(t))
	rr := c.get("/export")
	if got := rr.Header().Get("Content-Disposition"); got != `attachment; filename="state_concentration_data.csv"` {
		t.Fatalf("default export = %q", got)
	}

	c.get("/export?dataset=loan_terms")
	page := c.get("/").Body.String()
	if !strings.Contains(page, `<option value="Loan Terms" selected>`) {
		t.Fatal("export selector should remember the last download")
	}
}

func TestUnknownDatasetIs404(t *testing.T) {
	t.Parallel()

	c := newClient(t, newTestHandler(t))
	if rr := c.get("/export?dataset=Nope"); rr.Code != http.StatusNotFound {
		t.Fatalf("export status = %d", rr.Code)
	}
	rr := c.get("/api/views/Nope")
	if rr.Code != http.StatusNotFound {
		t.Fatalf("view status = %d", rr.Code)
	}
	if !strings.Contains(rr.Header().Get("Content-Type"), "application/json") {
		t.Fatalf("view content type = %q", rr.Header().Get("Content-Type"))
	}
}

func TestChartRoute(t *testing.T) {
	t.Parallel()

	c := newClient(t, newTestHandler(t))
	rr := c.get("/charts/enhancement-waterfall")
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d", rr.Code)
	}
	if rr.Header().Get("Content-Type") != "image/svg+xml" {
		t.Fatalf("content type = %q", rr.Header().Get("Content-Type"))
	}
	if !strings.Contains(rr.Body.String(), "<svg") {
		t.Fatal("expected svg body")
	}
	if rr := c.get("/charts/missing"); rr.Code != http.StatusNotFound {
		t.Fatalf("missing panel status = %d", rr.Code)
	}
}

func TestHealthAndStatic(t *testing.T) {
	t.Parallel()

	c := newClient(t, newTestHandler(t))
	rr := c.get("/up")
	if rr.Code != http.StatusOK || rr.Body.String() != "ok" {
		t.Fatalf("health = %d %q", rr.Code, rr.Body.String())
	}
	rr = c.get("/static/dashboard.css")
	if rr.Code != http.StatusOK || !strings.Contains(rr.Header().Get("Content-Type"), "text/css") {
		t.Fatalf("static = %d %q", rr.Code, rr.Header().Get("Content-Type"))
	}
	if rr.Header().Get("X-Request-ID") == "" {
		t.Fatal("expected request id header")
	}
}

func TestMethodMismatch(t *testing.T) {
	t.Parallel()

	c := newClient(t, newTestHandler(t))
	if rr := c.get("/filters"); rr.Code != http.StatusMethodNotAllowed {
		t.Fatalf("GET /filters = %d", rr.Code)
	}
}

func TestNewHandlerRejectsInvalidLayout(t *testing.T) {
	t.Parallel()

	layout := Layout{Sections: []Section{{ID: "a", Panels: []Panel{
		{ID: "x", Dataset: dataset.Industries, Kind: "line", Category: "Industry"},
	}}}}
	if _, err := NewHandler(Config{Layout: &layout}); err == nil {
		t.Fatal("expected layout validation error")
	}
}

func TestNewServerRequiresAddress(t *testing.T) {
	t.Parallel()

	if _, err := NewServer(Config{}); err == nil {
		t.Fatal("expected missing address error")
	}
	server, err := NewServer(Config{HTTPAddr: "127.0.0.1:0", Logger: log.New(io.Discard, "", 0)})
	if err != nil {
		t.Fatalf("NewServer() error = %v", err)
	}
	if server.httpServer.ReadHeaderTimeout == 0 {
		t.Fatal("expected read header timeout")
	}
}
