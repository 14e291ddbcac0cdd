package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"HealthFeas/internal/domain/models"
	"HealthFeas/internal/repository"
	"HealthFeas/internal/service/ratelimit"
	"HealthFeas/internal/services/ventures"
	"HealthFeas/internal/usecase"
	pkgcache "HealthFeas/pkg/cache"
	xhttp "HealthFeas/pkg/http"
	xlogger "HealthFeas/pkg/logger"

	"github.com/labstack/echo/v4"
	"github.com/xuri/excelize/v2"
)

type envelope struct {
	Status int             `json:"status"`
	Data   json.RawMessage `json:"data"`
}

func newTestEcho(t *testing.T) *echo.Echo {
	t.Helper()
	store := repository.NewCacheResultStore(pkgcache.NewMemoryCache(), "test")
	t.Cleanup(func() { _ = store.Close() })

	calc := usecase.NewScenarioCalculator(usecase.NewScenarioRunner(ventures.All()...), store, nil, nil, 0)
	l := xlogger.Nop()
	srv := xhttp.NewServer(l, []xhttp.Handler{
		NewScenarioEchoHandler(l, calc, models.DefaultGlobals()),
		NewLiveScenarioHandler(l, calc, models.DefaultGlobals(), ratelimit.New(5, 1)),
	})
	return srv.Echo()
}

func do(t *testing.T, e *echo.Echo, method, path, body string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	var env envelope
	if strings.HasPrefix(rec.Header().Get(echo.HeaderContentType), echo.MIMEApplicationJSON) {
		if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
			t.Fatalf("decode envelope: %v (%s)", err, rec.Body.String())
		}
	}
	return rec, env
}

func TestScenarioEndpointDefaults(t *testing.T) {
	e := newTestEcho(t)
	rec, env := do(t, e, http.MethodPost, "/api/scenarios/diagnostics", `{}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d body=%s", rec.Code, rec.Body.String())
	}

	var view models.ScenarioView
	if err := json.Unmarshal(env.Data, &view); err != nil {
		t.Fatalf("decode view: %v", err)
	}
	if view.Title != "Diagnostics Micro-Clinic" || len(view.Table) != 7 {
		t.Fatalf("unexpected view %+v", view)
	}
	if view.Table[3].Value != "PKR 22,907,520" {
		t.Fatalf("FCFE row = %q", view.Table[3].Value)
	}
	if len(view.Result.Flows) != 6 || !view.Result.Appraisal.IRR.Valid {
		t.Fatalf("unexpected result %+v", view.Result)
	}
	if rec.Header().Get(echo.HeaderXRequestID) == "" {
		t.Fatalf("expected request id header")
	}
}

func TestScenarioEndpointHonoursInputs(t *testing.T) {
	e := newTestEcho(t)
	body := `{"globals":{"years":3,"price_growth":0},"params":{"users":0}}`
	rec, env := do(t, e, http.MethodPost, "/api/scenarios/tele_wellness", body)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d body=%s", rec.Code, rec.Body.String())
	}
	var view models.ScenarioView
	if err := json.Unmarshal(env.Data, &view); err != nil {
		t.Fatalf("decode view: %v", err)
	}
	if len(view.Result.Flows) != 4 {
		t.Fatalf("expected 4 flows for a 3-year horizon, got %d", len(view.Result.Flows))
	}
	if view.Result.Appraisal.Payback.Valid || view.Table[2].Value != "n/a" {
		t.Fatalf("zero users should leave payback undefined, got %+v", view.Table)
	}
	if view.Result.Flows[1] != -12_000_000 {
		t.Fatalf("flow[1] = %v, want -fixed costs", view.Result.Flows[1])
	}
}

func TestScenarioEndpointErrors(t *testing.T) {
	e := newTestEcho(t)
	tests := []struct {
		name      string
		path      string
		body      string
		wantCode  int
		wantField string
	}{
		{"unknown venture", "/api/scenarios/dental", `{}`, http.StatusNotFound, ""},
		{"global out of range", "/api/scenarios/diagnostics", `{"globals":{"discount_rate":0.5}}`, http.StatusBadRequest, "globals.discount_rate"},
		{"param out of range", "/api/scenarios/tele_wellness", `{"params":{"monthly_churn":0.5}}`, http.StatusBadRequest, "params.monthly_churn"},
		{"malformed body", "/api/scenarios/diagnostics", `{"globals":`, http.StatusBadRequest, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, env := do(t, e, http.MethodPost, tt.path, tt.body)
			if rec.Code != tt.wantCode || env.Status != tt.wantCode {
				t.Fatalf("status = %d/%d, want %d body=%s", rec.Code, env.Status, tt.wantCode, rec.Body.String())
			}
			if tt.wantField == "" {
				return
			}
			var verrs []xhttp.ValidationError
			if err := json.Unmarshal(env.Data, &verrs); err != nil {
				t.Fatalf("decode errors: %v", err)
			}
			if len(verrs) != 1 || verrs[0].Field != tt.wantField {
				t.Fatalf("errors = %+v, want field %s", verrs, tt.wantField)
			}
		})
	}
}

func TestDefaultsEndpoint(t *testing.T) {
	e := newTestEcho(t)
	rec, env := do(t, e, http.MethodGet, "/api/scenarios/defaults", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var view models.DefaultsView
	if err := json.Unmarshal(env.Data, &view); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if view.Globals.DiscountRate != 0.18 || view.TeleWellness.Users != 25_000 || view.CosmeticStudio.OperatingDays != 300 {
		t.Fatalf("unexpected defaults %+v", view)
	}
}

func TestPortfolioEndpoint(t *testing.T) {
	e := newTestEcho(t)
	rec, env := do(t, e, http.MethodPost, "/api/portfolio", `{"cosmetic_studio":{"local_price_growth":0}}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d body=%s", rec.Code, rec.Body.String())
	}
	var views []models.ScenarioView
	if err := json.Unmarshal(env.Data, &views); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(views) != 3 {
		t.Fatalf("expected 3 views, got %d", len(views))
	}
	for i, id := range models.Ventures() {
		if views[i].Result.Venture != id {
			t.Fatalf("view %d is %s, want %s", i, views[i].Result.Venture, id)
		}
	}
	flows := views[2].Result.Flows
	if flows[1] != flows[5] {
		t.Fatalf("zero local price growth should give flat flows, got %v", flows)
	}
}

func TestPortfolioExport(t *testing.T) {
	e := newTestEcho(t)
	req := httptest.NewRequest(http.MethodPost, "/api/portfolio/export", strings.NewReader(`{}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK || rec.Header().Get(echo.HeaderContentType) != xlsxMIME {
		t.Fatalf("status = %d type=%q", rec.Code, rec.Header().Get(echo.HeaderContentType))
	}
	f, err := excelize.OpenReader(bytes.NewReader(rec.Body.Bytes()))
	if err != nil {
		t.Fatalf("open workbook: %v", err)
	}
	defer f.Close()
	if n := len(f.GetSheetList()); n != 4 {
		t.Fatalf("expected 4 sheets, got %d", n)
	}
}

func TestHealthz(t *testing.T) {
	e := newTestEcho(t)
	rec, _ := do(t, e, http.MethodGet, "/healthz", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
}
