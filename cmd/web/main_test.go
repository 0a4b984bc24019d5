package main

import (
	"encoding/json"
	"io"
	"log/slog"
	"math"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"mkt-dashboard/internal/config"
	"mkt-dashboard/internal/source"
)

const marketingDoc = `{
  "campaigns": [{
    "id": 7,
    "name": "Winter Promo",
    "status": "active",
    "demographic_breakdown": [
      {"gender": "Male", "age_group": "35-44", "performance": {"impressions": 900, "clicks": 30, "conversions": 3}},
      {"gender": "Female", "age_group": "35-44", "performance": {"impressions": 600, "clicks": 20, "conversions": 4}}
    ],
    "device_performance": [
      {"device": "Desktop", "impressions": 1500, "clicks": 50, "conversions": 7, "spend": 250, "revenue": 1750, "percentage_of_traffic": 100}
    ],
    "regional_performance": [
      {"region": "Kuwait City", "country": "Kuwait", "revenue": 1750, "spend": 250, "conversions": 7}
    ]
  }],
  "marketing_stats": {"total_spend": 250, "total_revenue": 1750}
}`

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	path := filepath.Join(t.TempDir(), "marketing_data.json")
	if err := os.WriteFile(path, []byte(marketingDoc), 0o600); err != nil {
		t.Fatal(err)
	}

	return &config.Config{
		Source: config.SourceConfig{File: path, FetchTimeout: time.Second, WeeklyFallback: true},
		Logger: config.LoggerConfig{Level: "error", Format: "text"},
		Security: config.SecurityConfig{
			EnableRateLimit: true,
			RateLimitRPS:    100,
			RateLimitBurst:  50,
			AllowedOrigins:  []string{"http://localhost:8084"},
			TrustedProxies:  []string{"127.0.0.1"},
		},
	}
}

func testHandler(t *testing.T) http.Handler {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return newHandler(testConfig(t), logger, newRegistry())
}

func TestNewFetcher(t *testing.T) {
	if _, ok := newFetcher(config.SourceConfig{URL: "http://example.com/data", File: "x.json", FetchTimeout: time.Second}).(*source.HTTPFetcher); !ok {
		t.Error("a configured URL should select the HTTP fetcher")
	}
	if _, ok := newFetcher(config.SourceConfig{File: "x.json"}).(*source.FileFetcher); !ok {
		t.Error("without a URL the file fetcher should be used")
	}
}

func TestNewWeekly(t *testing.T) {
	if newWeekly(config.SourceConfig{WeeklyFallback: false}) != nil {
		t.Error("fallback disabled should give no provider")
	}
	if w := newWeekly(config.SourceConfig{WeeklyFallback: true}); w == nil || len(w.Weekly()) != 12 {
		t.Error("fallback enabled should give the default provider")
	}
}

func TestHandler_MiddlewareHeaders(t *testing.T) {
	h := testHandler(t)

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	for _, header := range []string{"X-Request-ID", "X-Content-Type-Options", "Content-Security-Policy"} {
		if w.Header().Get(header) == "" {
			t.Errorf("missing %s header", header)
		}
	}
}

func TestHandler_Pages(t *testing.T) {
	h := testHandler(t)

	pages := map[string]string{
		"/":                 "/sse/refresh-all",
		"/demographic-view": "/sse/demographic",
		"/device-view":      "/sse/devices",
		"/region-view":      "/sse/regions",
		"/weekly-view":      "/sse/weekly",
	}
	for path, stream := range pages {
		t.Run(path, func(t *testing.T) {
			w := httptest.NewRecorder()
			h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))

			if w.Code != http.StatusOK {
				t.Fatalf("status = %d", w.Code)
			}
			if !strings.Contains(w.Body.String(), stream) {
				t.Errorf("page should load %s", stream)
			}
		})
	}
}

func TestHandler_DemographicFromFile(t *testing.T) {
	h := testHandler(t)

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/demographic", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}

	var resp struct {
		Data struct {
			Genders []struct {
				Key   string  `json:"key"`
				Spend float64 `json:"spend"`
			} `json:"genders"`
		} `json:"data"`
	}
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatal(err)
	}
	if len(resp.Data.Genders) != 2 || resp.Data.Genders[0].Key != "male" || math.Abs(resp.Data.Genders[0].Spend-150) > 1e-9 {
		t.Errorf("genders = %+v", resp.Data.Genders)
	}
}

func TestHandler_WeeklyFallsBackWithoutWeeklyData(t *testing.T) {
	h := testHandler(t)

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/weekly", nil))

	if w.Header().Get("X-Data-Fallback") != "true" {
		t.Error("document without weekly_performance should serve the default series")
	}
}

func TestHandler_SSEThroughMiddleware(t *testing.T) {
	h := testHandler(t)

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/sse/regions", nil))

	if !strings.Contains(w.Header().Get("Content-Type"), "text/event-stream") {
		t.Errorf("content-type = %q", w.Header().Get("Content-Type"))
	}
	if !strings.Contains(w.Body.String(), "Kuwait City") {
		t.Error("region fragment missing from stream")
	}
}

func TestHandler_MetricsRecordRoutes(t *testing.T) {
	h := testHandler(t)

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/devices", nil))

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	body := w.Body.String()
	if !strings.Contains(body, `route="GET /api/devices"`) {
		t.Error("request histogram should be labeled with the route pattern")
	}
	if !strings.Contains(body, "go_goroutines") {
		t.Error("runtime collectors should be registered")
	}
}
