package source

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

const sampleDoc = `{
  "campaigns": [{
    "id": 1,
    "name": "Summer Sale",
    "status": "active",
    "demographic_breakdown": [
      {"gender": "Male", "age_group": "18-24", "performance": {"impressions": 1000, "clicks": "50", "conversions": null}}
    ],
    "device_performance": [
      {"device": "Mobile", "impressions": 2000, "clicks": 100, "conversions": 10, "spend": 50.5, "revenue": 400, "ctr": 99, "percentage_of_traffic": 62.5}
    ],
    "regional_performance": [
      {"region": "Dubai", "country": "UAE", "revenue": "3000.25", "spend": "n/a", "conversions": 12}
    ]
  }],
  "marketing_stats": {"total_clicks": 50, "total_spend": 100, "total_revenue": 500}
}`

func TestDecodeLenientNumbers(t *testing.T) {
	data, err := Decode(strings.NewReader(sampleDoc))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}

	c := data.FirstCampaign()
	if c == nil {
		t.Fatal("expected a campaign")
	}
	perf := c.DemographicBreakdown[0].Performance
	if perf.Clicks != 50 {
		t.Errorf("clicks from string = %d, want 50", perf.Clicks)
	}
	if perf.Conversions != 0 {
		t.Errorf("null conversions = %d, want 0", perf.Conversions)
	}
	if got := c.RegionalPerformance[0].Revenue; got != 3000.25 {
		t.Errorf("revenue = %v, want 3000.25", got)
	}
	if got := c.RegionalPerformance[0].Spend; got != 0 {
		t.Errorf("malformed spend = %v, want 0", got)
	}
	if data.WeeklyPerformance != nil {
		t.Errorf("weekly_performance should be absent")
	}
}

func TestDecodeOutOfRangeCounts(t *testing.T) {
	doc := `{"campaigns":[{"demographic_breakdown":[
	  {"gender":"Male","age_group":"18-24","performance":{"impressions":1e30,"clicks":"1e20","conversions":9007199254740992}}
	]}],"marketing_stats":{}}`

	data, err := Decode(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}

	perf := data.FirstCampaign().DemographicBreakdown[0].Performance
	if perf.Impressions != 0 {
		t.Errorf("impressions = %d, want 0", perf.Impressions)
	}
	if perf.Clicks != 0 {
		t.Errorf("clicks = %d, want 0", perf.Clicks)
	}
	if perf.Conversions != 9007199254740992 {
		t.Errorf("conversions = %d, want 2^53", perf.Conversions)
	}
}

func TestDecodeRejectsNonJSON(t *testing.T) {
	if _, err := Decode(strings.NewReader("<html>")); err == nil {
		t.Fatal("expected error for non-JSON body")
	}
}

func TestHTTPFetcher(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Accept") != "application/json" {
			t.Errorf("Accept header = %q", r.Header.Get("Accept"))
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(sampleDoc))
	}))
	defer srv.Close()

	f := NewHTTPFetcher(NewHTTPClient(2*time.Second), srv.URL)
	data, err := f.Fetch(context.Background())
	if err != nil {
		t.Fatalf("Fetch() error = %v", err)
	}
	if len(data.Campaigns) != 1 {
		t.Errorf("campaigns = %d, want 1", len(data.Campaigns))
	}
}

func TestHTTPFetcherErrors(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
		wantMsg string
	}{
		{
			name: "server error",
			handler: func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, "boom", http.StatusInternalServerError)
			},
			wantMsg: "status 500",
		},
		{
			name:    "not found",
			handler: http.NotFound,
			wantMsg: "status 404",
		},
		{
			name: "bad body",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte("not json"))
			},
			wantMsg: "decode marketing data",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(tt.handler)
			defer srv.Close()

			_, err := NewHTTPFetcher(NewHTTPClient(2*time.Second), srv.URL).Fetch(context.Background())
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("error %q does not contain %q", err, tt.wantMsg)
			}
		})
	}
}

func TestHTTPFetcherTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(500 * time.Millisecond)
	}))
	defer srv.Close()

	f := NewHTTPFetcher(NewHTTPClient(50*time.Millisecond), srv.URL)
	if _, err := f.Fetch(context.Background()); err == nil {
		t.Fatal("expected timeout error")
	}
}

func TestHTTPFetcherNoURL(t *testing.T) {
	if _, err := NewHTTPFetcher(NewHTTPClient(time.Second), "").Fetch(context.Background()); err == nil {
		t.Fatal("expected error for empty url")
	}
}

func TestFileFetcher(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.json")
	if err := os.WriteFile(path, []byte(sampleDoc), 0o644); err != nil {
		t.Fatal(err)
	}

	data, err := NewFileFetcher(path).Fetch(context.Background())
	if err != nil {
		t.Fatalf("Fetch() error = %v", err)
	}
	if data.MarketingStats.TotalClicks != 50 {
		t.Errorf("total_clicks = %d, want 50", data.MarketingStats.TotalClicks)
	}

	if _, err := NewFileFetcher(filepath.Join(t.TempDir(), "missing.json")).Fetch(context.Background()); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestFileFetcherCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := NewFileFetcher("unused").Fetch(ctx); err == nil {
		t.Fatal("expected context error")
	}
}

func TestDefaultWeekly(t *testing.T) {
	weeks := DefaultWeekly().Weekly()
	if len(weeks) != 12 {
		t.Fatalf("weeks = %d, want 12", len(weeks))
	}
	for i := 1; i < len(weeks); i++ {
		if weeks[i].WeekStart <= weeks[i-1].WeekStart {
			t.Errorf("week %d out of order: %s after %s", i, weeks[i].WeekStart, weeks[i-1].WeekStart)
		}
	}

	weeks[0].Revenue = 0
	if DefaultWeekly().Weekly()[0].Revenue != 10837.69 {
		t.Error("Weekly() must return a copy")
	}
}
