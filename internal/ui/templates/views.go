package templates

import (
	"context"

	"github.com/a-h/templ"

	"mkt-dashboard/internal/format"
	"mkt-dashboard/internal/services"
)

// Element ids patched by the SSE handlers.
const (
	DemographicID = "demographic-content"
	DeviceID      = "device-content"
	RegionID      = "region-content"
	WeeklyID      = "weekly-content"
)

// Section wraps body in the element that replaces the placeholder with
// the same id.
func Section(id string, body templ.Component) templ.Component {
	return component(func(ctx context.Context, h *html) {
		h.rawf(`<div id="%s">`, esc(id))
		h.render(ctx, body)
		h.raw(`</div>`)
	})
}

func Demographic(r *services.DemographicReport) templ.Component {
	return Section(DemographicID, component(func(ctx context.Context, h *html) {
		h.render(ctx, Cards(r.Cards))
		h.raw(`<div class="grid">`)
		h.render(ctx, BarChart("Total Spend by Age Group", r.SpendByAge))
		h.render(ctx, BarChart("Total Revenue by Age Group", r.RevenueByAge))
		h.raw(`</div><div class="grid">`)
		h.render(ctx, AgeTable("Campaign Performance by Male Age Groups", r.Male))
		h.render(ctx, AgeTable("Campaign Performance by Female Age Groups", r.Female))
		h.raw(`</div>`)
	}))
}

func Devices(r *services.DeviceReport) templ.Component {
	return Section(DeviceID, component(func(ctx context.Context, h *html) {
		if r.Error != "" {
			h.render(ctx, ErrorState(r.Error))
			return
		}
		h.render(ctx, DeviceCards(r.Devices))
	}))
}

func Regions(r *services.RegionReport) templ.Component {
	return Section(RegionID, component(func(ctx context.Context, h *html) {
		if r.Error != "" {
			h.render(ctx, ErrorState(r.Error))
			return
		}
		h.raw(`<h2>Revenue &amp; Spend by Region</h2><div class="grid">`)
		h.render(ctx, BubbleMap("Revenue by Region", "#22c55e", r.RevenueBubbles, r.Bounds))
		h.render(ctx, BubbleMap("Spend by Region", "#3b82f6", r.SpendBubbles, r.Bounds))
		h.raw(`</div>`)
		h.render(ctx, RegionTable(r.Regions))
	}))
}

func Weekly(r *services.WeeklyReport) templ.Component {
	return Section(WeeklyID, component(func(ctx context.Context, h *html) {
		if r.Fallback {
			h.raw(`<p class="notice">Live weekly data is unavailable. Showing the default weekly series.</p>`)
		}
		h.raw(`<div class="grid">`)
		h.render(ctx, LineChart("Weekly Revenue Trends", "Revenue ($)", r.Revenue, format.Currency))
		h.render(ctx, LineChart("Weekly Spend Trends", "Spend ($)", r.Spend, format.Currency))
		h.raw(`</div>`)
	}))
}

// FetchFailed replaces a view's content with an error message.
func FetchFailed(id, message string) templ.Component {
	return Section(id, ErrorState(message))
}

func Dashboard() templ.Component {
	return Page("Marketing Overview", "All campaign views at a glance.", "/", component(func(ctx context.Context, h *html) {
		h.raw(`<div data-init="@get('/sse/refresh-all')">`)
		h.render(ctx, Section(DemographicID, loading("Loading demographic data...")))
		h.render(ctx, Section(DeviceID, loading("Loading device performance data...")))
		h.render(ctx, Section(RegionID, loading("Loading regional map...")))
		h.render(ctx, Section(WeeklyID, loading("Loading charts...")))
		h.raw(`</div>`)
	}))
}

func DemographicPage() templ.Component {
	return Page("Demographic View", "Campaign performance by gender and age group.", "/demographic-view",
		Placeholder(DemographicID, "/sse/demographic", "Loading demographic data..."))
}

func DevicePage() templ.Component {
	return Page("Device Performance Analytics", "Compare marketing campaign performance across different devices.", "/device-view",
		Placeholder(DeviceID, "/sse/devices", "Loading device performance data..."))
}

func RegionPage() templ.Component {
	return Page("Regional Analytics", "Visualize campaign performance across different regions and countries.", "/region-view",
		Placeholder(RegionID, "/sse/regions", "Loading regional map..."))
}

func WeeklyPage() templ.Component {
	return Page("Weekly Performance", "Track key metrics over time to identify trends and patterns.", "/weekly-view",
		Placeholder(WeeklyID, "/sse/weekly", "Loading charts..."))
}

func loading(text string) templ.Component {
	return component(func(_ context.Context, h *html) {
		h.rawf(`<p class="loading">%s</p>`, esc(text))
	})
}
