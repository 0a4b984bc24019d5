package services

import (
	"context"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"mkt-dashboard/internal/aggregate"
	"mkt-dashboard/internal/chart"
	"mkt-dashboard/internal/format"
	"mkt-dashboard/internal/models"
	"mkt-dashboard/internal/observability"
	"mkt-dashboard/internal/source"
)

const (
	ViewDemographic = "demographic"
	ViewDevices     = "devices"
	ViewRegions     = "regions"
	ViewWeekly      = "weekly"
	ViewOverview    = "overview"
)

// FetchErrorMessage is shown in place of data when a view could not load.
const FetchErrorMessage = "Failed to fetch data"

type Card struct {
	Title string `json:"title"`
	Value string `json:"value"`
	Icon  string `json:"icon"`
}

type DemographicReport struct {
	Cards        []Card                   `json:"cards"`
	Genders      []models.AggregatedGroup `json:"genders"`
	AgeGroups    []models.AggregatedGroup `json:"age_groups"`
	SpendByAge   chart.BarPlot            `json:"spend_by_age"`
	RevenueByAge chart.BarPlot            `json:"revenue_by_age"`
	Male         []models.AgeGroupRow     `json:"male_age_groups"`
	Female       []models.AgeGroupRow     `json:"female_age_groups"`
}

type DeviceReport struct {
	Devices []models.DeviceMetrics `json:"devices"`
	Error   string                 `json:"error,omitempty"`
}

type RegionReport struct {
	Regions        []models.RegionMetrics `json:"regions"`
	RevenueBubbles []chart.Bubble         `json:"revenue_bubbles"`
	SpendBubbles   []chart.Bubble         `json:"spend_bubbles"`
	Bounds         *chart.Bounds          `json:"bounds,omitempty"`
	Error          string                 `json:"error,omitempty"`
}

// WeeklyReport carries Fallback when the rows came from the default
// provider instead of the fetched document.
type WeeklyReport struct {
	Weeks    []models.WeeklyMetrics `json:"weeks"`
	Revenue  chart.LinePlot         `json:"revenue"`
	Spend    chart.LinePlot         `json:"spend"`
	Fallback bool                   `json:"fallback"`
}

type Overview struct {
	Demographic *DemographicReport `json:"demographic"`
	Devices     *DeviceReport      `json:"devices"`
	Regions     *RegionReport      `json:"regions"`
	Weekly      *WeeklyReport      `json:"weekly"`
}

// Dashboard loads the marketing document once per call and projects it
// into the view reports. It holds no dataset between calls.
type Dashboard struct {
	fetcher source.Fetcher
	weekly  source.WeeklyProvider
	metrics *observability.Metrics
	logger  *slog.Logger

	loads     atomic.Int64
	failures  atomic.Int64
	fallbacks atomic.Int64
	lastLoad  atomic.Int64
}

// NewDashboard wires a dashboard. weekly and metrics may be nil; without a
// weekly provider a failed weekly load is returned as an error.
func NewDashboard(fetcher source.Fetcher, weekly source.WeeklyProvider, metrics *observability.Metrics, logger *slog.Logger) *Dashboard {
	if logger == nil {
		logger = slog.Default()
	}
	return &Dashboard{
		fetcher: fetcher,
		weekly:  weekly,
		metrics: metrics,
		logger:  logger,
	}
}

func (d *Dashboard) load(ctx context.Context, view string) (*models.MarketingData, error) {
	ctx, span := observability.StartSpan(ctx, "fetch "+view)
	span.SetTag("view", view)

	data, err := d.fetcher.Fetch(ctx)
	elapsed := span.Finish()
	d.metrics.ObserveFetch(view, elapsed, err)
	d.loads.Add(1)

	if err != nil {
		span.SetError(err)
		d.failures.Add(1)
		observability.LoggerFrom(ctx, d.logger).Warn("marketing data fetch failed", "span", span)
		return nil, fmt.Errorf("load %s: %w", view, err)
	}

	d.lastLoad.Store(time.Now().UnixNano())
	observability.LoggerFrom(ctx, d.logger).Debug("marketing data fetched", "span", span, "campaigns", len(data.Campaigns))
	return data, nil
}

func (d *Dashboard) Demographic(ctx context.Context) (*DemographicReport, error) {
	data, err := d.load(ctx, ViewDemographic)
	if err != nil {
		return nil, err
	}
	return buildDemographic(data), nil
}

// Devices never fails; a fetch error is logged and reported in the
// report's Error field.
func (d *Dashboard) Devices(ctx context.Context) *DeviceReport {
	data, err := d.load(ctx, ViewDevices)
	if err != nil {
		return &DeviceReport{Devices: []models.DeviceMetrics{}, Error: FetchErrorMessage}
	}
	return buildDevices(data)
}

func (d *Dashboard) Regions(ctx context.Context) *RegionReport {
	data, err := d.load(ctx, ViewRegions)
	if err != nil {
		return &RegionReport{
			Regions:        []models.RegionMetrics{},
			RevenueBubbles: []chart.Bubble{},
			SpendBubbles:   []chart.Bubble{},
			Error:          FetchErrorMessage,
		}
	}
	return buildRegions(data)
}

func (d *Dashboard) Weekly(ctx context.Context) (*WeeklyReport, error) {
	data, err := d.load(ctx, ViewWeekly)
	if err != nil {
		if d.weekly == nil {
			return nil, err
		}
		return d.weeklyFallback(ctx, "fetch_error"), nil
	}
	if len(data.WeeklyPerformance) == 0 && d.weekly != nil {
		return d.weeklyFallback(ctx, "missing_weekly"), nil
	}
	return buildWeekly(data.WeeklyPerformance, false), nil
}

func (d *Dashboard) weeklyFallback(ctx context.Context, reason string) *WeeklyReport {
	d.fallbacks.Add(1)
	d.metrics.IncFallback(ViewWeekly, reason)
	observability.LoggerFrom(ctx, d.logger).Info("serving default weekly data", "reason", reason)
	return buildWeekly(d.weekly.Weekly(), true)
}

// Overview fetches once and builds every view from the same document.
// When the fetch fails and a weekly provider is set, the returned
// Overview carries only the fallback Weekly report alongside the error.
func (d *Dashboard) Overview(ctx context.Context) (*Overview, error) {
	data, err := d.load(ctx, ViewOverview)
	if err != nil {
		if d.weekly == nil {
			return nil, err
		}
		d.fallbacks.Add(1)
		d.metrics.IncFallback(ViewOverview, "fetch_error")
		return &Overview{Weekly: buildWeekly(d.weekly.Weekly(), true)}, err
	}

	var out Overview
	var g errgroup.Group
	g.Go(func() error {
		out.Demographic = buildDemographic(data)
		return nil
	})
	g.Go(func() error {
		out.Devices = buildDevices(data)
		return nil
	})
	g.Go(func() error {
		out.Regions = buildRegions(data)
		return nil
	})
	g.Go(func() error {
		weeks, fallback := data.WeeklyPerformance, false
		if len(weeks) == 0 && d.weekly != nil {
			d.fallbacks.Add(1)
			d.metrics.IncFallback(ViewOverview, "missing_weekly")
			weeks, fallback = d.weekly.Weekly(), true
		}
		out.Weekly = buildWeekly(weeks, fallback)
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &out, nil
}

// Stats reports load counters for the admin endpoint.
func (d *Dashboard) Stats() map[string]any {
	stats := map[string]any{
		"loads":     d.loads.Load(),
		"failures":  d.failures.Load(),
		"fallbacks": d.fallbacks.Load(),
	}
	if ns := d.lastLoad.Load(); ns > 0 {
		stats["last_load"] = time.Unix(0, ns).UTC()
	}
	return stats
}

func buildDemographic(data *models.MarketingData) *DemographicReport {
	totals := aggregate.TotalsFromStats(data.MarketingStats)
	genders := aggregate.GroupByGender(data.Campaigns, totals)
	ages := aggregate.GroupByAgeGroup(data.Campaigns, totals)

	male := aggregate.Find(genders, "male")
	female := aggregate.Find(genders, "female")

	return &DemographicReport{
		Cards: []Card{
			{Title: "Total Clicks by Males", Value: format.Integer(male.Clicks), Icon: "clicks"},
			{Title: "Total Spend by Males", Value: format.Currency(male.Spend), Icon: "spend"},
			{Title: "Total Revenue by Males", Value: format.Currency(male.Revenue), Icon: "revenue"},
			{Title: "Total Clicks by Females", Value: format.Integer(female.Clicks), Icon: "clicks"},
			{Title: "Total Spend by Females", Value: format.Currency(female.Spend), Icon: "spend"},
			{Title: "Total Revenue by Females", Value: format.Currency(female.Revenue), Icon: "revenue"},
		},
		Genders:      genders,
		AgeGroups:    ages,
		SpendByAge:   chart.MapBars(aggregate.GroupSeries(ages, aggregate.MetricSpend), chart.BarSurface, format.Currency),
		RevenueByAge: chart.MapBars(aggregate.GroupSeries(ages, aggregate.MetricRevenue), chart.BarSurface, format.Currency),
		Male:         aggregate.GenderAgeTable(data.Campaigns, "male"),
		Female:       aggregate.GenderAgeTable(data.Campaigns, "female"),
	}
}

func buildDevices(data *models.MarketingData) *DeviceReport {
	report := &DeviceReport{Devices: []models.DeviceMetrics{}}
	if c := data.FirstCampaign(); c != nil {
		report.Devices = aggregate.DeviceMetrics(c.DevicePerformance)
	}
	return report
}

func buildRegions(data *models.MarketingData) *RegionReport {
	var regions []models.RegionMetrics
	if c := data.FirstCampaign(); c != nil {
		regions = aggregate.RegionMetrics(c.RegionalPerformance)
	}
	if regions == nil {
		regions = []models.RegionMetrics{}
	}

	report := &RegionReport{
		Regions:        regions,
		RevenueBubbles: chart.MapBubbles(regions, chart.RegionRevenue, format.Currency),
		SpendBubbles:   chart.MapBubbles(regions, chart.RegionSpend, format.Currency),
	}
	if b, ok := chart.FitBounds(report.RevenueBubbles); ok {
		report.Bounds = &b
	}
	return report
}

func buildWeekly(weeks []models.WeeklyPerformance, fallback bool) *WeeklyReport {
	rows := aggregate.WeeklyMetrics(weeks)
	return &WeeklyReport{
		Weeks:    rows,
		Revenue:  chart.MapLine(aggregate.WeeklySeries(rows, aggregate.MetricRevenue), chart.DefaultSurface, format.Currency),
		Spend:    chart.MapLine(aggregate.WeeklySeries(rows, aggregate.MetricSpend), chart.DefaultSurface, format.Currency),
		Fallback: fallback,
	}
}

// WeeklyChart maps one weekly metric onto a caller-sized surface.
func WeeklyChart(report *WeeklyReport, m aggregate.Metric, s chart.Surface) chart.LinePlot {
	f := format.Number
	if m.IsCurrency() {
		f = format.Currency
	}
	return chart.MapLine(aggregate.WeeklySeries(report.Weeks, m), s, f)
}
