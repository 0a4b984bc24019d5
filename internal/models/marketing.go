package models

type PerformanceRecord struct {
	Impressions Count `json:"impressions"`
	Clicks      Count `json:"clicks"`
	Conversions Count `json:"conversions"`
}

type DemographicSlice struct {
	Gender      string            `json:"gender"`
	AgeGroup    string            `json:"age_group"`
	Performance PerformanceRecord `json:"performance"`
}

type DevicePerformance struct {
	Device              string `json:"device"`
	Impressions         Count  `json:"impressions"`
	Clicks              Count  `json:"clicks"`
	Conversions         Count  `json:"conversions"`
	Spend               Amount `json:"spend"`
	Revenue             Amount `json:"revenue"`
	PercentageOfTraffic Amount `json:"percentage_of_traffic"`
}

type RegionalPerformance struct {
	Region      string `json:"region"`
	Country     string `json:"country"`
	Revenue     Amount `json:"revenue"`
	Spend       Amount `json:"spend"`
	Conversions Count  `json:"conversions"`
}

// WeeklyPerformance rows arrive ordered by WeekStart. Chart x positions
// are array indices, so that order must never be changed.
type WeeklyPerformance struct {
	WeekStart   string `json:"week_start"`
	WeekEnd     string `json:"week_end"`
	Impressions Count  `json:"impressions"`
	Clicks      Count  `json:"clicks"`
	Conversions Count  `json:"conversions"`
	Spend       Amount `json:"spend"`
	Revenue     Amount `json:"revenue"`
}

type Campaign struct {
	ID                   int64                 `json:"id"`
	Name                 string                `json:"name"`
	Status               string                `json:"status"`
	Platform             string                `json:"platform,omitempty"`
	Objective            string                `json:"objective,omitempty"`
	Budget               Amount                `json:"budget,omitempty"`
	Spend                Amount                `json:"spend,omitempty"`
	Revenue              Amount                `json:"revenue,omitempty"`
	DemographicBreakdown []DemographicSlice    `json:"demographic_breakdown"`
	DevicePerformance    []DevicePerformance   `json:"device_performance"`
	RegionalPerformance  []RegionalPerformance `json:"regional_performance"`
}

type MarketingStats struct {
	TotalCampaigns        Count  `json:"total_campaigns"`
	ActiveCampaigns       Count  `json:"active_campaigns"`
	TotalImpressions      Count  `json:"total_impressions"`
	TotalClicks           Count  `json:"total_clicks"`
	TotalConversions      Count  `json:"total_conversions"`
	TotalSpend            Amount `json:"total_spend"`
	TotalRevenue          Amount `json:"total_revenue"`
	AverageCTR            Amount `json:"average_ctr"`
	AverageConversionRate Amount `json:"average_conversion_rate"`
}

// MarketingData is the document returned by the data source.
type MarketingData struct {
	Campaigns         []Campaign          `json:"campaigns"`
	MarketingStats    MarketingStats      `json:"marketing_stats"`
	WeeklyPerformance []WeeklyPerformance `json:"weekly_performance,omitempty"`
}

// FirstCampaign returns the campaign the device and region views read
// from, or nil when the document has none.
func (d *MarketingData) FirstCampaign() *Campaign {
	if d == nil || len(d.Campaigns) == 0 {
		return nil
	}
	return &d.Campaigns[0]
}
