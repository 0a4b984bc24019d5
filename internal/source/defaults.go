package source

import "mkt-dashboard/internal/models"

// WeeklyProvider supplies the weekly series used when the data source has
// none or cannot be reached.
type WeeklyProvider interface {
	Weekly() []models.WeeklyPerformance
}

// StaticWeekly serves a fixed weekly series.
type StaticWeekly struct {
	weeks []models.WeeklyPerformance
}

func NewStaticWeekly(weeks []models.WeeklyPerformance) *StaticWeekly {
	return &StaticWeekly{weeks: weeks}
}

// DefaultWeekly returns the twelve-week series from Oct to Dec 2024.
func DefaultWeekly() *StaticWeekly {
	return NewStaticWeekly(defaultWeeks)
}

// Weekly returns a copy so callers cannot alter the provider's series.
func (s *StaticWeekly) Weekly() []models.WeeklyPerformance {
	out := make([]models.WeeklyPerformance, len(s.weeks))
	copy(out, s.weeks)
	return out
}

var defaultWeeks = []models.WeeklyPerformance{
	{WeekStart: "2024-10-01", WeekEnd: "2024-10-07", Impressions: 20900, Clicks: 322, Conversions: 27, Spend: 488.31, Revenue: 10837.69},
	{WeekStart: "2024-10-08", WeekEnd: "2024-10-14", Impressions: 25919, Clicks: 399, Conversions: 33, Spend: 605.58, Revenue: 13440.26},
	{WeekStart: "2024-10-15", WeekEnd: "2024-10-21", Impressions: 22436, Clicks: 346, Conversions: 29, Spend: 524.21, Revenue: 11634.44},
	{WeekStart: "2024-10-22", WeekEnd: "2024-10-28", Impressions: 25959, Clicks: 400, Conversions: 33, Spend: 606.52, Revenue: 13461.12},
	{WeekStart: "2024-10-29", WeekEnd: "2024-11-04", Impressions: 26370, Clicks: 406, Conversions: 34, Spend: 616.12, Revenue: 13674.2},
	{WeekStart: "2024-11-05", WeekEnd: "2024-11-11", Impressions: 25164, Clicks: 388, Conversions: 32, Spend: 587.94, Revenue: 13048.75},
	{WeekStart: "2024-11-12", WeekEnd: "2024-11-18", Impressions: 25475, Clicks: 393, Conversions: 33, Spend: 595.2, Revenue: 13210},
	{WeekStart: "2024-11-19", WeekEnd: "2024-11-25", Impressions: 22385, Clicks: 345, Conversions: 29, Spend: 523.01, Revenue: 11607.63},
	{WeekStart: "2024-11-26", WeekEnd: "2024-12-02", Impressions: 27568, Clicks: 425, Conversions: 36, Spend: 644.11, Revenue: 14295.43},
	{WeekStart: "2024-12-03", WeekEnd: "2024-12-09", Impressions: 26571, Clicks: 410, Conversions: 34, Spend: 620.82, Revenue: 13778.56},
	{WeekStart: "2024-12-10", WeekEnd: "2024-12-16", Impressions: 37499, Clicks: 578, Conversions: 48, Spend: 876.16, Revenue: 19445.44},
	{WeekStart: "2024-12-17", WeekEnd: "2024-12-23", Impressions: 31032, Clicks: 478, Conversions: 40, Spend: 725.04, Revenue: 16091.6},
}
