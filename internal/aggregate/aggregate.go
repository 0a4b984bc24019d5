// Package aggregate reduces raw marketing records into grouped summaries
// and derived ratios ready for charts and tables.
//
// Nothing in this package returns an error. Missing values are zero and
// every ratio with a zero denominator is zero.
package aggregate

import (
	"strings"

	"mkt-dashboard/internal/models"
)

// Totals carries the campaign-level amounts that get allocated across
// demographic groups.
type Totals struct {
	Spend   float64
	Revenue float64
}

// TotalsFromStats reads the allocation totals from the dataset summary.
func TotalsFromStats(s models.MarketingStats) Totals {
	return Totals{Spend: s.TotalSpend.Float(), Revenue: s.TotalRevenue.Float()}
}

// GroupByGender groups every demographic slice of every campaign by its
// lower-cased gender label.
func GroupByGender(campaigns []models.Campaign, totals Totals) []models.AggregatedGroup {
	return groupSlices(campaigns, totals, func(s models.DemographicSlice) string {
		return strings.ToLower(s.Gender)
	})
}

// GroupByAgeGroup groups every demographic slice by its raw age group label.
func GroupByAgeGroup(campaigns []models.Campaign, totals Totals) []models.AggregatedGroup {
	return groupSlices(campaigns, totals, func(s models.DemographicSlice) string {
		return s.AgeGroup
	})
}

// groupSlices sums counts per key first and allocates spend and revenue in
// a second pass. The allocation needs the grand click total, which is only
// known once every slice has been summed.
func groupSlices(campaigns []models.Campaign, totals Totals, keyOf func(models.DemographicSlice) string) []models.AggregatedGroup {
	groups := newOrdered[models.AggregatedGroup]()
	var totalClicks int64

	for _, c := range campaigns {
		for _, s := range c.DemographicBreakdown {
			key := keyOf(s)
			g := groups.slot(key, func() models.AggregatedGroup {
				return models.AggregatedGroup{Key: key}
			})
			g.Impressions += s.Performance.Impressions.Int()
			g.Clicks += s.Performance.Clicks.Int()
			g.Conversions += s.Performance.Conversions.Int()
			totalClicks += s.Performance.Clicks.Int()
		}
	}

	groups.each(func(_ string, g *models.AggregatedGroup) {
		g.Spend = Allocate(g.Clicks, totalClicks, totals.Spend)
		g.Revenue = Allocate(g.Clicks, totalClicks, totals.Revenue)
	})

	return groups.values()
}

// Allocate returns part/whole of total, or 0 when whole is 0.
func Allocate(part, whole int64, total float64) float64 {
	if whole == 0 {
		return 0
	}
	return float64(part) / float64(whole) * total
}

// Find returns the group with the given key, or a zero group carrying the
// key when absent.
func Find(groups []models.AggregatedGroup, key string) models.AggregatedGroup {
	for _, g := range groups {
		if g.Key == key {
			return g
		}
	}
	return models.AggregatedGroup{Key: key}
}

// GenderAgeTable filters slices to one gender (case-insensitive) and builds
// one row per age group in first-seen order.
func GenderAgeTable(campaigns []models.Campaign, gender string) []models.AgeGroupRow {
	rows := newOrdered[models.AgeGroupRow]()

	for _, c := range campaigns {
		for _, s := range c.DemographicBreakdown {
			if !strings.EqualFold(s.Gender, gender) {
				continue
			}
			age := s.AgeGroup
			r := rows.slot(age, func() models.AgeGroupRow {
				return models.AgeGroupRow{AgeGroup: age}
			})
			r.Impressions += s.Performance.Impressions.Int()
			r.Clicks += s.Performance.Clicks.Int()
			r.Conversions += s.Performance.Conversions.Int()
		}
	}

	rows.each(func(_ string, r *models.AgeGroupRow) {
		r.CTR = CTR(r.Clicks, r.Impressions)
		r.ConversionRate = ConversionRate(r.Conversions, r.Clicks)
	})

	return rows.values()
}

// DeviceMetrics passes device rows through and recomputes their ratios
// from the raw counts.
func DeviceMetrics(records []models.DevicePerformance) []models.DeviceMetrics {
	out := make([]models.DeviceMetrics, 0, len(records))
	for _, d := range records {
		out = append(out, models.DeviceMetrics{
			Device:              d.Device,
			Impressions:         d.Impressions.Int(),
			Clicks:              d.Clicks.Int(),
			Conversions:         d.Conversions.Int(),
			Spend:               d.Spend.Float(),
			Revenue:             d.Revenue.Float(),
			CTR:                 CTR(d.Clicks.Int(), d.Impressions.Int()),
			ConversionRate:      ConversionRate(d.Conversions.Int(), d.Clicks.Int()),
			PercentageOfTraffic: d.PercentageOfTraffic.Float(),
		})
	}
	return out
}

// RegionMetrics passes region rows through and adds ROAS.
func RegionMetrics(records []models.RegionalPerformance) []models.RegionMetrics {
	out := make([]models.RegionMetrics, 0, len(records))
	for _, r := range records {
		out = append(out, models.RegionMetrics{
			Region:      r.Region,
			Country:     r.Country,
			Revenue:     r.Revenue.Float(),
			Spend:       r.Spend.Float(),
			Conversions: r.Conversions.Int(),
			ROAS:        ROAS(r.Revenue.Float(), r.Spend.Float()),
		})
	}
	return out
}

// WeeklyMetrics keeps the input order; it is the x axis.
func WeeklyMetrics(records []models.WeeklyPerformance) []models.WeeklyMetrics {
	out := make([]models.WeeklyMetrics, 0, len(records))
	for _, w := range records {
		out = append(out, models.WeeklyMetrics{
			Label:          WeekLabel(w.WeekStart),
			WeekStart:      w.WeekStart,
			WeekEnd:        w.WeekEnd,
			Impressions:    w.Impressions.Int(),
			Clicks:         w.Clicks.Int(),
			Conversions:    w.Conversions.Int(),
			Spend:          w.Spend.Float(),
			Revenue:        w.Revenue.Float(),
			CTR:            CTR(w.Clicks.Int(), w.Impressions.Int()),
			ConversionRate: ConversionRate(w.Conversions.Int(), w.Clicks.Int()),
		})
	}
	return out
}

// WeekLabel turns "2024-10-01" into "Week of 10-01". Dates too short to
// slice are used as-is.
func WeekLabel(weekStart string) string {
	if len(weekStart) < 10 {
		return "Week of " + weekStart
	}
	return "Week of " + weekStart[5:10]
}
