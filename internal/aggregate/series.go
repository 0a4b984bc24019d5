package aggregate

import "mkt-dashboard/internal/models"

// Metric names a numeric field a chart can plot.
type Metric string

const (
	MetricRevenue     Metric = "revenue"
	MetricSpend       Metric = "spend"
	MetricClicks      Metric = "clicks"
	MetricImpressions Metric = "impressions"
	MetricConversions Metric = "conversions"
)

// ParseMetric maps a query value to a Metric, defaulting to revenue.
func ParseMetric(s string) Metric {
	switch Metric(s) {
	case MetricSpend, MetricClicks, MetricImpressions, MetricConversions:
		return Metric(s)
	default:
		return MetricRevenue
	}
}

// Title is the axis title the charts show for a metric.
func (m Metric) Title() string {
	switch m {
	case MetricRevenue:
		return "Revenue ($)"
	case MetricSpend:
		return "Spend ($)"
	case MetricClicks:
		return "Clicks"
	case MetricImpressions:
		return "Impressions"
	case MetricConversions:
		return "Conversions"
	default:
		return "Value"
	}
}

// IsCurrency reports whether values of m are money.
func (m Metric) IsCurrency() bool {
	return m == MetricRevenue || m == MetricSpend
}

// GroupSeries extracts metric m from each group, keyed by group label.
func GroupSeries(groups []models.AggregatedGroup, m Metric) []models.DataPoint {
	out := make([]models.DataPoint, 0, len(groups))
	for _, g := range groups {
		var v float64
		switch m {
		case MetricSpend:
			v = g.Spend
		case MetricClicks:
			v = float64(g.Clicks)
		case MetricImpressions:
			v = float64(g.Impressions)
		case MetricConversions:
			v = float64(g.Conversions)
		default:
			v = g.Revenue
		}
		out = append(out, models.DataPoint{Label: g.Key, Value: v})
	}
	return out
}

// WeeklySeries extracts metric m from each week in order.
func WeeklySeries(weeks []models.WeeklyMetrics, m Metric) []models.DataPoint {
	out := make([]models.DataPoint, 0, len(weeks))
	for _, w := range weeks {
		var v float64
		switch m {
		case MetricSpend:
			v = w.Spend
		case MetricClicks:
			v = float64(w.Clicks)
		case MetricImpressions:
			v = float64(w.Impressions)
		case MetricConversions:
			v = float64(w.Conversions)
		default:
			v = w.Revenue
		}
		out = append(out, models.DataPoint{Label: w.Label, Value: v})
	}
	return out
}
