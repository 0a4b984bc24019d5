package models

// AggregatedGroup is a derived summary keyed by a grouping label. Spend and
// Revenue are allocated by click share, not measured per group.
type AggregatedGroup struct {
	Key         string  `json:"key"`
	Impressions int64   `json:"impressions"`
	Clicks      int64   `json:"clicks"`
	Conversions int64   `json:"conversions"`
	Spend       float64 `json:"spend"`
	Revenue     float64 `json:"revenue"`
}

type AgeGroupRow struct {
	AgeGroup       string  `json:"age_group"`
	Impressions    int64   `json:"impressions"`
	Clicks         int64   `json:"clicks"`
	Conversions    int64   `json:"conversions"`
	CTR            float64 `json:"ctr"`
	ConversionRate float64 `json:"conversion_rate"`
}

type DeviceMetrics struct {
	Device              string  `json:"device"`
	Impressions         int64   `json:"impressions"`
	Clicks              int64   `json:"clicks"`
	Conversions         int64   `json:"conversions"`
	Spend               float64 `json:"spend"`
	Revenue             float64 `json:"revenue"`
	CTR                 float64 `json:"ctr"`
	ConversionRate      float64 `json:"conversion_rate"`
	PercentageOfTraffic float64 `json:"percentage_of_traffic"`
}

type RegionMetrics struct {
	Region      string  `json:"region"`
	Country     string  `json:"country"`
	Revenue     float64 `json:"revenue"`
	Spend       float64 `json:"spend"`
	Conversions int64   `json:"conversions"`
	ROAS        float64 `json:"roas"`
}

type WeeklyMetrics struct {
	Label          string  `json:"label"`
	WeekStart      string  `json:"week_start"`
	WeekEnd        string  `json:"week_end"`
	Impressions    int64   `json:"impressions"`
	Clicks         int64   `json:"clicks"`
	Conversions    int64   `json:"conversions"`
	Spend          float64 `json:"spend"`
	Revenue        float64 `json:"revenue"`
	CTR            float64 `json:"ctr"`
	ConversionRate float64 `json:"conversion_rate"`
}

// DataPoint is one (label, value) pair fed to the coordinate mapper.
type DataPoint struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}
