package chart

import (
	"mkt-dashboard/internal/format"
	"mkt-dashboard/internal/models"
)

const (
	MinRadius = 5
	MaxRadius = 25
)

// BubbleRadius linearly maps value from the range of siblings onto
// [minR, maxR]. When every sibling is equal the range is empty and the
// mid-range radius is returned.
func BubbleRadius(value float64, siblings []float64, minR, maxR float64) float64 {
	if len(siblings) == 0 {
		return (minR + maxR) / 2
	}
	lo, hi := siblings[0], siblings[0]
	for _, v := range siblings[1:] {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	if hi == lo {
		return (minR + maxR) / 2
	}
	return minR + (value-lo)/(hi-lo)*(maxR-minR)
}

type LatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// DefaultLocation is used for regions missing from the lookup table.
var DefaultLocation = LatLng{Lat: 25.0, Lng: 50.0}

var regionLocations = map[string]LatLng{
	"Abu Dhabi":   {Lat: 24.4667, Lng: 54.3667},
	"Dubai":       {Lat: 25.2048, Lng: 55.2708},
	"Sharjah":     {Lat: 25.3575, Lng: 55.3995},
	"Riyadh":      {Lat: 24.7136, Lng: 46.6753},
	"Doha":        {Lat: 25.2854, Lng: 51.5310},
	"Kuwait City": {Lat: 29.3759, Lng: 47.9774},
	"Manama":      {Lat: 26.2285, Lng: 50.5860},
}

// Geocode returns the map position of a region. ok is false when the
// default location was used.
func Geocode(region string) (LatLng, bool) {
	if loc, ok := regionLocations[region]; ok {
		return loc, true
	}
	return DefaultLocation, false
}

type Bubble struct {
	Region   string  `json:"region"`
	Country  string  `json:"country"`
	Location LatLng  `json:"location"`
	Value    float64 `json:"value"`
	Radius   float64 `json:"radius"`
	Text     string  `json:"text"`
}

type Bounds struct {
	SouthWest LatLng `json:"south_west"`
	NorthEast LatLng `json:"north_east"`
}

// RegionValue picks the metric a bubble map sizes its markers by.
type RegionValue func(models.RegionMetrics) float64

func RegionRevenue(r models.RegionMetrics) float64     { return r.Revenue }
func RegionSpend(r models.RegionMetrics) float64       { return r.Spend }
func RegionConversions(r models.RegionMetrics) float64 { return float64(r.Conversions) }

// MapBubbles sizes one marker per region against its siblings.
func MapBubbles(regions []models.RegionMetrics, value RegionValue, text format.Func) []Bubble {
	values := make([]float64, 0, len(regions))
	for _, r := range regions {
		values = append(values, value(r))
	}

	out := make([]Bubble, 0, len(regions))
	for i, r := range regions {
		loc, _ := Geocode(r.Region)
		b := Bubble{
			Region:   r.Region,
			Country:  r.Country,
			Location: loc,
			Value:    values[i],
			Radius:   BubbleRadius(values[i], values, MinRadius, MaxRadius),
		}
		if text != nil {
			b.Text = text(values[i])
		}
		out = append(out, b)
	}
	return out
}

// FitBounds returns the box enclosing every bubble, or false for none.
func FitBounds(bubbles []Bubble) (Bounds, bool) {
	if len(bubbles) == 0 {
		return Bounds{}, false
	}
	b := Bounds{SouthWest: bubbles[0].Location, NorthEast: bubbles[0].Location}
	for _, m := range bubbles[1:] {
		b.SouthWest.Lat = min(b.SouthWest.Lat, m.Location.Lat)
		b.SouthWest.Lng = min(b.SouthWest.Lng, m.Location.Lng)
		b.NorthEast.Lat = max(b.NorthEast.Lat, m.Location.Lat)
		b.NorthEast.Lng = max(b.NorthEast.Lng, m.Location.Lng)
	}
	return b, true
}

// Project places loc inside s using b as the visible area. A bounds span
// of zero on either axis centers that axis.
func Project(loc LatLng, b Bounds, s Surface) (x, y float64) {
	x = s.Padding + s.PlotWidth()/2
	y = s.Padding + s.PlotHeight()/2
	if span := b.NorthEast.Lng - b.SouthWest.Lng; span > 0 {
		x = s.Padding + (loc.Lng-b.SouthWest.Lng)/span*s.PlotWidth()
	}
	if span := b.NorthEast.Lat - b.SouthWest.Lat; span > 0 {
		y = s.Padding + (b.NorthEast.Lat-loc.Lat)/span*s.PlotHeight()
	}
	return x, y
}
