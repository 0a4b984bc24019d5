package chart

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mkt-dashboard/internal/format"
	"mkt-dashboard/internal/models"
)

func TestBubbleRadius(t *testing.T) {
	values := []float64{10, 20, 30}

	assert.Equal(t, 5.0, BubbleRadius(10, values, MinRadius, MaxRadius))
	assert.Equal(t, 15.0, BubbleRadius(20, values, MinRadius, MaxRadius))
	assert.Equal(t, 25.0, BubbleRadius(30, values, MinRadius, MaxRadius))
}

func TestBubbleRadiusIdenticalValues(t *testing.T) {
	r := BubbleRadius(5, []float64{5, 5, 5}, MinRadius, MaxRadius)
	assert.False(t, math.IsNaN(r))
	assert.Equal(t, 15.0, r)
}

func TestBubbleRadiusNoSiblings(t *testing.T) {
	assert.Equal(t, 15.0, BubbleRadius(7, nil, MinRadius, MaxRadius))
}

func TestGeocode(t *testing.T) {
	loc, ok := Geocode("Dubai")
	assert.True(t, ok)
	assert.Equal(t, LatLng{Lat: 25.2048, Lng: 55.2708}, loc)

	loc, ok = Geocode("Atlantis")
	assert.False(t, ok)
	assert.Equal(t, DefaultLocation, loc)
}

func TestMapBubbles(t *testing.T) {
	regions := []models.RegionMetrics{
		{Region: "Dubai", Country: "UAE", Revenue: 30000, Spend: 100},
		{Region: "Riyadh", Country: "Saudi Arabia", Revenue: 10000, Spend: 100},
		{Region: "Doha", Country: "Qatar", Revenue: 20000, Spend: 100},
	}

	revenue := MapBubbles(regions, RegionRevenue, format.Currency)
	require.Len(t, revenue, 3)
	assert.Equal(t, 25.0, revenue[0].Radius)
	assert.Equal(t, 5.0, revenue[1].Radius)
	assert.Equal(t, 15.0, revenue[2].Radius)
	assert.Equal(t, "$30,000.00", revenue[0].Text)

	spend := MapBubbles(regions, RegionSpend, nil)
	for _, b := range spend {
		assert.Equal(t, 15.0, b.Radius)
		assert.Empty(t, b.Text)
	}
}

func TestFitBounds(t *testing.T) {
	_, ok := FitBounds(nil)
	assert.False(t, ok)

	bubbles := MapBubbles([]models.RegionMetrics{{Region: "Dubai"}, {Region: "Kuwait City"}, {Region: "Riyadh"}}, RegionConversions, nil)
	b, ok := FitBounds(bubbles)
	require.True(t, ok)
	assert.Equal(t, 24.7136, b.SouthWest.Lat)
	assert.Equal(t, 46.6753, b.SouthWest.Lng)
	assert.Equal(t, 29.3759, b.NorthEast.Lat)
	assert.Equal(t, 55.2708, b.NorthEast.Lng)
}

func TestProject(t *testing.T) {
	s := Surface{Width: 120, Height: 120, Padding: 10}
	b := Bounds{SouthWest: LatLng{Lat: 20, Lng: 40}, NorthEast: LatLng{Lat: 30, Lng: 60}}

	x, y := Project(LatLng{Lat: 30, Lng: 40}, b, s)
	assert.Equal(t, 10.0, x)
	assert.Equal(t, 10.0, y)

	x, y = Project(LatLng{Lat: 20, Lng: 60}, b, s)
	assert.Equal(t, 110.0, x)
	assert.Equal(t, 110.0, y)
}

func TestProjectSinglePoint(t *testing.T) {
	s := Surface{Width: 120, Height: 120, Padding: 10}
	loc := LatLng{Lat: 25.2048, Lng: 55.2708}

	x, y := Project(loc, Bounds{SouthWest: loc, NorthEast: loc}, s)
	assert.Equal(t, 60.0, x)
	assert.Equal(t, 60.0, y)
}
