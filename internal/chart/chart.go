// Package chart maps numeric series onto SVG drawing coordinates.
//
// All functions are pure. Degenerate input (no points, one point, all
// zero values, identical bubble values) resolves to fixed positions and
// radii instead of NaN or Inf.
package chart

import (
	"math"

	"mkt-dashboard/internal/format"
	"mkt-dashboard/internal/models"
)

// gridFractions are the shares of the max value that get a reference line.
var gridFractions = []float64{0.25, 0.5, 0.75, 1}

// Surface is the drawing area. Padding applies on all four sides.
type Surface struct {
	Width   float64 `json:"width"`
	Height  float64 `json:"height"`
	Padding float64 `json:"padding"`
}

// DefaultSurface matches the dashboard's line chart canvas.
var DefaultSurface = Surface{Width: 700, Height: 400, Padding: 70}

// BarSurface is the canvas of the age group bar charts.
var BarSurface = Surface{Width: 600, Height: 320, Padding: 50}

func (s Surface) PlotWidth() float64  { return nonNegative(s.Width - 2*s.Padding) }
func (s Surface) PlotHeight() float64 { return nonNegative(s.Height - 2*s.Padding) }

// Baseline is the y of a zero value.
func (s Surface) Baseline() float64 { return s.Height - s.Padding }

type Point struct {
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

type Gridline struct {
	Y     float64 `json:"y"`
	Value float64 `json:"value"`
	Label string  `json:"label"`
}

type AxisLabel struct {
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
	Text string  `json:"text"`
}

type LinePlot struct {
	Surface   Surface     `json:"surface"`
	MaxValue  float64     `json:"max_value"`
	Points    []Point     `json:"points"`
	Gridlines []Gridline  `json:"gridlines"`
	XLabels   []AxisLabel `json:"x_labels"`
}

type Bar struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Label  string  `json:"label"`
	Value  float64 `json:"value"`
	Text   string  `json:"text"`
}

type BarPlot struct {
	Surface   Surface     `json:"surface"`
	MaxValue  float64     `json:"max_value"`
	Bars      []Bar       `json:"bars"`
	Gridlines []Gridline  `json:"gridlines"`
	XLabels   []AxisLabel `json:"x_labels"`
}

// scale holds the vertical mapping shared by line and bar plots.
type scale struct {
	surface   Surface
	max       float64
	yInterval float64
}

func newScale(points []models.DataPoint, s Surface) scale {
	sc := scale{surface: s}
	for i, p := range points {
		if i == 0 || p.Value > sc.max {
			sc.max = p.Value
		}
	}
	// A max of zero or below has no meaningful height; flatten to the
	// baseline. So does a max small enough to overflow the interval.
	if sc.max > 0 {
		if iv := s.PlotHeight() / sc.max; finite(iv) {
			sc.yInterval = iv
		}
	}
	return sc
}

// height is the distance of v above the baseline, zero when not finite.
func (sc scale) height(v float64) float64 {
	if h := v * sc.yInterval; finite(h) {
		return h
	}
	return 0
}

func (sc scale) y(v float64) float64 {
	return sc.surface.Baseline() - sc.height(v)
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func (sc scale) gridlines(f format.Func) []Gridline {
	if f == nil {
		f = format.Number
	}
	out := make([]Gridline, 0, len(gridFractions))
	for _, pct := range gridFractions {
		v := pct * sc.max
		out = append(out, Gridline{Y: sc.y(v), Value: v, Label: f(v)})
	}
	return out
}

// MapLine places each point at x = padding + i*plotWidth/(n-1) and
// y = height - padding - value*plotHeight/max. A single point sits on the
// left padding boundary.
func MapLine(points []models.DataPoint, s Surface, f format.Func) LinePlot {
	plot := LinePlot{Surface: s}
	if len(points) == 0 {
		return plot
	}

	sc := newScale(points, s)
	plot.MaxValue = sc.max

	xInterval := 0.0
	if len(points) > 1 {
		xInterval = s.PlotWidth() / float64(len(points)-1)
	}

	plot.Points = make([]Point, 0, len(points))
	plot.XLabels = make([]AxisLabel, 0, len(points))
	for i, p := range points {
		x := s.Padding + float64(i)*xInterval
		plot.Points = append(plot.Points, Point{X: x, Y: sc.y(p.Value), Label: p.Label, Value: p.Value})
		plot.XLabels = append(plot.XLabels, AxisLabel{X: x, Y: s.Baseline() + labelOffset, Text: p.Label})
	}
	plot.Gridlines = sc.gridlines(f)
	return plot
}

// barFill is the share of each slot a bar occupies.
const barFill = 0.8

// labelOffset is the distance between the baseline and x-axis labels.
const labelOffset = 15

// MapBars splits the plot width into equal slots, one bar per point.
func MapBars(points []models.DataPoint, s Surface, f format.Func) BarPlot {
	plot := BarPlot{Surface: s}
	if len(points) == 0 {
		return plot
	}
	if f == nil {
		f = format.Number
	}

	sc := newScale(points, s)
	plot.MaxValue = sc.max

	slot := s.PlotWidth() / float64(len(points))
	width := slot * barFill
	plot.Bars = make([]Bar, 0, len(points))
	plot.XLabels = make([]AxisLabel, 0, len(points))
	for i, p := range points {
		h := nonNegative(sc.height(p.Value))
		x := s.Padding + float64(i)*slot + (slot-width)/2
		plot.Bars = append(plot.Bars, Bar{
			X:      x,
			Y:      s.Baseline() - h,
			Width:  width,
			Height: h,
			Label:  p.Label,
			Value:  p.Value,
			Text:   f(p.Value),
		})
		plot.XLabels = append(plot.XLabels, AxisLabel{X: x + width/2, Y: s.Baseline() + labelOffset, Text: p.Label})
	}
	plot.Gridlines = sc.gridlines(f)
	return plot
}

func nonNegative(v float64) float64 {
	if v < 0 {
		return 0
	}
	return v
}
