package templates

import (
	"context"
	"strings"

	"github.com/a-h/templ"

	"mkt-dashboard/internal/chart"
	"mkt-dashboard/internal/format"
	"mkt-dashboard/internal/models"
	"mkt-dashboard/internal/services"
)

var cardIcons = map[string]string{
	"clicks":  "&#128433;",
	"spend":   "&#36;",
	"revenue": "&#128200;",
}

func Cards(cards []services.Card) templ.Component {
	return component(func(_ context.Context, h *html) {
		h.raw(`<div class="grid">`)
		for _, c := range cards {
			h.raw(`<div class="card metric">`)
			h.rawf(`<h3><span class="icon">%s</span> %s</h3>`, cardIcons[c.Icon], esc(c.Title))
			h.rawf(`<div class="value">%s</div>`, esc(c.Value))
			h.raw(`</div>`)
		}
		h.raw(`</div>`)
	})
}

func svgOpen(h *html, s chart.Surface, label string) {
	h.rawf(`<svg viewBox="0 0 %s %s" width="100%%" role="img" aria-label="%s">`, num(s.Width), num(s.Height), esc(label))
}

func gridlines(h *html, s chart.Surface, lines []chart.Gridline) {
	for _, g := range lines {
		h.rawf(`<line class="grid-line" x1="%s" y1="%s" x2="%s" y2="%s"/>`,
			num(s.Padding), num(g.Y), num(s.Width-s.Padding), num(g.Y))
		h.rawf(`<text x="%s" y="%s" text-anchor="end">%s</text>`, num(s.Padding-8), num(g.Y+4), esc(g.Label))
	}
}

func axes(h *html, s chart.Surface) {
	h.rawf(`<line stroke="#9ca3af" x1="%s" y1="%s" x2="%s" y2="%s"/>`,
		num(s.Padding), num(s.Padding), num(s.Padding), num(s.Baseline()))
	h.rawf(`<line stroke="#9ca3af" x1="%s" y1="%s" x2="%s" y2="%s"/>`,
		num(s.Padding), num(s.Baseline()), num(s.Width-s.Padding), num(s.Baseline()))
}

// LineChart draws a mapped line plot: gridlines, the polyline, one circle
// per point and the x labels.
func LineChart(title, yTitle string, plot chart.LinePlot, f format.Func) templ.Component {
	if f == nil {
		f = format.Number
	}
	return component(func(_ context.Context, h *html) {
		s := plot.Surface
		h.rawf(`<div class="card chart"><h3>%s</h3>`, esc(title))
		if len(plot.Points) == 0 {
			h.raw(`<p class="loading">No data available</p></div>`)
			return
		}

		svgOpen(h, s, title)
		gridlines(h, s, plot.Gridlines)
		axes(h, s)

		coords := make([]string, 0, len(plot.Points))
		for _, p := range plot.Points {
			coords = append(coords, num(p.X)+","+num(p.Y))
		}
		h.rawf(`<polyline fill="none" stroke="#818cf8" stroke-width="2" points="%s"/>`, strings.Join(coords, " "))

		for _, p := range plot.Points {
			h.rawf(`<circle cx="%s" cy="%s" r="4" fill="#818cf8"><title>%s: %s</title></circle>`,
				num(p.X), num(p.Y), esc(p.Label), esc(f(p.Value)))
		}
		for _, l := range plot.XLabels {
			h.rawf(`<text x="%s" y="%s" text-anchor="middle">%s</text>`, num(l.X), num(l.Y), esc(l.Text))
		}
		h.rawf(`<text x="14" y="%s" transform="rotate(-90 14 %s)" text-anchor="middle">%s</text>`,
			num(s.Height/2), num(s.Height/2), esc(yTitle))
		h.raw(`</svg></div>`)
	})
}

func BarChart(title string, plot chart.BarPlot) templ.Component {
	return component(func(_ context.Context, h *html) {
		s := plot.Surface
		h.rawf(`<div class="card chart"><h3>%s</h3>`, esc(title))
		if len(plot.Bars) == 0 {
			h.raw(`<p class="loading">No data available</p></div>`)
			return
		}

		svgOpen(h, s, title)
		gridlines(h, s, plot.Gridlines)
		axes(h, s)
		for _, b := range plot.Bars {
			h.rawf(`<rect x="%s" y="%s" width="%s" height="%s" fill="#6366f1"><title>%s: %s</title></rect>`,
				num(b.X), num(b.Y), num(b.Width), num(b.Height), esc(b.Label), esc(b.Text))
		}
		for _, l := range plot.XLabels {
			h.rawf(`<text x="%s" y="%s" text-anchor="middle">%s</text>`, num(l.X), num(l.Y), esc(l.Text))
		}
		h.raw(`</svg></div>`)
	})
}

func AgeTable(title string, rows []models.AgeGroupRow) templ.Component {
	return component(func(_ context.Context, h *html) {
		h.rawf(`<div class="card"><h3>%s</h3><table>`, esc(title))
		h.raw(`<thead><tr><th>Age Group</th><th>Impressions</th><th>Clicks</th><th>Conversions</th><th>CTR (%)</th><th>Conversion Rate (%)</th></tr></thead><tbody>`)
		if len(rows) == 0 {
			h.raw(`<tr><td colspan="6">No data available</td></tr>`)
		}
		for _, r := range rows {
			h.rawf(`<tr><td>%s</td><td>%s</td><td>%s</td><td>%s</td><td>%s</td><td>%s</td></tr>`,
				esc(r.AgeGroup),
				format.Integer(r.Impressions),
				format.Integer(r.Clicks),
				format.Integer(r.Conversions),
				format.Percent(r.CTR),
				format.Percent(r.ConversionRate),
			)
		}
		h.raw(`</tbody></table></div>`)
	})
}

var deviceIcons = map[string]string{
	"mobile":  "&#128241;",
	"desktop": "&#128421;",
	"tablet":  "&#128203;",
}

func deviceIcon(device string) string {
	if icon, ok := deviceIcons[strings.ToLower(device)]; ok {
		return icon
	}
	return deviceIcons["mobile"]
}

func DeviceCards(devices []models.DeviceMetrics) templ.Component {
	return component(func(_ context.Context, h *html) {
		if len(devices) == 0 {
			h.raw(`<p class="loading">No device data available</p>`)
			return
		}
		h.raw(`<div class="grid">`)
		for _, d := range devices {
			h.raw(`<div class="card device">`)
			h.rawf(`<h3><span class="icon">%s</span> %s</h3>`, deviceIcon(d.Device), esc(d.Device))
			h.rawf(`<p class="traffic">%s of traffic</p>`, format.Percent(d.PercentageOfTraffic))
			rows := [][2]string{
				{"Impressions", format.Integer(d.Impressions)},
				{"Clicks", format.Integer(d.Clicks)},
				{"Conversions", format.Integer(d.Conversions)},
				{"CTR", format.Percent(d.CTR)},
				{"Conversion Rate", format.Percent(d.ConversionRate)},
				{"Spend", format.Currency(d.Spend)},
				{"Revenue", format.Currency(d.Revenue)},
			}
			for _, r := range rows {
				h.rawf(`<div class="row"><span>%s:</span><span>%s</span></div>`, r[0], esc(r[1]))
			}
			h.raw(`</div>`)
		}
		h.raw(`</div>`)
	})
}

// mapSurface is the canvas of the region bubble maps.
var mapSurface = chart.Surface{Width: 480, Height: 360, Padding: 40}

// BubbleMap plots region bubbles inside bounds. Each bubble keeps its
// coordinates in data attributes for map widgets.
func BubbleMap(title, color string, bubbles []chart.Bubble, bounds *chart.Bounds) templ.Component {
	return component(func(_ context.Context, h *html) {
		h.rawf(`<div class="card map"><h3>%s</h3>`, esc(title))
		if len(bubbles) == 0 || bounds == nil {
			h.raw(`<p class="loading">No regional data available</p></div>`)
			return
		}

		svgOpen(h, mapSurface, title)
		for _, b := range bubbles {
			x, y := chart.Project(b.Location, *bounds, mapSurface)
			h.rawf(`<circle cx="%s" cy="%s" r="%s" fill="%s" fill-opacity="0.6" data-lat="%s" data-lng="%s"><title>%s, %s: %s</title></circle>`,
				num(x), num(y), num(b.Radius), esc(color),
				num(b.Location.Lat), num(b.Location.Lng),
				esc(b.Region), esc(b.Country), esc(b.Text))
			h.rawf(`<text x="%s" y="%s" text-anchor="middle">%s</text>`, num(x), num(y-b.Radius-4), esc(b.Region))
		}
		h.raw(`</svg></div>`)
	})
}

func RegionTable(regions []models.RegionMetrics) templ.Component {
	return component(func(_ context.Context, h *html) {
		h.raw(`<div class="card"><h3>Regional Breakdown</h3><table>`)
		h.raw(`<thead><tr><th>Region</th><th>Country</th><th>Revenue</th><th>Spend</th><th>Conversions</th><th>ROAS</th></tr></thead><tbody>`)
		for _, r := range regions {
			h.rawf(`<tr><td>%s</td><td>%s</td><td>%s</td><td>%s</td><td>%s</td><td>%s</td></tr>`,
				esc(r.Region), esc(r.Country),
				format.Currency(r.Revenue), format.Currency(r.Spend),
				format.Integer(r.Conversions), format.Number(r.ROAS))
		}
		h.raw(`</tbody></table></div>`)
	})
}

func ErrorState(message string) templ.Component {
	return component(func(_ context.Context, h *html) {
		h.rawf(`<div class="card error" role="alert">%s</div>`, esc(message))
	})
}
