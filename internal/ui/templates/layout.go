package templates

import (
	"context"

	"github.com/a-h/templ"
)

const datastarScript = "https://cdn.jsdelivr.net/gh/starfederation/datastar@1.0.0/bundles/datastar.js"

type NavItem struct {
	Href  string
	Label string
}

var Nav = []NavItem{
	{Href: "/", Label: "Overview"},
	{Href: "/demographic-view", Label: "Demographic View"},
	{Href: "/device-view", Label: "Device View"},
	{Href: "/region-view", Label: "Region View"},
	{Href: "/weekly-view", Label: "Weekly View"},
}

// Page wraps body in the document shell. active is the href of the
// current nav entry.
func Page(title, subtitle, active string, body templ.Component) templ.Component {
	return component(func(ctx context.Context, h *html) {
		h.raw(`<!DOCTYPE html><html lang="en"><head><meta charset="utf-8">`)
		h.raw(`<meta name="viewport" content="width=device-width, initial-scale=1">`)
		h.rawf(`<title>%s | Marketing Dashboard</title>`, esc(title))
		h.rawf(`<script type="module" src="%s"></script>`, datastarScript)
		h.raw(`<style>` + styles + `</style></head><body><div class="shell">`)

		h.raw(`<nav class="sidebar"><div class="brand">Marketing Dashboard</div><ul>`)
		for _, item := range Nav {
			class := ""
			if item.Href == active {
				class = ` class="active"`
			}
			h.rawf(`<li><a href="%s"%s>%s</a></li>`, esc(item.Href), class, esc(item.Label))
		}
		h.raw(`</ul></nav>`)

		h.raw(`<div class="main"><section class="hero">`)
		h.rawf(`<h1>%s</h1>`, esc(title))
		if subtitle != "" {
			h.rawf(`<p>%s</p>`, esc(subtitle))
		}
		h.raw(`</section><main class="content">`)
		h.render(ctx, body)
		h.raw(`</main><footer class="footer">Marketing analytics dashboard</footer></div></div></body></html>`)
	})
}

// Placeholder is an empty target that loads its content from sseURL once
// the page is up.
func Placeholder(id, sseURL, loading string) templ.Component {
	return component(func(_ context.Context, h *html) {
		h.rawf(`<div id="%s" data-init="@get('%s')"><p class="loading">%s</p></div>`, esc(id), esc(sseURL), esc(loading))
	})
}

const styles = `
body{margin:0;font-family:system-ui,sans-serif;background:#111827;color:#f9fafb}
.shell{display:flex;min-height:100vh}
.sidebar{width:220px;background:#1f2937;padding:1rem}
.sidebar ul{list-style:none;padding:0}
.sidebar a{display:block;padding:.5rem;color:#d1d5db;text-decoration:none;border-radius:6px}
.sidebar a.active,.sidebar a:hover{background:#374151;color:#fff}
.brand{font-weight:700;margin-bottom:1rem}
.main{flex:1;display:flex;flex-direction:column}
.hero{text-align:center;padding:2rem;background:linear-gradient(90deg,#1f2937,#374151)}
.hero p{color:#9ca3af}
.content{flex:1;padding:1.5rem}
.grid{display:grid;grid-template-columns:repeat(auto-fit,minmax(280px,1fr));gap:1.5rem;margin-bottom:1.5rem}
.card{background:#1f2937;border:1px solid #374151;border-radius:12px;padding:1.25rem}
.card h3{margin:0 0 .5rem;font-size:.9rem;color:#9ca3af}
.card .value{font-size:1.6rem;font-weight:700}
.row{display:flex;justify-content:space-between;padding:.2rem 0}
.row span:first-child{color:#9ca3af}
table{width:100%;border-collapse:collapse}
th,td{padding:.5rem;border-bottom:1px solid #374151;text-align:right}
th:first-child,td:first-child{text-align:left}
svg text{fill:#d1d5db;font-size:11px}
.grid-line{stroke:#374151;stroke-dasharray:4 4}
.error{color:#f87171}
.notice{color:#fbbf24}
.loading{color:#9ca3af}
.footer{padding:1rem;text-align:center;color:#6b7280}
`
