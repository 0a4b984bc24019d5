package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/a-h/templ"
)

const (
	renderTimeout = 10 * time.Second
	pageMaxAge    = "public, max-age=300"
)

// Page serves a static page shell. The shells hold no data, only SSE
// placeholders, so they can be cached.
func Page(component func() templ.Component, logger *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), renderTimeout)
		defer cancel()

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Header().Set("Cache-Control", pageMaxAge)
		if err := component().Render(ctx, w); err != nil {
			logger.Error("render page", "path", r.URL.Path, "error", err)
			http.Error(w, "render error", http.StatusInternalServerError)
		}
	}
}
