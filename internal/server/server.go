package server

import (
	"log/slog"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"mkt-dashboard/internal/handlers"
	"mkt-dashboard/internal/services"
	"mkt-dashboard/internal/ui/templates"
)

type Server struct {
	dashboard   *services.Dashboard
	mux         *http.ServeMux
	logger      *slog.Logger
	apiHandlers *handlers.APIHandlers
	sseHandlers *handlers.SSEHandlers
}

// NewServer registers every dashboard route. gatherer backs /metrics and
// may be nil, in which case the endpoint is not mounted.
func NewServer(dashboard *services.Dashboard, logger *slog.Logger, gatherer prometheus.Gatherer) *Server {
	s := &Server{
		dashboard:   dashboard,
		mux:         http.NewServeMux(),
		logger:      logger,
		apiHandlers: handlers.NewAPIHandlers(dashboard, logger),
		sseHandlers: handlers.NewSSEHandlers(dashboard, logger),
	}
	s.setupRoutes(gatherer)
	return s
}

func (s *Server) setupRoutes(gatherer prometheus.Gatherer) {
	// Page shells
	s.mux.HandleFunc("GET /{$}", handlers.Page(templates.Dashboard, s.logger))
	s.mux.HandleFunc("GET /demographic-view", handlers.Page(templates.DemographicPage, s.logger))
	s.mux.HandleFunc("GET /device-view", handlers.Page(templates.DevicePage, s.logger))
	s.mux.HandleFunc("GET /region-view", handlers.Page(templates.RegionPage, s.logger))
	s.mux.HandleFunc("GET /weekly-view", handlers.Page(templates.WeeklyPage, s.logger))

	s.mux.HandleFunc("GET /health", s.apiHandlers.HandleHealth)
	s.mux.HandleFunc("GET /admin/stats", s.apiHandlers.HandleStats)
	if gatherer != nil {
		s.mux.Handle("GET /metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	}

	// REST API endpoints
	s.mux.HandleFunc("GET /api/demographic", s.apiHandlers.HandleDemographic)
	s.mux.HandleFunc("GET /api/devices", s.apiHandlers.HandleDevices)
	s.mux.HandleFunc("GET /api/regions", s.apiHandlers.HandleRegions)
	s.mux.HandleFunc("GET /api/weekly", s.apiHandlers.HandleWeekly)
	s.mux.HandleFunc("GET /api/charts/weekly", s.apiHandlers.HandleWeeklyChart)

	// Datastar SSE endpoints
	s.mux.HandleFunc("GET /sse/demographic", s.sseHandlers.HandleDemographic)
	s.mux.HandleFunc("GET /sse/devices", s.sseHandlers.HandleDevices)
	s.mux.HandleFunc("GET /sse/regions", s.sseHandlers.HandleRegions)
	s.mux.HandleFunc("GET /sse/weekly", s.sseHandlers.HandleWeekly)
	s.mux.HandleFunc("GET /sse/refresh-all", s.sseHandlers.HandleRefreshAll)
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}
