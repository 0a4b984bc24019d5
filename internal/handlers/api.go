package handlers

import (
	stderrors "errors"
	"log/slog"
	"math"
	"net/http"
	"strconv"
	"time"

	"mkt-dashboard/internal/aggregate"
	"mkt-dashboard/internal/chart"
	"mkt-dashboard/internal/errors"
	"mkt-dashboard/internal/services"
)

// Views are fetched fresh on every request, so nothing is cacheable.
var noStore = map[string]string{"Cache-Control": "no-store"}

type APIHandlers struct {
	dashboard *services.Dashboard
	logger    *slog.Logger
}

func NewAPIHandlers(dashboard *services.Dashboard, logger *slog.Logger) *APIHandlers {
	return &APIHandlers{
		dashboard: dashboard,
		logger:    logger,
	}
}

func (h *APIHandlers) HandleDemographic(w http.ResponseWriter, r *http.Request) {
	report, err := h.dashboard.Demographic(r.Context())
	if err != nil {
		errors.WriteError(w, r, h.logger, errors.Upstream(err))
		return
	}
	errors.WriteSuccessWithHeaders(w, report, noStore)
}

func (h *APIHandlers) HandleDevices(w http.ResponseWriter, r *http.Request) {
	report := h.dashboard.Devices(r.Context())
	if report.Error != "" {
		errors.WriteError(w, r, h.logger, errors.Upstream(stderrors.New(report.Error)))
		return
	}
	errors.WriteSuccessWithHeaders(w, report, noStore)
}

func (h *APIHandlers) HandleRegions(w http.ResponseWriter, r *http.Request) {
	report := h.dashboard.Regions(r.Context())
	if report.Error != "" {
		errors.WriteError(w, r, h.logger, errors.Upstream(stderrors.New(report.Error)))
		return
	}
	errors.WriteSuccessWithHeaders(w, report, noStore)
}

func (h *APIHandlers) HandleWeekly(w http.ResponseWriter, r *http.Request) {
	report, err := h.dashboard.Weekly(r.Context())
	if err != nil {
		errors.WriteError(w, r, h.logger, errors.Upstream(err))
		return
	}
	errors.WriteSuccessWithHeaders(w, report, weeklyHeaders(report))
}

type weeklyChartResponse struct {
	Metric   aggregate.Metric `json:"metric"`
	Title    string           `json:"title"`
	Fallback bool             `json:"fallback"`
	Plot     chart.LinePlot   `json:"plot"`
}

// HandleWeeklyChart maps one weekly metric onto a surface sized by the
// width, height and padding query parameters.
func (h *APIHandlers) HandleWeeklyChart(w http.ResponseWriter, r *http.Request) {
	surface, err := parseSurface(r)
	if err != nil {
		errors.WriteError(w, r, h.logger, err)
		return
	}
	metric := aggregate.ParseMetric(r.URL.Query().Get("metric"))

	report, err := h.dashboard.Weekly(r.Context())
	if err != nil {
		errors.WriteError(w, r, h.logger, errors.Upstream(err))
		return
	}

	errors.WriteSuccessWithHeaders(w, weeklyChartResponse{
		Metric:   metric,
		Title:    metric.Title(),
		Fallback: report.Fallback,
		Plot:     services.WeeklyChart(report, metric, surface),
	}, weeklyHeaders(report))
}

func weeklyHeaders(report *services.WeeklyReport) map[string]string {
	headers := map[string]string{"Cache-Control": "no-store"}
	if report.Fallback {
		headers["X-Data-Fallback"] = "true"
	}
	return headers
}

func parseSurface(r *http.Request) (chart.Surface, error) {
	s := chart.DefaultSurface
	q := r.URL.Query()

	fields := []struct {
		name string
		dst  *float64
	}{
		{"width", &s.Width},
		{"height", &s.Height},
		{"padding", &s.Padding},
	}
	for _, f := range fields {
		raw := q.Get(f.name)
		if raw == "" {
			continue
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || v < 0 || v > 10000 {
			return s, errors.BadRequest("invalid " + f.name + " parameter")
		}
		*f.dst = v
	}

	if s.Width == 0 || s.Height == 0 {
		return s, errors.BadRequest("width and height must be positive")
	}
	return s, nil
}

func (h *APIHandlers) HandleHealth(w http.ResponseWriter, r *http.Request) {
	healthData := map[string]string{
		"status":    "healthy",
		"timestamp": time.Now().Format(time.RFC3339),
		"version":   "1.0.0",
	}

	errors.WriteSuccessWithHeaders(w, healthData, noStore)
}

func (h *APIHandlers) HandleStats(w http.ResponseWriter, r *http.Request) {
	errors.WriteSuccess(w, h.dashboard.Stats())
}
