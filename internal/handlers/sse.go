package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/a-h/templ"
	"github.com/starfederation/datastar-go/datastar"

	"mkt-dashboard/internal/observability"
	"mkt-dashboard/internal/services"
	"mkt-dashboard/internal/ui/templates"
)

type SSEHandlers struct {
	dashboard *services.Dashboard
	logger    *slog.Logger
}

func NewSSEHandlers(dashboard *services.Dashboard, logger *slog.Logger) *SSEHandlers {
	return &SSEHandlers{
		dashboard: dashboard,
		logger:    logger,
	}
}

// viewSignals is merged into the page's datastar signals after a patch.
type viewSignals struct {
	View        string `json:"view"`
	Failed      bool   `json:"failed"`
	Fallback    bool   `json:"fallback,omitempty"`
	LastUpdated string `json:"lastUpdated"`
}

type stream struct {
	sse    *datastar.ServerSentEventGenerator
	r      *http.Request
	logger *slog.Logger
}

func (h *SSEHandlers) open(w http.ResponseWriter, r *http.Request) *stream {
	return &stream{
		sse:    datastar.NewSSE(w, r),
		r:      r,
		logger: observability.LoggerFrom(r.Context(), h.logger),
	}
}

func (s *stream) patch(c templ.Component) bool {
	html, err := templates.Render(s.r.Context(), c)
	if err != nil {
		s.logger.Error("render fragment", "error", err)
		return false
	}
	if err := s.sse.PatchElements(html); err != nil {
		s.logger.Warn("patch elements", "error", err)
		return false
	}
	return true
}

func (s *stream) signals(v any) {
	data, err := json.Marshal(v)
	if err != nil {
		s.logger.Error("marshal signals", "error", err)
		return
	}
	if err := s.sse.PatchSignals(data); err != nil {
		s.logger.Warn("patch signals", "error", err)
	}
}

func now() string {
	return time.Now().UTC().Format(time.RFC3339)
}

func (h *SSEHandlers) HandleDemographic(w http.ResponseWriter, r *http.Request) {
	s := h.open(w, r)

	report, err := h.dashboard.Demographic(r.Context())
	if err != nil {
		s.patch(templates.FetchFailed(templates.DemographicID, services.FetchErrorMessage))
		s.signals(map[string]viewSignals{"demographic": {View: services.ViewDemographic, Failed: true, LastUpdated: now()}})
		return
	}
	s.patch(templates.Demographic(report))
	s.signals(map[string]viewSignals{"demographic": {View: services.ViewDemographic, LastUpdated: now()}})
}

func (h *SSEHandlers) HandleDevices(w http.ResponseWriter, r *http.Request) {
	s := h.open(w, r)

	report := h.dashboard.Devices(r.Context())
	s.patch(templates.Devices(report))
	s.signals(map[string]viewSignals{"devices": {View: services.ViewDevices, Failed: report.Error != "", LastUpdated: now()}})
}

func (h *SSEHandlers) HandleRegions(w http.ResponseWriter, r *http.Request) {
	s := h.open(w, r)

	report := h.dashboard.Regions(r.Context())
	s.patch(templates.Regions(report))
	s.signals(map[string]viewSignals{"regions": {View: services.ViewRegions, Failed: report.Error != "", LastUpdated: now()}})
}

func (h *SSEHandlers) HandleWeekly(w http.ResponseWriter, r *http.Request) {
	s := h.open(w, r)

	report, err := h.dashboard.Weekly(r.Context())
	if err != nil {
		s.patch(templates.FetchFailed(templates.WeeklyID, services.FetchErrorMessage))
		s.signals(map[string]viewSignals{"weekly": {View: services.ViewWeekly, Failed: true, LastUpdated: now()}})
		return
	}
	s.patch(templates.Weekly(report))
	s.signals(map[string]viewSignals{"weekly": {View: services.ViewWeekly, Fallback: report.Fallback, LastUpdated: now()}})
}

// HandleRefreshAll patches every view from a single fetch. A failed fetch
// replaces the views with the error state, except weekly which shows the
// default series when one is available.
func (h *SSEHandlers) HandleRefreshAll(w http.ResponseWriter, r *http.Request) {
	s := h.open(w, r)

	ov, err := h.dashboard.Overview(r.Context())
	if err != nil {
		fragments := []templ.Component{
			templates.FetchFailed(templates.DemographicID, services.FetchErrorMessage),
			templates.FetchFailed(templates.DeviceID, services.FetchErrorMessage),
			templates.FetchFailed(templates.RegionID, services.FetchErrorMessage),
		}
		fallback := ov != nil && ov.Weekly != nil
		if fallback {
			fragments = append(fragments, templates.Weekly(ov.Weekly))
		} else {
			fragments = append(fragments, templates.FetchFailed(templates.WeeklyID, services.FetchErrorMessage))
		}
		for _, c := range fragments {
			if !s.patch(c) {
				return
			}
		}
		s.signals(map[string]viewSignals{"overview": {View: services.ViewOverview, Failed: true, Fallback: fallback, LastUpdated: now()}})
		return
	}

	fragments := []templ.Component{
		templates.Demographic(ov.Demographic),
		templates.Devices(ov.Devices),
		templates.Regions(ov.Regions),
		templates.Weekly(ov.Weekly),
	}
	for _, c := range fragments {
		if !s.patch(c) {
			return
		}
	}
	s.signals(map[string]viewSignals{"overview": {View: services.ViewOverview, Fallback: ov.Weekly.Fallback, LastUpdated: now()}})
}
