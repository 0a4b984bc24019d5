package observability

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the dashboard's prometheus collectors. A nil *Metrics is
// valid and records nothing.
type Metrics struct {
	fetches   *prometheus.CounterVec
	fallbacks *prometheus.CounterVec
	fetchTime prometheus.Histogram
	requests  *prometheus.HistogramVec
}

// NewMetrics registers the collectors on reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		return nil
	}
	m := &Metrics{
		fetches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "dashboard_dataset_fetches_total",
			Help: "Marketing dataset fetches by view and outcome.",
		}, []string{"view", "outcome"}),
		fallbacks: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "dashboard_fallbacks_total",
			Help: "Views served from the default dataset.",
		}, []string{"view", "reason"}),
		fetchTime: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "dashboard_dataset_fetch_seconds",
			Help:    "Duration of marketing dataset fetches.",
			Buckets: prometheus.DefBuckets,
		}),
		requests: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "dashboard_http_request_seconds",
			Help:    "HTTP request latency by route pattern and status.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route", "status"}),
	}
	reg.MustRegister(m.fetches, m.fallbacks, m.fetchTime, m.requests)
	return m
}

func (m *Metrics) ObserveFetch(view string, d time.Duration, err error) {
	if m == nil {
		return
	}
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	m.fetches.WithLabelValues(label(view), outcome).Inc()
	m.fetchTime.Observe(d.Seconds())
}

func (m *Metrics) IncFallback(view, reason string) {
	if m == nil {
		return
	}
	m.fallbacks.WithLabelValues(label(view), label(reason)).Inc()
}

func (m *Metrics) ObserveRequest(method, route string, status int, d time.Duration) {
	if m == nil {
		return
	}
	m.requests.WithLabelValues(method, label(route), strconv.Itoa(status)).Observe(d.Seconds())
}

func label(v string) string {
	if v == "" {
		return "unknown"
	}
	return v
}
