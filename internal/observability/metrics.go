package observability

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the Prometheus instruments for the screening service.
type Metrics struct {
	registry *prometheus.Registry

	requestTotal    *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	requestInFlight prometheus.Gauge

	screeningsTotal   *prometheus.CounterVec
	screeningDuration prometheus.Histogram
}

// NewMetrics creates a metrics set with its own registry.
func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()

	requestTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "screener",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total HTTP requests processed.",
		},
		[]string{"method", "path", "status"},
	)
	requestDuration := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "screener",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request duration in seconds.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)
	requestInFlight := prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "screener",
			Subsystem: "http",
			Name:      "in_flight_requests",
			Help:      "Number of in-flight HTTP requests.",
		},
	)
	screeningsTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "screener",
			Subsystem: "scoring",
			Name:      "screenings_total",
			Help:      "Total screenings scored, labeled by rating tier.",
		},
		[]string{"rating"},
	)
	screeningDuration := prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "screener",
			Subsystem: "scoring",
			Name:      "screening_duration_seconds",
			Help:      "Time spent scoring one resume against one job posting.",
			Buckets:   prometheus.DefBuckets,
		},
	)

	registry.MustRegister(requestTotal, requestDuration, requestInFlight,
		screeningsTotal, screeningDuration)

	return &Metrics{
		registry:          registry,
		requestTotal:      requestTotal,
		requestDuration:   requestDuration,
		requestInFlight:   requestInFlight,
		screeningsTotal:   screeningsTotal,
		screeningDuration: screeningDuration,
	}
}

// Handler returns the /metrics endpoint handler.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// ObserveScreening records one completed screening.
func (m *Metrics) ObserveScreening(rating string, duration time.Duration) {
	m.screeningsTotal.WithLabelValues(rating).Inc()
	m.screeningDuration.Observe(duration.Seconds())
}

// statusRecorder captures the response status code for request metrics.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// Middleware instruments an HTTP handler with request metrics. The path
// label collapses per-resource URLs so label cardinality stays bounded.
func (m *Metrics) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		m.requestInFlight.Inc()
		defer m.requestInFlight.Dec()

		recorder := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		start := time.Now()
		next.ServeHTTP(recorder, r)
		elapsed := time.Since(start)

		path := normalizePath(r.URL.Path)
		m.requestTotal.WithLabelValues(r.Method, path, strconv.Itoa(recorder.status)).Inc()
		m.requestDuration.WithLabelValues(r.Method, path).Observe(elapsed.Seconds())
	})
}

func normalizePath(path string) string {
	if strings.HasPrefix(path, "/api/screenings/") {
		return "/api/screenings/{id}"
	}
	switch path {
	case "/api/screen", "/api/history", "/health", "/metrics":
		return path
	default:
		return "other"
	}
}
