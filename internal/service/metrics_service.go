package service

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// MetricsService encapsulates Prometheus instrumentation for the API.
type MetricsService struct {
	registry        *prometheus.Registry
	handler         http.Handler
	requestDuration *prometheus.HistogramVec
	requestTotal    *prometheus.CounterVec
	matchTotal      *prometheus.CounterVec
	bookingTotal    *prometheus.CounterVec
}

// NewMetricsService registers the core Prometheus collectors.
func NewMetricsService() *MetricsService {
	registry := prometheus.NewRegistry()

	requestDuration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "Duration of HTTP requests in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path", "status"})

	requestTotal := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Total number of HTTP requests",
	}, []string{"method", "path", "status"})

	matchTotal := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "tutor_match_requests_total",
		Help: "Total auto-match requests by outcome",
	}, []string{"outcome"})

	bookingTotal := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "slot_booking_transitions_total",
		Help: "Total slot booking transitions by operation",
	}, []string{"operation"})

	registry.MustRegister(requestDuration, requestTotal, matchTotal, bookingTotal)

	return &MetricsService{
		registry:        registry,
		handler:         promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
		requestDuration: requestDuration,
		requestTotal:    requestTotal,
		matchTotal:      matchTotal,
		bookingTotal:    bookingTotal,
	}
}

// Handler exposes the Prometheus scrape endpoint.
func (m *MetricsService) Handler() http.Handler {
	return m.handler
}

// ObserveHTTPRequest records one served request.
func (m *MetricsService) ObserveHTTPRequest(method, path string, status int, duration time.Duration) {
	labels := []string{method, path, strconv.Itoa(status)}
	m.requestDuration.WithLabelValues(labels...).Observe(duration.Seconds())
	m.requestTotal.WithLabelValues(labels...).Inc()
}

// ObserveMatch records one auto-match call and whether it found a
// recommendation.
func (m *MetricsService) ObserveMatch(matched bool) {
	outcome := "matched"
	if !matched {
		outcome = "no_candidates"
	}
	m.matchTotal.WithLabelValues(outcome).Inc()
}

// ObserveBookingTransition records one slot state transition.
func (m *MetricsService) ObserveBookingTransition(operation string) {
	m.bookingTotal.WithLabelValues(operation).Inc()
}
