// Package metrics exposes tracking counters through a Prometheus registry.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"tracking/internal/core/ports"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// DefaultNamespace prefixes every metric name.
const DefaultNamespace = "tracking"

// Metrics holds the service's Prometheus collectors.
type Metrics struct {
	registry *prometheus.Registry

	HTTPRequestsTotal    *prometheus.CounterVec
	HTTPRequestDuration  *prometheus.HistogramVec
	HTTPRequestsInFlight prometheus.Gauge

	EventsProcessed     *prometheus.CounterVec
	Broadcasts          prometheus.Counter
	NotificationsSent   prometheus.Counter
	SubscribersDropped  prometheus.Counter
	ActiveSubscribers   prometheus.Gauge
	ShipmentsTracked    prometheus.Gauge
	JournalEntriesSaved prometheus.Counter
	JournalPending      prometheus.Gauge
}

var _ ports.TrackingMetrics = (*Metrics)(nil)

// New creates the collectors and registers them, together with the Go and
// process collectors, on a fresh registry.
func New(namespace string) *Metrics {
	if namespace == "" {
		namespace = DefaultNamespace
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector())
	registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	m := &Metrics{registry: registry}

	m.HTTPRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	m.HTTPRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
		},
		[]string{"method", "path"},
	)

	m.HTTPRequestsInFlight = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "http_requests_in_flight",
		Help:      "Number of HTTP requests currently being processed",
	})

	m.EventsProcessed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "events_processed_total",
			Help:      "Event records submitted, by operation and outcome",
		},
		[]string{"operation", "outcome"},
	)

	m.Broadcasts = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "broadcasts_total",
		Help:      "Shipment change broadcasts issued",
	})

	m.NotificationsSent = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "notifications_sent_total",
		Help:      "Identifiers queued to subscribers",
	})

	m.SubscribersDropped = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "subscribers_dropped_total",
		Help:      "Subscribers removed because their queue was full",
	})

	m.ActiveSubscribers = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "subscribers_active",
		Help:      "Currently registered subscribers",
	})

	m.ShipmentsTracked = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "shipments_tracked",
		Help:      "Shipments held in the repository",
	})

	m.JournalEntriesSaved = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "journal_entries_saved_total",
		Help:      "Journal entries written to storage",
	})

	m.JournalPending = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "journal_entries_pending",
		Help:      "Journal entries waiting for the next flush",
	})

	registry.MustRegister(
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.HTTPRequestsInFlight,
		m.EventsProcessed,
		m.Broadcasts,
		m.NotificationsSent,
		m.SubscribersDropped,
		m.ActiveSubscribers,
		m.ShipmentsTracked,
		m.JournalEntriesSaved,
		m.JournalPending,
	)

	return m
}

// Handler returns the /metrics HTTP handler.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{
		EnableOpenMetrics: true,
	})
}

// Registry returns the underlying registry.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// RecordHTTPRequest records a completed HTTP request.
func (m *Metrics) RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	m.HTTPRequestsTotal.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}

func (m *Metrics) IncrementHTTPRequestsInFlight() {
	m.HTTPRequestsInFlight.Inc()
}

func (m *Metrics) DecrementHTTPRequestsInFlight() {
	m.HTTPRequestsInFlight.Dec()
}

func (m *Metrics) EventProcessed(operation, outcome string) {
	m.EventsProcessed.WithLabelValues(operation, outcome).Inc()
}

func (m *Metrics) BroadcastSent(delivered int) {
	m.Broadcasts.Inc()
	m.NotificationsSent.Add(float64(delivered))
}

func (m *Metrics) SubscriberDropped() {
	m.SubscribersDropped.Inc()
}

func (m *Metrics) SubscribersActive(n int) {
	m.ActiveSubscribers.Set(float64(n))
}

// SetShipmentsTracked sets the repository size gauge.
func (m *Metrics) SetShipmentsTracked(n int) {
	m.ShipmentsTracked.Set(float64(n))
}

// RecordJournalFlush counts saved entries and sets the pending gauge.
func (m *Metrics) RecordJournalFlush(saved, pending int) {
	m.JournalEntriesSaved.Add(float64(saved))
	m.JournalPending.Set(float64(pending))
}
