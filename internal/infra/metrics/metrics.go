package metrics

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "frontdesk"

// Metrics owns the application's collectors and the registry they live in.
type Metrics struct {
	registry *prometheus.Registry
	once     sync.Once

	httpRequests        *prometheus.CounterVec
	httpDuration        *prometheus.HistogramVec
	availabilityChecks  *prometheus.CounterVec
	reservationsCreated *prometheus.CounterVec
	outboxPublished     *prometheus.CounterVec
}

func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		httpRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "HTTP requests by method, route and status.",
			},
			[]string{"method", "route", "status"},
		),
		httpDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request latency.",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
		availabilityChecks: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "availability_checks_total",
				Help:      "Room availability checks by result.",
			},
			[]string{"result"},
		),
		reservationsCreated: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "reservations_created_total",
				Help:      "Reservations created by channel.",
			},
			[]string{"channel"},
		),
		outboxPublished: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "outbox_published_total",
				Help:      "Outbox jobs handed to the broker by result.",
			},
			[]string{"result"},
		),
	}
	m.register()
	return m
}

func (m *Metrics) register() {
	m.once.Do(func() {
		m.registry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
			m.httpRequests,
			m.httpDuration,
			m.availabilityChecks,
			m.reservationsCreated,
			m.outboxPublished,
		)
	})
}

func (m *Metrics) ObserveHTTP(method, route string, status int, elapsed time.Duration) {
	m.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

func (m *Metrics) AvailabilityChecked(result string) {
	m.availabilityChecks.WithLabelValues(result).Inc()
}

func (m *Metrics) ReservationCreated(channel string) {
	m.reservationsCreated.WithLabelValues(channel).Inc()
}

func (m *Metrics) OutboxPublished(result string) {
	m.outboxPublished.WithLabelValues(result).Inc()
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}
