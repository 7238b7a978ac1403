package obs

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics bundles the Prometheus collectors for the API server.
type Metrics struct {
	SearchesTotal       prometheus.Counter
	BookingsTotal       *prometheus.CounterVec
	IdempotentReplays   prometheus.Counter
	RateLimitDropsTotal prometheus.Counter

	HTTPRequestDuration *prometheus.HistogramVec
	HTTPRequestsTotal   *prometheus.CounterVec
	Registry            *prometheus.Registry
}

// NewMetrics creates the collectors and registers them on the registry.
func NewMetrics(p *prometheus.Registry) *Metrics {
	m := &Metrics{
		SearchesTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "flight_searches_total",
			Help: "Total number of flight search requests",
		}),
		BookingsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "bookings_total",
			Help: "Booking operations by outcome",
		}, []string{"operation", "outcome"}),
		IdempotentReplays: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "idempotent_replays_total",
			Help: "Booking creations answered from a stored idempotency record",
		}),
		RateLimitDropsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "ratelimit_drops_total",
			Help: "Requests dropped due to rate limiting",
		}),
		HTTPRequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP request latencies",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path", "status"},
		),
		HTTPRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		Registry: p,
	}

	p.MustRegister(
		m.SearchesTotal,
		m.BookingsTotal,
		m.IdempotentReplays,
		m.RateLimitDropsTotal,
		m.HTTPRequestDuration,
		m.HTTPRequestsTotal,
	)

	return m
}

func (m *Metrics) IncSearches() { m.SearchesTotal.Inc() }

func (m *Metrics) IncBookingOp(operation, outcome string) {
	m.BookingsTotal.WithLabelValues(operation, outcome).Inc()
}

func (m *Metrics) IncIdempotentReplays() { m.IdempotentReplays.Inc() }

func (m *Metrics) IncRateLimitDrops() { m.RateLimitDropsTotal.Inc() }

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{})
}
