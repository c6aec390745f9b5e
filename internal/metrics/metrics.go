// Package metrics exposes the Prometheus collectors of the cookbook. A nil
// *Metrics is valid and records nothing.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Outcome labels.
const (
	OutcomeOK      = "ok"
	OutcomeFailed  = "failed"
	OutcomeFound   = "found"
	OutcomeMissing = "missing"
)

// Metrics groups the collectors registered on one registry.
type Metrics struct {
	registry *prometheus.Registry

	Listings      *prometheus.CounterVec
	Documents     *prometheus.CounterVec
	ThreadLookups *prometheus.CounterVec
	RequestsTotal *prometheus.CounterVec
	ReqDuration   *prometheus.HistogramVec
	InFlight      prometheus.Gauge
}

// New registers the collectors under namespace on a fresh registry.
func New(namespace string) *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		Listings: prometheus.NewCounterVec(
			prometheus.CounterOpts{Namespace: namespace, Name: "listings_total", Help: "Recipe directory listings by outcome"},
			[]string{"outcome"},
		),
		Documents: prometheus.NewCounterVec(
			prometheus.CounterOpts{Namespace: namespace, Name: "documents_total", Help: "Recipe document fetches by outcome"},
			[]string{"outcome"},
		),
		ThreadLookups: prometheus.NewCounterVec(
			prometheus.CounterOpts{Namespace: namespace, Name: "thread_lookups_total", Help: "Discussion thread lookups by outcome"},
			[]string{"outcome"},
		),
		RequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{Namespace: namespace, Name: "http_requests_total", Help: "Total HTTP requests"},
			[]string{"route", "method", "status"},
		),
		ReqDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "Request duration seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"route", "method"},
		),
		InFlight: prometheus.NewGauge(
			prometheus.GaugeOpts{Namespace: namespace, Name: "http_in_flight_requests", Help: "In-flight HTTP requests"},
		),
	}
	m.registry.MustRegister(m.Listings, m.Documents, m.ThreadLookups, m.RequestsTotal, m.ReqDuration, m.InFlight)
	return m
}

// Registry returns the registry the collectors live on.
func (m *Metrics) Registry() *prometheus.Registry {
	if m == nil {
		return nil
	}
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// ObserveListing counts one directory listing.
func (m *Metrics) ObserveListing(err error) {
	if m == nil {
		return
	}
	m.Listings.WithLabelValues(outcome(err)).Inc()
}

// ObserveDocument counts one document fetch.
func (m *Metrics) ObserveDocument(err error) {
	if m == nil {
		return
	}
	m.Documents.WithLabelValues(outcome(err)).Inc()
}

// ObserveThreadLookup counts one thread lookup; found is ignored when err is set.
func (m *Metrics) ObserveThreadLookup(found bool, err error) {
	if m == nil {
		return
	}
	label := OutcomeMissing
	switch {
	case err != nil:
		label = OutcomeFailed
	case found:
		label = OutcomeFound
	}
	m.ThreadLookups.WithLabelValues(label).Inc()
}

// ObserveRequest records a finished HTTP request.
func (m *Metrics) ObserveRequest(route, method string, status int, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.RequestsTotal.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
	m.ReqDuration.WithLabelValues(route, method).Observe(elapsed.Seconds())
}

// TrackInFlight increments the in-flight gauge and returns the decrement.
func (m *Metrics) TrackInFlight() func() {
	if m == nil {
		return func() {}
	}
	m.InFlight.Inc()
	return m.InFlight.Dec
}

func outcome(err error) string {
	if err != nil {
		return OutcomeFailed
	}
	return OutcomeOK
}
