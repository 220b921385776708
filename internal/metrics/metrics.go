// Package metrics owns the Prometheus collectors exported on /metrics.
// All recording methods are safe on a nil *Metrics, which records nothing.
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

const namespace = "localbiz"

// Metrics holds every collector registered by the service.
type Metrics struct {
	registry *prometheus.Registry

	httpRequests       *prometheus.CounterVec
	httpDuration       *prometheus.HistogramVec
	auditFailures      *prometheus.CounterVec
	roleLookupFailures prometheus.Counter
	transitions        *prometheus.CounterVec
	events             *prometheus.CounterVec
	rateLimited        *prometheus.CounterVec

	subscribersOnce sync.Once
}

// New creates a registry with process and Go runtime collectors plus the
// service collectors.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by method, route pattern and status code.",
		}, []string{"method", "route", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by method and route pattern.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		auditFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "audit_failures_total",
			Help: "Admin audit entries that could not be written.",
		}, []string{"action"}),
		roleLookupFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "role_lookup_failures_total",
			Help:      "Requests that fell back to member because the account role could not be read.",
		}),
		transitions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "listing_transitions_total",
			Help:      "Listing status transitions applied by moderators.",
		}, []string{"from", "to"}),
		events: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "events_published_total",
			Help:      "Bus events forwarded to the external sink by result.",
		}, []string{"result"}),
		rateLimited: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rate_limited_total",
			Help:      "Requests rejected by the rate limiter.",
		}, []string{"route"}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.httpRequests,
		m.httpDuration,
		m.auditFailures,
		m.roleLookupFailures,
		m.transitions,
		m.events,
		m.rateLimited,
	)
	return m
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Registry exposes the underlying registry for tests and extra collectors.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// ObserveHTTP records one finished request.
func (m *Metrics) ObserveHTTP(method, route string, status int, d time.Duration) {
	if m == nil {
		return
	}
	m.httpRequests.With(prometheus.Labels{"method": method, "route": route, "status": strconv.Itoa(status)}).Inc()
	m.httpDuration.With(prometheus.Labels{"method": method, "route": route}).Observe(d.Seconds())
}

// AuditFailure counts an audit entry that was not persisted.
func (m *Metrics) AuditFailure(action string) {
	if m == nil {
		return
	}
	m.auditFailures.With(prometheus.Labels{"action": action}).Inc()
}

// RoleLookupFailure counts a fail-closed role resolution.
func (m *Metrics) RoleLookupFailure() {
	if m == nil {
		return
	}
	m.roleLookupFailures.Inc()
}

// Transition counts an applied listing status change.
func (m *Metrics) Transition(from, to string) {
	if m == nil {
		return
	}
	m.transitions.With(prometheus.Labels{"from": from, "to": to}).Inc()
}

// EventPublished counts a sink delivery attempt; result is "ok", "error" or "dropped".
func (m *Metrics) EventPublished(result string) {
	if m == nil {
		return
	}
	m.events.With(prometheus.Labels{"result": result}).Inc()
}

// TrackSubscribers exports count as the number of live bus subscribers.
// Only the first call registers the gauge.
func (m *Metrics) TrackSubscribers(count func() int) {
	if m == nil {
		return
	}
	m.subscribersOnce.Do(func() {
		m.registry.MustRegister(prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "bus_subscribers",
			Help:      "Live notification bus subscribers, including open admin streams.",
		}, func() float64 { return float64(count()) }))
	})
}

// RateLimited counts a rejected request.
func (m *Metrics) RateLimited(route string) {
	if m == nil {
		return
	}
	m.rateLimited.With(prometheus.Labels{"route": route}).Inc()
}
