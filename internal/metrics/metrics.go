// Package metrics defines the Prometheus collectors exported by the dashboard.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/errors/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the collectors registered on one registry.
type Metrics struct {
	gatherer prometheus.Gatherer

	httpRequests    *prometheus.CounterVec
	httpDuration    *prometheus.HistogramVec
	apiRequests     *prometheus.CounterVec
	apiDuration     *prometheus.HistogramVec
	bootstraps      *prometheus.CounterVec
	guardDecisions  *prometheus.CounterVec
	bootstrapWaited prometheus.Counter
}

// New creates the collectors and registers them on a fresh registry.
func New() (*Metrics, error) {
	reg := prometheus.NewRegistry()
	m := &Metrics{
		gatherer: reg,
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "dealerdesk_http_requests_total",
			Help: "Dashboard requests served, by route pattern and status.",
		}, []string{"method", "route", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "dealerdesk_http_request_duration_seconds",
			Help:    "Dashboard request latency.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route"}),
		apiRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "dealerdesk_api_requests_total",
			Help: "Requests sent to the remote API, by endpoint and status.",
		}, []string{"method", "endpoint", "status"}),
		apiDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "dealerdesk_api_request_duration_seconds",
			Help:    "Remote API latency.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "endpoint"}),
		bootstraps: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "dealerdesk_session_bootstraps_total",
			Help: "Session bootstraps by result.",
		}, []string{"result"}), // result: anonymous|authenticated|failed
		guardDecisions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "dealerdesk_guard_decisions_total",
			Help: "Route guard outcomes.",
		}, []string{"outcome"}),
		bootstrapWaited: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "dealerdesk_bootstrap_wait_timeouts_total",
			Help: "Requests answered with the loading page because the bootstrap was still running.",
		}),
	}

	for _, c := range []prometheus.Collector{
		m.httpRequests, m.httpDuration, m.apiRequests, m.apiDuration,
		m.bootstraps, m.guardDecisions, m.bootstrapWaited,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	} {
		if err := reg.Register(c); err != nil {
			return nil, errors.Wrap(err, "prometheus.Registry.Register()")
		}
	}

	return m, nil
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}

// ObserveAPIRequest records one remote API call. A status of 0 means the call
// failed before a response arrived.
func (m *Metrics) ObserveAPIRequest(method, endpoint string, status int, d time.Duration) {
	m.apiRequests.WithLabelValues(method, endpoint, strconv.Itoa(status)).Inc()
	m.apiDuration.WithLabelValues(method, endpoint).Observe(d.Seconds())
}

// ObserveBootstrap records the result of a session bootstrap.
func (m *Metrics) ObserveBootstrap(result string) {
	m.bootstraps.WithLabelValues(result).Inc()
}

// ObserveBootstrapTimeout records a request that gave up waiting on a bootstrap.
func (m *Metrics) ObserveBootstrapTimeout() {
	m.bootstrapWaited.Inc()
}

// ObserveGuard records a route guard outcome.
func (m *Metrics) ObserveGuard(outcome string) {
	m.guardDecisions.WithLabelValues(outcome).Inc()
}

// Middleware records request counts and latency labelled by chi route pattern.
func (m *Metrics) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(sw, r)

		route := "unmatched"
		if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
			route = rctx.RoutePattern()
		}
		m.httpRequests.WithLabelValues(r.Method, route, strconv.Itoa(sw.status)).Inc()
		m.httpDuration.WithLabelValues(r.Method, route).Observe(time.Since(start).Seconds())
	})
}

type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}

func (w *statusWriter) Unwrap() http.ResponseWriter {
	return w.ResponseWriter
}
