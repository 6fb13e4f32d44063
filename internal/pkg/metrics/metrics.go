/*
Package metrics provides Prometheus instrumentation for the HTTP service.

It keeps all collectors on a private registry so the exposed endpoint only
reports what the application registered, plus the standard Go and process
collectors.
*/
package metrics

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the registry and the collectors recorded by the HTTP layer.
type Metrics struct {
	registry *prometheus.Registry

	requestsTotal *prometheus.CounterVec
}

// New creates a Metrics instance with its own registry and registers the
// standard Go runtime and process collectors alongside the request counter.
func New() *Metrics {
	registry := prometheus.NewRegistry()

	registry.MustRegister(collectors.NewGoCollector())
	registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	m := &Metrics{
		registry: registry,
		requestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "pinboard_http_requests_total",
				Help: "Total number of HTTP requests by method, route, and status",
			},
			[]string{"method", "route", "status"},
		),
	}

	registry.MustRegister(m.requestsTotal)

	return m
}

// RegisterSessionGauge registers a gauge reporting the number of sessions
// currently held in memory. The count callback is invoked on each scrape.
func (m *Metrics) RegisterSessionGauge(count func() int) {
	m.registry.MustRegister(prometheus.NewGaugeFunc(
		prometheus.GaugeOpts{
			Name: "pinboard_sessions_active",
			Help: "Number of live sessions held in memory",
		},
		func() float64 { return float64(count()) },
	))
}

// Handler returns the HTTP handler exposing the private registry.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{
		EnableOpenMetrics: true,
	})
}

// Middleware returns an HTTP middleware that counts completed requests.
// Requests are labeled by the matched chi route pattern rather than the raw
// URL to keep label cardinality bounded.
func (m *Metrics) Middleware() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		fn := func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			route := "unmatched"
			if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
				route = rctx.RoutePattern()
			}

			m.requestsTotal.WithLabelValues(r.Method, route, strconv.Itoa(ww.Status())).Inc()
		}

		return http.HandlerFunc(fn)
	}
}
