package metrics

import (
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics owns a private registry so tests can create independent
// instances without clashing on the global one.
type Metrics struct {
	registry *prometheus.Registry

	httpRequests   *prometheus.CounterVec
	linksGenerated *prometheus.CounterVec
}

// New creates the collectors and registers them together with the Go
// runtime and process collectors.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	return &Metrics{
		registry: reg,
		httpRequests: promauto.With(reg).NewCounterVec(
			prometheus.CounterOpts{
				Name: "viciolinks_http_requests_total",
				Help: "Total number of HTTP requests, partitioned by route, method and status.",
			},
			[]string{"route", "method", "status"},
		),
		linksGenerated: promauto.With(reg).NewCounterVec(
			prometheus.CounterOpts{
				Name: "viciolinks_links_generated_total",
				Help: "Total number of tracking links generated, partitioned by link type.",
			},
			[]string{"link_type"},
		),
	}
}

// ObserveRequest counts one finished HTTP request.
func (m *Metrics) ObserveRequest(route, method string, status int) {
	m.httpRequests.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
}

// LinkGenerated counts one stored link.
func (m *Metrics) LinkGenerated(linkType string) {
	m.linksGenerated.WithLabelValues(linkType).Inc()
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Registry exposes the underlying registry for tests.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}
