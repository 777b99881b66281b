package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics owns the Prometheus registry and the HTTP server that exposes it.
type Metrics struct {
	// Server serves /metrics.
	Server *http.Server

	// Registry is the isolated registry every metric of this service lives in.
	Registry *prometheus.Registry

	registerer prometheus.Registerer
	namespace  string

	requestsTotal     *prometheus.CounterVec
	requestDuration   *prometheus.HistogramVec
	operationsTotal   *prometheus.CounterVec
	operationDuration *prometheus.HistogramVec
}

// NewMetrics creates the registry, registers the built-in metrics and
// prepares (but does not start) the metrics server.
func NewMetrics(cfg Config) *Metrics {
	registry := prometheus.NewRegistry()

	// Every metric registered through the wrapper carries service="<name>".
	wrapped := prometheus.WrapRegistererWith(
		prometheus.Labels{"service": cfg.ServiceName},
		registry,
	)

	m := &Metrics{
		Registry:   registry,
		registerer: wrapped,
		namespace:  cfg.Namespace,
	}

	m.requestsTotal = createCounterVec(cfg.Namespace, "requests_total",
		"Total number of processed HTTP requests", []string{"endpoint", "status"})
	m.requestDuration = createHistogramVec(cfg.Namespace, "request_duration_seconds",
		"Duration of HTTP requests in seconds", []string{"endpoint"}, prometheus.DefBuckets)
	m.operationsTotal = createCounterVec(cfg.Namespace, "operations_total",
		"Total number of observed component operations", []string{"component", "operation", "status"})
	m.operationDuration = createHistogramVec(cfg.Namespace, "operation_duration_seconds",
		"Duration of observed component operations in seconds", []string{"component", "operation"},
		[]float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10, 30})

	wrapped.MustRegister(
		m.requestsTotal,
		m.requestDuration,
		m.operationsTotal,
		m.operationDuration,
	)

	if cfg.EnableDefaultCollectors {
		wrapped.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
			collectors.NewBuildInfoCollector(),
		)
	}

	addr := cfg.Address
	if addr == "" {
		addr = DefaultMetricsAddress
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{Registry: wrapped}))

	m.Server = &http.Server{
		Addr:    addr,
		Handler: mux,
	}
	return m
}
