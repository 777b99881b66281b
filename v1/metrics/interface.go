package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// MetricsCollector is the metrics contract implemented by *Metrics.
type MetricsCollector interface {
	// IncrementRequests counts one finished HTTP request.
	IncrementRequests(endpoint, status string)

	// RecordRequestDuration observes time.Since(start) for endpoint.
	RecordRequestDuration(start time.Time, endpoint string)

	CreateCounter(name, help string, labels []string) *prometheus.CounterVec
	CreateHistogram(name, help string, labels []string, buckets []float64) *prometheus.HistogramVec
	CreateGauge(name, help string, labels []string) *prometheus.GaugeVec
}
