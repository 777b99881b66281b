// Package metrics provides Prometheus instrumentation for lyricml.
//
// Every service owns an isolated registry whose metrics carry a constant
// "service" label. The registry is exposed on a dedicated listener so that
// scraping never competes with the public API:
//
//	m := metrics.NewMetrics(metrics.Config{
//		Address:                 ":9090",
//		ServiceName:             "lyricml",
//		EnableDefaultCollectors: true,
//	})
//
//	defer m.RecordRequestDuration(time.Now(), "/analyze")
//	m.IncrementRequests("/analyze", "200")
//
// *Metrics also implements observability.Observer, so infrastructure clients
// (redis, qdrant, rabbit, kafka) and the inference wrappers report their
// operations through the same registry:
//
//	cache := redis.NewVectorCache(client, ttl).WithObserver(m)
//
// # FX Module Integration
//
// FXModule provides *Metrics, the MetricsCollector interface and the
// observability.Observer interface, and starts/stops the metrics server with
// the application lifecycle.
package metrics
