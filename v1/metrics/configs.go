package metrics

const DefaultMetricsAddress = ":9090"

// Config configures the metrics registry and its HTTP listener.
type Config struct {
	// Address is the listen address of the /metrics server.
	Address string `yaml:"address" mapstructure:"address"`

	// EnableDefaultCollectors registers the Go, process and build info collectors.
	EnableDefaultCollectors bool `yaml:"enable_default_collectors" mapstructure:"enable_default_collectors"`

	// Namespace prefixes every metric name when set.
	Namespace string `yaml:"namespace" mapstructure:"namespace"`

	// ServiceName is the value of the constant "service" label.
	ServiceName string `yaml:"service_name" mapstructure:"service_name"`
}
