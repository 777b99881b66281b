package tracer

// Config configures the tracer provider.
type Config struct {
	ServiceName string `yaml:"service_name" mapstructure:"service_name"`

	// AppEnv is recorded as deployment.environment.
	AppEnv string `yaml:"app_env" mapstructure:"app_env"`

	// EnableExport turns on the OTLP/HTTP exporter.
	EnableExport bool `yaml:"enable_export" mapstructure:"enable_export"`
}
