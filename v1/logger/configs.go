package logger

const (
	Debug   = "debug"
	Info    = "info"
	Warning = "warning"
	Error   = "error"
)

// Config defines the logger settings.
type Config struct {
	// Level is one of Debug, Info, Warning or Error. Unknown values log at Info.
	Level string `yaml:"level" mapstructure:"level"`

	// ServiceName is attached to every entry as the "service" field.
	ServiceName string `yaml:"service_name" mapstructure:"service_name"`

	// EnableTracing makes the *WithContext methods attach trace and span IDs.
	EnableTracing bool `yaml:"enable_tracing" mapstructure:"enable_tracing"`

	// Encoding is "json" (default) or "console".
	Encoding string `yaml:"encoding" mapstructure:"encoding"`
}
