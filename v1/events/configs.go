package events

const (
	BackendNone   = "none"
	BackendRabbit = "rabbit"
	BackendKafka  = "kafka"
)

// Config selects the broker analysis events go to.
type Config struct {
	// Backend is one of none, rabbit or kafka. Empty means none.
	Backend string `yaml:"backend" mapstructure:"backend"`
}
