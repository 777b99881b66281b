package library

// Config selects the song library.
type Config struct {
	// Backend is one of "none", "file", "qdrant" or "postgres".
	Backend string `yaml:"backend" mapstructure:"backend"`

	// File is the path of the JSON export read by the file backend.
	File string `yaml:"file" mapstructure:"file"`
}
