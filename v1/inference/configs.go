package inference

// RuntimeConfig configures the process-wide ONNX Runtime environment.
type RuntimeConfig struct {
	// SharedLibraryPath points to libonnxruntime. Empty uses the library's
	// platform default lookup.
	SharedLibraryPath string `yaml:"shared_library_path" mapstructure:"shared_library_path"`

	// IntraOpThreads limits the threads used by a single session; 0 leaves
	// the ONNX Runtime default.
	IntraOpThreads int `yaml:"intra_op_threads" mapstructure:"intra_op_threads"`
}

// SessionConfig describes one model export on disk.
type SessionConfig struct {
	ModelPath     string
	TokenizerPath string

	// OutputName is the graph output to fetch, e.g. "logits" or "last_hidden_state".
	OutputName string

	// MaxLength caps the number of tokens fed to the model, special tokens included.
	MaxLength int

	IntraOpThreads int
}
