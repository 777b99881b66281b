package modelhub

import "time"

const (
	DefaultCacheDir = "./models/cache"
	DefaultHubURL   = "https://huggingface.co"
	DefaultRevision = "main"
)

// Config configures where model artifacts come from.
type Config struct {
	// CacheDir receives downloaded models, one subdirectory per model name.
	CacheDir string `yaml:"cache_dir" mapstructure:"cache_dir"`

	HubURL   string `yaml:"hub_url" mapstructure:"hub_url"`
	HubToken string `yaml:"hub_token" mapstructure:"hub_token"`

	// ObjectPrefix is the key prefix of model directories in the bucket.
	ObjectPrefix string `yaml:"object_prefix" mapstructure:"object_prefix"`

	// Offline forbids hub downloads.
	Offline bool `yaml:"offline" mapstructure:"offline"`

	DownloadTimeout time.Duration `yaml:"download_timeout" mapstructure:"download_timeout"`
}

// ModelSpec names a model export and the files it consists of.
type ModelSpec struct {
	// Name is the cache subdirectory and the object storage directory.
	Name string

	// Dir is a local directory that takes precedence when it exists.
	Dir string

	// Repo and Revision locate the export on the hub. Empty Repo disables
	// hub downloads for this model.
	Repo     string
	Revision string

	// Files are paths relative to the model root that must be present.
	Files []string
}
