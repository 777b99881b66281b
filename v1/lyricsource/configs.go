package lyricsource

import "time"

const (
	DefaultLRCLibURL    = "https://lrclib.net/api"
	DefaultLyricsOvhURL = "https://api.lyrics.ovh/v1"
	DefaultTimeout      = 15 * time.Second
	DefaultUserAgent    = "lyricml (https://github.com/pulsesearch/lyricml)"
)

// Config points the client at the lyrics providers.
type Config struct {
	// LRCLibURL is the LRCLIB API base, queried first.
	LRCLibURL string `yaml:"lrclib_url" mapstructure:"lrclib_url"`

	// LyricsOvhURL is the lyrics.ovh API base, queried when LRCLIB has nothing.
	LyricsOvhURL string `yaml:"lyrics_ovh_url" mapstructure:"lyrics_ovh_url"`

	// Timeout applies to each provider request.
	Timeout time.Duration `yaml:"timeout" mapstructure:"timeout"`

	UserAgent string `yaml:"user_agent" mapstructure:"user_agent"`
}

func (c Config) withDefaults() Config {
	if c.LRCLibURL == "" {
		c.LRCLibURL = DefaultLRCLibURL
	}
	if c.LyricsOvhURL == "" {
		c.LyricsOvhURL = DefaultLyricsOvhURL
	}
	if c.Timeout == 0 {
		c.Timeout = DefaultTimeout
	}
	if c.UserAgent == "" {
		c.UserAgent = DefaultUserAgent
	}
	return c
}
