package spotify

import "time"

const (
	DefaultTokenURL      = "https://accounts.spotify.com/api/token"
	DefaultAPIURL        = "https://api.spotify.com/v1"
	DefaultMarket        = "US"
	DefaultTimeout       = 15 * time.Second
	DefaultRefreshMargin = 60 * time.Second

	// DefaultLimit is used when a search asks for no particular size.
	DefaultLimit = 8
	// MaxLimit is the largest page Search requests.
	MaxLimit = 20
)

// Config holds the app credentials and endpoints.
type Config struct {
	Enabled bool `yaml:"enabled" mapstructure:"enabled"`

	ClientID     string `yaml:"client_id" mapstructure:"client_id"`
	ClientSecret string `yaml:"client_secret" mapstructure:"client_secret"`

	TokenURL string `yaml:"token_url" mapstructure:"token_url"`
	APIURL   string `yaml:"api_url" mapstructure:"api_url"`

	// Market restricts search results to tracks playable in that country.
	Market string `yaml:"market" mapstructure:"market"`

	Timeout time.Duration `yaml:"timeout" mapstructure:"timeout"`

	// RefreshMargin is subtracted from the token lifetime.
	RefreshMargin time.Duration `yaml:"refresh_margin" mapstructure:"refresh_margin"`
}

func (c Config) withDefaults() Config {
	if c.TokenURL == "" {
		c.TokenURL = DefaultTokenURL
	}
	if c.APIURL == "" {
		c.APIURL = DefaultAPIURL
	}
	if c.Market == "" {
		c.Market = DefaultMarket
	}
	if c.Timeout == 0 {
		c.Timeout = DefaultTimeout
	}
	if c.RefreshMargin == 0 {
		c.RefreshMargin = DefaultRefreshMargin
	}
	return c
}

// ClampLimit maps a requested page size into [1, MaxLimit]. Zero selects
// DefaultLimit.
func ClampLimit(limit int) int {
	switch {
	case limit == 0:
		return DefaultLimit
	case limit < 1:
		return 1
	case limit > MaxLimit:
		return MaxLimit
	default:
		return limit
	}
}
