package spotify

import (
	"go.uber.org/fx"

	"github.com/pulsesearch/lyricml/v1/observability"
)

// FXModule provides *Client, or nil when spotify.enabled is false.
var FXModule = fx.Module("spotify",
	fx.Provide(NewWithDI),
)

// ClientParams groups the dependencies of the client.
type ClientParams struct {
	fx.In

	Config   Config
	Logger   Logger                 `optional:"true"`
	Observer observability.Observer `optional:"true"`
}

// NewWithDI builds the client from the container.
func NewWithDI(p ClientParams) *Client {
	if !p.Config.Enabled {
		return nil
	}
	return New(p.Config, p.Logger).WithObserver(p.Observer)
}
