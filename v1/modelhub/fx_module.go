package modelhub

import (
	"go.uber.org/fx"

	"github.com/pulsesearch/lyricml/v1/minio"
)

// FXModule provides *Hub, backed by object storage when a *minio.MinioClient
// is available.
var FXModule = fx.Module("modelhub",
	fx.Provide(NewWithDI),
)

// HubParams groups the dependencies of the hub.
type HubParams struct {
	fx.In

	Config Config
	Minio  *minio.MinioClient `optional:"true"`
	Logger Logger             `optional:"true"`
}

// NewWithDI builds the hub from the container.
func NewWithDI(p HubParams) *Hub {
	var store ObjectStore
	if p.Minio != nil {
		store = p.Minio
	}
	return New(p.Config, store, p.Logger)
}
