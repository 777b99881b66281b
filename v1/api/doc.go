/*
Package api exposes the lyrics analysis service over HTTP with gin.

Endpoints:

	GET  /health                     {"status":"ok"}
	POST /analyze                    {"artist","title","lyrics"} -> emotions and embedding
	POST /similar                    {"lyrics","top_k"} -> closest library songs
	GET  /lyrics?artist=..&title=..  lyrics from the public providers

Errors are returned as {"detail": "...", "message": "..."}. A body that does
not bind yields 422, blank lyrics yield 400 and a model or library failure
yields 503.

Every request runs under a server span, is logged once and is counted in
the request metrics when a collector is provided.

Usage with fx:

	app := fx.New(
	    analysis.FXModule,
	    api.FXModule,
	    fx.Provide(func() api.Config { return cfg.API }),
	)
*/
package api
