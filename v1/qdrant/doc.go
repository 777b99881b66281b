// Package qdrant reads a song library stored as points of a Qdrant
// collection.
//
// Every point carries the song's embedding as its vector and the song's
// metadata as payload:
//
//	{
//	  "artist":   "Nina Simone",
//	  "title":    "Feeling Good",
//	  "emotions": [{"label": "joy", "score": 0.71}, ...]
//	}
//
// "emotions" may also be a list of bare label strings. Collections with named
// vectors are supported through Config.VectorName.
//
// Songs scrolls the whole collection page by page (Config.PageSize points per
// request, 256 by default) with payload and vectors, so the collection should
// hold a catalogue, not an unbounded stream.
//
// # Fx
//
//	app := fx.New(
//	    qdrant.FXModule,  // *QdrantClient and the "qdrant" library backend
//	    library.FXModule,
//	)
//
// With Config.Enabled false the client is nil and the backend is registered
// as disabled.
package qdrant
