// Package library reads the song library that similarity search ranks
// against.
//
// A song library is owned by another system; this package only reads it.
// Records come from a Source, selected with Config.Backend:
//
//   - "file": a JSON array of SongRecord, typically a document-store export.
//   - "qdrant": every point of a Qdrant collection (see package qdrant).
//   - "postgres": rows of a Postgres table (see package postgres).
//   - "none": no library; similarity search is unavailable.
//
// Store-backed sources register themselves in the fx value group
// "library_backends" and the module picks the configured one.
package library
