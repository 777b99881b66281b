// Package analysis composes the emotion classifier and the embedder into
// the two use cases the API serves: analyzing a song text and finding
// similar songs in the library.
package analysis
