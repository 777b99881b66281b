// Package lyrics holds the text handling applied to song lyrics before any
// model sees them: word-bounded chunking, Unicode normalization, removal of
// scraper artifacts and track title cleanup.
//
// All functions are pure and safe for concurrent use.
package lyrics
