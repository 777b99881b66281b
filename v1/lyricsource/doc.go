// Package lyricsource looks up song lyrics on public providers: LRCLIB
// first, then lyrics.ovh. Found text is cleaned with lyrics.Sanitize.
package lyricsource
