// Package spotify reads track metadata from the Spotify Web API with an app
// access token obtained through the client credentials flow. The token is
// cached and renewed shortly before it expires.
package spotify
