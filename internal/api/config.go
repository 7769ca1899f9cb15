// Package api exposes the skill extraction and gap analysis over HTTP.
package api

const defaultBodyLimit = 1 << 20

// Config is the API server configuration.
type Config struct {
	// ListenAddr is the address to listen on (e.g., ":5000")
	ListenAddr string
	// BodyLimit caps request bodies in bytes. Zero means 1 MiB.
	BodyLimit int
}
