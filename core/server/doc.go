// Package server holds the HTTP server configuration.
//
// While the start command handles the server startup, this package defines the configuration
// structure for the listener and API protection.
//
// # Configuration
//
// The Config struct defines the HTTP port (the original deployment listens on 3000 on all
// interfaces), the API key used by the auth middleware and the public URL reported by /status.
package server
