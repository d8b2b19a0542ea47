package server

import "strings"

// Config holds configuration for the HTTP server.
type Config struct {
	// Port is the port where the server will listen.
	Port string `mapstructure:"port" default:"3000"`
	// ApiKey is the secret key required to access the API. Empty disables the check.
	ApiKey string `mapstructure:"api_key" default:""`
	// PublicURL is the externally visible base URL, used in status output.
	PublicURL string `mapstructure:"public_url" default:""`
}

// ListenAddr returns the address passed to the Fiber listener.
func (c Config) ListenAddr() string {
	port := strings.TrimPrefix(strings.TrimSpace(c.Port), ":")
	if port == "" {
		port = "3000"
	}
	return "0.0.0.0:" + port
}

// AuthEnabled reports whether API key protection should be installed.
func (c Config) AuthEnabled() bool {
	return strings.TrimSpace(c.ApiKey) != ""
}
