package directory

import (
	"strings"
	"time"
)

// Config holds configuration for the amoCRM contact directory.
type Config struct {
	// Domain is the account subdomain ("example" for example.amocrm.ru) or a full host.
	Domain string `mapstructure:"domain" default:""`
	// BaseURL overrides the URL derived from Domain.
	BaseURL string `mapstructure:"base_url" default:""`
	// AccessToken is a long-lived bearer token for the API.
	AccessToken string `mapstructure:"access_token" default:""`
	// PageLimit is the page size for contact listings (max 250).
	PageLimit int `mapstructure:"page_limit" default:"100"`
	// TimeoutSeconds bounds every API request.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"15"`
}

// Endpoint returns the API base URL without a trailing slash.
func (c Config) Endpoint() string {
	if c.BaseURL != "" {
		return strings.TrimRight(c.BaseURL, "/")
	}
	domain := strings.TrimSpace(c.Domain)
	if domain == "" {
		return ""
	}
	if !strings.Contains(domain, ".") {
		domain += ".amocrm.ru"
	}
	return "https://" + domain
}

// Timeout returns the per-request timeout.
func (c Config) Timeout() time.Duration {
	if c.TimeoutSeconds <= 0 {
		return 15 * time.Second
	}
	return time.Duration(c.TimeoutSeconds) * time.Second
}

func (c Config) limit() int {
	switch {
	case c.PageLimit <= 0:
		return 100
	case c.PageLimit > 250:
		return 250
	default:
		return c.PageLimit
	}
}
