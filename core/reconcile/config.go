package reconcile

import "time"

// Config holds configuration for contact reconciliation and polling.
type Config struct {
	// MaxAttempts caps update calls per contact.
	MaxAttempts int `mapstructure:"max_attempts" default:"3"`
	// RetryDelayMS is the wait between update attempts, in milliseconds.
	RetryDelayMS int `mapstructure:"retry_delay_ms" default:"2000"`
	// MinNameLength is the shortest name (in characters, trimmed) worth parsing.
	MinNameLength int `mapstructure:"min_name_length" default:"2"`
	// PollIntervalSeconds is the period of the recent-contacts check.
	PollIntervalSeconds int `mapstructure:"poll_interval_seconds" default:"15"`
	// LookbackMinutes is how far back the first check looks when no checkpoint exists.
	LookbackMinutes int `mapstructure:"lookback_minutes" default:"5"`
	// DryRun resolves and compares names but never calls the directory.
	DryRun bool `mapstructure:"dry_run" default:"false"`
}

// RetryDelay returns the wait between update attempts.
func (c Config) RetryDelay() time.Duration {
	return time.Duration(c.RetryDelayMS) * time.Millisecond
}

// PollInterval returns the period of the recent-contacts check.
func (c Config) PollInterval() time.Duration {
	if c.PollIntervalSeconds <= 0 {
		return 15 * time.Second
	}
	return time.Duration(c.PollIntervalSeconds) * time.Second
}

// Lookback returns the initial lookback window.
func (c Config) Lookback() time.Duration {
	return time.Duration(c.LookbackMinutes) * time.Minute
}

func (c Config) attempts() int {
	if c.MaxAttempts <= 0 {
		return 1
	}
	return c.MaxAttempts
}
