package config

import "time"

// Fallback values applied after all sources are merged. Only required
// connection settings must be supplied explicitly.
const (
	defaultSessionDuration = 24 * time.Hour
	defaultRequestTimeout  = 60 * time.Second
	defaultFeedPageSize    = 20
)

func (c *StructuredConfig) applyDefaults() {
	if c.App.SessionDuration == 0 {
		c.App.SessionDuration = defaultSessionDuration
	}
	if c.App.FeedPageSize <= 0 {
		c.App.FeedPageSize = defaultFeedPageSize
	}
	if c.Server.RequestTimeout == 0 {
		c.Server.RequestTimeout = defaultRequestTimeout
	}
}

// validate checks that all settings without safe defaults are present.
// It is called once at startup; the process must not serve requests with an
// incomplete configuration.
func (c *StructuredConfig) validate() error {
	if c.Server.HTTPAddress == "" {
		return errNoServerAddress
	}
	if c.Storage.DB.DSN == "" {
		return errNoDatabaseDSN
	}
	if c.Storage.Redis.Addr == "" {
		return errNoRedisAddress
	}

	return nil
}
