package config

import "fmt"

var validLogLevels = map[string]bool{
	"debug": true, "info": true, "warn": true, "error": true,
}

// Validate checks the configuration for errors.
// Returns a slice of error messages (empty if valid).
func (c *Config) Validate() []string {
	var errs []string

	if c.Plex.URL == "" {
		errs = append(errs, "plex.url: required (or set PLEX_URL)")
	}
	if c.Plex.Token == "" {
		errs = append(errs, "plex.token: required (or set PLEX_TOKEN)")
	}
	if c.Radarr.URL == "" {
		errs = append(errs, "radarr.url: required (or set RADARR_URL)")
	}
	if c.Radarr.APIKey == "" {
		errs = append(errs, "radarr.api_key: required (or set RADARR_API_KEY)")
	}

	if c.Sync.IntervalMinutes < 1 {
		errs = append(errs, fmt.Sprintf("sync.interval_minutes: must be at least 1, got %d", c.Sync.IntervalMinutes))
	}
	if c.Sync.UpdateDelayMS < 0 {
		errs = append(errs, fmt.Sprintf("sync.update_delay_ms: must not be negative, got %d", c.Sync.UpdateDelayMS))
	}

	if c.Server.Port < 1 || c.Server.Port > 65535 {
		errs = append(errs, fmt.Sprintf("server.port: must be between 1 and 65535, got %d", c.Server.Port))
	}
	if !validLogLevels[c.Server.LogLevel] {
		errs = append(errs, fmt.Sprintf("server.log_level: must be one of debug, info, warn, error; got %q", c.Server.LogLevel))
	}

	return errs
}
