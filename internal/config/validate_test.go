package config

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func validConfig() *Config {
	cfg := &Config{
		Plex:   PlexConfig{URL: "https://plex.example", Token: "tok"},
		Radarr: RadarrConfig{URL: "http://radarr:7878", APIKey: "key"},
	}
	applyDefaults(cfg)
	return cfg
}

func containsError(errs []string, substr string) bool {
	for _, e := range errs {
		if strings.Contains(e, substr) {
			return true
		}
	}
	return false
}

func TestValidate_MinimalValid(t *testing.T) {
	errs := validConfig().Validate()
	assert.Empty(t, errs, "expected no errors for minimal valid config")
}

func TestValidate_MissingCredentials(t *testing.T) {
	cfg := &Config{}
	applyDefaults(cfg)
	errs := cfg.Validate()

	assert.True(t, containsError(errs, "plex.url"), "expected plex.url error, got %v", errs)
	assert.True(t, containsError(errs, "plex.token"), "expected plex.token error, got %v", errs)
	assert.True(t, containsError(errs, "radarr.url"), "expected radarr.url error, got %v", errs)
	assert.True(t, containsError(errs, "radarr.api_key"), "expected radarr.api_key error, got %v", errs)
}

func TestValidate_InvalidPort(t *testing.T) {
	cfg := validConfig()
	cfg.Server.Port = 99999
	errs := cfg.Validate()
	assert.True(t, containsError(errs, "server.port"), "expected port error, got %v", errs)
}

func TestValidate_InvalidLogLevel(t *testing.T) {
	cfg := validConfig()
	cfg.Server.LogLevel = "verbose"
	errs := cfg.Validate()
	assert.True(t, containsError(errs, "server.log_level"), "expected log level error, got %v", errs)
}

func TestValidate_InvalidInterval(t *testing.T) {
	cfg := validConfig()
	cfg.Sync.IntervalMinutes = -5
	errs := cfg.Validate()
	assert.True(t, containsError(errs, "sync.interval_minutes"), "expected interval error, got %v", errs)
}

func TestConfigError_Message(t *testing.T) {
	err := &ConfigError{
		Path:   "config.toml",
		Errors: []string{"plex.url: required (or set PLEX_URL)"},
	}
	assert.True(t, err.HasErrors())
	assert.Contains(t, err.Error(), "config.toml")
	assert.Contains(t, err.Error(), "plex.url")
}
