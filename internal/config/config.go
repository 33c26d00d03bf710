// Package config handles TOML configuration loading with environment variable
// substitution and overrides.
package config

import (
	"fmt"
	"os"
	"regexp"
	"time"

	"github.com/BurntSushi/toml"
)

// Config is the root configuration structure.
type Config struct {
	Plex     PlexConfig     `toml:"plex"`
	Radarr   RadarrConfig   `toml:"radarr"`
	Sync     SyncConfig     `toml:"sync"`
	Server   ServerConfig   `toml:"server"`
	Database DatabaseConfig `toml:"database"`
}

type PlexConfig struct {
	URL   string `toml:"url"`
	Token string `toml:"token"`
}

type RadarrConfig struct {
	URL    string `toml:"url"`
	APIKey string `toml:"api_key"`
}

type SyncConfig struct {
	TargetProfile   string `toml:"target_profile"`
	IntervalMinutes int    `toml:"interval_minutes"`
	UpdateDelayMS   int    `toml:"update_delay_ms"`
}

type ServerConfig struct {
	Port     int    `toml:"port"`
	LogLevel string `toml:"log_level"`
}

type DatabaseConfig struct {
	Path string `toml:"path"`
}

// Interval returns the poll interval as a duration.
func (c *Config) Interval() time.Duration {
	return time.Duration(c.Sync.IntervalMinutes) * time.Minute
}

// UpdateDelay returns the delay inserted after each library write.
func (c *Config) UpdateDelay() time.Duration {
	return time.Duration(c.Sync.UpdateDelayMS) * time.Millisecond
}

// Load reads and parses the configuration file. A missing file is not an
// error: credentials can be supplied entirely through environment variables,
// which take priority over the file either way.
func Load(path string) (*Config, error) {
	var cfg Config

	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
		// Environment-only configuration.
	case err != nil:
		return nil, fmt.Errorf("reading config: %w", err)
	default:
		content := substituteEnvVars(string(data))
		if _, err := toml.Decode(content, &cfg); err != nil {
			return nil, fmt.Errorf("parsing config: %w", err)
		}
	}

	applyEnvOverrides(&cfg)
	applyDefaults(&cfg)

	return &cfg, nil
}

// applyEnvOverrides applies the well-known environment variables on top of
// whatever the file provided. Environment wins over file.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("PLEX_URL"); v != "" {
		cfg.Plex.URL = v
	}
	if v := os.Getenv("PLEX_TOKEN"); v != "" {
		cfg.Plex.Token = v
	}
	if v := os.Getenv("RADARR_URL"); v != "" {
		cfg.Radarr.URL = v
	}
	if v := os.Getenv("RADARR_API_KEY"); v != "" {
		cfg.Radarr.APIKey = v
	}
	if v := os.Getenv("TARGET_PROFILE"); v != "" {
		cfg.Sync.TargetProfile = v
	}
}

func applyDefaults(cfg *Config) {
	if cfg.Sync.TargetProfile == "" {
		cfg.Sync.TargetProfile = "HD-1080p"
	}
	if cfg.Sync.IntervalMinutes == 0 {
		cfg.Sync.IntervalMinutes = 60
	}
	if cfg.Sync.UpdateDelayMS == 0 {
		cfg.Sync.UpdateDelayMS = 500
	}
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}
	if cfg.Server.LogLevel == "" {
		cfg.Server.LogLevel = "info"
	}
	if cfg.Database.Path == "" {
		cfg.Database.Path = "./data/wlsync.db"
	}
}

// substituteEnvVars replaces ${VAR_NAME} with environment variable values.
var envVarPattern = regexp.MustCompile(`\$\{([^}]+)\}`)

func substituteEnvVars(content string) string {
	return envVarPattern.ReplaceAllStringFunc(content, func(match string) string {
		varName := match[2 : len(match)-1] // Strip ${ and }
		if value, ok := os.LookupEnv(varName); ok {
			return value
		}
		return match // Leave unchanged if not found
	})
}
