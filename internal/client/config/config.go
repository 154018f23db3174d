// Package config loads runtime settings for the gymtrack terminal client.
// Sources are layered: defaults, then an optional JSON file (-c/-config),
// then command-line flags. Later sources win.
package config

import "time"

// Config holds runtime settings for the client.
//
// Fields:
//   - APIBaseURL: base URL of the gym service REST API.
//   - RequestTimeout: per-request HTTP timeout.
//   - AvatarMaxBytes: local upload limit applied before an avatar upload.
type Config struct {
	APIBaseURL     string
	RequestTimeout time.Duration
	AvatarMaxBytes int64
}

// LoadDefaults populates c with sensible defaults. The 5 MB avatar limit
// matches what the service accepts.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://127.0.0.1:3333"
	c.RequestTimeout = 15 * time.Second
	c.AvatarMaxBytes = 5 << 20
}

// LoadConfig builds a Config from defaults, JSON file, and flags, in that
// order of precedence (lowest first).
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJSON(cfg)
	parseFlags(cfg)
	return cfg
}
