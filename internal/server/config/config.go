// Package config loads runtime settings for the gymtrack devserver, the
// local stand-in for the production gym service. Sources are layered the
// same way as the client config: defaults, optional JSON file, flags.
package config

import "time"

// Config holds runtime settings for the devserver.
type Config struct {
	Addr           string
	DatabasePath   string
	JWTSecret      string
	TokenTTL       time.Duration
	AvatarDir      string
	AvatarMaxBytes int64
	BcryptCost     int
}

// LoadDefaults populates c with development defaults. The JWT secret is
// fine for a local stub and must be overridden anywhere shared.
func (c *Config) LoadDefaults() {
	c.Addr = "127.0.0.1:3333"
	c.DatabasePath = "gymtrack.db"
	c.JWTSecret = "dev-only-secret"
	c.TokenTTL = 24 * time.Hour
	c.AvatarDir = "avatars"
	c.AvatarMaxBytes = 5 << 20
	c.BcryptCost = 10
}

// LoadConfig builds a Config from defaults, JSON file, and flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJSON(cfg)
	parseFlags(cfg)
	return cfg
}
