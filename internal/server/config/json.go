package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/dmitrijs2005/gymtrack/internal/flagx"
)

type jsonConfig struct {
	Addr            string `json:"addr"`
	DatabasePath    string `json:"database_path"`
	JWTSecret       string `json:"jwt_secret"`
	TokenTTLMinutes int    `json:"token_ttl_minutes"`
	AvatarDir       string `json:"avatar_dir"`
	AvatarMaxBytes  int64  `json:"avatar_max_bytes"`
	BcryptCost      int    `json:"bcrypt_cost"`
}

// parseJSON overlays cfg with values from the JSON file named via the
// -c/-config flags; zero-valued fields keep the current value.
func parseJSON(cfg *Config) {
	path := flagx.JsonConfigFlags()
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	var jc jsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.Addr != "" {
		cfg.Addr = jc.Addr
	}
	if jc.DatabasePath != "" {
		cfg.DatabasePath = jc.DatabasePath
	}
	if jc.JWTSecret != "" {
		cfg.JWTSecret = jc.JWTSecret
	}
	if jc.TokenTTLMinutes > 0 {
		cfg.TokenTTL = time.Duration(jc.TokenTTLMinutes) * time.Minute
	}
	if jc.AvatarDir != "" {
		cfg.AvatarDir = jc.AvatarDir
	}
	if jc.AvatarMaxBytes > 0 {
		cfg.AvatarMaxBytes = jc.AvatarMaxBytes
	}
	if jc.BcryptCost > 0 {
		cfg.BcryptCost = jc.BcryptCost
	}
}
