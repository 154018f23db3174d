package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/dmitrijs2005/gymtrack/internal/flagx"
)

// jsonConfig is the DTO for the optional JSON config file. The timeout is
// given in seconds so the file stays plain numbers.
type jsonConfig struct {
	APIBaseURL            string `json:"api_base_url"`
	RequestTimeoutSeconds int    `json:"request_timeout_seconds"`
	AvatarMaxBytes        int64  `json:"avatar_max_bytes"`
}

// parseJSON overlays cfg with values from the JSON file named via the
// -c/-config flags. Absent file path means no JSON layer. Fields left at
// their zero value in the file keep the current config value. Panics on a
// named-but-unreadable file, matching flag misuse behavior.
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

	if jc.APIBaseURL != "" {
		cfg.APIBaseURL = jc.APIBaseURL
	}
	if jc.RequestTimeoutSeconds > 0 {
		cfg.RequestTimeout = time.Duration(jc.RequestTimeoutSeconds) * time.Second
	}
	if jc.AvatarMaxBytes > 0 {
		cfg.AvatarMaxBytes = jc.AvatarMaxBytes
	}
}
