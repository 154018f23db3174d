package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/gymtrack/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags:
//
//	-a string   base URL of the gym service API
//	-t int      request timeout in seconds
//	-m int      avatar upload limit in bytes
//
// Arguments are filtered through flagx.FilterArgs so flags owned by other
// components are ignored.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-t", "-m"})

	fs := flag.NewFlagSet("client", flag.ContinueOnError)

	fs.StringVar(&cfg.APIBaseURL, "a", cfg.APIBaseURL, "base URL of the gym service API")
	timeoutSeconds := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "request timeout (in seconds)")
	fs.Int64Var(&cfg.AvatarMaxBytes, "m", cfg.AvatarMaxBytes, "avatar upload limit (in bytes)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.RequestTimeout = time.Duration(*timeoutSeconds) * time.Second
}
