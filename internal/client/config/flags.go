package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/myflix-cli/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   base URL of the myFlix API (default from Config)
//	-s string   path of the session file (default from Config)
//	-t int      request timeout in seconds (default from Config)
//
// Note: The function filters os.Args to only include the flags it knows
// about, using flagx.FilterArgs, to avoid interference with flags owned
// by other components (such as -c/-config).
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-s", "-t"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.ServerBaseURL, "a", cfg.ServerBaseURL, "base URL of the myFlix API")
	fs.StringVar(&cfg.SessionFile, "s", cfg.SessionFile, "path of the session file")
	timeoutSec := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "request timeout in seconds (0 = none)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.RequestTimeout = time.Duration(*timeoutSec) * time.Second
}
