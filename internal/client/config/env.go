package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Environment variables recognized by the CLI.
const (
	envServerBaseURL  = "MYFLIX_SERVER_URL"
	envSessionFile    = "MYFLIX_SESSION_FILE"
	envRequestTimeout = "MYFLIX_REQUEST_TIMEOUT"
)

// parseEnv overlays cfg with values from the environment. A .env file in
// the working directory is loaded first, without overriding variables
// that are already set; a missing .env is not an error.
//
// MYFLIX_REQUEST_TIMEOUT uses time.ParseDuration syntax ("10s", "1m").
// An unparseable value is ignored rather than fatal: the environment is
// shared state and a stray variable should not brick the CLI.
func parseEnv(cfg *Config) {
	_ = godotenv.Load()

	if v := os.Getenv(envServerBaseURL); v != "" {
		cfg.ServerBaseURL = v
	}
	if v := os.Getenv(envSessionFile); v != "" {
		cfg.SessionFile = v
	}
	if v := os.Getenv(envRequestTimeout); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.RequestTimeout = d
		}
	}
}
