// Package config loads runtime configuration for the myFlix CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected via -c or -config.
//  3. Environment variables (a .env file is honored if present).
//  4. Command-line flags, which override everything else.
//
// Supported flags
//
//	-a string   base URL of the myFlix API
//	-s string   path of the session file
//	-t int      request timeout in seconds (0 disables the timeout)
//
// # JSON schema
//
// Durations can be strings like "10s" or integer nanoseconds:
//
//	{
//	  "server_base_url": "https://myflix.example.org",
//	  "session_file": "/home/alice/.myflix/session.json",
//	  "request_timeout": "10s"
//	}
package config

import (
	"os"
	"path/filepath"
	"time"
)

// Config holds runtime settings for the myFlix CLI.
//
// Fields:
//   - ServerBaseURL: base URL prefixed to every API request path.
//   - SessionFile: where the session (token + user record) is persisted.
//   - RequestTimeout: per-request timeout; zero means no timeout, in
//     which case a hung request hangs the triggering command.
type Config struct {
	ServerBaseURL  string
	SessionFile    string
	RequestTimeout time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerBaseURL = "http://localhost:8080"
	c.SessionFile = defaultSessionFile()
	c.RequestTimeout = 0
}

// defaultSessionFile places the session under the user's home directory,
// falling back to the working directory when home cannot be resolved.
func defaultSessionFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "myflix-session.json"
	}
	return filepath.Join(home, ".myflix", "session.json")
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from JSON (if present), environment variables, and command-line flags.
// Later sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
