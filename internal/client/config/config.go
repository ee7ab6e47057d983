package config

import (
	"log/slog"
	"strings"
	"time"
)

const (
	LocalBaseURL      = "http://localhost:8080"
	DefaultPathPrefix = "/api"
)

// Config holds runtime settings for the useradmin console.
//
// Fields:
//   - APIBaseURL: explicit backend base URL; overrides Host and PathPrefix.
//   - Host: host the console is deployed next to; local hosts use LocalBaseURL.
//   - PathPrefix: path under Host where the API is mounted.
//   - SessionDB: SQLite file holding the session between runs.
//   - LogLevel: slog level name for the stderr logger.
//   - RequestTimeout: per-request HTTP timeout; zero leaves it unlimited.
type Config struct {
	APIBaseURL     string
	Host           string
	PathPrefix     string
	SessionDB      string
	LogLevel       string
	RequestTimeout time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = ""
	c.Host = "localhost"
	c.PathPrefix = DefaultPathPrefix
	c.SessionDB = "session.db"
	c.LogLevel = "warn"
	c.RequestTimeout = 0
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}

// ResolveBaseURL picks the backend base URL. An explicit APIBaseURL wins;
// otherwise a local host maps to LocalBaseURL and any other host to
// http://<host><prefix>.
func (c *Config) ResolveBaseURL() string {
	if c.APIBaseURL != "" {
		return strings.TrimRight(c.APIBaseURL, "/")
	}

	switch c.Host {
	case "", "localhost", "127.0.0.1":
		return LocalBaseURL
	}

	prefix := c.PathPrefix
	if prefix == "" {
		prefix = DefaultPathPrefix
	}
	if !strings.HasPrefix(prefix, "/") {
		prefix = "/" + prefix
	}
	return "http://" + c.Host + strings.TrimRight(prefix, "/")
}

// SlogLevel maps LogLevel to a slog.Level, defaulting to warn.
func (c *Config) SlogLevel() slog.Level {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelWarn
	}
	return lvl
}
