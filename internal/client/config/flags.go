package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/useradmin/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
//	-a string        backend base URL (overrides -host and -prefix)
//	-host string     host the API is served from
//	-prefix string   API path prefix on that host
//	-s string        session database file
//	-l string        log level (debug, info, warn, error)
//	-t int           request timeout in seconds, 0 for none
//
// Only these flags are read; everything else on the command line is left to
// other parsers.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-host", "-prefix", "-s", "-l", "-t"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.APIBaseURL, "a", cfg.APIBaseURL, "backend base URL")
	fs.StringVar(&cfg.Host, "host", cfg.Host, "host the API is served from")
	fs.StringVar(&cfg.PathPrefix, "prefix", cfg.PathPrefix, "API path prefix")
	fs.StringVar(&cfg.SessionDB, "s", cfg.SessionDB, "session database file")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")
	timeout := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "request timeout (in seconds)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.RequestTimeout = time.Duration(*timeout) * time.Second
}
