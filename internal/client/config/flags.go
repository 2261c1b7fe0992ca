package config

import (
	"flag"
	"io"

	"github.com/dmitrijs2005/shortener-client/internal/flagx"
)

// parseFlags populates cfg from command-line flags. Only -a, -d, -l and -f
// are considered so the config flags of flagx.ConfigPath do not clash. It
// panics on a malformed flag.
func parseFlags(cfg *Config, args []string) {
	fs := flag.NewFlagSet("shortener", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.ServerBaseURL, "a", cfg.ServerBaseURL, "base URL of the shortener backend")
	fs.StringVar(&cfg.DatabasePath, "d", cfg.DatabasePath, "token database path")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")
	fs.StringVar(&cfg.LogFormat, "f", cfg.LogFormat, "log format (slog|zap)")

	if err := fs.Parse(flagx.FilterArgs(args, "a", "d", "l", "f")); err != nil {
		panic(err)
	}
}
