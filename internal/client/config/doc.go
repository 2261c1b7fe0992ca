// Package config loads runtime configuration for the shortener CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected via -c / -config, or SHORTENER_CONFIG.
//  3. Command-line flags, which override earlier values.
//
// Supported flags
//
//	-a string   base URL of the shortener backend
//	-d string   path of the local token database (":memory:" keeps tokens in memory)
//	-l string   log level: debug, info, warn, error
//	-f string   log format: slog or zap
//
// # JSON schema
//
//	{
//	  "server_base_url": "http://localhost:8080",
//	  "database_path": "shortener.db",
//	  "log_level": "info",
//	  "log_format": "slog"
//	}
//
// Missing JSON keys keep the default.
package config
