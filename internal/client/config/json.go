package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/shortener-client/internal/flagx"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Pointer
// fields tell a missing key apart from an empty value.
type JsonConfig struct {
	ServerBaseURL *string `json:"server_base_url"`
	DatabasePath  *string `json:"database_path"`
	LogLevel      *string `json:"log_level"`
	LogFormat     *string `json:"log_format"`
}

// parseJson overlays cfg with the JSON file named by -c/-config in args, or
// by envPath. Nothing happens when neither names a file. It panics on read or
// unmarshal errors.
func parseJson(cfg *Config, args []string, envPath string) {
	path := flagx.ConfigPath(args, envPath)
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	overlay(&cfg.ServerBaseURL, jc.ServerBaseURL)
	overlay(&cfg.DatabasePath, jc.DatabasePath)
	overlay(&cfg.LogLevel, jc.LogLevel)
	overlay(&cfg.LogFormat, jc.LogFormat)
}

func overlay(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}
