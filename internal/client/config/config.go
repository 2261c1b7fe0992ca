package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/dmitrijs2005/shortener-client/internal/logging"
)

// ConfigEnv names the environment variable consulted when no -c/-config flag
// is given.
const ConfigEnv = "SHORTENER_CONFIG"

// MemoryDatabase selects the in-memory token store.
const MemoryDatabase = ":memory:"

// Config holds runtime settings for the shortener CLI.
type Config struct {
	ServerBaseURL string `validate:"required,http_url"`
	DatabasePath  string `validate:"required"`
	LogLevel      string `validate:"oneof=debug info warn error"`
	LogFormat     string `validate:"oneof=slog zap"`
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerBaseURL = "http://localhost:8080"
	c.DatabasePath = "shortener.db"
	c.LogLevel = "info"
	c.LogFormat = logging.FormatSlog
}

// LoadConfig builds a Config from defaults, the JSON file and the flags in
// args (usually os.Args[1:]). Later sources take precedence. It panics on an
// unreadable file, a bad flag or an invalid result.
func LoadConfig(args []string) *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg, args, os.Getenv(ConfigEnv))
	parseFlags(cfg, args)
	if err := cfg.Validate(); err != nil {
		panic(err)
	}
	return cfg
}

var validate = validator.New()

// Validate checks the values that would otherwise fail late.
func (c *Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}
	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		msgs = append(msgs, fmt.Sprintf("%s=%q fails %s", fe.Field(), fe.Value(), fe.Tag()))
	}
	return fmt.Errorf("invalid config: %s", strings.Join(msgs, "; "))
}
