// Package config loads the developer CLI settings from the environment
package config

import (
	"log/slog"
	"strings"

	"github.com/caarlos0/env/v11"

	"github.com/KirkDiggler/rpg-encounters/internal/errors"
)

// Config holds the CLI settings. Flags may override any field after Load.
type Config struct {
	// RedisAddr switches the catalog source to the Redis snapshot when set
	RedisAddr string `env:"ENCOUNTERS_REDIS_ADDR"`

	// LogLevel is one of debug, info, warn or error
	LogLevel string `env:"ENCOUNTERS_LOG_LEVEL" envDefault:"info"`

	// Seed selects a deterministic random provider when non-zero
	Seed int64 `env:"ENCOUNTERS_SEED" envDefault:"0"`
}

var logLevels = map[string]slog.Level{
	"debug": slog.LevelDebug,
	"info":  slog.LevelInfo,
	"warn":  slog.LevelWarn,
	"error": slog.LevelError,
}

// Load parses the environment. Callers apply their overrides and then call
// Validate.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to parse environment")
	}

	return cfg, nil
}

// Validate checks the log level
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if _, ok := logLevels[strings.ToLower(c.LogLevel)]; !ok {
		vb.Fieldf("LogLevel", "must be one of debug, info, warn, error; got %q", c.LogLevel)
	}

	return vb.Build()
}

// SlogLevel returns the configured level, defaulting to info
func (c *Config) SlogLevel() slog.Level {
	if level, ok := logLevels[strings.ToLower(c.LogLevel)]; ok {
		return level
	}
	return slog.LevelInfo
}
