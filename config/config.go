package config

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/joeshaw/envdecode"
)

// Config holds the settings for the terminal game, read from the environment
type Config struct {
	Players  []string `env:"KUHHANDEL_PLAYERS,default=Alice;Bob;Carol"`
	Seed     int64    `env:"KUHHANDEL_SEED,default=0"`
	LogLevel string   `env:"KUHHANDEL_LOG_LEVEL,default=info"`
	Colour   bool     `env:"KUHHANDEL_COLOR,default=true"`
}

// Load reads the configuration from the environment
func Load() (*Config, error) {
	var cfg Config
	if err := envdecode.Decode(&cfg); err != nil && !errors.Is(err, envdecode.ErrNoTargetFieldsAreSet) {
		return nil, fmt.Errorf("could not read config: %w", err)
	}

	if _, err := cfg.Level(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Level parses the configured log level
func (c *Config) Level() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return level, fmt.Errorf("invalid log level %q: %w", c.LogLevel, err)
	}
	return level, nil
}
