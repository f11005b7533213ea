// Package config loads runtime settings from the environment, with optional
// .env file support for local development.
package config

import (
	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/zombierpg/survivor-api/internal/errors"
)

// Config holds the runtime settings.
type Config struct {
	RedisAddr     string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPassword string `env:"REDIS_PASSWORD"`
	RedisDB       int    `env:"REDIS_DB" envDefault:"0"`
	LogLevel      string `env:"LOG_LEVEL" envDefault:"info"`
}

// Load reads a .env file when present, then parses the environment.
func Load() (*Config, error) {
	// Missing .env is the normal case outside local development.
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, errors.Wrapf(err, "failed to parse environment")
	}
	return cfg, nil
}
