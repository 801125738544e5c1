package config

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config holds all runtime configuration, loaded from the environment.
type Config struct {
	DatabaseURL string `envconfig:"DATABASE_URL" required:"true"`

	HTTPAddr string `envconfig:"HTTP_ADDR" default:":8080"`

	RedisAddr     string `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	RedisPassword string `envconfig:"REDIS_PASSWORD"`
	RedisDB       int    `envconfig:"REDIS_DB" default:"0"`

	// SessionTTL bounds how long a branch selection stays valid.
	SessionTTL time.Duration `envconfig:"SESSION_TTL" default:"24h"`

	// LowStockInterval is how often the supply sweep runs.
	LowStockInterval time.Duration `envconfig:"LOW_STOCK_INTERVAL" default:"1h"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
