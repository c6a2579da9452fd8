package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string `env:"PORT,      default=3000"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	// JWTSecret signs every issued token. Required: the process refuses to
	// start with an empty secret rather than falling back to a baked-in one.
	JWTSecret string `env:"JWT_SECRET, required"`

	// TokenTTL of zero issues tokens without an exp claim (the historical
	// behaviour of this API). Set a positive duration to opt into expiry.
	TokenTTL time.Duration `env:"TOKEN_TTL, default=0"`

	// StoreBackend selects where users and events live: "memory" (volatile,
	// the default) or "mongo".
	StoreBackend string `env:"STORE_BACKEND, default=memory"`

	Mongo MongoConfig
	Redis RedisConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=events_api"`
}

// RedisConfig is optional: an empty Addr disables Redis and the token
// denylist falls back to the in-memory implementation.
type RedisConfig struct {
	Addr string `env:"REDIS_ADDR"`
	DB   int    `env:"REDIS_DB, default=0"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return &cfg, nil
}
