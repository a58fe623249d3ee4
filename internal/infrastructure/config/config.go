package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

// Cache backend selectors.
const (
	CacheMemory = "memory"
	CacheRedis  = "redis"
)

type Config struct {
	Port     string `env:"PORT,     default=3000"`
	Env      string `env:"ENV,      default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	// BackendURL is the single fixed origin of the Store Rating API.
	BackendURL string `env:"BACKEND_URL, default=http://localhost:5000"`

	// SessionCookie is the storage key for the session token.
	SessionCookie string `env:"SESSION_COOKIE, default=token"`

	Cache CacheConfig
	Redis RedisConfig
}

type CacheConfig struct {
	// Backend selects the response cache: "memory" or "redis".
	Backend string        `env:"CACHE_BACKEND, default=memory"`
	TTL     time.Duration `env:"CACHE_TTL,     default=5m"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
