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

	// BackendBaseURL includes the /api prefix of the music backend.
	BackendBaseURL string `env:"BACKEND_BASE_URL, default=http://localhost:8000/api"`

	// CookieSecret seals the session cookie. Required outside development.
	CookieSecret string `env:"COOKIE_SECRET"`

	// SessionTTL bounds session lifetime when the backend token carries no
	// expiry of its own. Matches the backend's 30-day tokens by default.
	SessionTTL time.Duration `env:"SESSION_TTL, default=720h"`

	Redis RedisConfig
}

type RedisConfig struct {
	// Addr empty means no Redis: sessions fall back to the in-memory store.
	Addr string `env:"REDIS_ADDR"`
	DB   int    `env:"REDIS_DB, default=0"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}

// IsDevelopment reports whether the service runs in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}
