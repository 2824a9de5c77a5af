package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string `env:"PORT,     default=5174"`
	Host     string `env:"HOST,     default=127.0.0.1"`
	Env      string `env:"ENV,      default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	DataDir    string `env:"DATA_DIR,    default=data"`
	UploadsDir string `env:"UPLOADS_DIR, default=uploads"`

	AllowedOrigins []string `env:"ALLOWED_ORIGINS, default=http://localhost:5173"`
	CookieSecure   bool     `env:"COOKIE_SECURE,   default=false"`

	SessionTTLSeconds int `env:"SESSION_TTL_SECONDS, default=28800"`
	// SessionStore selects the session backend: "memory" (default) keeps
	// sessions in-process, "redis" shares them across instances.
	SessionStore string `env:"SESSION_STORE, default=memory"`

	MaxUploadBytes int64 `env:"MAX_UPLOAD_BYTES, default=8388608"`

	Redis RedisConfig
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("load configuration: %w", err)
	}
	if cfg.SessionStore != "memory" && cfg.SessionStore != "redis" {
		return nil, fmt.Errorf("invalid SESSION_STORE %q: must be memory or redis", cfg.SessionStore)
	}
	return &cfg, nil
}

func (c *Config) SessionTTL() time.Duration {
	return time.Duration(c.SessionTTLSeconds) * time.Second
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}
