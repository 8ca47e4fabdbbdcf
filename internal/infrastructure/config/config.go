package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port      string `env:"PORT,      default=8080"`
	Env       string `env:"ENV,       default=development"`
	JWTSecret string `env:"JWT_SECRET"`
	LogLevel  string `env:"LOG_LEVEL, default=info"`

	Database DatabaseConfig
	Admin    AdminConfig
	Redis    RedisConfig
	DeepSeek DeepSeekConfig
}

type DatabaseConfig struct {
	// Path is the SQLite database file. Use ":memory:" for an ephemeral store.
	Path string `env:"SQLITE_PATH, default=quotify.db"`
}

// AdminConfig seeds the initial administrator account on first start.
type AdminConfig struct {
	Email    string `env:"ADMIN_EMAIL,    default=admin@quotify.local"`
	Password string `env:"ADMIN_PASSWORD"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

// DeepSeekConfig configures the AI quote generation client. Generation is
// disabled when the API key is empty.
type DeepSeekConfig struct {
	APIKey   string        `env:"DEEPSEEK_API_KEY"`
	Model    string        `env:"DEEPSEEK_MODEL,     default=deepseek-chat"`
	BaseURL  string        `env:"DEEPSEEK_BASE_URL,  default=https://api.deepseek.com"`
	MinDelay time.Duration `env:"DEEPSEEK_MIN_DELAY, default=2s"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
