package config

import (
	"context"
	"fmt"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string `env:"PORT,      default=8080"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	// JWTSecret signs landlord and admin tokens.
	JWTSecret string `env:"JWT_SECRET, required"`

	Admin AdminConfig
	Mail  MailConfig
	Queue QueueConfig
	Mongo MongoConfig
	Redis RedisConfig
}

// AdminConfig is the single configured administrative login. The password
// is supplied as a bcrypt hash, never in clear.
type AdminConfig struct {
	Username     string `env:"ADMIN_USERNAME,      default=admin"`
	PasswordHash string `env:"ADMIN_PASSWORD_HASH, required"`
	// NotifyAddress receives appeal notifications.
	NotifyAddress string `env:"ADMIN_NOTIFY_EMAIL, required"`
}

type MailConfig struct {
	APIKey      string `env:"SENDGRID_API_KEY, required"`
	FromName    string `env:"MAIL_FROM_NAME,   default=PropertyManager"`
	FromAddress string `env:"MAIL_FROM_EMAIL,  required"`
}

type QueueConfig struct {
	// Workers is the size of the reminder fan-out pool.
	Workers int `env:"QUEUE_WORKERS, default=8"`
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=landlord"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return &cfg, nil
}
