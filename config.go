package main

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/muhammadolammi/atsworker/internal/storage"
)

type Config struct {
	DBURL          string `validate:"required"`
	RabbitMQURL    string `validate:"required,url"`
	R2AccountID    string `validate:"required"`
	R2Bucket       string `validate:"required"`
	R2AccessKey    string `validate:"required"`
	R2SecretKey    string `validate:"required"`
	GoogleAPIKey   string
	WorkerCount    int    `validate:"min=1,max=64"`
	SessionsQueue  string `validate:"required"`
	UpdateExchange string `validate:"required"`
	LogLevel       string `validate:"oneof=debug info warn error"`
}

// LoadConfig reads the worker configuration from the environment.
func LoadConfig() (*Config, error) {
	cfg := &Config{
		DBURL:          os.Getenv("DB_URL"),
		RabbitMQURL:    os.Getenv("RABBITMQ_URL"),
		R2AccountID:    envOr("R2_ACCOUNT_ID", os.Getenv("R2_ACCCOUNT_ID")),
		R2Bucket:       os.Getenv("R2_BUCKET"),
		R2AccessKey:    os.Getenv("R2_ACCESS_KEY"),
		R2SecretKey:    os.Getenv("R2_SECRET_KEY"),
		GoogleAPIKey:   os.Getenv("GOOGLE_API_KEY"),
		SessionsQueue:  envOr("SESSIONS_QUEUE", "sessions"),
		UpdateExchange: envOr("UPDATES_EXCHANGE", "session_updates"),
		LogLevel:       strings.ToLower(envOr("LOG_LEVEL", "info")),
		WorkerCount:    3,
	}
	if v := os.Getenv("WORKER_COUNT"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid WORKER_COUNT %q: %w", v, err)
		}
		cfg.WorkerCount = n
	}
	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func (c *Config) R2() storage.R2Config {
	return storage.R2Config{
		AccountID: c.R2AccountID,
		Bucket:    c.R2Bucket,
		AccessKey: c.R2AccessKey,
		SecretKey: c.R2SecretKey,
	}
}

func (c *Config) SlogLevel() slog.Level {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
