package postgres

import (
	"context"

	"github.com/testcontainers/testcontainers-go"
	"go.uber.org/zap"

	"github.com/you-humble/ge-sync/platform/logger"
)

type Logger interface {
	Info(ctx context.Context, msg string, fields ...zap.Field)
	Error(ctx context.Context, msg string, fields ...zap.Field)
}

type Config struct {
	ImageName string
	Database  string
	Username  string
	Password  string
	Logger    Logger

	customizers []testcontainers.ContainerCustomizer
}

type Option func(*Config)

func buildConfig(opts ...Option) *Config {
	cfg := &Config{
		ImageName: "postgres:17-alpine",
		Database:  "ge_sync",
		Username:  "postgres",
		Password:  "postgres",
		Logger:    logger.L(),
	}

	for _, opt := range opts {
		opt(cfg)
	}

	return cfg
}

func WithImageName(image string) Option {
	return func(c *Config) { c.ImageName = image }
}

func WithDatabase(database string) Option {
	return func(c *Config) { c.Database = database }
}

func WithAuth(username, password string) Option {
	return func(c *Config) {
		c.Username = username
		c.Password = password
	}
}

func WithLogger(l Logger) Option {
	return func(c *Config) { c.Logger = l }
}

// WithCustomizer passes a raw testcontainers customizer through, e.g. a
// network attachment.
func WithCustomizer(cz testcontainers.ContainerCustomizer) Option {
	return func(c *Config) { c.customizers = append(c.customizers, cz) }
}
