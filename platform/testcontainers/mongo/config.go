package mongo

import (
	"context"

	"github.com/docker/docker/api/types/container"
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
	AuthDB    string
	Logger    Logger

	Host string
	Port string

	customizers []testcontainers.ContainerCustomizer
}

type Option func(*Config)

func buildConfig(opts ...Option) *Config {
	cfg := &Config{
		ImageName: "mongo:8.0",
		Database:  "ge-sync",
		Username:  "root",
		Password:  "root",
		AuthDB:    "admin",
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

func WithAuthDB(authDB string) Option {
	return func(c *Config) { c.AuthDB = authDB }
}

func WithLogger(l Logger) Option {
	return func(c *Config) { c.Logger = l }
}

// WithCustomizer passes a raw testcontainers customizer through, e.g. a
// network attachment.
func WithCustomizer(cz testcontainers.ContainerCustomizer) Option {
	return func(c *Config) { c.customizers = append(c.customizers, cz) }
}

func defaultHostConfig() func(hc *container.HostConfig) {
	return func(hc *container.HostConfig) {
		hc.AutoRemove = true
	}
}
