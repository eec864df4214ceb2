package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"

	envconfig "github.com/you-humble/ge-sync/internal/config/env"
	"github.com/you-humble/ge-sync/internal/model"
)

var cfg *config

type config struct {
	Server    Server
	Logger    Logger
	Postgres  Database
	DMS       DMS
	Sync      Sync
	Kafka     Kafka
	Telegram  Telegram
	Artifacts Artifacts
}

func Load(path ...string) error {
	const op = "config.Load"

	if shouldLoadDotenv() {
		if err := godotenv.Load(path...); err != nil && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("%s: load .env: %w", op, err)
		}
	}

	serverCfg, err := envconfig.NewHTTPServerConfig()
	if err != nil {
		return fmt.Errorf("%s Server: %w", op, err)
	}

	loggerCfg, err := envconfig.NewLoggerConfig()
	if err != nil {
		return fmt.Errorf("%s Logger: %w", op, err)
	}

	postgresCfg, err := envconfig.NewPostgresConfig()
	if err != nil {
		return fmt.Errorf("%s Postgres: %w", op, err)
	}

	dmsCfg, err := envconfig.NewDMSConfig()
	if err != nil {
		return fmt.Errorf("%s DMS: %w", op, err)
	}

	syncCfg, err := envconfig.NewSyncConfig()
	if err != nil {
		return fmt.Errorf("%s Sync: %w", op, err)
	}

	kafkaCfg, err := envconfig.NewKafkaConfig()
	if err != nil {
		return fmt.Errorf("%s Kafka: %w", op, err)
	}

	telegramCfg, err := envconfig.NewTelegramConfig()
	if err != nil {
		return fmt.Errorf("%s Telegram: %w", op, err)
	}

	artifactsCfg, err := envconfig.NewArtifactsConfig()
	if err != nil {
		return fmt.Errorf("%s Artifacts: %w", op, err)
	}

	cfg = &config{
		Server:    serverCfg,
		Logger:    loggerCfg,
		Postgres:  postgresCfg,
		DMS:       dmsCfg,
		Sync:      syncCfg,
		Kafka:     kafkaCfg,
		Telegram:  telegramCfg,
		Artifacts: artifactsCfg,
	}

	return nil
}

func C() *config { return cfg }

// SyncOptions snapshots the sync settings for one invocation ending at now.
func (c *config) SyncOptions(now time.Time) model.SyncOptions {
	return model.SyncOptions{
		LocationID:        c.DMS.Location(),
		CompanyID:         c.DMS.CompanyID(),
		WindowDays:        c.Sync.WindowDays(),
		MaxDaysPerRequest: c.Sync.MaxDaysPerRequest(),
		MaxCSOsPerChunk:   c.Sync.MaxCSOsPerChunk(),
		BatchSize:         c.Sync.BatchSize(),
		BrowserFallback:   c.DMS.BrowserFallback(),
		BrowserTimeout:    c.DMS.BrowserTimeout(),
		Until:             now,
	}
}

func shouldLoadDotenv() bool {
	return os.Getenv("APP_ENV") == "local"
}
