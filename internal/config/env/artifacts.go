package envconfig

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

type artifactsEnv struct {
	Enabled    bool   `env:"ARTIFACTS_ENABLED" envDefault:"false"`
	Host       string `env:"MONGO_HOST" envDefault:"localhost"`
	Port       int    `env:"MONGO_PORT" envDefault:"27017"`
	User       string `env:"MONGO_INITDB_ROOT_USERNAME"`
	Password   string `env:"MONGO_INITDB_ROOT_PASSWORD"`
	DBName     string `env:"MONGO_DATABASE" envDefault:"ge-sync"`
	AuthDB     string `env:"MONGO_AUTH_DB" envDefault:"admin"`
	Collection string `env:"MONGO_ARTIFACTS_COLLECTION" envDefault:"raw_artifacts"`
}

type artifacts struct {
	raw artifactsEnv
}

func NewArtifactsConfig() (*artifacts, error) {
	var raw artifactsEnv
	if err := env.Parse(&raw); err != nil {
		return nil, err
	}
	return &artifacts{raw: raw}, nil
}

func (cfg *artifacts) Enabled() bool        { return cfg.raw.Enabled }
func (cfg *artifacts) DatabaseName() string { return cfg.raw.DBName }
func (cfg *artifacts) Collection() string   { return cfg.raw.Collection }

func (cfg *artifacts) DSN() string {
	if cfg.raw.User == "" {
		return fmt.Sprintf("mongodb://%s:%d/%s", cfg.raw.Host, cfg.raw.Port, cfg.raw.DBName)
	}
	return fmt.Sprintf(
		"mongodb://%s:%s@%s:%d/%s?authSource=%s",
		cfg.raw.User,
		cfg.raw.Password,
		cfg.raw.Host,
		cfg.raw.Port,
		cfg.raw.DBName,
		cfg.raw.AuthDB,
	)
}
