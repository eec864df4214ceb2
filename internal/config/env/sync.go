package envconfig

import (
	"time"

	"github.com/caarlos0/env/v11"
)

type syncEnv struct {
	WindowDays        int           `env:"SYNC_WINDOW_DAYS" envDefault:"30"`
	MaxDaysPerRequest int           `env:"ORDER_MAX_DAYS_PER_REQUEST" envDefault:"7"`
	MaxCSOsPerChunk   int           `env:"ORDER_MAX_CSOS_PER_CHUNK" envDefault:"250"`
	BatchSize         int           `env:"SYNC_BATCH_SIZE" envDefault:"500"`
	Interval          time.Duration `env:"SYNC_INTERVAL" envDefault:"0s"`
	InventoryTypes    []string      `env:"SYNC_INVENTORY_TYPES" envDefault:"ASIS"`
}

type sync struct {
	raw syncEnv
}

func NewSyncConfig() (*sync, error) {
	var raw syncEnv
	if err := env.Parse(&raw); err != nil {
		return nil, err
	}
	return &sync{raw: raw}, nil
}

func (cfg *sync) WindowDays() int        { return cfg.raw.WindowDays }
func (cfg *sync) MaxDaysPerRequest() int { return cfg.raw.MaxDaysPerRequest }
func (cfg *sync) MaxCSOsPerChunk() int   { return cfg.raw.MaxCSOsPerChunk }
func (cfg *sync) BatchSize() int         { return cfg.raw.BatchSize }

// Interval is the scheduler period. Zero disables scheduled runs.
func (cfg *sync) Interval() time.Duration  { return cfg.raw.Interval }
func (cfg *sync) InventoryTypes() []string { return cfg.raw.InventoryTypes }
