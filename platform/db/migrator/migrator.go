// Package migrator applies goose SQL migrations from a file system.
package migrator

import (
	"context"
	"database/sql"
	"fmt"
	"io/fs"

	"github.com/pressly/goose/v3"

	"github.com/you-humble/ge-sync/platform/logger"
)

type Migrator struct {
	provider *goose.Provider
}

// NewMigrator takes ownership of db; Close closes it.
func NewMigrator(db *sql.DB, migrations fs.FS) (*Migrator, error) {
	const op = "migrator.NewMigrator"

	provider, err := goose.NewProvider(goose.DialectPostgres, db, migrations)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &Migrator{provider: provider}, nil
}

// Up applies every pending migration and logs each one.
func (m *Migrator) Up(ctx context.Context) error {
	const op = "migrator.Up"

	results, err := m.provider.Up(ctx)
	for _, r := range results {
		if r.Error != nil {
			continue
		}
		logger.Info(ctx, "migration applied",
			logger.Int64("version", r.Source.Version),
			logger.String("path", r.Source.Path),
			logger.Duration("took", r.Duration),
		)
	}
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (m *Migrator) Version(ctx context.Context) (int64, error) {
	return m.provider.GetDBVersion(ctx)
}

func (m *Migrator) Close() error {
	return m.provider.Close()
}
