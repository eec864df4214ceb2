package repository

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/samber/lo"

	"github.com/you-humble/ge-sync/internal/model"
	"github.com/you-humble/ge-sync/internal/repository/upsert"
)

type Writer interface {
	Upsert(ctx context.Context, t upsert.Table, rows [][]any) error
}

type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

var itemColumns = []string{
	"id", "location_id", "inventory_type", "model", "serial", "load_number",
	"qty", "status", "source_timestamp", "batch_index", "ge_orphaned", "ge_orphaned_at",
}

var (
	itemsTable = upsert.Table{
		Name:       "inventory_items",
		Columns:    append(append([]string{}, itemColumns...), "synced_at"),
		OnConflict: []string{"id"},
	}
	loadsTable = upsert.Table{
		Name:       "asis_loads",
		Columns:    []string{"location_id", "load_number", "status", "units", "cso", "source_updated_at", "synced_at"},
		OnConflict: []string{"location_id", "load_number"},
	}
	conflictsTable = upsert.Table{
		Name:       "load_conflicts",
		Columns:    []string{"location_id", "load_number", "serial", "conflicting_load", "detected_at"},
		OnConflict: []string{"location_id", "load_number", "serial"},
	}
	changeLogTable = upsert.Table{
		Name:    "inventory_change_log",
		Columns: []string{"item_id", "location_id", "serial", "field", "old_value", "new_value", "changed_at"},
	}
)

type repository struct {
	db Querier
	w  Writer
	sb sq.StatementBuilderType
}

func NewInventoryRepository(db Querier, w Writer) *repository {
	return &repository{
		db: db,
		w:  w,
		sb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

// ItemsByLocation returns every persisted item of the location, of any
// inventory type, orphaned ones included.
func (r *repository) ItemsByLocation(ctx context.Context, locationID string) ([]model.InventoryRow, error) {
	const op = "repository.inventory.ItemsByLocation"

	q := r.sb.
		Select(itemColumns...).
		From(itemsTable.Name).
		Where(sq.Eq{"location_id": locationID}).
		OrderBy("inventory_type", "model", "load_number", "source_timestamp", "id")

	sqlStr, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	rows, err := r.db.Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var out []model.InventoryRow
	for rows.Next() {
		var (
			it      model.InventoryRow
			invType string
			ts      *time.Time
		)
		if err := rows.Scan(
			&it.ID,
			&it.LocationID,
			&invType,
			&it.Model,
			&it.Serial,
			&it.LoadNumber,
			&it.Qty,
			&it.Status,
			&ts,
			&it.BatchIndex,
			&it.Orphaned,
			&it.OrphanedAt,
		); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		it.InventoryType = model.InventoryType(invType)
		if ts != nil {
			it.SourceTimestamp = *ts
		}
		out = append(out, it)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return out, nil
}

// SaveItems upserts items by id. Orphaned items are written through here
// too; nothing is ever deleted.
func (r *repository) SaveItems(ctx context.Context, items []model.InventoryRow) error {
	const op = "repository.inventory.SaveItems"

	now := time.Now().UTC()
	rows := lo.Map(items, func(it model.InventoryRow, _ int) []any {
		var ts *time.Time
		if !it.SourceTimestamp.IsZero() {
			t := it.SourceTimestamp
			ts = &t
		}
		return []any{
			it.ID, it.LocationID, string(it.InventoryType), it.Model, it.Serial, it.LoadNumber,
			it.Qty, it.Status, ts, it.BatchIndex, it.Orphaned, it.OrphanedAt, now,
		}
	})

	if err := r.w.Upsert(ctx, itemsTable, rows); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func (r *repository) SaveLoads(ctx context.Context, locationID string, loads []model.ASISLoad) error {
	const op = "repository.inventory.SaveLoads"

	now := time.Now().UTC()
	rows := lo.Map(loads, func(l model.ASISLoad, _ int) []any {
		return []any{locationID, l.LoadNumber, string(l.Status), l.Units, l.CSO, l.UpdatedAt, now}
	})

	if err := r.w.Upsert(ctx, loadsTable, rows); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func (r *repository) SaveConflicts(ctx context.Context, locationID string, conflicts []model.LoadConflict) error {
	const op = "repository.inventory.SaveConflicts"

	now := time.Now().UTC()
	rows := lo.Map(conflicts, func(c model.LoadConflict, _ int) []any {
		return []any{locationID, c.LoadNumber, c.Serial, c.ConflictingLoad, now}
	})

	if err := r.w.Upsert(ctx, conflictsTable, rows); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func (r *repository) LogChanges(ctx context.Context, locationID string, changes []model.InventoryChange) error {
	const op = "repository.inventory.LogChanges"

	now := time.Now().UTC()
	rows := lo.Map(changes, func(c model.InventoryChange, _ int) []any {
		return []any{c.ItemID, locationID, c.Serial, c.Field, c.OldValue, c.NewValue, now}
	})

	if err := r.w.Upsert(ctx, changeLogTable, rows); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}
