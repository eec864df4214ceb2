// Package upsert writes rows in fixed-size chunks with INSERT ... ON CONFLICT.
package upsert

import (
	"context"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/samber/lo"

	"github.com/you-humble/ge-sync/internal/model"
	"github.com/you-humble/ge-sync/platform/logger"
)

const defaultBatchSize = 500

type Execer interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// Table names a target table, its column order and its conflict key.
type Table struct {
	Name       string
	Columns    []string
	OnConflict []string
}

type writer struct {
	db        Execer
	sb        sq.StatementBuilderType
	batchSize int
}

func NewWriter(db Execer, batchSize int) *writer {
	if batchSize <= 0 {
		batchSize = defaultBatchSize
	}
	return &writer{
		db:        db,
		sb:        sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
		batchSize: batchSize,
	}
}

// Upsert writes rows chunk by chunk. Every chunk is one statement; a failing
// chunk stops the remaining chunks and earlier chunks stay committed. Rows
// repeating a conflict key within a chunk collapse to the last one.
func (w *writer) Upsert(ctx context.Context, t Table, rows [][]any) error {
	const op = "repository.upsert.Upsert"

	if len(rows) == 0 {
		return nil
	}

	keyIdx, err := t.keyIndexes()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	suffix := t.conflictClause()

	for i, chunk := range lo.Chunk(rows, w.batchSize) {
		chunk = dedupe(chunk, keyIdx)

		q := w.sb.Insert(t.Name).Columns(t.Columns...)
		if suffix != "" {
			q = q.Suffix(suffix)
		}
		for _, r := range chunk {
			if len(r) != len(t.Columns) {
				return fmt.Errorf("%s: %s: row has %d values for %d columns: %w",
					op, t.Name, len(r), len(t.Columns), model.ErrValidation)
			}
			q = q.Values(r...)
		}

		sqlStr, args, err := q.ToSql()
		if err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}

		if _, err := w.db.Exec(ctx, sqlStr, args...); err != nil {
			logger.Error(ctx, "upsert chunk",
				logger.String("table", t.Name),
				logger.Int("chunk", i),
				logger.Int("rows", len(chunk)),
				logger.ErrorF(err),
			)
			return fmt.Errorf("%s: %s chunk %d: %w: %w", op, t.Name, i, model.ErrPersist, err)
		}
	}

	return nil
}

func (t Table) keyIndexes() ([]int, error) {
	idx := make([]int, 0, len(t.OnConflict))
	for _, k := range t.OnConflict {
		i := lo.IndexOf(t.Columns, k)
		if i < 0 {
			return nil, fmt.Errorf("%s: conflict column %q is not written: %w", t.Name, k, model.ErrValidation)
		}
		idx = append(idx, i)
	}
	return idx, nil
}

func (t Table) conflictClause() string {
	if len(t.OnConflict) == 0 {
		return ""
	}
	set := lo.FilterMap(t.Columns, func(c string, _ int) (string, bool) {
		return c + " = EXCLUDED." + c, !lo.Contains(t.OnConflict, c)
	})

	clause := "ON CONFLICT (" + strings.Join(t.OnConflict, ", ") + ")"
	if len(set) == 0 {
		return clause + " DO NOTHING"
	}
	return clause + " DO UPDATE SET " + strings.Join(set, ", ")
}

func dedupe(rows [][]any, keyIdx []int) [][]any {
	if len(keyIdx) == 0 {
		return rows
	}

	last := make(map[string]int, len(rows))
	keys := make([]string, len(rows))
	for i, r := range rows {
		var b strings.Builder
		for _, k := range keyIdx {
			if k < len(r) {
				fmt.Fprintf(&b, "%v\x1f", r[k])
			}
		}
		keys[i] = b.String()
		last[keys[i]] = i
	}
	if len(last) == len(rows) {
		return rows
	}

	out := make([][]any, 0, len(last))
	for i, r := range rows {
		if last[keys[i]] == i {
			out = append(out, r)
		}
	}
	return out
}
