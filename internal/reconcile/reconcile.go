// Package reconcile turns a scraped inventory snapshot into a write-set
// against the persisted rows of the same location and type.
package reconcile

import (
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"

	"github.com/you-humble/ge-sync/internal/model"
)

const (
	FieldLoad   = "load_number"
	FieldStatus = "status"
	FieldQty    = "qty"
)

// Dedupe keeps one canonical row per serial: the latest SourceTimestamp,
// then the highest BatchIndex, then the first seen. Every loser sitting in a
// different load than the winner yields a LoadConflict. Rows without a
// serial pass through. Output order follows the first occurrence of each
// serial.
func Dedupe(items []model.InventoryRow) ([]model.InventoryRow, []model.LoadConflict) {
	winners := make(map[string]int, len(items))
	order := make([]int, 0, len(items))

	for i, it := range items {
		if it.Serial == "" {
			order = append(order, i)
			continue
		}
		w, ok := winners[it.Serial]
		if !ok {
			winners[it.Serial] = i
			order = append(order, i)
			continue
		}
		if beats(it, items[w]) {
			winners[it.Serial] = i
		}
	}

	var conflicts []model.LoadConflict
	for i, it := range items {
		if it.Serial == "" {
			continue
		}
		w := winners[it.Serial]
		if w == i {
			continue
		}
		winner := items[w]
		if it.LoadNumber == "" || winner.LoadNumber == "" || it.LoadNumber == winner.LoadNumber {
			continue
		}
		conflicts = append(conflicts, model.LoadConflict{
			Serial:          it.Serial,
			LoadNumber:      it.LoadNumber,
			ConflictingLoad: winner.LoadNumber,
		})
	}

	out := make([]model.InventoryRow, 0, len(order))
	for _, i := range order {
		if s := items[i].Serial; s != "" {
			out = append(out, items[winners[s]])
			continue
		}
		out = append(out, items[i])
	}
	return out, conflicts
}

func beats(a, b model.InventoryRow) bool {
	if !a.SourceTimestamp.Equal(b.SourceTimestamp) {
		return a.SourceTimestamp.After(b.SourceTimestamp)
	}
	return a.BatchIndex > b.BatchIndex
}

// ExcludeCrossType drops incoming serials that a live persisted row already
// holds under another inventory type at the same location. Orphaned rows do
// not block.
func ExcludeCrossType(
	incoming []model.InventoryRow,
	target model.InventoryType,
	persisted []model.InventoryRow,
) (kept, excluded []model.InventoryRow) {
	taken := lo.SliceToMap(
		lo.Filter(persisted, func(r model.InventoryRow, _ int) bool {
			return r.Serial != "" && !r.Orphaned && r.InventoryType != target
		}),
		func(r model.InventoryRow) (string, struct{}) { return r.Serial, struct{}{} },
	)

	kept = make([]model.InventoryRow, 0, len(incoming))
	for _, it := range incoming {
		if _, ok := taken[it.Serial]; ok && it.Serial != "" {
			excluded = append(excluded, it)
			continue
		}
		kept = append(kept, it)
	}
	return kept, excluded
}

// Classify matches deduplicated incoming rows against persisted rows of the
// same location and type. A match keeps the persisted id and clears the
// orphan flag; anything unmatched is new. Persisted rows left unmatched are
// returned as orphaned unless they already are.
func Classify(incoming, persisted []model.InventoryRow, now time.Time) model.Reconciliation {
	index := persistedIndex(persisted)
	matched := make([]bool, len(persisted))

	var res model.Reconciliation
	for i, k := range keys(incoming) {
		it := incoming[i]
		p, ok := index[k]
		if !ok || matched[p] {
			it.ID = uuid.New()
			it.Orphaned = false
			it.OrphanedAt = nil
			res.New = append(res.New, it)
			continue
		}
		matched[p] = true

		prev := persisted[p]
		it.ID = prev.ID
		it.Orphaned = false
		it.OrphanedAt = nil
		res.Updated = append(res.Updated, it)
		res.Changes = append(res.Changes, diff(prev, it)...)
	}

	for i, p := range persisted {
		if matched[i] || p.Orphaned {
			continue
		}
		at := now
		p.Orphaned = true
		p.OrphanedAt = &at
		res.Orphaned = append(res.Orphaned, p)
	}
	return res
}

// Reconcile is Dedupe followed by Classify.
func Reconcile(incoming, persisted []model.InventoryRow, now time.Time) model.Reconciliation {
	canonical, conflicts := Dedupe(incoming)
	res := Classify(canonical, persisted, now)
	res.Conflicts = conflicts
	return res
}

// keys returns the natural key of every row: the serial when present, else
// model|load|occurrence where occurrence counts earlier serial-less rows
// with the same model and load.
func keys(rows []model.InventoryRow) []string {
	seen := make(map[string]int)
	out := make([]string, len(rows))
	for i, r := range rows {
		if r.Serial != "" {
			out[i] = "s:" + r.Serial
			continue
		}
		base := r.Model + "|" + r.LoadNumber
		out[i] = "k:" + base + "|" + strconv.Itoa(seen[base])
		seen[base]++
	}
	return out
}

// persistedIndex maps natural keys to persisted positions. Live rows take
// the low occurrence numbers so an orphan is only revived once the incoming
// units outnumber the live rows.
func persistedIndex(persisted []model.InventoryRow) map[string]int {
	order := make([]int, 0, len(persisted))
	for i, p := range persisted {
		if !p.Orphaned {
			order = append(order, i)
		}
	}
	for i, p := range persisted {
		if p.Orphaned {
			order = append(order, i)
		}
	}

	ranked := make([]model.InventoryRow, len(order))
	for j, i := range order {
		ranked[j] = persisted[i]
	}

	index := make(map[string]int, len(persisted))
	for j, k := range keys(ranked) {
		index[k] = order[j]
	}
	return index
}

func diff(prev, next model.InventoryRow) []model.InventoryChange {
	var out []model.InventoryChange
	add := func(field, o, n string) {
		if o == n {
			return
		}
		out = append(out, model.InventoryChange{
			ItemID:   next.ID,
			Serial:   next.Serial,
			Field:    field,
			OldValue: o,
			NewValue: n,
		})
	}
	add(FieldLoad, prev.LoadNumber, next.LoadNumber)
	add(FieldStatus, prev.Status, next.Status)
	add(FieldQty, strconv.Itoa(prev.Qty), strconv.Itoa(next.Qty))
	return out
}
