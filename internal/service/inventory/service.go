package service

import (
	"context"
	"fmt"
	"time"

	"github.com/samber/lo"

	"github.com/you-humble/ge-sync/internal/model"
	"github.com/you-humble/ge-sync/internal/parser/asis"
	"github.com/you-humble/ge-sync/internal/reconcile"
	"github.com/you-humble/ge-sync/internal/service/syncrun"
	"github.com/you-humble/ge-sync/platform/logger"
)

type DMSClient interface {
	ASISLoads(ctx context.Context, cookie, loc string) (string, error)
	ASISLoadDetail(ctx context.Context, cookie, loc, load string) (string, error)
	InventoryReport(ctx context.Context, cookie, loc string, invType model.InventoryType) (string, error)
}

type SessionProvider interface {
	CookieHeader(ctx context.Context, locationID string) (string, error)
}

type InventoryRepository interface {
	ItemsByLocation(ctx context.Context, locationID string) ([]model.InventoryRow, error)
	SaveItems(ctx context.Context, items []model.InventoryRow) error
	SaveLoads(ctx context.Context, locationID string, loads []model.ASISLoad) error
	SaveConflicts(ctx context.Context, locationID string, conflicts []model.LoadConflict) error
	LogChanges(ctx context.Context, locationID string, changes []model.InventoryChange) error
}

type service struct {
	dms            DMSClient
	sessions       SessionProvider
	repo           InventoryRepository
	readDBTimeout  time.Duration
	writeDBTimeout time.Duration
	now            func() time.Time
}

func NewInventoryService(
	dms DMSClient,
	sessions SessionProvider,
	repository InventoryRepository,
	readDBTimeout time.Duration,
	writeDBTimeout time.Duration,
) *service {
	return &service{
		dms:            dms,
		sessions:       sessions,
		repo:           repository,
		readDBTimeout:  readDBTimeout,
		writeDBTimeout: writeDBTimeout,
		now:            time.Now,
	}
}

// SyncInventory snapshots one inventory type at the location and
// reconciles it against the stored items.
func (svc *service) SyncInventory(
	ctx context.Context,
	invType model.InventoryType,
	opts model.SyncOptions,
) model.SyncResult {
	ctx, run := syncrun.Start(ctx, model.FlowInventory)
	ctx = logger.WithContextFields(ctx, logger.String("inventory_type", string(invType)))

	return syncrun.Guard(ctx, run, func() model.SyncResult {
		if err := svc.syncInventory(ctx, run, invType, opts); err != nil {
			return run.Fail(ctx, err)
		}
		return run.Done(ctx)
	})
}

func (svc *service) syncInventory(
	ctx context.Context,
	run *syncrun.Run,
	invType model.InventoryType,
	opts model.SyncOptions,
) error {
	const op = "inventory.service.SyncInventory"

	if opts.LocationID == "" || !invType.Valid() {
		return fmt.Errorf("%s: location %q type %q: %w", op, opts.LocationID, invType, model.ErrValidation)
	}

	cookie, err := svc.sessions.CookieHeader(ctx, opts.LocationID)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	now := svc.now().UTC()

	var incoming []model.InventoryRow
	if invType == model.InventoryTypeASIS {
		incoming, err = svc.asisSnapshot(ctx, run, cookie, opts.LocationID, now)
	} else {
		incoming, err = svc.reportSnapshot(ctx, run, cookie, opts.LocationID, invType, now)
	}
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	for i := range incoming {
		incoming[i].LocationID = opts.LocationID
		incoming[i].InventoryType = invType
	}

	readCtx, cancel := context.WithTimeout(ctx, svc.readDBTimeout)
	persisted, err := svc.repo.ItemsByLocation(readCtx, opts.LocationID)
	cancel()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	kept, excluded := reconcile.ExcludeCrossType(incoming, invType, persisted)
	run.Stats.CrossTypeSkipped = len(excluded)
	if len(excluded) > 0 {
		run.Logf(ctx, "Skipped %d items already stored under another inventory type", len(excluded))
	}

	sameType := lo.Filter(persisted, func(r model.InventoryRow, _ int) bool {
		return r.InventoryType == invType
	})
	rec := reconcile.Reconcile(kept, sameType, now)

	if err := svc.persist(ctx, opts.LocationID, rec); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	run.Stats.NewItems = len(rec.New)
	run.Stats.UpdatedItems = len(rec.Updated)
	run.Stats.OrphanedItems = len(rec.Orphaned)
	run.Stats.Conflicts = len(rec.Conflicts)
	run.Stats.ChangesLogged = len(rec.Changes)
	run.Logf(ctx, "Reconciled %s: %d new, %d updated, %d orphaned, %d conflicts, %d changes",
		invType, len(rec.New), len(rec.Updated), len(rec.Orphaned), len(rec.Conflicts), len(rec.Changes))

	return nil
}

// asisSnapshot reads the load list, the items of every FOR SALE and PICKED
// load, and the inventory report for units sitting in no load.
func (svc *service) asisSnapshot(
	ctx context.Context,
	run *syncrun.Run,
	cookie, loc string,
	now time.Time,
) ([]model.InventoryRow, error) {
	doc, err := svc.dms.ASISLoads(ctx, cookie, loc)
	if err != nil {
		return nil, err
	}

	loads := asis.ParseLoads(doc)
	active := lo.Filter(loads, func(l model.ASISLoad, _ int) bool {
		return l.Status == model.LoadStatusForSale || l.Status == model.LoadStatusPicked
	})
	run.Stats.ForSaleLoads = lo.CountBy(loads, func(l model.ASISLoad) bool { return l.Status == model.LoadStatusForSale })
	run.Stats.PickedLoads = lo.CountBy(loads, func(l model.ASISLoad) bool { return l.Status == model.LoadStatusPicked })
	run.Logf(ctx, "ASIS loads: %d (%d for sale, %d picked)", len(loads), run.Stats.ForSaleLoads, run.Stats.PickedLoads)

	if len(loads) > 0 {
		writeCtx, cancel := context.WithTimeout(ctx, svc.writeDBTimeout)
		err := svc.repo.SaveLoads(writeCtx, loc, loads)
		cancel()
		if err != nil {
			return nil, err
		}
	}

	var out []model.InventoryRow
	inLoad := make(map[string]struct{})
	for i, l := range active {
		detail, err := svc.dms.ASISLoadDetail(ctx, cookie, loc, l.LoadNumber)
		if err != nil {
			return nil, err
		}

		ts := now
		if l.UpdatedAt != nil {
			ts = *l.UpdatedAt
		}
		items := asis.ParseLoadItems(detail, l.LoadNumber)
		if len(items) == 0 {
			run.Logf(ctx, "Load %s returned no items", l.LoadNumber)
		}
		for _, it := range items {
			out = append(out, row(it, ts, i+1))
			if it.Serial != "" {
				inLoad[it.Serial] = struct{}{}
			}
		}
	}
	run.Stats.ItemsInLoads = len(out)

	report, err := svc.dms.InventoryReport(ctx, cookie, loc, model.InventoryTypeASIS)
	if err != nil {
		return nil, err
	}
	all := asis.ParseInventoryReport(report)
	run.Stats.TotalGEItems = len(all)

	unassigned := 0
	for _, it := range all {
		if _, ok := inLoad[it.Serial]; ok && it.Serial != "" {
			continue
		}
		it.LoadNumber = ""
		out = append(out, row(it, time.Time{}, 0))
		unassigned++
	}
	run.Stats.UnassignedItems = unassigned
	run.Logf(ctx, "ASIS items: %d in loads, %d unassigned, %d on report", run.Stats.ItemsInLoads, unassigned, len(all))

	return out, nil
}

func (svc *service) reportSnapshot(
	ctx context.Context,
	run *syncrun.Run,
	cookie, loc string,
	invType model.InventoryType,
	now time.Time,
) ([]model.InventoryRow, error) {
	doc, err := svc.dms.InventoryReport(ctx, cookie, loc, invType)
	if err != nil {
		return nil, err
	}

	items := asis.ParseInventoryReport(doc)
	run.Stats.TotalGEItems = len(items)
	run.Stats.ItemsInLoads = lo.CountBy(items, func(it asis.Item) bool { return it.LoadNumber != "" })
	run.Stats.UnassignedItems = len(items) - run.Stats.ItemsInLoads
	if len(items) == 0 {
		run.Logf(ctx, "%s inventory report returned no items", invType)
	} else {
		run.Logf(ctx, "%s inventory report: %d items", invType, len(items))
	}

	return lo.Map(items, func(it asis.Item, _ int) model.InventoryRow { return row(it, now, 0) }), nil
}

func (svc *service) persist(ctx context.Context, loc string, rec model.Reconciliation) error {
	ctx, cancel := context.WithTimeout(ctx, svc.writeDBTimeout)
	defer cancel()

	items := make([]model.InventoryRow, 0, len(rec.New)+len(rec.Updated)+len(rec.Orphaned))
	items = append(items, rec.New...)
	items = append(items, rec.Updated...)
	items = append(items, rec.Orphaned...)

	if len(items) > 0 {
		if err := svc.repo.SaveItems(ctx, items); err != nil {
			return err
		}
	}
	if len(rec.Conflicts) > 0 {
		if err := svc.repo.SaveConflicts(ctx, loc, rec.Conflicts); err != nil {
			return err
		}
	}
	if len(rec.Changes) > 0 {
		if err := svc.repo.LogChanges(ctx, loc, rec.Changes); err != nil {
			return err
		}
	}
	return nil
}

func row(it asis.Item, ts time.Time, batch int) model.InventoryRow {
	return model.InventoryRow{
		Model:           it.Model,
		Serial:          it.Serial,
		LoadNumber:      it.LoadNumber,
		Qty:             it.Qty,
		Status:          it.Status,
		SourceTimestamp: ts,
		BatchIndex:      batch,
	}
}
