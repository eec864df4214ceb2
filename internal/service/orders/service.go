package service

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/you-humble/ge-sync/internal/model"
	"github.com/you-humble/ge-sync/internal/service/syncrun"
)

type DMSClient interface {
	OrderJSON(ctx context.Context, cookie, loc string, from, to time.Time) ([]byte, error)
	OrderJSONByCSO(ctx context.Context, cookie, loc, cso string) ([]byte, error)
	OrderSearchHTML(ctx context.Context, cookie, loc string, from, to time.Time) (string, error)
	OrderSearchURL(loc string, from, to time.Time) string
}

type SessionProvider interface {
	CookieHeader(ctx context.Context, locationID string) (string, error)
	ValidCookies(ctx context.Context, locationID string) ([]*http.Cookie, error)
}

type BrowserClient interface {
	FetchHTML(ctx context.Context, pageURL string, cookies []*http.Cookie, selector string, wait time.Duration) (string, error)
}

type OrderRepository interface {
	ExistingCSOs(ctx context.Context, locationID string, csos []string) (map[string]struct{}, error)
	SaveOrders(ctx context.Context, orders []model.OrderRecord) error
}

type service struct {
	dms            DMSClient
	sessions       SessionProvider
	browser        BrowserClient
	repo           OrderRepository
	readDBTimeout  time.Duration
	writeDBTimeout time.Duration
}

func NewOrderService(
	dms DMSClient,
	sessions SessionProvider,
	browser BrowserClient,
	repository OrderRepository,
	readDBTimeout time.Duration,
	writeDBTimeout time.Duration,
) *service {
	return &service{
		dms:            dms,
		sessions:       sessions,
		browser:        browser,
		repo:           repository,
		readDBTimeout:  readDBTimeout,
		writeDBTimeout: writeDBTimeout,
	}
}

// SyncOrders pulls every order of the sync window chunk by chunk and
// upserts each chunk as soon as it is complete. It never returns an error:
// failures end up in the result.
func (svc *service) SyncOrders(ctx context.Context, opts model.SyncOptions) model.SyncResult {
	ctx, run := syncrun.Start(ctx, model.FlowOrders)
	return syncrun.Guard(ctx, run, func() model.SyncResult {
		if err := svc.syncOrders(ctx, run, opts); err != nil {
			return run.Fail(ctx, err)
		}
		return run.Done(ctx)
	})
}

func (svc *service) syncOrders(ctx context.Context, run *syncrun.Run, opts model.SyncOptions) error {
	const op = "orders.service.SyncOrders"

	if opts.LocationID == "" {
		return fmt.Errorf("%s: empty location: %w", op, model.ErrValidation)
	}

	cookie, err := svc.sessions.CookieHeader(ctx, opts.LocationID)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	chunks := Chunks(opts.Until, opts.WindowDays, opts.MaxDaysPerRequest)
	run.Logf(ctx, "Syncing orders for %s: %s to %s in %d chunk(s)",
		opts.LocationID, day(chunks[0].From), day(chunks[len(chunks)-1].To), len(chunks))

	counted := make(map[string]struct{})
	for _, c := range chunks {
		m := newMachine(svc, run, opts, cookie, c)
		orders, err := m.Run(ctx)
		if err != nil {
			return fmt.Errorf("%s: chunk %s: %w", op, c, err)
		}
		if err := svc.save(ctx, run, opts, c, orders, counted); err != nil {
			return fmt.Errorf("%s: chunk %s: %w", op, c, err)
		}
	}

	return nil
}

func (svc *service) save(
	ctx context.Context,
	run *syncrun.Run,
	opts model.SyncOptions,
	c Window,
	orders []model.OrderRecord,
	counted map[string]struct{},
) error {
	if len(orders) == 0 {
		run.Logf(ctx, "Chunk %s: no orders", c)
		return nil
	}

	csos := make([]string, len(orders))
	for i, o := range orders {
		csos[i] = o.CSO
	}

	readCtx, cancel := context.WithTimeout(ctx, svc.readDBTimeout)
	existing, err := svc.repo.ExistingCSOs(readCtx, opts.LocationID, csos)
	cancel()
	if err != nil {
		return err
	}

	writeCtx, cancel := context.WithTimeout(ctx, svc.writeDBTimeout)
	defer cancel()
	if err := svc.repo.SaveOrders(writeCtx, orders); err != nil {
		return err
	}

	// A CSO returned by more than one chunk is counted once per run.
	added, updated := 0, 0
	for _, cso := range csos {
		if _, ok := counted[cso]; ok {
			continue
		}
		counted[cso] = struct{}{}
		if _, ok := existing[cso]; ok {
			updated++
		} else {
			added++
		}
	}
	run.Stats.TotalGEItems += added + updated
	run.Stats.NewItems += added
	run.Stats.UpdatedItems += updated
	run.Logf(ctx, "Chunk %s: saved %d orders (%d new, %d updated)", c, len(orders), added, updated)

	return nil
}
