// Package runner serialises sync triggers. HTTP calls, Kafka requests and
// the interval scheduler all go through one Runner, so two syncs never run
// at once.
package runner

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/samber/lo"

	"github.com/you-humble/ge-sync/internal/model"
	"github.com/you-humble/ge-sync/platform/logger"
)

type OrderSyncer interface {
	SyncOrders(ctx context.Context, opts model.SyncOptions) model.SyncResult
}

type InboundSyncer interface {
	SyncInbound(ctx context.Context, opts model.SyncOptions) model.SyncResult
}

type InventorySyncer interface {
	SyncInventory(ctx context.Context, invType model.InventoryType, opts model.SyncOptions) model.SyncResult
}

type ResultPublisher interface {
	PublishResult(ctx context.Context, req model.SyncRequest, res model.SyncResult) error
}

type ResultNotifier interface {
	NotifyResult(ctx context.Context, req model.SyncRequest, res model.SyncResult) error
}

// OptionsFunc builds the options of one invocation ending at now.
type OptionsFunc func(now time.Time) model.SyncOptions

type Runner struct {
	mu sync.Mutex

	orders    OrderSyncer
	inbound   InboundSyncer
	inventory InventorySyncer
	options   OptionsFunc

	publisher ResultPublisher
	notifier  ResultNotifier
	now       func() time.Time
}

// NewRunner wires the flows. publisher and notifier may be nil.
func NewRunner(
	orders OrderSyncer,
	inbound InboundSyncer,
	inventory InventorySyncer,
	options OptionsFunc,
	publisher ResultPublisher,
	notifier ResultNotifier,
) *Runner {
	return &Runner{
		orders:    orders,
		inbound:   inbound,
		inventory: inventory,
		options:   options,
		publisher: publisher,
		notifier:  notifier,
		now:       time.Now,
	}
}

// Run executes one request. The error is reserved for requests that never
// started: an unknown flow, a bad inventory type or a sync already running.
// Sync failures are reported through the result.
func (r *Runner) Run(ctx context.Context, req model.SyncRequest) (model.SyncResult, error) {
	const op = "runner.Run"

	if err := validate(req); err != nil {
		return model.SyncResult{}, fmt.Errorf("%s: %w", op, err)
	}

	if !r.mu.TryLock() {
		return model.SyncResult{}, fmt.Errorf("%s: %s: %w", op, req.Flow, model.ErrSyncInProgress)
	}
	defer r.mu.Unlock()

	opts := r.options(r.now())

	var res model.SyncResult
	switch req.Flow {
	case model.FlowOrders:
		res = r.orders.SyncOrders(ctx, opts)
	case model.FlowInbound:
		res = r.inbound.SyncInbound(ctx, opts)
	case model.FlowInventory:
		res = r.inventory.SyncInventory(ctx, req.InventoryType, opts)
	}

	r.report(ctx, req, res)

	return res, nil
}

func validate(req model.SyncRequest) error {
	switch req.Flow {
	case model.FlowOrders, model.FlowInbound:
		return nil
	case model.FlowInventory:
		if !req.InventoryType.Valid() {
			return fmt.Errorf("inventory type %q: %w", req.InventoryType, model.ErrValidation)
		}
		return nil
	}
	return fmt.Errorf("flow %q: %w", req.Flow, model.ErrUnknownFlow)
}

// report publishes and notifies. Neither failure changes the result.
func (r *Runner) report(ctx context.Context, req model.SyncRequest, res model.SyncResult) {
	if r.publisher != nil {
		if err := r.publisher.PublishResult(ctx, req, res); err != nil {
			logger.Warn(ctx, "sync result publish failed", logger.ErrorF(err))
		}
	}
	if r.notifier != nil {
		if err := r.notifier.NotifyResult(ctx, req, res); err != nil {
			logger.Warn(ctx, "sync result notification failed", logger.ErrorF(err))
		}
	}
}

// Schedule runs reqs in order every interval until ctx is done. A zero
// interval disables scheduling and returns immediately.
func (r *Runner) Schedule(ctx context.Context, interval time.Duration, reqs []model.SyncRequest) error {
	if interval <= 0 || len(reqs) == 0 {
		logger.Info(ctx, "Sync scheduler disabled")
		return nil
	}

	logger.Info(ctx, "Starting sync scheduler", logger.Duration("interval", interval))

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			r.tick(ctx, reqs)
		}
	}
}

func (r *Runner) tick(ctx context.Context, reqs []model.SyncRequest) {
	for _, req := range reqs {
		if ctx.Err() != nil {
			return
		}
		res, err := r.Run(ctx, req)
		if err != nil {
			logger.Warn(ctx, "scheduled sync skipped",
				logger.String("flow", string(req.Flow)),
				logger.ErrorF(err),
			)
			continue
		}
		logger.Info(ctx, "scheduled sync finished",
			logger.String("flow", string(req.Flow)),
			logger.Bool("success", res.Success),
		)
	}
}

// ScheduledRequests expands the configured inventory types into the list
// of requests one scheduler tick runs: orders, inbound, then each valid
// inventory type.
func ScheduledRequests(inventoryTypes []string) []model.SyncRequest {
	types := lo.Uniq(lo.FilterMap(inventoryTypes, func(t string, _ int) (model.InventoryType, bool) {
		it := model.InventoryType(strings.ToUpper(strings.TrimSpace(t)))
		return it, it.Valid()
	}))

	reqs := []model.SyncRequest{{Flow: model.FlowOrders}, {Flow: model.FlowInbound}}
	for _, it := range types {
		reqs = append(reqs, model.SyncRequest{Flow: model.FlowInventory, InventoryType: it})
	}
	return reqs
}
