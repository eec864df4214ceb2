// Package syncrun tracks one sync invocation: its counters, its
// human-readable log trail and its duration.
package syncrun

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/you-humble/ge-sync/internal/client/http/dms"
	"github.com/you-humble/ge-sync/internal/model"
	"github.com/you-humble/ge-sync/platform/logger"
)

type Run struct {
	ID    uuid.UUID
	Flow  model.SyncFlow
	Stats model.SyncStats

	started time.Time
	trail   []string
	now     func() time.Time
}

// Start opens a run and returns a context whose log records and archived
// artifacts carry the run id and flow.
func Start(ctx context.Context, flow model.SyncFlow) (context.Context, *Run) {
	r := &Run{
		ID:   uuid.New(),
		Flow: flow,
		now:  time.Now,
	}
	r.started = r.now()

	ctx = logger.WithContextFields(ctx,
		logger.String("run_id", r.ID.String()),
		logger.String("flow", string(flow)),
	)
	ctx = dms.WithRun(ctx, r.ID, flow)
	return ctx, r
}

// Logf appends a line to the trail and logs it at info level.
func (r *Run) Logf(ctx context.Context, format string, args ...any) {
	line := fmt.Sprintf(format, args...)
	r.trail = append(r.trail, line)
	logger.Info(ctx, line)
}

func (r *Run) Trail() []string { return append([]string(nil), r.trail...) }

// Done closes a successful run.
func (r *Run) Done(ctx context.Context) model.SyncResult {
	res := r.result()
	res.Success = true
	logger.Info(ctx, "sync finished",
		logger.Duration("duration", res.Duration),
		logger.Int("new_items", res.Stats.NewItems),
		logger.Int("updated_items", res.Stats.UpdatedItems),
	)
	return res
}

// Fail closes a run with err, keeping whatever stats and trail were
// accumulated.
func (r *Run) Fail(ctx context.Context, err error) model.SyncResult {
	r.trail = append(r.trail, "Error: "+err.Error())
	res := r.result()
	res.Error = err.Error()
	logger.Error(ctx, "sync failed", logger.Duration("duration", res.Duration), logger.ErrorF(err))
	return res
}

func (r *Run) result() model.SyncResult {
	return model.SyncResult{
		RunID:    r.ID,
		Flow:     r.Flow,
		Stats:    r.Stats,
		Duration: r.now().Sub(r.started),
		Log:      r.Trail(),
	}
}

// Guard turns a panic inside fn into a failed result.
func Guard(ctx context.Context, r *Run, fn func() model.SyncResult) (res model.SyncResult) {
	defer func() {
		if p := recover(); p != nil {
			res = r.Fail(ctx, fmt.Errorf("panic: %v", p))
		}
	}()
	return fn()
}
