package dms

import (
	"context"

	"github.com/google/uuid"

	"github.com/you-humble/ge-sync/internal/model"
)

type runKey struct{}

type runInfo struct {
	id   uuid.UUID
	flow model.SyncFlow
}

// WithRun tags ctx so archived artifacts can be traced back to a sync run.
func WithRun(ctx context.Context, runID uuid.UUID, flow model.SyncFlow) context.Context {
	return context.WithValue(ctx, runKey{}, runInfo{id: runID, flow: flow})
}

func runFromContext(ctx context.Context) (uuid.UUID, model.SyncFlow) {
	ri, _ := ctx.Value(runKey{}).(runInfo)
	return ri.id, ri.flow
}
