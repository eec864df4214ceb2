package reqconsumer

import (
	"context"
	"errors"
	"time"

	"github.com/you-humble/ge-sync/internal/model"
	"github.com/you-humble/ge-sync/platform/kafka"
	"github.com/you-humble/ge-sync/platform/logger"
)

type SyncRequestConverter interface {
	SyncRequestToModel(data []byte) (model.SyncRequest, error)
}

type SyncRunner interface {
	Run(ctx context.Context, req model.SyncRequest) (model.SyncResult, error)
}

const defaultBusyRetry = 5 * time.Second

type syncRequestConsumer struct {
	consumer  kafka.Consumer
	conv      SyncRequestConverter
	runner    SyncRunner
	busyRetry time.Duration
}

func NewSyncRequestConsumer(
	consumer kafka.Consumer,
	conv SyncRequestConverter,
	runner SyncRunner,
) *syncRequestConsumer {
	return &syncRequestConsumer{
		consumer:  consumer,
		conv:      conv,
		runner:    runner,
		busyRetry: defaultBusyRetry,
	}
}

func (s *syncRequestConsumer) RunSyncRequestConsume(ctx context.Context) error {
	logger.Info(ctx, "Starting sync request consumer")

	if err := s.consumer.Consume(ctx, s.syncRequestHandler); err != nil {
		logger.Error(ctx, "Consume from sync request topic error", logger.ErrorF(err))
		return err
	}

	return nil
}

// syncRequestHandler accepts malformed and rejected requests so they are not
// redelivered. A busy runner is waited out: the group handler marks later
// offsets, so returning early would commit past this request.
func (s *syncRequestConsumer) syncRequestHandler(ctx context.Context, msg kafka.Message) error {
	req, err := s.conv.SyncRequestToModel(msg.Value)
	if err != nil {
		logger.Error(ctx, "Failed to decode sync request",
			logger.Int64("offset", msg.Offset),
			logger.ErrorF(err),
		)
		return nil
	}

	res, err := s.runWhenIdle(ctx, req)
	if err != nil {
		if ctx.Err() != nil {
			return err
		}
		logger.Error(ctx, "Sync request rejected",
			logger.String("flow", string(req.Flow)),
			logger.ErrorF(err),
		)
		return nil
	}

	logger.Info(ctx, "Sync request handled",
		logger.String("run_id", res.RunID.String()),
		logger.Bool("success", res.Success),
	)
	return nil
}

func (s *syncRequestConsumer) runWhenIdle(ctx context.Context, req model.SyncRequest) (model.SyncResult, error) {
	for {
		res, err := s.runner.Run(ctx, req)
		if !errors.Is(err, model.ErrSyncInProgress) {
			return res, err
		}

		logger.Debug(ctx, "Runner busy, waiting to retry sync request",
			logger.String("flow", string(req.Flow)),
			logger.Duration("retry_in", s.busyRetry),
		)

		select {
		case <-ctx.Done():
			return model.SyncResult{}, ctx.Err()
		case <-time.After(s.busyRetry):
		}
	}
}
