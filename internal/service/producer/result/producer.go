package resproducer

import (
	"context"
	"fmt"

	"github.com/you-humble/ge-sync/internal/model"
	"github.com/you-humble/ge-sync/platform/kafka"
)

type Converter interface {
	SyncResultToPayload(req model.SyncRequest, res model.SyncResult) ([]byte, error)
}

type service struct {
	producer kafka.Producer
	conv     Converter
}

func NewResultProducer(producer kafka.Producer, conv Converter) *service {
	return &service{producer: producer, conv: conv}
}

// PublishResult sends the completion event keyed by run id.
func (s *service) PublishResult(ctx context.Context, req model.SyncRequest, res model.SyncResult) error {
	payload, err := s.conv.SyncResultToPayload(req, res)
	if err != nil {
		return fmt.Errorf("converter sync_result_to_payload error: %w", err)
	}

	if err := s.producer.Send(ctx, res.RunID[:], payload); err != nil {
		return fmt.Errorf("producer to sync result topic error: %w", err)
	}

	return nil
}
