package converter

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/you-humble/ge-sync/internal/model"
)

type kafkaConverter struct {
	now func() time.Time
}

func NewKafkaConverter() *kafkaConverter { return &kafkaConverter{now: time.Now} }

func (c *kafkaConverter) SyncRequestToModel(data []byte) (model.SyncRequest, error) {
	var dto SyncRequestDTO
	if err := json.Unmarshal(data, &dto); err != nil {
		return model.SyncRequest{}, fmt.Errorf("failed to unmarshal sync request: %w", err)
	}
	if dto.Flow == "" {
		return model.SyncRequest{}, fmt.Errorf("sync request without flow: %w", model.ErrValidation)
	}

	return SyncRequestToModel(dto), nil
}

func (c *kafkaConverter) SyncResultToPayload(req model.SyncRequest, res model.SyncResult) ([]byte, error) {
	event := SyncCompletedEvent{
		EventID:    uuid.NewString(),
		FinishedAt: c.now().UTC(),
		Result:     SyncResultToDTO(req, res),
	}

	payload, err := json.Marshal(event)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal sync result: %w", err)
	}

	return payload, nil
}
