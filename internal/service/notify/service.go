package service

import (
	"context"
	"fmt"

	converter "github.com/you-humble/ge-sync/internal/converter/telegram"
	"github.com/you-humble/ge-sync/internal/model"
	"github.com/you-humble/ge-sync/platform/logger"
)

type MessageSender interface {
	SendMessage(ctx context.Context, chatID int64, text string) error
}

type service struct {
	client MessageSender
	chatID int64
}

func NewNotifyService(client MessageSender, chatID int64) *service {
	return &service{client: client, chatID: chatID}
}

// NotifyResult reports failed runs and runs that found load conflicts or
// skipped receipts. Clean runs are not reported.
func (svc *service) NotifyResult(ctx context.Context, req model.SyncRequest, res model.SyncResult) error {
	const op = "notify.service.NotifyResult"

	if res.Success && res.Stats.Conflicts == 0 && res.Stats.ReceiptsFailed == 0 {
		return nil
	}

	msg, err := converter.BuildSyncReport(req, res)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := svc.client.SendMessage(ctx, svc.chatID, msg); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	logger.Debug(ctx, "sync report sent", logger.String("run_id", res.RunID.String()))
	return nil
}
