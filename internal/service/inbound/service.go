package service

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/you-humble/ge-sync/internal/model"
	parser "github.com/you-humble/ge-sync/internal/parser/inbound"
	"github.com/you-humble/ge-sync/internal/service/syncrun"
	"github.com/you-humble/ge-sync/platform/logger"
	"github.com/you-humble/ge-sync/platform/pdflayout"
)

type DMSClient interface {
	InboundListing(ctx context.Context, cookie, loc string, from, to time.Time) (string, error)
	ReceivingReport(ctx context.Context, cookie string, form url.Values) ([]byte, error)
}

type SessionProvider interface {
	CookieHeader(ctx context.Context, locationID string) (string, error)
}

type PDFReader interface {
	Read(data []byte) ([]pdflayout.Page, string, error)
}

type InboundRepository interface {
	SaveReceipt(ctx context.Context, opts model.SyncOptions, row model.InboundHistoryRow, rep model.ReceivingReport) error
}

type service struct {
	dms            DMSClient
	sessions       SessionProvider
	pdf            PDFReader
	repo           InboundRepository
	writeDBTimeout time.Duration
}

func NewInboundService(
	dms DMSClient,
	sessions SessionProvider,
	pdf PDFReader,
	repository InboundRepository,
	writeDBTimeout time.Duration,
) *service {
	return &service{
		dms:            dms,
		sessions:       sessions,
		pdf:            pdf,
		repo:           repository,
		writeDBTimeout: writeDBTimeout,
	}
}

// SyncInbound fetches the receiving report of every shipment on the
// inbound listing. Shipments are isolated from each other: a bad report
// is logged and the next shipment is tried. A persistence failure stops
// the run.
func (svc *service) SyncInbound(ctx context.Context, opts model.SyncOptions) model.SyncResult {
	ctx, run := syncrun.Start(ctx, model.FlowInbound)
	return syncrun.Guard(ctx, run, func() model.SyncResult {
		if err := svc.syncInbound(ctx, run, opts); err != nil {
			return run.Fail(ctx, err)
		}
		return run.Done(ctx)
	})
}

func (svc *service) syncInbound(ctx context.Context, run *syncrun.Run, opts model.SyncOptions) error {
	const op = "inbound.service.SyncInbound"

	if opts.LocationID == "" {
		return fmt.Errorf("%s: empty location: %w", op, model.ErrValidation)
	}

	cookie, err := svc.sessions.CookieHeader(ctx, opts.LocationID)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	from, to := window(opts)
	doc, err := svc.dms.InboundListing(ctx, cookie, opts.LocationID, from, to)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	rows, blob := parser.ParseHistory(doc)
	if len(rows) == 0 {
		run.Logf(ctx, "Inbound listing returned no shipments")
		return nil
	}
	run.Logf(ctx, "Inbound listing: %d shipments", len(rows))

	for _, row := range rows {
		err := svc.syncShipment(ctx, run, opts, cookie, blob, row)
		switch {
		case err == nil:
		case errors.Is(err, model.ErrPersist), ctx.Err() != nil:
			return fmt.Errorf("%s: %w", op, err)
		default:
			run.Stats.ReceiptsFailed++
		}
	}

	if run.Stats.ReceiptsFailed > 0 {
		run.Logf(ctx, "%d of %d shipments failed", run.Stats.ReceiptsFailed, len(rows))
	}
	return nil
}

func (svc *service) syncShipment(
	ctx context.Context,
	run *syncrun.Run,
	opts model.SyncOptions,
	cookie string,
	blob map[string]string,
	row model.InboundHistoryRow,
) error {
	log := logger.With(logger.String("shipment", row.ShipmentNumber), logger.Int("line_id", row.LineID))

	body, err := svc.dms.ReceivingReport(ctx, cookie, url.Values(parser.ReportForm(blob, row)))
	if err != nil {
		log.Error(ctx, "receiving report", logger.ErrorF(err))
		run.Logf(ctx, "Shipment %s: receiving report failed: %v", row.ShipmentNumber, err)
		return fmt.Errorf("shipment %s: %w", row.ShipmentNumber, err)
	}

	pages, text, err := svc.pdf.Read(body)
	if err != nil {
		log.Warn(ctx, "pdf parse", logger.ErrorF(err))
		run.Logf(ctx, "Shipment %s: PDF parse failed, skipping: %v", row.ShipmentNumber, err)
		return nil
	}

	rep := parser.ParseReport(pages, text)
	if rep.Header.InboundShipmentNo == "" {
		rep.Header.InboundShipmentNo = row.ShipmentNumber
	}

	writeCtx, cancel := context.WithTimeout(ctx, svc.writeDBTimeout)
	defer cancel()
	if err := svc.repo.SaveReceipt(writeCtx, opts, row, rep); err != nil {
		log.Error(ctx, "save receipt", logger.ErrorF(err))
		return fmt.Errorf("shipment %s: %w", row.ShipmentNumber, err)
	}

	source := "layout"
	if !rep.FromLayout {
		source = "text"
	}
	run.Stats.ReceiptsProcessed++
	run.Stats.TotalGEItems += len(rep.Items)
	run.Logf(ctx, "Shipment %s: %d items (%s)", row.ShipmentNumber, len(rep.Items), source)

	return nil
}

func window(opts model.SyncOptions) (time.Time, time.Time) {
	days := opts.WindowDays
	if days <= 0 {
		days = 1
	}
	y, m, d := opts.Until.Date()
	to := time.Date(y, m, d, 0, 0, 0, 0, opts.Until.Location())
	return to.AddDate(0, 0, -(days - 1)), to
}
