package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/you-humble/ge-sync/internal/model"
	"github.com/you-humble/ge-sync/internal/repository/upsert"
)

type Writer interface {
	Upsert(ctx context.Context, t upsert.Table, rows [][]any) error
}

var (
	receiptsTable = upsert.Table{
		Name: "inbound_receipts",
		Columns: []string{
			"company_id", "location_id", "inbound_shipment_no",
			"vendor", "truck", "scac", "receipt_date", "receipt_time", "total_units",
			"scheduled_date", "status", "from_layout", "synced_at",
		},
		OnConflict: []string{"company_id", "location_id", "inbound_shipment_no"},
	}
	receiptItemsTable = upsert.Table{
		Name: "inbound_receipt_items",
		Columns: []string{
			"location_id", "inbound_shipment_no", "line_index",
			"model", "serial", "cso", "qty", "rcvd", "short", "damage",
		},
		OnConflict: []string{"location_id", "inbound_shipment_no", "line_index"},
	}
)

type repository struct {
	w Writer
}

func NewInboundRepository(w Writer) *repository {
	return &repository{w: w}
}

// SaveReceipt upserts one shipment's header and items. The listing row
// supplies the fields the report does not carry.
func (r *repository) SaveReceipt(
	ctx context.Context,
	opts model.SyncOptions,
	row model.InboundHistoryRow,
	rep model.ReceivingReport,
) error {
	const op = "repository.inbound.SaveReceipt"

	shipment := rep.Header.InboundShipmentNo
	if shipment == "" {
		shipment = row.ShipmentNumber
	}
	truck := rep.Header.Truck
	if truck == "" {
		truck = row.Truck
	}

	header := []any{
		opts.CompanyID, opts.LocationID, shipment,
		row.Vendor, truck, rep.Header.SCAC, rep.Header.Date, rep.Header.Time, rep.Header.TotalUnits,
		row.ScheduledDate, row.Status, rep.FromLayout, time.Now().UTC(),
	}
	if err := r.w.Upsert(ctx, receiptsTable, [][]any{header}); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	items := make([][]any, 0, len(rep.Items))
	for _, it := range rep.Items {
		items = append(items, []any{
			opts.LocationID, shipment, it.LineIndex,
			it.Model, it.Serial, it.CSO, it.Qty, it.Rcvd, it.Short, it.Damage,
		})
	}
	if err := r.w.Upsert(ctx, receiptItemsTable, items); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}
