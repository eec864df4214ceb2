package repository

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/you-humble/ge-sync/internal/model"
	"github.com/you-humble/ge-sync/internal/repository/upsert"
)

type Writer interface {
	Upsert(ctx context.Context, t upsert.Table, rows [][]any) error
}

type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

var (
	ordersTable = upsert.Table{
		Name: "orders",
		Columns: []string{
			"cso", "location_id", "order_type", "order_date",
			"customer_name", "customer_phone", "customer_email", "customer_address",
			"freight_terms", "shipping_instructions", "synced_at",
		},
		OnConflict: []string{"cso", "location_id"},
	}
	deliveriesTable = upsert.Table{
		Name: "deliveries",
		Columns: []string{
			"delivery_id", "cso", "location_id", "status", "address",
			"scheduled_date", "ship_date", "route", "synced_at",
		},
		OnConflict: []string{"delivery_id", "cso", "location_id"},
	}
	productLinesTable = upsert.Table{
		Name: "order_product_lines",
		Columns: []string{
			"cso", "delivery_id", "line_number", "location_id",
			"model", "serial", "qty", "status",
		},
		OnConflict: []string{"cso", "delivery_id", "line_number", "location_id"},
	}
	serviceLinesTable = upsert.Table{
		Name: "order_service_lines",
		Columns: []string{
			"cso", "delivery_id", "line_number", "location_id",
			"code", "description", "qty",
		},
		OnConflict: []string{"cso", "delivery_id", "line_number", "location_id"},
	}
)

type repository struct {
	db Querier
	w  Writer
	sb sq.StatementBuilderType
}

func NewOrderRepository(db Querier, w Writer) *repository {
	return &repository{
		db: db,
		w:  w,
		sb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

// ExistingCSOs returns which of csos are already stored for the location.
func (r *repository) ExistingCSOs(ctx context.Context, locationID string, csos []string) (map[string]struct{}, error) {
	const op = "repository.order.ExistingCSOs"

	out := make(map[string]struct{}, len(csos))
	if len(csos) == 0 {
		return out, nil
	}

	q := r.sb.
		Select("cso").
		From(ordersTable.Name).
		Where(sq.Eq{"location_id": locationID, "cso": csos})

	sqlStr, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	rows, err := r.db.Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	for rows.Next() {
		var cso string
		if err := rows.Scan(&cso); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		out[cso] = struct{}{}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return out, nil
}

// SaveOrders upserts orders, then deliveries, then their lines. The first
// failing table stops the rest.
func (r *repository) SaveOrders(ctx context.Context, orders []model.OrderRecord) error {
	const op = "repository.order.SaveOrders"

	now := time.Now().UTC()
	var ordRows, delRows, prodRows, svcRows [][]any

	for _, o := range orders {
		ordRows = append(ordRows, []any{
			o.CSO, o.LocationID, o.OrderType, o.OrderDate,
			o.Customer.Name, o.Customer.Phone, o.Customer.Email, o.Customer.Address,
			o.FreightTerms, o.ShippingInstructions, now,
		})
		for _, d := range o.Deliveries {
			delRows = append(delRows, []any{
				d.DeliveryID, o.CSO, o.LocationID, d.Status, d.Address,
				d.ScheduledDate, d.ShipDate, d.Route, now,
			})
			for _, l := range d.ProductLines {
				prodRows = append(prodRows, []any{
					o.CSO, d.DeliveryID, l.LineNumber, o.LocationID,
					l.Model, l.Serial, l.Qty, l.Status,
				})
			}
			for _, l := range d.ServiceLines {
				svcRows = append(svcRows, []any{
					o.CSO, d.DeliveryID, l.LineNumber, o.LocationID,
					l.Code, l.Description, l.Qty,
				})
			}
		}
	}

	writes := []struct {
		t    upsert.Table
		rows [][]any
	}{
		{ordersTable, ordRows},
		{deliveriesTable, delRows},
		{productLinesTable, prodRows},
		{serviceLinesTable, svcRows},
	}
	for _, wr := range writes {
		if err := r.w.Upsert(ctx, wr.t, wr.rows); err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
	}

	return nil
}
