//go:build integration

package e2e

import (
	"context"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/samber/lo"

	"github.com/you-humble/ge-sync/internal/model"
	inbrepo "github.com/you-humble/ge-sync/internal/repository/inbound"
	ordrepo "github.com/you-humble/ge-sync/internal/repository/order"
	"github.com/you-humble/ge-sync/internal/repository/upsert"
)

func fakeOrder(cso string) model.OrderRecord {
	date := lo.ToPtr(gofakeit.DateRange(
		time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 10, 1, 0, 0, 0, 0, time.UTC),
	).Truncate(24 * time.Hour))

	return model.OrderRecord{
		CSO:        cso,
		LocationID: location,
		OrderType:  "SALES",
		OrderDate:  date,
		Customer: model.Customer{
			Name:    gofakeit.Name(),
			Phone:   gofakeit.Phone(),
			Email:   gofakeit.Email(),
			Address: gofakeit.Street(),
		},
		Deliveries: []model.DeliveryRecord{{
			CSO:        cso,
			DeliveryID: gofakeit.DigitN(8),
			Status:     "SCHEDULED",
			Route:      "R" + gofakeit.DigitN(3),
			ProductLines: []model.ProductLineRecord{
				{LineNumber: 1, Model: "GTW755", Serial: serial(), Qty: 1},
				{LineNumber: 2, Model: "PVD28", Serial: serial(), Qty: 1},
			},
			ServiceLines: []model.ServiceLineRecord{
				{LineNumber: 1, Code: "HAUL", Description: "Haul away", Qty: 1},
			},
		}},
	}
}

var _ = Describe("Repositories e2e", func() {
	var (
		ctx    context.Context
		cancel context.CancelFunc
		writer *upsertWriter
	)

	BeforeEach(func() {
		ctx, cancel = context.WithTimeout(suiteCtx, time.Minute)
		DeferCleanup(cancel)
		truncate(ctx)

		writer = &upsertWriter{Writer: upsert.NewWriter(pgC.Pool(), 3)}
	})

	Context("orders", func() {
		It("upserts orders by cso and reports existing ones", func() {
			repo := ordrepo.NewOrderRepository(pgC.Pool(), writer)

			orders := lo.Times(5, func(i int) model.OrderRecord {
				return fakeOrder(gofakeit.DigitN(10))
			})
			Expect(repo.SaveOrders(ctx, orders)).To(Succeed())

			orders[0].Customer.Name = "Changed Name"
			Expect(repo.SaveOrders(ctx, orders)).To(Succeed())

			Expect(count(ctx, `SELECT count(*) FROM orders WHERE location_id = $1`, location)).To(Equal(5))
			Expect(count(ctx, `SELECT count(*) FROM order_product_lines WHERE location_id = $1`, location)).To(Equal(10))
			Expect(count(ctx,
				`SELECT count(*) FROM orders WHERE cso = $1 AND customer_name = 'Changed Name'`, orders[0].CSO,
			)).To(Equal(1))

			existing, err := repo.ExistingCSOs(ctx, location, []string{orders[1].CSO, "0000000000"})
			Expect(err).NotTo(HaveOccurred())
			Expect(existing).To(HaveKey(orders[1].CSO))
			Expect(existing).NotTo(HaveKey("0000000000"))
		})
	})

	Context("inbound", func() {
		It("upserts a receipt and its items by shipment and line", func() {
			repo := inbrepo.NewInboundRepository(writer)

			opts := model.SyncOptions{LocationID: location, CompanyID: "GEA"}
			row := model.InboundHistoryRow{
				ShipmentNumber: "A1234567-1",
				Vendor:         "GE",
				Location:       location,
				Truck:          "TRK1",
				Status:         "RECEIVED",
			}
			rep := model.ReceivingReport{
				Header: model.ReceivingReportHeader{InboundShipmentNo: "A1234567-1", SCAC: "GEAP", TotalUnits: lo.ToPtr(2)},
				Items: []model.ReceivingReportItem{
					{InboundShipmentNo: "A1234567-1", LineIndex: 0, Model: "GTW755", Serial: serial(), Qty: lo.ToPtr(1)},
					{InboundShipmentNo: "A1234567-1", LineIndex: 1, Model: "PVD28", Serial: serial(), Qty: lo.ToPtr(1)},
				},
			}

			Expect(repo.SaveReceipt(ctx, opts, row, rep)).To(Succeed())
			Expect(repo.SaveReceipt(ctx, opts, row, rep)).To(Succeed())

			Expect(count(ctx, `SELECT count(*) FROM inbound_receipts WHERE location_id = $1`, location)).To(Equal(1))
			Expect(count(ctx, `SELECT count(*) FROM inbound_receipt_items WHERE location_id = $1`, location)).To(Equal(2))
			Expect(writer.calls).To(Equal(4))
		})
	})
})

// upsertWriter counts the statements issued through the shared writer.
type upsertWriter struct {
	ordrepo.Writer
	calls int
}

func (w *upsertWriter) Upsert(ctx context.Context, t upsert.Table, rows [][]any) error {
	w.calls++
	return w.Writer.Upsert(ctx, t, rows)
}
