//go:build integration

package e2e

import (
	"context"
	"net/http"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/you-humble/ge-sync/internal/client/http/dms"
	"github.com/you-humble/ge-sync/internal/client/session"
	"github.com/you-humble/ge-sync/internal/model"
	artrepo "github.com/you-humble/ge-sync/internal/repository/artifact"
	invrepo "github.com/you-humble/ge-sync/internal/repository/inventory"
	"github.com/you-humble/ge-sync/internal/repository/upsert"
	invservice "github.com/you-humble/ge-sync/internal/service/inventory"
)

const artifactCollection = "dms_artifacts"

var _ = Describe("Inventory sync e2e", func() {
	type inventorySyncer interface {
		SyncInventory(ctx context.Context, t model.InventoryType, opts model.SyncOptions) model.SyncResult
	}

	var (
		ctx    context.Context
		cancel context.CancelFunc
		svc    inventorySyncer
		opts   model.SyncOptions

		s1, s2, s3, s4 string
	)

	BeforeEach(func() {
		ctx, cancel = context.WithTimeout(suiteCtx, time.Minute)
		DeferCleanup(cancel)
		truncate(ctx)

		arch := artrepo.NewArtifactRepository(mongoC.Database().Collection(artifactCollection))
		Expect(arch.EnsureIndexes(ctx)).To(Succeed())

		client, err := dms.NewClient(
			&http.Client{Timeout: 10 * time.Second},
			dmsSrv.URL,
			0,
			dms.Paths{
				ASISLoads:       loadsPath,
				ASISLoadDetail:  detailPath,
				InventoryReport: reportPath,
			},
			arch,
		)
		Expect(err).NotTo(HaveOccurred())

		repo := invrepo.NewInventoryRepository(pgC.Pool(), upsert.NewWriter(pgC.Pool(), 2))
		svc = invservice.NewInventoryService(client, session.NewStaticProvider(cookie, nil), repo, 5*time.Second, 5*time.Second)

		opts = model.SyncOptions{LocationID: location, BatchSize: 2}
		s1, s2, s3, s4 = serial(), serial(), serial(), serial()

		fakeDMS.set(
			[]fakeLoad{
				{number: "L100", status: "FOR SALE", updated: "10/01/2025", units: []fakeUnit{
					{model: "GTW755", serial: s1, qty: 1},
					{model: "PVD28", serial: s2, qty: 1},
				}},
				{number: "L200", status: "PICKED", updated: "10/02/2025", units: []fakeUnit{
					{model: "PVD28", serial: s2, qty: 1},
					{model: "JB645", serial: s3, qty: 1},
				}},
				{number: "L300", status: "SOLD", updated: "09/01/2025"},
			},
			[]fakeUnit{
				{model: "GTW755", serial: s1, load: "L100", qty: 1},
				{model: "PVD28", serial: s2, load: "L200", qty: 1},
				{model: "JB645", serial: s3, load: "L200", qty: 1},
				{model: "GFE28", serial: s4, qty: 1},
			},
		)
	})

	It("stores the snapshot, resolves load conflicts and archives raw pages", func() {
		res := svc.SyncInventory(ctx, model.InventoryTypeASIS, opts)
		Expect(res.Success).To(BeTrue(), res.Error)

		Expect(res.Stats.NewItems).To(Equal(4))
		Expect(res.Stats.UnassignedItems).To(Equal(1))
		Expect(res.Stats.ForSaleLoads).To(Equal(1))
		Expect(res.Stats.PickedLoads).To(Equal(1))
		Expect(res.Stats.Conflicts).To(Equal(1))

		Expect(count(ctx, `SELECT count(*) FROM inventory_items WHERE location_id = $1`, location)).To(Equal(4))
		Expect(count(ctx, `SELECT count(*) FROM asis_loads WHERE location_id = $1`, location)).To(Equal(3))
		Expect(count(ctx,
			`SELECT count(*) FROM inventory_items WHERE serial = $1 AND load_number = 'L200'`, s2,
		)).To(Equal(1))
		Expect(count(ctx,
			`SELECT count(*) FROM load_conflicts WHERE serial = $1 AND load_number = 'L100' AND conflicting_load = 'L200'`, s2,
		)).To(Equal(1))

		stored, err := artrepo.NewArtifactRepository(mongoC.Database().Collection(artifactCollection)).ByRun(ctx, res.RunID)
		Expect(err).NotTo(HaveOccurred())
		kinds := make([]string, 0, len(stored))
		for _, a := range stored {
			kinds = append(kinds, a.Kind)
		}
		Expect(kinds).To(ContainElements("asis-loads", "asis-load", "inventory-report"))

		fakeDMS.mu.Lock()
		defer fakeDMS.mu.Unlock()
		Expect(fakeDMS.cookies).To(HaveEach(cookie))
	})

	It("is idempotent across identical runs", func() {
		first := svc.SyncInventory(ctx, model.InventoryTypeASIS, opts)
		Expect(first.Success).To(BeTrue(), first.Error)

		ids := count(ctx, `SELECT count(DISTINCT id) FROM inventory_items WHERE location_id = $1`, location)

		second := svc.SyncInventory(ctx, model.InventoryTypeASIS, opts)
		Expect(second.Success).To(BeTrue(), second.Error)
		Expect(second.Stats.NewItems).To(BeZero())
		Expect(second.Stats.UpdatedItems).To(Equal(4))
		Expect(second.Stats.ChangesLogged).To(BeZero())

		Expect(count(ctx, `SELECT count(DISTINCT id) FROM inventory_items WHERE location_id = $1`, location)).To(Equal(ids))
	})

	It("orphans units that disappear and logs field changes", func() {
		Expect(svc.SyncInventory(ctx, model.InventoryTypeASIS, opts).Success).To(BeTrue())

		fakeDMS.set(
			[]fakeLoad{
				{number: "L100", status: "FOR SALE", updated: "10/05/2025", units: []fakeUnit{
					{model: "GTW755", serial: s1, qty: 1},
					{model: "GFE28", serial: s4, qty: 1},
				}},
			},
			[]fakeUnit{
				{model: "GTW755", serial: s1, load: "L100", qty: 1},
				{model: "GFE28", serial: s4, load: "L100", qty: 1},
			},
		)

		res := svc.SyncInventory(ctx, model.InventoryTypeASIS, opts)
		Expect(res.Success).To(BeTrue(), res.Error)
		Expect(res.Stats.OrphanedItems).To(Equal(2))

		Expect(count(ctx,
			`SELECT count(*) FROM inventory_items WHERE location_id = $1 AND ge_orphaned`, location,
		)).To(Equal(2))
		Expect(count(ctx,
			`SELECT count(*) FROM inventory_change_log WHERE serial = $1 AND field = 'load_number' AND new_value = 'L100'`, s4,
		)).To(Equal(1))
	})

	It("skips serials already stored under another inventory type", func() {
		Expect(svc.SyncInventory(ctx, model.InventoryTypeASIS, opts).Success).To(BeTrue())

		fakeDMS.set(nil, []fakeUnit{
			{model: "GTW755", serial: s1, qty: 1},
			{model: "WR55", serial: "FG" + s3, qty: 1},
		})

		res := svc.SyncInventory(ctx, model.InventoryTypeFG, opts)
		Expect(res.Success).To(BeTrue(), res.Error)
		Expect(res.Stats.CrossTypeSkipped).To(Equal(1))
		Expect(res.Stats.NewItems).To(Equal(1))

		Expect(count(ctx,
			`SELECT count(*) FROM inventory_items WHERE serial = $1`, s1,
		)).To(Equal(1))
	})
})
