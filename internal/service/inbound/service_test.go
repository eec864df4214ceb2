package service

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/you-humble/ge-sync/internal/model"
	"github.com/you-humble/ge-sync/internal/service/inbound/mocks"
	"github.com/you-humble/ge-sync/platform/logger"
)

const (
	loc    = "19SU"
	cookie = "JSESSIONID=abc"
)

var shipments = []string{"A1234567-1", "B2345678-2", "C3456789-3"}

func listing(nums ...string) string {
	var rows, hidden strings.Builder
	for i, n := range nums {
		fmt.Fprintf(&hidden, `<input type="hidden" name="shipmentNumber%d" value="%s">`, i+1, n)
		fmt.Fprintf(&rows, `<tr><td>%d</td><td>%s</td><td>GE</td><td>%s</td><td>TRK%d</td><td>10/15/2025</td><td>RECEIVED</td></tr>`, i+1, n, loc, i)
	}
	return `<html><body><form><input type="hidden" name="token" value="t0k">` + hidden.String() +
		`<table id="inboundHistory"><tr><th>#</th><th>Shipment #</th><th>Vendor</th><th>Location</th><th>Truck</th><th>Scheduled Date</th><th>Status</th></tr>` +
		rows.String() + `</table></form></body></html>`
}

func reportText(shipment string) string {
	return shipment + " GEAP TRK88 10/15/2025 08:30 2\n" +
		shipment + " 5012345678 1 0 0 GTW755 SN001 1\n" +
		shipment + " 5012345679 1 0 0 PVD28 SN002 1\n"
}

func forShipment(n string) interface{} {
	return mock.MatchedBy(func(f url.Values) bool {
		return f.Get("selShipmentNumVal") == n && f.Get("hCmd") == "PRINTRCVRPT" && f.Get("token") == "t0k"
	})
}

func TestSyncInbound(t *testing.T) {
	logger.SetNopLogger()
	t.Parallel()

	type deps struct {
		dms      *mocks.MockDMSClient
		sessions *mocks.MockSessionProvider
		pdf      *mocks.MockPDFReader
		repo     *mocks.MockInboundRepository
	}

	opts := model.SyncOptions{
		LocationID: loc,
		CompanyID:  "GEA",
		WindowDays: 30,
		Until:      time.Date(2025, 10, 30, 0, 0, 0, 0, time.UTC),
	}

	listed := func(d deps) {
		d.sessions.On("CookieHeader", mock.Anything, loc).Return(cookie, nil).Once()
		d.dms.On("InboundListing", mock.Anything, cookie, loc, mock.Anything, mock.Anything).
			Return(listing(shipments...), nil).Once()
	}
	report := func(d deps, n string) {
		body := []byte("%PDF-" + n)
		d.dms.On("ReceivingReport", mock.Anything, cookie, forShipment(n)).Return(body, nil).Once()
		d.pdf.On("Read", body).Return(nil, reportText(n), nil).Once()
	}
	saved := func(n string) interface{} {
		return mock.MatchedBy(func(r model.ReceivingReport) bool {
			return r.Header.InboundShipmentNo == n && len(r.Items) == 2
		})
	}

	type testCase struct {
		name   string
		setup  func(d deps)
		assert func(t *testing.T, res model.SyncResult, d deps)
	}

	tests := []testCase{
		{
			name: "pdf parse failure skips only that shipment",
			setup: func(d deps) {
				listed(d)
				report(d, shipments[0])
				report(d, shipments[2])

				bad := []byte("%PDF-broken")
				d.dms.On("ReceivingReport", mock.Anything, cookie, forShipment(shipments[1])).Return(bad, nil).Once()
				d.pdf.On("Read", bad).Return(nil, "", fmt.Errorf("%w: xref table not found", model.ErrPDFParse)).Once()

				d.repo.On("SaveReceipt", mock.Anything, opts, mock.Anything, saved(shipments[0])).Return(nil).Once()
				d.repo.On("SaveReceipt", mock.Anything, opts, mock.Anything, saved(shipments[2])).Return(nil).Once()
			},
			assert: func(t *testing.T, res model.SyncResult, d deps) {
				require.True(t, res.Success, res.Error)
				assert.Equal(t, 2, res.Stats.ReceiptsProcessed)
				assert.Equal(t, 4, res.Stats.TotalGEItems)
				assert.Contains(t, strings.Join(res.Log, "\n"), "Shipment B2345678-2: PDF parse failed, skipping")
			},
		},
		{
			name: "non-pdf response fails only its row, the run still succeeds",
			setup: func(d deps) {
				listed(d)
				report(d, shipments[0])
				report(d, shipments[2])

				d.dms.On("ReceivingReport", mock.Anything, cookie, forShipment(shipments[1])).
					Return(nil, fmt.Errorf("%w: text/html: <html>Login</html>", model.ErrNotPDF)).Once()

				d.repo.On("SaveReceipt", mock.Anything, opts, mock.Anything, mock.Anything).Return(nil).Twice()
			},
			assert: func(t *testing.T, res model.SyncResult, d deps) {
				assert.True(t, res.Success)
				assert.Empty(t, res.Error)
				assert.Equal(t, 2, res.Stats.ReceiptsProcessed)
				assert.Equal(t, 1, res.Stats.ReceiptsFailed)
				assert.Contains(t, res.Log, "1 of 3 shipments failed")
			},
		},
		{
			name: "persist failure stops remaining shipments",
			setup: func(d deps) {
				listed(d)
				report(d, shipments[0])
				d.repo.On("SaveReceipt", mock.Anything, opts, mock.Anything, mock.Anything).
					Return(fmt.Errorf("save: %w", model.ErrPersist)).Once()
			},
			assert: func(t *testing.T, res model.SyncResult, d deps) {
				assert.False(t, res.Success)
				assert.Contains(t, res.Error, model.ErrPersist.Error())
				assert.Zero(t, res.Stats.ReceiptsProcessed)
				d.dms.AssertNumberOfCalls(t, "ReceivingReport", 1)
			},
		},
		{
			name: "empty listing is reported explicitly",
			setup: func(d deps) {
				d.sessions.On("CookieHeader", mock.Anything, loc).Return(cookie, nil).Once()
				d.dms.On("InboundListing", mock.Anything, cookie, loc, mock.Anything, mock.Anything).
					Return(`<html><table id="inboundHistory"><tr><th>#</th></tr></table></html>`, nil).Once()
			},
			assert: func(t *testing.T, res model.SyncResult, d deps) {
				require.True(t, res.Success)
				assert.Equal(t, []string{"Inbound listing returned no shipments"}, res.Log)
			},
		},
		{
			name: "listing failure fails the run",
			setup: func(d deps) {
				d.sessions.On("CookieHeader", mock.Anything, loc).Return(cookie, nil).Once()
				d.dms.On("InboundListing", mock.Anything, cookie, loc, mock.Anything, mock.Anything).
					Return("", fmt.Errorf("%w: http status 500", model.ErrUpstreamStatus)).Once()
			},
			assert: func(t *testing.T, res model.SyncResult, d deps) {
				assert.False(t, res.Success)
				assert.Contains(t, res.Error, "http status 500")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			d := deps{
				dms:      mocks.NewMockDMSClient(t),
				sessions: mocks.NewMockSessionProvider(t),
				pdf:      mocks.NewMockPDFReader(t),
				repo:     mocks.NewMockInboundRepository(t),
			}
			tt.setup(d)

			res := NewInboundService(d.dms, d.sessions, d.pdf, d.repo, time.Second).SyncInbound(context.Background(), opts)
			tt.assert(t, res, d)
		})
	}
}
